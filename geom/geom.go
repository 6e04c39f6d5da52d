// Package geom implements the segment kernel that the arrangement pipeline
// is built on: vectors, axis-aligned bounding boxes, and the four segment
// kinds (line, cubic, quadratic, elliptical arc) together with the sampling,
// splitting, bounding, and intersection primitives every later stage needs.
package geom

import "math"

// Vector is a point or a direction in the plane. Y grows downward, matching
// SVG's coordinate convention.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }
func (v Vector) Neg() Vector         { return Vector{-v.X, -v.Y} }
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z-component of the 3D cross product of v and o.
func (v Vector) Cross(o Vector) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vector) Scale(s float64) Vector { return Vector{v.X * s, v.Y * s} }

func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Norm returns v scaled to the given length, or the zero vector if v is
// itself (numerically) zero.
func (v Vector) Norm(length float64) Vector {
	d := v.Length()
	if d < 1e-12 {
		return Vector{}
	}
	return v.Scale(length / d)
}

// Lerp interpolates linearly between v and o at parameter t.
func (v Vector) Lerp(o Vector, t float64) Vector {
	return Vector{(1-t)*v.X + t*o.X, (1-t)*v.Y + t*o.Y}
}

func (v Vector) Equal(o Vector, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// AABB is an axis-aligned bounding box. Top is the min-y edge, Bottom the
// max-y edge, matching the downward-growing Y convention.
type AABB struct {
	Left, Top, Right, Bottom float64
}

// EmptyAABB returns a box with inverted bounds, suitable as the identity
// element for repeated Union calls.
func EmptyAABB() AABB {
	return AABB{
		Left:   math.Inf(1),
		Top:    math.Inf(1),
		Right:  math.Inf(-1),
		Bottom: math.Inf(-1),
	}
}

func (b AABB) IsEmpty() bool {
	return b.Left > b.Right || b.Top > b.Bottom
}

func (b AABB) Union(o AABB) AABB {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return AABB{
		Left:   math.Min(b.Left, o.Left),
		Top:    math.Min(b.Top, o.Top),
		Right:  math.Max(b.Right, o.Right),
		Bottom: math.Max(b.Bottom, o.Bottom),
	}
}

func (b AABB) Overlaps(o AABB) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.Left <= o.Right && o.Left <= b.Right && b.Top <= o.Bottom && o.Top <= b.Bottom
}

func (b AABB) ContainsPoint(p Vector) bool {
	return b.Left <= p.X && p.X <= b.Right && b.Top <= p.Y && p.Y <= b.Bottom
}

// Grow returns b expanded by d on every side.
func (b AABB) Grow(d float64) AABB {
	return AABB{b.Left - d, b.Top - d, b.Right + d, b.Bottom + d}
}

func (b AABB) MaxExtent() float64 {
	w, h := b.Right-b.Left, b.Bottom-b.Top
	if w > h {
		return w
	}
	return h
}

func pointAABB(p Vector, eps float64) AABB {
	return AABB{p.X - eps, p.Y - eps, p.X + eps, p.Y + eps}
}

// PointBox returns the AABB of radius eps around p, used to query the vertex
// quadtree for coincident endpoints.
func PointBox(p Vector, eps float64) AABB {
	return pointAABB(p, eps)
}

// Epsilons is the process-wide numeric tolerance table (spec §4.1). All
// stages consume their point, linear and parameter tolerances from one of
// these instances. Fixed guards remain inside the kernel: 1e-12 checks
// against division by zero and zero radii (cubic self-intersection, arc
// conversion, bounding boxes, Norm) and the 64×min-normal collinearity
// guard in line-line intersection.
type Epsilons struct {
	Point  float64 // vertex-merge radius
	Linear float64 // bbox-extent threshold to treat a segment as a line
	Param  float64 // parameter tolerance for intersection s, t
}

// DefaultEpsilons returns the spec's §4.1 table.
func DefaultEpsilons() Epsilons {
	return Epsilons{
		Point:  1e-6,
		Linear: 1e-4,
		Param:  1e-8,
	}
}
