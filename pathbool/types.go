// Package pathbool computes planar boolean operations — union, difference,
// intersection, exclusion, division, and fracture — over vector paths built
// from line, cubic, quadratic, and elliptical arc segments.
package pathbool

import "github.com/tdewolff/pathbool/geom"

// FillRule selects how a path's self-overlaps and multiple subpaths
// combine into a single inside/outside test.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Op names one of the six boolean combinations this package supports.
type Op int

const (
	Union Op = iota
	Difference
	Intersection
	Exclusion
	Division
	Fracture
)

// Path is a sequence of segments, implicitly closed subpaths separated by
// discontinuities between one segment's endpoint and the next segment's
// start point.
type Path []geom.Segment

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// Bounds returns the union of every segment's bounding box.
func (p Path) Bounds() geom.AABB {
	box := geom.EmptyAABB()
	for _, s := range p {
		box = box.Union(geom.BBox(s))
	}
	return box
}

// Reverse returns a copy of p with subpath order and each segment's
// direction reversed, so that tracing the result draws the same outline
// backwards.
func (p Path) Reverse() Path {
	subpaths := splitSubpaths(p)
	out := make(Path, 0, len(p))
	for i := len(subpaths) - 1; i >= 0; i-- {
		sub := subpaths[i]
		for j := len(sub) - 1; j >= 0; j-- {
			out = append(out, geom.Reverse(sub[j]))
		}
	}
	return out
}

func splitSubpaths(p Path) []Path {
	var out []Path
	var cur Path
	for i, s := range p {
		if i > 0 && s.P0 != p[i-1].P1 {
			out = append(out, cur)
			cur = nil
		}
		cur = append(cur, s)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
