package geom

import "math"

// minNormalFloat64 is the smallest positive normalized float64, used as the
// base of the collinearity guard in LineLineIntersection (spec §4.1, §5).
const minNormalFloat64 = 2.2250738585072014e-308

// LineLineIntersection solves for the parameters s, t at which the lines
// through (p0,p1) and (q0,q1) cross, via Cramer's rule. It rejects
// (numerically) parallel pairs. It does not clamp s, t to any range; the
// caller decides what range is acceptable.
func LineLineIntersection(p0, p1, q0, q1 Vector) (s, t float64, ok bool) {
	d1 := p1.Sub(p0)
	d2 := q1.Sub(q0)
	denom := d1.Cross(d2)
	if math.Abs(denom) < 64*minNormalFloat64 {
		return 0, 0, false
	}
	diff := q0.Sub(p0)
	s = diff.Cross(d2) / denom
	t = diff.Cross(d1) / denom
	return s, t, true
}

// CubicSelfIntersection solves for the parameters (t0, t1) at which a cubic
// crosses itself, using the closed-form quadratic in the cross products of
// the position polynomial's power-basis coefficients (spec §4.1). It
// returns ok=false unless the discriminant is non-negative and both roots
// lie strictly in (eps, 1-eps) with eps = 1e-12. A cusp (zero
// discriminant) yields t0 == t1.
func CubicSelfIntersection(s Segment) (t0, t1 float64, ok bool) {
	if s.Kind != CubicKind {
		return 0, 0, false
	}
	const eps = 1e-12

	// Power-basis coefficients of B(t) = p0 + c1*t + c2*t^2 + c3*t^3.
	c1 := s.C1.Sub(s.P0).Scale(3)
	c2 := s.P0.Sub(s.C1.Scale(2)).Add(s.C2).Scale(3)
	c3 := Vector{
		X: -s.P0.X + 3*s.C1.X - 3*s.C2.X + s.P1.X,
		Y: -s.P0.Y + 3*s.C1.Y - 3*s.C2.Y + s.P1.Y,
	}

	a := c3.Cross(c2)
	b := c3.Cross(c1)
	if math.Abs(a) < eps {
		return 0, 0, false
	}

	// t0, t1 are the two roots of z^2 - p*z + q = 0.
	p := -b / a
	q := p*p + c1.Cross(c2)/a

	disc := p*p - 4*q
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	r0 := (p - sq) / 2
	r1 := (p + sq) / 2
	if r0 <= eps || r0 >= 1-eps || r1 <= eps || r1 >= 1-eps {
		return 0, 0, false
	}
	return r0, r1, true
}

// Intersection is one crossing point of two segments, given as a parameter
// on each.
type Intersection struct {
	T0, T1 float64
}

type intervalSeg struct {
	seg    Segment
	lo, hi float64
}

func (is intervalSeg) isLinear(linearEps float64) bool {
	return BBox(is.seg).MaxExtent() <= linearEps
}

func (is intervalSeg) split() (intervalSeg, intervalSeg) {
	left, right := Split(is.seg, 0.5)
	mid := is.lo + 0.5*(is.hi-is.lo)
	return intervalSeg{left, is.lo, mid}, intervalSeg{right, mid, is.hi}
}

// IntersectSegments finds all crossings of two segments via bounding-volume
// bisection (spec §4.1): lines are solved directly; otherwise the pair is
// recursively split until both halves are within Linear epsilon of being
// straight, then solved as lines and the local parameters mapped back to
// the segments' own [0,1] domains.
//
// When endpoints is false, roots that both lie within Param epsilon of 0 or
// 1 (an endpoint-endpoint coincidence on both segments) are dropped; this
// mirrors the documented, intentionally-preserved limitation that the test
// is not a fully correct endpoint filter (spec §9).
func IntersectSegments(eps Epsilons, a, b Segment, endpoints bool) []Intersection {
	if a.Kind == LineKind && b.Kind == LineKind {
		s, t, ok := LineLineIntersection(a.P0, a.P1, b.P0, b.P1)
		if !ok {
			return nil
		}
		if s < -eps.Param || s > 1+eps.Param || t < -eps.Param || t > 1+eps.Param {
			return nil
		}
		if !endpoints && isEndpointParam(s, eps.Param) && isEndpointParam(t, eps.Param) {
			return nil
		}
		return []Intersection{{s, t}}
	}

	var out []Intersection
	p0 := intervalSeg{a, 0, 1}
	q0 := intervalSeg{b, 0, 1}
	bisectIntersect(eps, p0, q0, endpoints, &out, 0)
	return out
}

func isEndpointParam(t, paramEps float64) bool {
	return t < paramEps || t > 1-paramEps
}

func bisectIntersect(eps Epsilons, p, q intervalSeg, endpoints bool, out *[]Intersection, depth int) {
	if !BBox(p.seg).Overlaps(BBox(q.seg)) {
		return
	}
	if depth > 64 {
		return
	}

	pLinear := p.isLinear(eps.Linear)
	qLinear := q.isLinear(eps.Linear)
	if pLinear && qLinear {
		s, t, ok := LineLineIntersection(p.seg.P0, p.seg.P1, q.seg.P0, q.seg.P1)
		if !ok {
			return
		}
		if s < -eps.Param || s > 1+eps.Param || t < -eps.Param || t > 1+eps.Param {
			return
		}
		t0 := p.lo + s*(p.hi-p.lo)
		t1 := q.lo + t*(q.hi-q.lo)
		if !endpoints && isEndpointParam(t0, eps.Param) && isEndpointParam(t1, eps.Param) {
			return
		}
		*out = append(*out, Intersection{t0, t1})
		return
	}

	var pHalves [2]intervalSeg
	nP := 1
	if pLinear {
		pHalves[0] = p
	} else {
		pHalves[0], pHalves[1] = p.split()
		nP = 2
	}
	var qHalves [2]intervalSeg
	nQ := 1
	if qLinear {
		qHalves[0] = q
	} else {
		qHalves[0], qHalves[1] = q.split()
		nQ = 2
	}

	for i := 0; i < nP; i++ {
		for j := 0; j < nQ; j++ {
			ph, qh := pHalves[i], qHalves[j]
			if Equal(ph.seg, qh.seg, eps.Point) {
				// Coincident overlap: dropped, per the documented open
				// question (spec §9).
				continue
			}
			bisectIntersect(eps, ph, qh, endpoints, out, depth+1)
		}
	}
}

// LineRayCrossing reports whether the segment from a to b crosses the
// horizontal ray cast from point toward +x, using the half-open convention
// (spec §4.1) that guarantees a shared vertex between two segments is
// counted by exactly one of them: the interval is "entered" at y >= py and
// "exited" at y < py.
func LineRayCrossing(a, b, point Vector) bool {
	if (a.Y >= point.Y) == (b.Y >= point.Y) {
		return false
	}
	t := (point.Y - a.Y) / (b.Y - a.Y)
	x := a.X + t*(b.X-a.X)
	return x >= point.X
}

// ClipLineAABB reports whether the segment from a to b intersects box,
// using Cohen-Sutherland outcode clipping.
func ClipLineAABB(a, b Vector, box AABB) bool {
	code := func(p Vector) int {
		c := 0
		if p.X < box.Left {
			c |= 1
		} else if p.X > box.Right {
			c |= 2
		}
		if p.Y < box.Top {
			c |= 4
		} else if p.Y > box.Bottom {
			c |= 8
		}
		return c
	}

	c0, c1 := code(a), code(b)
	for {
		if c0 == 0 || c1 == 0 {
			return true
		}
		if c0&c1 != 0 {
			return false
		}
		out := c0
		if out == 0 {
			out = c1
		}
		var p Vector
		switch {
		case out&8 != 0: // below
			p = Vector{a.X + (b.X-a.X)*(box.Bottom-a.Y)/(b.Y-a.Y), box.Bottom}
		case out&4 != 0: // above
			p = Vector{a.X + (b.X-a.X)*(box.Top-a.Y)/(b.Y-a.Y), box.Top}
		case out&2 != 0: // right
			p = Vector{box.Right, a.Y + (b.Y-a.Y)*(box.Right-a.X)/(b.X-a.X)}
		case out&1 != 0: // left
			p = Vector{box.Left, a.Y + (b.Y-a.Y)*(box.Left-a.X)/(b.X-a.X)}
		}
		if out == c0 {
			a = p
			c0 = code(a)
		} else {
			b = p
			c1 = code(b)
		}
	}
}
