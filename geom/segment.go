package geom

import "math"

// Kind discriminates the segment union (spec §3).
type Kind int

const (
	LineKind Kind = iota
	CubicKind
	QuadraticKind
	ArcKind
)

// Segment is one of Line, Cubic, Quadratic, or Arc, tagged by Kind. P0 is
// always the segment's start and P1 its end, so every segment can be
// reversed and chained without a type switch at the call site.
//
// For Cubic, C1 and C2 are the two control points. For Quadratic, only C1
// is used. For Arc, Rx/Ry/Phi/LargeArc/Sweep follow the SVG endpoint
// parametrization; Phi is stored in radians.
type Segment struct {
	Kind             Kind
	P0, P1           Vector
	C1, C2           Vector
	Rx, Ry, Phi      float64
	LargeArc, Sweep  bool
}

func Line(p0, p1 Vector) Segment {
	return Segment{Kind: LineKind, P0: p0, P1: p1}
}

func Cubic(p0, c1, c2, p1 Vector) Segment {
	return Segment{Kind: CubicKind, P0: p0, C1: c1, C2: c2, P1: p1}
}

func Quadratic(p0, c, p1 Vector) Segment {
	return Segment{Kind: QuadraticKind, P0: p0, C1: c, P1: p1}
}

func Arc(p0 Vector, rx, ry, phi float64, largeArc, sweep bool, p1 Vector) Segment {
	return Segment{Kind: ArcKind, P0: p0, P1: p1, Rx: rx, Ry: ry, Phi: phi, LargeArc: largeArc, Sweep: sweep}
}

// Reverse swaps a segment's direction. Arc segments flip their sweep flag,
// per spec §4.1.
func Reverse(s Segment) Segment {
	r := s
	r.P0, r.P1 = s.P1, s.P0
	switch s.Kind {
	case CubicKind:
		r.C1, r.C2 = s.C2, s.C1
	case ArcKind:
		r.Sweep = !s.Sweep
	}
	return r
}

// Sample evaluates the segment at parameter t in [0, 1].
func Sample(s Segment, t float64) Vector {
	switch s.Kind {
	case LineKind:
		return s.P0.Lerp(s.P1, t)
	case QuadraticKind:
		return deCasteljauQuad(s.P0, s.C1, s.P1, t)
	case CubicKind:
		return deCasteljauCubic(s.P0, s.C1, s.C2, s.P1, t)
	case ArcKind:
		c, ok := ArcToCenter(s)
		if !ok {
			// Degenerate radius: caller treats the arc as a line from p0 to p1.
			return s.P0.Lerp(s.P1, t)
		}
		theta := c.Theta1 + t*c.DeltaTheta
		return ellipsePoint(c.Center, c.Rx, c.Ry, c.Phi, theta)
	}
	panic("geom: unknown segment kind")
}

func deCasteljauQuad(p0, c, p1 Vector, t float64) Vector {
	a := p0.Lerp(c, t)
	b := c.Lerp(p1, t)
	return a.Lerp(b, t)
}

func deCasteljauCubic(p0, c1, c2, p1 Vector, t float64) Vector {
	a := p0.Lerp(c1, t)
	b := c1.Lerp(c2, t)
	c := c2.Lerp(p1, t)
	d := a.Lerp(b, t)
	e := b.Lerp(c, t)
	return d.Lerp(e, t)
}

// Split partitions a segment at parameter t into two segments covering
// [0, t] and [t, 1] of the original parametric domain.
func Split(s Segment, t float64) (Segment, Segment) {
	switch s.Kind {
	case LineKind:
		m := s.P0.Lerp(s.P1, t)
		return Line(s.P0, m), Line(m, s.P1)
	case QuadraticKind:
		a := s.P0.Lerp(s.C1, t)
		b := s.C1.Lerp(s.P1, t)
		m := a.Lerp(b, t)
		return Quadratic(s.P0, a, m), Quadratic(m, b, s.P1)
	case CubicKind:
		a := s.P0.Lerp(s.C1, t)
		b := s.C1.Lerp(s.C2, t)
		c := s.C2.Lerp(s.P1, t)
		d := a.Lerp(b, t)
		e := b.Lerp(c, t)
		m := d.Lerp(e, t)
		return Cubic(s.P0, a, d, m), Cubic(m, e, c, s.P1)
	case ArcKind:
		c, ok := ArcToCenter(s)
		if !ok {
			m := s.P0.Lerp(s.P1, t)
			return Line(s.P0, m), Line(m, s.P1)
		}
		thetaM := c.Theta1 + t*c.DeltaTheta
		mid := ellipsePoint(c.Center, c.Rx, c.Ry, c.Phi, thetaM)
		sweep := c.DeltaTheta >= 0
		large0 := math.Abs(c.DeltaTheta*t) > math.Pi
		large1 := math.Abs(c.DeltaTheta*(1-t)) > math.Pi
		seg0 := Arc(s.P0, c.Rx, c.Ry, c.Phi, large0, sweep, mid)
		seg1 := Arc(mid, c.Rx, c.Ry, c.Phi, large1, sweep, s.P1)
		return seg0, seg1
	}
	panic("geom: unknown segment kind")
}

// Equal compares two segments component-wise within point epsilon. Arc
// comparison follows the documented, intentionally-preserved limitation
// (spec §9): phi is compared directly except when rx == ry, in which case
// arcs with equal center parametrizations are treated as equal regardless
// of phi, since an ellipse with rx == ry has no meaningful rotation.
func Equal(a, b Segment, eps float64) bool {
	if a.Kind != b.Kind {
		return false
	}
	if !a.P0.Equal(b.P0, eps) || !a.P1.Equal(b.P1, eps) {
		return false
	}
	switch a.Kind {
	case LineKind:
		return true
	case QuadraticKind:
		return a.C1.Equal(b.C1, eps)
	case CubicKind:
		return a.C1.Equal(b.C1, eps) && a.C2.Equal(b.C2, eps)
	case ArcKind:
		if math.Abs(a.Rx-b.Rx) > eps || math.Abs(a.Ry-b.Ry) > eps {
			return false
		}
		if a.LargeArc != b.LargeArc || a.Sweep != b.Sweep {
			return false
		}
		if math.Abs(a.Rx-a.Ry) <= eps {
			// TODO(rx==ry): full rotational symmetry beyond this coincidence
			// (e.g. equal centers under a pi/2 turn) is not checked.
			return true
		}
		return math.Abs(a.Phi-b.Phi) <= eps
	}
	return false
}

// IsZeroLength reports whether a segment has effectively no extent, per the
// discard rules of spec §4.4: a cubic may have coincident endpoints yet
// still describe a real loop when its control points diverge, and a
// full-sweep arc with coincident endpoints is a real ellipse.
func IsZeroLength(s Segment, eps float64) bool {
	if !s.P0.Equal(s.P1, eps) {
		return false
	}
	switch s.Kind {
	case LineKind:
		return true
	case QuadraticKind:
		return s.C1.Equal(s.P0, eps)
	case CubicKind:
		return s.C1.Equal(s.P0, eps) && s.C2.Equal(s.P1, eps)
	case ArcKind:
		return !s.Sweep
	}
	return true
}
