package geom

import "math"

// BBox computes the tight axis-aligned bounding box of a segment.
func BBox(s Segment) AABB {
	switch s.Kind {
	case LineKind:
		return boxOf(s.P0, s.P1)
	case QuadraticKind:
		return quadraticBBox(s)
	case CubicKind:
		return cubicBBox(s)
	case ArcKind:
		return arcBBox(s)
	}
	panic("geom: unknown segment kind")
}

func boxOf(pts ...Vector) AABB {
	b := EmptyAABB()
	for _, p := range pts {
		b.Left = math.Min(b.Left, p.X)
		b.Right = math.Max(b.Right, p.X)
		b.Top = math.Min(b.Top, p.Y)
		b.Bottom = math.Max(b.Bottom, p.Y)
	}
	return b
}

// quadraticBBox solves the linear extremum equation per axis.
func quadraticBBox(s Segment) AABB {
	b := boxOf(s.P0, s.P1)
	for axis := 0; axis < 2; axis++ {
		p0, c, p1 := axisOf(s.P0, axis), axisOf(s.C1, axis), axisOf(s.P1, axis)
		denom := p0 - 2*c + p1
		if math.Abs(denom) < 1e-12 {
			continue
		}
		t := (p0 - c) / denom
		if t > 0 && t < 1 {
			b = extendAxis(b, axis, deCasteljauQuad(s.P0, s.C1, s.P1, t))
		}
	}
	return b
}

// cubicBBox solves the quadratic extremum equation per axis (up to two
// interior roots).
func cubicBBox(s Segment) AABB {
	b := boxOf(s.P0, s.P1)
	for axis := 0; axis < 2; axis++ {
		p0, c1, c2, p1 := axisOf(s.P0, axis), axisOf(s.C1, axis), axisOf(s.C2, axis), axisOf(s.P1, axis)
		a := -p0 + 3*c1 - 3*c2 + p1
		bb := 2 * (p0 - 2*c1 + c2)
		cc := -p0 + c1
		for _, t := range quadraticRoots(a, bb, cc) {
			if t > 0 && t < 1 {
				b = extendAxis(b, axis, deCasteljauCubic(s.P0, s.C1, s.C2, s.P1, t))
			}
		}
	}
	return b
}

func quadraticRoots(a, b, c float64) []float64 {
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

func axisOf(p Vector, axis int) float64 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}

func extendAxis(b AABB, axis int, p Vector) AABB {
	return b.Union(boxOf(p))
}

// arcBBox handles the axis-aligned case (phi == 0 or rx == ry) exactly by
// intersecting the angular interval with the four axis extrema, and falls
// back to the tight bbox of an arc-to-cubics approximation otherwise, per
// spec §4.1.
func arcBBox(s Segment) AABB {
	c, ok := ArcToCenter(s)
	if !ok {
		return boxOf(s.P0, s.P1)
	}
	if math.Abs(c.Phi) < 1e-12 || math.Abs(c.Rx-c.Ry) < 1e-12 {
		return axisAlignedArcBBox(c)
	}
	b := boxOf(s.P0, s.P1)
	for _, cubic := range arcToCubicsCapped(c) {
		b = b.Union(cubicBBox(cubic))
	}
	return b
}

func arcToCubicsCapped(c ArcCenter) []Segment {
	return ArcToCubics(CenterToArc(c))
}

func axisAlignedArcBBox(c ArcCenter) AABB {
	b := boxOf(ellipsePoint(c.Center, c.Rx, c.Ry, c.Phi, c.Theta1), ellipsePoint(c.Center, c.Rx, c.Ry, c.Phi, c.Theta1+c.DeltaTheta))
	for k := -2; k <= 2; k++ {
		// With rx == ry the rotation phi shifts where the extrema fall.
		extreme := float64(k)*math.Pi/2 - c.Phi
		if angleInSweep(c.Theta1, c.DeltaTheta, extreme) {
			b = b.Union(boxOf(ellipsePoint(c.Center, c.Rx, c.Ry, c.Phi, extreme)))
		}
	}
	return b
}

// angleInSweep reports whether theta lies within [theta1, theta1+delta]
// (or the reversed interval when delta < 0), modulo 2*pi.
func angleInSweep(theta1, delta, theta float64) bool {
	twoPi := 2 * math.Pi
	norm := func(a float64) float64 {
		a = math.Mod(a, twoPi)
		if a < 0 {
			a += twoPi
		}
		return a
	}
	start := norm(theta1)
	end := norm(theta1 + delta)
	t := norm(theta)
	if delta >= 0 {
		if start <= end {
			return start <= t && t <= end
		}
		return t >= start || t <= end
	}
	if end <= start {
		return end <= t && t <= start
	}
	return t >= end || t <= start
}
