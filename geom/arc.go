package geom

import "math"

// ArcCenter is the elliptic-arc center parametrization used internally in
// place of the SVG endpoint form (spec §4.1).
type ArcCenter struct {
	Center           Vector
	Rx, Ry, Phi      float64 // Phi in radians
	Theta1           float64 // start angle, radians
	DeltaTheta       float64 // signed sweep, radians
}

// ArcToCenter converts the SVG endpoint parametrization of s to the center
// form, following SVG 2's endpoint-to-center construction including the
// radius correction when the endpoints are not reachable with the given
// radii. It returns ok=false when rx or ry is (numerically) zero; the
// caller must then treat the arc as a line from p0 to p1.
func ArcToCenter(s Segment) (ArcCenter, bool) {
	rx, ry := math.Abs(s.Rx), math.Abs(s.Ry)
	if rx < 1e-12 || ry < 1e-12 {
		return ArcCenter{}, false
	}
	// A coincident-endpoint arc has no well-defined center; the caller
	// falls back to treating it as a line, unlike IsZeroLength, which
	// still counts a full-sweep P0==P1 arc as a real, non-degenerate arc.
	if s.P0.Equal(s.P1, 0) {
		return ArcCenter{}, false
	}

	phi := s.Phi
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	dx2, dy2 := (s.P0.X-s.P1.X)/2, (s.P0.Y-s.P1.Y)/2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// Radius correction (SVG implementation notes, F.6.6).
	radiiCheck := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if radiiCheck > 1 {
		scale := math.Sqrt(radiiCheck)
		rx *= scale
		ry *= scale
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0 {
		sq = 0
	}
	coef := math.Sqrt(sq)
	if s.LargeArc == s.Sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (s.P0.X+s.P1.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (s.P0.Y+s.P1.Y)/2

	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry

	theta1 := angleBetween(1, 0, ux, uy)
	delta := angleBetween(ux, uy, vx, vy)
	if !s.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if s.Sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	return ArcCenter{
		Center:     Vector{cx, cy},
		Rx:         rx,
		Ry:         ry,
		Phi:        phi,
		Theta1:     theta1,
		DeltaTheta: delta,
	}, true
}

func angleBetween(ux, uy, vx, vy float64) float64 {
	dot := ux*vx + uy*vy
	length := math.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
	if length < 1e-12 {
		return 0
	}
	cos := dot / length
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	angle := math.Acos(cos)
	if ux*vy-uy*vx < 0 {
		angle = -angle
	}
	return angle
}

func ellipsePoint(center Vector, rx, ry, phi, theta float64) Vector {
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	x, y := rx*math.Cos(theta), ry*math.Sin(theta)
	return Vector{
		X: center.X + cosPhi*x - sinPhi*y,
		Y: center.Y + sinPhi*x + cosPhi*y,
	}
}

// CenterToArc converts a center parametrization back into an SVG endpoint
// Segment, sampling the endpoints from the parametrization itself so the
// result is self-consistent.
func CenterToArc(c ArcCenter) Segment {
	p0 := ellipsePoint(c.Center, c.Rx, c.Ry, c.Phi, c.Theta1)
	p1 := ellipsePoint(c.Center, c.Rx, c.Ry, c.Phi, c.Theta1+c.DeltaTheta)
	large := math.Abs(c.DeltaTheta) > math.Pi
	sweep := c.DeltaTheta >= 0
	return Arc(p0, c.Rx, c.Ry, c.Phi, large, sweep, p1)
}

// MaxDeltaThetaPerCubic bounds the angular span approximated by a single
// cubic in ArcToCubics (spec §4.1).
const MaxDeltaThetaPerCubic = math.Pi / 16

// ArcToCubics subdivides an arc into a sequence of cubic Bézier segments,
// each spanning at most MaxDeltaThetaPerCubic of the total sweep.
func ArcToCubics(s Segment) []Segment {
	c, ok := ArcToCenter(s)
	if !ok {
		return []Segment{Line(s.P0, s.P1)}
	}
	n := int(math.Ceil(math.Abs(c.DeltaTheta) / MaxDeltaThetaPerCubic))
	if n < 1 {
		n = 1
	}
	step := c.DeltaTheta / float64(n)
	cosPhi, sinPhi := math.Cos(c.Phi), math.Sin(c.Phi)
	transform := func(x, y float64) Vector {
		return Vector{
			X: c.Center.X + cosPhi*x - sinPhi*y,
			Y: c.Center.Y + sinPhi*x + cosPhi*y,
		}
	}

	segs := make([]Segment, 0, n)
	theta := c.Theta1
	for i := 0; i < n; i++ {
		theta2 := theta + step
		k := (4.0 / 3.0) * math.Tan(step/4.0)

		cosT1, sinT1 := math.Cos(theta), math.Sin(theta)
		cosT2, sinT2 := math.Cos(theta2), math.Sin(theta2)

		p0 := transform(c.Rx*cosT1, c.Ry*sinT1)
		p1 := transform(c.Rx*cosT2, c.Ry*sinT2)
		c1 := transform(c.Rx*(cosT1-k*sinT1), c.Ry*(sinT1+k*cosT1))
		c2 := transform(c.Rx*(cosT2+k*sinT2), c.Ry*(sinT2-k*cosT2))

		segs = append(segs, Cubic(p0, c1, c2, p1))
		theta = theta2
	}
	// Endpoints of the chain must line up with the original segment exactly
	// (within construction error): overwrite them to avoid drift.
	segs[0].P0 = s.P0
	segs[len(segs)-1].P1 = s.P1
	return segs
}
