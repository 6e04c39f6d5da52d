package geom

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestArcToCenterQuarterCircle(t *testing.T) {
	s := Arc(Vector{10, 0}, 10, 10, 0, false, true, Vector{0, 10})
	c, ok := ArcToCenter(s)
	test.That(t, ok, "expected a valid center parametrization")
	test.That(t, c.Center.Equal(Vector{0, 0}, 1e-9), "expected center at origin")
	test.T(t, c.Rx, 10.0)
	test.T(t, c.Ry, 10.0)
}

func TestArcToCenterZeroRadius(t *testing.T) {
	s := Arc(Vector{0, 0}, 0, 0, 0, false, true, Vector{10, 0})
	_, ok := ArcToCenter(s)
	test.That(t, !ok, "expected zero radius to be rejected")
}

func TestArcToCenterCoincidentEndpoints(t *testing.T) {
	s := Arc(Vector{5, 5}, 10, 10, 0, false, true, Vector{5, 5})
	_, ok := ArcToCenter(s)
	test.That(t, !ok, "expected coincident endpoints to be rejected")
}

func TestArcToCenterRadiusCorrection(t *testing.T) {
	// Endpoints are farther apart than the diameter allows; radii must be
	// scaled up rather than producing a NaN/complex center.
	s := Arc(Vector{0, 0}, 1, 1, 0, false, true, Vector{100, 0})
	c, ok := ArcToCenter(s)
	test.That(t, ok, "expected radius correction to still produce a center")
	test.That(t, c.Rx >= 50, "expected corrected radius to grow to reach the endpoints")
}

func TestCenterToArcRoundTrip(t *testing.T) {
	s := Arc(Vector{10, 0}, 10, 5, math.Pi/6, true, false, Vector{-10, 0})
	c, ok := ArcToCenter(s)
	test.That(t, ok, "expected a valid center parametrization")
	back := CenterToArc(c)
	test.That(t, back.P0.Equal(s.P0, 1e-6), "expected round-tripped start point")
	test.That(t, back.P1.Equal(s.P1, 1e-6), "expected round-tripped end point")
}

func TestArcToCubicsPreservesEndpoints(t *testing.T) {
	s := Arc(Vector{10, 0}, 10, 10, 0, true, true, Vector{-10, 0})
	cubics := ArcToCubics(s)
	test.That(t, len(cubics) > 0, "expected at least one cubic")
	test.T(t, cubics[0].P0, s.P0)
	test.T(t, cubics[len(cubics)-1].P1, s.P1)
	for i := 1; i < len(cubics); i++ {
		test.That(t, cubics[i-1].P1.Equal(cubics[i].P0, 1e-9), "expected chained cubics to connect")
	}
}

func TestArcToCubicsBoundsSpanPerCubic(t *testing.T) {
	s := Arc(Vector{10, 0}, 10, 10, 0, true, true, Vector{-10, 0.001})
	c, ok := ArcToCenter(s)
	test.That(t, ok, "expected a valid center parametrization")
	cubics := ArcToCubics(s)
	wantN := int(math.Ceil(math.Abs(c.DeltaTheta) / MaxDeltaThetaPerCubic))
	if wantN < 1 {
		wantN = 1
	}
	test.T(t, len(cubics), wantN)
}
