package geom

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestBBoxLine(t *testing.T) {
	b := BBox(Line(Vector{0, 10}, Vector{10, 0}))
	test.T(t, b, AABB{0, 0, 10, 10})
}

func TestBBoxQuadraticBulgesBeyondEndpoints(t *testing.T) {
	s := Quadratic(Vector{0, 0}, Vector{5, 10}, Vector{10, 0})
	b := BBox(s)
	test.T(t, b.Left, 0.0)
	test.T(t, b.Right, 10.0)
	test.T(t, b.Top, 0.0)
	test.That(t, b.Bottom > 0 && b.Bottom <= 5.0, "expected the extremum to bound below the control point")
}

func TestBBoxCubicWithinConvexHull(t *testing.T) {
	s := Cubic(Vector{0, 0}, Vector{0, 10}, Vector{10, 10}, Vector{10, 0})
	b := BBox(s)
	test.That(t, b.Left >= 0 && b.Right <= 10, "expected bbox within the control hull's x-range")
	test.That(t, b.Top >= 0 && b.Bottom <= 10, "expected bbox within the control hull's y-range")
}

func TestBBoxFullCircleCoversAllQuadrants(t *testing.T) {
	// A full circle can't be expressed as one SVG arc (coincident endpoints
	// collapse to a zero-length arc), so approximate with two half-circles
	// sharing the bounding box of the whole.
	top := Arc(Vector{-5, 0}, 5, 5, 0, false, true, Vector{5, 0})
	bottom := Arc(Vector{5, 0}, 5, 5, 0, false, true, Vector{-5, 0})
	b := BBox(top).Union(BBox(bottom))
	test.That(t, math.Abs(b.Left+5) < 1e-6, "expected left extremum at -5")
	test.That(t, math.Abs(b.Right-5) < 1e-6, "expected right extremum at 5")
	test.That(t, math.Abs(b.Top+5) < 1e-6, "expected top extremum at -5")
	test.That(t, math.Abs(b.Bottom-5) < 1e-6, "expected bottom extremum at 5")
}

func TestBBoxRotatedArcFallsBackToCubicApproximation(t *testing.T) {
	s := Arc(Vector{10, 0}, 10, 5, math.Pi/4, true, true, Vector{-10, 0})
	b := BBox(s)
	test.That(t, !b.IsEmpty(), "expected a non-empty bbox for a rotated arc")
	test.That(t, b.ContainsPoint(s.P0), "expected bbox to contain the arc's start point")
	test.That(t, b.ContainsPoint(s.P1), "expected bbox to contain the arc's end point")
}
