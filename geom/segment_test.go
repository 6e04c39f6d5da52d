package geom

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestSampleLine(t *testing.T) {
	s := Line(Vector{0, 0}, Vector{10, 0})
	test.T(t, Sample(s, 0), Vector{0, 0})
	test.T(t, Sample(s, 0.5), Vector{5, 0})
	test.T(t, Sample(s, 1), Vector{10, 0})
}

func TestSampleQuadratic(t *testing.T) {
	s := Quadratic(Vector{0, 0}, Vector{5, 10}, Vector{10, 0})
	mid := Sample(s, 0.5)
	test.T(t, mid, Vector{5, 5})
}

func TestSampleCubic(t *testing.T) {
	s := Cubic(Vector{0, 0}, Vector{0, 10}, Vector{10, 10}, Vector{10, 0})
	test.T(t, Sample(s, 0), s.P0)
	test.T(t, Sample(s, 1), s.P1)
}

func TestReverseLine(t *testing.T) {
	s := Line(Vector{0, 0}, Vector{10, 0})
	r := Reverse(s)
	test.T(t, r.P0, s.P1)
	test.T(t, r.P1, s.P0)
}

func TestReverseCubicSwapsControlPoints(t *testing.T) {
	s := Cubic(Vector{0, 0}, Vector{1, 1}, Vector{2, 2}, Vector{3, 3})
	r := Reverse(s)
	test.T(t, r.C1, s.C2)
	test.T(t, r.C2, s.C1)
}

func TestReverseArcFlipsSweep(t *testing.T) {
	s := Arc(Vector{0, 0}, 5, 5, 0, false, true, Vector{10, 0})
	r := Reverse(s)
	test.T(t, r.Sweep, false)
}

func TestSplitLineAtMidpoint(t *testing.T) {
	s := Line(Vector{0, 0}, Vector{10, 0})
	a, b := Split(s, 0.5)
	test.T(t, a.P1, Vector{5, 0})
	test.T(t, b.P0, Vector{5, 0})
	test.T(t, a.P0, s.P0)
	test.T(t, b.P1, s.P1)
}

func TestSplitCubicEndpointsMatchOriginal(t *testing.T) {
	s := Cubic(Vector{0, 0}, Vector{0, 10}, Vector{10, 10}, Vector{10, 0})
	a, b := Split(s, 0.3)
	test.T(t, a.P0, s.P0)
	test.T(t, b.P1, s.P1)
	test.T(t, a.P1, b.P0)
	test.That(t, a.P1.Equal(Sample(s, 0.3), 1e-9), "split point should match direct sample")
}

func TestSplitQuadraticRejoinsAtParam(t *testing.T) {
	s := Quadratic(Vector{0, 0}, Vector{5, 10}, Vector{10, 0})
	a, b := Split(s, 0.4)
	test.That(t, a.P1.Equal(Sample(s, 0.4), 1e-9), "split point should match direct sample")
	test.T(t, a.P1, b.P0)
}

func TestEqualSegments(t *testing.T) {
	var tts = []struct {
		a, b Segment
		want bool
	}{
		{Line(Vector{0, 0}, Vector{1, 1}), Line(Vector{0, 0}, Vector{1, 1}), true},
		{Line(Vector{0, 0}, Vector{1, 1}), Line(Vector{0, 0}, Vector{1, 2}), false},
		{Line(Vector{0, 0}, Vector{1, 1}), Cubic(Vector{0, 0}, Vector{}, Vector{}, Vector{1, 1}), false},
		{Cubic(Vector{0, 0}, Vector{1, 0}, Vector{2, 0}, Vector{3, 0}), Cubic(Vector{0, 0}, Vector{1, 0}, Vector{2, 0}, Vector{3, 0}), true},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, Equal(tt.a, tt.b, 1e-9), tt.want)
		})
	}
}

func TestEqualArcRotationInvarianceWhenCircular(t *testing.T) {
	a := Arc(Vector{0, 0}, 5, 5, 0, false, true, Vector{10, 0})
	b := Arc(Vector{0, 0}, 5, 5, math.Pi/4, false, true, Vector{10, 0})
	test.That(t, Equal(a, b, 1e-9), "circular arcs should be equal regardless of phi")
}

func TestIsZeroLength(t *testing.T) {
	var tts = []struct {
		s    Segment
		want bool
	}{
		{Line(Vector{1, 1}, Vector{1, 1}), true},
		{Line(Vector{1, 1}, Vector{1, 2}), false},
		{Quadratic(Vector{1, 1}, Vector{1, 1}, Vector{1, 1}), true},
		{Quadratic(Vector{1, 1}, Vector{2, 2}, Vector{1, 1}), false},
		{Cubic(Vector{1, 1}, Vector{1, 1}, Vector{1, 1}, Vector{1, 1}), true},
		{Cubic(Vector{1, 1}, Vector{2, 2}, Vector{1, 1}, Vector{1, 1}), false},
		{Arc(Vector{1, 1}, 5, 5, 0, false, false, Vector{1, 1}), true},
		{Arc(Vector{1, 1}, 5, 5, 0, false, true, Vector{1, 1}), false},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, IsZeroLength(tt.s, 1e-9), tt.want)
		})
	}
}
