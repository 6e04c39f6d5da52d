package arrange

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdewolff/pathbool/geom"
)

// buildParallelChainGraph constructs, by hand, a major graph with two
// branch vertices (A, B) joined by two distinct two-segment chains of equal
// length (through M1 and through M2), plus one pendant leaf hanging off
// each branch vertex. Two same-length parallel chains between the same
// vertex pair is exactly the case that defeats a twin-pairing rule based on
// segment count alone.
func buildParallelChainGraph() *MajorGraph {
	p := func(x, y float64) geom.Vector { return geom.Vector{X: x, Y: y} }
	line := func(a, b geom.Vector) geom.Segment { return geom.Line(a, b) }

	A, M1, M2, B, P, Q := VertexID(0), VertexID(1), VertexID(2), VertexID(3), VertexID(4), VertexID(5)
	g := &MajorGraph{
		Vertices: []MajorVertex{
			{Point: p(0, 0)},   // A
			{Point: p(5, 1)},   // M1
			{Point: p(5, -1)},  // M2
			{Point: p(10, 0)},  // B
			{Point: p(-5, 0)},  // P
			{Point: p(15, 0)},  // Q
		},
	}

	addPair := func(start, end VertexID, seg geom.Segment) (EdgeID, EdgeID) {
		fwd := EdgeID(len(g.Edges))
		g.Edges = append(g.Edges, MajorEdge{Seg: seg, Parent: ParentA, Start: start, End: end, Reversed: false})
		bwd := EdgeID(len(g.Edges))
		g.Edges = append(g.Edges, MajorEdge{Seg: geom.Reverse(seg), Parent: ParentA, Start: end, End: start, Reversed: true})
		g.Edges[fwd].Twin = bwd
		g.Edges[bwd].Twin = fwd
		g.Vertices[start].Outgoing = append(g.Vertices[start].Outgoing, fwd)
		g.Vertices[end].Outgoing = append(g.Vertices[end].Outgoing, bwd)
		return fwd, bwd
	}

	addPair(A, M1, line(p(0, 0), p(5, 1)))
	addPair(M1, B, line(p(5, 1), p(10, 0)))
	addPair(A, M2, line(p(0, 0), p(5, -1)))
	addPair(M2, B, line(p(5, -1), p(10, 0)))
	addPair(A, P, line(p(0, 0), p(-5, 0)))
	addPair(B, Q, line(p(10, 0), p(15, 0)))

	return g
}

func TestBuildMinorGraphPairsParallelChainsByExactTwin(t *testing.T) {
	g := buildParallelChainGraph()
	m := BuildMinorGraph(g)

	var throughM1, throughM2 MinorEdgeID = -1, -1
	for i, e := range m.Edges {
		if e.Start != VertexID(0) || e.End != VertexID(3) {
			continue
		}
		if e.Segments[0].P1.Y > 0 {
			throughM1 = MinorEdgeID(i)
		} else {
			throughM2 = MinorEdgeID(i)
		}
	}
	require.NotEqual(t, MinorEdgeID(-1), throughM1)
	require.NotEqual(t, MinorEdgeID(-1), throughM2)
	require.NotEqual(t, throughM1, throughM2)

	twinOfM1 := m.Edges[throughM1].Twin
	twinOfM2 := m.Edges[throughM2].Twin

	require.Equal(t, VertexID(3), m.Edges[twinOfM1].Start)
	require.Equal(t, VertexID(0), m.Edges[twinOfM1].End)
	require.Equal(t, VertexID(3), m.Edges[twinOfM2].Start)
	require.Equal(t, VertexID(0), m.Edges[twinOfM2].End)

	// The chain through M1 must pair with the reverse chain through M1, not
	// the one through M2, even though both have the same segment count.
	require.InDelta(t, m.Edges[throughM1].Segments[0].P1.Y, -m.Edges[twinOfM1].Segments[len(m.Edges[twinOfM1].Segments)-1].P0.Y*-1, 1e-9)
	require.Equal(t, m.Edges[throughM1].Segments[0].P1.Y > 0, m.Edges[twinOfM1].Segments[len(m.Edges[twinOfM1].Segments)-1].P0.Y > 0)
	require.Equal(t, m.Edges[throughM2].Segments[0].P1.Y > 0, m.Edges[twinOfM2].Segments[len(m.Edges[twinOfM2].Segments)-1].P0.Y > 0)
	require.NotEqual(t, twinOfM1, twinOfM2)
}

func TestBuildMinorGraphChainReversedMatchesFirstMajorEdgeAndFlipsOnTwin(t *testing.T) {
	g := buildParallelChainGraph()
	m := BuildMinorGraph(g)

	for _, e := range m.Edges {
		require.NotEqual(t, e.Reversed, m.Edges[e.Twin].Reversed,
			"a minor edge and its twin must run in opposite directions")
	}

	// Every chain out of A was walked starting from a Reversed=false major
	// edge (addPair always stores the A->... direction as forward), so
	// every minor edge whose Start is A must inherit Reversed=false, and
	// its twin (Start=B) must be Reversed=true.
	for _, e := range m.Edges {
		if e.Start != VertexID(0) {
			continue
		}
		require.False(t, e.Reversed)
		require.True(t, m.Edges[e.Twin].Reversed)
	}
}
