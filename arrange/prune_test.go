package arrange

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdewolff/pathbool/geom"
)

// buildTailedTriangle returns a minor graph made of a 3-cycle (vertices
// 0-1-2) with a single dangling edge (a "tail") hanging off vertex 0 to
// vertex 3. The tail is not part of any cycle and must be pruned; the
// triangle's edges must all survive.
func buildTailedTriangle() *MinorGraph {
	seg := geom.Line(geom.Vector{}, geom.Vector{X: 1})
	m := &MinorGraph{Outgoing: map[VertexID][]MinorEdgeID{}}

	addPair := func(start, end VertexID) {
		fwd := MinorEdgeID(len(m.Edges))
		m.Edges = append(m.Edges, MinorEdge{Segments: []geom.Segment{seg}, Parent: ParentA, Start: start, End: end})
		bwd := MinorEdgeID(len(m.Edges))
		m.Edges = append(m.Edges, MinorEdge{Segments: []geom.Segment{seg}, Parent: ParentA, Start: end, End: start})
		m.Edges[fwd].Twin = bwd
		m.Edges[bwd].Twin = fwd
		m.Outgoing[start] = append(m.Outgoing[start], fwd)
		m.Outgoing[end] = append(m.Outgoing[end], bwd)
	}

	addPair(0, 1)
	addPair(1, 2)
	addPair(2, 0)
	addPair(0, 3) // dangling tail

	return m
}

func TestPruneDropsDanglingTailKeepsCycle(t *testing.T) {
	m := buildTailedTriangle()
	out := Prune(m)

	require.Len(t, out.Edges, 6) // 3 cycle edges, each direction
	for _, e := range out.Edges {
		require.NotEqual(t, VertexID(3), e.Start)
		require.NotEqual(t, VertexID(3), e.End)
	}
	for _, e := range out.Edges {
		require.Equal(t, e.Start, out.Edges[e.Twin].End)
		require.Equal(t, e.End, out.Edges[e.Twin].Start)
	}
}

func TestPruneKeepsPureCyclesUntouched(t *testing.T) {
	seg := geom.Line(geom.Vector{}, geom.Vector{X: 1})
	m := &MinorGraph{
		Outgoing: map[VertexID][]MinorEdgeID{},
		Cycles:   []MinorCycle{{Segments: []geom.Segment{seg, seg}, Parent: ParentB}},
	}
	out := Prune(m)
	require.Len(t, out.Cycles, 1)
	require.Empty(t, out.Edges)
}

func TestPruneRetainsBothBitsOnSharedCycleEdge(t *testing.T) {
	seg := geom.Line(geom.Vector{}, geom.Vector{X: 1})
	m := &MinorGraph{Outgoing: map[VertexID][]MinorEdgeID{}}
	addPair := func(start, end VertexID, parent Parent) {
		fwd := MinorEdgeID(len(m.Edges))
		m.Edges = append(m.Edges, MinorEdge{Segments: []geom.Segment{seg}, Parent: parent, Start: start, End: end})
		bwd := MinorEdgeID(len(m.Edges))
		m.Edges = append(m.Edges, MinorEdge{Segments: []geom.Segment{seg}, Parent: parent, Start: end, End: start})
		m.Edges[fwd].Twin = bwd
		m.Edges[bwd].Twin = fwd
		m.Outgoing[start] = append(m.Outgoing[start], fwd)
		m.Outgoing[end] = append(m.Outgoing[end], bwd)
	}
	addPair(0, 1, ParentA.Union(ParentB))
	addPair(1, 2, ParentA.Union(ParentB))
	addPair(2, 0, ParentA.Union(ParentB))

	out := Prune(m)
	require.Len(t, out.Edges, 6)
}
