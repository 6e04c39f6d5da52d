package arrange

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/pathbool/geom"
)

// buildSquareMinorGraph returns a minor graph shaped like a single closed
// square: 4 vertices, 4 forward edges around the boundary and their 4
// reverse twins. With degree 2 at every vertex the incidence order at each
// vertex doesn't affect which face a walk lands on.
func buildSquareMinorGraph() *MinorGraph {
	p := func(x, y float64) geom.Vector { return geom.Vector{X: x, Y: y} }
	pts := []geom.Vector{p(0, 0), p(1, 0), p(1, 1), p(0, 1)}

	m := &MinorGraph{Outgoing: map[VertexID][]MinorEdgeID{}}
	var fwd [4]MinorEdgeID
	var bwd [4]MinorEdgeID
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		seg := geom.Line(pts[i], pts[j])
		fwd[i] = MinorEdgeID(len(m.Edges))
		m.Edges = append(m.Edges, MinorEdge{Segments: []geom.Segment{seg}, Parent: ParentA, Start: VertexID(i), End: VertexID(j)})
	}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		bwd[i] = MinorEdgeID(len(m.Edges))
		m.Edges = append(m.Edges, MinorEdge{Segments: []geom.Segment{geom.Reverse(m.Edges[fwd[i]].Segments[0])}, Parent: ParentA, Start: VertexID(j), End: VertexID(i)})
		m.Edges[fwd[i]].Twin = bwd[i]
		m.Edges[bwd[i]].Twin = fwd[i]
	}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		m.Outgoing[VertexID(i)] = append(m.Outgoing[VertexID(i)], fwd[i])
		m.Outgoing[VertexID(j)] = append(m.Outgoing[VertexID(j)], bwd[i])
	}
	return m
}

func TestBuildDualGraphSquareHasInnerAndOuterFace(t *testing.T) {
	m := buildSquareMinorGraph()
	dual, faces, components := BuildDualGraph(m)

	require.Len(t, dual, 8)
	require.Len(t, faces, 2)
	require.Len(t, components, 1)

	gotFaces := append([]FaceID(nil), components[0].Faces...)
	sort.Slice(gotFaces, func(i, j int) bool { return gotFaces[i] < gotFaces[j] })
	if diff := cmp.Diff([]FaceID{0, 1}, gotFaces); diff != "" {
		t.Errorf("component face set mismatch (-want +got):\n%s", diff)
	}

	outer := components[0].OuterFace
	inner := FaceID(0)
	if outer == inner {
		inner = FaceID(1)
	}
	require.True(t, faces[outer].isOuter)
	require.False(t, faces[inner].isOuter)
	require.Len(t, faces[outer].IncidentEdges, 4)
	require.Len(t, faces[inner].IncidentEdges, 4)
}

func TestBuildDualGraphCycleFormsInnerOuterPair(t *testing.T) {
	seg := geom.Line(geom.Vector{}, geom.Vector{X: 1})
	m := &MinorGraph{
		Outgoing: map[VertexID][]MinorEdgeID{},
		Cycles:   []MinorCycle{{Segments: []geom.Segment{seg, seg, seg}, Parent: ParentB}},
	}
	dual, faces, components := BuildDualGraph(m)
	require.Len(t, dual, 2)
	require.Len(t, faces, 2)
	require.Len(t, components, 1)
	require.Equal(t, dual[0].Twin, DualHalfEdgeID(1))
	require.Equal(t, dual[1].Twin, DualHalfEdgeID(0))
}
