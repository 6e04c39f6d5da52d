package arrange

import (
	"math"

	"github.com/tdewolff/pathbool/geom"
)

// BuildDualGraph implements stage 8: walk next-edge-around-face to
// enumerate faces per connected component, attach each pure cycle as an
// inner/outer face pair, and identify each component's outer face by a
// winding test on a sampled polygon.
func BuildDualGraph(m *MinorGraph) ([]DualHalfEdge, []Face, []Component) {
	n := len(m.Edges)
	dual := make([]DualHalfEdge, n+2*len(m.Cycles))

	for i, e := range m.Edges {
		dual[i] = DualHalfEdge{
			Segments: e.Segments,
			Parent:   e.Parent,
			Reversed: e.Reversed,
			Twin:     DualHalfEdgeID(e.Twin),
			minorEdge: MinorEdgeID(i),
		}
	}
	for i, c := range m.Cycles {
		innerID := DualHalfEdgeID(n + 2*i)
		outerID := DualHalfEdgeID(n + 2*i + 1)
		reversedSegs := make([]geom.Segment, len(c.Segments))
		for k, s := range c.Segments {
			reversedSegs[len(c.Segments)-1-k] = geom.Reverse(s)
		}
		dual[innerID] = DualHalfEdge{Segments: c.Segments, Parent: c.Parent, Reversed: false, Twin: outerID, fromCycle: true, minorCyc: MinorCycleID(i)}
		dual[outerID] = DualHalfEdge{Segments: reversedSegs, Parent: c.Parent, Reversed: true, Twin: innerID, fromCycle: true, minorCyc: MinorCycleID(i)}
	}

	nextEdge := func(e DualHalfEdgeID) DualHalfEdgeID {
		if dual[e].fromCycle {
			return e
		}
		me := MinorEdgeID(e)
		v := m.Edges[me].End
		twinMinor := m.Edges[me].Twin
		outs := m.Outgoing[v]
		pos := -1
		for i, o := range outs {
			if o == twinMinor {
				pos = i
				break
			}
		}
		assert(pos >= 0, "twin minor edge missing from vertex outgoing list")
		// Taking the edge just before the twin in ascending angle order
		// walks bounded faces counter-clockwise (positive shoelace area),
		// so the outer face is the one with negative area.
		return DualHalfEdgeID(outs[(pos+len(outs)-1)%len(outs)])
	}

	visited := make([]bool, len(dual))
	var faces []Face
	for start := range dual {
		if visited[start] {
			continue
		}
		faceID := FaceID(len(faces))
		var incident []DualHalfEdgeID
		cur := DualHalfEdgeID(start)
		for {
			visited[cur] = true
			dual[cur].Face = faceID
			incident = append(incident, cur)
			cur = nextEdge(cur)
			if int(cur) == start {
				break
			}
			assert(!visited[cur] || int(cur) == start, "face walk revisited a half-edge without closing")
		}
		faces = append(faces, Face{IncidentEdges: incident})
	}

	components := extractComponents(dual, faces)
	markOuterFaces(dual, faces, components)
	return dual, faces, components
}

// extractComponents groups faces into connected components via the
// twin-adjacency of their incident dual half-edges.
func extractComponents(dual []DualHalfEdge, faces []Face) []Component {
	parent := make([]int, len(faces))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for i, f := range faces {
		for _, heID := range f.IncidentEdges {
			twin := dual[heID].Twin
			union(i, int(dual[twin].Face))
		}
	}

	groups := map[int][]FaceID{}
	for i := range faces {
		r := find(i)
		groups[r] = append(groups[r], FaceID(i))
		faces[i].component = r
	}

	// Stable order: sort by minimum face id in each group.
	var roots []int
	for r := range groups {
		roots = append(roots, r)
	}
	for i := 0; i < len(roots); i++ {
		for j := i + 1; j < len(roots); j++ {
			if roots[j] < roots[i] {
				roots[i], roots[j] = roots[j], roots[i]
			}
		}
	}

	components := make([]Component, len(roots))
	rootIndex := map[int]int{}
	for idx, r := range roots {
		rootIndex[r] = idx
		components[idx] = Component{Faces: groups[r]}
	}
	for i := range faces {
		faces[i].component = rootIndex[find(i)]
	}
	return components
}

// markOuterFaces implements the §4.8 outer-face test: tessellate each
// face's boundary at 64 samples per segment, compute its signed area, and
// mark the unique negative-area face per component as the outer face.
func markOuterFaces(dual []DualHalfEdge, faces []Face, components []Component) {
	for ci, comp := range components {
		best := -1
		bestArea := math.Inf(1)
		for _, fid := range comp.Faces {
			area := signedFaceArea(dual, faces[fid])
			if area < bestArea {
				bestArea = area
				best = int(fid)
			}
		}
		assert(best >= 0, "component has no faces")
		faces[best].isOuter = true
		components[ci].OuterFace = FaceID(best)
	}
}

const outerFaceSamplesPerSegment = 64

func signedFaceArea(dual []DualHalfEdge, f Face) float64 {
	var pts []geom.Vector
	for _, heID := range f.IncidentEdges {
		for _, seg := range dual[heID].Segments {
			for i := 0; i < outerFaceSamplesPerSegment; i++ {
				t := float64(i) / outerFaceSamplesPerSegment
				pts = append(pts, geom.Sample(seg, t))
			}
		}
	}
	if len(pts) < 3 {
		return 0
	}
	area := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return area / 2
}
