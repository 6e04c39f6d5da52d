package arrange

import "github.com/tdewolff/pathbool/geom"

// Extract implements stage 11. Union/Difference/Intersection/Exclusion
// produce exactly one Path, built by walking the boundary of the selected
// region and skipping over interior/exterior edges. Division/Fracture
// produce zero or more Paths, one per selected non-outer face, with any
// selected-or-not child components' outer boundaries appended as holes.
func Extract(op Op, dual []DualHalfEdge, faces []Face, components []Component, roots []*NestingTree) [][]geom.Segment {
	if isBoundaryWalk(op) {
		return [][]geom.Segment{walkBoundary(op, dual, faces)}
	}
	return extractFaces(op, dual, faces, components, roots)
}

func nextInFaceMap(faces []Face) map[DualHalfEdgeID]DualHalfEdgeID {
	next := map[DualHalfEdgeID]DualHalfEdgeID{}
	for _, f := range faces {
		n := len(f.IncidentEdges)
		for i, he := range f.IncidentEdges {
			next[he] = f.IncidentEdges[(i+1)%n]
		}
	}
	return next
}

func walkBoundary(op Op, dual []DualHalfEdge, faces []Face) []geom.Segment {
	removed := make(map[DualHalfEdgeID]bool, len(dual))
	for id, he := range dual {
		a := selected(op, faces[he.Face].Flag)
		b := selected(op, faces[dual[he.Twin].Face].Flag)
		removed[DualHalfEdgeID(id)] = a == b
	}

	next := nextInFaceMap(faces)
	nextBoundary := func(he DualHalfEdgeID) DualHalfEdgeID {
		cur := next[he]
		for i := 0; removed[cur]; i++ {
			assert(i <= len(dual), "boundary walk failed to find a retained edge")
			cur = next[dual[cur].Twin]
		}
		return cur
	}

	visited := make([]bool, len(dual))
	var out []geom.Segment
	for id := range dual {
		start := DualHalfEdgeID(id)
		if removed[start] || visited[start] || !selected(op, faces[dual[start].Face].Flag) {
			continue
		}
		cur := start
		for {
			visited[cur] = true
			out = append(out, dual[cur].Segments...)
			cur = nextBoundary(cur)
			if cur == start {
				break
			}
		}
	}
	return out
}

func extractFaces(op Op, dual []DualHalfEdge, faces []Face, components []Component, roots []*NestingTree) [][]geom.Segment {
	nodeByComponent := map[int]*NestingTree{}
	var collect func(t *NestingTree)
	collect = func(t *NestingTree) {
		nodeByComponent[t.Component] = t
		for _, children := range t.Children {
			for _, c := range children {
				collect(c)
			}
		}
	}
	for _, r := range roots {
		collect(r)
	}

	var out [][]geom.Segment
	for ci, comp := range components {
		node := nodeByComponent[ci]
		for _, fid := range comp.Faces {
			if faces[fid].isOuter || !selected(op, faces[fid].Flag) {
				continue
			}
			path := boundarySegments(dual, faces[fid])
			if node != nil {
				for _, child := range node.Children[fid] {
					hole := boundarySegments(dual, faces[components[child.Component].OuterFace])
					path = append(path, reversePath(hole)...)
				}
			}
			out = append(out, path)
		}
	}
	return out
}

func boundarySegments(dual []DualHalfEdge, f Face) []geom.Segment {
	var out []geom.Segment
	for _, heID := range f.IncidentEdges {
		out = append(out, dual[heID].Segments...)
	}
	return out
}

func reversePath(segs []geom.Segment) []geom.Segment {
	out := make([]geom.Segment, len(segs))
	for i, s := range segs {
		out[len(segs)-1-i] = geom.Reverse(s)
	}
	return out
}
