package arrange

import "github.com/tdewolff/pathbool/geom"

// BuildNestingForest implements stage 9: insert components one at a time
// into a forest whose parent/child relation is geometric containment,
// tested by horizontal-ray crossing counts against every curved edge of a
// candidate enclosing face.
func BuildNestingForest(eps geom.Epsilons, dual []DualHalfEdge, faces []Face, components []Component) []*NestingTree {
	var roots []*NestingTree

	for ci := range components {
		point := representativePoint(dual, faces, components[ci])

		if host, hostFace, ok := findEnclosingLeaf(eps, roots, dual, faces, components, point); ok {
			tree := &NestingTree{Component: ci, Children: map[FaceID][]*NestingTree{}}
			host.Children[hostFace] = append(host.Children[hostFace], tree)
			continue
		}

		newTree := &NestingTree{Component: ci, Children: map[FaceID][]*NestingTree{}}
		var remaining []*NestingTree
		for _, r := range roots {
			rp := representativePoint(dual, faces, components[r.Component])
			if hostFace, ok := enclosingFaceOf(eps, dual, faces, components[ci], rp); ok {
				newTree.Children[hostFace] = append(newTree.Children[hostFace], r)
			} else {
				remaining = append(remaining, r)
			}
		}
		roots = append(remaining, newTree)
	}

	return roots
}

// representativePoint picks the start point of an arbitrary segment on the
// component's boundary (spec §4.9 step 1).
func representativePoint(dual []DualHalfEdge, faces []Face, c Component) geom.Vector {
	for _, fid := range c.Faces {
		for _, heID := range faces[fid].IncidentEdges {
			segs := dual[heID].Segments
			if len(segs) > 0 {
				return segs[0].P0
			}
		}
	}
	return geom.Vector{}
}

// findEnclosingLeaf recursively descends the forest looking for the
// deepest face that encloses point, per spec §4.9 step 2 and its
// recursion into outgoingEdges[face].
func findEnclosingLeaf(eps geom.Epsilons, trees []*NestingTree, dual []DualHalfEdge, faces []Face, components []Component, point geom.Vector) (*NestingTree, FaceID, bool) {
	for _, t := range trees {
		comp := components[t.Component]
		for _, fid := range comp.Faces {
			if faces[fid].isOuter {
				continue
			}
			if !pointInFace(eps, dual, faces[fid], point) {
				continue
			}
			if children, ok := t.Children[fid]; ok {
				if host, hostFace, found := findEnclosingLeaf(eps, children, dual, faces, components, point); found {
					return host, hostFace, true
				}
			}
			return t, fid, true
		}
	}
	return nil, 0, false
}

// enclosingFaceOf tests whether point lies inside any non-outer face of c,
// without descending into c's own children (used for the reversed
// containment test when a new component may enclose existing roots).
func enclosingFaceOf(eps geom.Epsilons, dual []DualHalfEdge, faces []Face, c Component, point geom.Vector) (FaceID, bool) {
	for _, fid := range c.Faces {
		if faces[fid].isOuter {
			continue
		}
		if pointInFace(eps, dual, faces[fid], point) {
			return fid, true
		}
	}
	return 0, false
}

func pointInFace(eps geom.Epsilons, dual []DualHalfEdge, f Face, point geom.Vector) bool {
	count := 0
	for _, heID := range f.IncidentEdges {
		for _, seg := range dual[heID].Segments {
			count += rayCrossingsForSegment(seg, point, eps.Linear, 0)
		}
	}
	return count%2 == 1
}

const maxRayCrossingDepth = 48

// rayCrossingsForSegment counts horizontal-ray crossings of a (possibly
// curved) segment by recursively subdividing it until its bounding box is
// within Linear epsilon of a straight line, then applying the line-ray
// test (spec §4.9).
func rayCrossingsForSegment(seg geom.Segment, point geom.Vector, linearEps float64, depth int) int {
	box := geom.BBox(seg)
	if box.MaxExtent() <= linearEps || depth >= maxRayCrossingDepth {
		if geom.LineRayCrossing(seg.P0, seg.P1, point) {
			return 1
		}
		return 0
	}
	a, b := geom.Split(seg, 0.5)
	return rayCrossingsForSegment(a, point, linearEps, depth+1) + rayCrossingsForSegment(b, point, linearEps, depth+1)
}
