package arrange

// FlagFaces implements stage 10: BFS from each root component's outer face
// with initial winding counts (0, 0), propagating per-input counts across
// dual edges and assigning each face a 2-bit flag (bit 0 = inside A, bit 1
// = inside B) via the given fill rules. When the BFS reaches a face that
// roots a child NestingTree, that child is flagged recursively using the
// current running counts as its entry counts.
func FlagFaces(roots []*NestingTree, dual []DualHalfEdge, faces []Face, components []Component, aFill, bFill FillRule) {
	for _, root := range roots {
		flagComponent(root, 0, 0, dual, faces, components, aFill, bFill)
	}
}

func flagComponent(tree *NestingTree, aCount, bCount int, dual []DualHalfEdge, faces []Face, components []Component, aFill, bFill FillRule) {
	comp := components[tree.Component]
	type item struct {
		face FaceID
		a, b int
	}

	visited := map[FaceID]bool{comp.OuterFace: true}
	queue := []item{{comp.OuterFace, aCount, bCount}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		faces[cur.face].Flag = aFill.apply(cur.a) | bFill.apply(cur.b)<<1

		for _, heID := range faces[cur.face].IncidentEdges {
			he := dual[heID]
			twinFace := dual[he.Twin].Face
			if visited[twinFace] {
				continue
			}
			na, nb := cur.a, cur.b
			delta := 1
			if he.Reversed {
				delta = -1
			}
			if he.Parent.HasA() {
				na += delta
			}
			if he.Parent.HasB() {
				nb += delta
			}
			visited[twinFace] = true
			queue = append(queue, item{twinFace, na, nb})
		}

		for _, child := range tree.Children[cur.face] {
			flagComponent(child, cur.a, cur.b, dual, faces, components, aFill, bFill)
		}
	}
}
