package arrange

import "github.com/tdewolff/pathbool/geom"

// Run executes the full arrangement pipeline (stages 3-11) over two tagged
// input paths and returns the boolean combination selected by op.
func Run(eps geom.Epsilons, a []geom.Segment, aFill FillRule, b []geom.Segment, bFill FillRule, op Op) [][]geom.Segment {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}

	split, overall := PrepareEdges(eps, a, b)
	if overall.IsEmpty() {
		return nil
	}

	major := BuildMajorGraph(eps, overall, split)
	minor := BuildMinorGraph(major)
	minor = Prune(minor)
	AngularOrder(eps, minor)

	dual, faces, components := BuildDualGraph(minor)
	roots := BuildNestingForest(eps, dual, faces, components)
	FlagFaces(roots, dual, faces, components, aFill, bFill)

	return Extract(op, dual, faces, components, roots)
}
