package arrange

import (
	"sort"

	"github.com/tdewolff/pathbool/geom"
	"github.com/tdewolff/pathbool/quadtree"
)

// TagPath attaches parent to every segment of a path.
func TagPath(path []geom.Segment, parent Parent) []TaggedSegment {
	tagged := make([]TaggedSegment, len(path))
	for i, s := range path {
		tagged[i] = TaggedSegment{Seg: s, Parent: parent}
	}
	return tagged
}

// splitCubicSelfIntersections applies spec §4.3's self-intersection rule:
// a cubic that crosses itself at (t0, t1) is cut into two pieces if the two
// parameters are within Param epsilon of each other, or three otherwise,
// with every fragment inheriting the parent bit.
func splitCubicSelfIntersections(eps geom.Epsilons, segs []TaggedSegment) []TaggedSegment {
	out := make([]TaggedSegment, 0, len(segs))
	for _, ts := range segs {
		if ts.Seg.Kind != geom.CubicKind {
			out = append(out, ts)
			continue
		}
		t0, t1, ok := geom.CubicSelfIntersection(ts.Seg)
		if !ok {
			out = append(out, ts)
			continue
		}
		if t1-t0 < eps.Param {
			a, b := geom.Split(ts.Seg, t0)
			out = append(out, TaggedSegment{a, ts.Parent}, TaggedSegment{b, ts.Parent})
			continue
		}
		a, rest := geom.Split(ts.Seg, t0)
		t1r := (t1 - t0) / (1 - t0)
		b, c := geom.Split(rest, t1r)
		out = append(out, TaggedSegment{a, ts.Parent}, TaggedSegment{b, ts.Parent}, TaggedSegment{c, ts.Parent})
	}
	return out
}

// PrepareEdges implements stage 3: tag, split self-intersections, and split
// every edge at its pairwise intersections with every earlier edge,
// discovered via a quadtree over edge bounding boxes (spec §4.3).
//
// It returns the fully split edges and their overall bounding box, which is
// empty only when both inputs are empty.
func PrepareEdges(eps geom.Epsilons, aPath, bPath []geom.Segment) ([]TaggedSegment, geom.AABB) {
	segs := append(TagPath(aPath, ParentA), TagPath(bPath, ParentB)...)
	segs = splitCubicSelfIntersections(eps, segs)

	overall := geom.EmptyAABB()
	boxes := make([]geom.AABB, len(segs))
	for i, ts := range segs {
		boxes[i] = geom.BBox(ts.Seg)
		overall = overall.Union(boxes[i])
	}
	if overall.IsEmpty() {
		return nil, overall
	}

	tree := quadtree.New(overall.Grow(1), 8)
	splitParams := make([][]float64, len(segs))

	for i, ts := range segs {
		candidates := tree.Query(boxes[i])
		for _, j := range candidates {
			other := segs[j]
			sameParent := ts.Parent == other.Parent
			sharedEndpoint := ts.Seg.P0.Equal(other.Seg.P0, eps.Point) ||
				ts.Seg.P0.Equal(other.Seg.P1, eps.Point) ||
				ts.Seg.P1.Equal(other.Seg.P0, eps.Point) ||
				ts.Seg.P1.Equal(other.Seg.P1, eps.Point)
			// endpoints is false only when the two edges are from
			// different parents and share an endpoint (spec §4.3).
			includeEndpoints := sameParent || !sharedEndpoint

			zs := geom.IntersectSegments(eps, ts.Seg, other.Seg, includeEndpoints)
			for _, z := range zs {
				splitParams[i] = append(splitParams[i], z.T0)
				splitParams[j] = append(splitParams[j], z.T1)
			}
		}
		tree.Insert(boxes[i], i)
	}

	out := make([]TaggedSegment, 0, len(segs))
	for i, ts := range segs {
		out = append(out, applySplits(ts, splitParams[i], eps.Param)...)
	}
	return out, overall
}

// applySplits cuts one segment at its sorted, deduplicated split
// parameters, discarding any within Param epsilon of 0 or 1.
func applySplits(ts TaggedSegment, params []float64, paramEps float64) []TaggedSegment {
	if len(params) == 0 {
		return []TaggedSegment{ts}
	}
	sort.Float64s(params)

	var kept []float64
	for _, t := range params {
		if t <= paramEps || t >= 1-paramEps {
			continue
		}
		if len(kept) > 0 && t-kept[len(kept)-1] < paramEps {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) == 0 {
		return []TaggedSegment{ts}
	}

	out := make([]TaggedSegment, 0, len(kept)+1)
	remaining := ts.Seg
	prevT := 0.0
	for _, t := range kept {
		tt := (t - prevT) / (1 - prevT)
		a, b := geom.Split(remaining, tt)
		out = append(out, TaggedSegment{a, ts.Parent})
		remaining = b
		prevT = t
	}
	out = append(out, TaggedSegment{remaining, ts.Parent})
	return out
}
