package arrange

import (
	"github.com/tdewolff/pathbool/geom"
	"github.com/tdewolff/pathbool/quadtree"
)

type dedupKey struct {
	lo, hi VertexID
}

type dedupRecord struct {
	seg     geom.Segment
	fwd, bwd EdgeID
}

// BuildMajorGraph implements stage 4: snap segment endpoints to vertices
// via a point quadtree, discard zero-length segments, deduplicate
// coincident parallel edges by OR-ing their parent bits, and produce a
// directed multigraph of twinned edges.
func BuildMajorGraph(eps geom.Epsilons, overall geom.AABB, segs []TaggedSegment) *MajorGraph {
	g := &MajorGraph{}
	vtree := quadtree.New(overall.Grow(1), 16)

	findOrCreate := func(p geom.Vector) VertexID {
		box := geom.PointBox(p, eps.Point)
		for _, c := range vtree.Query(box) {
			if g.Vertices[c].Point.Equal(p, eps.Point) {
				return VertexID(c)
			}
		}
		id := VertexID(len(g.Vertices))
		g.Vertices = append(g.Vertices, MajorVertex{Point: p})
		vtree.Insert(box, int(id))
		return id
	}

	dedup := map[dedupKey][]dedupRecord{}

	for _, ts := range segs {
		if geom.IsZeroLength(ts.Seg, eps.Point) {
			continue
		}
		start := findOrCreate(ts.Seg.P0)
		end := findOrCreate(ts.Seg.P1)
		if start == end && ts.Seg.Kind == geom.LineKind {
			continue
		}

		key := dedupKey{start, end}
		if key.lo > key.hi {
			key.lo, key.hi = key.hi, key.lo
		}

		if records, ok := dedup[key]; ok {
			merged := false
			for _, r := range records {
				if geom.Equal(r.seg, ts.Seg, eps.Point) || geom.Equal(geom.Reverse(r.seg), ts.Seg, eps.Point) {
					g.Edges[r.fwd].Parent = g.Edges[r.fwd].Parent.Union(ts.Parent)
					g.Edges[r.bwd].Parent = g.Edges[r.bwd].Parent.Union(ts.Parent)
					merged = true
					break
				}
			}
			if merged {
				continue
			}
		}

		fwdID := EdgeID(len(g.Edges))
		g.Edges = append(g.Edges, MajorEdge{Seg: ts.Seg, Parent: ts.Parent, Start: start, End: end, Reversed: false})
		bwdID := EdgeID(len(g.Edges))
		g.Edges = append(g.Edges, MajorEdge{Seg: geom.Reverse(ts.Seg), Parent: ts.Parent, Start: end, End: start, Reversed: true})
		g.Edges[fwdID].Twin = bwdID
		g.Edges[bwdID].Twin = fwdID

		g.Vertices[start].Outgoing = append(g.Vertices[start].Outgoing, fwdID)
		g.Vertices[end].Outgoing = append(g.Vertices[end].Outgoing, bwdID)

		dedup[key] = append(dedup[key], dedupRecord{ts.Seg, fwdID, bwdID})
	}

	return g
}
