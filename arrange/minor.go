package arrange

import "github.com/tdewolff/pathbool/geom"

// BuildMinorGraph implements stage 5: contract every maximal chain of
// degree-2 vertices between branch (or leaf) vertices into a single
// MinorEdge, and separately collect pure cycles — connected components
// whose every vertex has degree 2, which never appear as the start of a
// chain walk.
func BuildMinorGraph(g *MajorGraph) *MinorGraph {
	m := &MinorGraph{Outgoing: map[VertexID][]MinorEdgeID{}}
	var chains [][]EdgeID

	for v := range g.Vertices {
		if g.degree(VertexID(v)) == 2 {
			continue
		}
		for _, e0 := range g.Vertices[v].Outgoing {
			segs, parent, end, chain := walkChain(g, e0)
			id := MinorEdgeID(len(m.Edges))
			m.Edges = append(m.Edges, MinorEdge{
				Segments: segs,
				Parent:   parent,
				Start:    VertexID(v),
				End:      end,
				Reversed: g.Edges[e0].Reversed,
			})
			chains = append(chains, chain)
			m.Outgoing[VertexID(v)] = append(m.Outgoing[VertexID(v)], id)
		}
	}

	linkTwins(g, m, chains)

	// Degree-2 vertices inside a chain already belong to a minor edge; only
	// the ones no chain reached can lie on a pure cycle.
	visited := make([]bool, len(g.Vertices))
	for _, chain := range chains {
		for _, id := range chain {
			visited[g.Edges[id].End] = true
		}
	}
	for v := range g.Vertices {
		if g.degree(VertexID(v)) != 2 || visited[v] {
			continue
		}
		segs, parent := walkCycle(g, VertexID(v), visited)
		if segs == nil {
			continue
		}
		m.Cycles = append(m.Cycles, MinorCycle{Segments: segs, Parent: parent, Reversed: false})
	}

	return m
}

// walkChain follows twin-alternation from e0 through consecutive degree-2
// vertices, accumulating segments, until it reaches a vertex whose degree
// is not 2. It also returns the exact sequence of major-graph edges it
// traversed, which linkTwins uses to pair up parallel chains unambiguously.
//
// Every major edge on the walk shares e0's Reversed flag: at each degree-2
// vertex the only choice besides backtracking is the one edge that
// continues past it, so once a direction is picked at e0 it never changes.
// BuildMinorGraph relies on this to give the whole contracted chain a
// single Reversed bit.
func walkChain(g *MajorGraph, e0 EdgeID) ([]geom.Segment, Parent, VertexID, []EdgeID) {
	segs := []geom.Segment{g.Edges[e0].Seg}
	chain := []EdgeID{e0}
	parent := g.Edges[e0].Parent
	cur := e0
	for {
		next := g.Edges[cur].End
		if g.degree(next) != 2 {
			return segs, parent, next, chain
		}
		outs := g.Vertices[next].Outgoing
		twin := g.Edges[cur].Twin
		var forward EdgeID
		if outs[0] == twin {
			forward = outs[1]
		} else {
			forward = outs[0]
		}
		segs = append(segs, g.Edges[forward].Seg)
		chain = append(chain, forward)
		parent = parent.Union(g.Edges[forward].Parent)
		cur = forward
	}
}

// walkCycle walks a pure cycle of degree-2 vertices starting at v,
// following the same twin-alternation rule, until it returns to v. It
// marks every vertex it visits so the component isn't walked twice.
func walkCycle(g *MajorGraph, v VertexID, visited []bool) ([]geom.Segment, Parent) {
	start := v
	cur := g.Vertices[v].Outgoing[0]
	var segs []geom.Segment
	parent := Parent(0)
	visited[v] = true
	for {
		segs = append(segs, g.Edges[cur].Seg)
		parent = parent.Union(g.Edges[cur].Parent)
		next := g.Edges[cur].End
		visited[next] = true
		if next == start {
			return segs, parent
		}
		outs := g.Vertices[next].Outgoing
		twin := g.Edges[cur].Twin
		if outs[0] == twin {
			cur = outs[1]
		} else {
			cur = outs[0]
		}
	}
}

// linkTwins pairs each minor edge with the minor edge running the opposite
// way between the same pair of vertices. Two branch vertices can be joined
// by several parallel chains of equal length, so pairing on (start, end,
// segment count) alone cannot tell them apart; instead each candidate's
// underlying major-graph edge chain is compared against the exact
// twin-then-reverse of the other's chain, which is unambiguous since every
// major edge has exactly one twin.
func linkTwins(g *MajorGraph, m *MinorGraph, chains [][]EdgeID) {
	type key struct{ a, b VertexID }
	buckets := map[key][]MinorEdgeID{}
	for i, e := range m.Edges {
		k := key{e.Start, e.End}
		buckets[k] = append(buckets[k], MinorEdgeID(i))
	}
	paired := make([]bool, len(m.Edges))
	for i := range m.Edges {
		if paired[i] {
			continue
		}
		e := m.Edges[i]
		rk := key{e.End, e.Start}
		for _, j := range buckets[rk] {
			if paired[j] || !isTwinChain(g, chains[i], chains[int(j)]) {
				continue
			}
			m.Edges[i].Twin = j
			m.Edges[j].Twin = MinorEdgeID(i)
			paired[i] = true
			paired[j] = true
			break
		}
	}
}

// isTwinChain reports whether chain b is chain a, traversed back to front,
// with every major edge replaced by its twin.
func isTwinChain(g *MajorGraph, a, b []EdgeID) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	for i, id := range a {
		if b[n-1-i] != g.Edges[id].Twin {
			return false
		}
	}
	return true
}
