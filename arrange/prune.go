package arrange

// Prune implements stage 6: for each parent bit independently, DFS from
// every vertex, computing per vertex the minimum depth reachable from its
// subtree (ignoring the edge just arrived on). A vertex lies on a cycle iff
// some back edge — from itself or from a descendant, but never the tree
// edge just arrived on — closes at or above its own depth. An edge
// survives if, for either parent bit it carries, both endpoints lie on a
// cycle for that bit. Pure cycles are always retained: by construction
// every vertex on one already lies on a cycle.
func Prune(m *MinorGraph) *MinorGraph {
	retainedA := cycleMembership(m, ParentA)
	retainedB := cycleMembership(m, ParentB)

	keep := make([]bool, len(m.Edges))
	for i, e := range m.Edges {
		if e.Parent.HasA() && retainedA[e.Start] && retainedA[e.End] {
			keep[i] = true
		}
		if e.Parent.HasB() && retainedB[e.Start] && retainedB[e.End] {
			keep[i] = true
		}
	}

	out := &MinorGraph{Cycles: m.Cycles, Outgoing: map[VertexID][]MinorEdgeID{}}
	remap := make([]MinorEdgeID, len(m.Edges))
	for i := range remap {
		remap[i] = -1
	}
	for i, e := range m.Edges {
		if !keep[i] {
			continue
		}
		remap[i] = MinorEdgeID(len(out.Edges))
		out.Edges = append(out.Edges, e)
	}
	// Fix up twins and outgoing lists now that the new indices are stable.
	for oldID, newID := range remap {
		if newID < 0 {
			continue
		}
		oldTwin := m.Edges[oldID].Twin
		out.Edges[newID].Twin = remap[oldTwin]
		out.Outgoing[m.Edges[oldID].Start] = append(out.Outgoing[m.Edges[oldID].Start], newID)
	}
	return out
}

// cycleMembership runs the per-parent-bit DFS and returns, for every vertex
// touched by an edge carrying that parent bit, whether it lies on a cycle.
func cycleMembership(m *MinorGraph, bit Parent) map[VertexID]bool {
	adj := map[VertexID][]MinorEdgeID{}
	for v, edges := range m.Outgoing {
		for _, eid := range edges {
			if m.Edges[eid].Parent&bit != 0 {
				adj[v] = append(adj[v], eid)
			}
		}
	}

	depth := map[VertexID]int{}
	low := map[VertexID]int{}
	visited := map[VertexID]bool{}
	retained := map[VertexID]bool{}

	var dfs func(v VertexID, arrivedVia MinorEdgeID, d int)
	dfs = func(v VertexID, arrivedVia MinorEdgeID, d int) {
		visited[v] = true
		depth[v] = d
		low[v] = d
		onCycle := false
		for _, eid := range adj[v] {
			if eid == arrivedVia {
				continue
			}
			e := m.Edges[eid]
			w := e.End
			if !visited[w] {
				dfs(w, e.Twin, d+1)
				if low[w] < low[v] {
					low[v] = low[w]
				}
				// The child's subtree reaches back to v or above: the
				// cycle it closes passes through v too.
				if low[w] <= d {
					onCycle = true
				}
			} else if depth[w] < low[v] {
				// A back edge to a strict ancestor: v sits on the cycle
				// it closes.
				low[v] = depth[w]
				onCycle = true
			}
		}
		if onCycle {
			retained[v] = true
		}
	}

	for v := range adj {
		if !visited[v] {
			dfs(v, -1, 0)
		}
	}
	return retained
}
