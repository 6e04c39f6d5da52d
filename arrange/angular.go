package arrange

import (
	"math"
	"sort"

	"github.com/tdewolff/pathbool/geom"
)

// AngularOrder implements stage 7: at each branch vertex, sort outgoing
// minor edges by the incidence angle of their first segment, sampled near
// the vertex. Angles are memoized per edge in a dense array indexed by
// MinorEdgeID (spec §9's "Memoization").
func AngularOrder(eps geom.Epsilons, m *MinorGraph) {
	m.AngleAt = make([]float64, len(m.Edges))
	for i, e := range m.Edges {
		m.AngleAt[i] = incidenceAngle(eps, e)
	}

	for v, edges := range m.Outgoing {
		sorted := append([]MinorEdgeID(nil), edges...)
		sort.Slice(sorted, func(i, j int) bool {
			return m.AngleAt[sorted[i]] < m.AngleAt[sorted[j]]
		})
		m.Outgoing[v] = sorted
	}
}

// incidenceAngle samples the chain's first segment near its origin, per
// spec §4.7. Segments is always stored oriented away from Start regardless
// of Reversed (major.go stores geom.Reverse in the backward half-edge
// before minor.go copies it into Segments), so there is no separate
// backward case to sample.
func incidenceAngle(eps geom.Epsilons, e MinorEdge) float64 {
	seg := e.Segments[0]
	dir := geom.Sample(seg, eps.Param).Sub(geom.Sample(seg, 0))
	return math.Atan2(dir.Y, dir.X)
}
