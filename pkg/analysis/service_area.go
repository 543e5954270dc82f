package analysis

import (
	"github.com/lintang-b-s/netgraph/pkg"
	da "github.com/lintang-b-s/netgraph/pkg/datastructure"
)

// ServiceArea vertices reachable within budget under the cost array of a
// shortest path tree, plus the ids of edges crossing the budget boundary
// (tail inside, head outside or unreachable). the crossing edges delimit the
// area of availability around the tree root.
func ServiceArea(g *da.Graph, cost []float64, budget float64) ([]da.Index, []da.Index) {
	inside := make([]da.Index, 0)
	insideSet := make(map[da.Index]struct{})
	for v := da.Index(0); int(v) < len(cost); v++ {
		if da.Le(cost[v], budget) && da.Lt(cost[v], pkg.INF_WEIGHT) {
			inside = append(inside, v)
			insideSet[v] = struct{}{}
		}
	}

	boundary := make([]da.Index, 0)
	for _, v := range inside {
		g.ForOutEdgesOf(v, func(e *da.Edge) {
			if _, ok := insideSet[e.GetHead()]; !ok {
				boundary = append(boundary, e.GetEdgeId())
			}
		})
	}

	return inside, boundary
}
