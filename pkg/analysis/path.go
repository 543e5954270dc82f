package analysis

import (
	"errors"

	"github.com/lintang-b-s/netgraph/pkg"
	da "github.com/lintang-b-s/netgraph/pkg/datastructure"
	"github.com/lintang-b-s/netgraph/pkg/geo"
	"github.com/lintang-b-s/netgraph/pkg/util"
)

var (
	ErrNoPath        = errors.New("destination vertex is unreachable from the root")
	ErrCorruptedTree = errors.New("shortest path tree walk did not terminate at the root")
)

// Route reconstruct the optimal vertex path from root to target by walking
// incoming tree edges backward, then reversing. an unreachable target returns
// ErrNoPath; the walk is additionally bounded by the vertex count so a
// corrupted tree cannot loop forever.
func Route(g *da.Graph, tree []da.Index, cost []float64, root, target da.Index) ([]da.Index, error) {
	n := g.NumberOfVertices()
	if int(target) >= n || int(root) >= n {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"root %d or target %d out of range, graph has %d vertices", root, target, n)
	}
	if da.Ge(cost[target], pkg.INF_WEIGHT) {
		return nil, util.WrapErrorf(ErrNoPath, util.ErrNotFound,
			"vertex %d is unreachable from vertex %d", target, root)
	}

	backward := make([]da.Index, 0)
	cur := target
	for steps := 0; cur != root; steps++ {
		if steps > n {
			return nil, ErrCorruptedTree
		}
		eId := tree[cur]
		if eId == da.INVALID_EDGE_ID {
			return nil, ErrCorruptedTree
		}
		backward = append(backward, cur)
		cur = g.GetEdge(eId).GetTail()
	}
	backward = append(backward, root)

	return util.ReverseG(backward), nil
}

// RouteCoordinates Route, projected to vertex coordinates.
func RouteCoordinates(g *da.Graph, tree []da.Index, cost []float64, root, target da.Index) ([]geo.Coordinate, error) {
	path, err := Route(g, tree, cost, root, target)
	if err != nil {
		return nil, err
	}
	coords := make([]geo.Coordinate, len(path))
	for i, v := range path {
		lat, lon := g.GetVertexCoordinates(v)
		coords[i] = geo.NewCoordinate(lat, lon)
	}
	return coords, nil
}

// RouteLength geometric length of a vertex path in meter.
func RouteLength(g *da.Graph, path []da.Index) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		aLat, aLon := g.GetVertexCoordinates(path[i-1])
		bLat, bLon := g.GetVertexCoordinates(path[i])
		total += geo.CalculateHaversineDistance(aLat, aLon, bLat, bLon) * 1000.0
	}
	return total
}
