package usecases

import (
	"github.com/lintang-b-s/netgraph/pkg/analysis"
	"github.com/lintang-b-s/netgraph/pkg/datastructure"
	"github.com/lintang-b-s/netgraph/pkg/geo"
	"github.com/lintang-b-s/netgraph/pkg/util"
	"go.uber.org/zap"
)

// NetworkService network analysis queries over one loaded graph. query
// coordinates are snapped to the nearest graph vertex through the spatial
// index before any tree computation.
type NetworkService struct {
	log          *zap.Logger
	graph        *datastructure.Graph
	spatialIndex SpatialIndex
	searchRadius float64 // km
}

func NewNetworkService(log *zap.Logger, graph *datastructure.Graph, spatialindex SpatialIndex,
	searchRadius float64) *NetworkService {
	return &NetworkService{
		log:          log,
		graph:        graph,
		spatialIndex: spatialindex,
		searchRadius: searchRadius,
	}
}

func (ns *NetworkService) criterionIndex(name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	ci := ns.graph.CriterionIndex(name)
	if ci < 0 {
		return 0, util.WrapErrorf(nil, util.ErrBadParamInput,
			"unknown cost criterion %q, graph has %v", name, ns.graph.Criteria())
	}
	return ci, nil
}

func (ns *NetworkService) snap(lat, lon float64) (datastructure.Index, error) {
	v := ns.spatialIndex.SnapToNearestVertex(ns.graph, lat, lon, ns.searchRadius)
	if v == datastructure.INVALID_VERTEX_ID {
		return v, util.WrapErrorf(nil, util.ErrNotFound,
			"no network vertex within %.3f km of %f,%f", ns.searchRadius, lat, lon)
	}
	return v, nil
}

// ShortestPath cumulative cost, geometric distance (meter) and encoded
// polyline of the optimal path between the two snapped coordinates.
func (ns *NetworkService) ShortestPath(origLat, origLon, dstLat, dstLon float64,
	criterion string) (float64, float64, string, error) {
	ci, err := ns.criterionIndex(criterion)
	if err != nil {
		return 0, 0, "", err
	}

	s, err := ns.snap(origLat, origLon)
	if err != nil {
		return 0, 0, "", err
	}
	t, err := ns.snap(dstLat, dstLon)
	if err != nil {
		return 0, 0, "", err
	}

	dijkstra := analysis.NewDijkstra(ns.graph, ci)
	tree, cost, err := dijkstra.ShortestPathTree(s)
	if err != nil {
		return 0, 0, "", err
	}

	path, err := analysis.Route(ns.graph, tree, cost, s, t)
	if err != nil {
		return 0, 0, "", err
	}

	coords := make([]geo.Coordinate, len(path))
	for i, v := range path {
		lat, lon := ns.graph.GetVertexCoordinates(v)
		coords[i] = geo.NewCoordinate(lat, lon)
	}

	dist := analysis.RouteLength(ns.graph, path)
	pathPolyline := geo.PolylineFromCoords(coords)

	return cost[t], dist, pathPolyline, nil
}

// ServiceArea coordinates of vertices reachable within budget from the
// snapped origin, plus the outside endpoints of boundary-crossing edges.
func (ns *NetworkService) ServiceArea(lat, lon, budget float64,
	criterion string) ([]geo.Coordinate, []geo.Coordinate, error) {
	ci, err := ns.criterionIndex(criterion)
	if err != nil {
		return nil, nil, err
	}

	s, err := ns.snap(lat, lon)
	if err != nil {
		return nil, nil, err
	}

	dijkstra := analysis.NewDijkstra(ns.graph, ci)
	_, cost, err := dijkstra.ShortestPathTree(s)
	if err != nil {
		return nil, nil, err
	}

	insideVertices, boundaryEdges := analysis.ServiceArea(ns.graph, cost, budget)

	inside := make([]geo.Coordinate, len(insideVertices))
	for i, v := range insideVertices {
		vLat, vLon := ns.graph.GetVertexCoordinates(v)
		inside[i] = geo.NewCoordinate(vLat, vLon)
	}

	boundary := make([]geo.Coordinate, len(boundaryEdges))
	for i, e := range boundaryEdges {
		head := ns.graph.GetEdge(e).GetHead()
		hLat, hLon := ns.graph.GetVertexCoordinates(head)
		boundary[i] = geo.NewCoordinate(hLat, hLon)
	}

	return inside, boundary, nil
}

// TiePoint coordinate of the snapped network vertex for a query point.
func (ns *NetworkService) TiePoint(lat, lon float64) (geo.Coordinate, error) {
	v, err := ns.snap(lat, lon)
	if err != nil {
		return geo.Coordinate{}, err
	}
	vLat, vLon := ns.graph.GetVertexCoordinates(v)
	return geo.NewCoordinate(vLat, vLon), nil
}
