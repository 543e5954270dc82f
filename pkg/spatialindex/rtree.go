package spatialindex

import (
	"math"

	"github.com/lintang-b-s/netgraph/pkg/datastructure"
	"github.com/lintang-b-s/netgraph/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[EdgeEndpoint]
}

// EdgeEndpoint the two vertex ids of an indexed edge. nearest-vertex queries
// resolve against these rather than re-reading the graph.
type EdgeEndpoint struct {
	edgeId datastructure.Index
	tail   datastructure.Index
	head   datastructure.Index
}

func (ee EdgeEndpoint) GetEdgeId() datastructure.Index {
	return ee.edgeId
}

func (ee EdgeEndpoint) GetTail() datastructure.Index {
	return ee.tail
}

func (ee EdgeEndpoint) GetHead() datastructure.Index {
	return ee.head
}

func newEdgeEndpoint(edgeId, tail, head datastructure.Index) EdgeEndpoint {
	return EdgeEndpoint{
		edgeId: edgeId,
		tail:   tail,
		head:   head,
	}
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[EdgeEndpoint]
	return &Rtree{
		tr: &tr,
	}
}

// Build. build r-tree over graph edges, with each leaf having bounding box padded by boundingBoxRadius (in km)
func (rt *Rtree) Build(graph *datastructure.Graph, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	graph.ForEdges(func(e *datastructure.Edge) {
		from := e.GetTail()
		to := e.GetHead()

		fromLat, fromLon := graph.GetVertexCoordinates(from)
		toLat, toLon := graph.GetVertexCoordinates(to)
		lowerFromLat, lowerFromLon := geo.GetDestinationPoint(fromLat, fromLon, 225, boundingBoxRadius)
		upperFromLat, upperFromLon := geo.GetDestinationPoint(fromLat, fromLon, 45, boundingBoxRadius)

		lowerToLat, lowerToLon := geo.GetDestinationPoint(toLat, toLon, 225, boundingBoxRadius)
		upperToLat, upperToLon := geo.GetDestinationPoint(toLat, toLon, 45, boundingBoxRadius)

		minLat := math.Min(lowerFromLat, lowerToLat)
		minLon := math.Min(lowerFromLon, lowerToLon)
		maxLat := math.Max(upperFromLat, upperToLat)
		maxLon := math.Max(upperFromLon, upperToLon)

		rt.tr.Insert([2]float64{minLon, minLat}, [2]float64{maxLon, maxLat},
			newEdgeEndpoint(e.GetEdgeId(), from, to))
	})

	log.Info("R-tree spatial index built.", zap.Int("edges", graph.NumberOfEdges()))
}

// SearchWithinRadius search for all edge endpoints within radius (in km) from the query point (qLat, qLon)
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []EdgeEndpoint {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]EdgeEndpoint, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data EdgeEndpoint) bool {
			results = append(results, data)
			if len(results) >= 20 {
				return false
			}
			return true
		})
	return results
}

// SnapToNearestVertex nearest graph vertex to (qLat, qLon) among edges within
// radius km. INVALID_VERTEX_ID when nothing is close enough.
func (rt *Rtree) SnapToNearestVertex(graph *datastructure.Graph, qLat, qLon, radius float64) datastructure.Index {
	best := datastructure.INVALID_VERTEX_ID
	bestDist := math.MaxFloat64

	for _, ee := range rt.SearchWithinRadius(qLat, qLon, radius) {
		for _, v := range [2]datastructure.Index{ee.tail, ee.head} {
			lat, lon := graph.GetVertexCoordinates(v)
			d := geo.CalculateHaversineDistance(qLat, qLon, lat, lon)
			if d < bestDist {
				bestDist = d
				best = v
			}
		}
	}
	return best
}
