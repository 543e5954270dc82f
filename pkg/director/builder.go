package director

import (
	"math"

	"github.com/lintang-b-s/netgraph/pkg"
	"github.com/lintang-b-s/netgraph/pkg/datastructure"
	"github.com/lintang-b-s/netgraph/pkg/geo"
)

// meter per degree of latitude, used only to size the dedup grid cells
const meterPerDegree = 111320.0

type cellKey struct {
	row, col int64
}

// GraphBuilder incrementally assembles a Graph, merging points that fall
// within topologyTolerance (meter) of an already registered vertex.
// tolerance zero merges only points equal at COORDINATE_PRECISION.
type GraphBuilder struct {
	graph             *datastructure.Graph
	topologyTolerance float64
	cellSizeDeg       float64
	cells             map[cellKey][]datastructure.Index
}

func NewGraphBuilder(criteria []string, topologyTolerance float64) *GraphBuilder {
	cellSize := pkg.COORDINATE_PRECISION
	if topologyTolerance > 0 {
		cellSize = topologyTolerance / meterPerDegree
	}
	return &GraphBuilder{
		graph:             datastructure.NewGraph(criteria),
		topologyTolerance: topologyTolerance,
		cellSizeDeg:       cellSize,
		cells:             make(map[cellKey][]datastructure.Index),
	}
}

func (b *GraphBuilder) cellOf(c geo.Coordinate) cellKey {
	return cellKey{
		row: int64(math.Floor(c.Lat / b.cellSizeDeg)),
		col: int64(math.Floor(c.Lon / b.cellSizeDeg)),
	}
}

func (b *GraphBuilder) matches(c geo.Coordinate, v datastructure.Index) bool {
	vLat, vLon := b.graph.GetVertexCoordinates(v)
	if b.topologyTolerance <= 0 {
		return datastructure.Eq(vLat, c.Lat) && datastructure.Eq(vLon, c.Lon)
	}
	return geo.CalculateHaversineDistance(c.Lat, c.Lon, vLat, vLon)*1000.0 <= b.topologyTolerance
}

// AddPoint register a point, reusing the vertex of any coincident point seen
// before. returns the vertex id.
func (b *GraphBuilder) AddPoint(c geo.Coordinate) datastructure.Index {
	center := b.cellOf(c)
	// tolerance can straddle a cell boundary, check the 8 neighbors too
	for dr := int64(-1); dr <= 1; dr++ {
		for dc := int64(-1); dc <= 1; dc++ {
			key := cellKey{row: center.row + dr, col: center.col + dc}
			for _, v := range b.cells[key] {
				if b.matches(c, v) {
					return v
				}
			}
		}
	}

	id := b.graph.AddVertex(c.Lat, c.Lon)
	b.cells[center] = append(b.cells[center], id)
	return id
}

// FindPoint vertex id of a previously added point, INVALID_VERTEX_ID when the
// point was never registered.
func (b *GraphBuilder) FindPoint(c geo.Coordinate) datastructure.Index {
	center := b.cellOf(c)
	for dr := int64(-1); dr <= 1; dr++ {
		for dc := int64(-1); dc <= 1; dc++ {
			key := cellKey{row: center.row + dr, col: center.col + dc}
			for _, v := range b.cells[key] {
				if b.matches(c, v) {
					return v
				}
			}
		}
	}
	return datastructure.INVALID_VERTEX_ID
}

func (b *GraphBuilder) AddEdge(tail, head datastructure.Index, dist float64, costs []float64) (datastructure.Index, error) {
	return b.graph.AddEdge(tail, head, dist, costs)
}

// Graph the assembled graph. the builder must not be reused afterwards.
func (b *GraphBuilder) Graph() *datastructure.Graph {
	return b.graph
}
