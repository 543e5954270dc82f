package datastructure

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/netgraph/pkg/geo"
)

type Index uint32

const (
	INVALID_VERTEX_ID Index = math.MaxUint32
	INVALID_EDGE_ID   Index = math.MaxUint32
)

type Vertex struct {
	lat float64
	lon float64
	id  Index
}

func NewVertex(lat, lon float64, id Index) Vertex {
	return Vertex{
		lat: lat,
		lon: lon,
		id:  id,
	}
}

func (v *Vertex) GetID() Index {
	return v.id
}

func (v *Vertex) GetLat() float64 {
	return v.lat
}

func (v *Vertex) GetLon() float64 {
	return v.lon
}

func (v *Vertex) Coordinate() geo.Coordinate {
	return geo.NewCoordinate(v.lat, v.lon)
}

// Edge directed arc from tail to head, carrying one cost per registered
// criterion plus the geometric length in meter.
type Edge struct {
	costs  []float64
	dist   float64 // meter
	edgeId Index
	tail   Index
	head   Index
}

func NewEdge(edgeId, tail, head Index, dist float64, costs []float64) Edge {
	return Edge{
		edgeId: edgeId,
		tail:   tail,
		head:   head,
		dist:   dist,
		costs:  costs,
	}
}

func (e *Edge) GetEdgeId() Index {
	return e.edgeId
}

func (e *Edge) GetTail() Index {
	return e.tail
}

func (e *Edge) GetHead() Index {
	return e.head
}

func (e *Edge) GetLength() float64 {
	return e.dist
}

// GetCost cost under criterion i. out-of-range criterion returns the length.
func (e *Edge) GetCost(criterion int) float64 {
	if criterion < 0 || criterion >= len(e.costs) {
		return e.dist
	}
	return e.costs[criterion]
}

func (e *Edge) GetCosts() []float64 {
	return e.costs
}

// Graph adjacency-list connectivity structure over geographic vertices.
// built by a director/builder pair, queried by the analysis package.
type Graph struct {
	vertices []Vertex
	edges    []Edge
	outEdges [][]Index // edge ids grouped by tail vertex
	criteria []string  // cost strategy names, index = criterion number
}

func NewGraph(criteria []string) *Graph {
	return &Graph{
		vertices: make([]Vertex, 0),
		edges:    make([]Edge, 0),
		outEdges: make([][]Index, 0),
		criteria: criteria,
	}
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *Graph) Criteria() []string {
	return g.criteria
}

// CriterionIndex criterion number for a strategy name, -1 when absent.
func (g *Graph) CriterionIndex(name string) int {
	for i, c := range g.criteria {
		if c == name {
			return i
		}
	}
	return -1
}

func (g *Graph) AddVertex(lat, lon float64) Index {
	id := Index(len(g.vertices))
	g.vertices = append(g.vertices, NewVertex(lat, lon, id))
	g.outEdges = append(g.outEdges, nil)
	return id
}

func (g *Graph) AddEdge(tail, head Index, dist float64, costs []float64) (Index, error) {
	if int(tail) >= len(g.vertices) || int(head) >= len(g.vertices) {
		return INVALID_EDGE_ID, fmt.Errorf("edge endpoints (%d, %d) out of range, graph has %d vertices",
			tail, head, len(g.vertices))
	}
	for i, c := range costs {
		if c < 0 || math.IsNaN(c) {
			return INVALID_EDGE_ID, fmt.Errorf("negative or NaN cost %f for criterion %d", c, i)
		}
	}
	id := Index(len(g.edges))
	g.edges = append(g.edges, NewEdge(id, tail, head, dist, costs))
	g.outEdges[tail] = append(g.outEdges[tail], id)
	return id, nil
}

func (g *Graph) GetVertex(id Index) *Vertex {
	return &g.vertices[id]
}

func (g *Graph) GetEdge(id Index) *Edge {
	return &g.edges[id]
}

func (g *Graph) GetVertexCoordinates(id Index) (float64, float64) {
	v := &g.vertices[id]
	return v.lat, v.lon
}

func (g *Graph) GetOutDegree(v Index) int {
	return len(g.outEdges[v])
}

// ForOutEdgesOf iterate outgoing edges of v.
func (g *Graph) ForOutEdgesOf(v Index, fn func(e *Edge)) {
	for _, eId := range g.outEdges[v] {
		fn(&g.edges[eId])
	}
}

// ForEdges iterate all edges of the graph.
func (g *Graph) ForEdges(fn func(e *Edge)) {
	for i := range g.edges {
		fn(&g.edges[i])
	}
}

// FindVertex vertex id whose coordinate matches (lat, lon) within EPS,
// INVALID_VERTEX_ID when none. linear scan, only for small graphs and tests;
// serving paths go through the r-tree.
func (g *Graph) FindVertex(lat, lon float64) Index {
	for i := range g.vertices {
		if Eq(g.vertices[i].lat, lat) && Eq(g.vertices[i].lon, lon) {
			return Index(i)
		}
	}
	return INVALID_VERTEX_ID
}

// FindNearestVertex vertex id minimizing haversine distance to (lat, lon).
func (g *Graph) FindNearestVertex(lat, lon float64) Index {
	best := INVALID_VERTEX_ID
	bestDist := math.MaxFloat64
	for i := range g.vertices {
		d := geo.CalculateHaversineDistance(lat, lon, g.vertices[i].lat, g.vertices[i].lon)
		if d < bestDist {
			bestDist = d
			best = Index(i)
		}
	}
	return best
}

// BoundingBox (minLat, minLon, maxLat, maxLon) over all vertices.
func (g *Graph) BoundingBox() (float64, float64, float64, float64) {
	minLat, minLon := math.MaxFloat64, math.MaxFloat64
	maxLat, maxLon := -math.MaxFloat64, -math.MaxFloat64
	for i := range g.vertices {
		minLat = math.Min(minLat, g.vertices[i].lat)
		minLon = math.Min(minLon, g.vertices[i].lon)
		maxLat = math.Max(maxLat, g.vertices[i].lat)
		maxLon = math.Max(maxLon, g.vertices[i].lon)
	}
	return minLat, minLon, maxLat, maxLon
}
