package director

import (
	"fmt"
	"math"
	"sort"

	"github.com/lintang-b-s/netgraph/pkg"
	"github.com/lintang-b-s/netgraph/pkg/costfunction"
	"github.com/lintang-b-s/netgraph/pkg/datastructure"
	"github.com/lintang-b-s/netgraph/pkg/geo"
	"github.com/lintang-b-s/netgraph/pkg/util"
)

// Director drives graph construction: feeds line geometry into a builder and
// ties extra query points onto the resulting connectivity structure.
type Director interface {
	MakeGraph(builder *GraphBuilder, additionalPoints []geo.Coordinate) ([]geo.Coordinate, error)
}

// LineDirector builds a directed graph from polyline records. edge direction
// comes from a direction attribute field compared against three marker
// values; records with no marker (or no direction field) fall back to
// defaultDirection. every registered strategy contributes one cost per edge.
type LineDirector struct {
	records          []LineRecord
	directionFieldId int
	directValue      string
	reverseValue     string
	bothValue        string
	defaultDirection pkg.EdgeDirection
	strategies       []costfunction.Strategy
}

func NewLineDirector(records []LineRecord, directionFieldId int,
	directValue, reverseValue, bothValue string,
	defaultDirection pkg.EdgeDirection) *LineDirector {
	return &LineDirector{
		records:          records,
		directionFieldId: directionFieldId,
		directValue:      directValue,
		reverseValue:     reverseValue,
		bothValue:        bothValue,
		defaultDirection: defaultDirection,
	}
}

func (d *LineDirector) AddStrategy(s costfunction.Strategy) {
	d.strategies = append(d.strategies, s)
}

func (d *LineDirector) StrategyNames() []string {
	names := make([]string, len(d.strategies))
	for i, s := range d.strategies {
		names[i] = s.Name()
	}
	return names
}

type segment struct {
	record int
	a, b   geo.Coordinate
}

// MakeGraph build the graph from all records and snap additionalPoints onto
// it. each point attaches to the closest registered vertex, or, when a
// strictly closer point lies in a segment interior, that segment is split and
// a new vertex inserted at the projection. returned tied points positionally
// match additionalPoints.
//
// tie-break: candidates must be strictly closer (beyond EPS) to win, vertices
// are scanned before segment interiors, segments in record order. so on ties
// the earliest candidate is kept.
func (d *LineDirector) MakeGraph(builder *GraphBuilder, additionalPoints []geo.Coordinate) ([]geo.Coordinate, error) {
	segments := d.collectSegments()
	if len(segments) == 0 && len(additionalPoints) > 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"cannot tie %d points onto an empty graph", len(additionalPoints))
	}

	// register every endpoint first so tied points can snap onto shared
	// vertices, not just the segment they came from
	for _, s := range segments {
		builder.AddPoint(s.a)
		builder.AddPoint(s.b)
	}

	tied := make([]geo.Coordinate, len(additionalPoints))
	splits := make(map[int][]geo.Coordinate)

	for i, p := range additionalPoints {
		snap, segIdx := d.snapPoint(builder, segments, p)
		tied[i] = snap
		if segIdx >= 0 {
			builder.AddPoint(snap)
			splits[segIdx] = append(splits[segIdx], snap)
		}
	}

	for idx, s := range segments {
		chain := splitChain(s, splits[idx])
		rec := &d.records[s.record]
		direction := d.resolveDirection(rec)

		for k := 1; k < len(chain); k++ {
			u, v := chain[k-1], chain[k]
			dist := geo.CalculateHaversineDistance(u.Lat, u.Lon, v.Lat, v.Lon) * 1000.0

			costs := make([]float64, len(d.strategies))
			for ci, strat := range d.strategies {
				costs[ci] = strat.Cost(dist, rec)
			}

			uId := builder.AddPoint(u)
			vId := builder.AddPoint(v)

			if direction == pkg.DIRECTION_FORWARD || direction == pkg.DIRECTION_BOTH {
				if _, err := builder.AddEdge(uId, vId, dist, costs); err != nil {
					return nil, fmt.Errorf("record %d: %w", s.record, err)
				}
			}
			if direction == pkg.DIRECTION_BACKWARD || direction == pkg.DIRECTION_BOTH {
				costsRev := make([]float64, len(costs))
				copy(costsRev, costs)
				if _, err := builder.AddEdge(vId, uId, dist, costsRev); err != nil {
					return nil, fmt.Errorf("record %d: %w", s.record, err)
				}
			}
		}
	}

	return tied, nil
}

func (d *LineDirector) collectSegments() []segment {
	segments := make([]segment, 0)
	for ri := range d.records {
		geom := d.records[ri].geometry
		for i := 1; i < len(geom); i++ {
			a, b := geom[i-1], geom[i]
			if datastructure.Eq(a.Lat, b.Lat) && datastructure.Eq(a.Lon, b.Lon) {
				continue
			}
			segments = append(segments, segment{record: ri, a: a, b: b})
		}
	}
	return segments
}

// snapPoint closest vertex or segment-interior projection for p. returns the
// snapped coordinate and the index of the segment to split, -1 when p
// attaches to an existing vertex.
func (d *LineDirector) snapPoint(builder *GraphBuilder, segments []segment,
	p geo.Coordinate) (geo.Coordinate, int) {
	g := builder.Graph()

	bestDist := math.MaxFloat64
	best := p
	bestSeg := -1

	if v := g.FindNearestVertex(p.Lat, p.Lon); v != datastructure.INVALID_VERTEX_ID {
		lat, lon := g.GetVertexCoordinates(v)
		bestDist = geo.CalculateHaversineDistance(p.Lat, p.Lon, lat, lon) * 1000.0
		best = geo.NewCoordinate(lat, lon)
	}

	for si, s := range segments {
		proj := geo.ProjectPointToLineCoord(s.a, s.b, p)
		if isEndpoint(proj, s) {
			continue // endpoint projections are already covered by the vertex scan
		}
		dist := geo.CalculateHaversineDistance(p.Lat, p.Lon, proj.Lat, proj.Lon) * 1000.0
		if datastructure.Lt(dist, bestDist) {
			bestDist = dist
			best = proj
			bestSeg = si
		}
	}

	return best, bestSeg
}

func isEndpoint(p geo.Coordinate, s segment) bool {
	return (datastructure.Eq(p.Lat, s.a.Lat) && datastructure.Eq(p.Lon, s.a.Lon)) ||
		(datastructure.Eq(p.Lat, s.b.Lat) && datastructure.Eq(p.Lon, s.b.Lon))
}

// splitChain order the split points along the segment and return the full
// point chain from s.a to s.b.
func splitChain(s segment, splitPoints []geo.Coordinate) []geo.Coordinate {
	if len(splitPoints) == 0 {
		return []geo.Coordinate{s.a, s.b}
	}

	points := make([]geo.Coordinate, 0, len(splitPoints))
	points = append(points, splitPoints...)
	sort.Slice(points, func(i, j int) bool {
		di := geo.CalculateHaversineDistance(s.a.Lat, s.a.Lon, points[i].Lat, points[i].Lon)
		dj := geo.CalculateHaversineDistance(s.a.Lat, s.a.Lon, points[j].Lat, points[j].Lon)
		return di < dj
	})

	chain := make([]geo.Coordinate, 0, len(points)+2)
	chain = append(chain, s.a)
	for _, p := range points {
		last := chain[len(chain)-1]
		if datastructure.Eq(last.Lat, p.Lat) && datastructure.Eq(last.Lon, p.Lon) {
			continue
		}
		chain = append(chain, p)
	}
	last := chain[len(chain)-1]
	if !(datastructure.Eq(last.Lat, s.b.Lat) && datastructure.Eq(last.Lon, s.b.Lon)) {
		chain = append(chain, s.b)
	}
	return chain
}

func (d *LineDirector) resolveDirection(rec *LineRecord) pkg.EdgeDirection {
	if d.directionFieldId < 0 {
		return d.defaultDirection
	}
	switch rec.GetAttribute(d.directionFieldId) {
	case d.directValue:
		return pkg.DIRECTION_FORWARD
	case d.reverseValue:
		return pkg.DIRECTION_BACKWARD
	case d.bothValue:
		return pkg.DIRECTION_BOTH
	default:
		return d.defaultDirection
	}
}
