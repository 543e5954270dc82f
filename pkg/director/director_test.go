package director

import (
	"testing"

	"github.com/lintang-b-s/netgraph/pkg"
	"github.com/lintang-b-s/netgraph/pkg/costfunction"
	da "github.com/lintang-b-s/netgraph/pkg/datastructure"
	"github.com/lintang-b-s/netgraph/pkg/geo"
	"github.com/stretchr/testify/require"
)

func hasEdge(g *da.Graph, tail, head da.Index) bool {
	found := false
	g.ForOutEdgesOf(tail, func(e *da.Edge) {
		if e.GetHead() == head {
			found = true
		}
	})
	return found
}

func TestMakeGraphMergesCoincidentEndpoints(t *testing.T) {
	// two polylines sharing the point (0, 0.001)
	records := []LineRecord{
		NewLineRecord([]geo.Coordinate{geo.NewCoordinate(0, 0), geo.NewCoordinate(0, 0.001)}, nil),
		NewLineRecord([]geo.Coordinate{geo.NewCoordinate(0, 0.001), geo.NewCoordinate(0, 0.002)}, nil),
	}
	d := NewLineDirector(records, -1, "", "", "", pkg.DIRECTION_FORWARD)
	d.AddStrategy(costfunction.NewDistanceStrategy())

	builder := NewGraphBuilder(d.StrategyNames(), 0)
	_, err := d.MakeGraph(builder, nil)
	require.NoError(t, err)

	g := builder.Graph()
	require.Equal(t, 3, g.NumberOfVertices())
	require.Equal(t, 2, g.NumberOfEdges())

	mid := builder.FindPoint(geo.NewCoordinate(0, 0.001))
	require.NotEqual(t, da.INVALID_VERTEX_ID, mid)
	require.Equal(t, 1, g.GetOutDegree(mid))
}

func TestMakeGraphDirectionMarkers(t *testing.T) {
	records := []LineRecord{
		NewLineRecord([]geo.Coordinate{geo.NewCoordinate(0, 0), geo.NewCoordinate(0, 0.001)}, []string{"yes"}),
		NewLineRecord([]geo.Coordinate{geo.NewCoordinate(0, 0.001), geo.NewCoordinate(0, 0.002)}, []string{"-1"}),
		NewLineRecord([]geo.Coordinate{geo.NewCoordinate(0, 0.002), geo.NewCoordinate(0, 0.003)}, []string{""}),
	}
	d := NewLineDirector(records, 0, "yes", "-1", "", pkg.DIRECTION_BOTH)
	d.AddStrategy(costfunction.NewDistanceStrategy())

	builder := NewGraphBuilder(d.StrategyNames(), 0)
	_, err := d.MakeGraph(builder, nil)
	require.NoError(t, err)

	g := builder.Graph()
	v0 := builder.FindPoint(geo.NewCoordinate(0, 0))
	v1 := builder.FindPoint(geo.NewCoordinate(0, 0.001))
	v2 := builder.FindPoint(geo.NewCoordinate(0, 0.002))
	v3 := builder.FindPoint(geo.NewCoordinate(0, 0.003))

	require.True(t, hasEdge(g, v0, v1), "forward marker should give tail->head")
	require.False(t, hasEdge(g, v1, v0))

	require.True(t, hasEdge(g, v2, v1), "reverse marker should give head->tail")
	require.False(t, hasEdge(g, v1, v2))

	require.True(t, hasEdge(g, v2, v3))
	require.True(t, hasEdge(g, v3, v2))

	require.Equal(t, 4, g.NumberOfEdges())
}

func TestMakeGraphDefaultDirection(t *testing.T) {
	// no direction field: every record uses the default
	records := []LineRecord{
		NewLineRecord([]geo.Coordinate{geo.NewCoordinate(0, 0), geo.NewCoordinate(0, 0.001)}, nil),
	}
	d := NewLineDirector(records, -1, "yes", "-1", "", pkg.DIRECTION_BOTH)
	d.AddStrategy(costfunction.NewDistanceStrategy())

	builder := NewGraphBuilder(d.StrategyNames(), 0)
	_, err := d.MakeGraph(builder, nil)
	require.NoError(t, err)
	require.Equal(t, 2, builder.Graph().NumberOfEdges())
}

func TestMakeGraphDistanceCost(t *testing.T) {
	a, b := geo.NewCoordinate(0, 0), geo.NewCoordinate(0, 0.001)
	records := []LineRecord{NewLineRecord([]geo.Coordinate{a, b}, nil)}
	d := NewLineDirector(records, -1, "", "", "", pkg.DIRECTION_FORWARD)
	d.AddStrategy(costfunction.NewDistanceStrategy())

	builder := NewGraphBuilder(d.StrategyNames(), 0)
	_, err := d.MakeGraph(builder, nil)
	require.NoError(t, err)

	g := builder.Graph()
	require.Equal(t, 1, g.NumberOfEdges())
	e := g.GetEdge(0)
	want := geo.CalculateHaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon) * 1000.0
	require.InDelta(t, want, e.GetCost(0), 1e-9)
	require.InDelta(t, want, e.GetLength(), 1e-9)
}

func TestTiePointSnapsToVertex(t *testing.T) {
	records := []LineRecord{
		NewLineRecord([]geo.Coordinate{geo.NewCoordinate(0, 0), geo.NewCoordinate(0, 0.01)}, nil),
	}
	d := NewLineDirector(records, -1, "", "", "", pkg.DIRECTION_BOTH)
	d.AddStrategy(costfunction.NewDistanceStrategy())

	builder := NewGraphBuilder(d.StrategyNames(), 0)
	// just off the first endpoint, far from the segment interior midpoint
	tied, err := d.MakeGraph(builder, []geo.Coordinate{geo.NewCoordinate(0.00001, 0)})
	require.NoError(t, err)
	require.Len(t, tied, 1)

	require.InDelta(t, 0.0, tied[0].Lat, 1e-9)
	require.InDelta(t, 0.0, tied[0].Lon, 1e-9)

	// snapping to an existing vertex must not split the segment
	g := builder.Graph()
	require.Equal(t, 2, g.NumberOfVertices())
	require.Equal(t, 2, g.NumberOfEdges())
}

func TestTiePointSplitsSegment(t *testing.T) {
	a, b := geo.NewCoordinate(0, 0), geo.NewCoordinate(0, 0.01)
	records := []LineRecord{NewLineRecord([]geo.Coordinate{a, b}, nil)}
	d := NewLineDirector(records, -1, "", "", "", pkg.DIRECTION_FORWARD)
	d.AddStrategy(costfunction.NewDistanceStrategy())

	builder := NewGraphBuilder(d.StrategyNames(), 0)
	// slightly north of the segment midpoint: the interior projection is
	// strictly closer than either endpoint
	tied, err := d.MakeGraph(builder, []geo.Coordinate{geo.NewCoordinate(0.0001, 0.005)})
	require.NoError(t, err)
	require.Len(t, tied, 1)

	require.InDelta(t, 0.005, tied[0].Lon, 1e-4)
	require.InDelta(t, 0.0, tied[0].Lat, 1e-5)

	g := builder.Graph()
	require.Equal(t, 3, g.NumberOfVertices())
	require.Equal(t, 2, g.NumberOfEdges())

	// the split vertex sits in the middle of the chain
	mid := builder.FindPoint(tied[0])
	require.NotEqual(t, da.INVALID_VERTEX_ID, mid)
	v0 := builder.FindPoint(a)
	v1 := builder.FindPoint(b)
	require.True(t, hasEdge(g, v0, mid))
	require.True(t, hasEdge(g, mid, v1))
	require.False(t, hasEdge(g, v0, v1))
}

func TestTiePointsOnEmptyGraph(t *testing.T) {
	d := NewLineDirector(nil, -1, "", "", "", pkg.DIRECTION_BOTH)
	d.AddStrategy(costfunction.NewDistanceStrategy())

	builder := NewGraphBuilder(d.StrategyNames(), 0)
	_, err := d.MakeGraph(builder, []geo.Coordinate{geo.NewCoordinate(0, 0)})
	require.Error(t, err)
}

func TestTopologyToleranceMergesNearbyEndpoints(t *testing.T) {
	// endpoints about 11 meters apart
	records := []LineRecord{
		NewLineRecord([]geo.Coordinate{geo.NewCoordinate(0, 0), geo.NewCoordinate(0, 0.001)}, nil),
		NewLineRecord([]geo.Coordinate{geo.NewCoordinate(0, 0.0011), geo.NewCoordinate(0, 0.002)}, nil),
	}
	d := NewLineDirector(records, -1, "", "", "", pkg.DIRECTION_FORWARD)
	d.AddStrategy(costfunction.NewDistanceStrategy())

	loose := NewGraphBuilder(d.StrategyNames(), 20.0)
	_, err := d.MakeGraph(loose, nil)
	require.NoError(t, err)
	require.Equal(t, 3, loose.Graph().NumberOfVertices())

	// exact matching keeps them apart
	strict := NewGraphBuilder(d.StrategyNames(), 0)
	_, err = d.MakeGraph(strict, nil)
	require.NoError(t, err)
	require.Equal(t, 4, strict.Graph().NumberOfVertices())
}

func TestMakeGraphSkipsZeroLengthSegments(t *testing.T) {
	records := []LineRecord{
		NewLineRecord([]geo.Coordinate{
			geo.NewCoordinate(0, 0),
			geo.NewCoordinate(0, 0), // duplicate point in the geometry
			geo.NewCoordinate(0, 0.001),
		}, nil),
	}
	d := NewLineDirector(records, -1, "", "", "", pkg.DIRECTION_FORWARD)
	d.AddStrategy(costfunction.NewDistanceStrategy())

	builder := NewGraphBuilder(d.StrategyNames(), 0)
	_, err := d.MakeGraph(builder, nil)
	require.NoError(t, err)
	require.Equal(t, 2, builder.Graph().NumberOfVertices())
	require.Equal(t, 1, builder.Graph().NumberOfEdges())
}
