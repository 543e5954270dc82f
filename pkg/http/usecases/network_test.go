package usecases

import (
	"errors"
	"testing"

	da "github.com/lintang-b-s/netgraph/pkg/datastructure"
	"github.com/lintang-b-s/netgraph/pkg/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// linear-scan snapper, good enough for small fixtures
type bruteForceIndex struct{}

func (bruteForceIndex) SnapToNearestVertex(g *da.Graph, qLat, qLon, radius float64) da.Index {
	return g.FindNearestVertex(qLat, qLon)
}

type emptyIndex struct{}

func (emptyIndex) SnapToNearestVertex(g *da.Graph, qLat, qLon, radius float64) da.Index {
	return da.INVALID_VERTEX_ID
}

func newTestService(t *testing.T, idx SpatialIndex) *NetworkService {
	t.Helper()
	g := da.NewGraph([]string{"distance", "time"})
	// chain of three vertices along the equator plus an unreachable one
	g.AddVertex(0, 0)
	g.AddVertex(0, 0.001)
	g.AddVertex(0, 0.002)
	g.AddVertex(0, 0.1)

	_, err := g.AddEdge(0, 1, 111.3, []float64{111.3, 10})
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 111.3, []float64{111.3, 10})
	require.NoError(t, err)

	return NewNetworkService(zap.NewNop(), g, idx, 0.1)
}

func TestShortestPathUsecase(t *testing.T) {
	ns := newTestService(t, bruteForceIndex{})

	cost, dist, polyline, err := ns.ShortestPath(0, 0, 0, 0.002, "distance")
	require.NoError(t, err)
	require.InDelta(t, 222.6, cost, 0.1)
	require.InDelta(t, 222.6, dist, 1.0)
	require.NotEmpty(t, polyline)

	cost, _, _, err = ns.ShortestPath(0, 0, 0, 0.002, "time")
	require.NoError(t, err)
	require.InDelta(t, 20.0, cost, 1e-9)
}

func TestShortestPathUnknownCriterion(t *testing.T) {
	ns := newTestService(t, bruteForceIndex{})

	_, _, _, err := ns.ShortestPath(0, 0, 0, 0.002, "fuel")
	require.Error(t, err)

	var uerr *util.Error
	require.True(t, errors.As(err, &uerr))
	require.Equal(t, util.ErrBadParamInput, uerr.Code())
}

func TestShortestPathUnreachableDestination(t *testing.T) {
	ns := newTestService(t, bruteForceIndex{})

	_, _, _, err := ns.ShortestPath(0, 0, 0, 0.1, "")
	require.Error(t, err)
}

func TestShortestPathNoVertexNearby(t *testing.T) {
	ns := newTestService(t, emptyIndex{})

	_, _, _, err := ns.ShortestPath(0, 0, 0, 0.002, "")
	require.Error(t, err)

	var uerr *util.Error
	require.True(t, errors.As(err, &uerr))
	require.Equal(t, util.ErrNotFound, uerr.Code())
}

func TestServiceAreaUsecase(t *testing.T) {
	ns := newTestService(t, bruteForceIndex{})

	inside, boundary, err := ns.ServiceArea(0, 0, 150.0, "distance")
	require.NoError(t, err)
	require.Len(t, inside, 2) // origin and the first hop
	require.Len(t, boundary, 1)
	require.InDelta(t, 0.002, boundary[0].Lon, 1e-9)
}

func TestTiePointUsecase(t *testing.T) {
	ns := newTestService(t, bruteForceIndex{})

	tied, err := ns.TiePoint(0.0001, 0.00095)
	require.NoError(t, err)
	require.InDelta(t, 0.001, tied.Lon, 1e-9)
	require.InDelta(t, 0.0, tied.Lat, 1e-9)
}
