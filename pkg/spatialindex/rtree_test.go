package spatialindex

import (
	"testing"

	da "github.com/lintang-b-s/netgraph/pkg/datastructure"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func buildIndexedGraph(t *testing.T) (*da.Graph, *Rtree) {
	t.Helper()
	g := da.NewGraph([]string{"distance"})
	g.AddVertex(0, 0)
	g.AddVertex(0, 0.001)
	g.AddVertex(0.05, 0.05)

	_, err := g.AddEdge(0, 1, 111.3, []float64{111.3})
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 7800, []float64{7800})
	require.NoError(t, err)

	rt := NewRtree()
	rt.Build(g, 0.05, zap.NewNop())
	return g, rt
}

func TestSnapToNearestVertex(t *testing.T) {
	g, rt := buildIndexedGraph(t)

	got := rt.SnapToNearestVertex(g, 0.0001, 0.0009, 0.1)
	require.Equal(t, da.Index(1), got)

	got = rt.SnapToNearestVertex(g, 0.0501, 0.0501, 0.1)
	require.Equal(t, da.Index(2), got)
}

func TestSnapToNearestVertexOutOfRange(t *testing.T) {
	g, rt := buildIndexedGraph(t)

	got := rt.SnapToNearestVertex(g, 3.0, 3.0, 0.1)
	require.Equal(t, da.INVALID_VERTEX_ID, got)
}

func TestSearchWithinRadius(t *testing.T) {
	_, rt := buildIndexedGraph(t)

	hits := rt.SearchWithinRadius(0, 0.0005, 0.2)
	require.NotEmpty(t, hits)

	none := rt.SearchWithinRadius(10, 10, 0.1)
	require.Empty(t, none)
}
