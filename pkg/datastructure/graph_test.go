package datastructure

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddEdgeValidation(t *testing.T) {
	g := NewGraph([]string{"distance", "time"})
	a := g.AddVertex(0, 0)
	b := g.AddVertex(0, 0.001)

	_, err := g.AddEdge(a, b, 100, []float64{100, 9})
	require.NoError(t, err)

	_, err = g.AddEdge(a, 99, 100, []float64{100, 9})
	require.Error(t, err, "head out of range")

	_, err = g.AddEdge(a, b, 100, []float64{-1, 9})
	require.Error(t, err, "negative cost")

	_, err = g.AddEdge(a, b, 100, []float64{math.NaN(), 9})
	require.Error(t, err, "NaN cost")

	require.Equal(t, 1, g.NumberOfEdges())
}

func TestGetCostOutOfRangeFallsBackToLength(t *testing.T) {
	g := NewGraph([]string{"time"})
	a := g.AddVertex(0, 0)
	b := g.AddVertex(0, 0.001)
	id, err := g.AddEdge(a, b, 111.0, []float64{9.0})
	require.NoError(t, err)

	e := g.GetEdge(id)
	require.Equal(t, 9.0, e.GetCost(0))
	require.Equal(t, 111.0, e.GetCost(5))
}

func TestCriterionIndex(t *testing.T) {
	g := NewGraph([]string{"distance", "time"})
	require.Equal(t, 0, g.CriterionIndex("distance"))
	require.Equal(t, 1, g.CriterionIndex("time"))
	require.Equal(t, -1, g.CriterionIndex("fuel"))
}

func TestFindNearestVertex(t *testing.T) {
	g := NewGraph(nil)
	require.Equal(t, INVALID_VERTEX_ID, g.FindNearestVertex(0, 0))

	g.AddVertex(0, 0)
	far := g.AddVertex(1, 1)
	require.Equal(t, far, g.FindNearestVertex(0.9, 0.9))
}

func TestGraphIORoundtrip(t *testing.T) {
	g := NewGraph([]string{"distance", "time"})
	a := g.AddVertex(-7.7956, 110.3695)
	b := g.AddVertex(-7.8014, 110.3647)
	c := g.AddVertex(-7.7828, 110.3671)
	_, err := g.AddEdge(a, b, 823.5, []float64{823.5, 74.1})
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, 2100.25, []float64{2100.25, 189.0})
	require.NoError(t, err)
	_, err = g.AddEdge(c, a, 1500, []float64{1500, 135})
	require.NoError(t, err)

	filename := filepath.Join(t.TempDir(), "graph.graph")
	require.NoError(t, g.WriteGraph(filename))

	got, err := ReadGraph(filename)
	require.NoError(t, err)

	require.Equal(t, g.NumberOfVertices(), got.NumberOfVertices())
	require.Equal(t, g.NumberOfEdges(), got.NumberOfEdges())
	require.Equal(t, g.Criteria(), got.Criteria())

	for v := Index(0); int(v) < g.NumberOfVertices(); v++ {
		wantLat, wantLon := g.GetVertexCoordinates(v)
		gotLat, gotLon := got.GetVertexCoordinates(v)
		require.Equal(t, wantLat, gotLat)
		require.Equal(t, wantLon, gotLon)
	}
	g.ForEdges(func(e *Edge) {
		ge := got.GetEdge(e.GetEdgeId())
		require.Equal(t, e.GetTail(), ge.GetTail())
		require.Equal(t, e.GetHead(), ge.GetHead())
		require.Equal(t, e.GetLength(), ge.GetLength())
		require.Equal(t, e.GetCosts(), ge.GetCosts())
	})
}
