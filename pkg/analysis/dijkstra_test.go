package analysis

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/netgraph/pkg"
	da "github.com/lintang-b-s/netgraph/pkg/datastructure"
	"github.com/stretchr/testify/require"
)

// diamond with a detour plus one isolated vertex:
//
//	v0 -> v1 (1), v0 -> v2 (4), v1 -> v2 (1), v2 -> v3 (1), v1 -> v3 (5)
//	v4 isolated
func buildFixtureGraph(t *testing.T) *da.Graph {
	t.Helper()
	g := da.NewGraph([]string{"weight"})

	for i := 0; i < 5; i++ {
		g.AddVertex(0.0, float64(i)*0.001)
	}

	type arc struct {
		from, to da.Index
		w        float64
	}
	arcs := []arc{
		{0, 1, 1}, {0, 2, 4}, {1, 2, 1}, {2, 3, 1}, {1, 3, 5},
	}
	for _, a := range arcs {
		_, err := g.AddEdge(a.from, a.to, a.w, []float64{a.w})
		require.NoError(t, err)
	}
	return g
}

func TestShortestPathTreeInvariants(t *testing.T) {
	g := buildFixtureGraph(t)

	dijkstra := NewDijkstra(g, 0)
	tree, cost, err := dijkstra.ShortestPathTree(0)
	require.NoError(t, err)
	require.Len(t, tree, g.NumberOfVertices())
	require.Len(t, cost, g.NumberOfVertices())

	// the root is the only reachable vertex without an incoming tree edge
	require.Equal(t, da.INVALID_EDGE_ID, tree[0])
	require.Equal(t, 0.0, cost[0])
	for v := da.Index(1); v <= 3; v++ {
		require.NotEqual(t, da.INVALID_EDGE_ID, tree[v], "vertex %d should have an incoming edge", v)
		require.Equal(t, v, g.GetEdge(tree[v]).GetHead())
	}

	// unreachable vertex gets the sentinel cost and no incoming edge
	require.Equal(t, da.INVALID_EDGE_ID, tree[4])
	require.Equal(t, pkg.INF_WEIGHT, cost[4])
}

func TestShortestPathTreeOptimalCosts(t *testing.T) {
	g := buildFixtureGraph(t)

	dijkstra := NewDijkstra(g, 0)
	_, cost, err := dijkstra.ShortestPathTree(0)
	require.NoError(t, err)

	require.Equal(t, 1.0, cost[1]) // v0 -> v1
	require.Equal(t, 2.0, cost[2]) // v0 -> v1 -> v2, not the direct 4-cost arc
	require.Equal(t, 3.0, cost[3]) // v0 -> v1 -> v2 -> v3, not v1 -> v3
}

func TestShortestPathTreeWalkTerminates(t *testing.T) {
	g := buildFixtureGraph(t)

	dijkstra := NewDijkstra(g, 0)
	tree, cost, err := dijkstra.ShortestPathTree(0)
	require.NoError(t, err)

	n := g.NumberOfVertices()
	for v := da.Index(0); int(v) < n; v++ {
		if da.Ge(cost[v], pkg.INF_WEIGHT) {
			continue
		}
		cur := v
		steps := 0
		for cur != 0 {
			require.LessOrEqual(t, steps, n, "walk from %d did not terminate", v)
			e := g.GetEdge(tree[cur])
			cur = e.GetTail()
			steps++
		}
	}
}

func TestShortestPathTreeRootOutOfRange(t *testing.T) {
	g := buildFixtureGraph(t)

	dijkstra := NewDijkstra(g, 0)
	_, _, err := dijkstra.ShortestPathTree(99)
	require.Error(t, err)
}

func TestRoute(t *testing.T) {
	g := buildFixtureGraph(t)

	dijkstra := NewDijkstra(g, 0)
	tree, cost, err := dijkstra.ShortestPathTree(0)
	require.NoError(t, err)

	path, err := Route(g, tree, cost, 0, 3)
	require.NoError(t, err)
	require.Equal(t, []da.Index{0, 1, 2, 3}, path)
}

func TestRouteToRoot(t *testing.T) {
	g := buildFixtureGraph(t)

	dijkstra := NewDijkstra(g, 0)
	tree, cost, err := dijkstra.ShortestPathTree(0)
	require.NoError(t, err)

	path, err := Route(g, tree, cost, 0, 0)
	require.NoError(t, err)
	require.Equal(t, []da.Index{0}, path)
}

func TestRouteUnreachable(t *testing.T) {
	g := buildFixtureGraph(t)

	dijkstra := NewDijkstra(g, 0)
	tree, cost, err := dijkstra.ShortestPathTree(0)
	require.NoError(t, err)

	_, err = Route(g, tree, cost, 0, 4)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNoPath))
}

func TestShortestTree(t *testing.T) {
	g := buildFixtureGraph(t)

	dijkstra := NewDijkstra(g, 0)
	treeGraph, vertexMap, err := dijkstra.ShortestTree(0)
	require.NoError(t, err)

	// root + 3 reachable vertices, one tree edge each except the root
	require.Equal(t, 4, treeGraph.NumberOfVertices())
	require.Equal(t, 3, treeGraph.NumberOfEdges())
	require.Len(t, vertexMap, 4)
	require.Equal(t, da.Index(0), vertexMap[0])
}

func TestServiceArea(t *testing.T) {
	g := buildFixtureGraph(t)

	dijkstra := NewDijkstra(g, 0)
	_, cost, err := dijkstra.ShortestPathTree(0)
	require.NoError(t, err)

	inside, boundary := ServiceArea(g, cost, 2.0)

	require.ElementsMatch(t, []da.Index{0, 1, 2}, inside)

	// crossing edges: v2 -> v3 (inside to outside), v1 -> v3
	boundaryHeads := make([]da.Index, 0, len(boundary))
	for _, e := range boundary {
		boundaryHeads = append(boundaryHeads, g.GetEdge(e).GetHead())
	}
	require.ElementsMatch(t, []da.Index{3, 3}, boundaryHeads)
}
