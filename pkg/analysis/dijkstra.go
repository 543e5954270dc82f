package analysis

import (
	"fmt"

	"github.com/lintang-b-s/netgraph/pkg"
	da "github.com/lintang-b-s/netgraph/pkg/datastructure"
	"github.com/lintang-b-s/netgraph/pkg/util"
)

// Dijkstra single-source shortest paths over a built graph, under one cost
// criterion.
type Dijkstra struct {
	graph     *da.Graph
	criterion int

	pq        *da.MinHeap[da.Index]
	heapNodes []*da.PriorityQueueNode[da.Index]

	numSettledNodes int
}

func NewDijkstra(graph *da.Graph, criterion int) *Dijkstra {
	return &Dijkstra{
		graph:     graph,
		criterion: criterion,
		pq:        da.NewFourAryHeap[da.Index](),
	}
}

// ShortestPathTree the array form: for every vertex t, tree[t] is the id of
// the incoming tree edge (INVALID_EDGE_ID for the root and for unreachable
// vertices) and cost[t] the cumulative cost from root (INF_WEIGHT when
// unreachable, 0 at the root).
func (us *Dijkstra) ShortestPathTree(root da.Index) ([]da.Index, []float64, error) {
	n := us.graph.NumberOfVertices()
	if int(root) >= n {
		return nil, nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"root vertex %d out of range, graph has %d vertices", root, n)
	}

	tree := make([]da.Index, n)
	cost := make([]float64, n)
	for i := range tree {
		tree[i] = da.INVALID_EDGE_ID
		cost[i] = pkg.INF_WEIGHT
	}

	us.preallocate(n)

	cost[root] = 0
	rootNode := da.NewPriorityQueueNode(0, root)
	us.heapNodes[root] = rootNode
	us.pq.Insert(rootNode)

	for !us.pq.IsEmpty() {
		uNode, err := us.pq.ExtractMin()
		if err != nil {
			return nil, nil, err
		}
		us.numSettledNodes++
		uId := uNode.GetItem()

		us.graph.ForOutEdgesOf(uId, func(e *da.Edge) {
			edgeWeight := e.GetCost(us.criterion)
			if da.Ge(edgeWeight, pkg.INF_WEIGHT) {
				return
			}

			vId := e.GetHead()
			newCost := cost[uId] + edgeWeight
			if !da.Lt(newCost, cost[vId]) {
				return
			}

			cost[vId] = newCost
			tree[vId] = e.GetEdgeId()

			if vNode := us.heapNodes[vId]; vNode != nil && vNode.GetPos() >= 0 {
				us.pq.DecreaseKey(vNode, newCost)
			} else {
				vNode := da.NewPriorityQueueNode(newCost, vId)
				us.heapNodes[vId] = vNode
				us.pq.Insert(vNode)
			}
		})
	}

	return tree, cost, nil
}

// ShortestTree the tree-object form: a new graph containing the root plus
// every reachable vertex, and only the tree edges. vertexMap[newId] = id in
// the source graph. the array form is cheaper, prefer it for repeated
// queries.
func (us *Dijkstra) ShortestTree(root da.Index) (*da.Graph, []da.Index, error) {
	tree, cost, err := us.ShortestPathTree(root)
	if err != nil {
		return nil, nil, err
	}

	out := da.NewGraph(us.graph.Criteria())
	vertexMap := make([]da.Index, 0)
	oldToNew := make(map[da.Index]da.Index, len(cost))

	addVertex := func(old da.Index) da.Index {
		if newId, ok := oldToNew[old]; ok {
			return newId
		}
		lat, lon := us.graph.GetVertexCoordinates(old)
		newId := out.AddVertex(lat, lon)
		oldToNew[old] = newId
		vertexMap = append(vertexMap, old)
		return newId
	}

	addVertex(root)
	for t := da.Index(0); int(t) < len(cost); t++ {
		if tree[t] == da.INVALID_EDGE_ID {
			continue
		}
		e := us.graph.GetEdge(tree[t])
		tailId := addVertex(e.GetTail())
		headId := addVertex(e.GetHead())
		if _, err := out.AddEdge(tailId, headId, e.GetLength(), e.GetCosts()); err != nil {
			return nil, nil, fmt.Errorf("copying tree edge %d: %w", tree[t], err)
		}
	}

	return out, vertexMap, nil
}

func (us *Dijkstra) NumSettledNodes() int {
	return us.numSettledNodes
}

func (us *Dijkstra) preallocate(n int) {
	us.heapNodes = make([]*da.PriorityQueueNode[da.Index], n)
	us.pq.Preallocate(n)
	us.numSettledNodes = 0
}
