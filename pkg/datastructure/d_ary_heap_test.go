package datastructure

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeapInsertExtractOrder(t *testing.T) {
	h := NewFourAryHeap[Index]()
	ranks := []float64{5, 1, 4, 2, 3, 0}
	for i, r := range ranks {
		h.Insert(NewPriorityQueueNode(r, Index(i)))
	}

	prev := -1.0
	for !h.IsEmpty() {
		node, err := h.ExtractMin()
		require.NoError(t, err)
		require.GreaterOrEqual(t, node.GetRank(), prev)
		prev = node.GetRank()
	}
}

func TestHeapDecreaseKey(t *testing.T) {
	h := NewBinaryHeap[Index]()
	nodes := make([]*PriorityQueueNode[Index], 0)
	for i := 0; i < 5; i++ {
		n := NewPriorityQueueNode(float64(10+i), Index(i))
		nodes = append(nodes, n)
		h.Insert(n)
	}

	require.NoError(t, h.DecreaseKey(nodes[4], 1.0))

	minNode, err := h.ExtractMin()
	require.NoError(t, err)
	require.Equal(t, Index(4), minNode.GetItem())
	require.Equal(t, 1.0, minNode.GetRank())
}

func TestHeapGetMinrankEmpty(t *testing.T) {
	h := NewBinaryHeap[Index]()
	require.Greater(t, h.GetMinrank(), 1e15)

	_, err := h.ExtractMin()
	require.Error(t, err)
}

func TestHeapItemPosTracksSwaps(t *testing.T) {
	h := NewBinaryHeap[Index]()
	nodes := make([]*PriorityQueueNode[Index], 0)
	for i := 0; i < 8; i++ {
		n := NewPriorityQueueNode(float64(8-i), Index(i))
		nodes = append(nodes, n)
		h.Insert(n)
	}
	// every live node must know its own slot, or DecreaseKey breaks
	for _, n := range nodes {
		require.Equal(t, n, h.heap[n.GetPos()])
	}
}
