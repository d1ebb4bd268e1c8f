package huffcodes

import (
	"container/heap"
)

// BuildTree constructs the Huffman code tree for the given frequencies.
// An empty table yields an empty Tree, and a table with one distinct
// Symbol yields a Tree whose root is a leaf.
//
// Construction is deterministic.  Leaves are allocated in ascending Symbol
// order and every internal node is allocated after all the leaves, in the
// order it was created.  The min-heap orders nodes by (weight, NodeID), so
// ties go to leaves before internal nodes, to lower Symbols among leaves,
// and to older nodes among internal nodes.  Of the two nodes popped for
// each merge, the first becomes the left child.
//
func BuildTree(freq FrequencyTable) *Tree {
	numLeaves := freq.Len()
	if numLeaves == 0 {
		return newTree(0)
	}

	t := newTree(2*numLeaves - 1)

	// Step 1: one leaf per present symbol, then build a minheap.

	h := nodeHeap{tree: t, list: make([]NodeID, 0, numLeaves)}
	for _, symbol := range freq.Symbols() {
		h.list = append(h.list, t.addLeaf(symbol, freq.Count(symbol)))
	}
	h.Init()

	// Step 2: pop the two lightest nodes, combine them into a new
	// internal node, and push that back, until one node remains.

	for h.Len() > 1 {
		a := heap.Pop(&h).(NodeID)
		b := heap.Pop(&h).(NodeID)
		heap.Push(&h, t.addInternal(a, b))
	}

	t.root = heap.Pop(&h).(NodeID)
	return t
}

// type nodeHeap {{{

type nodeHeap struct {
	tree *Tree
	list []NodeID
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := h.tree.nodes[a].weight, h.tree.nodes[b].weight
	if aw != bw {
		return aw < bw
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(NodeID))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
