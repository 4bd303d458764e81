/*
Package heap implements a max-heap of integers, used by the completed-states
agenda (see package chart) to order completion processing by decreasing
start-column index.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package heap

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	godsutils "github.com/emirpasic/gods/utils"
)

// MaxHeap is a binary max-heap of integer keys, backed by
// gods/trees/binaryheap with a descending comparator.
type MaxHeap struct {
	tree *binaryheap.Heap
}

// New returns an empty MaxHeap.
func New() *MaxHeap {
	return &MaxHeap{tree: binaryheap.NewWith(maxComparator)}
}

// maxComparator orders gods' binaryheap (a min-heap by default) as a
// max-heap by reversing the usual integer comparator.
func maxComparator(a, b interface{}) int {
	return -godsutils.IntComparator(a, b)
}

// Add inserts a key. Duplicate keys are permitted by the underlying tree;
// callers that need "insert distinct keys only" semantics (as the
// completed-states agenda does) must check membership themselves before
// calling Add.
func (h *MaxHeap) Add(key int) {
	h.tree.Push(key)
}

// PopMax removes and returns the largest key. ok is false if the heap is
// empty.
func (h *MaxHeap) PopMax() (key int, ok bool) {
	v, ok := h.tree.Pop()
	if !ok {
		return 0, false
	}
	return v.(int), true
}

// PeekMax returns the largest key without removing it. ok is false if the
// heap is empty.
func (h *MaxHeap) PeekMax() (key int, ok bool) {
	v, ok := h.tree.Peek()
	if !ok {
		return 0, false
	}
	return v.(int), true
}

// Count returns the number of keys currently in the heap.
func (h *MaxHeap) Count() int {
	return h.tree.Size()
}

// Clear removes every key.
func (h *MaxHeap) Clear() {
	h.tree.Clear()
}
