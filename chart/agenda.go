package chart

import (
	"container/list"

	"github.com/earleygram/chartparse/heap"
)

// completedAgenda is a priority queue of completed items keyed by
// decreasing start-column index (Stolcke-style completion discipline): the
// oldest item at the largest start index is dequeued first. Ties at the
// same start index are broken FIFO, by insertion order.
//
// A MaxHeap of distinct start indices drives the ordering; each index maps
// to its own FIFO of items, so a key is only ever pushed onto the heap once
// per batch of items sharing that start index.
type completedAgenda struct {
	keys  *heap.MaxHeap
	fifos map[int]*list.List
}

func newCompletedAgenda() *completedAgenda {
	return &completedAgenda{keys: heap.New(), fifos: make(map[int]*list.List)}
}

// enqueue adds item to the FIFO for its start index, pushing a fresh key
// onto the heap the first time that index is seen.
func (a *completedAgenda) enqueue(item *Item) {
	idx := item.StartCol.Index
	fifo, ok := a.fifos[idx]
	if !ok {
		fifo = list.New()
		a.fifos[idx] = fifo
		a.keys.Add(idx)
	}
	fifo.PushBack(item)
}

// dequeue returns the oldest item at the maximum start index, or nil if the
// agenda is empty. If that FIFO empties as a result, its entry (and the
// corresponding heap key) are removed.
func (a *completedAgenda) dequeue() *Item {
	idx, ok := a.keys.PeekMax()
	if !ok {
		return nil
	}
	fifo := a.fifos[idx]
	front := fifo.Front()
	item := front.Value.(*Item)
	fifo.Remove(front)
	if fifo.Len() == 0 {
		delete(a.fifos, idx)
		a.keys.PopMax()
	}
	return item
}

func (a *completedAgenda) empty() bool {
	return a.keys.Count() == 0
}

func (a *completedAgenda) clear() {
	a.keys.Clear()
	a.fifos = make(map[int]*list.List)
}
