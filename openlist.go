package jps3d

import "container/heap"

// OpenList is a min-priority queue on Node.F, backed by container/heap —
// the same primitive the teacher's pathfinding.go openHeap wraps, and the
// Go-stdlib equivalent of original_source/Openlist.h's std::push_heap/
// pop_heap/make_heap trio.
//
// OpenList stores NodeIDs rather than *Node, resolving through a NodePool
// on every comparison: GetOrCreate's append may reallocate the pool's
// backing arena, which would dangle any *Node held across that call
// (spec.md §9, "Node pointer stability"). NodeIDs stay valid across growth.
type OpenList struct {
	pool *NodePool
	h    idHeap
}

// NewOpenList returns an empty OpenList resolving Nodes through pool.
func NewOpenList(pool *NodePool) *OpenList {
	return &OpenList{pool: pool, h: idHeap{pool: pool}}
}

// Push inserts n, which must not already be open. O(log N).
func (ol *OpenList) Push(id NodeID) {
	n := ol.pool.Get(id)
	n.setOpen()
	heap.Push(&ol.h, id)
}

// PopMin removes and returns the NodeID with minimum F, clearing its open
// flag. O(log N).
func (ol *OpenList) PopMin() NodeID {
	id := heap.Pop(&ol.h).(NodeID)
	ol.pool.Get(id).clearOpen()
	return id
}

// Fix re-establishes the heap invariant after id's F decreased in place
// while it was already open, matching the teacher's pathfinding.go
// openHeap usage (`if old.openIdx >= 0 { heap.Fix(open, old.openIdx) }`).
// O(log N), via Node.openIdx bookkeeping maintained by idHeap's Swap/Push/
// Pop.
func (ol *OpenList) Fix(id NodeID) {
	heap.Fix(&ol.h, ol.pool.Get(id).openIdx)
}

// Len reports how many Nodes are currently open.
func (ol *OpenList) Len() int { return ol.h.Len() }

// Clear empties the list without touching the NodePool.
func (ol *OpenList) Clear() {
	ol.h.ids = ol.h.ids[:0]
}

// idHeap implements heap.Interface over NodeIDs, keyed by F via the pool.
type idHeap struct {
	pool *NodePool
	ids  []NodeID
}

func (h idHeap) Len() int { return len(h.ids) }

func (h idHeap) Less(i, j int) bool {
	return h.pool.Get(h.ids[i]).F < h.pool.Get(h.ids[j]).F
}

func (h idHeap) Swap(i, j int) {
	h.ids[i], h.ids[j] = h.ids[j], h.ids[i]
	h.pool.Get(h.ids[i]).openIdx = i
	h.pool.Get(h.ids[j]).openIdx = j
}

func (h *idHeap) Push(x interface{}) {
	id := x.(NodeID)
	h.pool.Get(id).openIdx = len(h.ids)
	h.ids = append(h.ids, id)
}

func (h *idHeap) Pop() interface{} {
	old := h.ids
	n := len(old)
	id := old[n-1]
	h.ids = old[:n-1]
	h.pool.Get(id).openIdx = -1
	return id
}
