package ecs

import "container/heap"

// idPool hands out the smallest free entity id. Ids that were never used are
// produced by a counter; released ids are kept in a min-heap. Every released
// id is below next, so popping the heap first yields the global minimum.
type idPool struct {
	released idHeap
	next     EntityID
}

func (p *idPool) acquire() EntityID {
	if p.released.Len() > 0 {
		return heap.Pop(&p.released).(EntityID)
	}
	id := p.next
	p.next++
	return id
}

func (p *idPool) release(id EntityID) {
	heap.Push(&p.released, id)
}

// peek returns the id the next acquire will return.
func (p *idPool) peek() EntityID {
	if p.released.Len() > 0 {
		return p.released[0]
	}
	return p.next
}

type idHeap []EntityID

func (h idHeap) Len() int           { return len(h) }
func (h idHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *idHeap) Push(x any) {
	*h = append(*h, x.(EntityID))
}

func (h *idHeap) Pop() any {
	old := *h
	n := len(old)
	id := old[n-1]
	*h = old[:n-1]
	return id
}
