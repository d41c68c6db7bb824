// Package pqueue provides a generic binary min-heap keyed by an integer
// priority. gridpath's priority-driven searches push cell indices into it.
//
// Complexity:
//
//   - Push: O(log n) amortised.
//   - Pop:  O(log n).
//   - Len, Peek: O(1).
//
// Equal priorities are not ordered: insertion order among ties is not
// preserved, and callers must not rely on FIFO-among-ties.
//
// Searches use the “lazy-decrease-key” pattern on top of it: instead of
// updating an entry, push a new (item, priority) pair and discard the stale
// one when it is popped.
package pqueue

import (
	"container/heap"
	"errors"
)

// ErrEmpty is returned by Pop and Peek on an empty heap.
var ErrEmpty = errors.New("pqueue: heap is empty")

// entry pairs a payload with its priority.
type entry[T any] struct {
	item     T
	priority int
}

// entries implements heap.Interface ordered by ascending priority.
type entries[T any] []entry[T]

// Len returns the number of entries in the heap.
func (e entries[T]) Len() int { return len(e) }

// Less defines the comparison: smaller priority → closer to the root.
func (e entries[T]) Less(i, j int) bool { return e[i].priority < e[j].priority }

// Swap swaps two entries in the heap.
func (e entries[T]) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

// Push appends x; called by heap.Push only.
func (e *entries[T]) Push(x any) { *e = append(*e, x.(entry[T])) }

// Pop removes the last entry; called by heap.Pop only.
func (e *entries[T]) Pop() any {
	old := *e
	n := len(old)
	it := old[n-1]
	var zero entry[T]
	old[n-1] = zero // drop reference held by the backing array
	*e = old[:n-1]

	return it
}

// MinHeap is a min-priority queue of T. The zero value is an empty,
// ready-to-use heap. MinHeap is not safe for concurrent use.
type MinHeap[T any] struct {
	data entries[T]
}

// New returns an empty heap with room for capacity entries.
func New[T any](capacity int) *MinHeap[T] {
	return &MinHeap[T]{data: make(entries[T], 0, max(0, capacity))}
}

// Len returns the number of queued entries.
func (h *MinHeap[T]) Len() int { return len(h.data) }

// Push inserts item with the given priority.
func (h *MinHeap[T]) Push(item T, priority int) {
	heap.Push(&h.data, entry[T]{item: item, priority: priority})
}

// Pop removes and returns the entry with the lowest priority.
// Returns ErrEmpty if the heap has no entries.
func (h *MinHeap[T]) Pop() (T, int, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, 0, ErrEmpty
	}
	e := heap.Pop(&h.data).(entry[T])

	return e.item, e.priority, nil
}

// Peek returns the lowest-priority entry without removing it.
// Returns ErrEmpty if the heap has no entries.
func (h *MinHeap[T]) Peek() (T, int, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, 0, ErrEmpty
	}

	return h.data[0].item, h.data[0].priority, nil
}
