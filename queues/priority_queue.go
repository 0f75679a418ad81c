package queues

// ArrayPriorityQueue is an ArrayQueue that keeps its elements ordered by
// priority, highest at the front. Only insertion differs from ArrayQueue:
// Enqueue appends and then bubbles the new element toward the front, which is
// O(n) in the worst case. Elements with equal priority keep arrival order.
type ArrayPriorityQueue[T any] struct {
	ArrayQueue[T]
	greater Greater[T]
}

// NewArrayPriorityQueue creates an empty ArrayPriorityQueue ordered by greater.
// greater must not be nil.
func NewArrayPriorityQueue[T any](greater Greater[T]) *ArrayPriorityQueue[T] {
	mustGreater(greater, "NewArrayPriorityQueue")
	return &ArrayPriorityQueue[T]{
		ArrayQueue: ArrayQueue[T]{ring: ring[T]{back: -1}, name: "ArrayPriorityQueue"},
		greater:    greater,
	}
}

// NewArrayPriorityQueueFrom creates an ArrayPriorityQueue holding values in
// priority order. The buffer is sized to exactly len(values); values that are
// already in priority order keep their positions.
func NewArrayPriorityQueueFrom[T any](values []T, greater Greater[T]) *ArrayPriorityQueue[T] {
	pq := NewArrayPriorityQueue(greater)
	vals := make([]T, len(values))
	copy(vals, values)
	sortByPriority(vals, greater)
	pq.adopt(vals, len(vals))
	return pq
}

// Clone returns an independent copy with twice as many slots as elements.
func (pq *ArrayPriorityQueue[T]) Clone() *ArrayPriorityQueue[T] {
	return &ArrayPriorityQueue[T]{
		ArrayQueue: *pq.ArrayQueue.Clone(),
		greater:    pq.greater,
	}
}

// Enqueue inserts value behind every element of greater or equal priority.
//
// The element is appended at the back and then swapped with its ring
// predecessor while it outranks it. The walk stops at the front slot, so it
// never reads outside the logical window even when the buffer has wrapped.
func (pq *ArrayPriorityQueue[T]) Enqueue(value T) {
	pq.push(value)
	if pq.size == 1 {
		return
	}

	current := pq.back
	previous := pq.prev(current)
	for current != pq.front && pq.greater(pq.buf[current], pq.buf[previous]) {
		pq.buf[current], pq.buf[previous] = pq.buf[previous], pq.buf[current]
		current = previous
		previous = pq.prev(previous)
	}
}
