package queues

// LinkedPriorityQueue is a LinkedQueue that keeps its elements ordered by
// priority, highest at the front, with equal priorities in arrival order.
//
// Every Enqueue re-sorts the whole chain with quadratic value-swapping passes,
// so insertion is O(n²). ArrayPriorityQueue gives the same ordering with a
// single O(n) pass.
type LinkedPriorityQueue[T any] struct {
	LinkedQueue[T]
	greater Greater[T]
}

// NewLinkedPriorityQueue creates an empty LinkedPriorityQueue ordered by greater.
// greater must not be nil.
func NewLinkedPriorityQueue[T any](greater Greater[T]) *LinkedPriorityQueue[T] {
	mustGreater(greater, "NewLinkedPriorityQueue")
	return &LinkedPriorityQueue[T]{
		LinkedQueue: LinkedQueue[T]{name: "LinkedPriorityQueue"},
		greater:     greater,
	}
}

// NewLinkedPriorityQueueFrom creates a LinkedPriorityQueue by enqueuing each of values in turn.
func NewLinkedPriorityQueueFrom[T any](values []T, greater Greater[T]) *LinkedPriorityQueue[T] {
	pq := NewLinkedPriorityQueue(greater)
	for _, v := range values {
		pq.Enqueue(v)
	}
	return pq
}

// Clone returns a copy built from fresh nodes.
func (pq *LinkedPriorityQueue[T]) Clone() *LinkedPriorityQueue[T] {
	return &LinkedPriorityQueue[T]{
		LinkedQueue: *pq.LinkedQueue.Clone(),
		greater:     pq.greater,
	}
}

func (pq *LinkedPriorityQueue[T]) Enqueue(value T) {
	pq.link(value)
	pq.resort()
}

// resort orders the chain by swapping values between neighbouring nodes,
// one pass per position; nodes are never relinked. Each pass carries the
// lowest remaining priority to the end of the unsorted prefix.
func (pq *LinkedPriorityQueue[T]) resort() {
	for pass := range pq.size {
		current := pq.front
		for range pq.size - 1 - pass {
			next := current.next
			if pq.greater(next.val, current.val) {
				current.val, next.val = next.val, current.val
			}
			current = next
		}
	}
}
