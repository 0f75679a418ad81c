package queues

import "strings"

type node[T any] struct {
	next *node[T]
	val  T
}

// LinkedQueue is a generic FIFO queue backed by a singly linked chain of nodes.
// Enqueue links at the back and Dequeue unlinks at the front, both O(1).
type LinkedQueue[T any] struct {
	front *node[T]
	back  *node[T]
	size  int
	name  string
}

func NewLinkedQueue[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{name: "LinkedQueue"}
}

// NewLinkedQueueFrom creates a LinkedQueue holding values, front first.
func NewLinkedQueueFrom[T any](values []T) *LinkedQueue[T] {
	lq := NewLinkedQueue[T]()
	for _, v := range values {
		lq.Enqueue(v)
	}
	return lq
}

// Clone returns a copy built from fresh nodes; no node is shared with lq.
func (lq *LinkedQueue[T]) Clone() *LinkedQueue[T] {
	c := &LinkedQueue[T]{name: lq.name}
	for current := lq.front; current != nil; current = current.next {
		c.Enqueue(current.val)
	}
	return c
}

// link appends a new node holding value at the back of the chain.
func (lq *LinkedQueue[T]) link(value T) {
	newNode := &node[T]{val: value}
	if lq.front == nil {
		lq.front = newNode
	} else {
		lq.back.next = newNode
	}
	lq.back = newNode
	lq.size++
}

// findNodeAt walks index links from the front.
// Bounds checking should be done by the caller.
func (lq *LinkedQueue[T]) findNodeAt(index int) *node[T] {
	current := lq.front
	for range index {
		current = current.next
	}
	return current
}

func (lq *LinkedQueue[T]) Enqueue(value T) {
	lq.link(value)
}

func (lq *LinkedQueue[T]) Dequeue() (value T, err error) {
	if lq.size == 0 {
		return value, emptyError(lq.name, "Dequeue")
	}
	removed := lq.front
	lq.front = removed.next
	value = removed.val
	// Help GC
	var zero T
	removed.next = nil
	removed.val = zero
	lq.size--
	if lq.front == nil {
		lq.back = nil
	}
	return value, nil
}

func (lq *LinkedQueue[T]) Front() (value T, err error) {
	if lq.size == 0 {
		return value, emptyError(lq.name, "Front")
	}
	return lq.front.val, nil
}

// At is O(index).
func (lq *LinkedQueue[T]) At(index int) (value T, err error) {
	if err = checkIndex(lq.name, "At", index, lq.size); err != nil {
		return value, err
	}
	return lq.findNodeAt(index).val, nil
}

func (lq *LinkedQueue[T]) Set(index int, value T) error {
	if err := checkIndex(lq.name, "Set", index, lq.size); err != nil {
		return err
	}
	lq.findNodeAt(index).val = value
	return nil
}

func (lq *LinkedQueue[T]) Size() int {
	return lq.size
}

func (lq *LinkedQueue[T]) IsEmpty() bool {
	return lq.size == 0
}

func (lq *LinkedQueue[T]) Clear() {
	// Clear all nodes to help GC
	var zero T
	current := lq.front
	for current != nil {
		next := current.next
		current.next = nil
		current.val = zero
		current = next
	}
	lq.front = nil
	lq.back = nil
	lq.size = 0
}

func (lq *LinkedQueue[T]) String() string {
	var sb strings.Builder
	current := lq.front
	writeQueue(&sb, lq.size, func(int) T {
		v := current.val
		current = current.next
		return v
	})
	return sb.String()
}
