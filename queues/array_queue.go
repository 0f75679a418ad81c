package queues

import "strings"

// InitialAllocationSize is the capacity given to an ArrayQueue on its first
// growth from an unallocated state.
const InitialAllocationSize = 10

// ArrayQueue is a generic FIFO queue backed by a circular array (ring buffer).
// The buffer is allocated lazily and doubles whenever an Enqueue finds it full,
// so Enqueue and Dequeue are amortized O(1).
type ArrayQueue[T any] struct {
	ring[T]
	name string
}

// NewArrayQueue creates an empty ArrayQueue with no allocated buffer.
func NewArrayQueue[T any]() *ArrayQueue[T] {
	return &ArrayQueue[T]{
		ring: ring[T]{back: -1},
		name: "ArrayQueue",
	}
}

// NewArrayQueueFrom creates an ArrayQueue holding a copy of values, front
// first. The buffer is sized to exactly len(values).
func NewArrayQueueFrom[T any](values []T) *ArrayQueue[T] {
	aq := NewArrayQueue[T]()
	aq.adopt(values, len(values))
	return aq
}

// adopt copies values into a fresh buffer of capacity slots.
func (aq *ArrayQueue[T]) adopt(values []T, capacity int) {
	if capacity == 0 {
		aq.reset()
		return
	}
	aq.buf = make([]T, capacity)
	copy(aq.buf, values)
	aq.front = 0
	aq.size = len(values)
	aq.back = aq.size - 1
}

// Clone returns an independent copy of the queue. The copy is unwrapped and
// gets twice as many slots as it has elements.
func (aq *ArrayQueue[T]) Clone() *ArrayQueue[T] {
	c := &ArrayQueue[T]{ring: ring[T]{back: -1}, name: aq.name}
	c.adopt(aq.values(), 2*aq.size)
	return c
}

// values returns the logical elements in front-to-back order.
func (aq *ArrayQueue[T]) values() []T {
	vals := make([]T, aq.size)
	for i := range aq.size {
		vals[i] = aq.buf[aq.slot(i)]
	}
	return vals
}

// growIfNeeded makes room for one more element.
func (aq *ArrayQueue[T]) growIfNeeded() {
	if aq.size < aq.capacity() {
		return
	}
	newCapacity := 2 * aq.capacity()
	if newCapacity == 0 {
		newCapacity = InitialAllocationSize
	}
	aq.grow(newCapacity)
}

// push appends value at the back of the ring, growing it first if full.
func (aq *ArrayQueue[T]) push(value T) {
	aq.growIfNeeded()
	aq.back = aq.next(aq.back)
	aq.buf[aq.back] = value
	aq.size++
}

func (aq *ArrayQueue[T]) Enqueue(value T) {
	aq.push(value)
}

func (aq *ArrayQueue[T]) Dequeue() (value T, err error) {
	if aq.size == 0 {
		return value, emptyError(aq.name, "Dequeue")
	}
	value = aq.buf[aq.front]
	var zero T
	aq.buf[aq.front] = zero // clear reference
	aq.front = aq.next(aq.front)
	aq.size--
	return value, nil
}

func (aq *ArrayQueue[T]) Front() (value T, err error) {
	if aq.size == 0 {
		return value, emptyError(aq.name, "Front")
	}
	return aq.buf[aq.front], nil
}

func (aq *ArrayQueue[T]) At(index int) (value T, err error) {
	if err = checkIndex(aq.name, "At", index, aq.size); err != nil {
		return value, err
	}
	return aq.buf[aq.slot(index)], nil
}

func (aq *ArrayQueue[T]) Set(index int, value T) error {
	if err := checkIndex(aq.name, "Set", index, aq.size); err != nil {
		return err
	}
	aq.buf[aq.slot(index)] = value
	return nil
}

func (aq *ArrayQueue[T]) Size() int {
	return aq.size
}

func (aq *ArrayQueue[T]) IsEmpty() bool {
	return aq.size == 0
}

// Cap returns the number of allocated slots.
func (aq *ArrayQueue[T]) Cap() int {
	return aq.capacity()
}

// Clear releases the buffer and returns the queue to its freshly constructed state.
func (aq *ArrayQueue[T]) Clear() {
	aq.reset()
}

func (aq *ArrayQueue[T]) String() string {
	var sb strings.Builder
	writeQueue(&sb, aq.size, func(i int) T {
		return aq.buf[aq.slot(i)]
	})
	return sb.String()
}
