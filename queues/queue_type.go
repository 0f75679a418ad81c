package queues

// Queue is the capability set shared by every queue in this package.
// Elements are addressed by logical position: index 0 is the front.
type Queue[T any] interface {
	// puts an element at the back of the queue (or at its priority position)
	Enqueue(value T)
	// removes and returns the element at the front of the queue
	Dequeue() (value T, err error)
	// returns the element at the front of the queue without removing it
	Front() (value T, err error)
	// returns the element at logical position index
	At(index int) (value T, err error)
	// replaces the element at logical position index in place
	Set(index int, value T) error
	// returns the number of elements in the queue
	Size() int
	// returns true if the queue is empty
	IsEmpty() bool
	// removes all elements from the queue and releases its storage
	Clear()
	// renders the queue as "<queue> size: N front:[ ... ]:back"
	String() string
}

// Equal reports whether a and b hold the same elements in the same
// front-to-back order. Storage layout and backend do not matter.
func Equal[T comparable](a, b Queue[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool {
		return x == y
	})
}

// EqualFunc is like Equal but compares elements with equal.
func EqualFunc[T any](a, b Queue[T], equal func(x, y T) bool) bool {
	if a.Size() != b.Size() {
		return false
	}
	for i := range a.Size() {
		x, _ := a.At(i)
		y, _ := b.At(i)
		if !equal(x, y) {
			return false
		}
	}
	return true
}

// Values returns a front-to-back copy of the queue's elements.
func Values[T any](q Queue[T]) []T {
	vals := make([]T, 0, q.Size())
	for i := range q.Size() {
		v, _ := q.At(i)
		vals = append(vals, v)
	}
	return vals
}
