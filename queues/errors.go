package queues

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty matches every *EmptyError via errors.Is.
	ErrEmpty = errors.New("queue is empty")
	// ErrOutOfBounds matches every *BoundsError via errors.Is.
	ErrOutOfBounds = errors.New("index out of bounds")
)

// EmptyError is returned by Front and Dequeue when the queue holds no elements.
type EmptyError struct {
	Queue string // name of the queue kind, e.g. "ArrayQueue"
	Op    string // "Front" or "Dequeue"
	Size  int
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("<%s>::%s() attempt to access front item from empty queue, size: %d",
		e.Queue, e.Op, e.Size)
}

func (e *EmptyError) Is(target error) bool {
	return target == ErrEmpty
}

// BoundsError is returned by At and Set when index is negative or >= Size().
type BoundsError struct {
	Queue string
	Op    string
	Index int
	Size  int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("<%s>::%s() illegal bounds access, queue size: %d tried to access index address: %d",
		e.Queue, e.Op, e.Size, e.Index)
}

func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

func emptyError(queue, op string) error {
	return &EmptyError{Queue: queue, Op: op, Size: 0}
}

func checkIndex(queue, op string, index, size int) error {
	if index < 0 || index >= size {
		return &BoundsError{Queue: queue, Op: op, Index: index, Size: size}
	}
	return nil
}
