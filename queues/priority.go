package queues

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Greater reports whether a has strictly higher priority than b.
// Priority queues never swap elements for which Greater is false, so equal
// priorities keep their arrival order.
type Greater[T any] func(a, b T) bool

// Prioritized is implemented by value types that know how to rank themselves.
type Prioritized[T any] interface {
	Greater(other T) bool
}

// ByGreater adapts a Prioritized type to a Greater function.
func ByGreater[T Prioritized[T]]() Greater[T] {
	return func(a, b T) bool {
		return a.Greater(b)
	}
}

// Descending ranks larger built-in values ahead of smaller ones.
func Descending[T constraints.Ordered]() Greater[T] {
	return func(a, b T) bool {
		return a > b
	}
}

func mustGreater[T any](greater Greater[T], caller string) {
	if greater == nil {
		panic("queues." + caller + ": greater function cannot be nil")
	}
}

// sortByPriority stable-sorts vals so that higher priorities come first.
func sortByPriority[T any](vals []T, greater Greater[T]) {
	slices.SortStableFunc(vals, func(a, b T) int {
		switch {
		case greater(a, b):
			return -1
		case greater(b, a):
			return 1
		default:
			return 0
		}
	})
}
