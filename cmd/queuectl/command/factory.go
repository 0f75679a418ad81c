package command

import (
	"queuekit/internal/config"
	"queuekit/queues"
)

// newQueue builds the queue selected by cfg. greater is only used by the
// priority backends.
func newQueue[T any](cfg *config.Config, greater queues.Greater[T]) queues.Queue[T] {
	switch {
	case cfg.Backend == config.LinkedBackend && cfg.Priority:
		return queues.NewLinkedPriorityQueue(greater)
	case cfg.Backend == config.LinkedBackend:
		return queues.NewLinkedQueue[T]()
	case cfg.Priority:
		return queues.NewArrayPriorityQueue(greater)
	default:
		return queues.NewArrayQueue[T]()
	}
}
