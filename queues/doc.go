/*
Package queues provides generic FIFO and priority queues over two storage strategies.

  - [ArrayQueue]: a circular buffer that is allocated lazily ([InitialAllocationSize] slots)
    and doubles when full.
  - [ArrayPriorityQueue]: an ArrayQueue whose Enqueue bubbles the new element toward the front.
  - [LinkedQueue]: a singly linked chain with O(1) Enqueue and Dequeue.
  - [LinkedPriorityQueue]: a LinkedQueue that re-sorts the chain on every Enqueue.

All four satisfy [Queue]. Priority queues take a [Greater] function; use [Descending] for
built-in ordered types and [ByGreater] for types implementing [Prioritized]. The highest
priority sits at the front and equal priorities keep arrival order.

# Errors

Front and Dequeue on an empty queue return an [*EmptyError]; At and Set with an index outside
[0, Size()) return a [*BoundsError]. Match them with errors.Is against [ErrEmpty] and
[ErrOutOfBounds]. A call that fails leaves the queue unchanged.

# Rendering

Every queue prints as

	<queue> size: 3 front:[ 10, 7, 5 ]:back

and [Equal] / [EqualFunc] compare contents front to back, whatever the backend or buffer layout.

Queues are not safe for concurrent use.
*/
package queues
