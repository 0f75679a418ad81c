package queues

import (
	"fmt"
	"strings"
)

// writeQueue renders size elements, fetched by logical index, in the
// "<queue> size: N front:[ e0, e1 ]:back" form shared by every queue.
func writeQueue[T any](sb *strings.Builder, size int, at func(i int) T) {
	fmt.Fprintf(sb, "<queue> size: %d front:[ ", size)
	for i := range size {
		fmt.Fprint(sb, at(i))
		if i == size-1 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
	}
	sb.WriteString("]:back")
}

// Render formats any Queue the same way the built-in queues format themselves.
func Render[T any](q Queue[T]) string {
	var sb strings.Builder
	writeQueue(&sb, q.Size(), func(i int) T {
		v, _ := q.At(i)
		return v
	})
	return sb.String()
}
