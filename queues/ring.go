package queues

// Modulo returns dividend mod divisor normalised into [0, divisor) for a
// positive divisor. Go's % truncates toward zero, so -1 % 10 is -1; Modulo
// gives 9.
func Modulo(dividend, divisor int) int {
	remainder := dividend % divisor
	if divisor > 0 && remainder < 0 {
		remainder += divisor
	}
	return remainder
}

// ring centralises the index arithmetic of a circular buffer.
// Logical element k lives at physical slot (front+k) mod len(buf).
type ring[T any] struct {
	buf   []T
	front int
	back  int // -1 when no buffer has been allocated
	size  int
}

func (r *ring[T]) capacity() int {
	return len(r.buf)
}

// slot maps logical position k to a physical index.
func (r *ring[T]) slot(k int) int {
	return Modulo(r.front+k, len(r.buf))
}

// next and prev step a physical index forward/backward around the ring.
func (r *ring[T]) next(i int) int {
	return Modulo(i+1, len(r.buf))
}

func (r *ring[T]) prev(i int) int {
	return Modulo(i-1, len(r.buf))
}

// grow relocates the logical elements into a buffer of newCap slots,
// unwrapped to 0..size-1.
func (r *ring[T]) grow(newCap int) {
	newBuf := make([]T, newCap)
	old := r.front
	for i := range r.size {
		newBuf[i] = r.buf[old]
		old = r.next(old)
	}
	clear(r.buf)
	r.buf = newBuf
	r.front = 0
	r.back = r.size - 1
}

func (r *ring[T]) reset() {
	clear(r.buf)
	r.buf = nil
	r.front = 0
	r.back = -1
	r.size = 0
}
