package grid

import "iter"

const minDequeCap = 4

// Deque is a double-ended queue backed by a ring buffer.
// PushFront and PushBack are O(1) amortized; At and Set are O(1).
// The zero value is an empty deque ready to use.
type Deque[T any] struct {
	buf  []T
	head int // index of element 0 inside buf
	n    int
}

// NewDeque returns an empty deque with room for capacity elements.
func NewDeque[T any](capacity int) *Deque[T] {
	if capacity < minDequeCap {
		capacity = minDequeCap
	}
	return &Deque[T]{buf: make([]T, capacity)}
}

// Len returns the number of stored elements.
func (d *Deque[T]) Len() int { return d.n }

// At returns element i, counting from the front. It panics if i is out of range,
// like indexing a slice.
func (d *Deque[T]) At(i int) T {
	if i < 0 || i >= d.n {
		panic("grid: deque index out of range")
	}
	return d.buf[(d.head+i)%len(d.buf)]
}

// Set replaces element i. It panics if i is out of range.
func (d *Deque[T]) Set(i int, v T) {
	if i < 0 || i >= d.n {
		panic("grid: deque index out of range")
	}
	d.buf[(d.head+i)%len(d.buf)] = v
}

// PushFront inserts v before element 0; every existing index shifts by one.
func (d *Deque[T]) PushFront(v T) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.n++
}

// PushBack appends v after the last element.
func (d *Deque[T]) PushBack(v T) {
	d.grow()
	d.buf[(d.head+d.n)%len(d.buf)] = v
	d.n++
}

// All yields (index, element) pairs from front to back.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < d.n; i++ {
			if !yield(i, d.buf[(d.head+i)%len(d.buf)]) {
				return
			}
		}
	}
}

// grow doubles the buffer when full, unrolling the ring so head lands at 0.
func (d *Deque[T]) grow() {
	if d.n < len(d.buf) {
		return
	}
	size := len(d.buf) * 2
	if size < minDequeCap {
		size = minDequeCap
	}
	buf := make([]T, size)
	for i := 0; i < d.n; i++ {
		buf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = buf
	d.head = 0
}
