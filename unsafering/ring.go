// unsafering implements a fixed size ring buffer with no concurrency
// support. Only one goroutine may read or write it at a time.
package unsafering

import "iter"

type Buffer[T any] struct {
	data  []T
	count int
	write int
}

func New[T any](size int) *Buffer[T] {
	if size <= 0 {
		panic("unsafering: size must be positive")
	}
	return &Buffer[T]{data: make([]T, size)}
}

// Push appends v, overwriting the oldest element once the buffer is full.
func (r *Buffer[T]) Push(v T) {
	r.data[r.write] = v
	r.write = (r.write + 1) % len(r.data)
	r.count = min(r.count+1, len(r.data))
}

func (r *Buffer[T]) Len() int { return r.count }
func (r *Buffer[T]) Cap() int { return len(r.data) }

// Clear drops every element.
func (r *Buffer[T]) Clear() {
	clear(r.data)
	r.count = 0
	r.write = 0
}

// AtInWindow returns the element at index `i` within a window of
// the most recent `window` elements, in chronological order.
//
// Example:
//
//	With buffer [..., 8, 9, 10, 11, 12]
//	AtInWindow(0, 5) == 8
//	AtInWindow(4, 5) == 12
func (r *Buffer[T]) AtInWindow(i, window int) (val T, ok bool) {
	window = min(window, r.count)
	if i < 0 || i >= window {
		return val, false
	}
	return r.data[r.index(window, i)], true
}

// Iter yields the buffer contents, oldest to newest.
func (r *Buffer[T]) Iter() iter.Seq[T] {
	return r.IterRecent(r.count)
}

// IterRecent yields the most recent n elements, oldest to newest.
func (r *Buffer[T]) IterRecent(n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		n := min(n, r.count)
		for i := range n {
			if !yield(r.data[r.index(n, i)]) {
				return
			}
		}
	}
}

// index maps position i of the newest window elements into data.
func (r *Buffer[T]) index(window, i int) int {
	size := len(r.data)
	return (r.write - window + i + size) % size
}
