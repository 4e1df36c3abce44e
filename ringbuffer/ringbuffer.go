package ringbuffer

import "fmt"

// New constructs an empty RingBuffer holding at most capacity values.
//
// Errors:
//   - ErrInvalidArgument if capacity <= 0.
//
// Complexity: O(capacity) time and memory.
func New[T any](capacity int) (*RingBuffer[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidArgument, capacity)
	}

	return &RingBuffer[T]{storage: make([]T, capacity)}, nil
}

// Append writes item at the cursor and advances it modulo Cap().
// When the buffer is full the oldest value is overwritten without notice.
//
// Complexity: O(1).
func (r *RingBuffer[T]) Append(item T) {
	r.storage[r.cursor] = item
	r.written++

	r.cursor++
	if r.cursor == len(r.storage) {
		r.cursor = 0
		r.wrapped = true
	}
}

// Get returns the retained values ordered oldest → newest.
// The returned slice is a copy and may be modified by the caller.
//
// Complexity: O(capacity).
func (r *RingBuffer[T]) Get() []T {
	if !r.wrapped {
		out := make([]T, r.cursor)
		copy(out, r.storage[:r.cursor])

		return out
	}

	// Full: the oldest value sits at the cursor.
	out := make([]T, len(r.storage))
	n := copy(out, r.storage[r.cursor:])
	copy(out[n:], r.storage[:r.cursor])

	return out
}

// Slots returns the written slots in physical storage order, slot 0 first.
// After a wrap this is not chronological; use Get for that.
func (r *RingBuffer[T]) Slots() []T {
	out := make([]T, r.Len())
	copy(out, r.storage)

	return out
}

// Len reports how many values are currently retained.
func (r *RingBuffer[T]) Len() int {
	if r.wrapped {
		return len(r.storage)
	}

	return r.cursor
}

// Cap reports the fixed capacity.
func (r *RingBuffer[T]) Cap() int { return len(r.storage) }

// Full reports whether Len() == Cap(), i.e. the next Append evicts a value.
func (r *RingBuffer[T]) Full() bool { return r.wrapped }

// Written reports the total number of Append calls, evicted values included.
func (r *RingBuffer[T]) Written() uint64 { return r.written }

// Newest returns the most recently appended value.
// ok is false if the buffer is empty.
func (r *RingBuffer[T]) Newest() (item T, ok bool) {
	if r.Len() == 0 {
		return item, false
	}
	i := r.cursor - 1
	if i < 0 {
		i = len(r.storage) - 1
	}

	return r.storage[i], true
}

// Oldest returns the oldest retained value.
// ok is false if the buffer is empty.
func (r *RingBuffer[T]) Oldest() (item T, ok bool) {
	switch {
	case r.Len() == 0:
		return item, false
	case r.wrapped:
		return r.storage[r.cursor], true
	default:
		return r.storage[0], true
	}
}

// Reset empties the buffer. Slots are zeroed so evicted values can be collected.
func (r *RingBuffer[T]) Reset() {
	clear(r.storage)
	r.cursor = 0
	r.wrapped = false
	r.written = 0
}
