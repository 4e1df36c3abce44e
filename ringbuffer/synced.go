package ringbuffer

import "sync"

// Synced is a RingBuffer guarded by a sync.RWMutex.
// Append and Reset take the write lock; readers share the read lock.
type Synced[T any] struct {
	mu sync.RWMutex
	rb *RingBuffer[T]
}

// NewSynced constructs an empty concurrency-safe buffer.
// It fails with ErrInvalidArgument under the same rule as New.
func NewSynced[T any](capacity int) (*Synced[T], error) {
	rb, err := New[T](capacity)
	if err != nil {
		return nil, err
	}

	return &Synced[T]{rb: rb}, nil
}

// Append adds item, evicting the oldest value when full.
func (s *Synced[T]) Append(item T) {
	s.mu.Lock()
	s.rb.Append(item)
	s.mu.Unlock()
}

// Get returns a consistent oldest → newest snapshot.
func (s *Synced[T]) Get() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rb.Get()
}

// Len reports how many values are currently retained.
func (s *Synced[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rb.Len()
}

// Cap reports the fixed capacity.
func (s *Synced[T]) Cap() int { return s.rb.Cap() }

// Written reports the total number of appends.
func (s *Synced[T]) Written() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rb.Written()
}

// Newest returns the most recently appended value, if any.
func (s *Synced[T]) Newest() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rb.Newest()
}

// Oldest returns the oldest retained value, if any.
func (s *Synced[T]) Oldest() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rb.Oldest()
}

// Full reports whether the next Append evicts a value.
func (s *Synced[T]) Full() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rb.Full()
}

// Slots returns the written slots in physical storage order.
func (s *Synced[T]) Slots() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rb.Slots()
}

// Reset empties the buffer.
func (s *Synced[T]) Reset() {
	s.mu.Lock()
	s.rb.Reset()
	s.mu.Unlock()
}
