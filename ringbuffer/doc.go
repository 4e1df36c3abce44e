// Package ringbuffer provides a fixed-capacity circular sequence container
// with overwrite-oldest eviction.
//
// 🚀 What is a ring buffer?
//
//	A ring buffer keeps the most recent N values appended to it. Once it is
//	full, every new value silently replaces the oldest one still retained.
//	Typical uses:
//	  • "last N lines" of a log or command output
//	  • sliding windows of samples or events
//	  • bounded history for undo / diagnostics
//
// ✨ Key features:
//   - generic over the element type (RingBuffer[T any])
//   - O(1) Append, no allocation after construction
//   - Get returns logical order (oldest → newest), also after the buffer wraps
//   - Synced[T] wrapper guarded by a sync.RWMutex for concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvkit/ringbuffer"
//
//	rb, err := ringbuffer.New[string](5)
//	if err != nil {
//	  // ErrInvalidArgument: capacity must be > 0
//	}
//	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
//	  rb.Append(s)
//	}
//	rb.Get() // [b c d e f]
//
// Ordering:
//
//	Storage is a slice of Cap() slots and a write cursor. Before the cursor
//	wraps for the first time, slots [0, cursor) hold the values in append
//	order. After the first wrap every slot is live and the oldest value sits
//	at the cursor, so Get returns storage[cursor:] followed by storage[:cursor].
//	Slots exposes the raw physical order for diagnostics.
//
// Performance:
//
//   - Append: O(1)
//   - Get:    O(capacity), one allocation
//   - Memory: O(capacity)
//
// RingBuffer is not safe for concurrent use; wrap it in Synced or guard it
// with your own lock.
package ringbuffer
