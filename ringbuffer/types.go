package ringbuffer

import "errors"

// ErrInvalidArgument is returned by New and NewSynced when the requested
// capacity is not positive.
var ErrInvalidArgument = errors.New("ringbuffer: invalid argument")

// RingBuffer is a fixed-capacity circular buffer of T.
//
// Appending to a full buffer overwrites the oldest retained value.
// The zero value is not usable; construct with New.
type RingBuffer[T any] struct {
	// storage holds exactly capacity slots.
	storage []T

	// cursor is the slot the next Append writes to.
	cursor int

	// wrapped is set once the cursor has returned to slot 0, i.e. every slot is live.
	wrapped bool

	// written counts every Append since construction or the last Reset.
	written uint64
}
