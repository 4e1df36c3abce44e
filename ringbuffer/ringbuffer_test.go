package ringbuffer_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvkit/ringbuffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_InvalidCapacity verifies that non-positive capacities are rejected.
func TestNew_InvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1, -100} {
		rb, err := ringbuffer.New[int](c)
		assert.ErrorIs(t, err, ringbuffer.ErrInvalidArgument, "capacity %d must be rejected", c)
		assert.Nil(t, rb)
	}
}

// TestRingBuffer_Empty checks the freshly constructed state.
func TestRingBuffer_Empty(t *testing.T) {
	rb, err := ringbuffer.New[string](3)
	require.NoError(t, err)

	assert.Empty(t, rb.Get())
	assert.NotNil(t, rb.Get(), "Get must return an empty, non-nil slice")
	assert.Equal(t, 0, rb.Len())
	assert.Equal(t, 3, rb.Cap())
	assert.False(t, rb.Full())

	_, ok := rb.Newest()
	assert.False(t, ok)
	_, ok = rb.Oldest()
	assert.False(t, ok)
}

// TestRingBuffer_BeforeWrap verifies append order is preserved while n <= capacity.
func TestRingBuffer_BeforeWrap(t *testing.T) {
	rb, err := ringbuffer.New[string](5)
	require.NoError(t, err)

	for _, s := range []string{"a", "b", "c", "d"} {
		rb.Append(s)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, rb.Get())
	assert.False(t, rb.Full())

	rb.Append("e")
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, rb.Get())
	assert.True(t, rb.Full())
	assert.Equal(t, 5, rb.Len())
}

// TestRingBuffer_Wrap walks the a..i sequence through a capacity-5 buffer
// and checks logical order against physical slot order at every step.
func TestRingBuffer_Wrap(t *testing.T) {
	rb, err := ringbuffer.New[string](5)
	require.NoError(t, err)

	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
		rb.Append(s)
	}
	assert.Equal(t, []string{"b", "c", "d", "e", "f"}, rb.Get())
	assert.Equal(t, []string{"f", "b", "c", "d", "e"}, rb.Slots())

	for _, s := range []string{"g", "h", "i"} {
		rb.Append(s)
	}
	assert.Equal(t, []string{"e", "f", "g", "h", "i"}, rb.Get(), "Get is oldest → newest")
	assert.Equal(t, []string{"f", "g", "h", "i", "e"}, rb.Slots(), "Slots is physical order")
	assert.Equal(t, 5, rb.Len())
	assert.Equal(t, uint64(9), rb.Written())

	oldest, ok := rb.Oldest()
	require.True(t, ok)
	assert.Equal(t, "e", oldest)
	newest, ok := rb.Newest()
	require.True(t, ok)
	assert.Equal(t, "i", newest)
}

// TestRingBuffer_LastK checks Get == last k appended for many (k, n) pairs.
func TestRingBuffer_LastK(t *testing.T) {
	for k := 1; k <= 7; k++ {
		for n := 0; n <= 3*k+1; n++ {
			t.Run(fmt.Sprintf("k=%d/n=%d", k, n), func(t *testing.T) {
				rb, err := ringbuffer.New[int](k)
				require.NoError(t, err)

				all := make([]int, 0, n)
				for i := 0; i < n; i++ {
					rb.Append(i)
					all = append(all, i)
				}

				want := all
				if n > k {
					want = all[n-k:]
				}
				assert.Equal(t, want, rb.Get())
				assert.Equal(t, len(want), rb.Len())
			})
		}
	}
}

// TestRingBuffer_CapacityOne verifies the degenerate single-slot buffer.
func TestRingBuffer_CapacityOne(t *testing.T) {
	rb, err := ringbuffer.New[int](1)
	require.NoError(t, err)

	rb.Append(1)
	assert.Equal(t, []int{1}, rb.Get())
	rb.Append(2)
	assert.Equal(t, []int{2}, rb.Get())

	newest, _ := rb.Newest()
	oldest, _ := rb.Oldest()
	assert.Equal(t, 2, newest)
	assert.Equal(t, 2, oldest)
}

// TestRingBuffer_GetIsCopy ensures callers cannot corrupt internal storage.
func TestRingBuffer_GetIsCopy(t *testing.T) {
	rb, err := ringbuffer.New[int](3)
	require.NoError(t, err)
	rb.Append(1)
	rb.Append(2)

	got := rb.Get()
	got[0] = 99
	assert.Equal(t, []int{1, 2}, rb.Get())
}

// TestRingBuffer_Reset returns the buffer to its constructed state.
func TestRingBuffer_Reset(t *testing.T) {
	rb, err := ringbuffer.New[int](2)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		rb.Append(i)
	}

	rb.Reset()
	assert.Empty(t, rb.Get())
	assert.Equal(t, uint64(0), rb.Written())
	assert.False(t, rb.Full())

	rb.Append(7)
	assert.Equal(t, []int{7}, rb.Get())
}
