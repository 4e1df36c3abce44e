package knapsack

import (
	"fmt"
	"math"
)

// Validate checks the preconditions of Solve.
//
// Contract:
//   - capacity >= 0
//   - every Size >= 0
//   - every Value is finite and >= 0
//   - Index values are unique
//
// Complexity: O(n) time, O(n) extra space for the uniqueness check.
func Validate(items []Item, capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, capacity)
	}

	seen := make(map[int]struct{}, len(items))
	for i, it := range items {
		if it.Size < 0 {
			return fmt.Errorf("%w: item %d has negative size %d", ErrInvalidArgument, it.Index, it.Size)
		}
		if math.IsNaN(it.Value) || math.IsInf(it.Value, 0) {
			return fmt.Errorf("%w: item %d has non-finite value", ErrInvalidArgument, it.Index)
		}
		if it.Value < 0 {
			return fmt.Errorf("%w: item %d has negative value %v", ErrInvalidArgument, it.Index, it.Value)
		}
		if _, dup := seen[it.Index]; dup {
			return fmt.Errorf("%w: duplicate index %d at position %d", ErrInvalidArgument, it.Index, i)
		}
		seen[it.Index] = struct{}{}
	}

	return nil
}

// TotalSize sums the sizes of the items whose Index appears in chosen.
// Unknown indices are ignored.
func TotalSize(items []Item, chosen []int) int {
	want := make(map[int]struct{}, len(chosen))
	for _, idx := range chosen {
		want[idx] = struct{}{}
	}

	total := 0
	for _, it := range items {
		if _, ok := want[it.Index]; ok {
			total += it.Size
		}
	}

	return total
}
