package knapsack

import (
	"fmt"
	"math"
	"slices"
)

// Solve returns the optimal 0/1 knapsack value for items under capacity
// together with one optimal subset.
//
// Algorithm Outline:
//  1. Let n = len(items), C = capacity. Allocate (n+1)×(C+1) table best,
//     best[0][*] = 0.
//  2. For i = 1..n with item (s, v) = items[i-1], for c = 0..C:
//     best[i][c] = best[i-1][c]
//     if s <= c and best[i-1][c-s] + v > best[i][c]:
//     best[i][c] = best[i-1][c-s] + v
//  3. Value = best[n][C].
//  4. Walk i = n..1 with c = C: item i-1 is chosen iff
//     best[i][c] != best[i-1][c]; then c -= s.
//
// Tie-break:
//
//	A cell only switches to "take" on a strict improvement, so among equal
//	optima the walk keeps later items out whenever an earlier prefix already
//	reaches the same value. The result is a pure function of the input order.
//
// Errors:
//   - ErrInvalidArgument — see Validate.
//
// Complexity:
//
//	Time   = O(n·C)
//	Memory = O(n·C)
//
// C is capped at the summed size of the items that fit, so an oversized
// capacity costs nothing extra.
func Solve(items []Item, capacity int) (Result, error) {
	if err := Validate(items, capacity); err != nil {
		return Result{}, err
	}

	n := len(items)
	if n == 0 || capacity == 0 {
		// An empty knapsack takes nothing, zero-size items included.
		return Result{Chosen: []int{}}, nil
	}

	// No subset can use more than the summed size of the items that fit,
	// so the table never needs to be wider than that.
	limit := effectiveCapacity(items, capacity)
	if limit >= math.MaxInt/(n+1) {
		return Result{}, fmt.Errorf("%w: table of %d×%d cells is not addressable", ErrInvalidArgument, n+1, limit)
	}
	width := limit + 1

	// One backing array keeps the table contiguous.
	cells := make([]float64, (n+1)*width)
	best := make([][]float64, n+1)
	for i := range best {
		best[i] = cells[i*width : (i+1)*width]
	}

	var (
		i, c  int
		size  int
		value float64
		cand  float64
	)
	for i = 1; i <= n; i++ {
		size, value = items[i-1].Size, items[i-1].Value
		prev, curr := best[i-1], best[i]
		copy(curr, prev)
		if size > limit {
			continue // never fits
		}
		for c = size; c <= limit; c++ {
			cand = prev[c-size] + value
			if cand > curr[c] {
				curr[c] = cand
			}
		}
	}

	// Backward reconstruction.
	chosen := make([]int, 0)
	c = limit
	for i = n; i >= 1; i-- {
		if best[i][c] != best[i-1][c] {
			chosen = append(chosen, items[i-1].Index)
			c -= items[i-1].Size
		}
	}
	slices.Sort(chosen)

	return Result{Value: best[n][limit], Chosen: chosen}, nil
}

// effectiveCapacity returns min(capacity, Σ sizes of items with Size <= capacity).
// The sum saturates at capacity, so it cannot overflow.
func effectiveCapacity(items []Item, capacity int) int {
	total := 0
	for _, it := range items {
		if it.Size > capacity {
			continue
		}
		if it.Size > capacity-total {
			return capacity
		}
		total += it.Size
	}

	return total
}
