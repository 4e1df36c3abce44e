// Package knapsack_test provides small helpers shared across *_test.go files:
// deterministic instance generation and an exhaustive reference solver.
package knapsack_test

import (
	"math/rand"

	"github.com/katalvlaran/lvkit/knapsack"
)

const (
	// seedDet is the base seed for randomized cross-checks.
	seedDet int64 = 1

	// maxBruteItems bounds exhaustive enumeration (2^15 subsets).
	maxBruteItems = 15
)

// rngFromSeed returns a deterministic *rand.Rand; seed==0 maps to seedDet.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = seedDet
	}

	return rand.New(rand.NewSource(seed))
}

// randomItems builds n items with sizes in [0, maxSize] and integral values in [0, maxValue].
// Small integral values make ties frequent, which is what we want to stress.
func randomItems(r *rand.Rand, n, maxSize, maxValue int) []knapsack.Item {
	items := make([]knapsack.Item, n)
	for i := range items {
		items[i] = knapsack.Item{
			Index: i,
			Size:  r.Intn(maxSize + 1),
			Value: float64(r.Intn(maxValue + 1)),
		}
	}

	return items
}

// bruteForceBest enumerates every subset and returns the best feasible value.
// Capacity 0 follows Solve's policy: nothing is taken.
func bruteForceBest(items []knapsack.Item, capacity int) float64 {
	if capacity == 0 {
		return 0
	}

	var best float64
	n := len(items)
	for mask := 0; mask < 1<<n; mask++ {
		var (
			size  int
			value float64
		)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				size += items[i].Size
				value += items[i].Value
			}
		}
		if size <= capacity && value > best {
			best = value
		}
	}

	return best
}

// valueOf sums the values of the chosen indices.
func valueOf(items []knapsack.Item, chosen []int) float64 {
	byIndex := make(map[int]float64, len(items))
	for _, it := range items {
		byIndex[it.Index] = it.Value
	}

	var total float64
	for _, idx := range chosen {
		total += byIndex[idx]
	}

	return total
}
