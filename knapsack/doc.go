// Package knapsack solves the 0/1 knapsack problem exactly and reports both
// the optimal value and one concrete optimal selection.
//
// 🚀 What is 0/1 knapsack?
//
//	Given items with integer sizes and non-negative values, pick a subset
//	whose total size fits a capacity and whose total value is maximal.
//	Each item is taken whole or not at all. Classic applications:
//	  • budget allocation and portfolio selection
//	  • cargo / container loading
//	  • choosing jobs or ads for a fixed time slot
//
// ✨ Key features:
//   - exact dynamic programming, pseudo-polynomial O(n·C)
//   - full (n+1)×(C+1) value table kept for a single backward reconstruction
//   - deterministic tie-break: an item is taken only when it strictly
//     improves the optimum for its prefix
//   - ReadItems parses the plain "index size value" text format
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvkit/knapsack"
//
//	items := []knapsack.Item{
//	  {Index: 1, Size: 42, Value: 81},
//	  {Index: 2, Size: 42, Value: 42},
//	  {Index: 3, Size: 68, Value: 56},
//	}
//	res, err := knapsack.Solve(items, 100)
//	// res.Value == 123, res.Chosen == [1 2]
//
// Performance:
//
//   - Time:   O(n·C)
//   - Memory: O(n·C)
//
// where n = len(items) and C = capacity. Solve allocates only local tables
// and is safe to call concurrently on independent inputs.
package knapsack
