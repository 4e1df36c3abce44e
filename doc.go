// Package lvkit is a small toolbox of bounded, in-memory building blocks:
// a generic overwrite-oldest ring buffer and an exact 0/1 knapsack solver.
//
// 🚀 What is in lvkit?
//
//	Two independent leaf packages, each usable on its own:
//		• ringbuffer — fixed-capacity circular buffer, logical (oldest → newest) reads
//		• knapsack   — pseudo-polynomial DP solver returning value + chosen items
//
// ✨ Why choose lvkit?
//
//   - Small API, explicit sentinel errors (errors.Is friendly)
//   - Deterministic results, no hidden state
//   - Generic ring buffer plus a mutex-guarded Synced variant
//   - Pure Go library packages, no cgo
//
// Layout:
//
//	ringbuffer/   — RingBuffer[T], Synced[T]
//	knapsack/     — Solve, Validate, ReadItems
//	cmd/lvkit/    — command-line front end (knapsack, tail, version)
//	internal/     — CLI plumbing: config (viper), logger (slog), output
//
// Quick ASCII example (capacity 5 after appending a..i):
//
//	slots:  [f][g][h][i][e]
//	                     ^ cursor = oldest
//	Get():  e f g h i
//
//	go get github.com/katalvlaran/lvkit
package lvkit
