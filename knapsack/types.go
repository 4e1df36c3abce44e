package knapsack

import "errors"

// Sentinel errors for knapsack inputs.
var (
	// ErrInvalidArgument is returned for negative sizes, values or capacity,
	// non-finite values, and duplicate item indices.
	ErrInvalidArgument = errors.New("knapsack: invalid argument")

	// ErrMalformedInput is returned by ReadItems for lines that are not
	// "index size value".
	ErrMalformedInput = errors.New("knapsack: malformed input")
)

// Item is a candidate for the knapsack.
type Item struct {
	// Index identifies the item in Result.Chosen. Must be unique per call.
	Index int `json:"index" yaml:"index"`

	// Size is the non-negative integer weight the item consumes.
	Size int `json:"size" yaml:"size"`

	// Value is the non-negative worth of the item.
	Value float64 `json:"value" yaml:"value"`
}

// Result is the outcome of Solve.
type Result struct {
	// Value is the maximum total value achievable within capacity.
	Value float64 `json:"value" yaml:"value"`

	// Chosen holds the indices of one optimal subset, ascending. Never nil.
	Chosen []int `json:"chosen" yaml:"chosen"`
}
