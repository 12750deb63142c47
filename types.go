// Package ckmeans defines core types, sentinel errors, and configuration
// options for exact one-dimensional k-clustering.
//
// The solver partitions a sorted slice of n finite values into exactly k
// contiguous groups minimizing the total within-group sum of squared
// deviations (WCSS). The partition is computed by dynamic programming and is
// exact: no seeding, no iteration, no local optima.
//
// Options:
//
//	– Strategy: LinearScan (monotone split pointer, O(k·n)) or
//	  FullScan (naive scan of the same recurrence, O(k·n²)).
//	  Both produce the same minimum cost; FullScan exists for
//	  cross-checking and benchmarking.
//
// Errors (sentinel):
//
//	– ErrNilInput        if the input slice is nil.
//	– ErrEmptyInput      if the input slice has no elements.
//	– ErrNonPositiveK    if k ≤ 0.
//	– ErrKExceedsN       if k > len(values).
//	– ErrNonFinite       if any value is NaN or ±Inf.
//	– ErrUnknownStrategy if Options carry an unrecognized Strategy.
package ckmeans

import "errors"

// Sentinel errors returned by Fit.
var (
	// ErrNilInput indicates that a nil values slice was passed to Fit.
	ErrNilInput = errors.New("ckmeans: nil input slice")

	// ErrEmptyInput indicates an empty input: there is nothing to cluster.
	ErrEmptyInput = errors.New("ckmeans: empty input")

	// ErrNonPositiveK indicates that the requested cluster count is ≤ 0.
	ErrNonPositiveK = errors.New("ckmeans: k must be positive")

	// ErrKExceedsN indicates that more clusters were requested than there
	// are points to place them on.
	ErrKExceedsN = errors.New("ckmeans: k exceeds number of points")

	// ErrNonFinite indicates that the input contains NaN or ±Inf; segment
	// costs are undefined for non-finite values.
	ErrNonFinite = errors.New("ckmeans: non-finite value in input")

	// ErrUnknownStrategy indicates an out-of-range Strategy value.
	ErrUnknownStrategy = errors.New("ckmeans: unknown solver strategy")
)

// Strategy selects how the DP recurrence is evaluated.
//
//   - LinearScan — maintain one monotone split pointer per DP row and advance
//     it only while the next candidate is strictly cheaper. Each row costs
//     O(n), the whole table O(k·n). This is the default.
//
//   - FullScan — scan the entire candidate range [k′-1, i-1] for every (i, k′)
//     state. O(k·n²) overall. Same minimum cost and same tie-break (smallest
//     split index wins on equal cost); kept as a reference evaluator.
type Strategy int

const (
	// LinearScan evaluates the recurrence with the monotone split pointer. O(k·n).
	LinearScan Strategy = iota

	// FullScan evaluates the recurrence naively over the full candidate range. O(k·n²).
	FullScan
)

// Options configures Fit.
//
// Strategy – DP evaluation strategy (LinearScan or FullScan).
//
//	Default is LinearScan.
type Options struct {
	Strategy Strategy // How the DP recurrence is evaluated
}

// Option represents a functional option for configuring Fit.
type Option func(*Options)

// WithStrategy selects the DP evaluation strategy.
// Passing a value other than LinearScan or FullScan panics; invalid
// configuration is a programming error, caught at option-construction time.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != LinearScan && s != FullScan {
			panic(ErrUnknownStrategy.Error())
		}
		o.Strategy = s
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for functional-option overrides.
//
// Defaults:
//   - Strategy: LinearScan (O(k·n) monotone-pointer evaluation).
func DefaultOptions() Options {
	return Options{
		Strategy: LinearScan,
	}
}

// Group is one contiguous cluster of the sorted input.
//
// Values holds the group's member points in ascending order; Centroid is
// their arithmetic mean. Values aliases the private sorted copy owned by the
// Result, never the caller's slice.
type Group struct {
	Values   []float64 // member points, ascending
	Centroid float64   // arithmetic mean of Values
}

// Result is the outcome of one Fit call: exactly k groups ordered by
// ascending position in the sorted input, plus the minimum achievable total
// within-group sum of squared deviations.
type Result struct {
	Groups    []Group // k contiguous groups, ascending
	TotalCost float64 // Σ over groups of Σ (x − group mean)²
}
