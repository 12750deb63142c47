package ckmeans

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Fit partitions values into exactly k contiguous clusters of the sorted
// input, minimizing the total within-cluster sum of squared deviations.
// The result is exact and deterministic: identical input always produces an
// identical partition and bit-identical total cost.
//
// Preconditions and validation (in order, first failure wins):
//  1. values must be non-nil (ErrNilInput).
//  2. values must be non-empty (ErrEmptyInput).
//  3. k must be positive (ErrNonPositiveK).
//  4. k must not exceed len(values) (ErrKExceedsN).
//  5. Every value must be finite — no NaN, no ±Inf (ErrNonFinite).
//
// Fit sorts a private copy of values; the caller's slice is never mutated.
// Each call owns all of its working memory (prefix sums, DP rows, split
// table), so concurrent Fit calls are safe by construction.
//
// Options customization:
//
//   - WithStrategy(FullScan): evaluate the DP recurrence naively in O(k·n²)
//     instead of the default O(k·n) monotone-pointer scan. Same result.
//
// Complexity:
//
//   - Time:  O(n log n) sort + O(k·n) DP (LinearScan)
//   - Space: O(k·n) for the split table, O(n) otherwise
func Fit(values []float64, k int, opts ...Option) (*Result, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the input reference.
	if values == nil {
		return nil, ErrNilInput
	}

	// 3) Validate the input is non-empty.
	n := len(values)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	// 4) Validate the cluster count is positive.
	if k <= 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrNonPositiveK, k)
	}

	// 5) Validate the cluster count is feasible.
	if k > n {
		return nil, fmt.Errorf("%w: k=%d, n=%d", ErrKExceedsN, k, n)
	}

	// 6) Validate every value is finite; report the first offender.
	for idx, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: values[%d]=%v", ErrNonFinite, idx, v)
		}
	}

	// 7) Guard against an Options struct mutated past the constructors.
	if cfg.Strategy != LinearScan && cfg.Strategy != FullScan {
		return nil, ErrUnknownStrategy
	}

	// 8) Sort a private copy. Contiguity of the optimal partition only holds
	//    on sorted data; copying keeps the caller's slice untouched.
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	// 9) Accumulate prefix sums once; every segment cost below is O(1).
	ps := NewPrefixState(sorted)

	// 10) Degenerate k=1: one group over everything, no recurrence needed.
	if k == 1 {
		return &Result{
			Groups:    []Group{newGroup(sorted)},
			TotalCost: ps.SegmentCost(1, n),
		}, nil
	}

	// 11) Run the DP engine with the configured evaluation strategy.
	var total float64
	var split [][]int
	switch cfg.Strategy {
	case FullScan:
		total, split = solveFull(ps, n, k)
	default:
		total, split = solveLinear(ps, n, k)
	}

	// 12) Reconstruct the k group bounds and materialize groups with
	//     centroids, ordered by ascending position in the sorted input.
	bounds := backtrack(split, n, k)
	groups := make([]Group, 0, k)
	var b [2]int
	for _, b = range bounds {
		groups = append(groups, newGroup(sorted[b[0]-1:b[1]]))
	}

	return &Result{Groups: groups, TotalCost: total}, nil
}

// newGroup materializes one contiguous cluster with its centroid.
// seg aliases the sorted private copy, so no further copying is needed.
func newGroup(seg []float64) Group {
	return Group{Values: seg, Centroid: stat.Mean(seg, nil)}
}
