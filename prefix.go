package ckmeans

// PrefixState holds running sums over a sorted value sequence, enabling O(1)
// segment-cost queries. Both slices have length n+1 with index 0 fixed at 0,
// so Sum[i] covers the first i sorted values (1-indexed).
//
// A PrefixState is built once per Fit call and never mutated afterwards.
type PrefixState struct {
	Sum   []float64 // Sum[i]   = Σ_{t=1..i} sorted[t]
	SumSq []float64 // SumSq[i] = Σ_{t=1..i} sorted[t]²
}

// NewPrefixState accumulates prefix sums of values and squared values over
// sorted. It is a pure function of its input: callers own the precondition
// that sorted is ascending and finite; nothing is validated here.
//
// Complexity: O(n) time, O(n) space.
func NewPrefixState(sorted []float64) PrefixState {
	n := len(sorted)
	ps := PrefixState{
		Sum:   make([]float64, n+1),
		SumSq: make([]float64, n+1),
	}

	// Single deterministic pass: each entry extends the previous one by one
	// value and its square. Index 0 stays at the zero value of the slices.
	var v float64
	for i := 1; i <= n; i++ {
		v = sorted[i-1]
		ps.Sum[i] = ps.Sum[i-1] + v
		ps.SumSq[i] = ps.SumSq[i-1] + v*v
	}

	return ps
}

// N returns the number of accumulated values.
func (ps PrefixState) N() int { return len(ps.Sum) - 1 }

// SegmentCost returns the sum of squared deviations from the mean of the
// sorted values at positions j..i inclusive (1-indexed), i.e. the WCSS of
// clustering that sub-range into a single group:
//
//	cost(j, i) = SumSq[i] − SumSq[j−1] − (Sum[i] − Sum[j−1])² / (i−j+1)
//
// Preconditions (unchecked): 1 ≤ j ≤ i ≤ N().
//
// Numerical caveat: the two subtractions of large running sums can lose
// precision for inputs of very large magnitude. This is the canonical
// closed form and is kept without compensated summation.
//
// Complexity: O(1).
func (ps PrefixState) SegmentCost(j, i int) float64 {
	s := ps.Sum[i] - ps.Sum[j-1]

	return ps.SumSq[i] - ps.SumSq[j-1] - s*s/float64(i-j+1)
}
