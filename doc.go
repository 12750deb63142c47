// Package ckmeans computes the globally optimal partition of one-dimensional
// data into k contiguous clusters, minimizing the within-cluster sum of
// squared deviations (WCSS).
//
// 🚀 What is ckmeans?
//
//	Unlike Lloyd-style k-means, which iterates from a random seed and may
//	stop in a local optimum, ckmeans solves the 1-D problem exactly with
//	dynamic programming: for a given input and k the result is always the
//	true minimum, and always the same. Typical uses:
//	  • Jenks-style natural breaks for choropleth maps & histograms
//	  • Threshold selection on sensor readings or latency samples
//	  • Binning scalar features before model training
//	  • Any 1-D grouping where reproducibility matters
//
// ✨ Key features:
//   - exact & deterministic — no seeds, no iterations, no local optima
//   - O(k·n) time via a monotone split pointer over the DP recurrence
//   - O(1) segment costs from prefix sums of values and squared values
//   - rolling two-row DP storage; only the split table is kept in full
//   - optional naive full-scan strategy (FullScan) for cross-checking
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ckmeans"
//
//	res, err := ckmeans.Fit([]float64{1, 2, 3, 10, 11, 12}, 2)
//	if err != nil {
//	  // handle ErrEmptyInput, ErrNonPositiveK, ErrKExceedsN, ErrNonFinite, ...
//	}
//	for _, g := range res.Groups {
//	  fmt.Println(g.Values, g.Centroid)
//	}
//	fmt.Println(res.TotalCost)
//
// Performance:
//
//   - Time:   O(k·n) (LinearScan) or O(k·n²) (FullScan)
//   - Memory: O(k·n) for the split table, O(n) for prefix sums and DP rows
//
// Numerical note: segment costs use the closed form
// sumSq[i]−sumSq[j−1] − (sum[i]−sum[j−1])²/(i−j+1), which subtracts two
// possibly large running sums. For inputs of very large magnitude this can
// lose precision; no compensated summation is applied.
//
// See example_test.go for runnable scenarios.
package ckmeans
