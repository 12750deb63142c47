package ckmeans

// Test-bridge (white-box) for the unexported DP engine.
//
// Purpose:
//   - Expose the solver and reconstruction internals to ckmeans_test ONLY,
//     so the DP rows, split tables, and tie-break behavior can be verified
//     directly without widening the production API.
//
// Provided surface:
//   - SolveLinear_TestOnly / SolveFull_TestOnly: thin pass-throughs to the
//     two recurrence evaluators; both return (total cost, split table).
//   - Backtrack_TestOnly: pass-through to the split-table walk.
//
// Keep these wrappers in sync with the private signatures; tests will catch
// drift.

// SolveLinear_TestOnly forwards to the monotone-pointer evaluator.
func SolveLinear_TestOnly(ps PrefixState, n, k int) (float64, [][]int) {
	return solveLinear(ps, n, k)
}

// SolveFull_TestOnly forwards to the naive full-scan evaluator.
func SolveFull_TestOnly(ps PrefixState, n, k int) (float64, [][]int) {
	return solveFull(ps, n, k)
}

// Backtrack_TestOnly forwards to the split-table backtracking walk.
func Backtrack_TestOnly(split [][]int, n, k int) [][2]int {
	return backtrack(split, n, k)
}
