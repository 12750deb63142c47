package ckmeans

import "math"

// The DP engine.
//
// State: row[k′][i] = minimum total WCSS of partitioning the first i sorted
// points into k′ contiguous groups.
//
// Base row (k′=1):
//
//	row[1][i] = cost(1, i)                       for i = 1..n
//
// Recurrence (k′ ≥ 2), for increasing i = k′..n:
//
//	row[k′][i]    = min over j in [k′−1, i−1] of ( row[k′−1][j] + cost(j+1, i) )
//	split[i][k′]  = argmin j
//
// Only two cost rows are live at any time: the recurrence for k′ reads
// nothing older than k′−1, so prev/curr are swapped after each row. The
// split table is NOT rolled — backtracking needs every cluster count's
// decision, see reconstruct.go.
//
// States with i < k′ are unreachable (cannot place k′ non-empty groups on
// fewer than k′ points) and keep the +Inf sentinel.
//
// Both evaluators below assume validated input (1 ≤ k ≤ n, finite sorted
// values); validation belongs to Fit.

// solveLinear evaluates the recurrence with one monotone split pointer per
// row. For fixed k′ the optimal j never moves left as i grows, so the
// pointer starts at k′−1 and only advances — each advance is tested against
// the strict improvement condition, which also fixes the tie-break: on equal
// candidate costs the smaller j is kept.
//
// The pointer is never reset within a row, so the inner loop runs at most n
// times per row in total: O(n) per row, O(k·n) overall.
//
// Returns the minimum total cost for (n, k) and the full split table.
func solveLinear(ps PrefixState, n, k int) (float64, [][]int) {
	prev, curr, split := allocDP(n, k)

	// Base row k′=1: a single group over the first i points.
	for i := 1; i <= n; i++ {
		prev[i] = ps.SegmentCost(1, i)
	}

	var kp, i, j int
	for kp = 2; kp <= k; kp++ {
		// States before the minimum feasible i stay unreachable.
		for i = 0; i < kp; i++ {
			curr[i] = math.Inf(1)
		}

		// Monotone pointer for this row; never reset, never moves left.
		j = kp - 1
		for i = kp; i <= n; i++ {
			// Advance only while the next candidate is STRICTLY cheaper.
			// Equality keeps the smaller j (tie-break policy).
			for j <= i-2 && prev[j+1]+ps.SegmentCost(j+2, i) < prev[j]+ps.SegmentCost(j+1, i) {
				j++
			}
			split[i][kp] = j
			curr[i] = prev[j] + ps.SegmentCost(j+1, i)
		}

		// Roll the rows: curr becomes the predecessor of the next k′.
		prev, curr = curr, prev
	}

	// After the final swap the k-th row lives in prev.
	return prev[n], split
}

// solveFull evaluates the same recurrence by scanning the entire candidate
// range [k′−1, i−1] for every state. O(k·n²) overall.
//
// The strict "<" comparison keeps the first (smallest) argmin, matching
// solveLinear's tie-break, so both evaluators return the same cost table.
// Kept as a reference evaluator for cross-checking and benchmarking.
func solveFull(ps PrefixState, n, k int) (float64, [][]int) {
	prev, curr, split := allocDP(n, k)

	for i := 1; i <= n; i++ {
		prev[i] = ps.SegmentCost(1, i)
	}

	var kp, i, j int
	var best, cand float64
	var bestJ int
	for kp = 2; kp <= k; kp++ {
		for i = 0; i < kp; i++ {
			curr[i] = math.Inf(1)
		}

		for i = kp; i <= n; i++ {
			best, bestJ = math.Inf(1), kp-1
			for j = kp - 1; j <= i-1; j++ {
				cand = prev[j] + ps.SegmentCost(j+1, i)
				if cand < best {
					best, bestJ = cand, j
				}
			}
			split[i][kp] = bestJ
			curr[i] = best
		}

		prev, curr = curr, prev
	}

	return prev[n], split
}

// allocDP allocates the two rolling cost rows and the (n+1)×(k+1) split
// table shared by both evaluators. The empty-prefix state prev[0] = 0 comes
// from zero-initialization; unreachable states get their +Inf sentinel when
// each row is filled.
func allocDP(n, k int) (prev, curr []float64, split [][]int) {
	prev = make([]float64, n+1)
	curr = make([]float64, n+1)

	split = make([][]int, n+1)
	for i := range split {
		split[i] = make([]int, k+1)
	}

	return prev, curr, split
}
