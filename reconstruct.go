package ckmeans

// backtrack walks the split table from (n, k) down to cluster count 1 and
// returns the k contiguous group bounds as 1-indexed inclusive [lo, hi]
// pairs, ordered ascending.
//
// For each cluster count k′ the stored split index j = split[i][k′] is the
// right edge of the preceding k′−1 groups, so the k′-th group covers
// (j+1 .. i); for k′ = 1 there is no predecessor and j is implicitly 0.
// The walk emits groups last-first, so the slice is reversed once at the
// end rather than built recursively.
//
// Guarantee (falls out of the DP structure): the emitted bounds are
// pairwise disjoint, contiguous, and cover exactly [1, n].
//
// Complexity: O(k).
func backtrack(split [][]int, n, k int) [][2]int {
	bounds := make([][2]int, 0, k)

	i := n
	var j int
	for kp := k; kp >= 1; kp-- {
		if kp > 1 {
			j = split[i][kp]
		} else {
			j = 0 // no predecessor below one group
		}
		bounds = append(bounds, [2]int{j + 1, i})
		i = j
	}

	// Reverse in place: groups were emitted last-first.
	for l, r := 0, len(bounds)-1; l < r; l, r = l+1, r-1 {
		bounds[l], bounds[r] = bounds[r], bounds[l]
	}

	return bounds
}
