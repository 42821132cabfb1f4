// SPDX-License-Identifier: MIT
// Package: digest
//
// pairs.go — unordered pair enumeration.
//
// Every builder reduces to "for each i<j emit points[j]-points[i]". The pairs
// are laid out in row-major order (row i holds j=i+1..n-1), so the slot of
// pair (i,j) is rowOffset(i,n) + (j-i-1). Rows are disjoint ranges of the
// output buffer, which lets WithWorkers split rows across goroutines without
// any locking.

package digest

import "golang.org/x/sync/errgroup"

// sentinelCount is the number of fixed entries in every multiset: 0 and the
// boundary length.
const sentinelCount = 2

// rowsPerTaskDivisor controls task granularity: about Workers*divisor tasks
// are scheduled so that short tail rows do not leave workers idle.
const rowsPerTaskDivisor = 4

// PairCount returns the number of unordered pairs among n points, n(n−1)/2.
// Returns 0 for n < 2.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// rowOffset returns the slot of pair (i, i+1) in row-major order.
func rowOffset(i, n int) int {
	return i*n - i*(i+1)/2
}

// forwardDifferences writes points[j]-points[i] for every i<j into out,
// which must hold exactly PairCount(len(points)) elements.
//
// Complexity: O(n²) time, O(1) extra space.
func forwardDifferences[T Scalar](points, out []T, workers int) {
	n := len(points)
	if workers <= 1 || n < 3 {
		fillRows(points, out, 0, n)
		return
	}

	chunk := n / (workers * rowsPerTaskDivisor)
	if chunk < 1 {
		chunk = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fillRows(points, out, lo, hi)
			return nil
		})
	}
	// Tasks never fail; Wait only joins.
	_ = g.Wait()
}

// fillRows fills the slots of rows [lo,hi).
func fillRows[T Scalar](points, out []T, lo, hi int) {
	n := len(points)
	k := rowOffset(lo, n)
	for i := lo; i < hi; i++ {
		for j := i + 1; j < n; j++ {
			out[k] = points[j] - points[i]
			k++
		}
	}
}
