// SPDX-License-Identifier: MIT
// Package: digest
//
// turnpike.go — distance multiset of points on a segment.

package digest

import "slices"

const methodTurnpike = "TurnpikeDistances"

// TurnpikeDistances returns the sorted multiset of all pairwise distances of
// points on a segment of length segmentLength, plus the two sentinels 0 and
// segmentLength.
//
// Contract:
//   - points ascending (ties allowed); checked unless WithValidation(false).
//   - segmentLength >= points[n-1]; checked unless WithValidation(false).
//   - n ≥ 1, else ErrNoPoints.
//   - len(result) == n(n−1)/2 + 2, every element non-negative for valid input.
//
// Example:
//
//	TurnpikeDistances([]int{0, 1, 9, 13}, 15)
//	// [0 1 4 8 9 12 13 15]
//
// Complexity: O(n² log n) time, O(n²) memory.
func TurnpikeDistances[T Scalar](points []T, segmentLength T, opts ...Option) (Multiset[T], error) {
	o := gatherOptions(opts...)
	if err := validatePoints(methodTurnpike, points, o); err != nil {
		return nil, err
	}
	if err := validateBoundary(methodTurnpike, segmentLength, points[len(points)-1], false, o); err != nil {
		return nil, err
	}

	out := make([]T, PairCount(len(points))+sentinelCount)
	out[0], out[1] = 0, segmentLength
	forwardDifferences(points, out[sentinelCount:], o.Workers)

	slices.Sort(out)
	return Multiset[T](out), nil
}
