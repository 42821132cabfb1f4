// SPDX-License-Identifier: MIT
// Package: digest
//
// beltway.go — distance multiset of points on a circle.
//
// Each unordered pair {i,j} of points on a circle of circumference C has two
// arc distances: the clockwise arc cw and its complement C−cw. Which point is
// called "first" does not change the set of pairs, so the multiset does not
// depend on where a traversal of the circle starts. BeltwayDistances uses the
// plain i<j double loop; BeltwayDistancesFrom performs the walk from an
// explicit start and must agree with it for every start.

package digest

import (
	"fmt"
	"slices"
)

const (
	methodBeltway     = "BeltwayDistances"
	methodBeltwayFrom = "BeltwayDistancesFrom"
)

// BeltwayDistances returns the sorted multiset of clockwise arcs and their
// complements for every unordered pair of points on a circle, plus the
// sentinels 0 and circumference.
//
// Contract:
//   - points ascending (ties allowed); checked unless WithValidation(false).
//   - circumference > points[n-1]; checked unless WithValidation(false).
//   - n ≥ 1, else ErrNoPoints.
//   - len(result) == n(n−1) + 2.
//
// Example:
//
//	BeltwayDistances([]int{0, 3, 8, 11}, 13)
//	// [0 2 3 3 5 5 5 8 8 8 10 10 11 13]
//
// Complexity: O(n² log n) time, O(n²) memory.
func BeltwayDistances[T Scalar](points []T, circumference T, opts ...Option) (Multiset[T], error) {
	o := gatherOptions(opts...)
	if err := validateBeltway(methodBeltway, points, circumference, o); err != nil {
		return nil, err
	}

	m := PairCount(len(points))
	out := make([]T, 2*m+sentinelCount)
	out[0], out[1] = 0, circumference

	cw := out[sentinelCount : sentinelCount+m]
	forwardDifferences(points, cw, o.Workers)
	ccw := out[sentinelCount+m:]
	for k, d := range cw {
		ccw[k] = circumference - d
	}

	slices.Sort(out)
	return Multiset[T](out), nil
}

// BeltwayDistancesFrom computes the same multiset as BeltwayDistances by
// walking the circle from points[start]:
//  1. pairs with both ends at or after start,
//  2. pairs straddling start (j < start ≤ i),
//  3. pairs with both ends before start.
//
// Each unordered pair is visited exactly once, so the result is identical for
// every start in [0,n). Pair enumeration runs on the calling goroutine;
// WithWorkers is ignored.
//
// Errors: as BeltwayDistances, plus ErrStartOutOfRange.
func BeltwayDistancesFrom[T Scalar](points []T, circumference T, start int, opts ...Option) (Multiset[T], error) {
	o := gatherOptions(opts...)
	if err := validateBeltway(methodBeltwayFrom, points, circumference, o); err != nil {
		return nil, err
	}
	n := len(points)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%s: start=%d not in [0,%d): %w", methodBeltwayFrom, start, n, ErrStartOutOfRange)
	}

	out := make([]T, 0, 2*PairCount(n)+sentinelCount)
	out = append(out, 0, circumference)
	emit := func(cw T) {
		out = append(out, cw, circumference-cw)
	}

	var i, j int
	for i = start; i < n; i++ {
		for j = i + 1; j < n; j++ {
			emit(points[j] - points[i])
		}
		for j = 0; j < start; j++ {
			emit(points[i] - points[j])
		}
	}
	for i = 0; i < start; i++ {
		for j = i + 1; j < start; j++ {
			emit(points[j] - points[i])
		}
	}

	slices.Sort(out)
	return Multiset[T](out), nil
}

func validateBeltway[T Scalar](method string, points []T, circumference T, o Options) error {
	if err := validatePoints(method, points, o); err != nil {
		return err
	}
	return validateBoundary(method, circumference, points[len(points)-1], true, o)
}
