// Package digest_test provides small helpers shared across *_test.go files.
package digest_test

import (
	"math/rand"
	"slices"
)

const (
	// seedDet locks every randomized test to the same stream.
	seedDet = int64(20131109)

	// rounds is the number of random arrangements per property test.
	rounds = 20

	// maxPoints bounds random arrangement sizes.
	maxPoints = 50
)

// randomArrangement returns n ascending int64 points starting at 0 and a
// boundary strictly greater than the last point.
func randomArrangement(rng *rand.Rand, n int) ([]int64, int64) {
	points := make([]int64, n)
	var cur int64
	for i := 1; i < n; i++ {
		cur += 1 + rng.Int63n(1000)
		points[i] = cur
	}
	return points, cur + 1 + rng.Int63n(1000)
}

// without returns a copy of points with index i removed.
func without[T any](points []T, i int) []T {
	out := slices.Clone(points)
	return slices.Delete(out, i, i+1)
}
