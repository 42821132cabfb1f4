// SPDX-License-Identifier: MIT
// Package: fixture
//
// points.go — ascending point samplers.
//
// Every sampler returns n+1 strictly ascending values starting at 0. The
// first value anchors the arrangement at the origin without loss of
// generality; callers that need a boundary length pop the last value.
//
// Overflow: gaps are capped at math.MaxInt64/(n+1), so the running sum of n
// gaps always fits in int64.

package fixture

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	methodGeneratePoints = "GeneratePoints"
	minGeneratePoints    = 1
)

// Sampler draws n+1 strictly ascending values, the first being 0, using rng.
// Implementations must be deterministic for a given rng state.
type Sampler func(rng *rand.Rand, n int) []int64

// GeneratePoints returns n+1 strictly ascending non-negative values; the
// first is always 0.
//
// Errors:
//   - ErrTooFewPoints if n < 1.
//   - ErrNeedRandSource if neither WithSeed nor WithRand was given.
//
// Complexity: O(n).
func GeneratePoints(n int, opts ...Option) ([]int64, error) {
	cfg := newConfig(opts...)
	return generatePoints(methodGeneratePoints, n, cfg)
}

func generatePoints(method string, n int, cfg fixtureConfig) ([]int64, error) {
	if n < minGeneratePoints {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minGeneratePoints, ErrTooFewPoints)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}
	return cfg.sampler(cfg.rng, n), nil
}

// SpreadSampler returns the default sampler. Per call it draws an exponent
// e ∈ [minExp, maxExp], then a spread maxGap ∈ [n, n^e], then n gaps from
// [1, maxGap]. Small e gives dense arrangements, large e sparse ones, so a
// batch of instances covers both.
// Panics unless 1 ≤ minExp ≤ maxExp.
func SpreadSampler(minExp, maxExp int) Sampler {
	if minExp < 1 || maxExp < minExp {
		panic(fmt.Sprintf("fixture: SpreadSampler: require 1 ≤ minExp ≤ maxExp, got %d, %d", minExp, maxExp))
	}
	return func(rng *rand.Rand, n int) []int64 {
		limit := gapLimit(n)
		exp := minExp + rng.Intn(maxExp-minExp+1)
		hi := min(saturatingPow(int64(n), exp, limit), limit)
		lo := min(int64(n), hi)
		maxGap := lo + rng.Int63n(hi-lo+1)

		return walk(rng, n, maxGap)
	}
}

// UniformSampler returns a sampler with gaps drawn from [1, maxGap].
// Panics if maxGap < 1.
func UniformSampler(maxGap int64) Sampler {
	if maxGap < 1 {
		panic(fmt.Sprintf("fixture: UniformSampler: maxGap must be ≥ 1, got %d", maxGap))
	}
	return func(rng *rand.Rand, n int) []int64 {
		return walk(rng, n, min(maxGap, gapLimit(n)))
	}
}

// walk accumulates n gaps from [1, maxGap] starting at 0.
func walk(rng *rand.Rand, n int, maxGap int64) []int64 {
	out := make([]int64, n+1)
	for i := 1; i <= n; i++ {
		out[i] = out[i-1] + 1 + rng.Int63n(maxGap)
	}
	return out
}

// gapLimit is the largest gap that keeps n gaps within int64.
func gapLimit(n int) int64 {
	return math.MaxInt64 / (int64(n) + 1)
}

// saturatingPow returns min(base^exp, limit) for base ≥ 1.
func saturatingPow(base int64, exp int, limit int64) int64 {
	acc := int64(1)
	for i := 0; i < exp; i++ {
		if acc > limit/base {
			return limit
		}
		acc *= base
	}
	return acc
}
