// SPDX-License-Identifier: MIT
// Package: fixture
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • rng      = nil                           (must be seeded explicitly)
//   • sampler  = SpreadSampler(2, 10)
//   • digestOpts = none                        (digest defaults)

package fixture

import (
	"math/rand"

	"github.com/katalvlaran/distgeo/digest"
)

// Default exponent range of SpreadSampler.
const (
	DefaultMinExponent = 2
	DefaultMaxExponent = 10
)

// fixtureConfig aggregates all knobs. Passed by value.
type fixtureConfig struct {
	// RNG for every draw; nil is rejected with ErrNeedRandSource.
	rng *rand.Rand
	// Point sampling policy.
	sampler Sampler
	// Options forwarded to the digest builders.
	digestOpts []digest.Option
}

// newConfig applies opts over the defaults; last wins, nil options are skipped.
func newConfig(opts ...Option) fixtureConfig {
	cfg := fixtureConfig{
		sampler: SpreadSampler(DefaultMinExponent, DefaultMaxExponent),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
