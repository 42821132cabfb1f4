// SPDX-License-Identifier: MIT
// Package: fixture
//
// options.go — functional options for the fixture package.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package fixture

import (
	"math/rand"

	"github.com/katalvlaran/distgeo/digest"
)

// Option customizes a fixture call by mutating fixtureConfig.
type Option func(*fixtureConfig)

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *fixtureConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
// The RNG is advanced by every call that receives it.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fixture: WithRand(nil)")
	}
	return func(c *fixtureConfig) {
		c.rng = r
	}
}

// WithSampler overrides the point sampling policy. Panics on nil.
func WithSampler(s Sampler) Option {
	if s == nil {
		panic("fixture: WithSampler(nil)")
	}
	return func(c *fixtureConfig) {
		c.sampler = s
	}
}

// WithDigestOptions forwards options (workers, validation) to the digest
// builders used by TurnpikeInstance and BeltwayInstance.
func WithDigestOptions(opts ...digest.Option) Option {
	return func(c *fixtureConfig) {
		c.digestOpts = append(c.digestOpts, opts...)
	}
}
