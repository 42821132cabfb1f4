// SPDX-License-Identifier: MIT
// Package: digest
//
// options.go — functional options and numeric policy.
//
// Contract:
//   • Options are functional (type Option func(*Options)).
//   • Option constructors validate and PANIC on meaningless inputs.
//     Builders and verifiers never panic.
//   • Later options override earlier ones.

package digest

import "math"

// Defaults (single source of truth).
const (
	// DefaultEpsilon is the absolute tolerance used by the verifiers when
	// comparing float multisets element by element. Integer domains always
	// compare exactly regardless of this value.
	DefaultEpsilon = 1e-9

	// DefaultWorkers runs pair enumeration on the calling goroutine.
	DefaultWorkers = 1

	// DefaultValidate enables the ascending-order and boundary checks.
	DefaultValidate = true
)

const (
	panicEpsilonInvalid = "digest: WithEpsilon: eps must be finite, non-negative"
	panicWorkersInvalid = "digest: WithWorkers: k must be ≥ 1"
)

// Options holds the resolved knobs for builders and verifiers.
type Options struct {
	// Epsilon is the absolute per-element tolerance for float comparisons.
	Epsilon float64

	// Workers bounds the goroutines used for pair enumeration.
	Workers int

	// Validate toggles the ascending-order and boundary checks. NaN/Inf and
	// empty input are rejected either way.
	Validate bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Epsilon:  DefaultEpsilon,
		Workers:  DefaultWorkers,
		Validate: DefaultValidate,
	}
}

// WithEpsilon sets the float comparison tolerance. Panics on eps < 0, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithExact disables the float tolerance (bare equality).
func WithExact() Option {
	return func(o *Options) {
		o.Epsilon = 0
	}
}

// WithWorkers splits pair enumeration across up to k goroutines.
// Panics on k < 1. The output multiset does not depend on k.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) {
		o.Workers = k
	}
}

// WithValidation toggles the ascending-order and boundary checks. With
// validation off, unsorted input is not rejected and negative distances may
// surface in the output.
func WithValidation(on bool) Option {
	return func(o *Options) {
		o.Validate = on
	}
}

// gatherOptions applies opts over DefaultOptions in order.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
