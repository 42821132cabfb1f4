// SPDX-License-Identifier: MIT
// Package: fixture
//
// errors.go — sentinel errors for the fixture package.
//
// Error policy:
//   • Only sentinels are exposed; callers branch with errors.Is.
//   • Context is attached at the call site with %w.
//   • Samplers and instance builders never panic; option constructors do.

package fixture

import "errors"

// ErrTooFewPoints indicates n below the minimum for the requested fixture
// (GeneratePoints needs n ≥ 1, instances need n ≥ 2).
var ErrTooFewPoints = errors.New("fixture: too few points")

// ErrNeedRandSource indicates that no RNG was configured.
// Supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("fixture: rng is required")

// ErrDecode indicates a malformed instance or candidate document.
var ErrDecode = errors.New("fixture: malformed document")
