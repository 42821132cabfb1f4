// SPDX-License-Identifier: MIT
// Package: digest
//
// verify.go — candidate verification by multiset comparison.
//
// A candidate solves an instance iff rebuilding the distance multiset from the
// candidate's points (sorted by the verifier) reproduces the instance exactly:
// same length, same values, same multiplicities. No partial credit.

package digest

import (
	"fmt"
	"slices"
)

const (
	methodVerify         = "Verify"
	methodVerifyTurnpike = "VerifyTurnpike"
	methodVerifyBeltway  = "VerifyBeltway"
)

// builderFunc is the common shape of TurnpikeDistances and BeltwayDistances.
type builderFunc[T Scalar] func(points []T, boundary T, opts ...Option) (Multiset[T], error)

// VerifyTurnpike reports whether c reproduces the Turnpike instance.
//
// The instance may be in any order; a canonical copy is compared. c.Points may
// be in any order; a sorted copy is rebuilt with TurnpikeDistances(points,
// c.Boundary). Float values are compared with Options.Epsilon.
//
// Returns (false, nil) on a mismatch, including a candidate whose boundary
// does not enclose its points. Returns (false, err) when the inputs are
// malformed: empty instance (ErrEmptyInstance), empty candidate (ErrNoPoints)
// or NaN/Inf values (ErrNaNInf). A candidate needs at least one point, so
// dropping the only point of a one-point solution is ErrNoPoints, not false.
func VerifyTurnpike[T Scalar](instance []T, c Candidate[T], opts ...Option) (bool, error) {
	return verify(methodVerifyTurnpike, TurnpikeDistances[T], instance, c, opts)
}

// VerifyBeltway reports whether c reproduces the Beltway instance.
// Semantics and errors mirror VerifyTurnpike with BeltwayDistances.
func VerifyBeltway[T Scalar](instance []T, c Candidate[T], opts ...Option) (bool, error) {
	return verify(methodVerifyBeltway, BeltwayDistances[T], instance, c, opts)
}

// Verify dispatches to VerifyTurnpike or VerifyBeltway by kind.
// Unknown kinds return ErrUnknownKind.
func Verify[T Scalar](kind Kind, instance []T, c Candidate[T], opts ...Option) (bool, error) {
	switch kind {
	case Turnpike:
		return VerifyTurnpike(instance, c, opts...)
	case Beltway:
		return VerifyBeltway(instance, c, opts...)
	default:
		return false, fmt.Errorf("%s: %v: %w", methodVerify, kind, ErrUnknownKind)
	}
}

// Rebuild returns the canonical multiset of c for the given kind, sorting a
// copy of c.Points first. The boundary enclosure check is skipped, so a
// candidate with a short boundary still yields a multiset to compare. It is the recomputation half of Verify, exposed so
// callers can report Difference on a mismatch.
func Rebuild[T Scalar](kind Kind, c Candidate[T], opts ...Option) (Multiset[T], error) {
	switch kind {
	case Turnpike:
		return rebuild(methodVerifyTurnpike, TurnpikeDistances[T], c, opts)
	case Beltway:
		return rebuild(methodVerifyBeltway, BeltwayDistances[T], c, opts)
	default:
		return nil, fmt.Errorf("Rebuild: %v: %w", kind, ErrUnknownKind)
	}
}

func verify[T Scalar](method string, build builderFunc[T], instance []T, c Candidate[T], opts []Option) (bool, error) {
	if len(instance) == 0 {
		return false, fmt.Errorf("%s: %w", method, ErrEmptyInstance)
	}
	if err := validateValues(method, instance); err != nil {
		return false, err
	}

	got, err := rebuild(method, build, c, opts)
	if err != nil {
		return false, err
	}

	// Cheap reject before sorting the instance copy.
	if len(got) != len(instance) {
		return false, nil
	}

	o := gatherOptions(opts...)
	return Equal(got, Canonical(instance), o.Epsilon), nil
}

func rebuild[T Scalar](method string, build builderFunc[T], c Candidate[T], opts []Option) (Multiset[T], error) {
	if len(c.Points) == 0 {
		return nil, fmt.Errorf("%s: candidate: %w", method, ErrNoPoints)
	}
	points := slices.Clone(c.Points)
	slices.Sort(points)

	// A boundary that does not enclose the candidate is a wrong answer, not
	// malformed input: rebuild without the enclosure check and let the
	// comparison reject it. NaN/Inf and empty points are still errors.
	got, err := build(points, c.Boundary, append(slices.Clone(opts), WithValidation(false))...)
	if err != nil {
		return nil, fmt.Errorf("%s: candidate: %w", method, err)
	}
	return got, nil
}
