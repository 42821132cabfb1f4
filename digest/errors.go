// SPDX-License-Identifier: MIT
// Package: digest
//
// errors.go — sentinel errors for the digest package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Call sites attach method context with %w, e.g.
//       fmt.Errorf("%s: points[%d]=%v: %w", methodTurnpike, i, v, ErrNaNInf)
//   • Algorithms never panic on user input. Panics are confined to option
//     constructors (WithEpsilon, WithWorkers).
//   • A failed verification is NOT an error; it is (false, nil).

package digest

import "errors"

var (
	// ErrNoPoints indicates an empty point sequence. Every builder needs n ≥ 1.
	ErrNoPoints = errors.New("digest: point sequence is empty")

	// ErrUnsorted indicates points[i] < points[i-1] while validation is enabled.
	// Ties are accepted.
	ErrUnsorted = errors.New("digest: points are not in ascending order")

	// ErrNaNInf indicates a NaN or ±Inf coordinate, boundary or instance value.
	ErrNaNInf = errors.New("digest: NaN or Inf encountered")

	// ErrBadBoundary indicates a boundary length that cannot hold the points:
	// Turnpike segment length < last point, Beltway circumference <= last point.
	ErrBadBoundary = errors.New("digest: boundary length does not enclose the points")

	// ErrStartOutOfRange indicates a Beltway traversal start outside [0,n).
	ErrStartOutOfRange = errors.New("digest: start index out of range")

	// ErrUnknownKind indicates a problem kind other than Turnpike or Beltway.
	ErrUnknownKind = errors.New("digest: unknown problem kind")

	// ErrEmptyInstance indicates an empty instance multiset passed to a verifier.
	ErrEmptyInstance = errors.New("digest: instance multiset is empty")
)
