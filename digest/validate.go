// SPDX-License-Identifier: MIT
// Package: digest
//
// validate.go — input checks shared by the builders and verifiers.
// Deterministic, side-effect free, O(n). Sentinel errors only.

package digest

import (
	"fmt"
	"math"
)

// validatePoints rejects empty input and NaN/Inf coordinates, and, when
// o.Validate is set, a decreasing step.
func validatePoints[T Scalar](method string, points []T, o Options) error {
	if len(points) == 0 {
		return fmt.Errorf("%s: %w", method, ErrNoPoints)
	}
	for i, p := range points {
		if !isFinite(p) {
			return fmt.Errorf("%s: points[%d]=%v: %w", method, i, p, ErrNaNInf)
		}
		if o.Validate && i > 0 && p < points[i-1] {
			return fmt.Errorf("%s: points[%d]=%v < points[%d]=%v: %w",
				method, i, p, i-1, points[i-1], ErrUnsorted)
		}
	}
	return nil
}

// validateBoundary checks that boundary encloses last. strict demands
// boundary > last (circle), otherwise boundary >= last (segment).
func validateBoundary[T Scalar](method string, boundary, last T, strict bool, o Options) error {
	if !isFinite(boundary) {
		return fmt.Errorf("%s: boundary=%v: %w", method, boundary, ErrNaNInf)
	}
	if !o.Validate {
		return nil
	}
	if boundary < last || (strict && boundary == last) {
		return fmt.Errorf("%s: boundary=%v, last point=%v: %w", method, boundary, last, ErrBadBoundary)
	}
	return nil
}

// validateValues rejects NaN/Inf in an instance multiset.
func validateValues[T Scalar](method string, values []T) error {
	for i, v := range values {
		if !isFinite(v) {
			return fmt.Errorf("%s: instance[%d]=%v: %w", method, i, v, ErrNaNInf)
		}
	}
	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf. Always true for integers.
func isFinite[T Scalar](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// isIntegral reports whether T is an integer type.
func isIntegral[T Scalar]() bool {
	half := 0.5
	return T(half) == 0
}
