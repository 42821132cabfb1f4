// SPDX-License-Identifier: MIT
// Package: digest
//
// multiset.go — canonical form and comparison of distance multisets.

package digest

import (
	"math"
	"slices"
)

// Canonical returns a sorted copy of values. The input is not modified.
func Canonical[T Scalar](values []T) Multiset[T] {
	out := slices.Clone(values)
	slices.Sort(out)
	return Multiset[T](out)
}

// Len returns the number of elements, duplicates included.
func (m Multiset[T]) Len() int { return len(m) }

// Count returns the multiplicity of v. m must be canonical.
func (m Multiset[T]) Count(v T) int {
	lo, found := slices.BinarySearch(m, v)
	if !found {
		return 0
	}
	hi := lo
	for hi < len(m) && m[hi] == v {
		hi++
	}
	return hi - lo
}

// Boundary returns the largest element, which for a builder output is the
// segment length or circumference. ok is false for an empty multiset.
func (m Multiset[T]) Boundary() (v T, ok bool) {
	if len(m) == 0 {
		return v, false
	}
	return m[len(m)-1], true
}

// Equal reports whether two canonical multisets have the same length and are
// element-wise equal. Float domains accept |a[i]-b[i]| <= eps; integer
// domains ignore eps and compare exactly.
//
// Complexity: O(n).
func Equal[T Scalar](a, b Multiset[T], eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	exact := eps == 0 || isIntegral[T]()
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if exact || !within(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

// Difference returns the elements of a that have no partner in b, with
// multiplicity (a \ b). Both inputs must be canonical.
// Useful to explain a failed verification: Difference(instance, rebuilt) are
// the missing distances, Difference(rebuilt, instance) the unexpected ones.
//
// Complexity: O(len(a)+len(b)).
func Difference[T Scalar](a, b Multiset[T], eps float64) Multiset[T] {
	exact := eps == 0 || isIntegral[T]()
	var out Multiset[T]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j] || (!exact && within(a[i], b[j], eps)):
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			j++
		}
	}
	return append(out, a[i:]...)
}

func within[T Scalar](x, y T, eps float64) bool {
	return math.Abs(float64(x)-float64(y)) <= eps
}
