// SPDX-License-Identifier: MIT
// Package: digest
//
// types.go — scalar domain, distance multiset, candidate and problem kind.

package digest

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Scalar is the coordinate domain accepted by the builders.
// Integer domains compare exactly; float domains follow Options.Epsilon.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Multiset is a distance multiset in canonical form: ascending order,
// duplicates preserved. Insertion order carries no meaning.
type Multiset[T Scalar] []T

// Candidate is a proposed solution: a point arrangement plus its boundary
// length (segment length for Turnpike, circumference for Beltway).
// Points may be in any order; the verifier sorts a copy.
type Candidate[T Scalar] struct {
	Points   []T
	Boundary T
}

// Kind selects the problem family.
type Kind uint8

const (
	// Turnpike: points on a segment, one distance per unordered pair.
	Turnpike Kind = iota + 1

	// Beltway: points on a circle, clockwise arc and complement per unordered pair.
	Beltway
)

const (
	kindTurnpike = "turnpike"
	kindBeltway  = "beltway"
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Turnpike:
		return kindTurnpike
	case Beltway:
		return kindBeltway
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind maps "turnpike" / "beltway" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case kindTurnpike:
		return Turnpike, nil
	case kindBeltway:
		return Beltway, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
	}
}

// Expected returns the exact multiset size for n points of this kind, or -1
// for an unknown kind.
//
//	Turnpike: n(n−1)/2 + 2
//	Beltway:  n(n−1)   + 2
func (k Kind) Expected(n int) int {
	switch k {
	case Turnpike:
		return PairCount(n) + sentinelCount
	case Beltway:
		return 2*PairCount(n) + sentinelCount
	default:
		return -1
	}
}
