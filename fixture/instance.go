// SPDX-License-Identifier: MIT
// Package: fixture
//
// instance.go — random Turnpike / Beltway instances.
//
// Recipe (both kinds): sample n+1 ascending values, pop the last one as the
// boundary length (segment end or circumference), build the digest of the
// remaining n points. Because the sampled values are strictly ascending, the
// boundary always exceeds the last point, which satisfies both kinds.

package fixture

import (
	"fmt"

	"github.com/katalvlaran/distgeo/digest"
)

const (
	methodTurnpikeInstance = "TurnpikeInstance"
	methodBeltwayInstance  = "BeltwayInstance"
	minInstancePoints      = 2
)

// Instance is a generated problem together with its hidden solution.
type Instance struct {
	Kind      digest.Kind
	Points    []int64 // the solution; nil for a problem read without points
	Boundary  int64   // segment length or circumference
	Distances digest.Multiset[int64]
}

// TurnpikeInstance samples n ≥ 2 points on a segment and builds their digest.
func TurnpikeInstance(n int, opts ...Option) (Instance, error) {
	return newInstance(methodTurnpikeInstance, digest.Turnpike, n, opts)
}

// BeltwayInstance samples n ≥ 2 points on a circle and builds their digest.
func BeltwayInstance(n int, opts ...Option) (Instance, error) {
	return newInstance(methodBeltwayInstance, digest.Beltway, n, opts)
}

// NewInstance dispatches on kind.
func NewInstance(kind digest.Kind, n int, opts ...Option) (Instance, error) {
	switch kind {
	case digest.Turnpike:
		return TurnpikeInstance(n, opts...)
	case digest.Beltway:
		return BeltwayInstance(n, opts...)
	default:
		return Instance{}, fmt.Errorf("NewInstance: %v: %w", kind, digest.ErrUnknownKind)
	}
}

func newInstance(method string, kind digest.Kind, n int, opts []Option) (Instance, error) {
	if n < minInstancePoints {
		return Instance{}, fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minInstancePoints, ErrTooFewPoints)
	}
	cfg := newConfig(opts...)
	sampled, err := generatePoints(method, n, cfg)
	if err != nil {
		return Instance{}, err
	}
	points, boundary := sampled[:n], sampled[n]

	var d digest.Multiset[int64]
	switch kind {
	case digest.Turnpike:
		d, err = digest.TurnpikeDistances(points, boundary, cfg.digestOpts...)
	default:
		d, err = digest.BeltwayDistances(points, boundary, cfg.digestOpts...)
	}
	if err != nil {
		return Instance{}, fmt.Errorf("%s: %w", method, err)
	}

	return Instance{Kind: kind, Points: points, Boundary: boundary, Distances: d}, nil
}

// Candidate returns the instance's own solution as a candidate.
func (in Instance) Candidate() digest.Candidate[int64] {
	return digest.Candidate[int64]{Points: in.Points, Boundary: in.Boundary}
}

// Problem returns a copy without the solution points, suitable to hand to a
// solver.
func (in Instance) Problem() Instance {
	in.Points = nil
	return in
}

// Verify checks c against the instance's distances.
func (in Instance) Verify(c digest.Candidate[int64], opts ...digest.Option) (bool, error) {
	return digest.Verify(in.Kind, in.Distances, c, opts...)
}

// Size returns the number of points encoded by the distances, inverting the
// size laws n(n−1)/2+2 and n(n−1)+2. ok is false when the length matches no n.
func (in Instance) Size() (n int, ok bool) {
	target := len(in.Distances)
	for n = 1; ; n++ {
		got := in.Kind.Expected(n)
		if got == target {
			return n, true
		}
		if got < 0 || got > target {
			return 0, false
		}
	}
}
