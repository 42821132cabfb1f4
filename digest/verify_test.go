package digest_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/distgeo/digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verifyCase bundles one problem kind with its builder for table-driven tests.
type verifyCase struct {
	kind  digest.Kind
	build func([]int64, int64, ...digest.Option) (digest.Multiset[int64], error)
}

var verifyCases = []verifyCase{
	{digest.Turnpike, digest.TurnpikeDistances[int64]},
	{digest.Beltway, digest.BeltwayDistances[int64]},
}

// TestVerify_RoundTrip: an instance is always solved by the points it was built from.
func TestVerify_RoundTrip(t *testing.T) {
	for _, vc := range verifyCases {
		t.Run(vc.kind.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seedDet))
			for r := 0; r < rounds; r++ {
				points, boundary := randomArrangement(rng, 1+rng.Intn(maxPoints))
				inst, err := vc.build(points, boundary)
				require.NoError(t, err)

				ok, err := digest.Verify(vc.kind, inst, digest.Candidate[int64]{Points: points, Boundary: boundary})
				require.NoError(t, err)
				assert.True(t, ok)
			}
		})
	}
}

// TestVerify_ShuffledCandidate: candidate order does not matter, and the
// caller's slice is left untouched.
func TestVerify_ShuffledCandidate(t *testing.T) {
	for _, vc := range verifyCases {
		t.Run(vc.kind.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seedDet))
			points, boundary := randomArrangement(rng, 25)
			inst, err := vc.build(points, boundary)
			require.NoError(t, err)

			shuffled := slices.Clone(points)
			rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
			before := slices.Clone(shuffled)

			ok, err := digest.Verify(vc.kind, inst, digest.Candidate[int64]{Points: shuffled, Boundary: boundary})
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, before, shuffled, "verifier must sort a copy")
		})
	}
}

// TestVerify_ShuffledInstance: the instance is canonicalised before comparison.
func TestVerify_ShuffledInstance(t *testing.T) {
	inst := []int{13, 3, 0, 8, 5, 10, 2, 11, 5, 3, 8, 10, 5, 8}
	ok, err := digest.VerifyBeltway(inst, digest.Candidate[int]{Points: []int{0, 3, 8, 11}, Boundary: 13})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 13, inst[0], "verifier must not reorder the caller's instance")
}

// TestVerify_RemovedPoint: dropping any point must fail verification.
func TestVerify_RemovedPoint(t *testing.T) {
	for _, vc := range verifyCases {
		t.Run(vc.kind.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seedDet))
			for r := 0; r < rounds; r++ {
				points, boundary := randomArrangement(rng, 2+rng.Intn(maxPoints-1))
				inst, err := vc.build(points, boundary)
				require.NoError(t, err)

				cand := digest.Candidate[int64]{Points: without(points, rng.Intn(len(points))), Boundary: boundary}
				ok, err := digest.Verify(vc.kind, inst, cand)
				require.NoError(t, err)
				assert.False(t, ok)
			}
		})
	}
}

// TestVerify_ExtraPoint: appending a spurious coordinate must fail verification,
// including when it duplicates an existing coordinate.
func TestVerify_ExtraPoint(t *testing.T) {
	for _, vc := range verifyCases {
		t.Run(vc.kind.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seedDet))
			for r := 0; r < rounds; r++ {
				n := 1 + rng.Intn(maxPoints)
				points, boundary := randomArrangement(rng, n)
				inst, err := vc.build(points, boundary)
				require.NoError(t, err)

				extra := append(slices.Clone(points), rng.Int63n(int64(n)))
				ok, err := digest.Verify(vc.kind, inst, digest.Candidate[int64]{Points: extra, Boundary: boundary})
				require.NoError(t, err)
				assert.False(t, ok)

				beyond := append(slices.Clone(points), boundary+1+rng.Int63n(100))
				ok, err = digest.Verify(vc.kind, inst, digest.Candidate[int64]{Points: beyond, Boundary: boundary})
				require.NoError(t, err, "a point past the boundary is a mismatch, not an error")
				assert.False(t, ok)
			}
		})
	}
}

// TestVerify_WrongBoundary: the boundary sentinel is part of the multiset.
func TestVerify_WrongBoundary(t *testing.T) {
	inst, err := digest.TurnpikeDistances([]int{0, 1, 9, 13}, 15)
	require.NoError(t, err)

	ok, err := digest.VerifyTurnpike(inst, digest.Candidate[int]{Points: []int{0, 1, 9, 13}, Boundary: 14})
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestVerify_BoundaryNotEnclosing: a candidate whose boundary cannot hold its
// points is simply wrong; the verifier answers false without an error.
func TestVerify_BoundaryNotEnclosing(t *testing.T) {
	turnpike, err := digest.TurnpikeDistances([]int{0, 1, 9, 13}, 15)
	require.NoError(t, err)
	beltway, err := digest.BeltwayDistances([]int{0, 3, 8, 11}, 13)
	require.NoError(t, err)

	tests := []struct {
		name string
		kind digest.Kind
		inst digest.Multiset[int]
		cand digest.Candidate[int]
	}{
		{"turnpike point past segment", digest.Turnpike, turnpike, digest.Candidate[int]{Points: []int{0, 1, 9, 13, 16}, Boundary: 15}},
		{"turnpike short segment", digest.Turnpike, turnpike, digest.Candidate[int]{Points: []int{0, 1, 9, 13}, Boundary: 12}},
		{"beltway circumference equals last", digest.Beltway, beltway, digest.Candidate[int]{Points: []int{0, 3, 8, 11}, Boundary: 11}},
		{"beltway circumference below last", digest.Beltway, beltway, digest.Candidate[int]{Points: []int{0, 3, 8, 11}, Boundary: 9}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := digest.Verify(tc.kind, tc.inst, tc.cand)
			require.NoError(t, err)
			assert.False(t, ok)

			got, err := digest.Rebuild(tc.kind, tc.cand)
			require.NoError(t, err, "a short boundary still rebuilds for diagnostics")
			assert.Equal(t, tc.kind.Expected(len(tc.cand.Points)), got.Len())
		})
	}
}

// TestVerify_MirrorImage: the reflected arrangement is an equally valid
// Turnpike solution (homometric under reflection).
func TestVerify_MirrorImage(t *testing.T) {
	inst, err := digest.TurnpikeDistances([]int{0, 1, 9, 13}, 15)
	require.NoError(t, err)

	ok, err := digest.VerifyTurnpike(inst, digest.Candidate[int]{Points: []int{0, 4, 12, 13}, Boundary: 15})
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestVerify_FloatEpsilon pins the float tolerance policy.
func TestVerify_FloatEpsilon(t *testing.T) {
	inst, err := digest.TurnpikeDistances([]float64{0, 0.1, 0.3}, 1)
	require.NoError(t, err)

	// 0.1+0.2 != 0.3 in binary; the default epsilon absorbs it.
	cand := digest.Candidate[float64]{Points: []float64{0, 0.1, 0.1 + 0.2}, Boundary: 1}
	ok, err := digest.VerifyTurnpike(inst, cand)
	require.NoError(t, err)
	assert.True(t, ok, "default epsilon")

	ok, err = digest.VerifyTurnpike(inst, cand, digest.WithExact())
	require.NoError(t, err)
	assert.False(t, ok, "exact comparison sees the rounding error")

	far := digest.Candidate[float64]{Points: []float64{0, 0.1, 0.31}, Boundary: 1}
	ok, err = digest.VerifyTurnpike(inst, far, digest.WithEpsilon(1e-3))
	require.NoError(t, err)
	assert.False(t, ok, "0.01 is outside 1e-3")

	ok, err = digest.VerifyTurnpike(inst, far, digest.WithEpsilon(0.05))
	require.NoError(t, err)
	assert.True(t, ok, "0.01 is inside 0.05")
}

// TestVerify_Errors: malformed input fails loudly instead of returning false.
func TestVerify_Errors(t *testing.T) {
	inst := []float64{0, 1, 4, 8, 9, 12, 13, 15}
	good := digest.Candidate[float64]{Points: []float64{0, 1, 9, 13}, Boundary: 15}

	_, err := digest.VerifyTurnpike(nil, good)
	assert.ErrorIs(t, err, digest.ErrEmptyInstance)

	_, err = digest.VerifyTurnpike(inst, digest.Candidate[float64]{Boundary: 15})
	assert.ErrorIs(t, err, digest.ErrNoPoints)

	_, err = digest.VerifyTurnpike([]float64{0, nan(), 15}, good)
	assert.ErrorIs(t, err, digest.ErrNaNInf)

	_, err = digest.VerifyBeltway(inst, digest.Candidate[float64]{Points: []float64{0, 1, 9, 13}, Boundary: inf()})
	assert.ErrorIs(t, err, digest.ErrNaNInf)

	_, err = digest.Verify(digest.Kind(0), inst, good)
	assert.ErrorIs(t, err, digest.ErrUnknownKind)
}

// TestRebuild_Difference shows how a mismatch is explained.
func TestRebuild_Difference(t *testing.T) {
	inst, err := digest.TurnpikeDistances([]int{0, 1, 9, 13}, 15)
	require.NoError(t, err)

	got, err := digest.Rebuild(digest.Turnpike, digest.Candidate[int]{Points: []int{13, 0, 9}, Boundary: 15})
	require.NoError(t, err)
	assert.Equal(t, digest.Multiset[int]{0, 4, 9, 13, 15}, got)

	missing := digest.Difference(inst, got, digest.DefaultEpsilon)
	assert.Equal(t, digest.Multiset[int]{1, 8, 12}, missing)
	assert.Empty(t, digest.Difference(got, inst, digest.DefaultEpsilon))

	_, err = digest.Rebuild(digest.Kind(9), digest.Candidate[int]{Points: []int{0}, Boundary: 1})
	assert.ErrorIs(t, err, digest.ErrUnknownKind)
}
