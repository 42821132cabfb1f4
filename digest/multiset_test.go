package digest_test

import (
	"testing"

	"github.com/katalvlaran/distgeo/digest"
	"github.com/stretchr/testify/assert"
)

// TestCanonical sorts a copy and preserves duplicates.
func TestCanonical(t *testing.T) {
	in := []int{5, 1, 5, 0, 3}
	got := digest.Canonical(in)
	assert.Equal(t, digest.Multiset[int]{0, 1, 3, 5, 5}, got)
	assert.Equal(t, []int{5, 1, 5, 0, 3}, in, "input must not be modified")
}

// TestMultiset_Count checks multiplicities, including absent values.
func TestMultiset_Count(t *testing.T) {
	m := digest.Multiset[int]{0, 2, 3, 3, 5, 5, 5, 8}
	assert.Equal(t, 1, m.Count(0))
	assert.Equal(t, 2, m.Count(3))
	assert.Equal(t, 3, m.Count(5))
	assert.Equal(t, 0, m.Count(4))
	assert.Equal(t, 0, m.Count(9))
}

// TestMultiset_Boundary returns the maximum, or ok=false when empty.
func TestMultiset_Boundary(t *testing.T) {
	b, ok := digest.Multiset[int]{0, 4, 9}.Boundary()
	assert.True(t, ok)
	assert.Equal(t, 9, b)

	_, ok = digest.Multiset[int]{}.Boundary()
	assert.False(t, ok)
}

// TestEqual covers length, multiplicity and tolerance.
func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b digest.Multiset[float64]
		eps  float64
		want bool
	}{
		{"identical", digest.Multiset[float64]{0, 1, 2}, digest.Multiset[float64]{0, 1, 2}, 0, true},
		{"length differs", digest.Multiset[float64]{0, 1}, digest.Multiset[float64]{0, 1, 1}, 0, false},
		{"multiplicity differs", digest.Multiset[float64]{0, 1, 1, 2}, digest.Multiset[float64]{0, 1, 2, 2}, 0, false},
		{"within eps", digest.Multiset[float64]{0, 1}, digest.Multiset[float64]{0, 1 + 1e-12}, 1e-9, true},
		{"outside eps", digest.Multiset[float64]{0, 1}, digest.Multiset[float64]{0, 1.1}, 1e-9, false},
		{"empty", digest.Multiset[float64]{}, nil, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, digest.Equal(tc.a, tc.b, tc.eps))
		})
	}
}

// TestEqual_IntegerIgnoresEpsilon: integer domains are always exact.
func TestEqual_IntegerIgnoresEpsilon(t *testing.T) {
	assert.False(t, digest.Equal(digest.Multiset[int]{0, 1}, digest.Multiset[int]{0, 2}, 10))
	assert.True(t, digest.Equal(digest.Multiset[int]{0, 2}, digest.Multiset[int]{0, 2}, 10))
}

// TestDifference returns a \ b with multiplicity.
func TestDifference(t *testing.T) {
	a := digest.Multiset[int]{0, 1, 1, 3, 5, 7}
	b := digest.Multiset[int]{1, 3, 4, 7}
	assert.Equal(t, digest.Multiset[int]{0, 1, 5}, digest.Difference(a, b, 0))
	assert.Equal(t, digest.Multiset[int]{4}, digest.Difference(b, a, 0))

	fa := digest.Multiset[float64]{0.1, 0.2}
	fb := digest.Multiset[float64]{0.1 + 1e-12, 0.3}
	assert.Equal(t, digest.Multiset[float64]{0.2}, digest.Difference(fa, fb, 1e-9))
}

// TestParseKind round-trips names and rejects unknown ones.
func TestParseKind(t *testing.T) {
	for _, k := range []digest.Kind{digest.Turnpike, digest.Beltway} {
		got, err := digest.ParseKind(k.String())
		assert.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := digest.ParseKind("  BELTWAY ")
	assert.NoError(t, err)
	assert.Equal(t, digest.Beltway, got)

	_, err = digest.ParseKind("golomb")
	assert.ErrorIs(t, err, digest.ErrUnknownKind)
	assert.Equal(t, "Kind(7)", digest.Kind(7).String())
	assert.Equal(t, -1, digest.Kind(7).Expected(4))
}

// TestPairCount pins n(n−1)/2 and the small-n cases.
func TestPairCount(t *testing.T) {
	assert.Equal(t, 0, digest.PairCount(-1))
	assert.Equal(t, 0, digest.PairCount(0))
	assert.Equal(t, 0, digest.PairCount(1))
	assert.Equal(t, 1, digest.PairCount(2))
	assert.Equal(t, 6, digest.PairCount(4))
	assert.Equal(t, 1225, digest.PairCount(50))
}
