// Package digest builds and verifies instances of the Turnpike and Beltway
// distance-geometry problems.
//
// 🚀 What is a digest?
//
//	Place n points on a line (Turnpike, a.k.a. Partial Digest) or on a circle
//	(Beltway) and write down every pairwise distance. The resulting multiset is
//	the "digest" of the arrangement. Reconstructing the points from the digest
//	is the hard direction; this package implements the forward direction and
//	the check:
//	  • points → sorted distance multiset (TurnpikeDistances, BeltwayDistances)
//	  • instance + candidate points → bool (VerifyTurnpike, VerifyBeltway, Verify)
//
// ✨ Key features:
//   - generic coordinate domain: any integer or float type (Scalar)
//   - exact size laws: n(n−1)/2+2 (Turnpike), n(n−1)+2 (Beltway)
//   - both sentinels 0 and the boundary length are always present
//   - start-invariant Beltway traversal (BeltwayDistancesFrom)
//   - explicit epsilon policy for float domains (WithEpsilon, WithExact)
//   - optional parallel pair enumeration (WithWorkers)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/distgeo/digest"
//
//	inst, err := digest.TurnpikeDistances([]int{0, 1, 9, 13}, 15)
//	// inst == [0 1 4 8 9 12 13 15]
//
//	ok, err := digest.VerifyTurnpike(inst, digest.Candidate[int]{
//	  Points:   []int{13, 0, 9, 1}, // any order; the verifier sorts a copy
//	  Boundary: 15,
//	})
//
// Errors:
//
//	Builders validate their preconditions and return sentinel errors
//	(ErrNoPoints, ErrUnsorted, ErrNaNInf, ErrBadBoundary, ...). A failed
//	verification is not an error: it is (false, nil).
//
// Performance:
//
//   - Time:   O(n² log n) (pair enumeration plus canonical sort)
//   - Memory: O(n²)
package digest
