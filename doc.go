// Package distgeo builds and verifies instances of two distance-geometry
// reconstruction problems: Turnpike (points on a line) and Beltway (points on
// a circle).
//
// 🚀 What is distgeo?
//
//	A small, generic library that turns an ordered point set into the exact
//	multiset of pairwise distances a correct reconstruction must reproduce,
//	and checks proposed reconstructions against a given multiset:
//		• Turnpike digest: 0, the segment length, every pj − pi for i < j
//		• Beltway digest: 0, the circumference, every clockwise arc and its complement
//		• Verifier: rebuild the candidate's digest and compare as multisets
//		• Fixtures: seeded random instances with a YAML codec
//
// ✨ Why distgeo?
//
//   - Generic over integer and float coordinates (exact vs. epsilon comparison)
//   - Sentinel errors for every malformed input; algorithms never panic
//   - Optional parallel pair enumeration that never changes the result
//
// Layout:
//
//	digest/     — scalar domain, multisets, Turnpike & Beltway builders, verifier
//	fixture/    — random point sampler, random instances, YAML instance/candidate files
//	cmd/digest/ — CLI: generate, verify, distances
//	examples/   — runnable demonstration program
//
// Quick ASCII example:
//
//	0──1───────9───13──15
//
//	has digest {0, 1, 4, 8, 9, 12, 13, 15}.
//
//	go get github.com/katalvlaran/distgeo/digest
package distgeo
