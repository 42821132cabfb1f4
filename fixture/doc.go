// Package fixture produces reproducible Turnpike and Beltway instances for
// tests, benchmarks and the digest command.
//
// It is a collaborator of package digest, not part of it: the core never
// draws random numbers. Everything stochastic lives here and is seeded
// explicitly.
//
// Components:
//
//   - Configuration: Option (functional), WithSeed / WithRand, WithSampler.
//   - Samplers (Sampler implementations):
//     – SpreadSampler:  gaps drawn from [1, maxGap] where maxGap itself is
//     drawn from [n, n^e] with a random exponent e; the default.
//     – UniformSampler: gaps drawn from [1, maxGap] with a fixed maxGap.
//   - GeneratePoints: n+1 ascending values, the first always 0.
//   - TurnpikeInstance / BeltwayInstance: n points plus a boundary, and the
//     digest built by package digest.
//   - YAML codec: Encode / Decode, EncodeCandidate / DecodeCandidate and the
//     file helpers SaveInstance / LoadInstance / LoadCandidate.
//
// Guarantees:
//
//   - Same seed, options and call order ⇒ identical points and instances.
//   - Runtime failures are sentinel errors (ErrTooFewPoints, ErrNeedRandSource,
//     ErrDecode); option constructors panic on meaningless values.
//   - A *rand.Rand is never shared across goroutines by this package.
package fixture
