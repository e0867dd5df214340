// Package secp256k1 implements the prime-field and elliptic-curve point
// arithmetic underlying the secp256k1 curve.
//
// The field layer represents elements modulo p = 2^256 - 2^32 - 977 as five
// base-2^52 limbs with lazy, deferred normalization: values carry a
// magnitude bound rather than being kept canonical, and reduction exploits
// the special form of the prime. Inversion and square roots run through
// fixed addition chains with no branching on exponent bits.
//
// The curve layer provides affine and Jacobian-projective points, generic
// over any field backend satisfying FieldBackend, with validity checking,
// compressed-point recovery, doubling and the two addition variants.
//
// The package is purely computational and deterministic. It does not provide
// scalar multiplication, signature schemes or constant-time guarantees, and
// degenerate inputs produce degenerate-but-defined outputs rather than
// errors; the per-method contracts spell these out. Building with the
// "verify" tag turns on magnitude-invariant assertions.
package secp256k1
