// Package group defines the narrow interface between blsconv and the
// BLS12-381 arithmetic library that backs it.
//
// The package provides three interfaces:
//
//   - [Scalar]: Elements of the scalar field Fr (integers modulo the group order r)
//   - [Point]: Elements of G1 or G2 (points on the short or long curve)
//   - [Pairing]: Factory, decoding and hash-to-field capabilities of a backend
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern. Operations like Add, Mul,
// SetZero and ScalarMult set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute a + b*c
//	result := g.NewScalar().Mul(b, c)
//	result = g.NewScalar().Add(a, result)
//
// Decoding methods on [Pairing] report success with a boolean rather than an
// error. A backend never explains why bytes were rejected; the convert
// package turns a false result into a single error value.
//
// # Fixed Sizes
//
// Encodings have fixed sizes, expressed as array types:
//
//   - [ScalarSize]: 32-byte big-endian scalar (secret key)
//   - [G1Size]: 48-byte compressed G1 point (public key)
//   - [G2Size]: 96-byte compressed G2 point (signature)
//
// Compressed points follow the ZCash flag convention: the top three bits of
// the first byte are the compression, infinity and sign flags.
//
// # Implementing a Backend
//
// To add a backend for a new arithmetic library:
//
//  1. Create a Scalar type that wraps the library's Fr element and implements [Scalar]
//  2. Create G1 and G2 types that wrap the library's affine points and implement [Point]
//  3. Create a type that implements [Pairing] as a factory
//  4. Run [grouptest.Run] against it
//
// See the bls12381 package (gnark-crypto) and the blstgroup package
// (supranational/blst) for complete implementations.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalars are always canonically reduced modulo r
//   - ScalarFromBytes rejects every encoding of a value >= r
//   - G1FromCompressed and G2FromCompressed reject points that are off the
//     curve, outside the prime-order subgroup, or not canonically encoded
//   - SetZero writes through to the memory that held the previous value
package group
