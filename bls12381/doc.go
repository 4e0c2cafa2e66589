// Package bls12381 provides a gnark-crypto implementation of the
// [group.Pairing] interface for the BLS12-381 pairing-friendly curve.
//
// BLS12-381 has two prime-order groups of the same order r: G1, defined
// over the base field Fp, and G2, defined over the quadratic extension
// Fp2. Public keys live in G1 and signatures in G2.
//
// This package wraps the BLS12-381 implementation from gnark-crypto,
// providing types that satisfy [group.Pairing], [group.Scalar] and
// [group.Point]. It is pure Go and is the default backend.
//
// # Curve Parameters
//
// G1 is defined by the equation:
//
//	y^2 = x^3 + 4
//
// The group order is:
//
//	52435875175126190479447740508185965837690552500527637822603658699938581184513
//
// # Usage
//
//	g := &bls12381.BLS12381{}
//	c, err := convert.New(g)
//
// # Security
//
// Point decoding relies on gnark-crypto's SetBytes, which validates the
// compression flags, requires a canonical x coordinate, and checks both the
// curve equation and subgroup membership. Scalar decoding requires the
// value to be strictly below r.
package bls12381
