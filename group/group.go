package group

import (
	"io"
)

// Encoding sizes fixed by the BLS12-381 curve family.
const (
	// ScalarSize is the size of a big-endian scalar (secret key) encoding.
	ScalarSize = 32
	// G1Size is the size of a compressed G1 point (public key) encoding.
	G1Size = 48
	// G2Size is the size of a compressed G2 point (signature) encoding.
	G2Size = 96
)

// Scalar represents an element of the scalar field Fr of BLS12-381.
// Scalars are integers modulo the group order r.
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it.
//
// Implementations must ensure all operations produce results in the
// valid range [0, r).
type Scalar interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Scalar) Scalar
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Scalar) Scalar
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// SetZero overwrites the receiver in place with the additive identity
	// and returns it.
	SetZero() Scalar
	// Bytes returns the canonical big-endian encoding of the scalar.
	Bytes() [ScalarSize]byte
	// Equal reports whether the receiver equals b.
	Equal(b Scalar) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
}

// Point represents an element of G1 or G2. A G1 point must never be
// combined with a G2 point; implementations panic if they are.
//
// Like [Scalar], all arithmetic methods use a mutable receiver pattern.
//
// The identity element (point at infinity) is the additive identity:
// P + Identity = P for all points P.
type Point interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Point) Point
	// ScalarMult sets the receiver to s*p and returns it.
	ScalarMult(s Scalar, p Point) Point
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Bytes returns the compressed encoding of the point:
	// G1Size bytes for G1, G2Size bytes for G2.
	Bytes() []byte
	// Equal reports whether the receiver equals b.
	Equal(b Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
}

// Pairing is the capability set blsconv needs from a BLS12-381
// arithmetic library: field and group factories, hash-to-field, and
// validated decoding of fixed-size encodings.
//
// A Pairing implementation encapsulates all library-specific details,
// allowing the backend to be swapped without touching conversion or
// hygiene logic.
//
// Example usage:
//
//	g := &bls12381.BLS12381{}
//	s, err := g.HashToScalar([]byte("index"), dst)
//	pk := g.NewG1().ScalarMult(s, g.G1Generator())
type Pairing interface {
	// Name returns a short identifier for the backend, used in logs and metrics.
	Name() string
	// NewScalar returns a new zero scalar (the additive identity).
	NewScalar() Scalar
	// NewG1 returns a new G1 identity point.
	NewG1() Point
	// NewG2 returns a new G2 identity point.
	NewG2() Point
	// G1Generator returns the standard G1 base point.
	G1Generator() Point
	// G2Generator returns the standard G2 base point.
	G2Generator() Point
	// RandomScalar returns a uniformly random scalar read from r.
	RandomScalar(r io.Reader) (Scalar, error)
	// HashToScalar maps msg to a scalar with the RFC 9380 hash_to_field
	// procedure (expand_message_xmd, SHA-256, L = 48) under dst.
	// An error means the hashing primitive itself failed.
	HashToScalar(msg, dst []byte) (Scalar, error)
	// ScalarFromBytes decodes a big-endian scalar. It reports false if the
	// value is not strictly less than the group order.
	ScalarFromBytes(b *[ScalarSize]byte) (Scalar, bool)
	// G1FromCompressed decompresses a G1 point. It reports false unless the
	// bytes encode a point on the curve and in the prime-order subgroup.
	G1FromCompressed(b *[G1Size]byte) (Point, bool)
	// G2FromCompressed decompresses a G2 point. It reports false unless the
	// bytes encode a point on the curve and in the prime-order subgroup.
	G2FromCompressed(b *[G2Size]byte) (Point, bool)
	// Order returns the group order r as a big-endian byte slice.
	Order() []byte
}
