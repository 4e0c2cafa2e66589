package bls12381

import (
	"io"
	"math/big"

	bls "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/f3rmion/blsconv/group"
	"github.com/f3rmion/blsconv/internal/reduce"
)

// g1Gen and g2Gen are the standard BLS12-381 base points.
var (
	g1Gen bls.G1Affine
	g2Gen bls.G2Affine
)

func init() {
	_, _, g1Gen, g2Gen = bls.Generators()
}

// Scalar represents an element of the BLS12-381 scalar field.
// It implements [group.Scalar] by wrapping gnark-crypto's fr.Element,
// which is kept in Montgomery form and always reduced modulo r.
type Scalar struct {
	inner fr.Element
}

// Add sets s to a + b (mod r) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Add(&aScalar.inner, &bScalar.inner)
	return s
}

// Mul sets s to a * b (mod r) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Mul(&aScalar.inner, &bScalar.inner)
	return s
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Set(&aScalar.inner)
	return s
}

// SetZero overwrites the limbs of s with zeros and returns s.
func (s *Scalar) SetZero() group.Scalar {
	s.inner.SetZero()
	return s
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() [group.ScalarSize]byte {
	return s.inner.Bytes()
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	bScalar := b.(*Scalar)
	return s.inner.Equal(&bScalar.inner)
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

func (s *Scalar) bigInt() *big.Int {
	return s.inner.BigInt(new(big.Int))
}

// G1 represents a point of the BLS12-381 G1 subgroup.
// It implements [group.Point] by wrapping gnark-crypto's G1Affine.
// The identity element is encoded as (0, 0).
type G1 struct {
	inner bls.G1Affine
}

// Add sets p to a + b and returns p.
func (p *G1) Add(a, b group.Point) group.Point {
	aPoint := a.(*G1)
	bPoint := b.(*G1)
	p.inner.Add(&aPoint.inner, &bPoint.inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G1) ScalarMult(s group.Scalar, q group.Point) group.Point {
	scalar := s.(*Scalar)
	qPoint := q.(*G1)
	p.inner.ScalarMultiplication(&qPoint.inner, scalar.bigInt())
	return p
}

// Set copies the value of a into p and returns p.
func (p *G1) Set(a group.Point) group.Point {
	aPoint := a.(*G1)
	p.inner.Set(&aPoint.inner)
	return p
}

// Bytes returns the 48-byte compressed point encoding.
func (p *G1) Bytes() []byte {
	bytes := p.inner.Bytes()
	return bytes[:]
}

// Equal reports whether p and b represent the same curve point.
func (p *G1) Equal(b group.Point) bool {
	bPoint := b.(*G1)
	return p.inner.Equal(&bPoint.inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G1) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// G2 represents a point of the BLS12-381 G2 subgroup.
// It implements [group.Point] by wrapping gnark-crypto's G2Affine.
type G2 struct {
	inner bls.G2Affine
}

// Add sets p to a + b and returns p.
func (p *G2) Add(a, b group.Point) group.Point {
	aPoint := a.(*G2)
	bPoint := b.(*G2)
	p.inner.Add(&aPoint.inner, &bPoint.inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G2) ScalarMult(s group.Scalar, q group.Point) group.Point {
	scalar := s.(*Scalar)
	qPoint := q.(*G2)
	p.inner.ScalarMultiplication(&qPoint.inner, scalar.bigInt())
	return p
}

// Set copies the value of a into p and returns p.
func (p *G2) Set(a group.Point) group.Point {
	aPoint := a.(*G2)
	p.inner.Set(&aPoint.inner)
	return p
}

// Bytes returns the 96-byte compressed point encoding.
func (p *G2) Bytes() []byte {
	bytes := p.inner.Bytes()
	return bytes[:]
}

// Equal reports whether p and b represent the same curve point.
func (p *G2) Equal(b group.Point) bool {
	bPoint := b.(*G2)
	return p.inner.Equal(&bPoint.inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G2) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// BLS12381 implements [group.Pairing] on top of gnark-crypto.
//
// BLS12381 is a zero-sized type. Create an instance with &BLS12381{} or
// new(BLS12381).
type BLS12381 struct{}

// Name returns "gnark".
func (g *BLS12381) Name() string {
	return "gnark"
}

// NewScalar returns a new scalar initialized to zero.
func (g *BLS12381) NewScalar() group.Scalar {
	return &Scalar{}
}

// NewG1 returns a new G1 point initialized to the identity element.
func (g *BLS12381) NewG1() group.Point {
	return &G1{}
}

// NewG2 returns a new G2 point initialized to the identity element.
func (g *BLS12381) NewG2() group.Point {
	return &G2{}
}

// G1Generator returns the standard G1 base point.
func (g *BLS12381) G1Generator() group.Point {
	var p G1
	p.inner.Set(&g1Gen)
	return &p
}

// G2Generator returns the standard G2 base point.
func (g *BLS12381) G2Generator() group.Point {
	var p G2
	p.inner.Set(&g2Gen)
	return &p
}

// RandomScalar generates a random scalar using the provided random
// source. It reads 48 bytes and reduces them modulo r, so the result is
// statistically close to uniform in [0, r).
func (g *BLS12381) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [group.ScalarSize + 16]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	reduced := reduce.Wide(buf[:])
	clear(buf[:])

	s := &Scalar{}
	if err := s.inner.SetBytesCanonical(reduced[:]); err != nil {
		return nil, err
	}
	clear(reduced[:])
	return s, nil
}

// HashToScalar hashes msg to a scalar with fr.Hash, which implements the
// hash_to_field procedure of RFC 9380 with expand_message_xmd and SHA-256.
// It fails only if dst is longer than 255 bytes.
func (g *BLS12381) HashToScalar(msg, dst []byte) (group.Scalar, error) {
	elems, err := fr.Hash(msg, dst, 1)
	if err != nil {
		return nil, err
	}
	return &Scalar{inner: elems[0]}, nil
}

// ScalarFromBytes decodes a big-endian scalar, rejecting values >= r.
func (g *BLS12381) ScalarFromBytes(b *[group.ScalarSize]byte) (group.Scalar, bool) {
	s := &Scalar{}
	if err := s.inner.SetBytesCanonical(b[:]); err != nil {
		return nil, false
	}
	return s, true
}

// G1FromCompressed decompresses a G1 point. gnark-crypto checks the flag
// bits, the canonical range of x, the curve equation and subgroup
// membership.
func (g *BLS12381) G1FromCompressed(b *[group.G1Size]byte) (group.Point, bool) {
	p := &G1{}
	if _, err := p.inner.SetBytes(b[:]); err != nil {
		return nil, false
	}
	return p, true
}

// G2FromCompressed decompresses a G2 point with the same checks as
// G1FromCompressed.
func (g *BLS12381) G2FromCompressed(b *[group.G2Size]byte) (group.Point, bool) {
	p := &G2{}
	if _, err := p.inner.SetBytes(b[:]); err != nil {
		return nil, false
	}
	return p, true
}

// Order returns the order of the G1 and G2 subgroups as a big-endian
// byte slice.
func (g *BLS12381) Order() []byte {
	return fr.Modulus().Bytes()
}
