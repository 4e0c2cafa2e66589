//go:build blst

package blstgroup

import (
	"crypto/subtle"
	"errors"
	"io"

	"github.com/f3rmion/blsconv/group"
	"github.com/f3rmion/blsconv/internal/reduce"
	blst "github.com/supranational/blst/bindings/go"
)

// infinityFlag is the second-highest bit of a compressed encoding.
const infinityFlag = 0x40

// maxDSTLen is the largest tag expand_message_xmd accepts without
// pre-hashing it.
const maxDSTLen = 255

var errDSTTooLong = errors.New("blstgroup: dst longer than 255 bytes")

// Scalar represents an element of the BLS12-381 scalar field.
// It implements [group.Scalar] by wrapping blst.Scalar, which stores the
// canonical little-endian value.
type Scalar struct {
	inner blst.Scalar
}

// Add sets s to a + b (mod r) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	tmp := a.(*Scalar).inner
	tmp.AddAssign(&b.(*Scalar).inner)
	s.inner = tmp
	tmp.Zeroize()
	return s
}

// Mul sets s to a * b (mod r) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	tmp := a.(*Scalar).inner
	tmp.MulAssign(&b.(*Scalar).inner)
	s.inner = tmp
	tmp.Zeroize()
	return s
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner = a.(*Scalar).inner
	return s
}

// SetZero zeroizes s in place and returns s.
func (s *Scalar) SetZero() group.Scalar {
	s.inner.Zeroize()
	return s
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() [group.ScalarSize]byte {
	var out [group.ScalarSize]byte
	copy(out[:], s.inner.ToBEndian())
	return out
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equals(&b.(*Scalar).inner)
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	var zero blst.Scalar
	return s.inner.Equals(&zero)
}

// G1 represents a point of the BLS12-381 G1 subgroup in affine form.
// Arithmetic goes through blst's projective representation.
type G1 struct {
	inner blst.P1Affine
}

// Add sets p to a + b and returns p.
func (p *G1) Add(a, b group.Point) group.Point {
	var acc blst.P1
	acc.FromAffine(&a.(*G1).inner)
	acc.AddAssign(&b.(*G1).inner)
	p.inner = *acc.ToAffine()
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G1) ScalarMult(s group.Scalar, q group.Point) group.Point {
	var acc blst.P1
	acc.FromAffine(&q.(*G1).inner)
	acc.MultAssign(&s.(*Scalar).inner)
	p.inner = *acc.ToAffine()
	return p
}

// Set copies the value of a into p and returns p.
func (p *G1) Set(a group.Point) group.Point {
	p.inner = a.(*G1).inner
	return p
}

// Bytes returns the 48-byte compressed point encoding.
func (p *G1) Bytes() []byte {
	return p.inner.Compress()
}

// Equal reports whether p and b represent the same curve point.
func (p *G1) Equal(b group.Point) bool {
	return p.inner.Equals(&b.(*G1).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G1) IsIdentity() bool {
	return p.inner.Compress()[0]&infinityFlag != 0
}

// G2 represents a point of the BLS12-381 G2 subgroup in affine form.
type G2 struct {
	inner blst.P2Affine
}

// Add sets p to a + b and returns p.
func (p *G2) Add(a, b group.Point) group.Point {
	var acc blst.P2
	acc.FromAffine(&a.(*G2).inner)
	acc.AddAssign(&b.(*G2).inner)
	p.inner = *acc.ToAffine()
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G2) ScalarMult(s group.Scalar, q group.Point) group.Point {
	var acc blst.P2
	acc.FromAffine(&q.(*G2).inner)
	acc.MultAssign(&s.(*Scalar).inner)
	p.inner = *acc.ToAffine()
	return p
}

// Set copies the value of a into p and returns p.
func (p *G2) Set(a group.Point) group.Point {
	p.inner = a.(*G2).inner
	return p
}

// Bytes returns the 96-byte compressed point encoding.
func (p *G2) Bytes() []byte {
	return p.inner.Compress()
}

// Equal reports whether p and b represent the same curve point.
func (p *G2) Equal(b group.Point) bool {
	return p.inner.Equals(&b.(*G2).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G2) IsIdentity() bool {
	return p.inner.Compress()[0]&infinityFlag != 0
}

// BLST implements [group.Pairing] on top of supranational/blst.
type BLST struct{}

// Name returns "blst".
func (g *BLST) Name() string {
	return "blst"
}

// NewScalar returns a new scalar initialized to zero.
func (g *BLST) NewScalar() group.Scalar {
	return &Scalar{}
}

// NewG1 returns a new G1 point initialized to the identity element.
func (g *BLST) NewG1() group.Point {
	return &G1{}
}

// NewG2 returns a new G2 point initialized to the identity element.
func (g *BLST) NewG2() group.Point {
	return &G2{}
}

// G1Generator returns the standard G1 base point.
func (g *BLST) G1Generator() group.Point {
	return &G1{inner: *blst.P1Generator().ToAffine()}
}

// G2Generator returns the standard G2 base point.
func (g *BLST) G2Generator() group.Point {
	return &G2{inner: *blst.P2Generator().ToAffine()}
}

// RandomScalar reads 48 bytes from r and reduces them modulo the group
// order.
func (g *BLST) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [group.ScalarSize + 16]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	reduced := reduce.Wide(buf[:])
	clear(buf[:])

	s := &Scalar{}
	s.inner.FromBEndian(reduced[:])
	clear(reduced[:])
	return s, nil
}

// HashToScalar runs expand_message_xmd with SHA-256 to 48 bytes and
// reduces the output modulo r.
//
// blst pre-hashes tags longer than 255 bytes where gnark-crypto refuses
// them; such tags are rejected here so both backends agree.
func (g *BLST) HashToScalar(msg, dst []byte) (group.Scalar, error) {
	if len(dst) > maxDSTLen {
		return nil, errDSTTooLong
	}
	s := blst.HashToScalar(msg, dst)
	if s == nil {
		// blst reports a zero result as failure; zero is a valid field
		// element.
		return &Scalar{}, nil
	}
	return &Scalar{inner: *s}, nil
}

// ScalarFromBytes decodes a big-endian scalar, rejecting values >= r.
//
// blst's Deserialize refuses zero, so the value is reduced and compared
// against the input instead.
func (g *BLST) ScalarFromBytes(b *[group.ScalarSize]byte) (group.Scalar, bool) {
	s := &Scalar{}
	s.inner.FromBEndian(b[:])
	if subtle.ConstantTimeCompare(s.inner.ToBEndian(), b[:]) != 1 {
		s.SetZero()
		return nil, false
	}
	return s, true
}

// G1FromCompressed decompresses a G1 point and checks subgroup membership.
func (g *BLST) G1FromCompressed(b *[group.G1Size]byte) (group.Point, bool) {
	p := &G1{}
	if p.inner.Uncompress(b[:]) == nil {
		return nil, false
	}
	if !p.inner.InG1() {
		return nil, false
	}
	return p, true
}

// G2FromCompressed decompresses a G2 point and checks subgroup membership.
func (g *BLST) G2FromCompressed(b *[group.G2Size]byte) (group.Point, bool) {
	p := &G2{}
	if p.inner.Uncompress(b[:]) == nil {
		return nil, false
	}
	if !p.inner.InG2() {
		return nil, false
	}
	return p, true
}

// Order returns the group order r as a big-endian byte slice.
func (g *BLST) Order() []byte {
	return reduce.Order()
}
