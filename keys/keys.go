package keys

import (
	"crypto/sha256"
	"errors"
	"io"
	"runtime"

	"github.com/f3rmion/blsconv/convert"
	"github.com/f3rmion/blsconv/group"
	"github.com/f3rmion/blsconv/internal/reduce"
	"github.com/f3rmion/blsconv/secret"
	"golang.org/x/crypto/hkdf"
)

// ErrShortSeed is returned by KeyGen when ikm is shorter than 32 bytes.
var ErrShortSeed = errors.New("ikm must be at least 32 bytes")

const (
	minIKMLen  = 32
	keygenSalt = "BLS-SIG-KEYGEN-SALT-"
	// okmLen is ceil((3 * ceil(log2(r))) / 16).
	okmLen = 48
)

// Keys creates key values on top of a Converter.
type Keys struct {
	conv *convert.Converter
	g    group.Pairing
}

// New returns a Keys bound to conv.
func New(conv *convert.Converter) *Keys {
	return &Keys{conv: conv, g: conv.Group()}
}

// SecretKey is a BLS secret key. Call Zeroize when done with it; a
// finalizer zeroizes keys that are collected first.
type SecretKey struct {
	keys   *Keys
	scalar group.Scalar
}

// PublicKey is a G1 point.
type PublicKey struct {
	keys  *Keys
	point group.Point
}

// Signature is a G2 point.
type Signature struct {
	point group.Point
}

func (k *Keys) newSecretKey(s group.Scalar) *SecretKey {
	sk := &SecretKey{keys: k, scalar: s}
	runtime.SetFinalizer(sk, func(sk *SecretKey) { sk.Zeroize() })
	return sk
}

// SecretKeyFromBytes decodes a 32-byte big-endian secret key.
func (k *Keys) SecretKeyFromBytes(b [group.ScalarSize]byte) (*SecretKey, error) {
	s, err := k.conv.ScalarFromBytes(b)
	secret.ClearBytes(b[:])
	if err != nil {
		return nil, err
	}
	return k.newSecretKey(s), nil
}

// PublicKeyFromBytes decodes a 48-byte compressed public key.
func (k *Keys) PublicKeyFromBytes(b [group.G1Size]byte) (*PublicKey, error) {
	p, err := k.conv.G1FromBytes(b)
	if err != nil {
		return nil, err
	}
	return &PublicKey{keys: k, point: p}, nil
}

// SignatureFromBytes decodes a 96-byte compressed signature.
func (k *Keys) SignatureFromBytes(b [group.G2Size]byte) (*Signature, error) {
	p, err := k.conv.G2FromBytes(b)
	if err != nil {
		return nil, err
	}
	return &Signature{point: p}, nil
}

// KeyGen derives a secret key from at least 32 bytes of input keying
// material. info is optional context and may be nil.
//
//	salt = "BLS-SIG-KEYGEN-SALT-"
//	loop:
//	    salt = SHA-256(salt)
//	    PRK  = HKDF-Extract(salt, ikm || 0x00)
//	    OKM  = HKDF-Expand(PRK, info || I2OSP(48, 2), 48)
//	    SK   = OS2IP(OKM) mod r
//	until SK != 0
func (k *Keys) KeyGen(ikm, info []byte) (*SecretKey, error) {
	if len(ikm) < minIKMLen {
		return nil, ErrShortSeed
	}

	secretIKM := make([]byte, 0, len(ikm)+1)
	secretIKM = append(secretIKM, ikm...)
	secretIKM = append(secretIKM, 0)
	defer secret.ClearBytes(secretIKM)

	keyInfo := make([]byte, 0, len(info)+2)
	keyInfo = append(keyInfo, info...)
	keyInfo = append(keyInfo, 0, okmLen)

	salt := []byte(keygenSalt)
	okm := make([]byte, okmLen)
	defer secret.ClearBytes(okm)

	for {
		sum := sha256.Sum256(salt)
		salt = sum[:]

		prk := hkdf.Extract(sha256.New, secretIKM, salt)
		_, err := io.ReadFull(hkdf.Expand(sha256.New, prk, keyInfo), okm)
		secret.ClearBytes(prk)
		if err != nil {
			return nil, err
		}

		b := reduce.Wide(okm)
		s, ok := k.g.ScalarFromBytes(&b)
		secret.ClearBytes(b[:])
		if !ok {
			// Unreachable: Wide always returns a reduced value.
			return nil, convert.ErrInvalidBytes
		}
		if !s.IsZero() {
			return k.newSecretKey(s), nil
		}
	}
}

// RandomSecretKey draws a secret key from r. It is meant for tests and
// tools; production keys should come from KeyGen with a vetted seed.
func (k *Keys) RandomSecretKey(r io.Reader) (*SecretKey, error) {
	s, err := k.g.RandomScalar(r)
	if err != nil {
		return nil, err
	}
	return k.newSecretKey(s), nil
}

// Bytes returns the 32-byte big-endian encoding of the key.
func (sk *SecretKey) Bytes() [group.ScalarSize]byte {
	return sk.scalar.Bytes()
}

// PublicKey returns sk * G1.
func (sk *SecretKey) PublicKey() *PublicKey {
	g := sk.keys.g
	return &PublicKey{
		keys:  sk.keys,
		point: g.NewG1().ScalarMult(sk.scalar, g.G1Generator()),
	}
}

// DeriveChild returns the child secret key sk * H(index).
func (sk *SecretKey) DeriveChild(index []byte) (*SecretKey, error) {
	h, err := sk.keys.conv.DeriveScalar(index)
	if err != nil {
		return nil, err
	}
	child := sk.keys.g.NewScalar().Mul(sk.scalar, h)
	secret.ClearScalar(h)
	return sk.keys.newSecretKey(child), nil
}

// Zeroize overwrites the key with zero. The key must not be used
// afterwards.
func (sk *SecretKey) Zeroize() {
	secret.ClearScalar(sk.scalar)
}

// String never prints key material.
func (sk *SecretKey) String() string {
	return "SecretKey(redacted)"
}

// GoString never prints key material.
func (sk *SecretKey) GoString() string {
	return sk.String()
}

// Bytes returns the 48-byte compressed encoding of the key.
func (pk *PublicKey) Bytes() [group.G1Size]byte {
	var out [group.G1Size]byte
	copy(out[:], pk.point.Bytes())
	return out
}

// DeriveChild returns the child public key pk * H(index).
func (pk *PublicKey) DeriveChild(index []byte) (*PublicKey, error) {
	h, err := pk.keys.conv.DeriveScalar(index)
	if err != nil {
		return nil, err
	}
	return &PublicKey{
		keys:  pk.keys,
		point: pk.keys.g.NewG1().ScalarMult(h, pk.point),
	}, nil
}

// Equal reports whether pk and other are the same point.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.point.Equal(other.point)
}

// Bytes returns the 96-byte compressed encoding of the signature.
func (s *Signature) Bytes() [group.G2Size]byte {
	var out [group.G2Size]byte
	copy(out[:], s.point.Bytes())
	return out
}

// Equal reports whether s and other are the same point.
func (s *Signature) Equal(other *Signature) bool {
	return s.point.Equal(other.point)
}
