// Package grouptest provides a conformance suite for [group.Pairing]
// backends. Every backend package runs it from its own tests:
//
//	func TestConformance(t *testing.T) {
//		grouptest.Run(t, &bls12381.BLS12381{})
//	}
package grouptest

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/f3rmion/blsconv/group"
	"github.com/stretchr/testify/require"
)

// DefaultDST is the domain separation tag used for index derivation.
const DefaultDST = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_NUL_"

// OrderHex is the BLS12-381 group order r.
const OrderHex = "73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001"

// Compressed encodings of the standard generators.
const (
	G1GeneratorHex = "97f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb"
	G2GeneratorHex = "93e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e" +
		"024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8"
)

// HashVector is a known-answer test for hash_to_field into Fr.
type HashVector struct {
	Msg    string
	DST    string
	Scalar string
}

// HashVectors are hash_to_field outputs computed with expand_message_xmd
// (SHA-256), L = 48 and a single output element.
var HashVectors = []HashVector{
	{"", DefaultDST, "08f5adba0013f3241ea2f51beb2d2f19d45b7716eab41e993c7a64eb5c5adce7"},
	{"", "T1", "4a216571d30de147f40c839496109f6113ed9b25ddd4f704dfdc795da2e17004"},
	{"", "T2", "10a38e6f53e007a2a58cd81b1952a06283a17bb92e2aebef73bfd2d3057190f4"},
	{"abc", DefaultDST, "68e0e541324ac23eb6db450e4fdf8f235f6b07bd06b5a3db98eb883ae49d68b5"},
	{"abc", "T1", "3ffefdf88c13ed7906f7702cf7e5a31137fed3e7629998f0e4c70aa8dc37080d"},
	{"abc", "T2", "69de21f558473ea5ce28d82145ae7983d7b8ba563183502f16ca6130e2378290"},
}

// InvalidG1 lists 48-byte encodings that every backend must reject.
var InvalidG1 = map[string]string{
	"AllZero":          "00" + zeros(47),
	"OrderThreePoint":  "80" + zeros(47),
	"NotOnCurve":       "80" + zeros(46) + "01",
	"AllFlagsSet":      "e0" + zeros(47),
	"Uncompressed":     "20" + zeros(47),
	"CoordinateTooBig": "9f" + repeat("ff", 47),
	"InfinityWithX":    "c0" + zeros(46) + "01",
}

// InvalidG2 lists 96-byte encodings that every backend must reject.
var InvalidG2 = map[string]string{
	"AllZero":     "00" + zeros(95),
	"NotOnCurve":  "80" + zeros(95),
	"AllFlagsSet": "e0" + zeros(95),
	"AllOnes":     repeat("ff", 96),
}

func zeros(n int) string {
	return repeat("00", n)
}

func repeat(s string, n int) string {
	return strings.Repeat(s, n)
}

// MustHex decodes a hex string or fails the test.
func MustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// Run exercises g against the behaviour blsconv relies on.
func Run(t *testing.T, g group.Pairing) {
	t.Run("Order", func(t *testing.T) {
		require.Equal(t, MustHex(t, OrderHex), g.Order())
	})
	t.Run("Scalar", func(t *testing.T) { testScalar(t, g) })
	t.Run("ScalarDecoding", func(t *testing.T) { testScalarDecoding(t, g) })
	t.Run("HashToScalar", func(t *testing.T) { testHashToScalar(t, g) })
	t.Run("G1", func(t *testing.T) {
		testPoint(t, g, g.NewG1, g.G1Generator, func(b []byte) (group.Point, bool) {
			var buf [group.G1Size]byte
			copy(buf[:], b)
			return g.G1FromCompressed(&buf)
		}, G1GeneratorHex, group.G1Size)
	})
	t.Run("G2", func(t *testing.T) {
		testPoint(t, g, g.NewG2, g.G2Generator, func(b []byte) (group.Point, bool) {
			var buf [group.G2Size]byte
			copy(buf[:], b)
			return g.G2FromCompressed(&buf)
		}, G2GeneratorHex, group.G2Size)
	})
	t.Run("InvalidG1", func(t *testing.T) {
		for name, enc := range InvalidG1 {
			t.Run(name, func(t *testing.T) {
				var buf [group.G1Size]byte
				copy(buf[:], MustHex(t, enc))
				p, ok := g.G1FromCompressed(&buf)
				require.False(t, ok)
				require.Nil(t, p)
			})
		}
	})
	t.Run("InvalidG2", func(t *testing.T) {
		for name, enc := range InvalidG2 {
			t.Run(name, func(t *testing.T) {
				var buf [group.G2Size]byte
				copy(buf[:], MustHex(t, enc))
				p, ok := g.G2FromCompressed(&buf)
				require.False(t, ok)
				require.Nil(t, p)
			})
		}
	})
}

func testScalar(t *testing.T, g group.Pairing) {
	t.Run("NewScalarIsZero", func(t *testing.T) {
		zero := g.NewScalar()
		require.True(t, zero.IsZero())
		require.Equal(t, [group.ScalarSize]byte{}, zero.Bytes())
	})

	t.Run("Distributive", func(t *testing.T) {
		a := mustRandom(t, g)
		b := mustRandom(t, g)
		c := mustRandom(t, g)

		// a*(b+c) == a*b + a*c
		left := g.NewScalar().Mul(a, g.NewScalar().Add(b, c))
		right := g.NewScalar().Add(g.NewScalar().Mul(a, b), g.NewScalar().Mul(a, c))
		require.True(t, left.Equal(right))
	})

	t.Run("SetZero", func(t *testing.T) {
		a := mustRandom(t, g)
		require.False(t, a.IsZero())
		require.Same(t, a, a.SetZero())
		require.True(t, a.IsZero())
		require.True(t, a.Equal(g.NewScalar()))

		// Idempotent.
		a.SetZero()
		require.True(t, a.IsZero())
	})

	t.Run("Set", func(t *testing.T) {
		a := mustRandom(t, g)
		b := g.NewScalar().Set(a)
		require.True(t, b.Equal(a))

		b.SetZero()
		require.False(t, a.IsZero())
	})

	t.Run("RandomDistinct", func(t *testing.T) {
		a := mustRandom(t, g)
		b := mustRandom(t, g)
		require.False(t, a.Equal(b))
	})

	t.Run("RandomShortRead", func(t *testing.T) {
		_, err := g.RandomScalar(iotest.ErrReader(iotest.ErrTimeout))
		require.Error(t, err)
	})
}

func testScalarDecoding(t *testing.T, g group.Pairing) {
	order := MustHex(t, OrderHex)

	t.Run("Roundtrip", func(t *testing.T) {
		a := mustRandom(t, g)
		enc := a.Bytes()
		b, ok := g.ScalarFromBytes(&enc)
		require.True(t, ok)
		require.True(t, b.Equal(a))
		require.Equal(t, enc, b.Bytes())
	})

	t.Run("Zero", func(t *testing.T) {
		var enc [group.ScalarSize]byte
		s, ok := g.ScalarFromBytes(&enc)
		require.True(t, ok)
		require.True(t, s.IsZero())
	})

	t.Run("OrderMinusOne", func(t *testing.T) {
		var enc [group.ScalarSize]byte
		copy(enc[:], order)
		enc[group.ScalarSize-1]--
		s, ok := g.ScalarFromBytes(&enc)
		require.True(t, ok)
		require.Equal(t, enc, s.Bytes())

		// (r-1) + 1 == 0
		var oneEnc [group.ScalarSize]byte
		oneEnc[group.ScalarSize-1] = 1
		one, ok := g.ScalarFromBytes(&oneEnc)
		require.True(t, ok)
		require.True(t, g.NewScalar().Add(s, one).IsZero())
	})

	rejected := map[string]func(*[group.ScalarSize]byte){
		"Order": func(b *[group.ScalarSize]byte) { copy(b[:], order) },
		"OrderPlusOne": func(b *[group.ScalarSize]byte) {
			copy(b[:], order)
			b[group.ScalarSize-1]++
		},
		"AllOnes": func(b *[group.ScalarSize]byte) {
			for i := range b {
				b[i] = 0xff
			}
		},
	}
	for name, fill := range rejected {
		t.Run(name, func(t *testing.T) {
			var enc [group.ScalarSize]byte
			fill(&enc)
			s, ok := g.ScalarFromBytes(&enc)
			require.False(t, ok)
			require.Nil(t, s)
		})
	}
}

func testHashToScalar(t *testing.T, g group.Pairing) {
	t.Run("Vectors", func(t *testing.T) {
		for _, v := range HashVectors {
			s, err := g.HashToScalar([]byte(v.Msg), []byte(v.DST))
			require.NoError(t, err)
			got := s.Bytes()
			require.Equal(t, v.Scalar, hex.EncodeToString(got[:]), "msg=%q dst=%q", v.Msg, v.DST)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		msg := []byte("blsconv")
		a, err := g.HashToScalar(msg, []byte(DefaultDST))
		require.NoError(t, err)
		b, err := g.HashToScalar(msg, []byte(DefaultDST))
		require.NoError(t, err)
		require.True(t, a.Equal(b))
	})

	t.Run("LongMessage", func(t *testing.T) {
		msg := bytes.Repeat([]byte{0x5a}, 4096)
		a, err := g.HashToScalar(msg, []byte(DefaultDST))
		require.NoError(t, err)
		b, err := g.HashToScalar(msg[:4095], []byte(DefaultDST))
		require.NoError(t, err)
		require.False(t, a.Equal(b))
	})
}

func testPoint(
	t *testing.T,
	g group.Pairing,
	newPoint func() group.Point,
	generator func() group.Point,
	decode func([]byte) (group.Point, bool),
	generatorHex string,
	size int,
) {
	t.Run("NewPointIsIdentity", func(t *testing.T) {
		p := newPoint()
		require.True(t, p.IsIdentity())

		id := make([]byte, size)
		id[0] = 0xc0
		require.Equal(t, id, p.Bytes())
	})

	t.Run("GeneratorEncoding", func(t *testing.T) {
		gen := generator()
		require.False(t, gen.IsIdentity())
		require.Equal(t, generatorHex, hex.EncodeToString(gen.Bytes()))

		decoded, ok := decode(MustHex(t, generatorHex))
		require.True(t, ok)
		require.True(t, decoded.Equal(gen))
	})

	t.Run("IdentityDecodes", func(t *testing.T) {
		id := make([]byte, size)
		id[0] = 0xc0
		p, ok := decode(id)
		require.True(t, ok)
		require.True(t, p.IsIdentity())
	})

	t.Run("Roundtrip", func(t *testing.T) {
		s := mustRandom(t, g)
		p := newPoint().ScalarMult(s, generator())
		enc := p.Bytes()
		require.Len(t, enc, size)

		q, ok := decode(enc)
		require.True(t, ok)
		require.True(t, q.Equal(p))
		require.Equal(t, enc, q.Bytes())
	})

	t.Run("ScalarMultLinear", func(t *testing.T) {
		a := mustRandom(t, g)
		b := mustRandom(t, g)

		// (a+b)*G == a*G + b*G
		left := newPoint().ScalarMult(g.NewScalar().Add(a, b), generator())
		right := newPoint().Add(
			newPoint().ScalarMult(a, generator()),
			newPoint().ScalarMult(b, generator()),
		)
		require.True(t, left.Equal(right))

		// (a*b)*G == a*(b*G)
		left = newPoint().ScalarMult(g.NewScalar().Mul(a, b), generator())
		right = newPoint().ScalarMult(a, newPoint().ScalarMult(b, generator()))
		require.True(t, left.Equal(right))
	})

	t.Run("ScalarMultZero", func(t *testing.T) {
		p := newPoint().ScalarMult(g.NewScalar(), generator())
		require.True(t, p.IsIdentity())
	})

	t.Run("AddIdentity", func(t *testing.T) {
		gen := generator()
		p := newPoint().Add(gen, newPoint())
		require.True(t, p.Equal(gen))

		q := newPoint().Set(gen)
		require.True(t, q.Equal(gen))
	})
}

func mustRandom(t *testing.T, g group.Pairing) group.Scalar {
	t.Helper()
	s, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)
	return s
}
