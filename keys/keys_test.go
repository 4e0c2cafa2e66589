package keys

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/f3rmion/blsconv/bls12381"
	"github.com/f3rmion/blsconv/convert"
	"github.com/f3rmion/blsconv/group"
	"github.com/f3rmion/blsconv/group/grouptest"
	"github.com/stretchr/testify/require"
)

func newKeys(t *testing.T) *Keys {
	t.Helper()
	conv, err := convert.New(&bls12381.BLS12381{})
	require.NoError(t, err)
	return New(conv)
}

func TestKeyGen(t *testing.T) {
	k := newKeys(t)

	t.Run("EIP2333MasterKey", func(t *testing.T) {
		seed := grouptest.MustHex(t, "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e5349553"+
			"1f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04")
		sk, err := k.KeyGen(seed, nil)
		require.NoError(t, err)
		b := sk.Bytes()
		require.Equal(t, "0d7359d57963ab8fbbde1852dcf553fedbc31f464d80ee7d40ae683122b45070", hex.EncodeToString(b[:]))
	})

	t.Run("CountingSeed", func(t *testing.T) {
		ikm := make([]byte, 32)
		for i := range ikm {
			ikm[i] = byte(i)
		}
		sk, err := k.KeyGen(ikm, []byte{})
		require.NoError(t, err)
		b := sk.Bytes()
		require.Equal(t, "23360db7e337b0a32b264e06bc11c1b474d16f55665373de1ce93cf15ddb3456", hex.EncodeToString(b[:]))
	})

	t.Run("InfoSeparates", func(t *testing.T) {
		ikm := bytes.Repeat([]byte{7}, 32)
		a, err := k.KeyGen(ikm, []byte("a"))
		require.NoError(t, err)
		b, err := k.KeyGen(ikm, []byte("b"))
		require.NoError(t, err)
		require.NotEqual(t, a.Bytes(), b.Bytes())
	})

	t.Run("ShortSeed", func(t *testing.T) {
		_, err := k.KeyGen(make([]byte, 31), nil)
		require.ErrorIs(t, err, ErrShortSeed)
	})

	t.Run("SeedUntouched", func(t *testing.T) {
		ikm := bytes.Repeat([]byte{0xab}, 40)
		want := append([]byte(nil), ikm...)
		_, err := k.KeyGen(ikm, nil)
		require.NoError(t, err)
		require.Equal(t, want, ikm)
	})
}

func TestSecretKey(t *testing.T) {
	k := newKeys(t)

	t.Run("BytesRoundtrip", func(t *testing.T) {
		sk, err := k.RandomSecretKey(rand.Reader)
		require.NoError(t, err)

		restored, err := k.SecretKeyFromBytes(sk.Bytes())
		require.NoError(t, err)
		require.Equal(t, sk.Bytes(), restored.Bytes())
		require.True(t, restored.PublicKey().Equal(sk.PublicKey()))
	})

	t.Run("RejectsOrder", func(t *testing.T) {
		var b [group.ScalarSize]byte
		copy(b[:], grouptest.MustHex(t, grouptest.OrderHex))
		_, err := k.SecretKeyFromBytes(b)
		require.ErrorIs(t, err, convert.ErrInvalidBytes)
	})

	t.Run("Zeroize", func(t *testing.T) {
		sk, err := k.RandomSecretKey(rand.Reader)
		require.NoError(t, err)

		sk.Zeroize()
		require.Equal(t, [group.ScalarSize]byte{}, sk.Bytes())
		sk.Zeroize()
		require.Equal(t, [group.ScalarSize]byte{}, sk.Bytes())
	})

	t.Run("Redacted", func(t *testing.T) {
		sk, err := k.RandomSecretKey(rand.Reader)
		require.NoError(t, err)
		b := sk.Bytes()
		enc := hex.EncodeToString(b[:])

		for _, verb := range []string{"%v", "%s", "%x", "%+v", "%#v"} {
			out := fmt.Sprintf(verb, sk)
			require.NotContains(t, out, enc, verb)
			require.Contains(t, out, "redacted", verb)
		}
	})
}

func TestDeriveChild(t *testing.T) {
	k := newKeys(t)
	sk, err := k.KeyGen(bytes.Repeat([]byte{0x42}, 32), nil)
	require.NoError(t, err)
	pk := sk.PublicKey()

	t.Run("PublicMatchesSecret", func(t *testing.T) {
		for _, idx := range [][]byte{nil, []byte("0"), []byte("m/12381/3600/0/0"), bytes.Repeat([]byte{1}, 200)} {
			childSK, err := sk.DeriveChild(idx)
			require.NoError(t, err)
			childPK, err := pk.DeriveChild(idx)
			require.NoError(t, err)
			require.True(t, childSK.PublicKey().Equal(childPK), "index %x", idx)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, err := sk.DeriveChild([]byte("x"))
		require.NoError(t, err)
		b, err := sk.DeriveChild([]byte("x"))
		require.NoError(t, err)
		require.Equal(t, a.Bytes(), b.Bytes())
	})

	t.Run("DistinctIndices", func(t *testing.T) {
		a, err := pk.DeriveChild([]byte("x"))
		require.NoError(t, err)
		b, err := pk.DeriveChild([]byte("y"))
		require.NoError(t, err)
		require.False(t, a.Equal(b))
		require.False(t, a.Equal(pk))
	})

	t.Run("ParentUnchanged", func(t *testing.T) {
		before := sk.Bytes()
		_, err := sk.DeriveChild([]byte("z"))
		require.NoError(t, err)
		require.Equal(t, before, sk.Bytes())
	})
}

func TestPublicKeyFromBytes(t *testing.T) {
	k := newKeys(t)
	sk, err := k.RandomSecretKey(rand.Reader)
	require.NoError(t, err)
	pk := sk.PublicKey()

	restored, err := k.PublicKeyFromBytes(pk.Bytes())
	require.NoError(t, err)
	require.True(t, restored.Equal(pk))

	var bad [group.G1Size]byte
	copy(bad[:], grouptest.MustHex(t, grouptest.InvalidG1["OrderThreePoint"]))
	_, err = k.PublicKeyFromBytes(bad)
	require.ErrorIs(t, err, convert.ErrInvalidBytes)
}

func TestSignatureFromBytes(t *testing.T) {
	k := newKeys(t)
	g := &bls12381.BLS12381{}

	gen := g.G2Generator()
	var b [group.G2Size]byte
	copy(b[:], gen.Bytes())

	sig, err := k.SignatureFromBytes(b)
	require.NoError(t, err)
	require.Equal(t, b, sig.Bytes())

	other, err := k.SignatureFromBytes(b)
	require.NoError(t, err)
	require.True(t, sig.Equal(other))

	_, err = k.SignatureFromBytes([group.G2Size]byte{})
	require.ErrorIs(t, err, convert.ErrInvalidBytes)
}
