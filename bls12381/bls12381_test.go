package bls12381

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/f3rmion/blsconv/group"
	"github.com/f3rmion/blsconv/group/grouptest"
)

func TestConformance(t *testing.T) {
	grouptest.Run(t, &BLS12381{})
}

func TestScalar(t *testing.T) {
	g := &BLS12381{}

	t.Run("BytesRoundtrip", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)

		enc := a.Bytes()
		restored, ok := g.ScalarFromBytes(&enc)
		if !ok {
			t.Fatal("canonical scalar rejected")
		}

		if !restored.Equal(a) {
			t.Error("scalar bytes roundtrip failed")
		}
	})

	t.Run("RandomFromZeroReader", func(t *testing.T) {
		s, err := g.RandomScalar(bytes.NewReader(make([]byte, 48)))
		if err != nil {
			t.Fatal(err)
		}
		if !s.IsZero() {
			t.Error("48 zero bytes should reduce to zero")
		}
	})

	t.Run("SetZeroClearsLimbs", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		s := a.(*Scalar)
		s.SetZero()
		for i, limb := range s.inner {
			if limb != 0 {
				t.Errorf("limb %d not cleared", i)
			}
		}
	})
}

func TestHashToScalar(t *testing.T) {
	g := &BLS12381{}

	t.Run("LongDSTFails", func(t *testing.T) {
		_, err := g.HashToScalar([]byte("msg"), make([]byte, 256))
		if err == nil {
			t.Error("expected error for 256-byte dst")
		}
	})

	t.Run("MaxDST", func(t *testing.T) {
		_, err := g.HashToScalar([]byte("msg"), bytes.Repeat([]byte{'d'}, 255))
		if err != nil {
			t.Fatal(err)
		}
	})
}

func TestPoint(t *testing.T) {
	g := &BLS12381{}

	t.Run("IsIdentity", func(t *testing.T) {
		identity := g.NewG1()
		if !identity.IsIdentity() {
			t.Error("new point should be identity")
		}

		gen := g.G1Generator()
		if gen.IsIdentity() {
			t.Error("generator should not be identity")
		}
	})

	t.Run("OrderTimesGenerator", func(t *testing.T) {
		// (r-1)*G + G is the identity in both groups.
		var enc [group.ScalarSize]byte
		copy(enc[:], g.Order())
		enc[group.ScalarSize-1]--
		rMinusOne, ok := g.ScalarFromBytes(&enc)
		if !ok {
			t.Fatal("r-1 rejected")
		}

		p1 := g.NewG1().ScalarMult(rMinusOne, g.G1Generator())
		if !g.NewG1().Add(p1, g.G1Generator()).IsIdentity() {
			t.Error("(r-1)*G1 + G1 != identity")
		}

		p2 := g.NewG2().ScalarMult(rMinusOne, g.G2Generator())
		if !g.NewG2().Add(p2, g.G2Generator()).IsIdentity() {
			t.Error("(r-1)*G2 + G2 != identity")
		}
	})

	t.Run("GeneratorIsNotShared", func(t *testing.T) {
		gen := g.G1Generator()
		gen.Add(gen, gen)
		if gen.Equal(g.G1Generator()) {
			t.Error("mutating a returned generator changed the base point")
		}
	})
}
