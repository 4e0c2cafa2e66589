// Package reduce implements constant-time reduction of wide big-endian
// integers modulo the BLS12-381 group order, on top of filippo.io/bigmod.
package reduce

import (
	"encoding/hex"

	"filippo.io/bigmod"
	"github.com/f3rmion/blsconv/group"
)

// orderHex is the BLS12-381 group order r.
const orderHex = "73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001"

var order *bigmod.Modulus

func init() {
	b, err := hex.DecodeString(orderHex)
	if err != nil {
		panic("invalid group order: " + err.Error())
	}
	m, err := bigmod.NewModulus(b)
	if err != nil {
		panic("invalid group order: " + err.Error())
	}
	order = m
}

// Order returns the group order r as a big-endian byte slice.
func Order() []byte {
	return order.Nat().Bytes(order)
}

// Wide interprets b as a big-endian integer of any length and returns it
// reduced modulo r, encoded as a canonical big-endian scalar.
//
// The running time depends on len(b) only, not on its contents. Callers
// sampling uniform scalars should pass at least ScalarSize+16 bytes so the
// result is statistically close to uniform.
func Wide(b []byte) [group.ScalarSize]byte {
	// Build a modulus that is larger than b (when interpreted as big-endian number).
	largeModBytes := make([]byte, len(b)+1)
	largeModBytes[0] = 1
	largeMod, err := bigmod.NewModulus(largeModBytes)
	if err != nil {
		// Unreachable: largeModBytes encodes a value greater than one.
		panic("reduce: " + err.Error())
	}

	// The value fits below largeMod, no reduction happens here.
	t := bigmod.NewNat()
	if _, err := t.SetBytes(b, largeMod); err != nil {
		panic("reduce: " + err.Error())
	}

	v := bigmod.NewNat().ExpandFor(order)
	v.Mod(t, order)

	var out [group.ScalarSize]byte
	copy(out[:], v.Bytes(order))
	return out
}
