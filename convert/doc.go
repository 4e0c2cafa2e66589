// Package convert moves byte strings into and out of the BLS12-381 field
// and groups.
//
// A [Converter] offers two kinds of operation:
//
//   - Derivation: [Converter.DeriveScalar] maps an arbitrary index to a
//     scalar with RFC 9380 hash_to_field under a fixed domain separation tag.
//   - Decoding: [Converter.ScalarFromBytes], [Converter.G1FromBytes] and
//     [Converter.G2FromBytes] validate fixed-size encodings.
//
// # Errors
//
// Every decoder fails with the same value, [ErrInvalidBytes], whatever the
// reason: out-of-range scalar, bad flag bits, a point off the curve or
// outside the subgroup. Callers compare with errors.Is or ==.
//
// [ErrHashToField] is reserved for a broken hashing backend. It is logged
// at error level and [Converter.MustDeriveScalar] panics with it.
//
// # Usage
//
//	c, err := convert.New(&bls12381.BLS12381{},
//		convert.WithLogger(log),
//		convert.WithRegisterer(prometheus.DefaultRegisterer),
//	)
//	if err != nil {
//		return err
//	}
//	child, err := c.DeriveScalar([]byte("account/0"))
//
// Input and secret bytes never appear in logs; log entries carry only the
// encoding kind and the backend name.
package convert
