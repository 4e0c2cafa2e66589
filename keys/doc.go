// Package keys wraps decoded BLS12-381 values in secret key, public key and
// signature types.
//
// Secret keys come from [Keys.SecretKeyFromBytes], from [Keys.KeyGen] (the
// HKDF-based KeyGen of the IETF BLS signature draft, as used by EIP-2333)
// or, in tests and tools, from [Keys.RandomSecretKey].
//
// Child keys are derived multiplicatively. For a secret key sk with public
// key pk = sk*G1 and an index i:
//
//	child_sk = sk * H(i)
//	child_pk = pk * H(i)
//
// where H is [convert.Converter.DeriveScalar]. Both sides agree, so a
// public key holder can derive child public keys without the secret.
//
// Signing and verification are not provided.
package keys
