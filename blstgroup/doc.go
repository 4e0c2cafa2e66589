// Package blstgroup provides a supranational/blst implementation of the
// [group.Pairing] interface.
//
// blst is an assembly-optimised C library reached through cgo. The
// implementation is only compiled with the blst build tag:
//
//	go build -tags blst ./...
//
// Without the tag the package is empty, so pure-Go builds never need a C
// toolchain. Both backends produce byte-identical results; the blst tests
// check that against the bls12381 package.
//
// # Usage
//
//	g := &blstgroup.BLST{}
//	c, err := convert.New(g)
//
// # Security
//
// blst's uncompress routine validates the flag bits, the canonical range of
// x and the curve equation, but leaves subgroup membership to the caller.
// G1FromCompressed and G2FromCompressed run the subgroup check before
// returning a point.
package blstgroup
