package convert

import "errors"

var (
	// ErrInvalidBytes is returned by every decoder when the input is not a
	// valid encoding. It is never wrapped and carries no detail about why
	// the bytes were rejected.
	ErrInvalidBytes = errors.New("malformed encoding")

	// ErrHashToField means the hash-to-field primitive itself failed. It
	// points at a misconfigured or broken backend, never at bad input.
	ErrHashToField = errors.New("hash to field failed")

	// ErrInvalidDST is returned by New when the domain separation tag is
	// empty or longer than 255 bytes.
	ErrInvalidDST = errors.New("domain separation tag must be 1 to 255 bytes")

	// ErrNilGroup is returned by New when no backend is given.
	ErrNilGroup = errors.New("group must not be nil")
)
