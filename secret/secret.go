// Package secret erases secret material from memory.
//
// Go gives no volatile write, so each routine writes through memory the
// compiler cannot prove dead (a scalar reached through an interface, or a
// caller-owned slice) and then pins it with runtime.KeepAlive until the
// write has happened.
package secret

import (
	"runtime"

	"github.com/f3rmion/blsconv/group"
)

// ClearScalar overwrites s in place with zero. It is idempotent, touches
// nothing but s, and is a no-op for a nil scalar.
func ClearScalar(s group.Scalar) {
	if s == nil {
		return
	}
	s.SetZero()
	runtime.KeepAlive(s)
}

// ClearBytes overwrites b with zeros.
func ClearBytes(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}

