package convert

import (
	"fmt"

	"github.com/f3rmion/blsconv/group"
	"github.com/f3rmion/blsconv/secret"
	"github.com/sirupsen/logrus"
)

// Encoding kinds reported in logs and metrics.
const (
	kindScalar = "scalar"
	kindG1     = "g1"
	kindG2     = "g2"
)

// Converter derives scalars and decodes fixed-size encodings on top of a
// [group.Pairing] backend. It is immutable after New and safe for
// concurrent use.
type Converter struct {
	group   group.Pairing
	backend string
	dst     []byte
	log     logrus.FieldLogger
	metrics *metrics
}

// New creates a Converter for the backend g.
func New(g group.Pairing, opts ...Option) (*Converter, error) {
	if g == nil {
		return nil, ErrNilGroup
	}

	cfg := Config{DST: []byte(DefaultDST)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.DST) == 0 || len(cfg.DST) > maxDSTLen {
		return nil, ErrInvalidDST
	}
	if cfg.Logger == nil {
		cfg.Logger = defaultLogger()
	}

	m, err := newMetrics(cfg.Registerer)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	return &Converter{
		group:   g,
		backend: g.Name(),
		dst:     append([]byte(nil), cfg.DST...),
		log:     cfg.Logger,
		metrics: m,
	}, nil
}

// Group returns the backend the Converter was created with.
func (c *Converter) Group() group.Pairing {
	return c.group
}

// DST returns a copy of the domain separation tag.
func (c *Converter) DST() []byte {
	return append([]byte(nil), c.dst...)
}

// DeriveScalar maps index to a scalar with the RFC 9380 hash_to_field
// procedure (expand_message_xmd, SHA-256, L = 48, one element) under the
// Converter's DST. Every input, including the empty one, yields a scalar.
//
// An error wraps ErrHashToField and means the backend is misconfigured.
func (c *Converter) DeriveScalar(index []byte) (group.Scalar, error) {
	s, err := c.group.HashToScalar(index, c.dst)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"backend": c.backend,
			"dst_len": len(c.dst),
		}).WithError(err).Error("hash to field failed")
		return nil, fmt.Errorf("%w: %w", ErrHashToField, err)
	}
	c.metrics.derivations.WithLabelValues(c.backend).Inc()
	return s, nil
}

// MustDeriveScalar is like DeriveScalar but panics on failure.
func (c *Converter) MustDeriveScalar(index []byte) group.Scalar {
	s, err := c.DeriveScalar(index)
	if err != nil {
		panic(err)
	}
	return s
}

// ScalarFromBytes decodes a 32-byte big-endian scalar. It fails with
// ErrInvalidBytes unless the value is strictly less than the group order.
// Zero is accepted.
func (c *Converter) ScalarFromBytes(b [group.ScalarSize]byte) (group.Scalar, error) {
	s, ok := c.group.ScalarFromBytes(&b)
	secret.ClearBytes(b[:])
	return fromOptional(c, kindScalar, s, ok)
}

// G1FromBytes decodes a 48-byte compressed G1 point. It fails with
// ErrInvalidBytes unless the bytes encode a point on the curve and in the
// prime-order subgroup. The canonical identity encoding is accepted.
func (c *Converter) G1FromBytes(b [group.G1Size]byte) (group.Point, error) {
	p, ok := c.group.G1FromCompressed(&b)
	return fromOptional(c, kindG1, p, ok)
}

// G2FromBytes decodes a 96-byte compressed G2 point under the same rules
// as G1FromBytes.
func (c *Converter) G2FromBytes(b [group.G2Size]byte) (group.Point, error) {
	p, ok := c.group.G2FromCompressed(&b)
	return fromOptional(c, kindG2, p, ok)
}

// fromOptional turns a backend's (value, ok) result into (value, nil) or
// (zero, ErrInvalidBytes). It is the only place decoders produce errors.
func fromOptional[T any](c *Converter, kind string, v T, ok bool) (T, error) {
	if !ok {
		c.metrics.decodes.WithLabelValues(c.backend, kind, resultRejected).Inc()
		c.log.WithFields(logrus.Fields{
			"kind":    kind,
			"backend": c.backend,
		}).Debug("rejected malformed encoding")
		var zero T
		return zero, ErrInvalidBytes
	}
	c.metrics.decodes.WithLabelValues(c.backend, kind, resultOK).Inc()
	return v, nil
}
