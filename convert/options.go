package convert

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// DefaultDST is the domain separation tag used when none is configured.
const DefaultDST = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_NUL_"

// maxDSTLen bounds the tag length accepted by expand_message_xmd.
const maxDSTLen = 255

// Config holds the settings of a Converter. The zero value is completed
// with defaults by New.
type Config struct {
	// DST is the domain separation tag for DeriveScalar.
	DST []byte
	// Logger receives decode rejections at debug level and hashing
	// failures at error level. Payload bytes are never logged.
	Logger logrus.FieldLogger
	// Registerer, if set, receives the converter's counters.
	Registerer prometheus.Registerer
}

// Option configures a Converter.
type Option func(*Config)

// WithDST sets the domain separation tag. The slice is copied.
func WithDST(dst []byte) Option {
	return func(c *Config) {
		c.DST = append([]byte(nil), dst...)
	}
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithRegisterer registers the converter's metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registerer = reg
	}
}

func defaultLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}
