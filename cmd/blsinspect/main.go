// Command blsinspect derives scalars and validates BLS12-381 encodings from
// the command line.
//
// Usage:
//
//	blsinspect [-backend gnark|blst] [-dst tag] [-log-level level] <command> [args]
//
// Commands:
//
//	derive [-hex] <index>...  print the scalar derived from each index
//	scalar <0xhex>            validate a 32-byte secret key encoding
//	g1 <0xhex>                validate a 48-byte compressed G1 point
//	g2 <0xhex>                validate a 96-byte compressed G2 point
//	pubkey <0xhex>            print the public key of a secret key
//
// The exit status is 1 when an encoding is rejected and 2 on usage errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/f3rmion/blsconv/convert"
	"github.com/f3rmion/blsconv/group"
	"github.com/f3rmion/blsconv/keys"
	"github.com/f3rmion/blsconv/secret"
	"github.com/sirupsen/logrus"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cli struct {
	conv   *convert.Converter
	keys   *keys.Keys
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("blsinspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		backend  string
		dst      string
		logLevel string
	)
	fs.StringVar(&backend, "backend", "gnark", "Arithmetic backend ("+strings.Join(backendNames(), ", ")+")")
	fs.StringVar(&dst, "dst", convert.DefaultDST, "Domain separation tag for derive")
	fs.StringVar(&logLevel, "log-level", "warn", "Log level")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitUsage
	}
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(level)

	newGroup, ok := backends[backend]
	if !ok {
		fmt.Fprintf(stderr, "unknown backend %q (available: %s)\n", backend, strings.Join(backendNames(), ", "))
		return exitUsage
	}

	conv, err := convert.New(newGroup(), convert.WithDST([]byte(dst)), convert.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitUsage
	}
	logger.WithField("backend", backend).Debug("converter ready")

	c := &cli{
		conv:   conv,
		keys:   keys.New(conv),
		stdout: stdout,
		stderr: stderr,
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return exitUsage
	}

	switch cmd, cmdArgs := rest[0], rest[1:]; cmd {
	case "derive":
		err = c.derive(cmdArgs)
	case "scalar", "g1", "g2":
		err = c.validate(cmd, cmdArgs)
	case "pubkey":
		err = c.pubkey(cmdArgs)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		return exitUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, convert.ErrInvalidBytes):
		fmt.Fprintln(stderr, err.Error())
		return exitRejected
	case errors.Is(err, errUsage):
		return exitUsage
	default:
		fmt.Fprintln(stderr, err.Error())
		return exitUsage
	}
}

func (c *cli) derive(args []string) error {
	fs := flag.NewFlagSet("derive", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	asHex := fs.Bool("hex", false, "Indices are 0x-prefixed hex")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(c.stderr, "derive: at least one index required")
		return errUsage
	}

	for _, arg := range fs.Args() {
		index := []byte(arg)
		if *asHex {
			b, err := hexutil.Decode(arg)
			if err != nil {
				return fmt.Errorf("derive: index %q: %w", arg, err)
			}
			index = b
		}
		s, err := c.conv.DeriveScalar(index)
		if err != nil {
			return err
		}
		b := s.Bytes()
		fmt.Fprintf(c.stdout, "%s\t%s\n", arg, hexutil.Encode(b[:]))
	}
	return nil
}

func (c *cli) validate(kind string, args []string) error {
	if len(args) != 1 {
		fmt.Fprintf(c.stderr, "%s: exactly one encoding required\n", kind)
		return errUsage
	}
	raw, err := hexutil.Decode(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}
	defer secret.ClearBytes(raw)

	switch kind {
	case "scalar":
		var b [group.ScalarSize]byte
		if len(raw) != len(b) {
			return convert.ErrInvalidBytes
		}
		copy(b[:], raw)
		s, err := c.conv.ScalarFromBytes(b)
		secret.ClearBytes(b[:])
		if err != nil {
			return err
		}
		secret.ClearScalar(s)
	case "g1":
		var b [group.G1Size]byte
		if len(raw) != len(b) {
			return convert.ErrInvalidBytes
		}
		copy(b[:], raw)
		if _, err := c.conv.G1FromBytes(b); err != nil {
			return err
		}
	case "g2":
		var b [group.G2Size]byte
		if len(raw) != len(b) {
			return convert.ErrInvalidBytes
		}
		copy(b[:], raw)
		if _, err := c.conv.G2FromBytes(b); err != nil {
			return err
		}
	}
	fmt.Fprintln(c.stdout, "valid")
	return nil
}

func (c *cli) pubkey(args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(c.stderr, "pubkey: exactly one secret key required")
		return errUsage
	}
	raw, err := hexutil.Decode(args[0])
	if err != nil {
		return fmt.Errorf("pubkey: %w", err)
	}
	defer secret.ClearBytes(raw)

	var b [group.ScalarSize]byte
	if len(raw) != len(b) {
		return convert.ErrInvalidBytes
	}
	copy(b[:], raw)
	sk, err := c.keys.SecretKeyFromBytes(b)
	secret.ClearBytes(b[:])
	if err != nil {
		return err
	}
	defer sk.Zeroize()

	pk := sk.PublicKey().Bytes()
	fmt.Fprintln(c.stdout, hexutil.Encode(pk[:]))
	return nil
}
