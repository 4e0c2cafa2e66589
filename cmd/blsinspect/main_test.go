package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/f3rmion/blsconv/group/grouptest"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestDerive(t *testing.T) {
	code, out, _ := runCLI(t, "derive", "abc")
	require.Equal(t, exitOK, code)
	require.Equal(t, "abc\t0x68e0e541324ac23eb6db450e4fdf8f235f6b07bd06b5a3db98eb883ae49d68b5\n", out)

	code, out, _ = runCLI(t, "-dst", "T1", "derive", "-hex", "0x616263", "0x")
	require.Equal(t, exitOK, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "0x616263\t0x3ffefdf88c13ed7906f7702cf7e5a31137fed3e7629998f0e4c70aa8dc37080d", lines[0])
	require.Equal(t, "0x\t0x4a216571d30de147f40c839496109f6113ed9b25ddd4f704dfdc795da2e17004", lines[1])

	code, _, _ = runCLI(t, "derive")
	require.Equal(t, exitUsage, code)
}

func TestValidate(t *testing.T) {
	code, out, _ := runCLI(t, "g1", "0x"+grouptest.G1GeneratorHex)
	require.Equal(t, exitOK, code)
	require.Equal(t, "valid\n", out)

	code, _, _ = runCLI(t, "g2", "0x"+grouptest.G2GeneratorHex)
	require.Equal(t, exitOK, code)

	code, _, errOut := runCLI(t, "g1", "0x"+grouptest.InvalidG1["NotOnCurve"])
	require.Equal(t, exitRejected, code)
	require.Contains(t, errOut, "malformed encoding")

	code, _, _ = runCLI(t, "scalar", "0x"+grouptest.OrderHex)
	require.Equal(t, exitRejected, code)

	code, _, _ = runCLI(t, "scalar", "0x00")
	require.Equal(t, exitRejected, code)

	code, _, _ = runCLI(t, "scalar", "nothex")
	require.Equal(t, exitUsage, code)
}

func TestPubkey(t *testing.T) {
	one := "0x" + strings.Repeat("00", 31) + "01"
	code, out, _ := runCLI(t, "pubkey", one)
	require.Equal(t, exitOK, code)
	require.Equal(t, "0x"+grouptest.G1GeneratorHex+"\n", out)

	code, _, _ = runCLI(t, "pubkey", "0x"+grouptest.OrderHex)
	require.Equal(t, exitRejected, code)
}

func TestUsage(t *testing.T) {
	code, _, _ := runCLI(t)
	require.Equal(t, exitUsage, code)

	code, _, errOut := runCLI(t, "-backend", "nope", "derive", "x")
	require.Equal(t, exitUsage, code)
	require.Contains(t, errOut, "unknown backend")

	code, _, _ = runCLI(t, "-log-level", "loud", "derive", "x")
	require.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "frobnicate")
	require.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "-dst", "", "derive", "x")
	require.Equal(t, exitUsage, code)
}
