package cli

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestPrintCommand(t *testing.T) {
	out, err := run(t, "print", "--expr", "(x ^ 2)", "--notation", "aos")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "(x ^ 2)", lines[0])
	assert.Equal(t, "(2 * x)", lines[1])
}

func TestPrintCrossNotation(t *testing.T) {
	out, err := run(t, "print", "--expr", "x 2 ^", "--notation", "rpn", "--out", "aos")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "(x ^ 2)", lines[0])
}

func TestPrintMalformedIsSilent(t *testing.T) {
	out, err := run(t, "print", "--expr", "x +", "--notation", "rpn")
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(out))
}

func TestPrintUnknownNotation(t *testing.T) {
	_, err := run(t, "print", "--expr", "x", "--notation", "infix")
	require.Error(t, err)
}

func TestAreaCommand(t *testing.T) {
	out, err := run(t, "area", "--expr", "(x ^ 2)", "--rule", "trapezoidal")
	require.NoError(t, err)

	v, perr := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, perr)
	assert.InDelta(t, 83.33, v, 3)
}

func TestAreaMalformedIsNaN(t *testing.T) {
	out, err := run(t, "area", "--expr", "foo(x)", "--notation", "aos")
	require.NoError(t, err)
	assert.Equal(t, "NaN", strings.TrimSpace(out))
}

func TestAreaUnknownRule(t *testing.T) {
	_, err := run(t, "area", "--expr", "x", "--rule", "simpson")
	require.Error(t, err)
}

func TestSampleJSON(t *testing.T) {
	out, err := run(t, "sample", "--expr", "x", "--from", "0", "--to", "1", "--step", "0.5", "--format", "json")
	require.NoError(t, err)

	var report SampleReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "x", report.Expression)
	require.Len(t, report.Points, 3)
	assert.Equal(t, 1.0, report.Points[2].Y)
}

func TestSampleText(t *testing.T) {
	out, err := run(t, "sample", "--expr", "x 2 ^", "--notation", "rpn",
		"--from", "0", "--to", "2", "--step", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2\t4", lines[2])
}

func TestSampleDerivative(t *testing.T) {
	out, err := run(t, "sample", "--expr", "(x ^ 2)", "--derivative",
		"--from", "3", "--to", "3", "--step", "1")
	require.NoError(t, err)
	assert.Equal(t, "3\t6", strings.TrimSpace(out))
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "mathplot "))
}
