package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chip/board"
)

func TestRunEchoesStdinToStdout(t *testing.T) {
	spec := "A-a\nB-b\nC-c\nD-d\nE-e\nF-f\nG-g\nH-h"
	cfg := Config{ChipSpec: spec, StorageMode: board.Stack}

	var out bytes.Buffer
	res, err := Run(cfg, &out, strings.NewReader("Hi"))
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "Hi", out.String())
}

func TestRunHonorsCutoffBytes(t *testing.T) {
	spec := "*-a"
	cfg := Config{ChipSpec: spec, StorageMode: board.Stack, CutoffBytes: 3}

	var out bytes.Buffer
	res, err := Run(cfg, &out, strings.NewReader("xxxxxxxxxx"))
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, []byte{1, 1, 1}, out.Bytes())
}

func TestRunStopsOnTerminate(t *testing.T) {
	spec := "*-t"
	cfg := Config{ChipSpec: spec, StorageMode: board.Stack}

	var out bytes.Buffer
	res, err := Run(cfg, &out, strings.NewReader("anything"))
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, []byte{0x00}, out.Bytes())
}

func TestRunGeneratesWithoutStdin(t *testing.T) {
	spec := "*-t"
	cfg := Config{
		ChipSpec:     spec,
		StorageMode:  board.Stack,
		WithoutStdin: true,
		Generator:    "00",
	}

	var out bytes.Buffer
	res, err := Run(cfg, &out, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, []byte{0x00}, out.Bytes())
}

// TestRunReusesHeldByteAcrossReadHoldCycles guards against regressing
// inByte to its zero value on a READ_HOLD cycle: 'B' gates 's' (read-hold)
// directly and, one cycle later via a delay, gates 't' (terminate). Both
// cycles run on the single byte 0x03 (A=1, B=1), so the second output must
// equal the first -- if inByte isn't carried over, the second cycle would
// read zero bits and emit 0x00 instead.
func TestRunReusesHeldByteAcrossReadHoldCycles(t *testing.T) {
	spec := "A-a  \nB-s  \nB-Z-t"
	cfg := Config{ChipSpec: spec, StorageMode: board.Stack}

	var out bytes.Buffer
	res, err := Run(cfg, &out, strings.NewReader(string([]byte{0x03})))
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, []byte{0x01, 0x01}, out.Bytes())
}

func TestGeneratorIncrementsLowNibble(t *testing.T) {
	// low digit tracks age's low nibble directly; high digit is fixed.
	g := newGenerator("5I")
	assert.Equal(t, byte(0x50), g.next())
	assert.Equal(t, byte(0x51), g.next())
	assert.Equal(t, byte(0x52), g.next())
}

func TestGeneratorDecrementsWithJ(t *testing.T) {
	g := newGenerator("5J")
	assert.Equal(t, byte(0x5f), g.next())
	assert.Equal(t, byte(0x5e), g.next())
}

func TestMatchesEscapeOnSuffix(t *testing.T) {
	seqs := [][]byte{{0x03}, {0x04}}
	assert.True(t, matchesEscape([]byte{'a', 'b', 0x03}, seqs))
	assert.False(t, matchesEscape([]byte{'a', 'b', 'c'}, seqs))
}

func TestApplyJumpAbsoluteAndRelative(t *testing.T) {
	assert.Equal(t, 5, applyJump(10, 5))
	assert.Equal(t, 7, applyJump(10, -3))
	assert.Equal(t, 0, applyJump(2, -10))
}
