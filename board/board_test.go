package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run is a small helper: build the spec, clock it once per inbits entry in
// sequence, and return every RunResult in order.
func run(t *testing.T, spec string, mode StorageMode, inbitSeq [][8]int) []RunResult {
	t.Helper()
	b, warnings, err := Build(spec, mode)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	results := make([]RunResult, len(inbitSeq))
	for i, in := range inbitSeq {
		results[i] = b.Run(in)
	}
	return results
}

func TestEchoWireConnectsInBitToOutBit(t *testing.T) {
	// A straight wire run: InBit A feeds OutBit a unchanged, every cycle.
	spec := "A-a"

	highs := [8]int{1, 0, 0, 0, 0, 0, 0, 0}
	zeros := [8]int{}

	results := run(t, spec, Stack, [][8]int{highs, zeros, highs})
	assert.Equal(t, 1, results[0].Outbits[0])
	assert.Equal(t, 0, results[1].Outbits[0])
	assert.Equal(t, 1, results[2].Outbits[0])
}

func TestTerminatorStopsAfterOneHighCycle(t *testing.T) {
	// InBit A drives a WriteHold+Terminate control (T) over a wire.
	spec := "A-T"

	results := run(t, spec, Stack, [][8]int{{1}})
	assert.True(t, results[0].Status.Has(Terminate))
	assert.True(t, results[0].Status.Has(WriteHold))
}

func TestConstantOutputFromSource(t *testing.T) {
	// Source (*) always presents high; wired straight to OutBit a it drives
	// a constant 1 regardless of input.
	spec := "*-a"

	results := run(t, spec, Stack, [][8]int{{}, {1}, {}})
	for _, r := range results {
		assert.Equal(t, 1, r.Outbits[0])
	}
}

func TestDelayLatchesOneGlyphPerCycle(t *testing.T) {
	// A-Z-a: the Delay element (Z) only reflects what it was shown last
	// cycle, so the echoed bit lags the input by one cycle.
	spec := "A-Z-a"

	highs := [8]int{1}
	zeros := [8]int{}

	results := run(t, spec, Stack, [][8]int{highs, zeros, zeros})
	assert.Equal(t, 0, results[0].Outbits[0], "delay has nothing latched on the first cycle")
	assert.Equal(t, 1, results[1].Outbits[0], "second cycle echoes the first cycle's input")
	assert.Equal(t, 0, results[2].Outbits[0])
}

func TestStackStorageRoundTrips(t *testing.T) {
	// A pushes into the shared container via storage-bit 0, gated by
	// write-control (9); B reads storage-bit 0 back out, gated by
	// read-control (8).
	spec := "A-9\nA-0\nB-8\nB-0-b"

	// cycle 1: A=1, B=0 -> push 1 into storage bit 0, nothing read yet
	// cycle 2: A=0, B=1 -> pop that word back out, storage bit 0 -> b
	results := run(t, spec, Stack, [][8]int{
		{1, 0},
		{0, 1},
	})
	assert.Equal(t, 0, results[0].Outbits[1])
	assert.Equal(t, 1, results[1].Outbits[1])
}

func TestBookmarkJumpsBackOnFallingEdge(t *testing.T) {
	// A bookmark (V) wired straight to InBit A: a falling edge on A
	// requests a jump back to the age the edge rose.
	spec := "A-V"

	results := run(t, spec, Stack, [][8]int{{1}, {1}, {0}})
	require.NotNil(t, results[2].Jump)
	// rising edge marked age 1; falling edge lands at age 3, so the
	// requested jump is -(3+1-1).
	assert.Equal(t, -3, *results[2].Jump)
}

func TestSpecReaderStripsCommentsAndValidatesGlyphs(t *testing.T) {
	text := "#!/usr/bin/env chip\n" +
		"=title comment\n" +
		"A-a&-a\n"

	grid, warnings := ReadSpec(text)
	require.Len(t, grid, 1)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "not a valid character")

	row := string(grid[0][0])
	assert.Equal(t, "A-a -a", row)
}

func TestSpecReaderSplitsMultipleLayers(t *testing.T) {
	text := "A-a\n=\nB-b\n"

	grid, warnings := ReadSpec(text)
	assert.Empty(t, warnings)
	require.Len(t, grid, 2)
	assert.Contains(t, string(grid[0][0]), "A-a")
	assert.Contains(t, string(grid[1][0]), "B-b")
}

func TestLexemeRegistryHasNoConflicts(t *testing.T) {
	for _, r := range []rune{'A', 'a', '*', '+', 'V', 'Z', 'z', 'M', 'm'} {
		kind, ok := LookupLexeme(r)
		assert.True(t, ok, "expected %q to be registered", r)
		assert.NotEqual(t, KindEmpty, kind)
	}
	assert.False(t, IsValidLexeme('\t'))
}
