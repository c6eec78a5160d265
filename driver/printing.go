package driver

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"chip/board"
)

// displayByte renders a byte the way chip.py's run() does: printable
// characters as themselves, control characters and DEL as a replacement
// glyph.
func displayByte(b byte) string {
	if b < 32 || b == 127 {
		return "�"
	}
	return string(rune(b))
}

// bitsString renders an 8-bit vector most-significant-bit first, matching
// chip.py's `inbits[::-1]` printing.
func bitsString(bits []int) string {
	out := make([]byte, len(bits))
	for i, v := range bits {
		out[len(bits)-1-i] = byte('0' + v)
	}
	return string(out)
}

func printInput(status board.Status, inByte byte, inbits [8]int) {
	if status.Has(board.ReadHold) {
		fmt.Fprint(os.Stderr, "                  →")
		return
	}
	fmt.Fprintf(os.Stderr, "     %s\t%s  →", displayByte(inByte), bitsString(inbits[:]))
}

func printOutput(verbose int, b *board.Board, status board.Status, outByte byte, result board.RunResult) {
	if status.Has(board.WriteHold) {
		fmt.Fprint(os.Stderr, "             ")
	} else {
		fmt.Fprintf(os.Stderr, "  %s\t%s", displayByte(outByte), bitsString(result.Outbits[:]))
	}
	if verbose > 1 {
		printCycleDebug(b, result)
	}
	fmt.Fprintln(os.Stderr)
}

func printCycleDebug(b *board.Board, result board.RunResult) {
	if len(result.Debug) > 0 {
		for _, m := range sortedDebug(result.Debug) {
			fmt.Fprintf(os.Stderr, "\n\t\t\t\t\t%c(%d,%d,%d): %s", m.Lexeme, m.Z, m.Y, m.X, m.Payload)
		}
	}
	if len(b.Storage) > 0 {
		fmt.Fprint(os.Stderr, "\n\t\t\t\t\tStack: ")
		fmt.Fprint(os.Stderr, stackSnippet(b.Storage, false))
	}
}

func sortedDebug(msgs []board.DebugMsg) []board.DebugMsg {
	out := append([]board.DebugMsg(nil), msgs...)
	sort.Slice(out, func(i, j int) bool {
		return debugKey(out[i]) < debugKey(out[j])
	})
	return out
}

func debugKey(m board.DebugMsg) string {
	return fmt.Sprintf("%c%08d%08d%08d%s", m.Lexeme, m.Z, m.Y, m.X, m.Payload)
}

// stackSnippet renders the storage container starting from its most
// recently pushed entry, capped to 8 entries unless full is requested --
// chip.py's run()/circuit_gen() stack-printing helper. For a stack that is
// the top; for a queue it is the back, not the front that the next pop
// removes.
func stackSnippet(storage [][8]int, full bool) string {
	if len(storage) == 0 {
		return "empty"
	}
	n := len(storage)
	limit := n
	if !full && n >= 9 {
		limit = 8
	}
	parts := make([]string, limit)
	for i := 0; i < limit; i++ {
		word := storage[n-1-i]
		parts[i] = bitsString(word[:])
	}
	out := strings.Join(parts, " ")
	if limit < n {
		out += fmt.Sprintf(" ... %d more", n-limit)
	}
	return out
}

func printStats(b *board.Board) {
	fmt.Fprintf(os.Stderr, "\nAge: %d", b.Age)
	if len(b.Stats) > 0 {
		fmt.Fprint(os.Stderr, "\nStats: ")
		keys := make([]string, 0, len(b.Stats))
		for k := range b.Stats {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(os.Stderr, "\n%24d %s", b.Stats[k], k)
		}
	}
	fmt.Fprintln(os.Stderr)
}
