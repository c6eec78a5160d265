package driver

import (
	"fmt"
	"os"
	"sort"

	"github.com/davecgh/go-spew/spew"

	"chip/board"
)

// dumpInterrupt reproduces chip.py's circuit_gen() KeyboardInterrupt
// handler: sorted debug messages, a stack snapshot, age, and stats to
// stderr. At the highest verbosity it also go-spews the whole board, the
// same tool the teacher's cpu/debugger.go uses to dump CPU state.
func dumpInterrupt(b *board.Board, verbose int) {
	if len(b.Debug) > 0 {
		for _, m := range sortedDebug(b.Debug) {
			fmt.Fprintf(os.Stderr, "\n\t\t\t\t\t%c(%d,%d,%d): %s", m.Lexeme, m.Z, m.Y, m.X, m.Payload)
		}
	}
	if verbose > 2 {
		fmt.Fprintln(os.Stderr)
		spew.Fdump(os.Stderr, b)
	}
	fmt.Fprint(os.Stderr, "\nStack: ")
	fmt.Fprint(os.Stderr, stackSnippet(b.Storage, verbose > 1))
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
