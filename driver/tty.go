package driver

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// StdinIsTTY reports whether stdin is an interactive terminal -- used both
// by driver.Run (to decide whether to enter raw mode) and by cmd/chip (to
// decide whether the default ^C/^D escapes apply).
func StdinIsTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd())
}

// DefaultEscapeSeqs returns chip's built-in raw-mode stop sequences.
func DefaultEscapeSeqs() [][]byte {
	return [][]byte{{0x03}, {0x04}}
}

// rawMode puts stdin into raw mode when noBuffer is set and stdin is a
// real terminal. The returned restore func is always safe to call,
// including when raw mode was never entered.
func rawMode(noBuffer bool) func() {
	if !noBuffer || !StdinIsTTY() {
		return func() {}
	}
	fd := int(os.Stdin.Fd())
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}
	}
	return func() { term.Restore(fd, prev) }
}
