// Command chip runs a Chip circuit-picture spec, reading bytes from
// stdin and writing bytes to stdout. Flags mirror original_source/chip.py's
// init(): the teacher (hejops-gone) ships no cmd/main of its own, so this
// entrypoint is grounded directly on chip.py's argparse surface, wired up
// with spf13/pflag in place of argparse.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"chip/board"
	"chip/driver"
	"chip/tui"
)

const version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		cutoff     = pflag.IntP("cutoff", "c", -1, "stop after N bytes; <= 0 disables")
		escSeqs    = pflag.StringArrayP("escape", "e", nil, "raw-mode escape sequence; repeatable")
		generator  = pflag.StringP("generate", "g", "", "generator template for exhausted input (two hex digits, or I/J/K)")
		genOne     = pflag.BoolP("generate-one", "o", false, "shorthand for --generate=FF")
		genZero    = pflag.BoolP("generate-zero", "z", false, "shorthand for --generate=00")
		noBuffer   = pflag.BoolP("immediate", "i", false, "flush every cycle and use raw tty mode")
		newline    = pflag.BoolP("extra-newline", "n", false, "emit a trailing newline regardless of how the run ends")
		verbose    = pflag.CountP("verbose", "v", "cumulative verbosity: 1=I/O, 2=+stats, 3=+full board dump on interrupt")
		showVer    = pflag.BoolP("version", "V", false, "show the interpreter's version and exit")
		withoutIn  = pflag.BoolP("without-stdin", "w", false, "never read stdin; use --generate from the start")
		queueMode  = pflag.BoolP("queue", "q", false, "use FIFO (queue) storage discipline instead of the default LIFO stack")
		viewer     = pflag.Bool("view", false, "after the run, open an interactive board viewer")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options] <chipspec>\n\n", os.Args[0])
		pflag.PrintDefaults()
		fmt.Fprintln(os.Stderr)
		fmt.Fprint(os.Stderr, board.RegistryListing())
	}
	pflag.Parse()

	if *showVer {
		fmt.Println("Chip interpreter v" + version)
		return 0
	}

	if pflag.NArg() < 1 {
		pflag.Usage()
		return 2
	}
	specPath := pflag.Arg(0)
	specBytes, err := os.ReadFile(specPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chip: %s\n", err)
		return 2
	}

	gen := *generator
	switch {
	case *genOne:
		gen = "FF"
	case *genZero:
		gen = "00"
	}
	if *withoutIn && gen == "" {
		gen = "00"
	}

	// Defaults apply when in raw mode on a tty, same as chip.py's init().
	// A non-empty -e is added on top of the defaults; an explicit empty
	// -e '' clears them instead -- only an empty value means "replace",
	// not "append".
	var seqs [][]byte
	if *noBuffer && driver.StdinIsTTY() {
		seqs = driver.DefaultEscapeSeqs()
	}
	for _, s := range *escSeqs {
		if s == "" {
			seqs = nil
			break
		}
	}
	for _, s := range *escSeqs {
		if s != "" {
			seqs = append(seqs, driver.ParseEscapeSeq(s))
		}
	}

	mode := board.Stack
	if *queueMode {
		mode = board.Queue
	}

	cfg := driver.Config{
		ChipSpec:     string(specBytes),
		StorageMode:  mode,
		CutoffBytes:  *cutoff,
		EscSeqs:      seqs,
		Generator:    gen,
		Newline:      *newline,
		NoBuffer:     *noBuffer,
		Verbose:      *verbose,
		WithoutStdin: *withoutIn,
	}

	res, err := driver.Run(cfg, os.Stdout, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chip: %s\n", err)
		return 1
	}

	if *viewer && res.Board != nil {
		if err := tui.Show(res.Board); err != nil {
			fmt.Fprintf(os.Stderr, "chip: viewer: %s\n", err)
		}
	}

	return res.ExitCode
}
