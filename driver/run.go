package driver

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/golang/glog"

	"chip/bits"
	"chip/board"
)

// Result is the process-level outcome of a Run.
type Result struct {
	ExitCode int
	Board    *board.Board // the board as it stood at the end of the run, for tui.Show
}

// Run drives a board from in to out per cfg, implementing spec.md §6's
// stdin/stdout contract. Grounded on chip.py's run()/circuit_gen(), merged
// into one loop since board.Board.Run already plays the role of
// circuit_gen's send/yield protocol.
func Run(cfg Config, out io.Writer, in io.Reader) (Result, error) {
	b, warnings, err := board.Build(cfg.ChipSpec, cfg.StorageMode)
	for _, w := range warnings {
		glog.Warningf("%d:%d WARN: %s", w.Row, w.Col, w.Message)
	}
	if err != nil {
		return Result{ExitCode: 2}, fmt.Errorf("driver: %w", err)
	}
	if cfg.Verbose > 1 {
		glog.Infof("board parsed: depth=%d height=%d width=%d", b.Depth, b.Height, b.Width)
	}

	var gen *generator
	if cfg.Generator != "" {
		gen = newGenerator(cfg.Generator)
	}
	usingGenerator := cfg.WithoutStdin

	restore := rawMode(cfg.NoBuffer)
	defer restore()

	bufIn := bufio.NewReader(in)
	bufOut := bufio.NewWriter(out)
	defer bufOut.Flush()

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	if cfg.Verbose > 0 {
		fmt.Fprintln(os.Stderr, "        HGFEDCBA        hgfedcba")
	}

	history := make([]byte, 0, 256)
	index := 0
	totalBytes := 0
	status := board.Status(0)
	unnatural := false
	var inByte byte // persists across READ_HOLD cycles, per chip.py's run()

runLoop:
	for {
		select {
		case <-interrupted:
			unnatural = true
			dumpInterrupt(b, cfg.Verbose)
			break runLoop
		default:
		}

		if !status.Has(board.ReadHold) {
			if cfg.CutoffBytes > 0 && totalBytes >= cfg.CutoffBytes {
				break runLoop
			}
			if index < len(history) {
				inByte = history[index]
			} else {
				value, eof, rerr := readByte(bufIn, gen, usingGenerator)
				if rerr != nil {
					return Result{ExitCode: 1, Board: b}, fmt.Errorf("driver: %w", rerr)
				}
				if eof {
					if gen == nil {
						break runLoop
					}
					value = gen.next()
					usingGenerator = true
				}
				inByte = value
				history = append(history, inByte)
				if matchesEscape(history, cfg.EscSeqs) {
					break runLoop
				}
			}
			index++
			totalBytes++
		}

		inbits := [8]int(bits.FromByte(inByte))
		if cfg.Verbose > 0 {
			printInput(status, inByte, inbits)
		}

		result := b.Run(inbits)
		status = result.Status

		outByte := bits.Vector(result.Outbits).ToByte()
		if cfg.Verbose > 0 {
			printOutput(cfg.Verbose, b, status, outByte, result)
		}
		if !status.Has(board.WriteHold) {
			bufOut.WriteByte(outByte)
			if cfg.NoBuffer {
				bufOut.Flush()
			}
		}

		if status.Has(board.Terminate) {
			break runLoop
		}
		if result.Sleep > 0 {
			time.Sleep(time.Duration(result.Sleep * float64(time.Second)))
		}
		if result.Jump != nil {
			index = applyJump(index, *result.Jump)
		}
	}

	if cfg.Verbose > 1 {
		printStats(b)
	}
	if cfg.Newline {
		bufOut.WriteByte('\n')
	}

	exitCode := 0
	if unnatural {
		exitCode = 1
	}
	return Result{ExitCode: exitCode, Board: b}, nil
}

// applyJump implements spec.md §9's jump/history rule: non-negative jumps
// set the cursor absolutely, negative jumps move it relatively, clamped at
// zero.
func applyJump(index, jump int) int {
	if jump >= 0 {
		return jump
	}
	index += jump
	if index < 0 {
		return 0
	}
	return index
}

func readByte(r *bufio.Reader, gen *generator, usingGenerator bool) (value byte, eof bool, err error) {
	if usingGenerator && gen != nil {
		return gen.next(), false, nil
	}
	b, err := r.ReadByte()
	if err == io.EOF {
		return 0, true, nil
	}
	if err != nil {
		return 0, false, err
	}
	return b, false, nil
}
