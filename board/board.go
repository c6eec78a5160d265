// Package board implements the Chip circuit evaluation engine: parsing a
// spec into a grid of elements, and clocking that grid one cycle at a
// time. See SPEC_FULL.md for the full contract; this file implements
// spec.md §3-§5.
package board

import (
	"fmt"

	"github.com/golang/glog"
)

// Status is the OR-accumulated per-cycle status bitmask.
type Status int

const (
	ReadHold  Status = 1 << iota // circuit is holding the current input byte
	WriteHold                    // circuit is holding the current output byte
	Terminate                    // circuit requests the run stop after this cycle
)

// Has reports whether every bit in mask is set.
func (s Status) Has(mask Status) bool { return s&mask == mask }

// StorageMode selects the discipline of the shared byte container.
type StorageMode int

const (
	Stack StorageMode = iota // LIFO, the default
	Queue                    // FIFO
)

// maxPollDepth is the soft recursion cap pollNeighbor enforces.
const maxPollDepth = 256

// DebugMsg is one entry of a cycle's debug log.
type DebugMsg struct {
	Lexeme  rune
	Z, Y, X int
	Payload string
}

// RunResult is everything one clock cycle observably produces.
type RunResult struct {
	Status  Status
	Outbits [8]int
	Sleep   float64
	Debug   []DebugMsg
	Jump    *int
}

// Board owns the parsed grid and all per-run and per-cycle state.
type Board struct {
	Cells          [][][]Element // [z][y][x]
	Depth, Height, Width int

	Inbits  [8]int
	Outbits [8]int
	Status  Status
	Sleep   float64
	Debug   []DebugMsg
	Jump    *int
	Age     int

	storageMode StorageMode
	Storage     [][8]int
	readHead    [8]int
	writeHead   [8]int
	ctlRead     map[*Element]bool
	ctlWrite    map[*Element]bool

	curPollDepth  int
	overflowAlert bool

	Stats map[string]int

	// groups[i] holds every element registered for priority group i, in
	// the order spec.md §4.5 names (DummyPrepare/Finalize are handled
	// directly by Run, not via a group slice).
	groups [numGroups][]*Element
}

type group int

const (
	gStorageControl group = iota
	gStorageBit
	gMemory
	gSleep
	gPause
	gDelay
	gBookmark
	gControl
	gOutBit
	gDebug
	numGroups
)

// NewBoard allocates an uninitialized Board for the given storage
// discipline; call Initialize once the grid has been parsed.
func NewBoard(mode StorageMode) *Board {
	return &Board{
		storageMode: mode,
		ctlRead:     map[*Element]bool{},
		ctlWrite:    map[*Element]bool{},
		Stats:       map[string]int{},
	}
}

// Initialize adopts a parsed grid and registers every element that needs
// to fire once per cycle into its priority group.
func (b *Board) Initialize(cells [][][]Element) {
	b.Cells = cells
	b.Depth = len(cells)
	if b.Depth > 0 {
		b.Height = len(cells[0])
		if b.Height > 0 {
			b.Width = len(cells[0][0])
		}
	}

	for z := range b.Cells {
		for y := range b.Cells[z] {
			for x := range b.Cells[z][y] {
				e := &b.Cells[z][y][x]
				if g, ok := registeredGroup(e.Kind); ok {
					b.groups[g] = append(b.groups[g], e)
				}
			}
		}
	}
}

func registeredGroup(k Kind) (group, bool) {
	switch k {
	case KindStorageControl:
		return gStorageControl, true
	case KindStorageBit:
		return gStorageBit, true
	case KindMemory:
		return gMemory, true
	case KindSleep:
		return gSleep, true
	case KindPause:
		return gPause, true
	case KindDelay:
		return gDelay, true
	case KindBookmark:
		return gBookmark, true
	case KindControl:
		return gControl, true
	case KindOutBit:
		return gOutBit, true
	case KindDebug:
		return gDebug, true
	}
	return 0, false
}

// Element looks up the cell at (x,y,z), or nil if it is off-grid.
func (b *Board) Element(x, y, z int) *Element {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height || z < 0 || z >= b.Depth {
		return nil
	}
	return &b.Cells[z][y][x]
}

func (b *Board) neighbor(e *Element, dir Side) *Element {
	x, y, z := e.X, e.Y, e.Z
	switch dir {
	case North:
		y--
	case South:
		y++
	case East:
		x++
	case West:
		x--
	case Up:
		z--
	case Down:
		z++
	}
	return b.Element(x, y, z)
}

// pollNeighbor implements spec.md §4.4: look up the neighbor, apply the
// recursion cap, and collapse both "off grid" and "no connection" to 0.
func (b *Board) pollNeighbor(e *Element, dir Side) int {
	nb := b.neighbor(e, dir)
	if nb == nil {
		return 0
	}
	if b.curPollDepth >= maxPollDepth {
		b.Stats["poll.overflow"]++
		b.overflowAlert = true
		return 0
	}

	b.curPollDepth++
	value, connected := nb.poll(b, dir.Opposite())
	b.curPollDepth--

	b.Stats["poll.neighbor"]++
	if !connected {
		return 0
	}
	nb.Calls++
	return value
}

// fireInternal wraps a registered element's pollInternal call the way
// chiplib.py's Element.__call__ wraps every registered terminal: bump its
// call counter and stats, and if a poll overflow happened anywhere in the
// chain it kicked off, attach the one-shot diagnostic to it.
func (b *Board) fireInternal(e *Element) {
	e.pollInternal(b)
	e.Calls++
	b.Stats["poll.internal"]++
	if b.overflowAlert {
		b.addDebugOn(e, "Stack overflow started here")
		b.overflowAlert = false
	}
}

func (b *Board) addDebugOn(e *Element, msg string) {
	b.Debug = append(b.Debug, DebugMsg{Lexeme: e.Lexeme, Z: e.Z, Y: e.Y, X: e.X, Payload: msg})
}

func (b *Board) addGlobalDebug(msg string) {
	b.Debug = append(b.Debug, DebugMsg{Lexeme: ' ', Payload: msg})
}

// setJump resolves jump conflicts per spec.md §4.5: among non-negative
// requests take the minimum, otherwise take the maximum (closest-to-zero)
// of the negatives.
func (b *Board) setJump(j int) {
	if b.Jump == nil {
		b.Jump = &j
		return
	}
	prev := *b.Jump
	b.addGlobalDebug("[WARN] Multiple jumps were attempted")
	b.Stats["jump.multi"]++
	glog.Warningf("board: jump conflict at age %d: %d vs %d", b.Age, prev, j)

	var resolved int
	switch {
	case j >= 0 && prev >= 0:
		resolved = min(prev, j)
	case j >= 0 && prev < 0:
		resolved = j
	case j < 0 && prev >= 0:
		resolved = prev
	default:
		resolved = max(prev, j)
	}
	b.Jump = &resolved
	b.addGlobalDebug(fmt.Sprintf("Setting jump to %d", resolved))
}

func (b *Board) checkStatus(mask Status) bool { return b.Status&mask != 0 }
func (b *Board) addStatus(mask Status)        { b.Status |= mask }

func (b *Board) readBit(i int) int  { return b.Inbits[i] }
func (b *Board) writeBit(i, v int) {
	if v != 0 {
		b.Outbits[i] = 1
	}
}

func (b *Board) readStorageBit(i int) int { return b.readHead[i] }
func (b *Board) writeStorageBit(i, v int) {
	if v != 0 {
		b.writeHead[i] = 1
	}
}

func (b *Board) storageControlActive(f storageFlavor) bool {
	if f == storageRead {
		return len(b.ctlRead) > 0
	}
	return len(b.ctlWrite) > 0
}

func (b *Board) setStorageControl(e *Element, f storageFlavor, active bool) {
	set := b.ctlWrite
	if f == storageRead {
		set = b.ctlRead
	}
	if active {
		set[e] = true
	} else {
		delete(set, e)
	}
}

// prepareStorage is chiplib.py's DummyPrepare: peek the read end (or
// synthesize zeros if empty) and zero the write head.
func (b *Board) prepareStorage() {
	if len(b.Storage) == 0 {
		b.readHead = [8]int{}
	} else if b.storageMode == Stack {
		b.readHead = b.Storage[len(b.Storage)-1]
	} else {
		b.readHead = b.Storage[0]
	}
	b.writeHead = [8]int{}
}

// finalizeStorage is chiplib.py's DummyFinalize: commit the pop (if
// read-control was active and the container was non-empty) and the push
// (if write-control was active), in that order.
func (b *Board) finalizeStorage() {
	if b.storageControlActive(storageRead) && len(b.Storage) > 0 {
		if b.storageMode == Stack {
			b.Storage = b.Storage[:len(b.Storage)-1]
			b.Stats["stack.pop"]++
		} else {
			b.Storage = b.Storage[1:]
			b.Stats["queue.pop"]++
		}
	}
	if b.storageControlActive(storageWrite) {
		b.Storage = append(b.Storage, b.writeHead)
		if b.storageMode == Stack {
			b.Stats["stack.push"]++
		} else {
			b.Stats["queue.push"]++
		}
	}
}

// Run clocks the board exactly one cycle: it is the only entry point that
// mutates committed state. See spec.md §4.5 for the firing order.
func (b *Board) Run(inbits [8]int) RunResult {
	b.Debug = nil
	b.Inbits = inbits
	b.Outbits = [8]int{}
	b.Status = 0
	b.Sleep = 0
	for e := range b.ctlRead {
		delete(b.ctlRead, e)
	}
	for e := range b.ctlWrite {
		delete(b.ctlWrite, e)
	}
	b.Jump = nil
	b.Age++

	b.prepareStorage() // group 1: DummyPrepare

	for _, e := range b.groups[gStorageControl] {
		b.fireInternal(e)
	}
	for _, e := range b.groups[gStorageBit] {
		b.fireInternal(e)
	}
	for _, e := range b.groups[gMemory] {
		b.fireInternal(e)
	}
	for _, e := range b.groups[gSleep] {
		b.fireInternal(e)
	}
	for _, e := range b.groups[gPause] {
		b.fireInternal(e)
	}
	for _, e := range b.groups[gDelay] {
		b.fireInternal(e)
	}
	for _, e := range b.groups[gBookmark] {
		b.fireInternal(e)
	}
	for _, e := range b.groups[gControl] {
		b.fireInternal(e)
	}
	for _, e := range b.groups[gOutBit] {
		b.fireInternal(e)
	}
	for _, e := range b.groups[gDebug] {
		b.fireInternal(e)
	}

	b.finalizeStorage() // group 12: DummyFinalize

	if b.curPollDepth != 0 {
		// Defensive only: a poll/pollNeighbor mismatch is a bug in an
		// element's poll implementation, not a reachable user condition.
		b.curPollDepth = 0
	}

	return RunResult{
		Status:  b.Status,
		Outbits: b.Outbits,
		Sleep:   b.Sleep,
		Debug:   b.Debug,
		Jump:    b.Jump,
	}
}
