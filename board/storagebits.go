package board

import (
	"chip/bits"
)

// readHeadUint reads the current storage read head as an unsigned,
// little-endian integer -- used by Pause to turn a popped/peeked byte
// into a sleep duration.
func readHeadUint(b *Board) uint {
	return bits.Vector(b.readHead).Uint()
}
