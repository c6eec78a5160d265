package board

import "math/rand"

// randomBit returns a uniform 0/1, one call per Random element per cycle.
func (b *Board) randomBit() int {
	return rand.Intn(2)
}
