package driver

import (
	"math/rand"

	"chip/mask"
)

// generator turns a two-character template into an endless byte sequence,
// one byte per call: each position is a fixed hex digit, or 'I'/'J'/'K' for
// increment/decrement/random, keyed off a local cycle counter. Ported from
// chip.py's prepareGenerator.
type generator struct {
	template [2]byte
	age      byte
}

func newGenerator(template string) *generator {
	g := &generator{}
	raw := []byte(template)
	for i := 0; i < 2 && i < len(raw); i++ {
		c := raw[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		g.template[i] = c
	}
	return g
}

// next produces the generator's next byte and advances its internal age.
// The high nibble comes from the age's own high nibble (mask.First), the
// low nibble from its low nibble (mask.Last) -- the one place the spec's
// bit arithmetic needs sub-byte range extraction rather than a flat
// 8-element vector, so it reuses the teacher's mask package instead of
// bits.Vector.
func (g *generator) next() byte {
	hiNibble := mask.First(g.age, mask.I4)
	loNibble := mask.Last(g.age, mask.I4)

	hi := g.digit(g.template[0], hiNibble)
	lo := g.digit(g.template[1], loNibble)

	g.age++
	return hi<<4 | lo
}

func (g *generator) digit(template byte, nibble byte) byte {
	switch template {
	case 'I':
		return nibble
	case 'J':
		return 15 - nibble
	case 'K':
		return byte(rand.Intn(16))
	default:
		return hexValue(template)
	}
}

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
