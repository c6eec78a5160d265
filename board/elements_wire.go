package board

// Wire connects a fixed subset of its four lateral sides: polling one
// connected side returns the OR of the others in that subset.
func (e *Element) pollWire(b *Board, side Side) (int, bool) {
	if !e.sides.has(side) {
		return 0, false
	}
	value := 0
	for _, dir := range lateral {
		if dir == side || !e.sides.has(dir) {
			continue
		}
		if b.pollNeighbor(e, dir) != 0 {
			value = 1
			break
		}
	}
	return value, true
}

// WireCross connects n<->s and e<->w independently, ignoring each other.
func (e *Element) pollWireCross(b *Board, side Side) (int, bool) {
	switch side {
	case North:
		return b.pollNeighbor(e, South), true
	case South:
		return b.pollNeighbor(e, North), true
	case East:
		return b.pollNeighbor(e, West), true
	case West:
		return b.pollNeighbor(e, East), true
	}
	return 0, false
}

// WireSpecial pairs sides according to its fixed pairOrder: index i is
// wired straight through to index i^1.
func (e *Element) pollWireSpecial(b *Board, side Side) (int, bool) {
	for i, s := range e.pairOrder {
		if s == side {
			return b.pollNeighbor(e, e.pairOrder[i^1]), true
		}
	}
	return 0, false
}

// Diode only answers on its "to" side, reading its "from" neighbor --
// strictly one-way.
func (e *Element) pollDiode(b *Board, side Side) (int, bool) {
	if side != e.to {
		return 0, false
	}
	return b.pollNeighbor(e, e.from), true
}

// Switch passes n/s straight through; it routes w<->e only when the
// lateral n/s value matches its trigger, otherwise it presents 0.
func (e *Element) pollSwitch(b *Board, side Side) (int, bool) {
	switch side {
	case North:
		return b.pollNeighbor(e, South), true
	case South:
		return b.pollNeighbor(e, North), true
	case West:
		gate := boolToInt(b.pollNeighbor(e, North) != 0 || b.pollNeighbor(e, South) != 0)
		if gate == e.trigger {
			return b.pollNeighbor(e, East), true
		}
		return 0, true
	case East:
		gate := boolToInt(b.pollNeighbor(e, North) != 0 || b.pollNeighbor(e, South) != 0)
		if gate == e.trigger {
			return b.pollNeighbor(e, West), true
		}
		return 0, true
	}
	return 0, false
}

// Pin connects to every non-Pin neighbor unconditionally, but to another
// Pin only when ("same glyph and different layer") or ("same layer and
// different glyph") -- reproduced exactly as spec.md states, odd as it
// reads. We assume incoming polls are valid and only gate outgoing ones.
func (e *Element) pollPin(b *Board, side Side) (int, bool) {
	value := 0
	for _, s := range [2]Side{Up, Down} {
		if value == 1 {
			break
		}
		if s == side {
			continue
		}
		if e.pinReachable(b, s) {
			if b.pollNeighbor(e, s) != 0 {
				value = 1
			}
		}
	}
	for _, s := range lateral {
		if value == 1 {
			break
		}
		if s == side {
			continue
		}
		if e.pinReachable(b, s) {
			if b.pollNeighbor(e, s) != 0 {
				value = 1
			}
		}
	}
	return value, true
}

func (e *Element) pinReachable(b *Board, s Side) bool {
	nb := b.neighbor(e, s)
	if nb == nil || nb.Kind != KindPin {
		return true
	}
	if s == Up || s == Down {
		// same glyph and different layer
		return nb.Lexeme == e.Lexeme
	}
	// same layer and different glyph
	return nb.Lexeme != e.Lexeme
}
