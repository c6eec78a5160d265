package board

// Source always presents 1 on every lateral side.
func (e *Element) pollSource(side Side) (int, bool) {
	if side == North || side == South || side == East || side == West {
		return 1, true
	}
	return 0, false
}

// Pulse presents 1 on every lateral side only during the very first
// clocked cycle (age 1; age 0 is pre-run setup), 0 thereafter.
func (e *Element) pollPulse(b *Board, side Side) (int, bool) {
	if side != North && side != South && side != East && side != West {
		return 0, false
	}
	if b.Age == 1 {
		return 1, true
	}
	return 0, true
}

// Random presents a uniform coin flip, memoized once per cycle so that
// repeated polls within the same cycle agree.
func (e *Element) pollRandom(b *Board, side Side) (int, bool) {
	if side != North && side != South && side != East && side != West {
		return 0, false
	}
	if e.memoAge != b.Age {
		e.memoAge = b.Age
		e.memoValue = b.randomBit()
	}
	return e.memoValue, true
}

// Cache memoizes each inbound lateral direction separately per cycle. 'K'
// presents, on any side, the OR of the *other three* directions; 'k'
// presents, on a side, only the directly opposite neighbor.
func (e *Element) pollCache(b *Board, side Side) (int, bool) {
	idx := sideIndex(side)
	if idx < 0 {
		return 0, false
	}

	fetch := func(dir Side) int {
		i := sideIndex(dir)
		if e.cacheAge[i] != b.Age {
			e.cacheAge[i] = b.Age
			e.cacheValue[i] = b.pollNeighbor(e, dir)
			b.Stats["cache.miss"]++
		} else {
			b.Stats["cache.hit"]++
		}
		return e.cacheValue[i]
	}

	value := 0
	if e.Lexeme == 'k' {
		value = fetch(side.Opposite())
	} else {
		for _, dir := range lateral {
			if dir == side {
				continue
			}
			if fetch(dir) != 0 {
				value = 1
			}
		}
	}
	return value, true
}

// pollInternalDelay latches, once per cycle, currValue <- nextValue and
// computes the new nextValue from this cycle's inputs.
func (e *Element) pollInternalDelay(b *Board) {
	if e.delayAge != b.Age {
		e.curr = e.next
		e.delayAge = b.Age
		n := b.pollNeighbor(e, North)
		in := b.pollNeighbor(e, e.in)
		e.next = boolToInt(n != 0 || in != 0)
	}
}

// pollDelay is re-entrant: it first runs this cycle's latch (a no-op once
// pollInternalDelay has run this cycle), then reports e.curr, which holds
// the value latched last cycle.
func (e *Element) pollDelay(b *Board, side Side) (int, bool) {
	if side != South && side != e.out {
		return 0, false
	}
	e.pollInternalDelay(b)
	if e.delayAge == b.Age {
		return e.curr, true
	}
	return e.next, true
}

// pollInternalMemory is also invoked lazily from poll itself (see below),
// matching chiplib.py's Memory.poll calling self.pollInternal() on every
// read -- the latch condition is cheap and idempotent within a cycle.
func (e *Element) pollInternalMemory(b *Board) {
	if b.pollNeighbor(e, North) != 0 || b.pollNeighbor(e, South) != 0 {
		e.memCurr = b.pollNeighbor(e, e.in)
	}
}

func (e *Element) pollMemory(b *Board, side Side) (int, bool) {
	switch side {
	case e.out:
		e.pollInternalMemory(b)
		return e.memCurr, true
	case North:
		return b.pollNeighbor(e, South), true
	case South:
		return b.pollNeighbor(e, North), true
	}
	return 0, false
}

// pollInternalBookmark edge-detects the OR of its four neighbors: a
// rising edge stores the current age, a falling edge requests a jump back
// far enough that the next cycle rereads the input byte of the cycle in
// which the mark was set.
func (e *Element) pollInternalBookmark(b *Board) {
	value := orLateral(b, e)
	if e.bmState == value {
		return
	}
	e.bmState = value
	if value != 0 {
		e.bmMark = b.Age
		e.bmHaveMark = true
	} else if e.bmHaveMark {
		distance := b.Age + 1 - e.bmMark
		e.bmHaveMark = false
		b.setJump(-distance)
	}
}
