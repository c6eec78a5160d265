package board

// InBit presents the current cycle's input bit at its index on every
// lateral side.
func (e *Element) pollInBit(b *Board, side Side) (int, bool) {
	if side != North && side != South && side != East && side != West {
		return 0, false
	}
	return b.readBit(e.index), true
}

// pollInternalOutBit ORs the four lateral neighbors into the output byte
// at its index, unless WRITE_HOLD is already set this cycle (matching
// chiplib.py's comment: skip the poll chain entirely as an optimization).
func (e *Element) pollInternalOutBit(b *Board) {
	if b.checkStatus(WriteHold) {
		return
	}
	value := orLateral(b, e)
	b.writeBit(e.index, value)
}

// pollInternalStorageControl adds or removes this element from its
// read/write control set depending on whether any neighbor is high.
func (e *Element) pollInternalStorageControl(b *Board) {
	active := orLateral(b, e) != 0
	b.setStorageControl(e, e.flavor, active)
}

// pollInternalStorageBit commits its bit into the shared write head when
// the write control is active, ignoring same-kind neighbors (StorageBits
// only adjoin ordinary wires/wires-equivalent to avoid self-looping).
func (e *Element) pollInternalStorageBit(b *Board) {
	if !b.storageControlActive(storageWrite) {
		return
	}
	value := 0
	for _, dir := range lateral {
		if b.neighborKind(e, dir) == KindStorageBit {
			continue
		}
		if b.pollNeighbor(e, dir) != 0 {
			value = 1
			break
		}
	}
	b.writeStorageBit(e.index, value)
}

// pollStorageBit is deliberately unconditional: spec.md's "Open questions"
// resolves the ambiguous later-revision behavior by always returning the
// read head's bit, regardless of whether read-control is active.
func (e *Element) pollStorageBit(b *Board, side Side) (int, bool) {
	if side != North && side != South && side != East && side != West {
		return 0, false
	}
	return b.readStorageBit(e.index), true
}

func (b *Board) neighborKind(e *Element, dir Side) Kind {
	nb := b.neighbor(e, dir)
	if nb == nil {
		return KindEmpty
	}
	return nb.Kind
}

// pollInternalPause adds sleep time proportional to the storage read
// head's value (as an unsigned little-endian integer) whenever any
// neighbor is high.
func (e *Element) pollInternalPause(b *Board) {
	if orLateral(b, e) == 0 {
		return
	}
	v := readHeadUint(b)
	b.Sleep += float64(v) * e.scale
}
