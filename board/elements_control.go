package board

import "fmt"

// sleepRamp maps the count of high neighbors (0..4) to a sleep duration in
// seconds, straight out of chiplib.py's Sleep.sleep_ramp.
var sleepRamp = [5]float64{0, 0.1, 0.25, 0.5, 1}

// pollInternalControl sets its status bits once any neighbor goes high,
// skipping the poll chain entirely once those bits are already set (an
// optimization chiplib.py performs too, not just an early-out).
func (e *Element) pollInternalControl(b *Board) {
	mask := Status(e.contributes)
	if b.Status.Has(mask) {
		return
	}
	if orLateral(b, e) != 0 {
		b.addStatus(mask)
	}
}

// pollInternalDebug appends one record per cycle with the OR of its four
// neighbors as the payload.
func (e *Element) pollInternalDebug(b *Board) {
	value := orLateral(b, e)
	b.addDebugOn(e, fmt.Sprintf("%d", value))
}

// pollInternalSleep adds a duration selected by how many of its four
// neighbors are high (0 through 4).
func (e *Element) pollInternalSleep(b *Board) {
	idx := sumLateral(b, e)
	b.Sleep += sleepRamp[idx]
}
