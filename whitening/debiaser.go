package whitening

// Debiaser removes first-order bias from the raw stream by pairing adjacent
// bits, von Neumann style: a capture tick latches the raw bit, the following
// emit tick combines it with the next raw bit as NOT(current) XOR captured.
// Any constant bias in the source cancels in the XOR; throughput halves.
//
// The phase toggle doubles as the bitReady handshake: it alternates
// 0,1,0,1,... from the first tick after reset, and the emitted bit is fresh
// exactly on the ticks where bitReady is 1.
type Debiaser struct {
	last   uint8
	random uint8
	phase  uint8
}

func NewDebiaser() *Debiaser {
	return &Debiaser{}
}

// Reset reinitialises the toggle and latches, synchronous with the tick.
func (d *Debiaser) Reset() {
	d.last = 0
	d.random = 0
	d.phase = 0
}

// Tick advances one clock. It returns the debiased bit and the bitReady
// level for this tick; random is only meaningful when bitReady is 1 and
// holds its value through the following capture tick.
func (d *Debiaser) Tick(raw uint8) (random uint8, bitReady uint8) {
	raw &= 1
	bitReady = d.phase
	if d.phase == 0 {
		d.last = raw
	} else {
		d.random = (raw ^ 1) ^ d.last
	}
	d.phase ^= 1
	return d.random, bitReady
}
