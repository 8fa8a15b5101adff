package whitening

import (
	"fmt"

	"github.com/kpfaulkner/trng-go/util"
)

// Params are the compile-time knobs of the shift register: register width,
// reset value and Galois feedback tap mask. Only the two tuples below have
// been verified against the hardware; anything else is a valid but
// unverified configuration point.
type Params struct {
	Width     uint
	InitValue uint64
	Feedback  uint64
}

// StrongParams matches the full pipeline: 16 bit word, debiased input.
var StrongParams = Params{
	Width:     16,
	InitValue: 0b1010_1100_1110_0001,
	Feedback:  0b0000_0000_0010_1101,
}

// WeakParams matches the minimal-cost pipeline: 8 bit word, raw input
// folded on every tick.
var WeakParams = Params{
	Width:     8,
	InitValue: 0b1100_1010,
	Feedback:  0b0001_1101,
}

// Validate rejects parameter mismatches up front. A feedback mask or init
// value wider than the register would silently truncate in hardware, so it
// is treated as a construction-time precondition violation.
func (p Params) Validate() error {
	if p.Width < 1 || p.Width > 64 {
		return fmt.Errorf("width %d out of range 1..64", p.Width)
	}
	mask := util.Mask[uint64](p.Width)
	if p.InitValue&^mask != 0 {
		return fmt.Errorf("init value %#x does not fit in %d bits", p.InitValue, p.Width)
	}
	if p.Feedback&^mask != 0 {
		return fmt.Errorf("feedback mask %#x does not fit in %d bits", p.Feedback, p.Width)
	}
	return nil
}
