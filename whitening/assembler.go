package whitening

import (
	"github.com/kpfaulkner/trng-go/util"
)

// WordAssembler is a Galois feedback shift register with external bit
// injection. Each accepted bit shifts the register right by one, injects
// the new bit into the vacated top position, and when the bit shifted out
// of the bottom was 1, XORs the feedback tap mask into the register. The
// feedback scrambles the incoming stream so partial words are still usable
// pseudo-random values; a fully fresh word is available exactly when the
// observing WordCounter asserts wordReady.
//
// The register is deterministic: a fixed (Width, InitValue, Feedback) and a
// fixed injected bit sequence always produce the same trajectory.
type WordAssembler struct {
	params Params
	out    uint64
}

func NewWordAssembler(params Params) (*WordAssembler, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	wa := &WordAssembler{params: params}
	wa.Reset()
	return wa, nil
}

func (wa *WordAssembler) Reset() {
	wa.out = wa.params.InitValue
}

// Out returns the register contents. Always a valid word, freshest when
// sampled at wordReady.
func (wa *WordAssembler) Out() uint64 {
	return wa.out
}

func (wa *WordAssembler) Params() Params {
	return wa.params
}

// Shift performs one feedback shift, folding random into the register.
// Callers gate this on bitReady; when no bit is presented the register
// simply holds.
func (wa *WordAssembler) Shift(random uint8) {
	carry := wa.out & 1
	wa.out >>= 1
	wa.out |= uint64(random&1) << (wa.params.Width - 1)
	if carry == 1 {
		wa.out ^= wa.params.Feedback
	}
	wa.out &= util.Mask[uint64](wa.params.Width)
}
