package entropy

// Source supplies one raw bit per clock tick. The physical implementation is
// a metastable ring-oscillator network on the FPGA fabric; everything here is
// a software stand-in presenting the same single-bit-per-tick contract. The
// raw stream is allowed to be biased and correlated, the whitening core deals
// with that.
type Source interface {
	Bit() uint8
}

// PatternSource replays a fixed bit pattern forever. Used to force the raw
// stream to a known sequence when exercising the pipeline.
type PatternSource struct {
	pattern []uint8
	pos     int
}

func NewPatternSource(pattern []uint8) *PatternSource {
	ps := &PatternSource{}
	ps.pattern = make([]uint8, len(pattern))
	for i, b := range pattern {
		ps.pattern[i] = b & 1
	}
	return ps
}

func (ps *PatternSource) Bit() uint8 {
	if len(ps.pattern) == 0 {
		return 0
	}
	b := ps.pattern[ps.pos]
	ps.pos++
	if ps.pos == len(ps.pattern) {
		ps.pos = 0
	}
	return b
}
