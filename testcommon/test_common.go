package testcommon

// Reference models computed straight from the register transfer formulas,
// kept separate from the production code so pipeline tests compare two
// independent derivations of the same trajectory.

// GaloisStep is one feedback shift: shift right, inject bit at the top,
// XOR the tap mask when the dropped bottom bit was 1.
func GaloisStep(out uint64, bit uint8, width uint, feedback uint64) uint64 {
	carry := out & 1
	out >>= 1
	out |= uint64(bit&1) << (width - 1)
	if carry == 1 {
		out ^= feedback
	}
	return out & (1<<width - 1)
}

// GaloisTrajectory folds a bit sequence and returns the register value
// after every step.
func GaloisTrajectory(init uint64, bits []uint8, width uint, feedback uint64) []uint64 {
	out := init
	states := make([]uint64, 0, len(bits))
	for _, b := range bits {
		out = GaloisStep(out, b, width, feedback)
		states = append(states, out)
	}
	return states
}

// DebiasReference pairs consecutive raw bits (a, b) and emits NOT(b) XOR a
// for each pair, the whitened stream the debiaser should produce.
func DebiasReference(raw []uint8) []uint8 {
	var out []uint8
	for i := 0; i+1 < len(raw); i += 2 {
		a := raw[i] & 1
		b := raw[i+1] & 1
		out = append(out, (b^1)^a)
	}
	return out
}
