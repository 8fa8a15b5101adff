package testcommon

// FakeSource is a scripted entropy source for testing purposes. It serves a
// fixed bit script once (repeating when Loop is set) and counts how many
// ticks consumed it.
type FakeSource struct {
	Script []uint8
	Loop   bool

	TickCount int
	pos       int
}

func NewFakeSource(script ...uint8) *FakeSource {
	return &FakeSource{Script: script}
}

func NewLoopingSource(script ...uint8) *FakeSource {
	return &FakeSource{Script: script, Loop: true}
}

// ConstantSource mimics a collapsed oscillator: the same level forever.
func ConstantSource(level uint8) *FakeSource {
	return &FakeSource{Script: []uint8{level & 1}, Loop: true}
}

func (fs *FakeSource) Bit() uint8 {
	fs.TickCount++
	if len(fs.Script) == 0 {
		return 0
	}
	if fs.pos >= len(fs.Script) {
		if !fs.Loop {
			return 0
		}
		fs.pos = 0
	}
	b := fs.Script[fs.pos] & 1
	fs.pos++
	return b
}
