package whitening

// WordCounter frames the whitened bit stream into words: it counts rising
// edges of bitReady and asserts wordReady for one tick once Width bits have
// been folded into the register since the last reset or completed word.
//
// Edge detection matters: bitReady is high for a full tick, so sampling the
// level would double count. The counter saturates at zero, the edge that
// completes a word reloads it, there is no wraparound.
type WordCounter struct {
	width     uint
	remaining uint
	prevReady uint8
}

func NewWordCounter(width uint) *WordCounter {
	wc := &WordCounter{width: width}
	wc.Reset()
	return wc
}

func (wc *WordCounter) Reset() {
	wc.remaining = wc.width - 1
	wc.prevReady = 0
}

// Remaining reports how many more whitened bits are needed before the next
// word completes, counting the bit that asserts wordReady itself.
func (wc *WordCounter) Remaining() uint {
	return wc.remaining
}

// Tick samples bitReady for this clock and reports whether the word
// completed. Only a 0 to 1 transition counts; a held-high level never
// decrements.
func (wc *WordCounter) Tick(bitReady uint8) (wordReady bool) {
	bitReady &= 1
	edge := bitReady == 1 && wc.prevReady == 0
	wc.prevReady = bitReady
	if !edge {
		return false
	}
	if wc.remaining == 0 {
		wc.remaining = wc.width - 1
		return true
	}
	wc.remaining--
	return false
}
