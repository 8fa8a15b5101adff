package whitening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordCounterEdgeOnlyDecrement(t *testing.T) {
	wc := NewWordCounter(8)
	assert.Equal(t, uint(7), wc.Remaining())

	// a long held-high level is a single rising edge.
	for i := 0; i < 5; i++ {
		wc.Tick(1)
	}
	assert.Equal(t, uint(6), wc.Remaining())

	// drop and raise again, one more decrement.
	wc.Tick(0)
	wc.Tick(1)
	assert.Equal(t, uint(5), wc.Remaining())

	// held low does nothing.
	for i := 0; i < 5; i++ {
		wc.Tick(0)
	}
	assert.Equal(t, uint(5), wc.Remaining())
}

func TestWordCounterFramingPeriod(t *testing.T) {
	const width = 8
	wc := NewWordCounter(width)

	// alternate 0,1 so every high tick is a rising edge, the shape the
	// debiaser produces. The first word needs exactly width edges, and
	// every word after that the same.
	edges := 0
	var readyEdges []int
	for tick := 0; tick < width*8; tick++ {
		level := uint8(tick % 2)
		if level == 1 {
			edges++
		}
		if wc.Tick(level) {
			readyEdges = append(readyEdges, edges)
		}
	}

	assert.Equal(t, []int{8, 16, 24, 32}, readyEdges)
}

func TestWordCounterResetPriority(t *testing.T) {
	wc := NewWordCounter(16)
	wc.Tick(0)
	wc.Tick(1)
	wc.Tick(0)
	wc.Tick(1)
	assert.Equal(t, uint(13), wc.Remaining())

	wc.Reset()
	assert.Equal(t, uint(15), wc.Remaining())

	// prevReady cleared as well: the first high after reset is an edge.
	done := wc.Tick(1)
	assert.False(t, done)
	assert.Equal(t, uint(14), wc.Remaining())
}

func TestWordCounterSaturates(t *testing.T) {
	const width = 4
	wc := NewWordCounter(width)

	// drive to zero.
	for wc.Remaining() > 0 {
		wc.Tick(0)
		wc.Tick(1)
	}

	// the completing edge asserts for one tick and reloads, no wraparound.
	wc.Tick(0)
	done := wc.Tick(1)
	assert.True(t, done)
	assert.Equal(t, uint(width-1), wc.Remaining())

	wc.Tick(0)
	done = wc.Tick(1)
	assert.False(t, done)
	assert.Equal(t, uint(width-2), wc.Remaining())
}
