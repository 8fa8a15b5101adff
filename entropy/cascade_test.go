package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// constSource holds one level forever, the simplest possible leaf.
type constSource struct {
	level uint8
}

func (cs *constSource) Bit() uint8 {
	return cs.level
}

func TestParityTableIsBalanced(t *testing.T) {
	ones := 0
	for _, v := range ParityTable {
		ones += int(v)
	}
	assert.Equal(t, 8, ones)

	// flipping any single input flips the output.
	for i := 0; i < 16; i++ {
		for bit := 0; bit < 4; bit++ {
			assert.NotEqual(t, ParityTable[i], ParityTable[i^(1<<bit)])
		}
	}
}

func TestSelectorIndexesLowChildFirst(t *testing.T) {
	tests := []struct {
		levels   [4]uint8
		expected uint8
	}{
		{[4]uint8{0, 0, 0, 0}, 0},
		{[4]uint8{1, 0, 0, 0}, 1},
		{[4]uint8{0, 1, 0, 0}, 1},
		{[4]uint8{1, 1, 0, 0}, 0},
		{[4]uint8{1, 1, 1, 1}, 0},
		{[4]uint8{1, 1, 1, 0}, 1},
	}

	for _, tt := range tests {
		var children [4]Source
		for i, l := range tt.levels {
			children[i] = &constSource{level: l}
		}
		sel, err := NewSelector(children, ParityTable)
		assert.Nil(t, err)
		if got := sel.Bit(); got != tt.expected {
			t.Errorf("selector(%v) = %d; want %d", tt.levels, got, tt.expected)
		}
	}
}

func TestSelectorRejectsNilChild(t *testing.T) {
	var children [4]Source
	children[0] = &constSource{}
	sel, err := NewSelector(children, ParityTable)
	assert.Nil(t, sel)
	assert.NotNil(t, err)
}

func TestCascadeLeafCount(t *testing.T) {
	for depth := 0; depth <= 4; depth++ {
		leaves := 0
		src, err := NewCascade(depth, ParityTable, func() Source {
			leaves++
			return &constSource{}
		})
		assert.Nil(t, err)
		assert.NotNil(t, src)

		expected := 1
		for i := 0; i < depth; i++ {
			expected *= 4
		}
		assert.Equal(t, expected, leaves, "depth %d", depth)
	}
}

func TestCascadeParityOfLeaves(t *testing.T) {
	// one hot leaf among 16 at depth 2: parity propagates to the top.
	levels := make([]uint8, 16)
	levels[5] = 1
	next := 0
	src, err := NewCascade(2, ParityTable, func() Source {
		cs := &constSource{level: levels[next]}
		next++
		return cs
	})
	assert.Nil(t, err)
	assert.Equal(t, uint8(1), src.Bit())
}

func TestCascadeRejectsBadArguments(t *testing.T) {
	_, err := NewCascade(1, ParityTable, nil)
	assert.NotNil(t, err)

	_, err = NewCascade(-1, ParityTable, func() Source { return &constSource{} })
	assert.NotNil(t, err)

	_, err = NewCascade(0, ParityTable, func() Source { return nil })
	assert.NotNil(t, err)
}
