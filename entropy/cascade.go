package entropy

import (
	"fmt"

	"github.com/kpfaulkner/trng-go/util"
)

// selectorInputs is fixed by the hardware: each cascade stage arbitrates
// between four upstream oscillators through one 16-entry truth table (a
// single LUT4 on the fabric).
const selectorInputs = 4

// ParityTable is the default selector truth table: the XOR of all four
// inputs. Balanced (eight ones, eight zeroes), so the stage output carries
// no bias of its own and flips whenever any single input flips.
var ParityTable = parityTable()

func parityTable() [16]uint8 {
	var t [16]uint8
	for i := range t {
		t[i] = util.Parity(uint(i))
	}
	return t
}

// Selector combines four child sources through a 16-entry truth table,
// indexed by the children's bits (child 0 is the low index bit). One
// Selector models one stage of the oscillator cascade.
type Selector struct {
	children [selectorInputs]Source
	table    [16]uint8
}

func NewSelector(children [selectorInputs]Source, table [16]uint8) (*Selector, error) {
	for i, c := range children {
		if c == nil {
			return nil, fmt.Errorf("selector child %d is nil", i)
		}
	}
	s := &Selector{children: children}
	for i, v := range table {
		s.table[i] = v & 1
	}
	return s, nil
}

func (s *Selector) Bit() uint8 {
	var idx uint8
	for i, c := range s.children {
		idx |= (c.Bit() & 1) << uint(i)
	}
	return s.table[idx]
}

// NewCascade builds the recursive oscillator-of-oscillators network: depth 0
// is a single leaf source, depth n is a Selector over four depth n-1
// networks. The strong configuration uses depth 4 over first-stage
// oscillators. This is structural composition done at construction time,
// each level is just another Source.
func NewCascade(depth int, table [16]uint8, leaf func() Source) (Source, error) {
	if leaf == nil {
		return nil, fmt.Errorf("cascade needs a leaf source constructor")
	}
	if depth < 0 {
		return nil, fmt.Errorf("cascade depth %d is negative", depth)
	}
	if depth == 0 {
		src := leaf()
		if src == nil {
			return nil, fmt.Errorf("cascade leaf constructor returned nil")
		}
		return src, nil
	}
	var children [selectorInputs]Source
	for i := range children {
		child, err := NewCascade(depth-1, table, leaf)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return NewSelector(children, table)
}
