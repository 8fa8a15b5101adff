package testcommon

import (
	"github.com/kpfaulkner/trng-go/entropy"
)

// SourceRecorder wraps a real entropy source and records every bit it
// serves. This is the metastable diagnostic tap in test form: the recorded
// stream is what external verification equipment would observe.
type SourceRecorder struct {
	BitData []uint8

	realSource entropy.Source
}

func NewSourceRecorder(realSource entropy.Source) *SourceRecorder {
	sr := &SourceRecorder{
		realSource: realSource,
	}

	return sr
}

func (sr *SourceRecorder) Bit() uint8 {
	b := sr.realSource.Bit()
	sr.BitData = append(sr.BitData, b)
	return b
}
