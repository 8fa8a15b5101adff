package trng_go

import (
	"io"

	"github.com/kpfaulkner/trng-go/core"
	"github.com/kpfaulkner/trng-go/entropy"
)

// CascadeDepth is the oscillator network depth of the strong configuration:
// four selector stages over first-stage oscillators.
const CascadeDepth = 4

// NewReader returns an endless stream of conditioned random bytes from the
// strong pipeline, backed by OS entropy standing in for the oscillator
// cascade. For the real hardware topology over software sources use
// NewReaderFromSource with an entropy.NewCascade network.
func NewReader(opts ...core.PipelineOption) (io.Reader, error) {
	return NewReaderFromSource(entropy.NewOSSource(), opts...)
}

func NewReaderFromSource(source entropy.Source, opts ...core.PipelineOption) (io.Reader, error) {
	gen, err := core.NewGenerator(source, opts...)
	if err != nil {
		return nil, err
	}
	return gen, nil
}
