package core

import (
	"errors"
	"io"

	"github.com/kpfaulkner/trng-go/entropy"
)

// Generator clocks a word-framed pipeline and harvests the register exactly
// on the wordReady ticks, the only time the word is fully fresh. It is the
// software fallback conditioner: point it at any Source and it yields the
// same whitened word stream the hardware would.
type Generator struct {
	pipeline *Pipeline

	// leftover bytes of a harvested word not yet handed to Read.
	pending []byte
}

func NewGenerator(source entropy.Source, opts ...PipelineOption) (*Generator, error) {
	p, err := NewPipeline(source, opts...)
	if err != nil {
		return nil, err
	}
	if p.counter == nil {
		return nil, errors.New("generator requires a word-framed pipeline")
	}

	g := &Generator{pipeline: p}
	// hold reset for one tick so the register trajectory always starts
	// from InitValue no matter what the pipeline did before.
	g.pipeline.Tick(true)
	return g, nil
}

func (g *Generator) Pipeline() *Pipeline {
	return g.pipeline
}

// NextWord clocks the pipeline until wordReady asserts and returns the
// register at that tick.
func (g *Generator) NextWord() uint64 {
	for {
		if sig := g.pipeline.Tick(false); sig.WordReady {
			return sig.Out
		}
	}
}

// Read fills p with conditioned random bytes, little-endian within each
// harvested word. Never returns an error; the stream does not end.
func (g *Generator) Read(p []byte) (int, error) {
	wordBytes := int(g.pipeline.params.Width+7) / 8
	n := 0
	for n < len(p) {
		if len(g.pending) == 0 {
			word := g.NextWord()
			for i := 0; i < wordBytes; i++ {
				g.pending = append(g.pending, byte(word>>(8*i)))
			}
		}
		c := copy(p[n:], g.pending)
		g.pending = g.pending[c:]
		n += c
	}
	return n, nil
}

var _ io.Reader = (*Generator)(nil)
