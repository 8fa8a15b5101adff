package core

import (
	"errors"

	"github.com/kpfaulkner/trng-go/entropy"
	"github.com/kpfaulkner/trng-go/options"
	"github.com/kpfaulkner/trng-go/whitening"

	log "github.com/sirupsen/logrus"
)

// Signals is the output port snapshot committed by one clock tick.
type Signals struct {

	// bitReady handshake level for this tick. Always 0 in the weak
	// configuration, which has no debiaser.
	BitReady uint8

	// high for exactly one tick when a full word has been accumulated.
	// Never asserted in the weak configuration.
	WordReady bool

	// shift register contents. Continuously valid, fully fresh at WordReady.
	Out uint64

	// diagnostic tap of the raw source bit. For external verification
	// equipment, not for downstream consumption.
	Metastable uint8
}

type PipelineOption func(p *Pipeline) error

// WithParams overrides the shift register parameters. Unvalidated tuples are
// rejected when the pipeline is built.
func WithParams(params whitening.Params) PipelineOption {
	return func(p *Pipeline) error {
		p.params = params
		return nil
	}
}

// WithoutDebias feeds the raw source bit straight into the shift register on
// every tick, dropping the debiaser and word framing. This is the weak
// configuration, minimal cost over entropy quality.
func WithoutDebias() PipelineOption {
	return func(p *Pipeline) error {
		p.debiased = false
		return nil
	}
}

func WithOptions(opts *options.TRNGOptions) PipelineOption {
	return func(p *Pipeline) error {
		p.opts = options.NewTRNGOptions(opts)
		return nil
	}
}

// Pipeline is the digital post-processing chain of the generator: raw source
// bits in, scrambled fixed-width words out. All components share one clock
// domain; every call to Tick advances each of them exactly once and commits
// their state simultaneously. Component inputs are sampled from the state
// committed by the previous tick, so there are no read-after-write hazards
// between the debiaser, the counter and the register within a tick.
type Pipeline struct {
	source   entropy.Source
	params   whitening.Params
	debiased bool
	opts     *options.TRNGOptions

	debiaser  *whitening.Debiaser
	counter   *whitening.WordCounter
	assembler *whitening.WordAssembler

	ticks uint64
	sig   Signals
}

// NewStrongPipeline builds the full chain: debiaser, 16 bit register, word
// framing. The source is expected to be the 4-stage oscillator cascade but
// any Source works.
func NewStrongPipeline(source entropy.Source, opts ...PipelineOption) (*Pipeline, error) {
	return NewPipeline(source, opts...)
}

// NewWeakPipeline builds the minimal chain: raw bits folded into an 8 bit
// register on every tick, nothing else.
func NewWeakPipeline(source entropy.Source, opts ...PipelineOption) (*Pipeline, error) {
	opts = append([]PipelineOption{WithParams(whitening.WeakParams), WithoutDebias()}, opts...)
	return NewPipeline(source, opts...)
}

func NewPipeline(source entropy.Source, opts ...PipelineOption) (*Pipeline, error) {
	if source == nil {
		return nil, errors.New("pipeline requires an entropy source")
	}

	p := &Pipeline{
		source:   source,
		params:   whitening.StrongParams,
		debiased: true,
		opts:     options.NewTRNGOptions(nil),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	assembler, err := whitening.NewWordAssembler(p.params)
	if err != nil {
		log.Errorf("Error building word assembler: %v", err)
		return nil, err
	}
	p.assembler = assembler
	if p.debiased {
		p.debiaser = whitening.NewDebiaser()
		p.counter = whitening.NewWordCounter(p.params.Width)
	}
	p.sig = Signals{Out: p.params.InitValue}
	return p, nil
}

func (p *Pipeline) Params() whitening.Params {
	return p.params
}

// Ticks returns how many clock ticks have been applied since construction.
func (p *Pipeline) Ticks() uint64 {
	return p.ticks
}

// Signals returns the outputs committed by the most recent tick.
func (p *Pipeline) Signals() Signals {
	return p.sig
}

// Tick advances the whole clock domain by one cycle. While rst is held the
// components reinitialise synchronously and outputs show their reset values;
// reset takes priority over word completion on the same tick. The source is
// clocked regardless, it free-runs like the physical oscillator.
func (p *Pipeline) Tick(rst bool) Signals {
	p.ticks++
	raw := p.source.Bit() & 1

	if rst {
		p.assembler.Reset()
		if p.debiased {
			p.debiaser.Reset()
			p.counter.Reset()
		}
		p.sig = Signals{Out: p.params.InitValue, Metastable: raw}
		return p.sig
	}

	var sig Signals
	sig.Metastable = raw

	if p.debiased {
		random, bitReady := p.debiaser.Tick(raw)
		sig.BitReady = bitReady
		sig.WordReady = p.counter.Tick(bitReady)
		if bitReady == 1 {
			p.assembler.Shift(random)
		}
	} else {
		p.assembler.Shift(raw)
	}
	sig.Out = p.assembler.Out()

	if p.opts.TraceTick {
		log.Debugf("tick %d raw=%d bitReady=%d wordReady=%v out=%#x",
			p.ticks, raw, sig.BitReady, sig.WordReady, sig.Out)
	}
	if p.opts.TraceWord && sig.WordReady {
		log.Debugf("word %#x after %d ticks", sig.Out, p.ticks)
	}

	p.sig = sig
	return sig
}
