package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kpfaulkner/trng-go/core"
	"github.com/kpfaulkner/trng-go/entropy"
	"github.com/kpfaulkner/trng-go/options"
	"github.com/kpfaulkner/trng-go/whitening"

	log "github.com/sirupsen/logrus"
)

func main() {
	words := flag.Int("words", 16, "number of words to emit")
	weak := flag.Bool("weak", false, "use the weak configuration (8 bit, no debiasing)")
	raw := flag.Bool("raw", false, "write raw bytes to stdout instead of hex words")
	trace := flag.Bool("trace", false, "debug-log every completed word")
	flag.Parse()

	if *trace {
		log.SetLevel(log.DebugLevel)
	}

	if *weak {
		// no word framing in the weak pipeline, just clock it and sample
		// the register every Width ticks.
		p, err := core.NewWeakPipeline(entropy.NewOSSource())
		if err != nil {
			log.Fatalf("Error building weak pipeline: %v", err)
		}
		width := p.Params().Width
		for w := 0; w < *words; w++ {
			var sig core.Signals
			for i := uint(0); i < width; i++ {
				sig = p.Tick(false)
			}
			fmt.Printf("%02x\n", sig.Out)
		}
		return
	}

	source, err := entropy.NewCascade(4, entropy.ParityTable, func() entropy.Source {
		return entropy.NewOSSource()
	})
	if err != nil {
		log.Fatalf("Error building oscillator cascade: %v", err)
	}

	gen, err := core.NewGenerator(source, core.WithOptions(&options.TRNGOptions{TraceWord: *trace}))
	if err != nil {
		log.Fatalf("Error building generator: %v", err)
	}

	if *raw {
		wordBytes := int(whitening.StrongParams.Width+7) / 8
		buf := make([]byte, *words*wordBytes)
		if _, err := gen.Read(buf); err != nil {
			log.Fatalf("Error reading random bytes: %v", err)
		}
		os.Stdout.Write(buf)
		return
	}

	for w := 0; w < *words; w++ {
		fmt.Printf("%04x\n", gen.NextWord())
	}
}
