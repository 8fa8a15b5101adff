package main

import (
	"fmt"
	"time"

	"github.com/kpfaulkner/trng-go/core"
	"github.com/kpfaulkner/trng-go/entropy"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {

	const ticks = 50_000_000

	//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	//p := profile.Start(profile.MemProfileRate(1), profile.ProfilePath("."))
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	// looping pattern source keeps the measurement about the pipeline, not
	// about the OS entropy pool.
	source := entropy.NewPatternSource([]uint8{0, 1, 1, 0, 1, 0, 0, 1})
	pipeline, err := core.NewStrongPipeline(source)
	if err != nil {
		log.Errorf("Error building pipeline: %v", err)
		return
	}

	start := time.Now()
	pipeline.Tick(true)
	words := 0
	for i := 1; i < ticks; i++ {
		if sig := pipeline.Tick(false); sig.WordReady {
			words++
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("%d ticks took %d ms\n", ticks, elapsed.Milliseconds())
	fmt.Printf("%d words (%0.2f Mticks/sec)\n", words, float64(ticks)/elapsed.Seconds()/1e6)
}
