package main

import (
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/plus3/tetrimino/internal/logger"
	"github.com/plus3/tetrimino/tetromino"
	"go.uber.org/zap"
)

func main() {
	samples := flag.Int("samples", 70000, "Number of kinds to draw from the randomizer.")
	seed := flag.Uint64("seed", 0, "Seed for the random source. Zero picks one from the clock.")
	randomizer := flag.String("randomizer", "uniform", "Randomizer to sample: uniform or bag.")
	tolerance := flag.Float64("tolerance", 0.01, "Largest accepted distance between a kind's frequency and 1/7.")
	debug := flag.Bool("debug", false, "Enable debug logging.")
	flag.Parse()

	log := logger.Must(*debug)
	defer log.Sync()

	if *samples <= 0 {
		log.Fatal("samples must be positive", zap.Int("samples", *samples))
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	source, err := tetromino.NewRandomizer(*randomizer, rand.New(rand.NewPCG(*seed, *seed)))
	if err != nil {
		log.Fatal("invalid randomizer", zap.Error(err))
	}

	log.Info("sampling piece kinds",
		zap.String("randomizer", *randomizer),
		zap.Int("samples", *samples),
		zap.Uint64("seed", *seed),
	)

	report := NewReport(*randomizer, *seed, *tolerance)
	start := time.Now()
	report.Sample(source, *samples)
	log.Debug("sampling finished", zap.Duration("elapsed", time.Since(start)))

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal("failed to generate report", zap.Error(err))
	}

	if outliers := report.Outliers(); len(outliers) > 0 {
		log.Error("kinds outside tolerance", zap.Stringers("kinds", outliers))
		os.Exit(1)
	}
}
