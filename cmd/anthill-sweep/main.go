package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"anthill/internal/app"
	"anthill/internal/sims/anthill"

	"github.com/charmbracelet/log"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 500, "ticks to simulate per run")
	runs := flag.Int("runs", 32, "number of seeds to sweep")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	logger, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatal("bad flags", "err", err)
	}

	base, err := anthill.ConfigFor(cfg.Sim, cfg.Set)
	if err != nil {
		logger.Fatal("bad settings", "err", err)
	}
	if err := base.Validate(); err != nil {
		logger.Fatal("bad settings", "err", err)
	}

	first := cfg.Seed
	if first == 0 {
		first = base.Seed
	}
	seeds, err := seedRange(first, *runs)
	if err != nil {
		logger.Fatal("bad flags", "err", err)
	}
	if *steps < 0 {
		logger.Fatal("bad flags", "err", fmt.Errorf("-steps must not be negative, got %d", *steps))
	}

	logger.Info("sweeping", "sim", cfg.Sim, "runs", len(seeds), "workers", *workers, "steps", *steps, "ants", base.Ants, "food", len(base.Food))
	start := time.Now()
	results := anthill.Sweep(base, seeds, *steps, *workers)
	for _, r := range results {
		if r.Err != nil {
			logger.Error("run failed", "seed", r.Seed, "err", r.Err)
			continue
		}
		logger.Debug("run", "seed", r.Seed, "carrying", r.Stats.Carrying, "to_food", r.Stats.ToFood, "to_home", r.Stats.ToHome, "first_pickup", r.Stats.FirstPickup)
	}

	sum := anthill.Summarize(results)
	logger.Info("summary",
		"elapsed", time.Since(start).Round(time.Millisecond),
		"runs", sum.Runs,
		"failed", sum.Failed,
		"pickup_runs", sum.PickupRuns,
		"mean_carrying", sum.MeanCarrying,
		"mean_marked", sum.MeanMarked,
		"mean_first_pickup", sum.MeanFirstPickup,
		"earliest_pickup", sum.EarliestPickup,
		"earliest_seed", sum.EarliestPickupBy,
	)
	if sum.Failed > 0 {
		os.Exit(1)
	}
}

// seedRange returns runs consecutive seeds starting at first.
func seedRange(first int64, runs int) ([]int64, error) {
	if runs <= 0 {
		return nil, fmt.Errorf("-runs must be positive, got %d", runs)
	}
	seeds := make([]int64, runs)
	for i := range seeds {
		seeds[i] = first + int64(i)
	}
	return seeds, nil
}
