package anthill

import (
	"runtime"
	"sort"
	"sync"
)

// RunResult is the outcome of one seeded headless run.
type RunResult struct {
	Seed  int64
	Stats Stats
	Err   error
}

// SweepSummary aggregates a set of runs.
type SweepSummary struct {
	Runs             int
	Failed           int
	PickupRuns       int
	MeanCarrying     float64 // mean fraction of ants carrying at the end
	MeanMarked       float64
	MeanFirstPickup  float64 // over runs that picked up at all
	EarliestPickup   int
	EarliestPickupBy int64
}

// Sweep runs base once per seed for steps ticks. Runs are independent, so
// each one is confined to a single worker goroutine; results come back
// sorted by seed.
func Sweep(base Config, seeds []int64, steps, workers int) []RunResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	jobs := make(chan int64)
	results := make(chan RunResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- RunSeed(base, seed, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
	}()

	all := make([]RunResult, 0, len(seeds))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	return all
}

// RunSeed runs a single headless simulation.
func RunSeed(base Config, seed int64, steps int) RunResult {
	cfg := base
	cfg.Seed = seed
	g, err := New(cfg)
	if err != nil {
		return RunResult{Seed: seed, Err: err}
	}
	for i := 0; i < steps; i++ {
		g.Tick()
	}
	return RunResult{Seed: seed, Stats: g.Stats()}
}

// Summarize aggregates sweep results. Failed runs are counted but excluded
// from the means.
func Summarize(results []RunResult) SweepSummary {
	s := SweepSummary{Runs: len(results), EarliestPickup: -1}
	var carrying, marked, pickup float64
	ok := 0
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		ok++
		if r.Stats.Ants > 0 {
			carrying += float64(r.Stats.Carrying) / float64(r.Stats.Ants)
		}
		marked += float64(r.Stats.Marked())
		if r.Stats.FirstPickup >= 0 {
			s.PickupRuns++
			pickup += float64(r.Stats.FirstPickup)
			if s.EarliestPickup < 0 || r.Stats.FirstPickup < s.EarliestPickup {
				s.EarliestPickup = r.Stats.FirstPickup
				s.EarliestPickupBy = r.Seed
			}
		}
	}
	if ok > 0 {
		s.MeanCarrying = carrying / float64(ok)
		s.MeanMarked = marked / float64(ok)
	}
	if s.PickupRuns > 0 {
		s.MeanFirstPickup = pickup / float64(s.PickupRuns)
	}
	return s
}
