// Package anthill runs a colony of ants over a shared pheromone grid. Ants
// are stepped strictly in slice order so a trail laid by one ant is visible
// to the ants after it within the same tick.
package anthill

import (
	"io"
	"slices"

	"anthill/internal/ant"
	"anthill/internal/core"
	"anthill/internal/field"

	"github.com/charmbracelet/log"
)

// Ground owns the colony, the food, and the pheromone grid of one run.
type Ground struct {
	cfg  Config
	name string

	running bool
	ants    []ant.Ant
	food    []Food
	grid    *field.Grid
	rng     *core.RNG

	seed        int64
	ticks       int
	firstPickup int

	logger *log.Logger
}

// Stats summarises the state of a run.
type Stats struct {
	Ticks       int
	Ants        int
	Carrying    int
	ToFood      int
	ToHome      int
	FirstPickup int // tick of the first pickup, -1 when none yet
}

// Marked returns the number of grid cells holding a trail.
func (s Stats) Marked() int { return s.ToFood + s.ToHome }

// New validates cfg and returns a running Ground seeded with cfg.Seed.
func New(cfg Config) (*Ground, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := field.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	g := &Ground{
		cfg:     cfg,
		name:    "anthill",
		running: true,
		food:    slices.Clone(cfg.Food),
		grid:    grid,
		logger:  log.New(io.Discard),
	}
	g.Reset(cfg.Seed)
	return g, nil
}

// Name returns the simulation identifier.
func (g *Ground) Name() string { return g.name }

// Size reports the field dimensions.
func (g *Ground) Size() core.Size { return core.Size{W: g.cfg.Width, H: g.cfg.Height} }

// Cells exposes the pheromone grid as Kind bytes in row-major order.
func (g *Ground) Cells() []uint8 { return g.grid.Cells() }

// Grid exposes the pheromone grid for reading.
func (g *Ground) Grid() *field.Grid { return g.grid }

// Ants exposes the colony in stepping order. Callers must not modify it.
func (g *Ground) Ants() []ant.Ant { return g.ants }

// Food exposes the food rectangles.
func (g *Ground) Food() []Food { return g.food }

// Config returns the configuration the run was built from.
func (g *Ground) Config() Config { return g.cfg }

// Seed reports the seed of the current run.
func (g *Ground) Seed() int64 { return g.seed }

// Ticks reports how many ticks have run since the last reset.
func (g *Ground) Ticks() int { return g.ticks }

// Running reports whether Step advances the simulation.
func (g *Ground) Running() bool { return g.running }

// SetRunning pauses or resumes the run.
func (g *Ground) SetRunning(running bool) { g.running = running }

// SetLogger routes run events to l. A nil logger silences them.
func (g *Ground) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// Reset starts a new run: the grid is cleared and the colony respawned at
// the nest. A zero seed reuses the configured one.
func (g *Ground) Reset(seed int64) {
	if seed == 0 {
		seed = g.cfg.Seed
	}
	g.seed = seed
	g.rng = core.NewRNG(seed)
	g.grid.Clear()

	var headings ant.Headings
	if g.cfg.RandomHeading {
		headings = g.rng
	}
	g.ants = ant.Spawn(g.cfg.Ants, g.cfg.Nest, g.cfg.Heading, headings)
	g.ticks = 0
	g.firstPickup = -1
	g.logger.Info("run reset", "sim", g.name, "seed", seed, "ants", len(g.ants), "food", len(g.food))
}

// Step advances one tick while the run is not paused.
func (g *Ground) Step() {
	if !g.running {
		return
	}
	g.Tick()
}

// Tick advances every ant once: step, pick up food, then lay a trail at the
// ant's new cell.
func (g *Ground) Tick() {
	g.ticks++
	for i := range g.ants {
		a := &g.ants[i]
		a.Step(g.grid, g.rng)
		g.pickUp(i, a)

		kind := field.ToHome
		if a.Carrying {
			kind = field.ToFood
		}
		x, y := g.grid.CellOf(a.X, a.Y)
		g.grid.Mark(x, y, kind)
	}
}

func (g *Ground) pickUp(i int, a *ant.Ant) {
	for j, f := range g.food {
		if !f.Contains(a.X, a.Y) {
			continue
		}
		if !a.Carrying {
			a.Carrying = true
			if g.firstPickup < 0 {
				g.firstPickup = g.ticks
			}
			g.logger.Debug("food picked up", "ant", i, "food", j, "tick", g.ticks)
		}
		return
	}
}

// Stats counts carrying ants and trail cells.
func (g *Ground) Stats() Stats {
	s := Stats{
		Ticks:       g.ticks,
		Ants:        len(g.ants),
		FirstPickup: g.firstPickup,
	}
	for _, a := range g.ants {
		if a.Carrying {
			s.Carrying++
		}
	}
	for _, v := range g.grid.Cells() {
		switch field.Kind(v) {
		case field.ToFood:
			s.ToFood++
		case field.ToHome:
			s.ToHome++
		case field.None:
		}
	}
	return s
}

func init() {
	for _, name := range []string{"anthill", "lone-ant"} {
		core.Register(name, func(cfg map[string]string) (core.Sim, error) {
			c, err := ConfigFor(name, cfg)
			if err != nil {
				return nil, err
			}
			g, err := New(c)
			if err != nil {
				return nil, err
			}
			g.name = name
			return g, nil
		})
	}
}
