package app

import (
	"fmt"

	"anthill/internal/core"
	"anthill/internal/sims/anthill"

	"github.com/charmbracelet/log"
)

// BuildGround constructs the configured simulation and attaches logger.
func BuildGround(cfg *Config, logger *log.Logger) (*anthill.Ground, error) {
	sim, err := core.Build(cfg.Sim, cfg.Set)
	if err != nil {
		return nil, err
	}
	g, ok := sim.(*anthill.Ground)
	if !ok {
		return nil, fmt.Errorf("sim %q is a %T, not an anthill ground", cfg.Sim, sim)
	}
	g.SetLogger(logger)
	g.Reset(cfg.Seed)
	return g, nil
}
