package app

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Interval time.Duration
	Seed     int64
	LogLevel string
	HUDWidth int
	Set      Settings
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "anthill",
		Scale:    1,
		TPS:      10,
		Interval: 500 * time.Millisecond,
		Seed:     0,
		LogLevel: "info",
		HUDWidth: 220,
		Set:      Settings{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (anthill, lone-ant)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (GUI)")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "tick interval (terminal)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset, 0 uses the configured seed")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels, 0 hides it")
	fs.Var(c.Set, "set", "simulation setting key=value, repeatable (w, h, ants, nest_x, nest_y, heading, random_heading, food)")
}

// Settings collects repeated key=value flags into the map a sim factory reads.
type Settings map[string]string

// String implements flag.Value.
func (s Settings) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + s[k]
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (s Settings) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("setting %q is not key=value", v)
	}
	s[key] = strings.TrimSpace(value)
	return nil
}

// NewLogger builds the structured logger used by the drivers.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "anthill",
	}), nil
}
