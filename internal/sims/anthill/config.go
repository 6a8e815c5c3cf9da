package anthill

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"anthill/internal/ant"
	"anthill/internal/field"
)

var (
	// ErrNoAnts is returned when a run is configured without any ants.
	ErrNoAnts = errors.New("anthill: spawn count must be positive")
	// ErrInvalidFood is returned for food rectangles without a finite,
	// positive area.
	ErrInvalidFood = errors.New("anthill: invalid food rectangle")
)

// Config controls the field, the colony, and the food layout of a run.
type Config struct {
	Width  int
	Height int

	Seed int64

	Ants          int
	Nest          ant.Point
	Heading       float64
	RandomHeading bool

	Food []Food
}

// DefaultConfig returns the standard configuration: ten ants leaving a nest
// in the middle of a 600x600 field with two food patches.
func DefaultConfig() Config {
	return Config{
		Width:         600,
		Height:        600,
		Seed:          1337,
		Ants:          10,
		Nest:          ant.Point{X: 300, Y: 300},
		Heading:       80,
		RandomHeading: true,
		Food: []Food{
			{X: 100, Y: 100, W: 40, H: 40},
			{X: 420, Y: 380, W: 60, H: 30},
		},
	}
}

// LoneAntConfig returns a single ant starting at the left edge heading 80
// degrees with nothing to find.
func LoneAntConfig() Config {
	return Config{
		Width:   600,
		Height:  600,
		Seed:    1,
		Ants:    1,
		Nest:    ant.Point{X: 0, Y: 100},
		Heading: 80,
	}
}

// Validate reports the first setup error in c.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("anthill: field %dx%d: %w", c.Width, c.Height, field.ErrInvalidDimensions)
	}
	if c.Ants <= 0 {
		return fmt.Errorf("%w: got %d", ErrNoAnts, c.Ants)
	}
	if !finite(c.Nest.X, c.Nest.Y, c.Heading) {
		return fmt.Errorf("anthill: nest (%v,%v) heading %v must be finite", c.Nest.X, c.Nest.Y, c.Heading)
	}
	for i, f := range c.Food {
		if !(f.W > 0) || !(f.H > 0) || !finite(f.X, f.Y, f.W, f.H) {
			return fmt.Errorf("%w: food %d is %s", ErrInvalidFood, i, f)
		}
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// FromMap populates the default config from a string map (flag-style
// key/value pairs). Text that does not parse is ignored; a malformed food
// list is an error. Out-of-range values are kept for Validate to reject.
func FromMap(cfg map[string]string) (Config, error) {
	return applyMap(DefaultConfig(), cfg)
}

// ConfigFor returns the base config of a registered scenario with cfg applied.
func ConfigFor(name string, cfg map[string]string) (Config, error) {
	switch name {
	case "anthill":
		return applyMap(DefaultConfig(), cfg)
	case "lone-ant":
		return applyMap(LoneAntConfig(), cfg)
	}
	return Config{}, fmt.Errorf("anthill: unknown scenario %q", name)
}

func applyMap(c Config, cfg map[string]string) (Config, error) {
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["ants"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Ants = parsed
		}
	}
	if v, ok := cfg["nest_x"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Nest.X = parsed
		}
	}
	if v, ok := cfg["nest_y"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Nest.Y = parsed
		}
	}
	if v, ok := cfg["heading"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Heading = parsed
		}
	}
	if v, ok := cfg["random_heading"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.RandomHeading = parsed
		}
	}
	if v, ok := cfg["food"]; ok {
		food, err := ParseFood(v)
		if err != nil {
			return c, err
		}
		c.Food = food
	}
	return c, nil
}
