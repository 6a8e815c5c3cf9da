// Package ant implements the per-agent state and the Step rule: move along
// the heading, sense the eight neighbouring cells, then turn toward a trail
// or wander.
package ant

import (
	"math"

	"anthill/internal/field"
)

const (
	// StepSize is the distance every ant covers per tick.
	StepSize = 5.0
	// TurnRange bounds the random heading change in degrees, either way.
	TurnRange = 30.0
	// Size is the drawn radius of an ant.
	Size = 2.0
)

// Sensor is the read-only view of the pheromone grid an ant may consult.
type Sensor interface {
	Sense(x, y int) field.Kind
}

// Rand supplies uniform values in [0, 1) for the random walk.
type Rand interface {
	Float64() float64
}

// Headings draws spawn headings in [0, 360) degrees.
type Headings interface {
	Angle() float64
}

// Ant is a single agent. Heading is in degrees, counter-clockwise from east,
// and is not wrapped into [0, 360).
type Ant struct {
	X        float64
	Y        float64
	Heading  float64
	Carrying bool
}

// Point is a field position.
type Point struct {
	X, Y float64
}

// New returns an ant at (x, y) facing heading.
func New(x, y, heading float64) Ant {
	return Ant{X: x, Y: y, Heading: heading}
}

// Spawn creates n ants at nest. When src is non-nil each ant draws its own
// heading from it, otherwise all share heading.
func Spawn(n int, nest Point, heading float64, src Headings) []Ant {
	if n <= 0 {
		return nil
	}
	ants := make([]Ant, n)
	for i := range ants {
		h := heading
		if src != nil {
			h = src.Angle()
		}
		ants[i] = New(nest.X, nest.Y, h)
	}
	return ants
}

// HeadingToRadians converts a heading in degrees to radians.
func HeadingToRadians(heading float64) float64 {
	return heading * math.Pi / 180
}

// Delta returns the displacement of one step along heading. Y grows downward
// on screen, so a heading of 90 moves toward smaller Y.
func Delta(heading float64) (dx, dy float64) {
	theta := HeadingToRadians(heading)
	return StepSize * math.Cos(theta), -StepSize * math.Sin(theta)
}

// Step advances the ant, senses the grid around its new position, and turns.
// It never writes to the grid.
func (a *Ant) Step(s Sensor, rng Rand) {
	a.Advance()
	if heading, ok := Sense(s, a.X, a.Y); ok {
		a.Heading = heading
		return
	}
	a.Turn(rng)
}

// Advance moves the ant one step along its current heading.
func (a *Ant) Advance() {
	dx, dy := Delta(a.Heading)
	a.X += dx
	a.Y += dy
}

// Turn perturbs the heading by a uniform delta in [-TurnRange, TurnRange).
func (a *Ant) Turn(rng Rand) {
	if rng == nil {
		return
	}
	a.Heading += (rng.Float64()*2 - 1) * TurnRange
}
