package ui

import (
	"math"

	"anthill/internal/ant"
	"anthill/internal/core"
)

// hudLines flattens a parameter snapshot into the text rows of the panel.
func hudLines(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title}
	for _, group := range snap.Groups {
		lines = append(lines, "", group.Name)
		for _, p := range group.Params {
			lines = append(lines, "  "+p.Label+": "+p.Value)
		}
	}
	return lines
}

type segment struct {
	x0, y0, x1, y1 float64
}

// headingArrow returns the shaft and the two barbs of an arrow pointing along
// the ant's heading, in field coordinates.
func headingArrow(a ant.Ant, length float64) [3]segment {
	dx, dy := ant.Delta(a.Heading)
	nx, ny := dx/ant.StepSize, dy/ant.StepSize
	tipX, tipY := a.X+nx*length, a.Y+ny*length

	const headAngle = math.Pi / 6
	headLength := length * 0.35
	angle := math.Atan2(ny, nx)
	return [3]segment{
		{a.X, a.Y, tipX, tipY},
		{tipX, tipY, tipX - math.Cos(angle+headAngle)*headLength, tipY - math.Sin(angle+headAngle)*headLength},
		{tipX, tipY, tipX - math.Cos(angle-headAngle)*headLength, tipY - math.Sin(angle-headAngle)*headLength},
	}
}

// sensedCell returns the neighbour cell an ant at its current position would
// turn toward, if any.
func sensedCell(s ant.Sensor, a ant.Ant) (int, int, bool) {
	d, ok := ant.SenseDirection(s, a.X, a.Y)
	if !ok {
		return 0, 0, false
	}
	dx, dy := d.Offset()
	return int(math.Floor(a.X)) + dx, int(math.Floor(a.Y)) + dy, true
}
