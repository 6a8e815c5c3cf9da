package ant

import "anthill/internal/field"

// Direction is one of the eight compass neighbours of a cell.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

type compassPoint struct {
	dx, dy  int
	heading float64
	name    string
}

// Screen-space offsets: north is y-1.
var compass = [...]compassPoint{
	North:     {dx: 0, dy: -1, heading: 90, name: "N"},
	NorthEast: {dx: 1, dy: -1, heading: 45, name: "NE"},
	East:      {dx: 1, dy: 0, heading: 0, name: "E"},
	SouthEast: {dx: 1, dy: 1, heading: 315, name: "SE"},
	South:     {dx: 0, dy: 1, heading: 270, name: "S"},
	SouthWest: {dx: -1, dy: 1, heading: 225, name: "SW"},
	West:      {dx: -1, dy: 0, heading: 180, name: "W"},
	NorthWest: {dx: -1, dy: -1, heading: 135, name: "NW"},
}

// Directions lists the compass neighbours in sensing priority order.
var Directions = [...]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Offset returns the cell offset for d.
func (d Direction) Offset() (int, int) {
	c := compass[d]
	return c.dx, c.dy
}

// Heading returns the heading in degrees that points toward d.
func (d Direction) Heading() float64 { return compass[d].heading }

func (d Direction) String() string {
	if d < North || d > NorthWest {
		return "?"
	}
	return compass[d].name
}

// Sense scans the neighbours of the cell containing (x, y) in priority order
// and returns the heading of the first one holding a trail. Both trail kinds
// attract equally.
func Sense(s Sensor, x, y float64) (float64, bool) {
	d, ok := SenseDirection(s, x, y)
	if !ok {
		return 0, false
	}
	return d.Heading(), true
}

// SenseDirection is Sense returning the matching Direction.
func SenseDirection(s Sensor, x, y float64) (Direction, bool) {
	if s == nil {
		return 0, false
	}
	cx, cy := field.Floor(x), field.Floor(y)
	for _, d := range Directions {
		dx, dy := d.Offset()
		if s.Sense(cx+dx, cy+dy).Signal() {
			return d, true
		}
	}
	return 0, false
}
