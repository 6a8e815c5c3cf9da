package ant

import (
	"math"
	"testing"

	"anthill/internal/core"
	"anthill/internal/field"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

type fixedHeadings []float64

func (h *fixedHeadings) Angle() float64 {
	v := (*h)[0]
	*h = (*h)[1:]
	return v
}

const eps = 1e-9

func newGrid(t *testing.T, w, h int) *field.Grid {
	t.Helper()
	g, err := field.New(w, h)
	if err != nil {
		t.Fatalf("field.New: %v", err)
	}
	return g
}

func TestDeltaUnitCircle(t *testing.T) {
	cases := []struct {
		heading float64
		dx, dy  float64
	}{
		{0, StepSize, 0},
		{90, 0, -StepSize},
		{180, -StepSize, 0},
		{270, 0, StepSize},
		{360, StepSize, 0},
	}
	for _, tc := range cases {
		dx, dy := Delta(tc.heading)
		if math.Abs(dx-tc.dx) > eps || math.Abs(dy-tc.dy) > eps {
			t.Fatalf("Delta(%v) = (%v,%v), want (%v,%v)", tc.heading, dx, dy, tc.dx, tc.dy)
		}
		theta := HeadingToRadians(tc.heading)
		if math.Abs(dx-StepSize*math.Cos(theta)) > eps || math.Abs(dy+StepSize*math.Sin(theta)) > eps {
			t.Fatalf("Delta(%v) disagrees with cos/sin of %v rad", tc.heading, theta)
		}
	}
}

func TestStepAdvancesAlongPreStepHeading(t *testing.T) {
	g := newGrid(t, 200, 200)
	for y := 0; y < 200; y += 3 {
		for x := 0; x < 200; x += 2 {
			g.Mark(x, y, field.ToHome)
		}
	}
	rng := core.NewRNG(7)
	for _, heading := range []float64{0, 17, 45, 80, 133.3, 200, 271, 359, -45, 725} {
		a := New(100, 100, heading)
		wantDX, wantDY := Delta(heading)
		a.Step(g, rng)
		if math.Abs(a.X-100-wantDX) > eps || math.Abs(a.Y-100-wantDY) > eps {
			t.Fatalf("heading %v: moved (%v,%v), want (%v,%v)", heading, a.X-100, a.Y-100, wantDX, wantDY)
		}
		moved := math.Hypot(a.X-100, a.Y-100)
		if math.Abs(moved-StepSize) > eps {
			t.Fatalf("heading %v: moved %v, want %v", heading, moved, StepSize)
		}
	}
}

func TestStepTurnsTowardEachCompassNeighbour(t *testing.T) {
	for _, d := range Directions {
		g := newGrid(t, 100, 100)
		// Heading 0 from (50.5, 50.5) lands in cell (55, 50).
		dx, dy := d.Offset()
		g.Mark(55+dx, 50+dy, field.ToFood)

		a := New(50.5, 50.5, 0)
		a.Step(g, fixedRand(0.9))
		if a.Heading != d.Heading() {
			t.Fatalf("%v: heading %v, want %v", d, a.Heading, d.Heading())
		}
	}
}

func TestSenseTreatsBothKindsAlike(t *testing.T) {
	for _, kind := range []field.Kind{field.ToHome, field.ToFood} {
		g := newGrid(t, 20, 20)
		g.Mark(10, 9, kind)
		heading, ok := Sense(g, 10.2, 10.7)
		if !ok || heading != 90 {
			t.Fatalf("%v: got (%v,%v), want (90,true)", kind, heading, ok)
		}
	}
}

func TestSenseFirstMatchWins(t *testing.T) {
	g := newGrid(t, 20, 20)
	g.Mark(9, 11, field.ToFood)  // SW
	g.Mark(11, 10, field.ToHome) // E
	g.Mark(10, 11, field.ToFood) // S
	d, ok := SenseDirection(g, 10, 10)
	if !ok || d != East {
		t.Fatalf("expected East to win, got %v ok=%v", d, ok)
	}
}

func TestSenseIgnoresOwnCell(t *testing.T) {
	g := newGrid(t, 20, 20)
	g.Mark(10, 10, field.ToFood)
	if _, ok := Sense(g, 10.5, 10.5); ok {
		t.Fatal("the ant's own cell is not a neighbour")
	}
}

func TestStepRandomTurnRange(t *testing.T) {
	g := newGrid(t, 100, 100)
	cases := []struct {
		r    float64
		want float64
	}{
		{0, -TurnRange},
		{0.5, 0},
		{0.75, TurnRange / 2},
	}
	for _, tc := range cases {
		a := New(50, 50, 10)
		a.Step(g, fixedRand(tc.r))
		if math.Abs(a.Heading-(10+tc.want)) > eps {
			t.Fatalf("r=%v: heading %v, want %v", tc.r, a.Heading, 10+tc.want)
		}
	}

	rng := core.NewRNG(99)
	for i := 0; i < 1000; i++ {
		a := New(50, 50, 0)
		a.Step(g, rng)
		if a.Heading < -TurnRange || a.Heading >= TurnRange {
			t.Fatalf("random turn %v outside [-%v, %v)", a.Heading, TurnRange, TurnRange)
		}
	}
}

func TestStepAtBoundaryDoesNotReadOutside(t *testing.T) {
	g := newGrid(t, 1, 1)
	g.Mark(0, 0, field.ToFood)
	// Heading 180 from (5.5, 0.5) lands on the single cell; every neighbour
	// is outside the grid.
	a := New(5.5, 0.5, 180)
	a.Step(g, fixedRand(0.5))
	if a.Heading != 180 {
		t.Fatalf("expected no signal and a zero random turn, heading %v", a.Heading)
	}

	far := New(-50, -50, 45)
	far.Step(g, fixedRand(0.5))
	if far.Heading != 45 {
		t.Fatalf("ant far outside the field should sense nothing, heading %v", far.Heading)
	}
}

func TestStepDoesNotMutateGrid(t *testing.T) {
	g := newGrid(t, 50, 50)
	g.Mark(20, 20, field.ToHome)
	before := append([]uint8(nil), g.Cells()...)
	a := New(17, 20.5, 0)
	for i := 0; i < 20; i++ {
		a.Step(g, fixedRand(0.3))
	}
	for i, v := range g.Cells() {
		if v != before[i] {
			t.Fatalf("cell %d changed from %d to %d", i, before[i], v)
		}
	}
}

func TestSpawn(t *testing.T) {
	if Spawn(0, Point{}, 0, nil) != nil {
		t.Fatal("spawning zero ants should return nil")
	}
	fixed := Spawn(3, Point{X: 4, Y: 5}, 80, nil)
	for i, a := range fixed {
		if a.X != 4 || a.Y != 5 || a.Heading != 80 || a.Carrying {
			t.Fatalf("ant %d: unexpected state %+v", i, a)
		}
	}
	drawn := fixedHeadings{10, 200, 350}
	for i, a := range Spawn(3, Point{}, 80, &drawn) {
		if want := []float64{10, 200, 350}[i]; a.Heading != want {
			t.Fatalf("ant %d: heading %v, want %v from the source", i, a.Heading, want)
		}
	}
	random := Spawn(50, Point{}, 80, core.NewRNG(3))
	distinct := map[float64]bool{}
	for _, a := range random {
		if a.Heading < 0 || a.Heading >= 360 {
			t.Fatalf("random heading %v outside [0,360)", a.Heading)
		}
		distinct[a.Heading] = true
	}
	if len(distinct) < 2 {
		t.Fatal("expected random headings to differ")
	}
}

func TestDirectionNames(t *testing.T) {
	want := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	headings := []float64{90, 45, 0, 315, 270, 225, 180, 135}
	for i, d := range Directions {
		if d.String() != want[i] {
			t.Fatalf("direction %d named %q, want %q", i, d.String(), want[i])
		}
		if d.Heading() != headings[i] {
			t.Fatalf("%v heading %v, want %v", d, d.Heading(), headings[i])
		}
	}
}
