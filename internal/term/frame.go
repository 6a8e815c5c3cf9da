// Package term renders a Ground into a terminal and drives its ticks.
package term

import (
	"fmt"
	"math"

	"anthill/internal/field"
	"anthill/internal/sims/anthill"

	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal character of a composed frame.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Frame is a downsampled view of the field plus a status line.
type Frame struct {
	W, H   int
	Cells  []Cell
	Status string
}

// At returns the cell at column x, row y.
func (f Frame) At(x, y int) Cell { return f.Cells[y*f.W+x] }

var (
	styleEmpty    = tcell.StyleDefault
	styleToHome   = tcell.StyleDefault.Foreground(rgb(0x4a, 0x6a, 0xa8))
	styleToFood   = tcell.StyleDefault.Foreground(rgb(0xc9, 0xa2, 0x27))
	styleFood     = tcell.StyleDefault.Foreground(rgb(anthill.FoodColor.R, anthill.FoodColor.G, anthill.FoodColor.B))
	styleAnt      = tcell.StyleDefault.Foreground(rgb(anthill.AntColor.R, anthill.AntColor.G, anthill.AntColor.B)).Bold(true)
	styleCarrying = tcell.StyleDefault.Foreground(rgb(anthill.CarryingColor.R, anthill.CarryingColor.G, anthill.CarryingColor.B)).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

func rgb(r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

const (
	runeAnt      = '*'
	runeCarrying = 'o'
	runeFood     = '#'
	runeToHome   = '.'
	runeToFood   = ':'
)

// Compose maps the field onto cols x rows terminal cells. The last row holds
// the status line. Ants draw over food, food over trails; a ToFood trail
// anywhere in a cell's footprint wins over ToHome.
func Compose(g *anthill.Ground, cols, rows int, showTrails bool) Frame {
	if cols <= 0 || rows <= 1 {
		return Frame{}
	}
	h := rows - 1
	f := Frame{W: cols, H: h, Cells: make([]Cell, cols*h)}
	for i := range f.Cells {
		f.Cells[i] = Cell{Rune: ' ', Style: styleEmpty}
	}

	size := g.Size()
	sx := float64(size.W) / float64(cols)
	sy := float64(size.H) / float64(h)
	toCell := func(x, y float64) (int, int, bool) {
		cx, cy := field.Floor(x/sx), field.Floor(y/sy)
		return cx, cy, cx >= 0 && cx < cols && cy >= 0 && cy < h
	}

	if showTrails {
		grid := g.Grid()
		for y := 0; y < size.H; y++ {
			for x := 0; x < size.W; x++ {
				k := grid.Sense(x, y)
				if k == field.None {
					continue
				}
				cx, cy, ok := toCell(float64(x), float64(y))
				if !ok {
					continue
				}
				c := &f.Cells[cy*cols+cx]
				switch k {
				case field.ToFood:
					*c = Cell{Rune: runeToFood, Style: styleToFood}
				case field.ToHome:
					if c.Rune != runeToFood {
						*c = Cell{Rune: runeToHome, Style: styleToHome}
					}
				case field.None:
				}
			}
		}
	}

	for _, food := range g.Food() {
		x0, y0, _ := toCell(food.X, food.Y)
		x1 := int(math.Ceil((food.X+food.W)/sx)) - 1
		y1 := int(math.Ceil((food.Y+food.H)/sy)) - 1
		for cy := max(y0, 0); cy <= min(y1, h-1); cy++ {
			for cx := max(x0, 0); cx <= min(x1, cols-1); cx++ {
				f.Cells[cy*cols+cx] = Cell{Rune: runeFood, Style: styleFood}
			}
		}
	}

	for _, a := range g.Ants() {
		cx, cy, ok := toCell(a.X, a.Y)
		if !ok {
			continue
		}
		if a.Carrying {
			f.Cells[cy*cols+cx] = Cell{Rune: runeCarrying, Style: styleCarrying}
		} else if f.Cells[cy*cols+cx].Rune != runeCarrying {
			f.Cells[cy*cols+cx] = Cell{Rune: runeAnt, Style: styleAnt}
		}
	}

	s := g.Stats()
	state := "running"
	if !g.Running() {
		state = "paused"
	}
	f.Status = fmt.Sprintf(" %s  tick %d  carrying %d/%d  trails %d/%d  [%s]  q quit  space pause  n step  r reset  t trails",
		g.Name(), s.Ticks, s.Carrying, s.Ants, s.ToFood, s.ToHome, state)
	return f
}

// Paint copies a frame onto screen.
func Paint(screen tcell.Screen, f Frame) {
	screen.Clear()
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			c := f.At(x, y)
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	for x := 0; x < f.W; x++ {
		r := ' '
		if x < len(f.Status) {
			r = rune(f.Status[x])
		}
		screen.SetContent(x, f.H, r, nil, styleStatus)
	}
	screen.Show()
}
