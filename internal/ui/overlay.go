//go:build ebiten

package ui

import (
	"image/color"

	"anthill/internal/sims/anthill"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional debugging visuals on top of the colony: heading
// arrows and the neighbour cell each ant would turn toward.
type Overlay struct {
	ground       *anthill.Ground
	scale        int
	showHeadings bool
	showSensing  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(g *anthill.Ground, scale int) *Overlay {
	return &Overlay{ground: g, scale: scale}
}

// Update toggles the layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHeadings = !o.showHeadings
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showSensing = !o.showSensing
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || o.ground == nil {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	s := float32(scale)

	if o.showSensing {
		hit := color.RGBA{R: 240, G: 240, B: 255, A: 160}
		for _, a := range o.ground.Ants() {
			x, y, ok := sensedCell(o.ground.Grid(), a)
			if !ok {
				continue
			}
			vector.StrokeRect(screen, float32(x)*s, float32(y)*s, s, s, 1, hit, false)
		}
	}

	if o.showHeadings {
		col := color.RGBA{R: 255, G: 255, B: 255, A: 200}
		for _, a := range o.ground.Ants() {
			for _, seg := range headingArrow(a, 8) {
				vector.StrokeLine(screen, float32(seg.x0)*s, float32(seg.y0)*s, float32(seg.x1)*s, float32(seg.y1)*s, 1, col, true)
			}
		}
	}
}
