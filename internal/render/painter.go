//go:build ebiten

package render

import (
	"anthill/internal/ant"
	"anthill/internal/field"
	"anthill/internal/sims/anthill"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter draws a Ground: soil, the pheromone layer, food, then ants.
type Painter struct {
	w, h   int
	trails *ebiten.Image
	buf    []byte

	ShowTrails bool
}

// NewPainter allocates a painter for a w*h field.
func NewPainter(w, h int) *Painter {
	return &Painter{
		w:          w,
		h:          h,
		trails:     ebiten.NewImage(w, h),
		buf:        make([]byte, 4*w*h),
		ShowTrails: true,
	}
}

// Draw renders the current state of g at the given pixel scale.
func (p *Painter) Draw(dst *ebiten.Image, g *anthill.Ground, scale int) {
	if scale <= 0 {
		scale = 1
	}
	s := float32(scale)
	dst.Fill(anthill.TrailColor(field.None))

	cells := g.Cells()
	if p.ShowTrails && len(cells) == p.w*p.h {
		fillTrailsRGBA(p.buf, cells, g.Palette())
		p.trails.WritePixels(p.buf)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(scale), float64(scale))
		dst.DrawImage(p.trails, op)
	}

	for _, f := range g.Food() {
		vector.DrawFilledRect(dst, float32(f.X)*s, float32(f.Y)*s, float32(f.W)*s, float32(f.H)*s, anthill.FoodColor, false)
	}
	for _, a := range g.Ants() {
		vector.DrawFilledCircle(dst, float32(a.X)*s, float32(a.Y)*s, ant.Size*s, anthill.AntRGBA(a.Carrying), true)
	}
}
