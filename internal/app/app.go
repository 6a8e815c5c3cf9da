//go:build ebiten

package app

import (
	"time"

	"anthill/internal/render"
	"anthill/internal/sims/anthill"
	"anthill/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an anthill Ground to the ebiten.Game interface. Ticks and
// draws both run on ebiten's update goroutine, so a frame never observes a
// half-finished tick.
type Game struct {
	ground  *anthill.Ground
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay
	logger  *log.Logger

	scale int
	seed  int64
}

// New constructs a Game for the provided ground.
func New(g *anthill.Ground, cfg *Config, logger *log.Logger) *Game {
	size := g.Size()
	return &Game{
		ground:  g,
		painter: render.NewPainter(size.W, size.H),
		hud:     ui.NewHUD(g, cfg.HUDWidth),
		overlay: ui.NewOverlay(g, cfg.Scale),
		logger:  logger,
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.ground.Reset(seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ground.SetRunning(!g.ground.Running())
		g.logger.Debug("toggled pause", "running", g.ground.Running(), "tick", g.ground.Ticks())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.ground.Running() {
		g.ground.Tick()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.painter.ShowTrails = !g.painter.ShowTrails
	}

	g.overlay.Update()
	g.ground.Step()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.ground, g.scale)
	g.overlay.Draw(screen)
	s := g.ground.Size()
	g.hud.Draw(screen, s.W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ground.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
