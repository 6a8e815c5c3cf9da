package term

import (
	"context"
	"time"

	"anthill/internal/core"
	"anthill/internal/sims/anthill"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

// frameRate is how often the loop wakes to poll the tick pacer and redraw.
const frameRate = 50 * time.Millisecond

// Viewer runs a Ground in a terminal. Ticks, input, and drawing all happen
// on the Run goroutine.
type Viewer struct {
	screen tcell.Screen
	ground *anthill.Ground
	pacer  *core.FixedStep
	logger *log.Logger

	seed       int64
	showTrails bool
	dirty      bool
}

// NewViewer wires a screen to a ground ticking every interval. The screen
// must already be initialised.
func NewViewer(screen tcell.Screen, g *anthill.Ground, interval time.Duration, logger *log.Logger) *Viewer {
	return &Viewer{
		screen:     screen,
		ground:     g,
		pacer:      core.NewFixedStep(interval),
		logger:     logger,
		seed:       g.Seed(),
		showTrails: true,
		dirty:      true,
	}
}

// Run processes input and ticks until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	pumpCtx, stop := context.WithCancel(ctx)
	defer stop()
	events := make(chan tcell.Event, 16)
	go v.pump(pumpCtx, events)

	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if v.Handle(ev) {
				v.logger.Info("quit", "tick", v.ground.Ticks())
				return nil
			}
		case now := <-ticker.C:
			v.Advance(now)
		}
		if v.dirty {
			v.Draw()
		}
	}
}

// pump forwards screen events until the screen is finalised or ctx is done.
// It closes events on return.
func (v *Viewer) pump(ctx context.Context, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Advance runs the ticks that are due at now.
func (v *Viewer) Advance(now time.Time) {
	for n := v.pacer.Due(now); n > 0; n-- {
		if !v.ground.Running() {
			return
		}
		v.ground.Step()
		v.dirty = true
	}
}

// Handle applies one input event and reports whether the viewer should exit.
func (v *Viewer) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		v.dirty = true
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				v.ground.SetRunning(!v.ground.Running())
				v.logger.Debug("toggled pause", "running", v.ground.Running())
			case 'n':
				if !v.ground.Running() {
					v.ground.Tick()
				}
			case 'r':
				v.ground.Reset(v.seed)
			case 't':
				v.showTrails = !v.showTrails
			}
			v.dirty = true
		}
	}
	return false
}

// Draw composes and paints the current state.
func (v *Viewer) Draw() {
	cols, rows := v.screen.Size()
	Paint(v.screen, Compose(v.ground, cols, rows, v.showTrails))
	v.dirty = false
}
