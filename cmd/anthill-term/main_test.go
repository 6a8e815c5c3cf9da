package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"anthill/internal/app"
	"anthill/internal/sims/anthill"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

type countingScreen struct {
	tcell.SimulationScreen
	finis int
}

func (s *countingScreen) Fini() {
	s.finis++
	s.SimulationScreen.Fini()
}

func newGround(t *testing.T) *anthill.Ground {
	t.Helper()
	cfg := anthill.DefaultConfig()
	cfg.Width, cfg.Height = 80, 40
	g, err := anthill.New(cfg)
	if err != nil {
		t.Fatalf("anthill.New: %v", err)
	}
	return g
}

func TestRunReleasesScreenOnCancel(t *testing.T) {
	screen := &countingScreen{SimulationScreen: tcell.NewSimulationScreen("UTF-8")}
	var buf bytes.Buffer
	logger := log.New(&buf)
	cfg := app.NewConfig()
	cfg.Interval = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	g := newGround(t)
	err := run(ctx, screen, g, cfg, logger)
	if err == nil {
		t.Fatal("a deadline is not a clean quit")
	}
	if screen.finis != 1 {
		t.Fatalf("expected one Fini, got %d", screen.finis)
	}
	if !strings.Contains(buf.String(), "done") {
		t.Fatalf("expected the summary on the view logger, got %q", buf.String())
	}
}

func TestRunTreatsCancelAsQuit(t *testing.T) {
	screen := &countingScreen{SimulationScreen: tcell.NewSimulationScreen("UTF-8")}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := run(ctx, screen, newGround(t), app.NewConfig(), log.New(&bytes.Buffer{})); err != nil {
		t.Fatalf("cancel should end the run cleanly, got %v", err)
	}
	if screen.finis != 1 {
		t.Fatalf("expected one Fini, got %d", screen.finis)
	}
}
