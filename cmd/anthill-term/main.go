package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"

	"anthill/internal/app"
	"anthill/internal/sims/anthill"
	"anthill/internal/term"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log-file", "", "write logs to this file; the terminal is owned by the view")
	flag.Parse()

	// The console logger is only used while the screen is not active; the
	// view logger goes to -log-file because stderr would scribble over it.
	console, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatal("bad flags", "err", err)
	}
	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			console.Fatal("open log file", "path", *logFile, "err", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := app.NewLogger(out, cfg.LogLevel)
	if err != nil {
		console.Fatal("bad flags", "err", err)
	}

	ground, err := app.BuildGround(cfg, logger)
	if err != nil {
		console.Fatal("setup failed", "err", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		console.Fatal("terminal", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// run releases the screen before returning, so errors land on a usable
	// terminal.
	if err := run(ctx, screen, ground, cfg, logger); err != nil {
		console.Error("viewer stopped", "err", err)
		stop()
		os.Exit(1)
	}
	s := ground.Stats()
	console.Info("done", "sim", ground.Name(), "ticks", s.Ticks, "carrying", s.Carrying, "to_food", s.ToFood, "to_home", s.ToHome)
}

// run owns the screen from Init to Fini and drives the viewer until the user
// quits or ctx is cancelled.
func run(ctx context.Context, screen tcell.Screen, ground *anthill.Ground, cfg *app.Config, logger *log.Logger) error {
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	err := term.NewViewer(screen, ground, cfg.Interval, logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	s := ground.Stats()
	logger.Info("done", "sim", ground.Name(), "ticks", s.Ticks, "carrying", s.Carrying, "to_food", s.ToFood, "to_home", s.ToHome)
	return err
}
