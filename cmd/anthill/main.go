//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"anthill/internal/app"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatal("bad flags", "err", err)
	}

	ground, err := app.BuildGround(cfg, logger)
	if err != nil {
		logger.Fatal("setup failed", "err", err)
	}

	game := app.New(ground, cfg, logger)
	size := ground.Size()

	ebiten.SetWindowTitle("Rusty Ants: " + ground.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game exited", "err", err)
	}
}
