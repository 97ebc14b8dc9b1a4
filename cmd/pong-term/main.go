package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/wvoliveira/pong-solo/configs"
	"github.com/wvoliveira/pong-solo/internal/game"
	"github.com/wvoliveira/pong-solo/internal/render"
	"github.com/wvoliveira/pong-solo/internal/terminal"
)

func main() {
	if err := run(); err != nil {
		slog.Error("error to run game", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := configs.New()
	if err := cfg.Validate(); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	world := game.NewWorld(cfg, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	loop := terminal.NewLoop(screen, world, cfg, render.DefaultPalette())

	// Sem log na tela: o tcell ocupa o terminal até o Fini.
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
