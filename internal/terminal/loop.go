package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/wvoliveira/pong-solo/configs"
	"github.com/wvoliveira/pong-solo/internal/game"
	"github.com/wvoliveira/pong-solo/internal/render"
)

const frame = 16 * time.Millisecond // ~60 FPS

// Screen is the part of tcell.Screen the loop needs.
type Screen interface {
	cells
	PollEvent() tcell.Event
	Show()
	Sync()
}

// Loop owns the world. Terminal events arrive on a channel and are applied
// by the same goroutine that steps and draws, so the world has one writer.
type Loop struct {
	screen  Screen
	surface *Surface
	world   *game.World
	net     configs.Net
	palette render.Palette
}

func NewLoop(screen Screen, world *game.World, cfg configs.Config, pal render.Palette) *Loop {
	return &Loop{
		screen:  screen,
		surface: NewSurface(screen, world.Width, world.Height),
		world:   world,
		net:     cfg.Net,
		palette: pal,
	}
}

// Run steps and draws once per frame until ctx is done or the player quits.
// The caller owns the screen and must Fini it afterwards.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !l.handle(ev) {
				return nil
			}

		case <-ticker.C:
			l.tick()
		}
	}
}

// handle applies one terminal event. It returns false when the player quits.
func (l *Loop) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		_, y := ev.Position()
		l.world.TrackPointer(l.surface.Row(y))

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}

	case *tcell.EventResize:
		l.surface.Fit(l.world.Width, l.world.Height)
		l.screen.Sync()
	}
	return true
}

func (l *Loop) tick() {
	l.world.Step()
	render.Frame(l.surface, l.world, l.net, l.palette)
	l.screen.Show()
}
