package main

import (
	"image/color"
	"log/slog"
	"math/rand/v2"
	"os"

	"golang.org/x/image/font/basicfont"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wvoliveira/pong-solo/configs"
	"github.com/wvoliveira/pong-solo/internal/game"
	"github.com/wvoliveira/pong-solo/internal/render"
)

const hint = "Mouse: move left paddle"

// screen adapta *ebiten.Image para render.Surface.
type screen struct {
	img *ebiten.Image
}

func (s screen) Clear(c color.Color) {
	s.img.Fill(c)
}

func (s screen) FillRect(x, y, w, h float64, c color.Color) {
	vector.FillRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s screen) FillCircle(cx, cy, r float64, c color.Color) {
	vector.FillCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

type Game struct {
	world   *game.World
	pointer game.Pointer
	cfg     configs.Config
	palette render.Palette
	face    text.Face
}

func (g *Game) Update() error {
	// ebiten chama Update e Draw na mesma goroutine, então o mundo tem um único escritor.
	if x, y := ebiten.CursorPosition(); g.pointer.Moved(x, y) {
		g.world.TrackPointer(float64(y))
	}

	g.world.Step()
	return nil
}

func (g *Game) Draw(img *ebiten.Image) {
	render.Frame(screen{img}, g.world, g.cfg.Net, g.palette)

	text.Draw(img, hint, g.face, &text.DrawOptions{})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.ScreenWidth), int(g.cfg.ScreenHeight)
}

func main() {
	cfg := configs.New()
	if err := cfg.Validate(); err != nil {
		slog.Error("error to load config", "error", err)
		os.Exit(1)
	}

	g := &Game{
		world:   game.NewWorld(cfg, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))),
		cfg:     cfg,
		palette: render.DefaultPalette(),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}

	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowTitle(cfg.Title)

	slog.Info("starting game", "width", cfg.ScreenWidth, "height", cfg.ScreenHeight)
	if err := ebiten.RunGame(g); err != nil {
		slog.Error("error to run game", "error", err)
		os.Exit(1)
	}
}
