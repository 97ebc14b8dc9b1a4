// Package render paints the world onto a drawing surface.
package render

import (
	"image/color"

	"github.com/wvoliveira/pong-solo/configs"
	"github.com/wvoliveira/pong-solo/internal/game"
)

// Surface is the set of drawing primitives the host provides.
type Surface interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
}

type Palette struct {
	Background color.Color
	Net        color.Color
	Paddle     color.Color
	Ball       color.Color
}

func DefaultPalette() Palette {
	return Palette{
		Background: color.Black,
		Net:        color.NRGBA{0xff, 0xff, 0xff, 0x55},
		Paddle:     color.White,
		Ball:       color.White,
	}
}

// Frame repaints the whole surface from w. It only reads w.
func Frame(s Surface, w *game.World, net configs.Net, pal Palette) {
	s.Clear(pal.Background)

	drawNet(s, w, net, pal.Net)

	for _, p := range []*game.Paddle{&w.Left, &w.Right} {
		s.FillRect(p.X, p.Y, p.Width, p.Height, pal.Paddle)
	}

	b := &w.Ball
	r := b.Size / 2
	s.FillCircle(b.X+r, b.Y+r, r, pal.Ball)
}

func drawNet(s Surface, w *game.World, net configs.Net, c color.Color) {
	x := w.Width/2 - net.Width/2
	for y := 0.0; y < w.Height; y += net.Period {
		s.FillRect(x, y, net.Width, net.DashHeight, c)
	}
}
