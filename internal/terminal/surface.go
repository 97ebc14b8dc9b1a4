// Package terminal hosts the game in a terminal through tcell. Surface
// coordinates are in playfield pixels and get scaled onto character cells.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

const block = '█'

type cells interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Size() (int, int)
}

// Surface draws onto a grid of cells. Each cell covers sx by sy pixels.
type Surface struct {
	screen cells
	sx, sy float64
}

func NewSurface(screen cells, width, height float64) *Surface {
	s := &Surface{screen: screen}
	s.Fit(width, height)
	return s
}

// Fit recomputes the pixel-to-cell scale, after a resize for instance.
func (s *Surface) Fit(width, height float64) {
	cols, rows := s.screen.Size()
	s.sx = width / float64(max(cols, 1))
	s.sy = height / float64(max(rows, 1))
}

// Row returns the playfield y at the middle of a terminal row.
func (s *Surface) Row(y int) float64 {
	return (float64(y) + 0.5) * s.sy
}

func (s *Surface) Clear(c color.Color) {
	st := tcell.StyleDefault.Background(toColor(c))
	cols, rows := s.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	st := tcell.StyleDefault.Foreground(toColor(c))
	x0, x1 := s.span(x, x+w, s.sx)
	y0, y1 := s.span(y, y+h, s.sy)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.put(cx, cy, st)
		}
	}
}

// FillCircle paints every cell whose centre lies inside the circle, and at
// least the cell holding the centre so small balls stay visible.
func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	st := tcell.StyleDefault.Foreground(toColor(c))
	x0, x1 := s.span(cx-r, cx+r, s.sx)
	y0, y1 := s.span(cy-r, cy+r, s.sy)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px := (float64(x) + 0.5) * s.sx
			py := (float64(y) + 0.5) * s.sy
			if math.Hypot(px-cx, py-cy) <= r {
				s.put(x, y, st)
			}
		}
	}
	s.put(int(cx/s.sx), int(cy/s.sy), st)
}

// span converts a pixel interval to a half-open cell interval.
func (s *Surface) span(from, to, scale float64) (int, int) {
	return int(math.Floor(from / scale)), int(math.Ceil(to / scale))
}

func (s *Surface) put(x, y int, st tcell.Style) {
	cols, rows := s.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	s.screen.SetContent(x, y, block, nil, st)
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
