package game

import (
	"math/rand/v2"

	"github.com/wvoliveira/pong-solo/configs"
)

type Paddle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Speed  float64 // deslocamento vertical por frame
}

func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// clamp keeps the paddle inside [0, surfaceHeight-Height].
func (p *Paddle) clamp(surfaceHeight float64) {
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y+p.Height > surfaceHeight {
		p.Y = surfaceHeight - p.Height
	}
}

// Ball is positioned by the top-left corner of its bounding square.
type Ball struct {
	X     float64
	Y     float64
	Size  float64
	Speed float64
	DX    float64
	DY    float64
}

func (b *Ball) CenterY() float64 {
	return b.Y + b.Size/2
}

// World holds the two paddles and the ball. It is owned by the loop driver
// and must only be touched from the goroutine that runs the loop.
type World struct {
	Width    float64
	Height   float64
	DeadZone float64

	Left  Paddle
	Right Paddle
	Ball  Ball

	rng *rand.Rand
}

func NewWorld(cfg configs.Config, rng *rand.Rand) *World {
	w := &World{
		Width:    cfg.ScreenWidth,
		Height:   cfg.ScreenHeight,
		DeadZone: cfg.DeadZone,
		Left: Paddle{
			X:      cfg.PaddleMargin,
			Y:      cfg.ScreenHeight/2 - cfg.PaddleHeight/2,
			Width:  cfg.PaddleWidth,
			Height: cfg.PaddleHeight,
		},
		Right: Paddle{
			X:      cfg.ScreenWidth - cfg.PaddleMargin - cfg.PaddleWidth,
			Y:      cfg.ScreenHeight/2 - cfg.PaddleHeight/2,
			Width:  cfg.PaddleWidth,
			Height: cfg.PaddleHeight,
			Speed:  cfg.OpponentSpeed,
		},
		Ball: Ball{
			Size:  cfg.BallSize,
			Speed: cfg.BallSpeed,
		},
		rng: rng,
	}
	w.serve()
	return w
}

// serve centres the ball and picks a diagonal direction at random.
func (w *World) serve() {
	b := &w.Ball
	b.X = w.Width/2 - b.Size/2
	b.Y = w.Height/2 - b.Size/2
	b.DX = b.Speed * w.randomSign()
	b.DY = b.Speed * w.randomSign()
}

func (w *World) randomSign() float64 {
	if w.rng.IntN(2) == 0 {
		return -1
	}
	return 1
}
