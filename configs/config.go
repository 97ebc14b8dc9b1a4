package configs

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid config")

// Constantes do jogo. Tudo em pixels da superfície.
type Config struct {
	Title string

	ScreenWidth  float64
	ScreenHeight float64
	PaddleWidth  float64
	PaddleHeight float64
	PaddleMargin float64
	BallSize     float64

	BallSpeed     float64
	OpponentSpeed float64
	DeadZone      float64

	Net
}

// Rede central tracejada.
type Net struct {
	Width      float64
	DashHeight float64
	Period     float64
}

func New() Config {
	return Config{
		Title: "Pong",

		ScreenWidth:  800,
		ScreenHeight: 400,
		PaddleWidth:  12,
		PaddleHeight: 100,
		PaddleMargin: 20,
		BallSize:     12,

		BallSpeed:     5,
		OpponentSpeed: 5,
		DeadZone:      10,

		Net: Net{
			Width:      4,
			DashHeight: 15,
			Period:     25,
		},
	}
}

// Validate checks that the geometry fits on the surface.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen %vx%v", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 || c.BallSize <= 0 {
		return fmt.Errorf("%w: paddle %vx%v, ball %v", ErrInvalidConfig, c.PaddleWidth, c.PaddleHeight, c.BallSize)
	}
	if c.PaddleHeight > c.ScreenHeight {
		return fmt.Errorf("%w: paddle height %v exceeds screen height %v", ErrInvalidConfig, c.PaddleHeight, c.ScreenHeight)
	}
	if 2*(c.PaddleMargin+c.PaddleWidth) >= c.ScreenWidth {
		return fmt.Errorf("%w: paddles overlap on a %v wide screen", ErrInvalidConfig, c.ScreenWidth)
	}
	if c.Net.Period <= 0 {
		return fmt.Errorf("%w: net period %v", ErrInvalidConfig, c.Net.Period)
	}
	return nil
}
