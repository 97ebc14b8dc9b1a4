package game

import "math"

// Maximum deflection, reached when the ball hits a paddle's end.
const maxBounceAngle = math.Pi / 4

// Step advances the world by one frame.
func (w *World) Step() {
	b := &w.Ball

	b.X += b.DX
	b.Y += b.DY

	// Teto/Chão. Sem correção de posição.
	if b.Y <= 0 || b.Y+b.Size >= w.Height {
		b.DY = -b.DY
	}

	if Collides(&w.Left, b) {
		angle := deflection(&w.Left, b)
		b.DY = b.Speed * math.Sin(angle)
		b.DX = b.Speed * math.Cos(angle)
		if b.DX > 0 {
			b.DX = -b.DX
		}
	}

	if Collides(&w.Right, b) {
		angle := deflection(&w.Right, b)
		b.DY = b.Speed * math.Sin(angle)
		b.DX = -b.Speed * math.Cos(angle)
		if b.DX < 0 {
			b.DX = -b.DX
		}
	}

	// Saiu pela lateral: volta ao centro.
	if b.X <= 0 || b.X+b.Size >= w.Width {
		w.serve()
	}

	w.MoveOpponent()
}

// deflection maps where the ball struck the paddle to an angle. A hit on
// the centre gives 0 and a hit on either end gives ±maxBounceAngle; grazes
// beyond the ends are not clamped.
func deflection(p *Paddle, b *Ball) float64 {
	collidePoint := (b.CenterY() - p.CenterY()) / (p.Height / 2)
	return collidePoint * maxBounceAngle
}
