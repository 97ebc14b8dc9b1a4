package game

// Collides reports whether the ball's bounding square overlaps the paddle.
// Touching edges do not count.
func Collides(p *Paddle, b *Ball) bool {
	return b.X < p.X+p.Width &&
		b.X+b.Size > p.X &&
		b.Y < p.Y+p.Height &&
		b.Y+b.Size > p.Y
}
