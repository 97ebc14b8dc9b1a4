package game

// MoveOpponent moves the right paddle one step toward the ball, holding
// still while the ball's centre is within DeadZone of the paddle's centre.
func (w *World) MoveOpponent() {
	p := &w.Right
	center := p.CenterY()
	ball := w.Ball.CenterY()

	switch {
	case ball < center-w.DeadZone:
		p.Y -= p.Speed
	case ball > center+w.DeadZone:
		p.Y += p.Speed
	}
	p.clamp(w.Height)
}
