package game

// TrackPointer centres the left paddle on the pointer's vertical position,
// given in surface coordinates.
func (w *World) TrackPointer(y float64) {
	w.Left.Y = y - w.Left.Height/2
	w.Left.clamp(w.Height)
}

// Pointer turns polled cursor positions into move notifications: Moved
// reports true only when the position differs from the previous poll.
type Pointer struct {
	x, y  int
	known bool
}

func (p *Pointer) Moved(x, y int) bool {
	if p.known && x == p.x && y == p.y {
		return false
	}
	first := !p.known
	p.x, p.y, p.known = x, y, true
	// O primeiro valor só serve de referência, a não ser que já esteja fora da origem.
	return !first || x != 0 || y != 0
}
