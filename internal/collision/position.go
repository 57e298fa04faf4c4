package collision

import "math"

// Position is a point on the ground plane.
type Position struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance to another position.
func (p Position) Distance(o Position) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns the position offset by (dx, dy).
func (p Position) Add(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}
