// internal/component/movement.go
package component

import "math"

// Position is a world-space point.
type Position struct {
	X, Y float64
}

// DistSq returns the squared distance to another point.
func (p Position) DistSq(x, y float64) float64 {
	dx, dy := x-p.X, y-p.Y
	return dx*dx + dy*dy
}

// Dist returns the distance to another point.
func (p Position) Dist(x, y float64) float64 {
	return math.Sqrt(p.DistSq(x, y))
}

// Velocity is a world-space velocity in pixels per second.
type Velocity struct {
	VX, VY float64
}
