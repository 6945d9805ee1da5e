// internal/config/world.go
package config

import "math"

// World is the static battlefield geometry of a run.
type World struct {
	Width, Height    float64
	GridX, GridY     float64
	GridWidth        float64
	GridHeight       float64
	CellSize         float64
	CenterX, CenterY float64
	OrbitRadius      float64
	InnerOrbitRadius float64
}

// NewWorld derives the geometry from the grid constants. The placement grid is
// centered in the world, and both orbits are squares around the world center.
func NewWorld() World {
	gw := GridCols * GridCellSize
	gh := GridRows * GridCellSize
	base := math.Min(gw, gh) * OrbitBaseMul
	return World{
		Width:            WorldWidth,
		Height:           WorldHeight,
		GridX:            (WorldWidth - gw) / 2,
		GridY:            (WorldHeight - gh) / 2,
		GridWidth:        gw,
		GridHeight:       gh,
		CellSize:         GridCellSize,
		CenterX:          WorldWidth / 2,
		CenterY:          WorldHeight / 2,
		OrbitRadius:      base * OrbitMul,
		InnerOrbitRadius: base * InnerOrbitMul * OrbitMul,
	}
}

// ProjectToSquare maps an angle and a half-size onto the perimeter of an
// axis-aligned square centered on the world center.
func (w World) ProjectToSquare(angle, halfSize float64) (float64, float64) {
	c, s := math.Cos(angle), math.Sin(angle)
	m := math.Max(math.Abs(c), math.Abs(s))
	if m == 0 {
		return w.CenterX, w.CenterY
	}
	scale := halfSize / m
	return w.CenterX + c*scale, w.CenterY + s*scale
}

// EnemyPosition projects an orbital (angle, radius) pair onto the square orbit.
// The radius is clamped to the outer orbit.
func (w World) EnemyPosition(angle, radius float64) (float64, float64) {
	half := math.Min(math.Abs(radius), w.OrbitRadius)
	return w.ProjectToSquare(angle, half)
}

// ClampToInnerRing keeps a point inside the square placement area.
func (w World) ClampToInnerRing(x, y, margin float64) (float64, float64) {
	half := math.Max(0, w.InnerOrbitRadius-margin)
	x = math.Max(w.CenterX-half, math.Min(w.CenterX+half, x))
	y = math.Max(w.CenterY-half, math.Min(w.CenterY+half, y))
	return x, y
}
