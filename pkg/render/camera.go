// pkg/render/camera.go
package render

import "math"

// Camera maps world coordinates onto the screen with a uniform scale and an
// offset that letterboxes the world.
type Camera struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// FitCamera scales a world of the given size to fit the screen, centered.
func FitCamera(worldW, worldH float64, screenW, screenH int) Camera {
	sw, sh := float64(screenW), float64(screenH)
	scale := math.Min(sw/worldW, sh/worldH)
	return Camera{
		Scale:   scale,
		OffsetX: (sw - worldW*scale) / 2,
		OffsetY: (sh - worldH*scale) / 2,
	}
}

func (c Camera) WorldToScreen(x, y float64) (float32, float32) {
	return float32(x*c.Scale + c.OffsetX), float32(y*c.Scale + c.OffsetY)
}

func (c Camera) ScreenToWorld(x, y int) (float64, float64) {
	if c.Scale == 0 {
		return 0, 0
	}
	return (float64(x) - c.OffsetX) / c.Scale, (float64(y) - c.OffsetY) / c.Scale
}

// Len scales a world length.
func (c Camera) Len(v float64) float32 {
	return float32(v * c.Scale)
}
