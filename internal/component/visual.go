// internal/component/visual.go
package component

import "go-naval-defense/internal/defs"

// HitBlip is a short impact marker.
type HitBlip struct {
	X, Y     float64
	Weapon   defs.WeaponType
	Timer    float64
	Duration float64
}

// Floater is a rising damage number.
type Floater struct {
	X, Y     float64
	Amount   int
	Weapon   defs.WeaponType
	Timer    float64
	Duration float64
}

// Progress returns how far through its lifetime the effect is, in [0, 1].
func (f *Floater) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	return f.Timer / f.Duration
}
