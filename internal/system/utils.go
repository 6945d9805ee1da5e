// internal/system/utils.go
package system

import (
	"math"

	"go-naval-defense/internal/utils"
)

// RollDamage applies ±10% variance to a base damage value.
func RollDamage(rng *utils.PRNGService, base float64) float64 {
	return base * (0.9 + rng.Float64()*0.2)
}

// MitigatedDamage subtracts flat defense and rounds. A hit always deals at
// least 1.
func MitigatedDamage(raw, defense float64) int {
	return max(1, int(math.Round(raw-defense)))
}

// SplashRatio is the share of direct damage a secondary target takes at a
// distance from the blast. It falls linearly from maxRatio at the center to
// minRatio at the edge and is 0 beyond the radius.
func SplashRatio(dist, radius, maxRatio, minRatio float64) float64 {
	if radius <= 0 || dist > radius {
		return 0
	}
	return maxRatio - (maxRatio-minRatio)*math.Min(1, dist/radius)
}
