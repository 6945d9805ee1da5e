// internal/component/projectile.go
package component

import (
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/types"
)

// Projectile is a fired shot. Type selects exactly one damage semantic;
// HitEnemies is only allocated for piercing projectiles.
type Projectile struct {
	ID      types.EntityID
	TowerID types.EntityID

	Position
	Velocity
	OriginX, OriginY float64
	MaxDistanceSq    float64
	TTL              float64
	Radius           float64
	Size             float64

	Damage          float64
	CritChance      float64
	Weapon          defs.WeaponType
	Type            defs.ProjectileType
	ExplosionRadius float64
	HitEnemies      map[types.EntityID]struct{}
}

// Expired reports whether the projectile should be removed.
func (p *Projectile) Expired() bool {
	return p.TTL <= 0
}
