// internal/component/tower.go
package component

import (
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/types"
)

// Tower is a player ship. Its upgrade level is not stored here: it is always
// read from the shared upgrade table by UpgradeKey.
type Tower struct {
	ID        types.EntityID
	UnitID    string
	Name      string
	Era       defs.Era
	Rarity    defs.Rarity
	TierIndex int
	Weapon    defs.WeaponType

	Position
	TargetX, TargetY float64
	MoveSpeed        float64
	Heading          float64

	FusionTier int
	// BaseDamageBase and UpgradeDamageBase are the un-fused values. BaseDamage
	// and UpgradeDamage are derived from them by fusion tier.
	BaseDamageBase    float64
	UpgradeDamageBase float64
	BaseDamage        float64
	UpgradeDamage     float64

	FireRate        float64
	Range           float64
	ProjectileSpeed float64
	Projectile      defs.ProjectileType
	// ExplosionRadiusBase is the definition value before fusion widening.
	ExplosionRadiusBase   float64
	ExplosionRadius       float64
	ProjectileRadiusBonus float64
	CritChance            float64

	// Size is the shipyard capacity the tower occupies.
	Size            int
	SpriteSize      float64
	ColliderRadius  float64
	SelectionRadius float64

	Cooldown  float64
	HP, MaxHP float64
}

// UpgradeKey identifies the shared upgrade entry a tower reads its level from.
type UpgradeKey struct {
	Weapon    defs.WeaponType
	Era       defs.Era
	TierIndex int
}

func (t *Tower) UpgradeKey() UpgradeKey {
	return UpgradeKey{Weapon: t.Weapon, Era: t.Era, TierIndex: t.TierIndex}
}

// Moving reports whether the tower has not reached its move target yet.
func (t *Tower) Moving() bool {
	return t.DistSq(t.TargetX, t.TargetY) > 0.25
}
