// internal/system/tower_stats.go
package system

import (
	"math"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/entity"
)

// NewTower builds a tower from a definition at a clamped spawn point and adds
// it to the store.
func NewTower(ecs *entity.ECS, env *Env, def defs.UnitDefinition, x, y float64) *component.Tower {
	x, y = env.World.ClampToInnerRing(x, y, config.InnerRingMargin)
	t := &component.Tower{
		ID:        ecs.NewEntity(),
		Position:  component.Position{X: x, Y: y},
		TargetX:   x,
		TargetY:   y,
		MoveSpeed: config.TowerMoveSpeed,
		HP:        config.TowerHP,
		MaxHP:     config.TowerHP,
	}
	ApplyDefinition(t, def)
	ecs.AddTower(t)
	return t
}

// ApplyDefinition rewrites a tower's stat block from a definition in place.
// Fusion tier and position are preserved.
func ApplyDefinition(t *component.Tower, def defs.UnitDefinition) {
	t.UnitID = def.ID
	t.Name = def.Name
	t.Era = def.Era
	t.Rarity = def.Rarity
	t.TierIndex = int(def.Rarity)
	t.Weapon = def.Weapon
	t.BaseDamageBase = def.Damage
	t.UpgradeDamageBase = def.UpgradeDamage
	t.FireRate = def.FireRate
	t.Range = def.Range
	t.ProjectileSpeed = def.ProjectileSpeed
	t.CritChance = def.Crit()
	t.Size = defs.ShipSize(def.Rarity)
	t.SpriteSize = def.SpriteSize
	t.Cooldown = 0
	ApplyFootprint(t)
	RefreshFusion(t, def)
}

// ApplyFootprint derives collider and selection radii from the sprite size.
func ApplyFootprint(t *component.Tower) {
	size := t.SpriteSize
	if size <= 0 {
		size = config.TowerSpriteSize
	}
	base := math.Max(config.TowerMinSprite, size)
	t.ColliderRadius = math.Round(base * config.ColliderFactor)
	t.SelectionRadius = math.Round(base * config.SelectionFactor)
}

// RefreshFusion recomputes everything fusion tier derives: scaled damage,
// forced projectile type and widened radii.
func RefreshFusion(t *component.Tower, def defs.UnitDefinition) {
	UpdateFusionScaling(t)
	ApplyFusionBonuses(t, def)
}

// UpdateFusionScaling doubles damage per fusion tier from the un-fused base.
func UpdateFusionScaling(t *component.Tower) {
	mul := math.Pow(2, float64(t.FusionTier))
	t.BaseDamage = t.BaseDamageBase * mul
	t.UpgradeDamage = t.UpgradeDamageBase * mul
}

// ApplyFusionBonuses resets projectile behaviour to the definition and then
// applies the fusion bonuses. Fused ships occupy a single shipyard slot.
func ApplyFusionBonuses(t *component.Tower, def defs.UnitDefinition) {
	t.Projectile = def.ProjectileType()
	t.ExplosionRadiusBase = def.Explosion()
	t.ExplosionRadius = t.ExplosionRadiusBase
	t.ProjectileRadiusBonus = 0
	if t.FusionTier > 0 {
		t.Size = 1
	}
	if t.FusionTier < 2 {
		return
	}
	t.Projectile = defs.FusedProjectileType(t.Weapon)
	tier := float64(t.FusionTier - 1)
	switch t.Projectile {
	case defs.ProjectileExplosive:
		t.ExplosionRadius = t.ExplosionRadiusBase * (1 + 0.35*tier)
	case defs.ProjectilePiercing:
		t.ProjectileRadiusBonus = 2 + tier*1.5
	}
}

// TowerDamage is the per-shot damage before variance: base plus the shared
// upgrade level times the upgrade step.
func TowerDamage(ecs *entity.ECS, t *component.Tower) float64 {
	return t.BaseDamage + t.UpgradeDamage*float64(ecs.UpgradeLevel(t.UpgradeKey()))
}

// TowerCooldown is the delay between shots.
func TowerCooldown(t *component.Tower) float64 {
	if t.FireRate <= 0 {
		return math.Inf(1)
	}
	return math.Max(config.MinTowerCooldown, 1/t.FireRate)
}
