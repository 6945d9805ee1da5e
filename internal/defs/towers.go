// internal/defs/towers.go
package defs

// UnitDefinition holds the static data of a rollable ship unit.
type UnitDefinition struct {
	ID              string          `yaml:"id"`
	Name            string          `yaml:"name"`
	Era             Era             `yaml:"era"`
	Rarity          Rarity          `yaml:"rarity"`
	Weapon          WeaponType      `yaml:"weapon"`
	Damage          float64         `yaml:"damage"`
	UpgradeDamage   float64         `yaml:"upgrade_damage"`
	FireRate        float64         `yaml:"fire_rate"`
	Range           float64         `yaml:"range"`
	ProjectileSpeed float64         `yaml:"projectile_speed"`
	Projectile      *ProjectileType `yaml:"projectile,omitempty"`
	ExplosionRadius float64         `yaml:"explosion_radius,omitempty"`
	CritChance      *float64        `yaml:"crit_chance,omitempty"`
	SpriteSize      float64         `yaml:"sprite_size,omitempty"`
}

// ProjectileType resolves the configured projectile type or the weapon default.
func (d UnitDefinition) ProjectileType() ProjectileType {
	if d.Projectile != nil {
		return *d.Projectile
	}
	return DefaultProjectileType(d.Weapon)
}

// Explosion resolves the configured explosion radius or the weapon default.
func (d UnitDefinition) Explosion() float64 {
	if d.ExplosionRadius > 0 {
		return d.ExplosionRadius
	}
	return StyleFor(d.Weapon).ExplosionRadius
}

// Crit resolves the configured crit chance or the rarity default.
func (d UnitDefinition) Crit() float64 {
	if d.CritChance != nil {
		return *d.CritChance
	}
	return CritChanceFor(d.Rarity)
}

var critChances = []float64{0.05, 0.06, 0.08, 0.10, 0.12, 0.14}

// CritChanceFor returns the default crit chance of a rarity.
func CritChanceFor(r Rarity) float64 {
	if r < Common || int(r) >= len(critChances) {
		return critChances[0]
	}
	return critChances[r]
}

var shipSizes = []int{1, 2, 4, 6, 8, 8}

// ShipSize is the shipyard capacity a unit of the given rarity occupies.
func ShipSize(r Rarity) int {
	if r < Common || int(r) >= len(shipSizes) {
		return 1
	}
	return shipSizes[r]
}
