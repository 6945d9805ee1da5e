// internal/defs/projectiles.go
package defs

// ProjectileStyle describes the projectile a weapon fires.
type ProjectileStyle struct {
	Size            float64
	CollisionRadius float64
	ExplosionRadius float64
	Cue             string
}

var defaultStyle = ProjectileStyle{Size: 5, CollisionRadius: 4.5, ExplosionRadius: 72, Cue: "fire_arrow"}

var projectileStyles = map[WeaponType]ProjectileStyle{
	WeaponBow:      {Size: 4, CollisionRadius: 4.2, ExplosionRadius: 72, Cue: "fire_arrow"},
	WeaponBallista: {Size: 6, CollisionRadius: 5, ExplosionRadius: 72, Cue: "fire_arrow"},
	WeaponArquebus: {Size: 3, CollisionRadius: 4.1, ExplosionRadius: 72, Cue: "fire_gun"},
	WeaponCannon:   {Size: 7, CollisionRadius: 5.6, ExplosionRadius: 96, Cue: "fire_cannon"},
	WeaponRifle:    {Size: 3, CollisionRadius: 4, ExplosionRadius: 72, Cue: "fire_gun"},
	WeaponNavalGun: {Size: 6, CollisionRadius: 5.2, ExplosionRadius: 110, Cue: "fire_cannon"},
	WeaponMissile:  {Size: 8, CollisionRadius: 6, ExplosionRadius: 140, Cue: "fire_cannon"},
}

// StyleFor returns the projectile style of a weapon, or the default style.
func StyleFor(w WeaponType) ProjectileStyle {
	if s, ok := projectileStyles[w]; ok {
		return s
	}
	return defaultStyle
}
