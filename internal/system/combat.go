// internal/system/combat.go
package system

import (
	"math"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/entity"
	"go-naval-defense/internal/event"
	"go-naval-defense/internal/types"
	"go-naval-defense/pkg/ballistics"
)

// CombatSystem picks targets for towers and fires projectiles at them.
type CombatSystem struct {
	ecs     *entity.ECS
	env     *Env
	buckets *EnemyBuckets
}

func NewCombatSystem(ecs *entity.ECS, env *Env, buckets *EnemyBuckets) *CombatSystem {
	return &CombatSystem{ecs: ecs, env: env, buckets: buckets}
}

func (s *CombatSystem) Update(deltaTime float64) {
	s.buckets.Populate()
	for _, t := range s.ecs.Towers {
		if t.Cooldown > 0 {
			t.Cooldown -= deltaTime
		}
		if t.Cooldown > 0 {
			continue
		}
		target := FindTarget(s.ecs.Enemies, t)
		if target == nil {
			continue
		}
		s.fire(t, target)
		t.Cooldown = TowerCooldown(t)
	}
}

// FindTarget returns the nearest living enemy within range. On an exact tie the
// enemy that comes first in the collection wins.
func FindTarget(enemies []*component.Enemy, t *component.Tower) *component.Enemy {
	var best *component.Enemy
	rangeSq := t.Range * t.Range
	bestSq := math.Inf(1)
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		d := t.DistSq(e.X, e.Y)
		if d <= rangeSq && d < bestSq {
			best, bestSq = e, d
		}
	}
	return best
}

// EnemyVelocity is the analytic velocity of an orbiting enemy, scaled by a
// speed multiplier.
func EnemyVelocity(e *component.Enemy, speedMul float64) (float64, float64) {
	sin, cos := math.Sincos(e.Angle)
	vx := (-sin*e.AngularSpeed*e.Radius + cos*e.RadialSpeed) * speedMul
	vy := (cos*e.AngularSpeed*e.Radius + sin*e.RadialSpeed) * speedMul
	return vx, vy
}

func (s *CombatSystem) fire(t *component.Tower, target *component.Enemy) {
	speed := t.ProjectileSpeed * config.ProjectileSpeedFactor
	vx, vy := EnemyVelocity(target, 1)
	ax, ay := ballistics.LeadPoint(t.X, t.Y, target.X, target.Y, vx, vy, speed, config.MaxLeadTime)

	dx, dy := ax-t.X, ay-t.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}
	style := defs.StyleFor(t.Weapon)
	p := &component.Projectile{
		ID:            s.ecs.NewEntity(),
		TowerID:       t.ID,
		Position:      component.Position{X: t.X, Y: t.Y},
		Velocity:      component.Velocity{VX: dx / dist * speed, VY: dy / dist * speed},
		OriginX:       t.X,
		OriginY:       t.Y,
		MaxDistanceSq: t.Range * t.Range,
		TTL:           config.ProjectileTTL,
		Radius:        style.CollisionRadius + t.ProjectileRadiusBonus,
		Size:          style.Size,
		Damage:        TowerDamage(s.ecs, t),
		CritChance:    t.CritChance,
		Weapon:        t.Weapon,
		Type:          t.Projectile,
	}
	switch p.Type {
	case defs.ProjectilePiercing:
		p.HitEnemies = make(map[types.EntityID]struct{})
	case defs.ProjectileExplosive:
		p.ExplosionRadius = t.ExplosionRadius
		if p.ExplosionRadius <= 0 {
			p.ExplosionRadius = style.ExplosionRadius
		}
	case defs.ProjectileNormal:
	}
	if !t.Moving() {
		t.Heading = math.Atan2(dy, dx)
	}
	s.ecs.AddProjectile(p)
	s.env.emit(event.Fired, event.FiredData{TowerID: t.ID, Weapon: t.Weapon})
}
