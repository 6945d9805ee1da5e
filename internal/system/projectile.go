// internal/system/projectile.go
package system

import (
	"go-naval-defense/internal/component"
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/entity"
	"go-naval-defense/internal/types"
)

// ProjectileSystem moves projectiles and resolves their collisions.
type ProjectileSystem struct {
	ecs     *entity.ECS
	damage  *DamageSystem
	buckets *EnemyBuckets
}

func NewProjectileSystem(ecs *entity.ECS, damage *DamageSystem, buckets *EnemyBuckets) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, damage: damage, buckets: buckets}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, p := range s.ecs.Projectiles {
		p.X += p.VX * deltaTime
		p.Y += p.VY * deltaTime
		p.TTL -= deltaTime
		if p.Expired() {
			continue
		}
		dx, dy := p.X-p.OriginX, p.Y-p.OriginY
		if dx*dx+dy*dy >= p.MaxDistanceSq {
			p.TTL = 0
			continue
		}
		s.collide(p)
	}
	s.ecs.RemoveExpiredProjectiles()
	s.buckets.Invalidate()
}

func (s *ProjectileSystem) collide(p *component.Projectile) {
	for _, e := range s.buckets.Query(p) {
		if !e.Alive() {
			continue
		}
		if p.Type == defs.ProjectilePiercing {
			if _, seen := p.HitEnemies[e.ID]; seen {
				continue
			}
		}
		hitRadius := e.Size + p.Radius
		if p.DistSq(e.X, e.Y) > hitRadius*hitRadius {
			continue
		}

		hits := 1
		if p.CritChance > 0 && s.ecs.Rng.Float64() < p.CritChance {
			hits = 2
		}
		raw := RollDamage(s.ecs.Rng, p.Damage)

		switch p.Type {
		case defs.ProjectilePiercing:
			s.damage.Deal(e, raw, p.Weapon, hits, false)
			if p.HitEnemies == nil {
				p.HitEnemies = make(map[types.EntityID]struct{})
			}
			p.HitEnemies[e.ID] = struct{}{}
			continue
		case defs.ProjectileExplosive:
			s.damage.Deal(e, raw, p.Weapon, hits, true)
			s.damage.Splash(p, e, hits)
		case defs.ProjectileNormal:
			s.damage.Deal(e, raw, p.Weapon, hits, false)
		}
		p.TTL = 0
		return
	}
}
