// internal/system/visual_effect.go
package system

import (
	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"
	"go-naval-defense/internal/entity"
	"go-naval-defense/internal/event"
)

// VisualEffectSystem turns hit events into short-lived blips and damage
// floaters and ages them.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch d := e.Data.(type) {
	case event.HitBlipData:
		if len(s.ecs.HitBlips) >= config.MaxVisualEffects {
			s.ecs.HitBlips = s.ecs.HitBlips[1:]
		}
		s.ecs.HitBlips = append(s.ecs.HitBlips, &component.HitBlip{
			X: d.X, Y: d.Y, Weapon: d.Weapon, Duration: config.HitBlipDuration,
		})
	case event.DamageFloaterData:
		if len(s.ecs.Floaters) >= config.MaxVisualEffects {
			s.ecs.Floaters = s.ecs.Floaters[1:]
		}
		s.ecs.Floaters = append(s.ecs.Floaters, &component.Floater{
			X: d.X, Y: d.Y, Amount: d.Amount, Weapon: d.Weapon, Duration: config.FloaterDuration,
		})
	}
}

// Update advances effect timers and drops finished ones.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	blips := s.ecs.HitBlips[:0]
	for _, b := range s.ecs.HitBlips {
		b.Timer += deltaTime
		if b.Timer < b.Duration {
			blips = append(blips, b)
		}
	}
	clear(s.ecs.HitBlips[len(blips):])
	s.ecs.HitBlips = blips

	floaters := s.ecs.Floaters[:0]
	for _, f := range s.ecs.Floaters {
		f.Timer += deltaTime
		f.Y -= 24 * deltaTime
		if f.Timer < f.Duration {
			floaters = append(floaters, f)
		}
	}
	clear(s.ecs.Floaters[len(floaters):])
	s.ecs.Floaters = floaters
}
