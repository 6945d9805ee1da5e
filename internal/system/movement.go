// internal/system/movement.go
package system

import (
	"math"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"
	"go-naval-defense/internal/entity"
	"go-naval-defense/internal/utils"
)

// headingSmoothing is the share of the heading gap closed each frame.
const headingSmoothing = 0.35

// MovementSystem advances enemies along their orbits, runs boss abilities and
// moves player towers towards their orders.
type MovementSystem struct {
	ecs   *entity.ECS
	env   *Env
	waves *WaveSystem
}

func NewMovementSystem(ecs *entity.ECS, env *Env, waves *WaveSystem) *MovementSystem {
	return &MovementSystem{ecs: ecs, env: env, waves: waves}
}

// UpdateEnemies moves every living enemy, fires due boss abilities and then
// drops dead enemies.
func (s *MovementSystem) UpdateEnemies(deltaTime float64) {
	orbit := s.env.World.OrbitRadius
	minR := orbit * config.RadialMinRadiusRatio

	// Children spawned by abilities are appended past n and start moving next frame.
	n := len(s.ecs.Enemies)
	for i := 0; i < n; i++ {
		e := s.ecs.Enemies[i]
		if !e.Alive() {
			continue
		}
		prevX, prevY := e.X, e.Y

		e.Angle += e.AngularSpeed * deltaTime
		if e.RadialSpeed != 0 {
			e.Radius += e.RadialSpeed * deltaTime
			if e.Radius < minR {
				e.Radius = minR
				e.RadialSpeed = math.Abs(e.RadialSpeed)
			} else if e.Radius > orbit {
				e.Radius = orbit
				e.RadialSpeed = -math.Abs(e.RadialSpeed)
			}
		}
		e.X, e.Y = s.env.World.EnemyPosition(e.Angle, e.Radius)

		dx, dy := e.X-prevX, e.Y-prevY
		if dx*dx+dy*dy > 0.0001 {
			e.Heading = utils.LerpAngle(e.Heading, math.Atan2(dy, dx), headingSmoothing)
		}
		if !utils.Finite(e.Heading) {
			e.Heading = 0
		}

		if e.Boss != nil {
			e.Boss.AbilityCooldown -= deltaTime
			if e.Boss.AbilityCooldown <= 0 {
				s.waves.TriggerBossAbility(e)
			}
		}
	}
	s.ecs.RemoveDeadEnemies()
}

// UpdateTowers moves towers towards their targets and separates overlaps.
func (s *MovementSystem) UpdateTowers(deltaTime float64) {
	for _, t := range s.ecs.Towers {
		if !t.Moving() {
			continue
		}
		dx, dy := t.TargetX-t.X, t.TargetY-t.Y
		dist := math.Hypot(dx, dy)
		step := t.MoveSpeed * deltaTime
		if dist <= step {
			t.X, t.Y = t.TargetX, t.TargetY
		} else {
			t.X += dx / dist * step
			t.Y += dy / dist * step
		}
		t.Heading = utils.MoveAngleTowards(t.Heading, math.Atan2(dy, dx), config.TowerTurnRate*deltaTime)
	}
	s.resolveTowerCollisions()
}

// resolveTowerCollisions pushes overlapping colliders apart symmetrically.
// Coincident towers get a random symmetric nudge.
func (s *MovementSystem) resolveTowerCollisions() {
	towers := s.ecs.Towers
	for i := 0; i < len(towers); i++ {
		a := towers[i]
		for j := i + 1; j < len(towers); j++ {
			b := towers[j]
			minDist := a.ColliderRadius + b.ColliderRadius
			dx, dy := b.X-a.X, b.Y-a.Y
			distSq := dx*dx + dy*dy
			if distSq >= minDist*minDist {
				continue
			}
			var nx, ny, push float64
			if distSq == 0 {
				angle := s.ecs.Rng.Float64() * 2 * math.Pi
				nx, ny = math.Cos(angle), math.Sin(angle)
				push = 0.5
			} else {
				dist := math.Sqrt(distSq)
				nx, ny = dx/dist, dy/dist
				push = (minDist - dist) / 2
			}
			s.nudge(a, -nx*push, -ny*push)
			s.nudge(b, nx*push, ny*push)
		}
	}
}

func (s *MovementSystem) nudge(t *component.Tower, dx, dy float64) {
	moving := t.Moving()
	t.X, t.Y = s.env.World.ClampToInnerRing(t.X+dx, t.Y+dy, config.InnerRingMargin)
	if !moving {
		t.TargetX, t.TargetY = t.X, t.Y
	}
}

// OrderMove sends towers towards a point, spreading several of them on rings
// around it.
func (s *MovementSystem) OrderMove(towers []*component.Tower, x, y float64) {
	const spacing = 36.0
	step := max(6, len(towers))
	for i, t := range towers {
		var ox, oy float64
		if len(towers) > 1 {
			ring := i / step
			angle := float64(i%step) / float64(step) * 2 * math.Pi
			r := spacing + float64(ring)*spacing*0.7
			ox, oy = math.Cos(angle)*r, math.Sin(angle)*r
		}
		t.TargetX, t.TargetY = s.env.World.ClampToInnerRing(x+ox, y+oy, config.InnerRingMargin)
	}
}
