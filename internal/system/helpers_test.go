package system

import (
	"testing"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/entity"
	"go-naval-defense/internal/event"

	"github.com/rs/zerolog"
)

// fixture wires every system around one store of a running game sitting at
// the preparation round.
type fixture struct {
	ecs *entity.ECS
	env *Env
	rec *event.Recorder

	pools       *UnitPools
	buckets     *EnemyBuckets
	waves       *WaveSystem
	state       *StateSystem
	movement    *MovementSystem
	combat      *CombatSystem
	damage      *DamageSystem
	projectiles *ProjectileSystem
	economy     *EconomySystem
	fusion      *FusionSystem
	commands    *CommandSystem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	lib, err := defs.Default()
	if err != nil {
		t.Fatalf("defs.Default: %v", err)
	}
	rec := &event.Recorder{}
	d := event.NewDispatcher()
	d.SubscribeMany(rec, event.All...)

	cfg := config.Default()
	env := &Env{Config: cfg, World: config.NewWorld(), Library: lib, Events: d, Log: zerolog.Nop()}
	ecs := entity.NewECS(1)
	ecs.Session.Scene = component.SceneGame
	ecs.Session.Running = true
	ecs.Session.Dockyards = 1
	ecs.Wave.BossCountdown = cfg.Wave.BossInterval

	f := &fixture{ecs: ecs, env: env, rec: rec}
	f.pools = NewUnitPools(ecs, lib)
	f.buckets = NewEnemyBuckets(ecs)
	f.waves = NewWaveSystem(ecs, env)
	f.state = NewStateSystem(ecs, env, f.waves)
	f.movement = NewMovementSystem(ecs, env, f.waves)
	f.combat = NewCombatSystem(ecs, env, f.buckets)
	f.damage = NewDamageSystem(ecs, env, f.waves, f.pools)
	f.projectiles = NewProjectileSystem(ecs, f.damage, f.buckets)
	f.economy = NewEconomySystem(ecs, env, f.pools)
	f.fusion = NewFusionSystem(ecs, env)
	f.commands = NewCommandSystem(ecs, env, f.economy, f.fusion, f.waves)
	return f
}

// addEnemy places a motionless regular enemy.
func (f *fixture) addEnemy(x, y, hp, defense float64) *component.Enemy {
	e := &component.Enemy{
		ID:       f.ecs.NewEntity(),
		Position: component.Position{X: x, Y: y},
		HP:       hp,
		MaxHP:    hp,
		Defense:  defense,
		Size:     config.DefaultEnemySize,
		Reward:   1,
	}
	f.ecs.AddEnemy(e)
	return e
}

// addTower launches a unit from the library at the world center.
func (f *fixture) addTower(t *testing.T, unitID string) *component.Tower {
	t.Helper()
	def, ok := f.env.Library.Unit(unitID)
	if !ok {
		t.Fatalf("unit %q not in library", unitID)
	}
	return NewTower(f.ecs, f.env, def, f.env.World.CenterX, f.env.World.CenterY)
}

func (f *fixture) statuses() []string {
	var out []string
	for _, e := range f.rec.Of(event.Status) {
		out = append(out, e.Data.(event.StatusData).Message)
	}
	return out
}
