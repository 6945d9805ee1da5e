// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"math"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/entity"
	"go-naval-defense/internal/event"
	"go-naval-defense/internal/system"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNotRunning rejects commands outside of a running game.
var ErrNotRunning = errors.New("no run in progress")

// Options configures a Game. Zero values fall back to the stock data.
type Options struct {
	Config     *config.Config
	Library    *defs.Library
	Seed       uint32
	Difficulty string
	Logger     zerolog.Logger
	Events     *event.Dispatcher
}

// Game owns one simulation: the entity store, the systems that act on it and
// the event dispatcher that observers subscribe to.
type Game struct {
	ECS    *entity.ECS
	Env    *system.Env
	Events *event.Dispatcher
	RunID  uuid.UUID

	WaveSystem         *system.WaveSystem
	StateSystem        *system.StateSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	DamageSystem       *system.DamageSystem
	ProjectileSystem   *system.ProjectileSystem
	EconomySystem      *system.EconomySystem
	FusionSystem       *system.FusionSystem
	CommandSystem      *system.CommandSystem
	VisualEffectSystem *system.VisualEffectSystem

	pools   *system.UnitPools
	buckets *system.EnemyBuckets
	baseLog zerolog.Logger
	seed    uint32
}

// NewGame builds a game in the lobby scene.
func NewGame(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	lib := opts.Library
	if lib == nil {
		var err error
		if lib, err = defs.Default(); err != nil {
			return nil, err
		}
	}
	events := opts.Events
	if events == nil {
		events = event.NewDispatcher()
	}
	g := &Game{
		Events:  events,
		baseLog: opts.Logger,
		Env: &system.Env{
			Config:  cfg,
			World:   config.NewWorld(),
			Library: lib,
			Events:  events,
		},
	}
	events.SubscribeMany(event.ListenerFunc(g.forwardEffect), event.HitBlip, event.DamageFloater)
	g.Reset(opts.Seed, opts.Difficulty)
	return g, nil
}

func (g *Game) forwardEffect(e event.Event) {
	if g.VisualEffectSystem != nil {
		g.VisualEffectSystem.OnEvent(e)
	}
}

// Reset discards the current run and rebuilds an empty one in the lobby.
func (g *Game) Reset(seed uint32, difficulty string) {
	g.seed = seed
	g.RunID = uuid.New()
	g.Env.Log = g.baseLog.With().Str("run_id", g.RunID.String()).Logger()

	ecs := entity.NewECS(seed)
	preset := g.Env.Config.DifficultyByKey(difficulty)
	ecs.Session.Scene = component.SceneLobby
	ecs.Session.Difficulty = preset.Key
	ecs.Session.HPMul = preset.HPMul
	ecs.Session.Gold = g.Env.Config.Economy.StartingGold
	ecs.Session.Dockyards = 1
	ecs.Wave.BossCountdown = g.Env.Config.Wave.BossInterval
	g.ECS = ecs

	g.pools = system.NewUnitPools(ecs, g.Env.Library)
	g.buckets = system.NewEnemyBuckets(ecs)
	g.WaveSystem = system.NewWaveSystem(ecs, g.Env)
	g.StateSystem = system.NewStateSystem(ecs, g.Env, g.WaveSystem)
	g.MovementSystem = system.NewMovementSystem(ecs, g.Env, g.WaveSystem)
	g.CombatSystem = system.NewCombatSystem(ecs, g.Env, g.buckets)
	g.DamageSystem = system.NewDamageSystem(ecs, g.Env, g.WaveSystem, g.pools)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.DamageSystem, g.buckets)
	g.EconomySystem = system.NewEconomySystem(ecs, g.Env, g.pools)
	g.FusionSystem = system.NewFusionSystem(ecs, g.Env)
	g.CommandSystem = system.NewCommandSystem(ecs, g.Env, g.EconomySystem, g.FusionSystem, g.WaveSystem)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
}

// Start leaves the lobby and begins the preparation round.
func (g *Game) Start() {
	sess := g.ECS.Session
	sess.Scene = component.SceneGame
	sess.Running = true
	sess.Paused = false
	g.Env.Log.Info().Str("difficulty", sess.Difficulty).Uint32("seed", g.seed).Msg("run started")
	g.StateSystem.StartWave()
}

// Update advances the simulation by one host frame. The frame delta is
// clamped and scaled by the speed multiplier before every system runs in a
// fixed order.
func (g *Game) Update(deltaTime float64) {
	sess := g.ECS.Session
	if !sess.Running || sess.Paused || sess.Scene != component.SceneGame {
		return
	}
	if !(deltaTime > 0) {
		return
	}
	dt := math.Min(deltaTime, config.MaxDeltaTime) * sess.Speed
	g.ECS.GameTime += dt

	g.WaveSystem.TickSummonCooldowns(dt)
	g.StateSystem.Update(dt)
	if !sess.Running {
		return
	}
	g.CommandSystem.Process()
	g.WaveSystem.Update(dt)
	g.MovementSystem.UpdateEnemies(dt)
	if g.StateSystem.CheckSummonTimeout() {
		return
	}
	g.MovementSystem.UpdateTowers(dt)
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)
	g.StateSystem.CheckSaturation()
}

// Enqueue appends a command for the next tick.
func (g *Game) Enqueue(cmd component.Command) error {
	sess := g.ECS.Session
	if sess.Scene != component.SceneGame || !sess.Running {
		return ErrNotRunning
	}
	g.ECS.Commands = append(g.ECS.Commands, cmd)
	return nil
}

// Skip ends the current round early when nothing is left to fight.
func (g *Game) Skip() error {
	return g.StateSystem.Skip()
}

// ToggleSpeed flips between normal and double speed and returns the new
// multiplier.
func (g *Game) ToggleSpeed() float64 {
	sess := g.ECS.Session
	if sess.Speed >= 2 {
		sess.Speed = 1
	} else {
		sess.Speed = 2
	}
	return sess.Speed
}

// TogglePause freezes or resumes the simulation and returns the new state.
func (g *Game) TogglePause() bool {
	sess := g.ECS.Session
	if !sess.Running {
		return sess.Paused
	}
	sess.Paused = !sess.Paused
	return sess.Paused
}

// SetInterest turns interest payouts on or off.
func (g *Game) SetInterest(enabled bool) {
	g.ECS.Session.InterestEnabled = enabled
}

// Phase is the current phase of the round state machine.
func (g *Game) Phase() component.Phase {
	return system.Phase(g.ECS)
}

// RollCost is the price of the next roll.
func (g *Game) RollCost() int {
	return system.RollCost(g.Env.Config.Economy, g.ECS.Wave.Round)
}

// DockyardCost is the price of the next dockyard.
func (g *Game) DockyardCost() int {
	return system.DockyardCost(g.Env.Config.Economy, g.ECS.Session.Dockyards)
}

// Capacity returns the used and total shipyard capacity.
func (g *Game) Capacity() (used, total int) {
	return system.UsedCapacity(g.ECS.Towers), system.TotalCapacity(g.ECS.Session.Dockyards)
}

// Interest previews the payout of the next wave clear.
func (g *Game) Interest() int {
	return g.StateSystem.Interest()
}

// CanSkip reports why a skip would be rejected, without side effects.
func (g *Game) CanSkip() error {
	return g.StateSystem.CanSkip()
}

// EnhanceCost is the price of the next shared upgrade for a tower's key.
func (g *Game) EnhanceCost(t *component.Tower) int {
	return system.EnhanceCost(g.ECS, g.Env.Config.Economy, t)
}

// State exposes the entity store for read access by hosts and observers.
func (g *Game) State() *entity.ECS {
	return g.ECS
}
