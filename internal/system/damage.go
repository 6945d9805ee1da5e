// internal/system/damage.go
package system

import (
	"fmt"
	"math"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/entity"
	"go-naval-defense/internal/event"
)

// DamageSystem applies hits to enemies and resolves their deaths.
type DamageSystem struct {
	ecs   *entity.ECS
	env   *Env
	waves *WaveSystem
	pools *UnitPools
}

func NewDamageSystem(ecs *entity.ECS, env *Env, waves *WaveSystem, pools *UnitPools) *DamageSystem {
	return &DamageSystem{ecs: ecs, env: env, waves: waves, pools: pools}
}

// Deal applies raw damage to an enemy hits times. Each application is
// mitigated separately and the loop stops once the enemy dies. It returns the
// total damage applied.
func (s *DamageSystem) Deal(e *component.Enemy, raw float64, weapon defs.WeaponType, hits int, explosive bool) int {
	if !e.Alive() {
		return 0
	}
	s.env.emit(event.HitBlip, event.HitBlipData{X: e.X, Y: e.Y, Weapon: weapon, Explosive: explosive})
	total := 0
	for i := 0; i < hits; i++ {
		if !e.Alive() {
			break
		}
		applied := MitigatedDamage(raw, e.Defense)
		e.HP -= float64(applied)
		total += applied
		s.env.emit(event.DamageFloater, event.DamageFloaterData{X: e.X, Y: e.Y, Amount: applied, Weapon: weapon})
		if !e.Alive() {
			s.kill(e)
			break
		}
	}
	return total
}

// Splash damages every other living enemy within the projectile's explosion
// radius with linear falloff.
func (s *DamageSystem) Splash(p *component.Projectile, impact *component.Enemy, hits int) {
	radius := p.ExplosionRadius
	if radius <= 0 {
		return
	}
	cfg := s.env.Config.Wave
	s.env.emit(event.HitBlip, event.HitBlipData{X: p.X, Y: p.Y, Weapon: p.Weapon, Explosive: true})

	// Split children spawned by splash kills are appended past n and are not hit.
	n := len(s.ecs.Enemies)
	for i := 0; i < n; i++ {
		e := s.ecs.Enemies[i]
		if e == impact || !e.Alive() {
			continue
		}
		distSq := p.DistSq(e.X, e.Y)
		if distSq > radius*radius {
			continue
		}
		ratio := SplashRatio(math.Sqrt(distSq), radius, cfg.SplashMaxRatio, cfg.SplashMinRatio)
		s.Deal(e, RollDamage(s.ecs.Rng, p.Damage*ratio), p.Weapon, hits, true)
	}
}

// kill resolves an enemy death: gold, split children, boss loot, summon
// unlocks and era advance.
func (s *DamageSystem) kill(e *component.Enemy) {
	sess := s.ecs.Session
	sess.Gold += e.Reward
	s.env.emit(event.EnemyKilled, event.EnemyKilledData{EnemyID: e.ID, Boss: e.IsBoss(), Reward: e.Reward, X: e.X, Y: e.Y})

	if e.Pattern == defs.PatternSplit && e.ChildLevel < 1 {
		s.waves.SpawnSplitChildren(e)
	}
	if e.Boss == nil {
		return
	}

	level := e.Boss.Level
	loot := defs.LootForLevel(level)
	sess.Essence += loot.Essence
	sess.Gold += loot.Gold
	msg := "Summoned boss defeated! Bonus reward collected."

	if e.Boss.WaveBoss {
		s.ecs.Wave.LastWaveBossKey = e.Boss.Key
		s.waves.UnlockSummon(e.Boss.Key, level)
		if s.AdvanceEra() {
			msg = fmt.Sprintf("The %s era begins! Wave boss defeated.", defs.EraOrder[sess.EraIndex])
		} else {
			msg = "Wave boss defeated! Reward collected."
		}
	}
	s.ecs.Wave.BossMustDie = false
	s.ecs.Wave.BossGraceTimer = 0
	s.env.Log.Info().Str("boss", e.Boss.Key).Int("level", level).Bool("wave_boss", e.Boss.WaveBoss).
		Int("essence", loot.Essence).Msg("boss defeated")
	s.env.status(msg)
}

// AdvanceEra moves the era index forward by one unless it is already at the
// final era. It reports whether the era changed.
func (s *DamageSystem) AdvanceEra() bool {
	sess := s.ecs.Session
	if sess.EraIndex >= len(defs.EraOrder)-1 {
		return false
	}
	sess.EraIndex++
	s.pools.Reset()
	s.env.emit(event.EraAdvanced, event.EraAdvancedData{Era: defs.EraOrder[sess.EraIndex]})
	return true
}
