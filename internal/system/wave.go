// internal/system/wave.go
package system

import (
	"fmt"
	"math"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/entity"
	"go-naval-defense/internal/event"
)

// WaveSystem spawns enemies: timed wave spawns, wave bosses, summoned bosses
// and the children of boss abilities and split deaths.
type WaveSystem struct {
	ecs *entity.ECS
	env *Env
}

func NewWaveSystem(ecs *entity.ECS, env *Env) *WaveSystem {
	return &WaveSystem{ecs: ecs, env: env}
}

// EarlyEase softens the first rounds by ramping a multiplier up to 1.
func EarlyEase(cfg config.WaveConfig, round int) float64 {
	if round > cfg.EarlyEaseRounds {
		return 1
	}
	v := cfg.EarlyEaseMin + float64(round-1)*cfg.EarlyEaseStep
	return math.Min(1, math.Max(cfg.EarlyEaseMin, v))
}

// EnemyStats are the round-scaled stats of a regular enemy before archetype
// and pattern modifiers.
type EnemyStats struct {
	HP           float64
	AngularSpeed float64
	Defense      float64
	Reward       int
	Size         float64
}

func ScaleEnemyStats(cfg config.WaveConfig, round int, hpMul float64) EnemyStats {
	r := float64(max(1, round))
	ease := EarlyEase(cfg, int(r))
	return EnemyStats{
		HP:           150 * (1 + (r-1)*0.18) * ease * hpMul,
		AngularSpeed: 0.35 + (r-1)*0.02,
		Defense:      (cfg.BaseDefense + (r-1)*cfg.DefenseGrowth) * ease,
		Reward:       cfg.EnemyReward,
		Size:         config.DefaultEnemySize,
	}
}

// BossStats are the round-scaled stats of a boss.
type BossStats struct {
	HP             float64
	AngularSpeed   float64
	Defense        float64
	Reward         int
	DifficultyTier int
}

func ScaleBossStats(cfg config.WaveConfig, round int, hpMul float64) BossStats {
	round = max(1, round)
	r := float64(round)
	tier := max(1, round/cfg.BossInterval)
	ease := EarlyEase(cfg, round)
	return BossStats{
		HP:             4000 * float64(tier) * (1 + (r-1)*0.12) * ease * hpMul,
		AngularSpeed:   0.25 + float64(tier)*0.01,
		Defense:        (cfg.BossBaseDefense + float64(tier-1)*cfg.BossDefenseGrowth) * ease,
		Reward:         cfg.BossReward,
		DifficultyTier: tier,
	}
}

// SpawnTarget is the number of regular enemies a round spawns.
func SpawnTarget(cfg config.WaveConfig, round int) int {
	return max(1, cfg.SpawnCountBase+(round-1)*cfg.SpawnCountGrowth)
}

// BossAbilityCooldown shrinks with the round and never drops below 1.5s.
func BossAbilityCooldown(round int) float64 {
	return math.Max(config.BossMinCooldown, 4-math.Min(2.5, float64(round)*0.05))
}

// Update runs the spawn cadence of the active wave.
func (s *WaveSystem) Update(deltaTime float64) {
	w := s.ecs.Wave
	if !w.Active || w.Round <= 0 {
		return
	}
	if w.IsBossWave {
		if w.BossSpawned {
			return
		}
		w.BossSpawnTimer += deltaTime
		if w.BossSpawnTimer >= s.env.Config.Wave.BossSpawnDelay {
			s.SpawnWaveBoss()
		}
		return
	}
	if w.Spawned >= w.SpawnTarget {
		return
	}
	interval := s.env.Config.Wave.SpawnDuration / float64(w.SpawnTarget)
	w.SpawnAccumulator += deltaTime
	for w.Spawned < w.SpawnTarget && w.SpawnAccumulator >= interval {
		w.SpawnAccumulator -= interval
		w.Spawned++
		pattern := defs.PatternForRound(w.Round, false)
		s.SpawnEnemy(pattern, s.ecs.Rng.Float64()*2*math.Pi, s.env.World.OrbitRadius, 0)
	}
}

// SpawnEnemy creates a regular enemy. childLevel > 0 marks split children,
// which are weaker and pay less.
func (s *WaveSystem) SpawnEnemy(pattern defs.EnemyPattern, angle, radius float64, childLevel int) *component.Enemy {
	cfg := s.env.Config.Wave
	round := max(1, s.ecs.Wave.Round)
	stats := ScaleEnemyStats(cfg, round, s.ecs.Session.HPMul)
	era := defs.EraForRound(round)

	e := &component.Enemy{
		ID:           s.ecs.NewEntity(),
		Pattern:      pattern,
		Angle:        angle,
		Radius:       radius,
		AngularSpeed: stats.AngularSpeed,
		HP:           stats.HP,
		Defense:      stats.Defense,
		Reward:       stats.Reward,
		Size:         stats.Size,
		ChildLevel:   childLevel,
		Era:          era,
	}

	if table := s.env.Library.ArchetypesFor(era); len(table) > 0 {
		a := table[s.ecs.Rng.Intn(len(table))]
		e.Archetype = a.ID
		e.Name = a.Name
		e.Color = a.Color
		e.HP = math.Max(1, math.Floor(e.HP*orOne(a.HPMul)))
		e.AngularSpeed *= orOne(a.SpeedMul)
		e.Defense += a.Defense
		if a.Size > 0 {
			e.Size = a.Size
		}
		e.Reward = max(1, int(math.Floor(float64(e.Reward)*orOne(a.RewardMul))))
	}

	orbit := s.env.World.OrbitRadius
	switch pattern {
	case defs.PatternSpiral:
		e.RadialSpeed = 55 * s.ecs.Rng.Sign()
		e.AngularSpeed *= 1.3
		e.Radius += s.ecs.Rng.Float64()*120 - 60
	case defs.PatternSprint:
		e.AngularSpeed *= 1.8
		e.HP *= 0.8
		e.Size = 10
	case defs.PatternSplit:
		e.HP *= 1.2
	}
	if childLevel > 0 {
		e.HP *= 0.6
		e.Size = math.Max(8, e.Size*0.7)
		e.Reward = max(1, int(math.Floor(float64(e.Reward)*0.5)))
		e.Defense *= 0.7
	}
	e.Radius = math.Max(orbit*config.EnemyMinRadiusRatio, math.Min(orbit, e.Radius))
	e.MaxHP = e.HP

	s.place(e)
	s.ecs.AddEnemy(e)
	return e
}

// place derives position and initial heading from the orbital state.
func (s *WaveSystem) place(e *component.Enemy) {
	e.X, e.Y = s.env.World.EnemyPosition(e.Angle, e.Radius)
	vx, vy := EnemyVelocity(e, 1)
	if vx*vx+vy*vy > 0.0001 {
		e.Heading = math.Atan2(vy, vx)
	}
}

// BossKeyForRound returns the wave boss of the era a round belongs to.
func (s *WaveSystem) BossKeyForRound(round int) string {
	return s.env.Library.BossForEra(defs.EraForRound(round)).Key
}

// SpawnWaveBoss spawns the scheduled boss of the current boss wave.
func (s *WaveSystem) SpawnWaveBoss() *component.Enemy {
	w := s.ecs.Wave
	round := max(1, w.Round)
	def := s.env.Library.BossForEra(defs.EraForRound(round))
	stats := ScaleBossStats(s.env.Config.Wave, round, s.ecs.Session.HPMul)
	e := s.spawnBoss(def, round, true, stats.HP, stats.Reward, stats)

	w.BossSpawned = true
	w.BossMustDie = true
	w.BossGraceTimer = 0
	w.LastWaveBossKey = def.Key

	s.env.Log.Info().Str("boss", def.Key).Int("round", round).Float64("hp", e.HP).Msg("wave boss spawned")
	s.env.status(fmt.Sprintf("Boss %s has appeared!", def.Name))
	return e
}

// SummonBoss spawns a player-summoned boss from the unlock table and starts
// its cooldown.
func (s *WaveSystem) SummonBoss(key string) (*component.Enemy, error) {
	entry, ok := s.ecs.Summon(key)
	if !ok {
		return nil, fmt.Errorf("summon %q: %w", key, ErrUnknownBoss)
	}
	if !entry.Unlocked {
		return nil, fmt.Errorf("%s: %w", entry.Name, ErrLocked)
	}
	if entry.Cooldown > 0 {
		return nil, fmt.Errorf("%s ready in %.0fs: %w", entry.Name, math.Ceil(entry.Cooldown), ErrOnCooldown)
	}
	def, ok := s.env.Library.Boss(key)
	if !ok {
		return nil, fmt.Errorf("summon %q: %w", key, ErrUnknownBoss)
	}
	// The level bonus is paid on death, so the boss itself carries the base reward.
	stats := ScaleBossStats(s.env.Config.Wave, entry.Level, s.ecs.Session.HPMul)
	e := s.spawnBoss(def, entry.Level, false, entry.HP, stats.Reward, stats)
	entry.Cooldown = entry.CooldownBase
	if entry.Cooldown <= 0 {
		entry.Cooldown = 120
	}
	s.env.Log.Info().Str("boss", key).Int("level", entry.Level).Msg("boss summoned")
	s.env.status(fmt.Sprintf("Summoned %s Lv.%d", def.Name, entry.Level))
	return e, nil
}

func (s *WaveSystem) spawnBoss(def defs.BossDefinition, level int, waveBoss bool, hp float64, reward int, stats BossStats) *component.Enemy {
	orbit := s.env.World.OrbitRadius
	e := &component.Enemy{
		ID:           s.ecs.NewEntity(),
		Pattern:      defs.PatternBoss,
		Angle:        s.ecs.Rng.Float64() * 2 * math.Pi,
		Radius:       orbit * config.BossRadiusRatio,
		AngularSpeed: stats.AngularSpeed,
		HP:           hp,
		MaxHP:        hp,
		Defense:      stats.Defense,
		Reward:       reward,
		Size:         config.BossSize,
		Name:         def.Name,
		Color:        def.Color,
		Era:          def.Era,
		Boss: &component.BossTraits{
			Key:             def.Key,
			AbilityCooldown: config.BossInitialCooldown,
			WaveBoss:        waveBoss,
			Level:           level,
			SpawnAt:         s.ecs.GameTime,
			Essence:         defs.LootForLevel(level).Essence,
		},
	}
	s.place(e)
	s.ecs.AddEnemy(e)
	s.env.emit(event.BossSpawned, event.BossSpawnedData{EnemyID: e.ID, Key: def.Key, Name: def.Name, WaveBoss: waveBoss, Level: level})
	return e
}

// TriggerBossAbility fans three spiral children around the boss.
func (s *WaveSystem) TriggerBossAbility(boss *component.Enemy) {
	for i := 0; i < 3; i++ {
		angle := boss.Angle + float64(i-1)*0.25
		s.SpawnEnemy(defs.PatternSpiral, angle, boss.Radius+config.BossSummonOffset, 1)
	}
	boss.Boss.AbilityCooldown = BossAbilityCooldown(s.ecs.Wave.Round)
	s.env.emit(event.BossAbility, event.BossAbilityData{EnemyID: boss.ID, Spawned: 3})
}

// SpawnSplitChildren spawns the two sprint children of a dead split enemy.
func (s *WaveSystem) SpawnSplitChildren(parent *component.Enemy) {
	for _, offset := range []float64{-0.2, 0.2} {
		s.SpawnEnemy(defs.PatternSprint, parent.Angle+offset, parent.Radius, parent.ChildLevel+1)
	}
}

// UnlockSummon creates or refreshes the summon table row of a boss at a level.
func (s *WaveSystem) UnlockSummon(key string, level int) *component.BossSummon {
	level = max(1, level)
	entry, ok := s.ecs.Summon(key)
	if !ok {
		def, _ := s.env.Library.Boss(key)
		entry = &component.BossSummon{Key: key, Name: def.Name}
		s.ecs.Summons = append(s.ecs.Summons, entry)
	}
	loot := defs.LootForLevel(level)
	stats := ScaleBossStats(s.env.Config.Wave, level, s.ecs.Session.HPMul)
	entry.Unlocked = true
	entry.Level = level
	entry.CooldownBase = 120 + math.Floor(float64(level-1)/10)*60
	entry.HP = math.Round(stats.HP)
	entry.Reward = s.env.Config.Wave.BossReward + loot.Gold
	entry.Essence = loot.Essence
	return entry
}

// TickSummonCooldowns counts every summon cooldown down.
func (s *WaveSystem) TickSummonCooldowns(deltaTime float64) {
	for _, entry := range s.ecs.Summons {
		if entry.Cooldown > 0 {
			entry.Cooldown = math.Max(0, entry.Cooldown-deltaTime)
		}
	}
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
