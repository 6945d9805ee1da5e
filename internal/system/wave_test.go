package system

import (
	"fmt"
	"math"
	"testing"

	"go-naval-defense/internal/config"
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/event"
)

func TestSpawnCompletesAtAnyFrameRate(t *testing.T) {
	for _, dt := range []float64{1.0 / 60, 1.0 / 30, 0.25} {
		t.Run(fmt.Sprintf("dt=%.4f", dt), func(t *testing.T) {
			f := newFixture(t)
			f.ecs.Wave.Round = 1
			f.state.StartWave()
			target := f.ecs.Wave.SpawnTarget
			if target != SpawnTarget(f.env.Config.Wave, 1) {
				t.Fatalf("SpawnTarget = %d", target)
			}

			steps := int(math.Ceil((f.env.Config.Wave.SpawnDuration+1)/dt)) + 100
			for i := 0; i < steps; i++ {
				f.waves.Update(dt)
				if f.ecs.Wave.Spawned > target {
					t.Fatalf("spawned %d past target %d", f.ecs.Wave.Spawned, target)
				}
			}
			if f.ecs.Wave.Spawned != target || len(f.ecs.Enemies) != target {
				t.Fatalf("spawned=%d enemies=%d, want %d", f.ecs.Wave.Spawned, len(f.ecs.Enemies), target)
			}
		})
	}
}

func TestPrepRoundSpawnsNothing(t *testing.T) {
	f := newFixture(t)
	f.state.StartWave()
	for i := 0; i < 100; i++ {
		f.waves.Update(0.1)
	}
	if len(f.ecs.Enemies) != 0 {
		t.Fatalf("prep round spawned %d enemies", len(f.ecs.Enemies))
	}
}

func TestBossWaveSpawnsBossAfterDelay(t *testing.T) {
	f := newFixture(t)
	f.ecs.Wave.Round = 10
	f.state.StartWave()
	if !f.ecs.Wave.IsBossWave {
		t.Fatal("round 10 is not a boss wave")
	}
	delay := f.env.Config.Wave.BossSpawnDelay
	f.waves.Update(delay / 2)
	if len(f.ecs.Enemies) != 0 {
		t.Fatal("boss spawned before its delay")
	}
	f.waves.Update(delay)
	f.waves.Update(delay)
	if len(f.ecs.Enemies) != 1 || !f.ecs.Enemies[0].IsBoss() {
		t.Fatalf("enemies = %d, want the single wave boss", len(f.ecs.Enemies))
	}
	boss := f.ecs.Enemies[0]
	if !boss.Boss.WaveBoss || boss.Boss.Key != "boss_ancient_galley" {
		t.Errorf("boss = %+v", boss.Boss)
	}
	w := f.ecs.Wave
	if !w.BossSpawned || !w.BossMustDie || w.LastWaveBossKey != boss.Boss.Key {
		t.Errorf("wave = %+v", w)
	}
	if len(f.rec.Of(event.BossSpawned)) != 1 {
		t.Error("no BossSpawned event")
	}
}

func TestEnemyStatsScaleWithRound(t *testing.T) {
	cfg := config.Default().Wave
	if got := EarlyEase(cfg, 1); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("EarlyEase(1) = %v, want 0.6", got)
	}
	if got := EarlyEase(cfg, 6); got != 1 {
		t.Errorf("EarlyEase(6) = %v, want 1", got)
	}
	a, b := ScaleEnemyStats(cfg, 10, 1), ScaleEnemyStats(cfg, 20, 1)
	if b.HP <= a.HP || b.AngularSpeed <= a.AngularSpeed {
		t.Errorf("round 20 stats %+v not above round 10 %+v", b, a)
	}
	if hard := ScaleEnemyStats(cfg, 10, 2); math.Abs(hard.HP-2*a.HP) > 1e-9 {
		t.Errorf("hp multiplier not applied: %v vs %v", hard.HP, a.HP)
	}
	if boss := ScaleBossStats(cfg, 20, 1); boss.DifficultyTier != 2 {
		t.Errorf("boss tier = %d, want 2", boss.DifficultyTier)
	}
	if got := BossAbilityCooldown(100); got != config.BossMinCooldown {
		t.Errorf("BossAbilityCooldown(100) = %v", got)
	}
}

func TestBossDefenseGrowsWithTier(t *testing.T) {
	cfg := config.Default().Wave
	cfg.BossBaseDefense = 4
	cfg.BossDefenseGrowth = 5
	tests := []struct {
		round int
		want  float64
	}{
		{10, 4},
		{19, 4},
		{20, 9},
		{35, 14},
	}
	for _, tt := range tests {
		if got := ScaleBossStats(cfg, tt.round, 1).Defense; math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("round %d defense = %v, want %v", tt.round, got, tt.want)
		}
	}
}

func TestArchetypeModifiersFloor(t *testing.T) {
	f := newFixture(t)
	f.ecs.Wave.Round = 1
	stats := ScaleEnemyStats(f.env.Config.Wave, 1, f.ecs.Session.HPMul)
	for i := 0; i < 500; i++ {
		e := f.waves.SpawnEnemy(defs.PatternStandard, 0, f.env.World.OrbitRadius, 0)
		if e.HP != math.Floor(e.HP) || e.HP < 1 {
			t.Fatalf("%s hp = %v, want a whole number >= 1", e.Archetype, e.HP)
		}
		if e.Archetype != "bronze_ram" {
			continue
		}
		if want := math.Max(1, math.Floor(stats.HP*1.4)); e.HP != want {
			t.Errorf("bronze_ram hp = %v, want %v", e.HP, want)
		}
		if want := max(1, int(math.Floor(float64(stats.Reward)*1.5))); e.Reward != want {
			t.Errorf("bronze_ram reward = %d, want %d", e.Reward, want)
		}
		return
	}
	t.Fatal("no bronze_ram spawned")
}

func TestSpawnedEnemiesStayOnOrbitBand(t *testing.T) {
	f := newFixture(t)
	f.ecs.Wave.Round = 6
	orbit := f.env.World.OrbitRadius
	for i := 0; i < 50; i++ {
		e := f.waves.SpawnEnemy(defs.PatternSpiral, float64(i), orbit+500, 0)
		if e.Radius < orbit*config.EnemyMinRadiusRatio || e.Radius > orbit {
			t.Fatalf("radius %v outside [%v, %v]", e.Radius, orbit*config.EnemyMinRadiusRatio, orbit)
		}
		if e.MaxHP != e.HP || e.HP <= 0 {
			t.Fatalf("hp %v / %v", e.HP, e.MaxHP)
		}
	}
}

func TestSummonBoss(t *testing.T) {
	f := newFixture(t)
	if _, err := f.waves.SummonBoss("nope"); !isErr(err, ErrUnknownBoss) {
		t.Fatalf("unknown key: %v", err)
	}
	f.ecs.Wave.Round = 1
	f.state.StartWave()
	key := f.waves.BossKeyForRound(1)
	e, err := f.waves.SummonBoss(key)
	if err != nil {
		t.Fatalf("SummonBoss: %v", err)
	}
	if e.Boss.WaveBoss || e.Boss.Level != 1 {
		t.Errorf("boss traits = %+v", e.Boss)
	}
	if _, err := f.waves.SummonBoss(key); !isErr(err, ErrOnCooldown) {
		t.Fatalf("second summon: %v, want cooldown", err)
	}
	entry, _ := f.ecs.Summon(key)
	f.waves.TickSummonCooldowns(entry.CooldownBase)
	if !entry.Ready() {
		t.Fatalf("cooldown %v after a full tick", entry.Cooldown)
	}

	entry.Unlocked = false
	if _, err := f.waves.SummonBoss(key); !isErr(err, ErrLocked) {
		t.Fatalf("locked summon: %v", err)
	}
}
