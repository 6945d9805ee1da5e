package app

import (
	"errors"
	"math"
	"testing"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/event"

	"github.com/rs/zerolog"
)

func newGame(t *testing.T, cfg *config.Config, seed uint32) *Game {
	t.Helper()
	g, err := NewGame(Options{Config: cfg, Seed: seed, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Wave.MaxWaves = 0
	if _, err := NewGame(Options{Config: cfg}); err == nil {
		t.Fatal("invalid config accepted")
	}
}

func TestEnqueueRequiresARunningGame(t *testing.T) {
	g := newGame(t, nil, 1)
	if err := g.Enqueue(component.Command{Type: component.CommandRoll}); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("Enqueue in the lobby: %v", err)
	}
	g.Start()
	if err := g.Enqueue(component.Command{Type: component.CommandRoll}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if g.Phase() != component.PhasePrep {
		t.Errorf("phase = %s, want prep", g.Phase())
	}
}

func TestUpdateClampsAndScalesDelta(t *testing.T) {
	g := newGame(t, nil, 1)
	g.Update(0.1)
	if g.ECS.GameTime != 0 {
		t.Fatal("lobby advanced")
	}
	g.Start()
	g.Update(10)
	if g.ECS.GameTime != config.MaxDeltaTime {
		t.Errorf("game time = %v, want %v", g.ECS.GameTime, config.MaxDeltaTime)
	}
	g.ToggleSpeed()
	g.Update(0.1)
	if math.Abs(g.ECS.GameTime-0.4) > 1e-9 {
		t.Errorf("game time = %v, want 0.4 at double speed", g.ECS.GameTime)
	}
	for _, dt := range []float64{0, -1, math.NaN()} {
		g.Update(dt)
	}
	if !g.TogglePause() {
		t.Fatal("not paused")
	}
	g.Update(0.1)
	if math.Abs(g.ECS.GameTime-0.4) > 1e-9 {
		t.Errorf("game time moved to %v while paused or on a bad delta", g.ECS.GameTime)
	}
}

func TestCommandsRunAtTheStartOfTheNextTick(t *testing.T) {
	g := newGame(t, nil, 1)
	g.Start()
	gold := g.ECS.Session.Gold
	cost := g.RollCost()
	if err := g.Enqueue(component.Command{Type: component.CommandRoll}); err != nil {
		t.Fatal(err)
	}
	if len(g.ECS.Towers) != 0 {
		t.Fatal("command ran before the tick")
	}
	g.Update(1.0 / 60)
	if len(g.ECS.Towers) != 1 || g.ECS.Session.Gold != gold-cost {
		t.Fatalf("towers=%d gold=%d, want 1 and %d", len(g.ECS.Towers), g.ECS.Session.Gold, gold-cost)
	}
	if used, total := g.Capacity(); used != g.ECS.Towers[0].Size || total != config.DockyardCapacity {
		t.Errorf("capacity = %d/%d", used, total)
	}
}

func TestSaturationStopsTheRunOnTheSameTick(t *testing.T) {
	cfg := config.Default()
	cfg.Wave.DefeatThreshold = 5
	cfg.Wave.PrepDuration = 0.5
	g := newGame(t, cfg, 3)
	g.Start()

	for i := 0; i < 10000 && g.ECS.Session.Running; i++ {
		g.Update(0.1)
	}
	sess := g.ECS.Session
	if sess.Outcome != component.OutcomeDefeat || sess.OutcomeReason != "enemy saturation" {
		t.Fatalf("outcome %s (%q)", sess.Outcome, sess.OutcomeReason)
	}
	n := len(g.ECS.Enemies)
	if n != cfg.Wave.DefeatThreshold {
		t.Fatalf("enemies = %d, want %d", n, cfg.Wave.DefeatThreshold)
	}
	for i := 0; i < 100; i++ {
		g.Update(0.1)
	}
	if len(g.ECS.Enemies) != n {
		t.Errorf("spawning continued after defeat: %d enemies", len(g.ECS.Enemies))
	}
	if err := g.Enqueue(component.Command{Type: component.CommandRoll}); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Enqueue after defeat: %v", err)
	}
}

func TestSaturationAtThresholdEndsTheNextTick(t *testing.T) {
	for _, extra := range []int{-1, 0} {
		g := newGame(t, nil, 5)
		g.Start()
		threshold := g.Env.Config.Wave.DefeatThreshold
		for i := 0; i < threshold+extra; i++ {
			g.WaveSystem.SpawnEnemy(defs.PatternStandard, float64(i)*0.01, g.Env.World.OrbitRadius, 0)
		}

		g.Update(1.0 / 60)

		sess := g.ECS.Session
		if extra < 0 {
			if !sess.Running || sess.Outcome != component.OutcomeNone {
				t.Errorf("%d enemies: outcome %s, want the run to continue", threshold+extra, sess.Outcome)
			}
			continue
		}
		if sess.Running || sess.Outcome != component.OutcomeDefeat {
			t.Errorf("%d enemies: running=%v outcome %s, want defeat", threshold, sess.Running, sess.Outcome)
		}
	}
}

func TestSameSeedSameRun(t *testing.T) {
	play := func() *Game {
		g := newGame(t, nil, 42)
		g.Start()
		for i := 0; i < 1800; i++ {
			if i%60 == 0 {
				_ = g.Enqueue(component.Command{Type: component.CommandRoll})
			}
			g.Update(1.0 / 60)
		}
		return g
	}
	a, b := play(), play()
	if a.ECS.Session.Gold != b.ECS.Session.Gold || len(a.ECS.Towers) != len(b.ECS.Towers) || len(a.ECS.Enemies) != len(b.ECS.Enemies) {
		t.Fatalf("runs diverged: gold %d/%d towers %d/%d enemies %d/%d",
			a.ECS.Session.Gold, b.ECS.Session.Gold, len(a.ECS.Towers), len(b.ECS.Towers), len(a.ECS.Enemies), len(b.ECS.Enemies))
	}
	for i := range a.ECS.Towers {
		if a.ECS.Towers[i].UnitID != b.ECS.Towers[i].UnitID || a.ECS.Towers[i].Position != b.ECS.Towers[i].Position {
			t.Fatalf("tower %d differs", i)
		}
	}
	for i := range a.ECS.Enemies {
		if a.ECS.Enemies[i].HP != b.ECS.Enemies[i].HP || a.ECS.Enemies[i].Position != b.ECS.Enemies[i].Position {
			t.Fatalf("enemy %d differs", i)
		}
	}
	if a.RunID == b.RunID {
		t.Error("two runs share a run id")
	}
}

func TestResetRebuildsTheRun(t *testing.T) {
	g := newGame(t, nil, 1)
	g.Start()
	first, firstID := g.ECS, g.RunID
	g.Reset(2, "hard")
	if g.ECS == first || g.RunID == firstID {
		t.Fatal("Reset kept the old run")
	}
	if g.ECS.Session.HPMul != 2 || g.ECS.Session.Scene != component.SceneLobby {
		t.Errorf("session = %+v", g.ECS.Session)
	}
	g.Events.Dispatch(event.Event{Type: event.HitBlip, Data: event.HitBlipData{X: 1, Y: 1}})
	if len(g.ECS.HitBlips) != 1 || len(first.HitBlips) != 0 {
		t.Errorf("effects routed to blips new=%d old=%d", len(g.ECS.HitBlips), len(first.HitBlips))
	}
}

func TestSelection(t *testing.T) {
	g := newGame(t, nil, 1)
	g.Start()
	g.ECS.Session.Gold = 1000
	for i := 0; i < 3; i++ {
		_ = g.Enqueue(component.Command{Type: component.CommandRoll})
	}
	g.Update(1.0 / 60)
	if len(g.ECS.Towers) != 3 {
		t.Fatalf("towers = %d", len(g.ECS.Towers))
	}
	a, b := g.ECS.Towers[0], g.ECS.Towers[1]
	// Separate the towers so clicks are unambiguous.
	a.X, a.Y = g.Env.World.CenterX-100, g.Env.World.CenterY
	b.X, b.Y = g.Env.World.CenterX+100, g.Env.World.CenterY

	if sel := g.SelectAt(a.X, a.Y, false); len(sel) != 1 || sel[0] != a.ID {
		t.Fatalf("SelectAt = %v", sel)
	}
	if sel := g.SelectAt(b.X, b.Y, true); len(sel) != 2 {
		t.Fatalf("additive SelectAt = %v", sel)
	}
	if sel := g.SelectAt(a.X, a.Y, true); len(sel) != 1 || sel[0] != b.ID {
		t.Fatalf("toggle off = %v", sel)
	}
	if sel := g.SelectAt(0, 0, false); len(sel) != 0 {
		t.Fatalf("click on water = %v", sel)
	}
	if g.OrderMove(1, 1) {
		t.Error("OrderMove without a selection")
	}
	g.Select(a.ID, 9999)
	if len(g.ECS.Selection) != 1 || !g.OrderMove(g.Env.World.CenterX, g.Env.World.CenterY+50) {
		t.Fatalf("selection = %v", g.ECS.Selection)
	}
	if !a.Moving() {
		t.Error("ordered tower not moving")
	}
	same := g.SelectSameUnit(a.X, a.Y)
	for _, id := range same {
		tw, _ := g.ECS.Tower(id)
		if tw.UnitID != a.UnitID || tw.FusionTier != a.FusionTier {
			t.Errorf("SelectSameUnit picked %s", tw.UnitID)
		}
	}
	g.ClearSelection()
	if len(g.ECS.Selection) != 0 {
		t.Error("ClearSelection kept ids")
	}
}
