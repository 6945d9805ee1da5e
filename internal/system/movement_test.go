package system

import (
	"math"
	"testing"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"
)

func TestEnemiesFollowTheSquareOrbit(t *testing.T) {
	f := newFixture(t)
	w := f.env.World
	e := f.addEnemy(0, 0, 10, 0)
	e.Radius = w.OrbitRadius
	e.AngularSpeed = 0.5
	for i := 0; i < 120; i++ {
		f.movement.UpdateEnemies(1.0 / 60)
	}
	if math.Abs(e.Angle-1) > 1e-9 {
		t.Errorf("angle = %v, want 1", e.Angle)
	}
	x, y := w.EnemyPosition(e.Angle, e.Radius)
	if math.Abs(e.X-x) > 1e-9 || math.Abs(e.Y-y) > 1e-9 {
		t.Errorf("position (%v, %v), want (%v, %v)", e.X, e.Y, x, y)
	}
	if !(e.Heading > 0) {
		t.Errorf("heading = %v, want turned towards the motion", e.Heading)
	}
}

func TestSpiralBouncesOffTheInnerBound(t *testing.T) {
	f := newFixture(t)
	minR := f.env.World.OrbitRadius * config.RadialMinRadiusRatio
	e := f.addEnemy(0, 0, 10, 0)
	e.Radius = minR + 1
	e.RadialSpeed = -55
	f.movement.UpdateEnemies(0.1)
	if e.Radius != minR || e.RadialSpeed != 55 {
		t.Errorf("radius=%v speed=%v, want %v and 55", e.Radius, e.RadialSpeed, minR)
	}
}

func TestUpdateEnemiesDropsDeadAndRunsBossAbility(t *testing.T) {
	f := newFixture(t)
	f.ecs.Wave.Round = 10
	dead := f.addEnemy(0, 0, 0, 0)
	boss := f.addEnemy(0, 0, 1000, 0)
	boss.Radius = f.env.World.OrbitRadius * config.BossRadiusRatio
	boss.Boss = &component.BossTraits{Key: "boss_ancient_galley", WaveBoss: true, AbilityCooldown: 0.01}

	f.movement.UpdateEnemies(0.02)

	if _, ok := f.ecs.Enemy(dead.ID); ok {
		t.Error("dead enemy kept")
	}
	if len(f.ecs.Enemies) != 4 {
		t.Fatalf("enemies = %d, want boss plus three children", len(f.ecs.Enemies))
	}
	if boss.Boss.AbilityCooldown < config.BossMinCooldown {
		t.Errorf("ability cooldown = %v", boss.Boss.AbilityCooldown)
	}
	for _, e := range f.ecs.Enemies[1:] {
		if e.ChildLevel != 1 {
			t.Errorf("child level = %d", e.ChildLevel)
		}
	}
}

func TestTowersMoveToTheirOrders(t *testing.T) {
	f := newFixture(t)
	tower := f.addTower(t, "ancient_common")
	w := f.env.World
	f.movement.OrderMove([]*component.Tower{tower}, w.CenterX+100, w.CenterY)
	if !tower.Moving() {
		t.Fatal("ordered tower is not moving")
	}
	f.movement.UpdateTowers(0.25)
	if math.Abs(tower.X-(w.CenterX+config.TowerMoveSpeed*0.25)) > 1e-9 {
		t.Errorf("x = %v after a quarter second", tower.X)
	}
	for i := 0; i < 10; i++ {
		f.movement.UpdateTowers(0.25)
	}
	if tower.Moving() || tower.X != w.CenterX+100 {
		t.Errorf("tower at %v, want arrived at %v", tower.X, w.CenterX+100)
	}
}

func TestOrderMoveClampsToInnerRing(t *testing.T) {
	f := newFixture(t)
	a := f.addTower(t, "ancient_common")
	b := f.addTower(t, "ancient_rare")
	f.movement.OrderMove([]*component.Tower{a, b}, -1e6, -1e6)
	w := f.env.World
	half := w.InnerOrbitRadius - config.InnerRingMargin
	for _, tower := range []*component.Tower{a, b} {
		if tower.TargetX < w.CenterX-half-1e-9 || tower.TargetY < w.CenterY-half-1e-9 {
			t.Errorf("target (%v, %v) outside the ring", tower.TargetX, tower.TargetY)
		}
	}
}

func TestCollisionSeparatesCoincidentTowers(t *testing.T) {
	f := newFixture(t)
	a := f.addTower(t, "ancient_common")
	b := f.addTower(t, "ancient_common")
	for i := 0; i < 60; i++ {
		f.movement.UpdateTowers(1.0 / 60)
	}
	minDist := a.ColliderRadius + b.ColliderRadius
	if d := a.Dist(b.X, b.Y); d < minDist-1e-6 {
		t.Errorf("towers %v apart, want at least %v", d, minDist)
	}
	if a.Moving() || b.Moving() {
		t.Error("idle towers kept a stale move target after the nudge")
	}
}
