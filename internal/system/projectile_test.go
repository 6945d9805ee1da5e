package system

import (
	"math"
	"testing"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/defs"
)

func (f *fixture) addProjectile(x, y float64, typ defs.ProjectileType, damage float64) *component.Projectile {
	p := &component.Projectile{
		ID:            f.ecs.NewEntity(),
		Position:      component.Position{X: x, Y: y},
		OriginX:       x - 1,
		OriginY:       y,
		MaxDistanceSq: 1e6,
		TTL:           10,
		Radius:        4,
		Damage:        damage,
		Weapon:        defs.WeaponBow,
		Type:          typ,
	}
	if typ == defs.ProjectileExplosive {
		p.ExplosionRadius = 72
		p.Weapon = defs.WeaponCannon
	}
	f.ecs.AddProjectile(p)
	return p
}

func TestPiercingNeverHitsTheSameEnemyTwice(t *testing.T) {
	f := newFixture(t)
	e := f.addEnemy(500, 500, 1000, 0)
	p := f.addProjectile(500, 500, defs.ProjectilePiercing, 10)

	for i := 0; i < 5; i++ {
		f.projectiles.Update(0.01)
	}
	dealt := e.MaxHP - e.HP
	if dealt < 9 || dealt > 11 {
		t.Fatalf("damage dealt = %v, want a single hit of 9..11", dealt)
	}
	if len(p.HitEnemies) != 1 {
		t.Errorf("hit set = %v, want one entry", p.HitEnemies)
	}
	if len(f.ecs.Projectiles) != 1 {
		t.Errorf("piercing projectile was removed after its hit")
	}
}

func TestPiercingHitsEveryEnemyOnItsPath(t *testing.T) {
	f := newFixture(t)
	a := f.addEnemy(500, 500, 1000, 0)
	b := f.addEnemy(540, 500, 1000, 0)
	p := f.addProjectile(500, 500, defs.ProjectilePiercing, 10)
	p.VX = 400

	for i := 0; i < 20; i++ {
		f.projectiles.Update(0.01)
	}
	if a.HP == a.MaxHP || b.HP == b.MaxHP {
		t.Fatalf("hp a=%v b=%v, want both hit", a.HP, b.HP)
	}
}

func TestNormalProjectileExpiresOnHit(t *testing.T) {
	f := newFixture(t)
	e := f.addEnemy(500, 500, 1000, 0)
	f.addProjectile(500, 500, defs.ProjectileNormal, 10)
	f.projectiles.Update(0.01)
	if len(f.ecs.Projectiles) != 0 {
		t.Fatalf("projectiles = %d, want 0", len(f.ecs.Projectiles))
	}
	if e.HP == e.MaxHP {
		t.Error("enemy not damaged")
	}
}

func TestExplosiveSplashesWithFalloff(t *testing.T) {
	f := newFixture(t)
	impact := f.addEnemy(500, 500, 1000, 0)
	near := f.addEnemy(520, 500, 1000, 0)
	far := f.addEnemy(700, 500, 1000, 0)
	f.addProjectile(500, 500, defs.ProjectileExplosive, 100)

	f.projectiles.Update(0.001)

	direct := impact.MaxHP - impact.HP
	splash := near.MaxHP - near.HP
	if direct == 0 || splash == 0 {
		t.Fatalf("direct=%v splash=%v, want both positive", direct, splash)
	}
	if splash >= direct {
		t.Errorf("splash %v not below direct %v", splash, direct)
	}
	if far.HP != far.MaxHP {
		t.Errorf("enemy outside the radius took %v", far.MaxHP-far.HP)
	}
	if len(f.ecs.Projectiles) != 0 {
		t.Error("explosive projectile survived its impact")
	}
}

func TestProjectileExpiresPastRange(t *testing.T) {
	f := newFixture(t)
	p := f.addProjectile(0, 0, defs.ProjectileNormal, 10)
	p.OriginX, p.OriginY = 0, 0
	p.MaxDistanceSq = 100
	p.VX = 1000
	f.projectiles.Update(0.02)
	if len(f.ecs.Projectiles) != 0 {
		t.Fatal("projectile outlived its range")
	}
}

func TestFindTarget(t *testing.T) {
	tower := &component.Tower{Position: component.Position{X: 0, Y: 0}, Range: 100}
	first := &component.Enemy{ID: 1, Position: component.Position{X: 50, Y: 0}, HP: 1}
	tie := &component.Enemy{ID: 2, Position: component.Position{X: 0, Y: 50}, HP: 1}
	dead := &component.Enemy{ID: 3, Position: component.Position{X: 10, Y: 0}, HP: 0}
	far := &component.Enemy{ID: 4, Position: component.Position{X: 150, Y: 0}, HP: 1}

	tests := []struct {
		name    string
		enemies []*component.Enemy
		want    *component.Enemy
	}{
		{"tie keeps first", []*component.Enemy{first, tie}, first},
		{"tie keeps first reversed", []*component.Enemy{tie, first}, tie},
		{"skips dead", []*component.Enemy{dead, tie}, tie},
		{"out of range", []*component.Enemy{far}, nil},
		{"none", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindTarget(tt.enemies, tower); got != tt.want {
				t.Errorf("FindTarget = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCombatFiresAndWaitsForCooldown(t *testing.T) {
	f := newFixture(t)
	tower := f.addTower(t, "ancient_common")
	f.addEnemy(tower.X+100, tower.Y, 1000, 0)

	f.combat.Update(0.016)
	if len(f.ecs.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(f.ecs.Projectiles))
	}
	p := f.ecs.Projectiles[0]
	if p.VX <= 0 || math.Abs(p.VY) > 1e-9 {
		t.Errorf("velocity = (%v, %v), want along +x", p.VX, p.VY)
	}
	if want := tower.ProjectileSpeed * 1.5; math.Abs(math.Hypot(p.VX, p.VY)-want) > 1e-6 {
		t.Errorf("speed = %v, want %v", math.Hypot(p.VX, p.VY), want)
	}
	if math.Abs(tower.Cooldown-1/tower.FireRate) > 1e-9 {
		t.Errorf("cooldown = %v, want %v", tower.Cooldown, 1/tower.FireRate)
	}

	f.combat.Update(0.016)
	if len(f.ecs.Projectiles) != 1 {
		t.Errorf("fired again during cooldown")
	}
}

func TestLeadAimsAheadOfMovingTarget(t *testing.T) {
	f := newFixture(t)
	tower := f.addTower(t, "ancient_common")
	e := f.addEnemy(0, 0, 1000, 0)
	e.Angle = 0
	e.Radius = 120
	e.AngularSpeed = 0.5
	e.X, e.Y = tower.X+120, tower.Y
	// Velocity at angle 0 points along +y.
	f.combat.Update(0.016)
	if len(f.ecs.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(f.ecs.Projectiles))
	}
	if p := f.ecs.Projectiles[0]; p.VY <= 0 {
		t.Errorf("VY = %v, want a lead towards +y", p.VY)
	}
}

func TestProjectileDamageUsesSharedUpgrade(t *testing.T) {
	f := newFixture(t)
	tower := f.addTower(t, "ancient_common")
	f.ecs.SetUpgradeLevel(tower.UpgradeKey(), 2)
	f.addEnemy(tower.X+50, tower.Y, 1000, 0)
	f.combat.Update(0.016)
	want := tower.BaseDamage + 2*tower.UpgradeDamage
	if got := f.ecs.Projectiles[0].Damage; got != want {
		t.Fatalf("damage = %v, want %v", got, want)
	}
}
