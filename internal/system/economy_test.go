package system

import (
	"testing"

	"go-naval-defense/internal/config"
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/event"
	"go-naval-defense/internal/types"
)

func TestRollCost(t *testing.T) {
	cfg := config.Default().Economy
	for round, want := range map[int]int{0: 5, 1: 10, 5: 10, 6: 15, 11: 20, 50: 55} {
		if got := RollCost(cfg, round); got != want {
			t.Errorf("RollCost(%d) = %d, want %d", round, got, want)
		}
	}
}

func TestRoll(t *testing.T) {
	f := newFixture(t)
	f.ecs.Wave.Round = 1
	f.ecs.Session.Gold = 9
	if _, err := f.economy.Roll(); !isErr(err, ErrInsufficientGold) {
		t.Fatalf("Roll with 9 gold: %v", err)
	}
	if f.ecs.Session.Gold != 9 || len(f.ecs.Towers) != 0 {
		t.Fatal("failed roll changed state")
	}

	f.ecs.Session.Gold = 50
	tower, err := f.economy.Roll()
	if err != nil {
		t.Fatalf("Roll: %v", err)
	}
	if f.ecs.Session.Gold != 40 || len(f.ecs.Towers) != 1 {
		t.Errorf("gold=%d towers=%d", f.ecs.Session.Gold, len(f.ecs.Towers))
	}
	if len(f.ecs.Selection) != 1 || f.ecs.Selection[0] != tower.ID {
		t.Errorf("selection = %v, want the new tower", f.ecs.Selection)
	}
	w := f.env.World
	if d := tower.Dist(w.CenterX, w.CenterY); d > config.RollJitterMax+1e-9 {
		t.Errorf("launched %v from the center", d)
	}
	if len(f.rec.Of(event.TowerCreated)) != 1 {
		t.Error("no TowerCreated event")
	}
}

func TestRollRespectsCapacity(t *testing.T) {
	f := newFixture(t)
	f.ecs.Session.Gold = 1000
	for i := 0; i < config.DockyardCapacity; i++ {
		f.addTower(t, "ancient_common")
	}
	if _, err := f.economy.Roll(); !isErr(err, ErrNoCapacity) {
		t.Fatalf("Roll when full: %v", err)
	}
	if err := f.economy.BuildDockyard(); err != nil {
		t.Fatalf("BuildDockyard: %v", err)
	}
	if _, err := f.economy.Roll(); err != nil {
		t.Fatalf("Roll after a new dockyard: %v", err)
	}
}

func TestRollsStayInUnlockedEras(t *testing.T) {
	f := newFixture(t)
	f.ecs.Session.Gold = 1 << 20
	f.ecs.Session.Dockyards = 100
	for i := 0; i < 200; i++ {
		tower, err := f.economy.Roll()
		if err != nil {
			t.Fatalf("Roll %d: %v", i, err)
		}
		if tower.Era != defs.EraAncient {
			t.Fatalf("rolled %s in the ancient era", tower.UnitID)
		}
	}
}

func TestDockyardCost(t *testing.T) {
	f := newFixture(t)
	f.ecs.Session.Gold = 11
	if err := f.economy.BuildDockyard(); err != nil {
		t.Fatal(err)
	}
	if f.ecs.Session.Gold != 9 || f.ecs.Session.Dockyards != 2 {
		t.Fatalf("gold=%d dockyards=%d", f.ecs.Session.Gold, f.ecs.Session.Dockyards)
	}
	if err := f.economy.BuildDockyard(); !isErr(err, ErrInsufficientGold) {
		t.Fatalf("second dockyard costs %d: %v", DockyardCost(f.env.Config.Economy, 2), err)
	}
	if TotalCapacity(2) != 2*config.DockyardCapacity {
		t.Errorf("TotalCapacity(2) = %d", TotalCapacity(2))
	}
}

func TestPurchase(t *testing.T) {
	f := newFixture(t)
	if _, err := f.economy.Purchase(defs.Common); !isErr(err, ErrNotPurchasable) {
		t.Fatalf("purchase common: %v", err)
	}
	if _, err := f.economy.Purchase(defs.Legendary); !isErr(err, ErrInsufficientEssence) {
		t.Fatalf("purchase without essence: %v", err)
	}
	f.ecs.Session.Essence = 2
	tower, err := f.economy.Purchase(defs.Legendary)
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if tower.Rarity != defs.Legendary || f.ecs.Session.Essence != 0 {
		t.Errorf("rarity=%s essence=%d", tower.Rarity, f.ecs.Session.Essence)
	}
	if tower.Size != defs.ShipSize(defs.Legendary) {
		t.Errorf("size = %d", tower.Size)
	}
}

func TestSell(t *testing.T) {
	f := newFixture(t)
	common := f.addTower(t, "ancient_common")
	legendary := f.addTower(t, "ancient_legendary")

	if _, err := f.economy.Sell(nil); !isErr(err, ErrNothingSelected) {
		t.Fatalf("sell nothing: %v", err)
	}
	if _, err := f.economy.Sell([]types.EntityID{legendary.ID}); !isErr(err, ErrNotSellable) {
		t.Fatalf("sell legendary: %v", err)
	}
	gold, err := f.economy.Sell([]types.EntityID{common.ID, legendary.ID})
	if err != nil {
		t.Fatalf("Sell: %v", err)
	}
	if gold != 3 || f.ecs.Session.Gold != 3 {
		t.Errorf("sold for %d, gold %d; want 3", gold, f.ecs.Session.Gold)
	}
	if len(f.ecs.Towers) != 1 || f.ecs.Towers[0] != legendary {
		t.Errorf("remaining towers = %d, want only the legendary", len(f.ecs.Towers))
	}
	if _, err := f.economy.Sell([]types.EntityID{common.ID}); !isErr(err, ErrInvalidTarget) {
		t.Errorf("selling a sold tower: %v", err)
	}
}

func TestEnhanceIsSharedPerKey(t *testing.T) {
	f := newFixture(t)
	f.ecs.Session.Gold = 100
	a := f.addTower(t, "ancient_common")
	b := f.addTower(t, "ancient_common")
	other := f.addTower(t, "ancient_rare")
	before := TowerDamage(f.ecs, a)

	if got := EnhanceCost(f.ecs, f.env.Config.Economy, a); got != 3 {
		t.Fatalf("first enhance costs %d, want 3", got)
	}
	level, err := f.economy.Enhance(a)
	if err != nil || level != 1 {
		t.Fatalf("Enhance = %d, %v", level, err)
	}
	if f.ecs.Session.Gold != 97 {
		t.Errorf("gold = %d, want 97", f.ecs.Session.Gold)
	}
	if got := TowerDamage(f.ecs, b); got != before+b.UpgradeDamage {
		t.Errorf("sibling damage = %v, want %v", got, before+b.UpgradeDamage)
	}
	if f.ecs.UpgradeLevel(other.UpgradeKey()) != 0 {
		t.Error("enhance leaked to another key")
	}
	late := f.addTower(t, "ancient_common")
	if f.ecs.UpgradeLevel(late.UpgradeKey()) != 1 {
		t.Error("tower created after the enhance missed the shared level")
	}
	if got := EnhanceCost(f.ecs, f.env.Config.Economy, a); got != 5 {
		t.Errorf("second enhance costs %d, want 5", got)
	}
	data := f.rec.Of(event.TowerEnhanced)[0].Data.(event.TowerEnhancedData)
	if data.Affected != 2 {
		t.Errorf("affected = %d, want 2", data.Affected)
	}
}

func TestEraUpgrade(t *testing.T) {
	f := newFixture(t)
	f.ecs.Session.Gold = 100
	tower := f.addTower(t, "ancient_common")
	tower.FusionTier = 1

	if err := f.economy.EraUpgrade(tower); err != nil {
		t.Fatalf("EraUpgrade: %v", err)
	}
	if tower.Era != defs.EraJoseon || tower.Rarity != defs.Common {
		t.Errorf("upgraded to %s %s", tower.Era, tower.Rarity)
	}
	if tower.FusionTier != 1 || tower.BaseDamage != 2*tower.BaseDamageBase || tower.Size != 1 {
		t.Errorf("fusion lost: tier=%d damage=%v base=%v size=%d", tower.FusionTier, tower.BaseDamage, tower.BaseDamageBase, tower.Size)
	}
	if f.ecs.Session.Gold != 100-f.env.Config.Economy.TierCost(0) {
		t.Errorf("gold = %d", f.ecs.Session.Gold)
	}

	last := f.addTower(t, "modern_common")
	if err := f.economy.EraUpgrade(last); !isErr(err, ErrFinalEra) {
		t.Errorf("final era: %v", err)
	}
	top := f.addTower(t, "ancient_primordial")
	if err := f.economy.EraUpgrade(top); !isErr(err, ErrFinalTier) {
		t.Errorf("final tier: %v", err)
	}
	f.ecs.Session.Gold = 0
	if err := f.economy.EraUpgrade(tower); !isErr(err, ErrInsufficientGold) {
		t.Errorf("broke: %v", err)
	}
}
