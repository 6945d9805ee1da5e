package system

import (
	"testing"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/types"
)

func TestProcessClearsQueueOnFailure(t *testing.T) {
	f := newFixture(t)
	f.ecs.Wave.Round = 1
	f.ecs.Session.Gold = 12
	f.ecs.Commands = []component.Command{
		{Type: component.CommandRoll},
		{Type: component.CommandRoll},
		{Type: component.CommandDockyard},
	}
	f.commands.Process()

	if len(f.ecs.Towers) != 1 {
		t.Errorf("towers = %d, want 1", len(f.ecs.Towers))
	}
	if f.ecs.Session.Dockyards != 1 {
		t.Error("dockyard built after a failed roll")
	}
	if len(f.ecs.Commands) != 0 {
		t.Errorf("queue = %v, want empty", f.ecs.Commands)
	}
	if got := f.statuses(); got[len(got)-1] != "Not enough gold" {
		t.Errorf("last status = %q", got[len(got)-1])
	}
}

func TestSellAndSummonFailuresKeepTheQueue(t *testing.T) {
	f := newFixture(t)
	f.ecs.Session.Gold = 20
	f.ecs.Commands = []component.Command{
		{Type: component.CommandSell},
		{Type: component.CommandSummonBoss, BossKey: "boss_ancient_galley"},
		{Type: component.CommandDockyard},
	}
	f.commands.Process()
	if f.ecs.Session.Dockyards != 2 {
		t.Fatalf("dockyards = %d, want the dockyard built", f.ecs.Session.Dockyards)
	}
}

func TestExecuteUsesSelection(t *testing.T) {
	f := newFixture(t)
	f.ecs.Session.Gold = 100
	tower := f.addTower(t, "ancient_common")

	if err := f.commands.Execute(component.Command{Type: component.CommandUpgrade}); !isErr(err, ErrNothingSelected) {
		t.Fatalf("upgrade without selection: %v", err)
	}
	f.ecs.Selection = []types.EntityID{tower.ID}
	if err := f.commands.Execute(component.Command{Type: component.CommandUpgrade}); err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	if f.ecs.UpgradeLevel(tower.UpgradeKey()) != 1 {
		t.Error("selected tower not enhanced")
	}
	if err := f.commands.Execute(component.Command{Type: component.CommandEra}); err != nil {
		t.Fatalf("era: %v", err)
	}
	if tower.Era == 0 {
		t.Error("selected tower not era upgraded")
	}
	if err := f.commands.Execute(component.Command{Type: component.CommandSell, TargetIDs: []types.EntityID{tower.ID}}); err != nil {
		t.Fatalf("sell: %v", err)
	}
	if len(f.ecs.Towers) != 0 || len(f.ecs.Selection) != 0 {
		t.Errorf("towers=%d selection=%v after sell", len(f.ecs.Towers), f.ecs.Selection)
	}
	if err := f.commands.Execute(component.Command{Type: component.CommandUpgrade, TargetIDs: []types.EntityID{tower.ID}}); !isErr(err, ErrInvalidTarget) {
		t.Errorf("upgrade of a sold tower: %v", err)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	f := newFixture(t)
	if err := f.commands.Execute(component.Command{Type: "teleport"}); !isErr(err, ErrUnknownCommand) {
		t.Fatalf("err = %v", err)
	}
}

func TestExecutePurchaseAndFusion(t *testing.T) {
	f := newFixture(t)
	f.ecs.Session.Essence = 1
	if err := f.commands.Execute(component.Command{Type: component.CommandPurchase, Rarity: 2}); err != nil {
		t.Fatalf("purchase unique: %v", err)
	}
	var ids []types.EntityID
	for i := 0; i < 3; i++ {
		ids = append(ids, f.addTower(t, "joseon_rare").ID)
	}
	if err := f.commands.Execute(component.Command{Type: component.CommandFusion, TargetIDs: ids}); err != nil {
		t.Fatalf("fusion: %v", err)
	}
	if len(f.ecs.Towers) != 2 {
		t.Errorf("towers = %d, want the purchase and the fused ship", len(f.ecs.Towers))
	}
}
