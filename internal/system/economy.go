// internal/system/economy.go
package system

import (
	"fmt"
	"math"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/entity"
	"go-naval-defense/internal/event"
	"go-naval-defense/internal/types"
)

// EconomySystem implements every gold and essence spending action.
type EconomySystem struct {
	ecs   *entity.ECS
	env   *Env
	pools *UnitPools
}

func NewEconomySystem(ecs *entity.ECS, env *Env, pools *UnitPools) *EconomySystem {
	return &EconomySystem{ecs: ecs, env: env, pools: pools}
}

// RollCost rises by a step every few rounds. The prep round is one step
// cheaper than round 1.
func RollCost(cfg config.EconomyConfig, round int) int {
	steps := math.Floor(float64(round-1) / float64(max(1, cfg.RollCostRounds)))
	return cfg.RollBaseCost + int(steps)*cfg.RollCostStep
}

// EnhanceCost grows with the shared level of the tower's key.
func EnhanceCost(ecs *entity.ECS, cfg config.EconomyConfig, t *component.Tower) int {
	return cfg.EnhanceBaseCost + ecs.UpgradeLevel(t.UpgradeKey())*cfg.EnhanceCostStep
}

// SellValue is the gold returned for a rarity. Zero means unsellable.
func SellValue(cfg config.EconomyConfig, r defs.Rarity) int {
	return cfg.SellValues[r.String()]
}

// Roll buys a random unit and launches it next to the center.
func (s *EconomySystem) Roll() (*component.Tower, error) {
	sess := s.ecs.Session
	cost := RollCost(s.env.Config.Economy, s.ecs.Wave.Round)
	if sess.Gold < cost {
		return nil, fmt.Errorf("roll costs %dG: %w", cost, ErrInsufficientGold)
	}
	if !HasCapacity(s.ecs.Towers, sess.Dockyards) {
		return nil, fmt.Errorf("roll: %w", ErrNoCapacity)
	}
	def, err := s.pools.Draw(ChooseRarity(s.ecs, s.env))
	if err != nil {
		return nil, err
	}
	t := s.launch(def)
	sess.Gold -= cost
	s.env.status(fmt.Sprintf("%s %s %s launched", def.Era, def.Rarity, def.Name))
	return t, nil
}

// Purchase spends essence on a unit of a chosen rarity.
func (s *EconomySystem) Purchase(r defs.Rarity) (*component.Tower, error) {
	sess := s.ecs.Session
	cost, ok := s.env.Config.Economy.PurchaseCosts[r.String()]
	if !ok || cost <= 0 {
		return nil, fmt.Errorf("purchase %s: %w", r, ErrNotPurchasable)
	}
	if sess.Essence < cost {
		return nil, fmt.Errorf("%s costs %d essence: %w", r, cost, ErrInsufficientEssence)
	}
	if !HasCapacity(s.ecs.Towers, sess.Dockyards) {
		return nil, fmt.Errorf("purchase: %w", ErrNoCapacity)
	}
	def, err := s.pools.Draw(r)
	if err != nil {
		return nil, err
	}
	t := s.launch(def)
	sess.Essence -= cost
	s.env.status(fmt.Sprintf("Purchased %s %s", def.Rarity, def.Name))
	return t, nil
}

func (s *EconomySystem) launch(def defs.UnitDefinition) *component.Tower {
	w := s.env.World
	angle := s.ecs.Rng.Float64() * 2 * math.Pi
	r := config.RollJitterMin + s.ecs.Rng.Float64()*(config.RollJitterMax-config.RollJitterMin)
	t := NewTower(s.ecs, s.env, def, w.CenterX+math.Cos(angle)*r, w.CenterY+math.Sin(angle)*r)
	s.ecs.Selection = []types.EntityID{t.ID}
	s.env.emit(event.TowerCreated, event.TowerData{TowerID: t.ID, UnitID: t.UnitID, Rarity: t.Rarity})
	return t
}

// EraUpgrade replaces a tower's definition with a same-rarity unit of the next
// era. When the next era has none it falls back to the same era, then to a
// general draw. Fusion tier is preserved.
func (s *EconomySystem) EraUpgrade(t *component.Tower) error {
	if t.Era.Last() {
		return fmt.Errorf("%s: %w", t.Name, ErrFinalEra)
	}
	if t.TierIndex >= len(defs.RarityOrder)-1 {
		return fmt.Errorf("%s: %w", t.Name, ErrFinalTier)
	}
	cost := s.env.Config.Economy.TierCost(t.TierIndex)
	sess := s.ecs.Session
	if sess.Gold < cost {
		return fmt.Errorf("era upgrade costs %dG: %w", cost, ErrInsufficientGold)
	}

	candidates := s.env.Library.UnitsFor(t.Era+1, t.Rarity)
	if len(candidates) == 0 {
		candidates = s.env.Library.UnitsFor(t.Era, t.Rarity)
	}
	var def defs.UnitDefinition
	if len(candidates) > 0 {
		def = candidates[s.ecs.Rng.Intn(len(candidates))]
	} else {
		var err error
		if def, err = s.pools.Draw(t.Rarity); err != nil {
			return err
		}
	}

	sess.Gold -= cost
	ApplyDefinition(t, def)
	s.ecs.Selection = []types.EntityID{t.ID}
	s.env.emit(event.TowerUpgraded, event.TowerData{TowerID: t.ID, UnitID: t.UnitID, Rarity: t.Rarity})
	s.env.status(fmt.Sprintf("Era up! %s %s %s", def.Era, def.Rarity, def.Name))
	return nil
}

// Enhance raises the shared upgrade level of the tower's key by one. Every
// tower on that key picks the new level up immediately.
func (s *EconomySystem) Enhance(t *component.Tower) (int, error) {
	cost := EnhanceCost(s.ecs, s.env.Config.Economy, t)
	sess := s.ecs.Session
	if sess.Gold < cost {
		return 0, fmt.Errorf("enhance costs %dG: %w", cost, ErrInsufficientGold)
	}
	sess.Gold -= cost
	key := t.UpgradeKey()
	level := s.ecs.UpgradeLevel(key) + 1
	affected := s.ecs.SetUpgradeLevel(key, level)
	s.env.emit(event.TowerEnhanced, event.TowerEnhancedData{Level: level, Affected: affected})
	s.env.status(fmt.Sprintf("%s %s enhanced to +%d (%d ships)", t.Era, t.Rarity, level, affected))
	return level, nil
}

// Sell removes every sellable tower among ids and refunds them. Unsellable
// towers are skipped; the call only fails when nothing was sold.
func (s *EconomySystem) Sell(ids []types.EntityID) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("sell: %w", ErrNothingSelected)
	}
	cfg := s.env.Config.Economy
	var sold []types.EntityID
	gold, unsellable := 0, 0
	for _, id := range ids {
		t, ok := s.ecs.Tower(id)
		if !ok {
			continue
		}
		v := SellValue(cfg, t.Rarity)
		if v <= 0 {
			unsellable++
			continue
		}
		gold += v
		sold = append(sold, id)
	}
	if len(sold) == 0 {
		if unsellable > 0 {
			return 0, fmt.Errorf("sell: %w", ErrNotSellable)
		}
		return 0, fmt.Errorf("sell: %w", ErrInvalidTarget)
	}
	s.ecs.RemoveTowers(sold...)
	s.ecs.Session.Gold += gold
	s.env.emit(event.TowerSold, event.TowerSoldData{TowerIDs: sold, Gold: gold})
	note := ""
	if unsellable > 0 {
		note = fmt.Sprintf(", %d kept", unsellable)
	}
	s.env.status(fmt.Sprintf("Sold %d ships +%dG%s", len(sold), gold, note))
	return gold, nil
}

// BuildDockyard adds shipyard capacity.
func (s *EconomySystem) BuildDockyard() error {
	sess := s.ecs.Session
	cost := DockyardCost(s.env.Config.Economy, sess.Dockyards)
	if sess.Gold < cost {
		return fmt.Errorf("dockyard costs %dG: %w", cost, ErrInsufficientGold)
	}
	sess.Gold -= cost
	sess.Dockyards++
	s.env.emit(event.DockyardBuilt, event.DockyardBuiltData{Dockyards: sess.Dockyards, Capacity: TotalCapacity(sess.Dockyards)})
	s.env.status(fmt.Sprintf("Dockyard built (%d total) -%dG", sess.Dockyards, cost))
	return nil
}
