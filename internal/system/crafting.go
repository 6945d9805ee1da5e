// internal/system/crafting.go
package system

import (
	"fmt"
	"sort"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"
	"go-naval-defense/internal/entity"
	"go-naval-defense/internal/event"
	"go-naval-defense/internal/types"
)

// FusionSystem merges three towers of the same unit and fusion tier into one
// tower of the next tier.
type FusionSystem struct {
	ecs *entity.ECS
	env *Env
}

func NewFusionSystem(ecs *entity.ECS, env *Env) *FusionSystem {
	return &FusionSystem{ecs: ecs, env: env}
}

// CanFuse reports whether t has at least two partners of its unit and tier.
func (s *FusionSystem) CanFuse(t *component.Tower) bool {
	if t.FusionTier >= config.MaxFusionTier {
		return false
	}
	n := 0
	for _, other := range s.ecs.Towers {
		if other.UnitID == t.UnitID && other.FusionTier == t.FusionTier {
			n++
		}
	}
	return n >= 3
}

// Fuse cascades fusion for the unit of every given tower. It returns the last
// survivor, which becomes the selection.
func (s *FusionSystem) Fuse(ids []types.EntityID) (*component.Tower, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("fusion: %w", ErrNothingSelected)
	}
	var towers []*component.Tower
	for _, id := range ids {
		if t, ok := s.ecs.Tower(id); ok {
			towers = append(towers, t)
		}
	}
	if len(towers) == 0 {
		return nil, fmt.Errorf("fusion: %w", ErrInvalidTarget)
	}

	type groupKey struct {
		unitID string
		tier   int
	}
	processed := make(map[groupKey]bool)
	var survivor *component.Tower
	fused, allMaxed := false, true
	for _, t := range towers {
		if t.FusionTier < config.MaxFusionTier {
			allMaxed = false
		}
		key := groupKey{t.UnitID, t.FusionTier}
		if processed[key] {
			continue
		}
		processed[key] = true
		if !s.CanFuse(t) {
			continue
		}
		if last, changed := s.resolve(t.UnitID); changed {
			fused = true
			survivor = last
		}
	}
	if !fused {
		if allMaxed {
			return nil, fmt.Errorf("fusion: %w", ErrMaxFusionTier)
		}
		return nil, fmt.Errorf("fusion: %w", ErrNoFusion)
	}
	s.ecs.Selection = []types.EntityID{survivor.ID}
	return survivor, nil
}

// resolve repeatedly fuses the lowest tier of a unit that has three members
// until no tier has.
func (s *FusionSystem) resolve(unitID string) (*component.Tower, bool) {
	var survivor *component.Tower
	changed := false
	for {
		groups := make(map[int][]*component.Tower)
		for _, t := range s.ecs.Towers {
			if t.UnitID == unitID && t.FusionTier < config.MaxFusionTier {
				groups[t.FusionTier] = append(groups[t.FusionTier], t)
			}
		}
		fused := false
		for tier := 0; tier < config.MaxFusionTier; tier++ {
			list := groups[tier]
			if len(list) < 3 {
				continue
			}
			sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
			s.fuseGroup(list[0], list[1:3])
			survivor, changed, fused = list[0], true, true
			break
		}
		if !fused {
			return survivor, changed
		}
	}
}

func (s *FusionSystem) fuseGroup(base *component.Tower, others []*component.Tower) {
	sumX, sumY := base.X, base.Y
	consumed := make([]types.EntityID, 0, len(others))
	for _, o := range others {
		sumX += o.X
		sumY += o.Y
		consumed = append(consumed, o.ID)
	}
	n := float64(len(others) + 1)
	s.ecs.RemoveTowers(consumed...)

	x, y := s.env.World.ClampToInnerRing(sumX/n, sumY/n, config.InnerRingMargin)
	base.X, base.Y = x, y
	base.TargetX, base.TargetY = x, y
	base.FusionTier = min(base.FusionTier+1, config.MaxFusionTier)
	base.HP = base.MaxHP
	if def, ok := s.env.Library.Unit(base.UnitID); ok {
		RefreshFusion(base, def)
	} else {
		UpdateFusionScaling(base)
	}

	s.env.emit(event.TowersFused, event.TowersFusedData{SurvivorID: base.ID, Consumed: consumed, Tier: base.FusionTier})
	s.env.statusFor(fmt.Sprintf("%s fused! Tier %d", base.Name, base.FusionTier), 1.8)
	s.env.Log.Debug().Uint32("tower", uint32(base.ID)).Int("tier", base.FusionTier).Msg("fusion")
}
