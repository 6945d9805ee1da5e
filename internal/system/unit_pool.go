// internal/system/unit_pool.go
package system

import (
	"fmt"

	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/entity"
)

// UnitPools caches, per rarity, the units of every unlocked era. The cache is
// reset whenever the era index changes.
type UnitPools struct {
	ecs      *entity.ECS
	library  *defs.Library
	byRarity map[defs.Rarity][]defs.UnitDefinition
	eraIndex int
}

func NewUnitPools(ecs *entity.ECS, library *defs.Library) *UnitPools {
	return &UnitPools{ecs: ecs, library: library}
}

func (p *UnitPools) Reset() {
	p.byRarity = nil
}

// Available returns every unit of a rarity from eras up to the current one.
func (p *UnitPools) Available(r defs.Rarity) []defs.UnitDefinition {
	if p.byRarity == nil || p.eraIndex != p.ecs.Session.EraIndex {
		p.byRarity = make(map[defs.Rarity][]defs.UnitDefinition)
		p.eraIndex = p.ecs.Session.EraIndex
	}
	if units, ok := p.byRarity[r]; ok {
		return units
	}
	var units []defs.UnitDefinition
	for i := 0; i <= p.eraIndex && i < len(defs.EraOrder); i++ {
		units = append(units, p.library.UnitsFor(defs.EraOrder[i], r)...)
	}
	p.byRarity[r] = units
	return units
}

// Draw picks a unit of the rarity, falling back to lower rarities when an
// unlocked era has none.
func (p *UnitPools) Draw(r defs.Rarity) (defs.UnitDefinition, error) {
	for i := int(r); i >= 0; i-- {
		candidates := p.Available(defs.Rarity(i))
		if len(candidates) > 0 {
			return candidates[p.ecs.Rng.Intn(len(candidates))], nil
		}
	}
	return defs.UnitDefinition{}, fmt.Errorf("draw %s: %w", r, ErrNoUnitPool)
}

// ChooseRarity rolls the configured rarity table. A roll past the table lands
// on common.
func ChooseRarity(ecs *entity.ECS, env *Env) defs.Rarity {
	table := env.Config.Rarity
	chances := make([]float64, len(table))
	for i, row := range table {
		chances[i] = row.Chance
	}
	idx := ecs.Rng.ChooseCumulative(chances)
	if idx < 0 {
		return defs.Common
	}
	r, err := defs.ParseRarity(table[idx].Rarity)
	if err != nil {
		return defs.Common
	}
	return r
}
