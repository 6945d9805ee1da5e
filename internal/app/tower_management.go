// internal/app/tower_management.go
package app

import (
	"go-naval-defense/internal/component"
	"go-naval-defense/internal/types"
)

// TowerAt returns the topmost tower whose selection radius contains a point.
func (g *Game) TowerAt(x, y float64) (*component.Tower, bool) {
	towers := g.ECS.Towers
	for i := len(towers) - 1; i >= 0; i-- {
		t := towers[i]
		if t.DistSq(x, y) <= t.SelectionRadius*t.SelectionRadius {
			return t, true
		}
	}
	return nil, false
}

// SelectAt replaces the selection with the tower under a point, or clears it.
// With additive set the tower is toggled in the current selection instead.
func (g *Game) SelectAt(x, y float64, additive bool) []types.EntityID {
	t, ok := g.TowerAt(x, y)
	switch {
	case !ok && !additive:
		g.ECS.Selection = nil
	case !ok:
	case additive:
		g.toggleSelection(t.ID)
	default:
		g.ECS.Selection = []types.EntityID{t.ID}
	}
	return g.ECS.Selection
}

// SelectSameUnit selects every tower sharing the unit and fusion tier of the
// tower under a point, the usual prelude to a fusion.
func (g *Game) SelectSameUnit(x, y float64) []types.EntityID {
	t, ok := g.TowerAt(x, y)
	if !ok {
		return g.ECS.Selection
	}
	var ids []types.EntityID
	for _, other := range g.ECS.Towers {
		if other.UnitID == t.UnitID && other.FusionTier == t.FusionTier {
			ids = append(ids, other.ID)
		}
	}
	g.ECS.Selection = ids
	return ids
}

// Select replaces the selection with the given live towers.
func (g *Game) Select(ids ...types.EntityID) {
	sel := make([]types.EntityID, 0, len(ids))
	for _, id := range ids {
		if _, ok := g.ECS.Tower(id); ok {
			sel = append(sel, id)
		}
	}
	g.ECS.Selection = sel
}

// ClearSelection deselects everything.
func (g *Game) ClearSelection() {
	g.ECS.Selection = nil
}

// OrderMove sends the selected towers towards a world point.
func (g *Game) OrderMove(x, y float64) bool {
	towers := g.ECS.SelectedTowers()
	if len(towers) == 0 {
		return false
	}
	g.MovementSystem.OrderMove(towers, x, y)
	return true
}

// UpgradeLevel is the shared upgrade level a tower currently fires with.
func (g *Game) UpgradeLevel(t *component.Tower) int {
	return g.ECS.UpgradeLevel(t.UpgradeKey())
}

func (g *Game) toggleSelection(id types.EntityID) {
	for i, sel := range g.ECS.Selection {
		if sel == id {
			g.ECS.Selection = append(g.ECS.Selection[:i], g.ECS.Selection[i+1:]...)
			return
		}
	}
	g.ECS.Selection = append(g.ECS.Selection, id)
}
