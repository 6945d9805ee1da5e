// Package autopilot plays a run with a fixed, greedy policy. The balance
// runner uses it to sweep seeds; the game host can hand control to it.
package autopilot

import (
	"sort"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/interfaces"
	"go-naval-defense/internal/types"
)

// decisionInterval is the simulated time between two decisions.
const decisionInterval = 0.5

// Pilot decides on commands for a simulation.
type Pilot struct {
	sim  interfaces.Simulation
	next float64
}

func New(sim interfaces.Simulation) *Pilot {
	return &Pilot{sim: sim}
}

// Step queues at most a handful of commands when a decision is due.
// Commands take effect on the next simulation tick.
func (p *Pilot) Step() {
	ecs := p.sim.State()
	if !ecs.Session.Running || ecs.GameTime < p.next {
		return
	}
	p.next = ecs.GameTime + decisionInterval

	if ids := fusionGroup(ecs.Towers); len(ids) > 0 {
		_ = p.sim.Enqueue(component.Command{Type: component.CommandFusion, TargetIDs: ids})
		return
	}

	gold := ecs.Session.Gold
	used, total := p.sim.Capacity()
	if total-used > 0 && gold >= p.sim.RollCost() {
		_ = p.sim.Enqueue(component.Command{Type: component.CommandRoll})
		return
	}
	if total-used <= 0 && gold >= p.sim.DockyardCost() {
		_ = p.sim.Enqueue(component.Command{Type: component.CommandDockyard})
		return
	}
	if t := strongest(ecs.Towers); t != nil && gold >= 2*p.sim.EnhanceCost(t) {
		_ = p.sim.Enqueue(component.Command{Type: component.CommandUpgrade, TargetIDs: []types.EntityID{t.ID}})
		return
	}
	if p.sim.CanSkip() == nil {
		_ = p.sim.Skip()
	}
}

// fusionGroup returns three ids of the first unit and tier with enough
// members to fuse, lowest tier first.
func fusionGroup(towers []*component.Tower) []types.EntityID {
	type key struct {
		unit string
		tier int
	}
	groups := make(map[key][]types.EntityID)
	var order []key
	for _, t := range towers {
		if t.FusionTier >= 3 {
			continue
		}
		k := key{t.UnitID, t.FusionTier}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], t.ID)
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].tier < order[j].tier })
	for _, k := range order {
		if ids := groups[k]; len(ids) >= 3 {
			return ids[:3]
		}
	}
	return nil
}

func strongest(towers []*component.Tower) *component.Tower {
	var best *component.Tower
	for _, t := range towers {
		if best == nil || t.BaseDamage*t.FireRate > best.BaseDamage*best.FireRate {
			best = t
		}
	}
	return best
}
