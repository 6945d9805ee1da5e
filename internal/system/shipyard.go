// internal/system/shipyard.go
package system

import (
	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"
)

// TotalCapacity is the shipyard capacity provided by a number of dockyards.
func TotalCapacity(dockyards int) int {
	return dockyards * config.DockyardCapacity
}

// UsedCapacity sums the ship sizes of every tower.
func UsedCapacity(towers []*component.Tower) int {
	used := 0
	for _, t := range towers {
		used += t.Size
	}
	return used
}

// HasCapacity reports whether one more ship can be launched.
func HasCapacity(towers []*component.Tower, dockyards int) bool {
	return UsedCapacity(towers) < TotalCapacity(dockyards)
}

// DockyardCost is the price of the next dockyard.
func DockyardCost(cfg config.EconomyConfig, dockyards int) int {
	return cfg.DockyardBaseCost + max(0, dockyards-1)*cfg.DockyardCostStep
}
