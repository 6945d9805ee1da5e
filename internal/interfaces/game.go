package interfaces

import (
	"go-naval-defense/internal/component"
	"go-naval-defense/internal/entity"
)

// Simulation is the surface a driver needs to play a run: hosts, the
// autopilot and tests program against it rather than the concrete game.
type Simulation interface {
	Update(deltaTime float64)
	Enqueue(cmd component.Command) error
	Skip() error
	CanSkip() error
	Phase() component.Phase
	State() *entity.ECS

	RollCost() int
	DockyardCost() int
	EnhanceCost(t *component.Tower) int
	Capacity() (used, total int)
}
