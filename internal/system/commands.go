// internal/system/commands.go
package system

import (
	"errors"
	"fmt"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/entity"
	"go-naval-defense/internal/types"
)

// CommandSystem drains the pending command queue at the start of a tick.
type CommandSystem struct {
	ecs     *entity.ECS
	env     *Env
	economy *EconomySystem
	fusion  *FusionSystem
	waves   *WaveSystem
}

func NewCommandSystem(ecs *entity.ECS, env *Env, economy *EconomySystem, fusion *FusionSystem, waves *WaveSystem) *CommandSystem {
	return &CommandSystem{ecs: ecs, env: env, economy: economy, fusion: fusion, waves: waves}
}

// Process executes queued commands in order. A failure reports a status
// message and, unless the command type tolerates it, drops the rest of the
// queue.
func (s *CommandSystem) Process() {
	for len(s.ecs.Commands) > 0 {
		cmd := s.ecs.Commands[0]
		s.ecs.Commands = s.ecs.Commands[1:]
		err := s.Execute(cmd)
		if err == nil {
			continue
		}
		s.env.Log.Debug().Err(err).Str("command", string(cmd.Type)).Msg("command rejected")
		s.env.status(failureMessage(err))
		if cmd.ClearsQueueOnFailure() {
			s.ecs.Commands = nil
		}
	}
	s.ecs.Commands = nil
}

// Execute runs one command immediately.
func (s *CommandSystem) Execute(cmd component.Command) error {
	switch cmd.Type {
	case component.CommandRoll:
		_, err := s.economy.Roll()
		return err
	case component.CommandPurchase:
		_, err := s.economy.Purchase(cmd.Rarity)
		return err
	case component.CommandUpgrade:
		t, err := s.firstTarget(cmd)
		if err != nil {
			return err
		}
		_, err = s.economy.Enhance(t)
		return err
	case component.CommandEra:
		towers, err := s.targets(cmd)
		if err != nil {
			return err
		}
		for _, t := range towers {
			if err := s.economy.EraUpgrade(t); err != nil {
				return err
			}
		}
		return nil
	case component.CommandFusion:
		_, err := s.fusion.Fuse(s.targetIDs(cmd))
		return err
	case component.CommandSell:
		_, err := s.economy.Sell(s.targetIDs(cmd))
		return err
	case component.CommandDockyard:
		return s.economy.BuildDockyard()
	case component.CommandSummonBoss:
		_, err := s.waves.SummonBoss(cmd.BossKey)
		return err
	default:
		return fmt.Errorf("%q: %w", cmd.Type, ErrUnknownCommand)
	}
}

// targetIDs falls back to the current selection when a command names no
// targets.
func (s *CommandSystem) targetIDs(cmd component.Command) []types.EntityID {
	if len(cmd.TargetIDs) > 0 {
		return cmd.TargetIDs
	}
	return append([]types.EntityID(nil), s.ecs.Selection...)
}

func (s *CommandSystem) targets(cmd component.Command) ([]*component.Tower, error) {
	ids := s.targetIDs(cmd)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%s: %w", cmd.Type, ErrNothingSelected)
	}
	var out []*component.Tower
	for _, id := range ids {
		if t, ok := s.ecs.Tower(id); ok {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", cmd.Type, ErrInvalidTarget)
	}
	return out, nil
}

func (s *CommandSystem) firstTarget(cmd component.Command) (*component.Tower, error) {
	towers, err := s.targets(cmd)
	if err != nil {
		return nil, err
	}
	return towers[0], nil
}

// failureMessage maps a rejection to the banner text the player sees.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientGold):
		return "Not enough gold"
	case errors.Is(err, ErrInsufficientEssence):
		return "Not enough essence"
	case errors.Is(err, ErrNoCapacity):
		return "Shipyard is full. Build a dockyard"
	case errors.Is(err, ErrNoUnitPool):
		return "No ships available"
	case errors.Is(err, ErrOnCooldown):
		return "Summon is on cooldown"
	case errors.Is(err, ErrNothingSelected):
		return "Select a ship first"
	case errors.Is(err, ErrMaxFusionTier):
		return "Already at max fusion tier"
	case errors.Is(err, ErrNoFusion):
		return "Need 3 identical ships to fuse"
	case errors.Is(err, ErrFinalEra):
		return "Already in the final era"
	case errors.Is(err, ErrFinalTier):
		return "Already at the highest tier"
	case errors.Is(err, ErrLocked):
		return "Boss not unlocked yet"
	case errors.Is(err, ErrNotSellable):
		return "That ship cannot be sold"
	default:
		return err.Error()
	}
}
