// internal/component/command.go
package component

import (
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/types"
)

// CommandType names a queued player action.
type CommandType string

const (
	CommandRoll       CommandType = "roll"
	CommandUpgrade    CommandType = "upgrade"
	CommandFusion     CommandType = "fusion"
	CommandSell       CommandType = "sell"
	CommandDockyard   CommandType = "dockyard"
	CommandEra        CommandType = "era"
	CommandSummonBoss CommandType = "summonBoss"
	CommandPurchase   CommandType = "purchase"
)

// Command is one entry of the pending command queue. Fields that a command
// type does not use are left zero.
type Command struct {
	Type      CommandType
	TargetIDs []types.EntityID
	BossKey   string
	Rarity    defs.Rarity
}

// ClearsQueueOnFailure reports whether a failed command discards the rest of
// the queue.
func (c Command) ClearsQueueOnFailure() bool {
	return c.Type != CommandSell && c.Type != CommandSummonBoss
}
