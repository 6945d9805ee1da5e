// internal/system/errors.go
package system

import "errors"

// Command rejections. Each failed command wraps one of these so callers can
// branch with errors.Is while the message stays specific.
var (
	ErrInsufficientGold    = errors.New("not enough gold")
	ErrInsufficientEssence = errors.New("not enough essence")
	ErrNoCapacity          = errors.New("shipyard is full")
	ErrNoUnitPool          = errors.New("no unit available")
	ErrOnCooldown          = errors.New("on cooldown")
	ErrNothingSelected     = errors.New("no unit selected")
	ErrInvalidTarget       = errors.New("invalid unit")
	ErrMaxFusionTier       = errors.New("max fusion tier reached")
	ErrNoFusion            = errors.New("nothing can be fused")
	ErrFinalEra            = errors.New("final era reached")
	ErrFinalTier           = errors.New("final tier reached")
	ErrLocked              = errors.New("boss is locked")
	ErrUnknownBoss         = errors.New("unknown boss")
	ErrNotSellable         = errors.New("legendary or higher units cannot be sold")
	ErrNotPurchasable      = errors.New("rarity cannot be purchased")
	ErrSkipNotAllowed      = errors.New("round cannot be skipped")
	ErrUnknownCommand      = errors.New("unknown command")
)
