// internal/defs/waves.go
package defs

// EnemyPattern selects the movement pattern and stat tweaks of a spawned enemy.
type EnemyPattern int

const (
	PatternStandard EnemyPattern = iota
	PatternSpiral
	PatternSprint
	PatternSplit
	PatternBoss
)

func (p EnemyPattern) String() string {
	switch p {
	case PatternSpiral:
		return "spiral"
	case PatternSprint:
		return "sprint"
	case PatternSplit:
		return "split"
	case PatternBoss:
		return "boss"
	default:
		return "standard"
	}
}

// PatternForRound picks the spawn pattern of a round.
func PatternForRound(round int, bossWave bool) EnemyPattern {
	switch {
	case bossWave:
		return PatternBoss
	case round%9 == 0:
		return PatternSplit
	case round%6 == 0:
		return PatternSpiral
	case round%4 == 0:
		return PatternSprint
	default:
		return PatternStandard
	}
}

// EraForRound buckets rounds 1-10, 11-20, 21-30 and 31+ into the four eras.
func EraForRound(round int) Era {
	switch {
	case round <= 10:
		return EraAncient
	case round <= 20:
		return EraJoseon
	case round <= 30:
		return EraIronclad
	default:
		return EraModern
	}
}
