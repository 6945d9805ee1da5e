// internal/component/enemy.go
package component

import (
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/types"
)

// Enemy is an orbiting hostile ship. Boss-only data lives in Boss, which is nil
// for regular enemies.
type Enemy struct {
	ID      types.EntityID
	Pattern defs.EnemyPattern

	Angle        float64
	Radius       float64
	RadialSpeed  float64
	AngularSpeed float64
	Position
	Heading float64

	HP, MaxHP  float64
	Defense    float64
	Reward     int
	Size       float64
	ChildLevel int

	Archetype string
	Name      string
	Color     string
	Era       defs.Era

	Boss *BossTraits
}

// BossTraits carries the boss variant of an enemy.
type BossTraits struct {
	Key             string
	AbilityCooldown float64
	// WaveBoss is true for the scheduled boss of a boss wave and false for a
	// player-summoned boss.
	WaveBoss bool
	Level    int
	SpawnAt  float64
	Essence  int
}

func (e *Enemy) IsBoss() bool {
	return e.Boss != nil
}

func (e *Enemy) Alive() bool {
	return e.HP > 0
}
