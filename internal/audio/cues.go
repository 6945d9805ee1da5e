// internal/audio/cues.go
package audio

import (
	"time"

	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/event"
)

// Cue names one sound effect.
type Cue string

const (
	CueNone       Cue = ""
	CueUIClick    Cue = "ui_click"
	CueBuild      Cue = "build"
	CueRoll       Cue = "roll"
	CueUpgrade    Cue = "upgrade"
	CueFusion     Cue = "fusion"
	CueEraUp      Cue = "era_up"
	CueDockyard   Cue = "dockyard"
	CueSell       Cue = "sell"
	CueHit        Cue = "hit"
	CueExplosion  Cue = "explosion"
	CueFireArrow  Cue = "fire_arrow"
	CueFireGun    Cue = "fire_gun"
	CueFireCannon Cue = "fire_cannon"
	CueBossSpawn  Cue = "boss_spawn"
	CueWaveStart  Cue = "wave_start"
	CueWaveClear  Cue = "wave_clear"
	CueVictory    Cue = "victory"
	CueGameOver   Cue = "game_over"
)

// throttle is the minimum gap between two plays of the same cue. Cues that
// fire many times per frame in a busy wave get the longest gaps.
var throttle = map[Cue]time.Duration{
	CueHit:        60 * time.Millisecond,
	CueExplosion:  90 * time.Millisecond,
	CueFireArrow:  70 * time.Millisecond,
	CueFireGun:    70 * time.Millisecond,
	CueFireCannon: 110 * time.Millisecond,
}

const defaultThrottle = 40 * time.Millisecond

// Throttle returns the minimum gap between two plays of a cue.
func Throttle(c Cue) time.Duration {
	if d, ok := throttle[c]; ok {
		return d
	}
	return defaultThrottle
}

// CueForEvent maps a simulation event to the cue it should play.
func CueForEvent(e event.Event) Cue {
	switch e.Type {
	case event.Fired:
		d, ok := e.Data.(event.FiredData)
		if !ok {
			return CueNone
		}
		return Cue(defs.StyleFor(d.Weapon).Cue)
	case event.HitBlip:
		if d, ok := e.Data.(event.HitBlipData); ok && d.Explosive {
			return CueExplosion
		}
		return CueHit
	case event.BossSpawned:
		return CueBossSpawn
	case event.WaveStarted:
		if d, ok := e.Data.(event.WaveStartedData); ok && d.Round == 0 {
			return CueNone
		}
		return CueWaveStart
	case event.WaveCleared:
		return CueWaveClear
	case event.RunEnded:
		if d, ok := e.Data.(event.RunEndedData); ok && d.Victory {
			return CueVictory
		}
		return CueGameOver
	case event.TowerCreated:
		return CueRoll
	case event.TowersFused:
		return CueFusion
	case event.TowerUpgraded:
		return CueEraUp
	case event.TowerEnhanced:
		return CueUpgrade
	case event.EraAdvanced:
		return CueEraUp
	case event.DockyardBuilt:
		return CueDockyard
	case event.TowerSold:
		return CueSell
	}
	return CueNone
}

// Events lists the event types that produce a cue.
var Events = []event.EventType{
	event.Fired, event.HitBlip, event.BossSpawned, event.WaveStarted,
	event.WaveCleared, event.RunEnded, event.TowerCreated, event.TowersFused,
	event.TowerUpgraded, event.TowerEnhanced, event.EraAdvanced,
	event.DockyardBuilt, event.TowerSold,
}
