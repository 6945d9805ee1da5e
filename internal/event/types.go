// internal/event/types.go
package event

import (
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/types"
)

const (
	HitBlip       EventType = "HitBlip"
	DamageFloater EventType = "DamageFloater"
	Fired         EventType = "Fired"
	EnemyKilled   EventType = "EnemyKilled"
	BossSpawned   EventType = "BossSpawned"
	BossAbility   EventType = "BossAbility"
	WaveStarted   EventType = "WaveStarted"
	WaveCleared   EventType = "WaveCleared"
	Status        EventType = "Status"
	RunEnded      EventType = "RunEnded"
	TowerCreated  EventType = "TowerCreated"
	TowersFused   EventType = "TowersFused"
	TowerUpgraded EventType = "TowerUpgraded"
	TowerEnhanced EventType = "TowerEnhanced"
	TowerSold     EventType = "TowerSold"
	DockyardBuilt EventType = "DockyardBuilt"
	EraAdvanced   EventType = "EraAdvanced"
)

// All lists every event type, for listeners that want everything.
var All = []EventType{
	HitBlip, DamageFloater, Fired, EnemyKilled, BossSpawned, BossAbility,
	WaveStarted, WaveCleared, Status, RunEnded, TowerCreated, TowersFused,
	TowerUpgraded, TowerEnhanced, TowerSold, DockyardBuilt, EraAdvanced,
}

type HitBlipData struct {
	X, Y      float64
	Weapon    defs.WeaponType
	Explosive bool
}

type DamageFloaterData struct {
	X, Y   float64
	Amount int
	Weapon defs.WeaponType
}

type FiredData struct {
	TowerID types.EntityID
	Weapon  defs.WeaponType
}

type EnemyKilledData struct {
	EnemyID types.EntityID
	Boss    bool
	Reward  int
	X, Y    float64
}

type BossSpawnedData struct {
	EnemyID  types.EntityID
	Key      string
	Name     string
	WaveBoss bool
	Level    int
}

type BossAbilityData struct {
	EnemyID types.EntityID
	Spawned int
}

type WaveStartedData struct {
	Round    int
	BossWave bool
	Target   int
}

type WaveClearedData struct {
	Round    int
	Interest int
}

// StatusData is a banner push. Persistent banners stay until replaced.
type StatusData struct {
	Message    string
	Duration   float64
	Persistent bool
}

type RunEndedData struct {
	Victory bool
	Reason  string
	Round   int
}

type TowerData struct {
	TowerID types.EntityID
	UnitID  string
	Rarity  defs.Rarity
}

type TowersFusedData struct {
	SurvivorID types.EntityID
	Consumed   []types.EntityID
	Tier       int
}

type TowerEnhancedData struct {
	Level    int
	Affected int
}

type TowerSoldData struct {
	TowerIDs []types.EntityID
	Gold     int
}

type DockyardBuiltData struct {
	Dockyards int
	Capacity  int
}

type EraAdvancedData struct {
	Era defs.Era
}
