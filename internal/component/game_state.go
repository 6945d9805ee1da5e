// internal/component/game_state.go
package component

// Scene is the top-level screen the session is on.
type Scene int

const (
	SceneLobby Scene = iota
	SceneGame
)

// Outcome is how a run ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "none"
	}
}

// Phase is the derived state of the round state machine.
type Phase int

const (
	PhasePrep Phase = iota
	PhaseSpawning
	PhaseBossWait
	PhaseBossMustDie
	PhaseBossGrace
	PhaseCleared
	PhaseVictory
	PhaseDefeat
)

func (p Phase) String() string {
	return [...]string{"prep", "spawning", "boss-wait", "boss-must-die", "boss-grace", "cleared", "victory", "defeat"}[p]
}

// Wave holds the round state machine.
type Wave struct {
	Round  int
	Timer  float64
	Active bool

	SpawnAccumulator float64
	SpawnTarget      int
	Spawned          int

	IsBossWave     bool
	BossSpawned    bool
	BossSpawnTimer float64
	BossMustDie    bool
	BossGraceTimer float64
	// BossCountdown counts rounds until the next boss wave.
	BossCountdown   int
	LastWaveBossKey string
}

// BossSummon is one row of the summon unlock table.
type BossSummon struct {
	Key          string
	Name         string
	Unlocked     bool
	Level        int
	CooldownBase float64
	Cooldown     float64
	HP           float64
	Reward       int // base reward plus level gold, for display
	Essence      int
}

// Ready reports whether the boss can be summoned now.
func (b *BossSummon) Ready() bool {
	return b.Unlocked && b.Cooldown <= 0
}

// Session holds the scalar state of a run.
type Session struct {
	Scene      Scene
	Running    bool
	Paused     bool
	Speed      float64
	Difficulty string
	HPMul      float64

	Gold      int
	Essence   int
	EraIndex  int
	Dockyards int

	InterestEnabled bool

	Outcome       Outcome
	OutcomeReason string
}
