// internal/system/state.go
package system

import (
	"errors"
	"fmt"
	"math"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/entity"
	"go-naval-defense/internal/event"
)

// Skip rejections, one per failing precondition.
var (
	ErrSkipWrongScene   = fmt.Errorf("%w: not in game", ErrSkipNotAllowed)
	ErrSkipNoWave       = fmt.Errorf("%w: no active wave", ErrSkipNotAllowed)
	ErrSkipPrep         = fmt.Errorf("%w: preparation round", ErrSkipNotAllowed)
	ErrSkipEnemiesAlive = fmt.Errorf("%w: enemies remain", ErrSkipNotAllowed)
	ErrSkipBossPending  = fmt.Errorf("%w: boss not defeated", ErrSkipNotAllowed)
	ErrSkipSpawning     = fmt.Errorf("%w: wave still spawning", ErrSkipNotAllowed)
)

// StateSystem runs the round state machine: wave timers, boss grace, wave
// transitions, interest, victory and the defeat conditions.
type StateSystem struct {
	ecs   *entity.ECS
	env   *Env
	waves *WaveSystem
}

func NewStateSystem(ecs *entity.ECS, env *Env, waves *WaveSystem) *StateSystem {
	return &StateSystem{ecs: ecs, env: env, waves: waves}
}

// Update advances the wave timer and fires the transition it reaches.
func (s *StateSystem) Update(deltaTime float64) {
	w := s.ecs.Wave
	w.Timer = math.Max(0, w.Timer-deltaTime)
	if w.Timer > 0 {
		return
	}
	switch {
	case w.IsBossWave && w.BossMustDie:
		if w.BossGraceTimer == 0 {
			s.env.stickyStatus("Kill the boss!")
		}
		w.BossGraceTimer += deltaTime
		if w.BossGraceTimer >= s.env.Config.Wave.BossGrace {
			s.Defeat("boss not killed")
		}
	case w.Active:
		s.EndWave()
	default:
		w.BossGraceTimer = 0
	}
}

// StartWave sets up the current round.
func (s *StateSystem) StartWave() {
	w := s.ecs.Wave
	cfg := s.env.Config.Wave
	prep := w.Round == 0

	w.Active = true
	w.SpawnAccumulator = 0
	w.Spawned = 0
	w.BossSpawned = false
	w.BossSpawnTimer = 0
	w.BossMustDie = false
	w.BossGraceTimer = 0
	if prep {
		w.Timer = cfg.PrepDuration
		w.SpawnTarget = 0
		w.IsBossWave = false
	} else {
		w.Timer = cfg.WaveDuration
		w.SpawnTarget = SpawnTarget(cfg, w.Round)
		w.IsBossWave = w.Round%cfg.BossInterval == 0
	}

	if w.Round == 1 && len(s.ecs.Summons) == 0 {
		s.waves.UnlockSummon(s.waves.BossKeyForRound(1), 1)
	}
	if w.Round > 1 && (w.Round-1)%cfg.BossInterval == 0 {
		key := w.LastWaveBossKey
		if key == "" {
			key = s.waves.BossKeyForRound(w.Round - 1)
		}
		s.waves.UnlockSummon(key, w.Round-1)
	}

	s.env.emit(event.WaveStarted, event.WaveStartedData{Round: w.Round, BossWave: w.IsBossWave, Target: w.SpawnTarget})
	s.env.Log.Info().Int("round", w.Round).Bool("boss_wave", w.IsBossWave).Int("target", w.SpawnTarget).Msg("wave started")
	switch {
	case prep:
		s.env.statusFor("Get ready! Roll some ships.", cfg.PrepDuration)
	case w.IsBossWave:
		s.env.status(fmt.Sprintf("Round %d: boss wave", w.Round))
	default:
		s.env.status(fmt.Sprintf("Round %d", w.Round))
	}
}

// EndWave pays interest and moves to the next round, or ends the run in
// victory after the final round.
func (s *StateSystem) EndWave() {
	w := s.ecs.Wave
	cfg := s.env.Config.Wave
	interest := s.PayInterest()

	w.Active = false
	w.BossMustDie = false
	w.BossGraceTimer = 0
	w.BossCountdown--
	if w.BossCountdown <= 0 {
		w.BossCountdown = cfg.BossInterval
	}

	next := w.Round + 1
	if next > cfg.MaxWaves {
		s.Victory()
		return
	}
	s.env.emit(event.WaveCleared, event.WaveClearedData{Round: w.Round, Interest: interest})
	s.env.Log.Info().Int("round", w.Round).Int("interest", interest).Int("gold", s.ecs.Session.Gold).Msg("wave cleared")
	w.Round = next
	s.StartWave()
}

// Interest is the gold the current balance earns at a wave clear.
func (s *StateSystem) Interest() int {
	sess := s.ecs.Session
	cfg := s.env.Config.Economy
	if !sess.InterestEnabled || sess.Gold < cfg.InterestThreshold {
		return 0
	}
	v := int(math.Floor(float64(sess.Gold) * cfg.InterestRate))
	v = max(v, cfg.InterestMinimum)
	if cfg.InterestCap > 0 {
		v = min(v, cfg.InterestCap)
	}
	return v
}

// PayInterest credits Interest and returns it.
func (s *StateSystem) PayInterest() int {
	v := s.Interest()
	s.ecs.Session.Gold += v
	return v
}

// CanSkip checks the round-skip preconditions.
func (s *StateSystem) CanSkip() error {
	w := s.ecs.Wave
	switch {
	case s.ecs.Session.Scene != component.SceneGame || !s.ecs.Session.Running:
		return ErrSkipWrongScene
	case !w.Active:
		return ErrSkipNoWave
	case w.Round <= 0:
		return ErrSkipPrep
	case len(s.ecs.Enemies) > 0:
		return ErrSkipEnemiesAlive
	case w.IsBossWave && (!w.BossSpawned || w.BossMustDie):
		return ErrSkipBossPending
	case !w.IsBossWave && w.Spawned < w.SpawnTarget:
		return ErrSkipSpawning
	}
	return nil
}

// Skip ends the current wave on the next tick.
func (s *StateSystem) Skip() error {
	if err := s.CanSkip(); err != nil {
		s.env.status(skipMessage(err))
		return err
	}
	s.ecs.Wave.Timer = 0
	s.env.status(fmt.Sprintf("Skipping round %d", s.ecs.Wave.Round))
	return nil
}

func skipMessage(err error) string {
	switch {
	case errors.Is(err, ErrSkipEnemiesAlive):
		return "Enemies remain"
	case errors.Is(err, ErrSkipBossPending):
		return "Defeat the boss first"
	case errors.Is(err, ErrSkipSpawning):
		return "Wave is still spawning"
	default:
		return "Cannot skip now"
	}
}

// CheckSummonTimeout ends the run when a summoned boss outlives its timeout.
func (s *StateSystem) CheckSummonTimeout() bool {
	limit := s.env.Config.Wave.SummonTimeout
	for _, e := range s.ecs.Enemies {
		if e.Boss == nil || e.Boss.WaveBoss || !e.Alive() {
			continue
		}
		if s.ecs.GameTime-e.Boss.SpawnAt >= limit {
			s.Defeat("summoned boss survived")
			return true
		}
	}
	return false
}

// CheckSaturation ends the run when too many enemies are alive.
func (s *StateSystem) CheckSaturation() bool {
	if len(s.ecs.Enemies) >= s.env.Config.Wave.DefeatThreshold {
		s.Defeat("enemy saturation")
		return true
	}
	return false
}

// Defeat stops the run.
func (s *StateSystem) Defeat(reason string) {
	sess := s.ecs.Session
	if !sess.Running {
		return
	}
	sess.Running = false
	sess.Outcome = component.OutcomeDefeat
	sess.OutcomeReason = reason
	s.ecs.Wave.Active = false
	s.ecs.Commands = nil
	s.env.Log.Warn().Str("reason", reason).Int("round", s.ecs.Wave.Round).Msg("defeat")
	s.env.emit(event.RunEnded, event.RunEndedData{Victory: false, Reason: reason, Round: s.ecs.Wave.Round})
	s.env.stickyStatus(fmt.Sprintf("Defeat: %s (round %d)", reason, s.ecs.Wave.Round))
}

// Victory stops the run after the final round and clears the battlefield.
func (s *StateSystem) Victory() {
	sess := s.ecs.Session
	if !sess.Running {
		return
	}
	sess.Running = false
	sess.Outcome = component.OutcomeVictory
	sess.OutcomeReason = "all waves cleared"
	s.ecs.ClearCombat()
	s.env.Log.Info().Int("round", s.ecs.Wave.Round).Int("gold", sess.Gold).Msg("victory")
	s.env.emit(event.RunEnded, event.RunEndedData{Victory: true, Reason: sess.OutcomeReason, Round: s.ecs.Wave.Round})
	s.env.stickyStatus(fmt.Sprintf("Victory! %d rounds cleared", s.ecs.Wave.Round))
}

// Phase derives the state machine phase from the wave and session.
func Phase(ecs *entity.ECS) component.Phase {
	w := ecs.Wave
	switch {
	case ecs.Session.Outcome == component.OutcomeVictory:
		return component.PhaseVictory
	case ecs.Session.Outcome == component.OutcomeDefeat:
		return component.PhaseDefeat
	case w.Round == 0:
		return component.PhasePrep
	case !w.Active:
		return component.PhaseCleared
	case w.IsBossWave && w.BossMustDie && w.Timer <= 0:
		return component.PhaseBossGrace
	case w.IsBossWave && w.BossMustDie:
		return component.PhaseBossMustDie
	case w.IsBossWave:
		return component.PhaseBossWait
	default:
		return component.PhaseSpawning
	}
}
