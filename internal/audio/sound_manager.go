// internal/audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"go-naval-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays cues for simulation events through a shared mixer.
// Without Initialize it only tracks throttling, which keeps it usable in
// headless runs.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	volume      float64
	lastPlayed  map[Cue]time.Time
	now         func() time.Time
	log         zerolog.Logger
}

func NewSoundManager(log zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer:      &beep.Mixer{},
		volume:     0.6,
		lastPlayed: make(map[Cue]time.Time),
		now:        time.Now,
		log:        log,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Subscribe registers the manager for every event that has a cue.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeMany(sm, Events...)
}

func (sm *SoundManager) OnEvent(e event.Event) {
	if c := CueForEvent(e); c != CueNone {
		sm.Play(c)
	}
}

// SetMuted toggles output without touching throttling.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Play starts a cue unless the same cue played within its throttle window.
// It reports whether the cue was accepted.
func (sm *SoundManager) Play(c Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	now := sm.now()
	if last, ok := sm.lastPlayed[c]; ok && now.Sub(last) < Throttle(c) {
		return false
	}
	sm.lastPlayed[c] = now
	if !sm.initialized || sm.muted {
		return true
	}
	s := Synthesize(c, sampleRate, sm.volume)
	if s == nil {
		sm.log.Debug().Str("cue", string(c)).Msg("no synth voice for cue")
		return true
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}
