package audio

import (
	"testing"
	"time"

	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
)

func TestCueForEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   event.Event
		want Cue
	}{
		{"cannon fire", event.Event{Type: event.Fired, Data: event.FiredData{Weapon: defs.WeaponCannon}}, CueFireCannon},
		{"bow fire", event.Event{Type: event.Fired, Data: event.FiredData{Weapon: defs.WeaponBow}}, CueFireArrow},
		{"rifle fire", event.Event{Type: event.Fired, Data: event.FiredData{Weapon: defs.WeaponRifle}}, CueFireGun},
		{"plain hit", event.Event{Type: event.HitBlip, Data: event.HitBlipData{}}, CueHit},
		{"explosive hit", event.Event{Type: event.HitBlip, Data: event.HitBlipData{Explosive: true}}, CueExplosion},
		{"prep round", event.Event{Type: event.WaveStarted, Data: event.WaveStartedData{Round: 0}}, CueNone},
		{"wave start", event.Event{Type: event.WaveStarted, Data: event.WaveStartedData{Round: 3}}, CueWaveStart},
		{"victory", event.Event{Type: event.RunEnded, Data: event.RunEndedData{Victory: true}}, CueVictory},
		{"defeat", event.Event{Type: event.RunEnded, Data: event.RunEndedData{}}, CueGameOver},
		{"fusion", event.Event{Type: event.TowersFused}, CueFusion},
		{"sell", event.Event{Type: event.TowerSold}, CueSell},
		{"status is silent", event.Event{Type: event.Status}, CueNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CueForEvent(tt.ev); got != tt.want {
				t.Errorf("CueForEvent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlayThrottlesPerCue(t *testing.T) {
	sm := NewSoundManager(zerolog.Nop())
	now := time.Unix(0, 0)
	sm.now = func() time.Time { return now }

	if !sm.Play(CueHit) {
		t.Fatal("first hit should play")
	}
	if sm.Play(CueHit) {
		t.Error("second hit inside the window should be dropped")
	}
	if !sm.Play(CueSell) {
		t.Error("a different cue should not be throttled")
	}
	now = now.Add(Throttle(CueHit))
	if !sm.Play(CueHit) {
		t.Error("hit after the window should play")
	}
}

func TestSynthesizeEveryCue(t *testing.T) {
	rate := beep.SampleRate(8000)
	for c := range cueVoices {
		s := Synthesize(c, rate, 1)
		if s == nil {
			t.Fatalf("%s: nil stream", c)
		}
		buf := make([][2]float64, 512)
		total := 0
		for i := 0; i < 100; i++ {
			n, ok := s.Stream(buf)
			total += n
			if !ok {
				break
			}
		}
		if total == 0 {
			t.Errorf("%s: produced no samples", c)
		}
	}
	if Synthesize("missing", rate, 1) != nil {
		t.Error("unknown cue should synthesize nothing")
	}
}
