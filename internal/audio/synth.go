// internal/audio/synth.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	sweep    float64
	phase    float64
	position int
	duration int
	wave     WaveType
	rate     beep.SampleRate
	noise    uint32
}

// NewOscillator streams a wave that glides linearly from freq to endFreq over
// its duration.
func NewOscillator(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	n := rate.N(duration)
	sweep := 0.0
	if n > 0 {
		sweep = (endFreq - freq) / float64(n)
	}
	return &oscillator{freq: freq, sweep: sweep, duration: n, wave: wave, rate: rate, noise: 0x9e3779b9}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			o.noise = o.noise*1664525 + 1013904223
			v = float64(o.noise)/float64(math.MaxUint32)*2 - 1
		}
		samples[i][0], samples[i][1] = v, v

		f := o.freq + o.sweep*float64(o.position)
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes a stream with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.release > 0 && e.position >= start {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// voice is one enveloped oscillator of a cue.
type voice struct {
	wave      WaveType
	from, to  float64
	delay     time.Duration
	duration  time.Duration
	attack    time.Duration
	release   time.Duration
	amplitude float64
}

var cueVoices = map[Cue][]voice{
	CueUIClick:    {{WaveSquare, 1200, 1200, 0, 30 * time.Millisecond, 2 * time.Millisecond, 20 * time.Millisecond, 0.3}},
	CueBuild:      {{WaveSine, 330, 660, 0, 180 * time.Millisecond, 10 * time.Millisecond, 80 * time.Millisecond, 0.5}},
	CueRoll:       {{WaveSquare, 520, 780, 0, 120 * time.Millisecond, 5 * time.Millisecond, 60 * time.Millisecond, 0.35}},
	CueUpgrade:    {{WaveSine, 440, 880, 0, 200 * time.Millisecond, 10 * time.Millisecond, 100 * time.Millisecond, 0.5}},
	CueFusion:     {{WaveSine, 392, 392, 0, 150 * time.Millisecond, 5 * time.Millisecond, 80 * time.Millisecond, 0.5}, {WaveSine, 587, 587, 120 * time.Millisecond, 250 * time.Millisecond, 5 * time.Millisecond, 150 * time.Millisecond, 0.5}},
	CueEraUp:      {{WaveSaw, 220, 440, 0, 400 * time.Millisecond, 40 * time.Millisecond, 200 * time.Millisecond, 0.35}},
	CueDockyard:   {{WaveSquare, 180, 140, 0, 220 * time.Millisecond, 5 * time.Millisecond, 120 * time.Millisecond, 0.35}},
	CueSell:       {{WaveSine, 988, 1318, 0, 140 * time.Millisecond, 5 * time.Millisecond, 80 * time.Millisecond, 0.4}},
	CueHit:        {{WaveNoise, 0, 0, 0, 40 * time.Millisecond, 1 * time.Millisecond, 30 * time.Millisecond, 0.15}},
	CueExplosion:  {{WaveNoise, 0, 0, 0, 260 * time.Millisecond, 2 * time.Millisecond, 220 * time.Millisecond, 0.4}, {WaveSine, 90, 40, 0, 260 * time.Millisecond, 2 * time.Millisecond, 200 * time.Millisecond, 0.5}},
	CueFireArrow:  {{WaveNoise, 0, 0, 0, 60 * time.Millisecond, 5 * time.Millisecond, 50 * time.Millisecond, 0.12}},
	CueFireGun:    {{WaveSquare, 260, 120, 0, 70 * time.Millisecond, 1 * time.Millisecond, 60 * time.Millisecond, 0.15}},
	CueFireCannon: {{WaveSine, 110, 50, 0, 180 * time.Millisecond, 2 * time.Millisecond, 150 * time.Millisecond, 0.4}},
	CueBossSpawn:  {{WaveSaw, 80, 60, 0, 900 * time.Millisecond, 100 * time.Millisecond, 400 * time.Millisecond, 0.45}},
	CueWaveStart:  {{WaveSquare, 330, 330, 0, 120 * time.Millisecond, 5 * time.Millisecond, 60 * time.Millisecond, 0.3}, {WaveSquare, 494, 494, 140 * time.Millisecond, 160 * time.Millisecond, 5 * time.Millisecond, 80 * time.Millisecond, 0.3}},
	CueWaveClear:  {{WaveSine, 523, 523, 0, 160 * time.Millisecond, 5 * time.Millisecond, 80 * time.Millisecond, 0.4}, {WaveSine, 784, 784, 150 * time.Millisecond, 260 * time.Millisecond, 5 * time.Millisecond, 160 * time.Millisecond, 0.4}},
	CueVictory:    {{WaveSine, 523, 523, 0, 200 * time.Millisecond, 5 * time.Millisecond, 100 * time.Millisecond, 0.5}, {WaveSine, 659, 659, 200 * time.Millisecond, 200 * time.Millisecond, 5 * time.Millisecond, 100 * time.Millisecond, 0.5}, {WaveSine, 784, 784, 400 * time.Millisecond, 500 * time.Millisecond, 5 * time.Millisecond, 300 * time.Millisecond, 0.5}},
	CueGameOver:   {{WaveSaw, 330, 110, 0, 1200 * time.Millisecond, 20 * time.Millisecond, 600 * time.Millisecond, 0.4}},
}

// Synthesize renders a cue as a finite stream. Unknown cues yield nil.
func Synthesize(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	voices, ok := cueVoices[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(voices))
	for _, v := range voices {
		osc := NewOscillator(v.from, v.to, v.duration, v.wave, rate)
		s := withVolume(NewEnvelope(osc, v.duration, v.attack, v.release, rate), v.amplitude)
		if v.delay > 0 {
			s = beep.Seq(beep.Silence(rate.N(v.delay)), s)
		}
		parts = append(parts, s)
	}
	return withVolume(beep.Mix(parts...), volume)
}
