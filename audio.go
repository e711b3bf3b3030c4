package starfield

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	warpSoundRate     = beep.SampleRate(44100)
	warpSoundDuration = 900 * time.Millisecond
	warpSoundAttack   = 120 * time.Millisecond
	warpSoundRelease  = 500 * time.Millisecond
)

// WarpSound synthesizes the warp-engage whoosh: filtered noise over a low
// sine rumble, shaped by an attack/release envelope. No audio assets are
// involved. A failed speaker init degrades to silence rather than erroring.
type WarpSound struct {
	ready  bool
	volume float64
}

// NewWarpSound initializes the speaker and returns a ready-to-play sound.
// volume is in [0, 1]; 0 is silent.
func NewWarpSound(volume float64) *WarpSound {
	w := &WarpSound{volume: clamp01(volume)}
	if err := speaker.Init(warpSoundRate, warpSoundRate.N(100*time.Millisecond)); err != nil {
		return w
	}
	w.ready = true
	return w
}

// Play fires the whoosh. Safe to call at any time; overlapping plays mix.
func (w *WarpSound) Play() {
	if !w.ready || w.volume <= 0 {
		return
	}
	noise := newEnvelope(newNoise(warpSoundDuration), warpSoundDuration, warpSoundAttack, warpSoundRelease)
	rumble := newEnvelope(newSine(55, warpSoundDuration), warpSoundDuration, warpSoundAttack, warpSoundRelease)
	mixed := beep.Mix(
		withVolume(noise, 0.5),
		withVolume(rumble, 0.5),
	)
	speaker.Play(withVolume(mixed, w.volume))
}

// oscillator generates a raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64 // 0 selects white noise
	phase    float64
	duration int
	position int
}

func newSine(freq float64, d time.Duration) beep.Streamer {
	return &oscillator{freq: freq, duration: warpSoundRate.N(d)}
}

func newNoise(d time.Duration) beep.Streamer {
	return &oscillator{duration: warpSoundRate.N(d)}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}
		var val float64
		if o.freq == 0 {
			val = rand.Float64()*2 - 1
		} else {
			val = math.Sin(2 * math.Pi * o.phase)
			o.phase += o.freq / float64(warpSoundRate)
			o.phase -= math.Floor(o.phase)
		}
		samples[i][0] = val
		samples[i][1] = val
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  warpSoundRate.N(attack),
		releaseSamples: warpSoundRate.N(release),
		totalSamples:   warpSoundRate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume wraps a streamer in a volume effect. math.Log2(0) is -Inf, so
// zero volume switches to silent instead.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
