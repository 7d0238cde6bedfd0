package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/duck-hunt/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/sustain/release gain curve
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
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

// newVolume maps a linear gain to beep's log2 volume; zero is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateShotSound generates a noise burst with a low thump
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constant.ShotSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constant.ShotSoundDuration, constant.ShotSoundAttack, constant.ShotSoundRelease, rate)

	thump := NewOscillator(70, constant.ShotSoundDuration, WaveSine, rate)
	thumpShaped := NewEnvelope(thump, constant.ShotSoundDuration, constant.ShotSoundAttack, constant.ShotSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(thumpShaped, 0.4),
	)
	return newVolume(mixed, effectVolume(cfg, SoundShot))
}

// CreateDryFireSound generates a short high click
func CreateDryFireSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(1800, constant.DryFireSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constant.DryFireSoundDuration, constant.DryFireSoundAttack, constant.DryFireSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundDryFire))
}

// CreateHitSound generates a rising two-note chime
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E5
	n1 := NewOscillator(659.25, constant.HitSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constant.HitSoundNote1Duration, constant.HitSoundAttack, constant.HitSoundNote1Release, rate)

	// A5
	n2 := NewOscillator(880.0, constant.HitSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constant.HitSoundNote2Duration, constant.HitSoundAttack, constant.HitSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), effectVolume(cfg, SoundHit))
}

// CreateQuackSound generates a nasal square blip
func CreateQuackSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(330, constant.QuackSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constant.QuackSoundDuration, constant.QuackSoundAttack, constant.QuackSoundRelease, rate)

	// Second harmonic gives the nasal edge
	over := NewOscillator(660, constant.QuackSoundDuration, WaveSaw, rate)
	overShaped := NewEnvelope(over, constant.QuackSoundDuration, constant.QuackSoundAttack, constant.QuackSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(shaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, effectVolume(cfg, SoundQuack))
}

// CreateGameOverSound generates a descending three-note phrase
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{392.0, 329.63, 261.63} // G4 E4 C4
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, constant.GameOverNoteDuration, WaveSaw, rate)
		parts = append(parts, NewEnvelope(osc, constant.GameOverNoteDuration, constant.GameOverSoundAttack, constant.GameOverSoundRelease, rate))
	}

	return newVolume(beep.Seq(parts...), effectVolume(cfg, SoundGameOver))
}

// GetSoundEffect returns the streamer for the given type, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundShot:
		return CreateShotSound(cfg)
	case SoundDryFire:
		return CreateDryFireSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundQuack:
		return CreateQuackSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
