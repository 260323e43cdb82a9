package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/trick-runner/core"
	"github.com/lixenwraith/trick-runner/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally gliding linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose pitch glides from startFreq to endFreq over duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		endFreq:  endFreq,
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

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

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
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so 0 volume is silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateSquishSound generates a falling saw thud for a stomped enemy
func CreateSquishSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(parameter.SquishStartFreq, parameter.SquishEndFreq, parameter.SquishSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.SquishSoundDuration, parameter.SquishSoundAttack, parameter.SquishSoundRelease, rate)

	return newVolume(shaped, cfg.Volume(core.SoundSquish))
}

// CreateTrickStartSound generates a short rising blip when a sequence is recognized
func CreateTrickStartSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(parameter.TrickStartFreq, parameter.TrickStartEndFreq, parameter.TrickStartSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.TrickStartSoundDuration, parameter.TrickStartSoundAttack, parameter.TrickStartSoundRelease, rate)

	return newVolume(shaped, cfg.Volume(core.SoundTrickStart))
}

// CreateTrickLandSound generates a two-note chime for a scored trick
func CreateTrickLandSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5
	n1 := NewOscillator(987.77, parameter.TrickLandNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.TrickLandNote1Duration, parameter.TrickLandAttack, parameter.TrickLandNote1Release, rate)

	// E6
	n2 := NewOscillator(1318.51, parameter.TrickLandNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.TrickLandNote2Duration, parameter.TrickLandAttack, parameter.TrickLandNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.Volume(core.SoundTrickLand))
}

// CreateTrickFailSound generates a low buzz for a trick canceled by landing
func CreateTrickFailSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(100.0, parameter.TrickFailSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.TrickFailSoundDuration, parameter.TrickFailSoundAttack, parameter.TrickFailSoundRelease, rate)

	return newVolume(shaped, cfg.Volume(core.SoundTrickFail))
}

// CreateCheckpointSound generates a bell for the end checkpoint
func CreateCheckpointSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (A5)
	fund := NewOscillator(880.0, parameter.CheckpointSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.CheckpointSoundDuration, parameter.CheckpointSoundAttack, parameter.CheckpointSoundFundamentalRelease, rate)

	// Octave up
	over := NewOscillator(1760.0, parameter.CheckpointSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.CheckpointSoundDuration, parameter.CheckpointSoundAttack, parameter.CheckpointSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cfg.Volume(core.SoundCheckpoint))
}

// GetSoundEffect returns the streamer for a cue, nil for unknown types
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundSquish:
		return CreateSquishSound(cfg)
	case core.SoundTrickStart:
		return CreateTrickStartSound(cfg)
	case core.SoundTrickLand:
		return CreateTrickLandSound(cfg)
	case core.SoundTrickFail:
		return CreateTrickFailSound(cfg)
	case core.SoundCheckpoint:
		return CreateCheckpointSound(cfg)
	default:
		return nil
	}
}
