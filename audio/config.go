package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/trick-runner/core"
	"github.com/lixenwraith/trick-runner/parameter"
)

// Environment keys read by LoadAudioConfig
const (
	EnvAudioEnabled = "TRICK_RUNNER_AUDIO_ENABLED"
	EnvMasterVolume = "TRICK_RUNNER_MASTER_VOLUME"
	EnvSFXVolumes   = "TRICK_RUNNER_SFX_VOLUMES"
	EnvSampleRate   = "TRICK_RUNNER_SAMPLE_RATE"
)

// AudioConfig holds output settings and per-cue volumes in [0, 1]
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[core.SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the shipped mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundSquish:     0.8,
			core.SoundTrickStart: 0.5,
			core.SoundTrickLand:  0.7,
			core.SoundTrickFail:  0.6,
			core.SoundCheckpoint: 1.0,
		},
		SampleRate: parameter.AudioSampleRate,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
// Malformed values are ignored and leave the default in place
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// JSON object keyed by sound name, e.g. {"squish": 0.4}
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// Volume returns the effective gain of a cue
func (c *AudioConfig) Volume(st core.SoundType) float64 {
	return c.EffectVolumes[st] * c.MasterVolume
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
