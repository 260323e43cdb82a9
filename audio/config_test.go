package audio

import (
	"testing"

	"github.com/lixenwraith/trick-runner/core"
	"github.com/lixenwraith/trick-runner/parameter"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled || cfg.MasterVolume != 0.5 || cfg.SampleRate != parameter.AudioSampleRate {
		t.Errorf("defaults = %+v", cfg)
	}
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		if v, ok := cfg.EffectVolumes[st]; !ok || v <= 0 {
			t.Errorf("%s volume = %v, %v", st, v, ok)
		}
	}
	if got := cfg.Volume(core.SoundCheckpoint); got != 0.5 {
		t.Errorf("checkpoint gain = %v, want 0.5", got)
	}
}

func TestLoadAudioConfig(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "0")
	t.Setenv(EnvMasterVolume, "150")
	t.Setenv(EnvSFXVolumes, `{"squish": 0.25, "trick_land": 2, "bogus": 1}`)
	t.Setenv(EnvSampleRate, "22050")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("enabled not overridden")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("master volume = %v, want clamped 1", cfg.MasterVolume)
	}
	if v := cfg.EffectVolumes[core.SoundSquish]; v != 0.25 {
		t.Errorf("squish = %v", v)
	}
	if v := cfg.EffectVolumes[core.SoundTrickLand]; v != 1 {
		t.Errorf("trick_land = %v, want clamped 1", v)
	}
	if v := cfg.EffectVolumes[core.SoundCheckpoint]; v != 1.0 {
		t.Errorf("checkpoint = %v, want default", v)
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("sample rate = %d", cfg.SampleRate)
	}
}

func TestLoadAudioConfigInvalidIgnored(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "maybe")
	t.Setenv(EnvMasterVolume, "loud")
	t.Setenv(EnvSFXVolumes, "{not json")
	t.Setenv(EnvSampleRate, "-5")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("invalid values changed config: %+v", cfg)
	}
	for st, v := range def.EffectVolumes {
		if cfg.EffectVolumes[st] != v {
			t.Errorf("%s = %v, want %v", st, cfg.EffectVolumes[st], v)
		}
	}
}
