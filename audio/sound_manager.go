package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/trick-runner/core"
	"github.com/lixenwraith/trick-runner/parameter"
)

// SoundManager plays one-shot gameplay cues through a single speaker mixer
// Safe to use without Initialize; every play then reports false
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	// lastPlayed rate-limits each cue to parameter.MinSoundGap
	lastPlayed [core.SoundTypeCount]time.Time
	now        func() time.Time
}

// NewSoundManager creates a sound manager, nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker, a disabled config is a silent no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; an empty mixer keeps the device quiet
	sm.initialized = false
}

// Play queues a cue on the mixer, false when dropped
func (sm *SoundManager) Play(st core.SoundType) bool {
	if st < 0 || st >= core.SoundTypeCount || sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	now := sm.now()
	if now.Sub(sm.lastPlayed[st]) < parameter.MinSoundGap {
		return false
	}

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return false
	}
	sm.lastPlayed[st] = now

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// ToggleMute flips mute and returns the new state
// Muting clears cues already on the mixer
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			if !old {
				sm.silence()
			}
			return !old
		}
	}
}

func (sm *SoundManager) silence() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
}

func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsRunning reports whether the speaker is open
func (sm *SoundManager) IsRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
