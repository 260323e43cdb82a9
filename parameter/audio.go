package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer, trades latency for underruns
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between two plays of the same cue
	MinSoundGap = 50 * time.Millisecond
)

// Squish Sound
const (
	SquishSoundDuration = 120 * time.Millisecond
	SquishSoundAttack   = 2 * time.Millisecond
	SquishSoundRelease  = 90 * time.Millisecond
	SquishStartFreq     = 320.0 // Hz
	SquishEndFreq       = 60.0  // Hz
)

// Trick Start Sound
const (
	TrickStartSoundDuration = 90 * time.Millisecond
	TrickStartSoundAttack   = 5 * time.Millisecond
	TrickStartSoundRelease  = 40 * time.Millisecond
	TrickStartFreq          = 440.0 // Hz
	TrickStartEndFreq       = 880.0 // Hz
)

// Trick Land Sound
const (
	TrickLandNote1Duration = 80 * time.Millisecond
	TrickLandNote2Duration = 280 * time.Millisecond
	TrickLandAttack        = 5 * time.Millisecond
	TrickLandNote1Release  = 40 * time.Millisecond
	TrickLandNote2Release  = 200 * time.Millisecond
)

// Trick Fail Sound
const (
	TrickFailSoundDuration = 160 * time.Millisecond
	TrickFailSoundAttack   = 5 * time.Millisecond
	TrickFailSoundRelease  = 60 * time.Millisecond
)

// Checkpoint Sound
const (
	CheckpointSoundDuration           = 600 * time.Millisecond
	CheckpointSoundAttack             = 5 * time.Millisecond
	CheckpointSoundFundamentalRelease = 550 * time.Millisecond
	CheckpointSoundOvertoneRelease    = 200 * time.Millisecond
)
