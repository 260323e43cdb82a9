package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundSquish     SoundType = iota // Enemy stomped
	SoundTrickStart                  // Sequence recognized, commit window open
	SoundTrickLand                   // Trick scored
	SoundTrickFail                   // Trick canceled on landing
	SoundCheckpoint                  // Level complete
	SoundTypeCount
)

// String returns the sound name used in logs
func (s SoundType) String() string {
	switch s {
	case SoundSquish:
		return "squish"
	case SoundTrickStart:
		return "trick_start"
	case SoundTrickLand:
		return "trick_land"
	case SoundTrickFail:
		return "trick_fail"
	case SoundCheckpoint:
		return "checkpoint"
	default:
		return "unknown"
	}
}
