package event

import (
	"github.com/lixenwraith/trick-runner/core"
)

// SoundRequestPayload contains the sound to play
type SoundRequestPayload struct {
	SoundType core.SoundType
}

// LevelSelectPayload carries the chosen level id
type LevelSelectPayload struct {
	LevelID string
}

// LevelLoadFailedPayload carries the load error
type LevelLoadFailedPayload struct {
	LevelID string
	Err     error
}

// LevelCompletePayload identifies the completed level and the checkpoint that triggered it
type LevelCompletePayload struct {
	LevelID    string
	Checkpoint core.Entity
}

// EnemySquishedPayload identifies the squished enemy
type EnemySquishedPayload struct {
	Enemy core.Entity
}

// TrickPayload describes a trick lifecycle step
type TrickPayload struct {
	Name   string
	Points int
	Score  int // player score after the step
}
