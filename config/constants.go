// Package config loads the read-only tunables consumed by the gameplay systems
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Constants holds every tunable force, speed, threshold and timing window
// Loaded once before the scheduler starts; systems never mutate it
type Constants struct {
	PostLevelSecs     uint64  `toml:"post_level_secs"`
	MapName           string  `toml:"map_name"`
	DashForce         float32 `toml:"dash_force"`
	TrickTime         float32 `toml:"trick_time"` // milliseconds
	SquishBounceForce float32 `toml:"squish_bounce_force"`
	CharacterSheet    string  `toml:"character_sheet"`
	PlayerSpeed       float32 `toml:"player_speed"`
	MaxPlayerSpeed    float32 `toml:"max_player_speed"`
	JumpForce         float32 `toml:"jump_force"`
	InitialJumpTime   float32 `toml:"initial_jump_time"` // seconds
	Gravity           float32 `toml:"gravity"`
	CurvePow          float32 `toml:"curve_pow"`
	GroundedDecay     float32 `toml:"grounded_decay"`
	GroundedThreshold float32 `toml:"grounded_threshold"`
	WallThreshold     float32 `toml:"wall_threshold"`
	PathToPlayerData  string  `toml:"path_to_player_data"`

	// AirControl lets move keys accelerate the player while airborne
	AirControl bool `toml:"air_control"`
}

// Default returns the constants shipped with the game
func Default() *Constants {
	return &Constants{
		PostLevelSecs:     3,
		MapName:           "plains_1",
		DashForce:         9000,
		TrickTime:         400,
		SquishBounceForce: 350,
		CharacterSheet:    "characters",
		PlayerSpeed:       900,
		MaxPlayerSpeed:    300,
		JumpForce:         5200,
		InitialJumpTime:   0.35,
		Gravity:           980,
		CurvePow:          2,
		GroundedDecay:     0.5,
		GroundedThreshold: 2,
		WallThreshold:     2,
		PathToPlayerData:  "./player",
	}
}

// ParseError reports a malformed configuration file
type ParseError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Path, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load decodes constants from a TOML file
// Unknown keys and out-of-range values are rejected
func Load(path string) (*Constants, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, &ParseError{Path: path, Reason: err.Error(), Err: err}
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, &ParseError{Path: path, Reason: "unknown keys: " + strings.Join(keys, ", ")}
	}

	if err := c.Validate(); err != nil {
		return nil, &ParseError{Path: path, Reason: err.Error(), Err: err}
	}

	return c, nil
}

// bound names one constant for range checks
type bound struct {
	name  string
	value float32
}

// Validate checks value ranges the systems rely on, reporting in declaration order
func (c *Constants) Validate() error {
	var errs []error
	positive := []bound{
		{"player_speed", c.PlayerSpeed},
		{"max_player_speed", c.MaxPlayerSpeed},
		{"jump_force", c.JumpForce},
		{"initial_jump_time", c.InitialJumpTime},
		{"curve_pow", c.CurvePow},
		{"trick_time", c.TrickTime},
	}
	for _, b := range positive {
		if b.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", b.name, b.value))
		}
	}

	nonNegative := []bound{
		{"dash_force", c.DashForce},
		{"squish_bounce_force", c.SquishBounceForce},
		{"gravity", c.Gravity},
		{"grounded_threshold", c.GroundedThreshold},
		{"wall_threshold", c.WallThreshold},
	}
	for _, b := range nonNegative {
		if b.value < 0 {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %v", b.name, b.value))
		}
	}

	return errors.Join(errs...)
}

// JumpDuration is the jump charge window
func (c *Constants) JumpDuration() time.Duration {
	return time.Duration(float64(c.InitialJumpTime) * float64(time.Second))
}

// TrickWindow is the staleness window between trick key presses
func (c *Constants) TrickWindow() time.Duration {
	return time.Duration(float64(c.TrickTime) * float64(time.Millisecond))
}

// PostLevelDuration is how long the result screen stays up before returning home
func (c *Constants) PostLevelDuration() time.Duration {
	return time.Duration(c.PostLevelSecs) * time.Second
}
