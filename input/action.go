// Package input turns terminal key events into per-tick held/pressed action snapshots
package input

import "fmt"

// Action is a semantic input independent of the physical key
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionUp
	ActionDown
	ActionConfirm
	ActionBack
	ActionLevel1
	ActionLevel2
	ActionLevel3
	ActionLevel4
	ActionLevel5
	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "none",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionJump:    "jump",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionConfirm: "confirm",
	ActionBack:    "back",
	ActionLevel1:  "level1",
	ActionLevel2:  "level2",
	ActionLevel3:  "level3",
	ActionLevel4:  "level4",
	ActionLevel5:  "level5",
	ActionQuit:    "quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// LevelActions are the map screen slot selectors in slot order
var LevelActions = [...]Action{ActionLevel1, ActionLevel2, ActionLevel3, ActionLevel4, ActionLevel5}

// LevelSlot returns the zero-based slot of a level selector
func (a Action) LevelSlot() (int, bool) {
	if a >= ActionLevel1 && a <= ActionLevel5 {
		return int(a - ActionLevel1), true
	}
	return 0, false
}

// Source answers per-tick input queries
type Source interface {
	// Held reports whether the action is down this tick
	Held(Action) bool
	// Pressed reports whether the action went down since the previous tick
	Pressed(Action) bool
}
