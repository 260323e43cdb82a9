package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, enter)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings: WASD or arrows to move and trick, space to jump
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyCtrlC:      ActionQuit,
			tcell.KeyEscape:     ActionQuit,
			tcell.KeyUp:         ActionUp,
			tcell.KeyDown:       ActionDown,
			tcell.KeyLeft:       ActionLeft,
			tcell.KeyRight:      ActionRight,
			tcell.KeyEnter:      ActionConfirm,
			tcell.KeyBackspace:  ActionBack,
			tcell.KeyBackspace2: ActionBack,
		},
		Runes: map[rune]Action{
			'w': ActionUp,
			'a': ActionLeft,
			's': ActionDown,
			'd': ActionRight,
			'W': ActionUp,
			'A': ActionLeft,
			'S': ActionDown,
			'D': ActionRight,
			' ': ActionJump,
			'j': ActionJump,
			'1': ActionLevel1,
			'2': ActionLevel2,
			'3': ActionLevel3,
			'4': ActionLevel4,
			'5': ActionLevel5,
			'b': ActionBack,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event to an action
func (t *KeyTable) Lookup(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return t.Runes[r]
	}
	return t.SpecialKeys[key]
}
