// Package trick holds the trick dictionary: directional key sequences mapped to scored tricks
package trick

import (
	"fmt"
	"strings"
)

// Key is a directional symbol of a trick sequence
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyLeft
	KeyDown
	KeyRight
)

var keyNames = [...]string{
	KeyNone:  "none",
	KeyUp:    "up",
	KeyLeft:  "left",
	KeyDown:  "down",
	KeyRight: "right",
}

// String returns the canonical lower-case key name
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

// ParseKey accepts canonical names and their WASD letters
func ParseKey(s string) (Key, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "w":
		return KeyUp, nil
	case "left", "a":
		return KeyLeft, nil
	case "down", "s":
		return KeyDown, nil
	case "right", "d":
		return KeyRight, nil
	}
	return KeyNone, fmt.Errorf("unknown trick key %q", s)
}

// FormatKeys renders a sequence as "up,down,..."
func FormatKeys(keys []Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, ",")
}
