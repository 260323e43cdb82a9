package trick

import (
	"fmt"
	"os"

	"github.com/hjson/hjson-go/v4"
	"github.com/lixenwraith/trick-runner/config"
)

type fileEntry struct {
	Keys    []string `json:"keys"`
	Name    string   `json:"name"`
	Points  int      `json:"points"`
	TakesMs int      `json:"takes_ms"`
}

type fileList struct {
	Tricks []fileEntry `json:"tricks"`
}

// LoadFile reads a trick list in HJSON (plain JSON is accepted)
func LoadFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &config.ParseError{Path: path, Reason: "read failed", Err: err}
	}
	d, err := Parse(data)
	if err != nil {
		return nil, &config.ParseError{Path: path, Reason: err.Error(), Err: err}
	}
	return d, nil
}

// Parse decodes a trick list document
func Parse(data []byte) (*Dictionary, error) {
	var list fileList
	if err := hjson.Unmarshal(data, &list); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(list.Tricks))
	for i, ft := range list.Tricks {
		if ft.Name == "" {
			return nil, fmt.Errorf("trick #%d: missing name", i)
		}
		if ft.Points < 0 {
			return nil, fmt.Errorf("trick %q: negative points", ft.Name)
		}
		if ft.TakesMs < 0 {
			return nil, fmt.Errorf("trick %q: negative takes_ms", ft.Name)
		}
		keys := make([]Key, len(ft.Keys))
		for j, s := range ft.Keys {
			k, err := ParseKey(s)
			if err != nil {
				return nil, fmt.Errorf("trick %q: %w", ft.Name, err)
			}
			keys[j] = k
		}
		entries = append(entries, Entry{
			Keys:  keys,
			Trick: Definition{Name: ft.Name, Points: ft.Points, TakesMs: ft.TakesMs},
		})
	}

	return NewDictionary(entries)
}
