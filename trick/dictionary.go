package trick

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/zeebo/xxh3"
)

// Definition describes a single trick
type Definition struct {
	Name    string
	Points  int
	TakesMs int
}

// Takes is the commit window the player must stay airborne for
func (d Definition) Takes() time.Duration {
	return time.Duration(d.TakesMs) * time.Millisecond
}

// Entry binds a key sequence to a trick
type Entry struct {
	Keys  []Key
	Trick Definition
}

// MatchKind classifies a lookup result
type MatchKind uint8

const (
	// MatchNone: no entry equals the sequence or starts with it
	MatchNone MatchKind = iota
	// MatchPrefix: the sequence only starts one or more longer entries
	MatchPrefix
	// MatchHeld: the sequence equals an entry that is also the start of a longer entry
	MatchHeld
	// MatchExact: the sequence equals an entry and nothing longer starts with it
	MatchExact
)

func (m MatchKind) String() string {
	switch m {
	case MatchPrefix:
		return "prefix"
	case MatchHeld:
		return "held"
	case MatchExact:
		return "exact"
	default:
		return "none"
	}
}

var (
	ErrEmptySequence     = errors.New("trick sequence is empty")
	ErrDuplicateSequence = errors.New("duplicate trick sequence")
)

// Dictionary is the read-only trick list, ordered longest sequence first
type Dictionary struct {
	entries *orderedmap.OrderedMap[uint64, Entry]
}

// NewDictionary sorts entries by descending sequence length (stable for equal lengths)
func NewDictionary(entries []Entry) (*Dictionary, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Keys) > len(sorted[j].Keys)
	})

	d := &Dictionary{entries: orderedmap.NewOrderedMap[uint64, Entry]()}
	for _, e := range sorted {
		if len(e.Keys) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptySequence, e.Trick.Name)
		}
		h := hashKeys(e.Keys)
		if prev, ok := d.entries.Get(h); ok {
			return nil, fmt.Errorf("%w: %s used by %q and %q", ErrDuplicateSequence, FormatKeys(e.Keys), prev.Trick.Name, e.Trick.Name)
		}
		d.entries.Set(h, Entry{Keys: slices.Clone(e.Keys), Trick: e.Trick})
	}
	return d, nil
}

// Len returns the number of tricks
func (d *Dictionary) Len() int {
	return d.entries.Len()
}

// Entries returns all entries, longest sequence first
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, 0, d.entries.Len())
	for el := d.entries.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// Lookup matches a pressed sequence by exact length and order
// A strict prefix never yields a definition
func (d *Dictionary) Lookup(keys []Key) (Definition, MatchKind) {
	if len(keys) == 0 {
		return Definition{}, MatchNone
	}

	var (
		def   Definition
		exact bool
	)
	if e, ok := d.entries.Get(hashKeys(keys)); ok && slices.Equal(e.Keys, keys) {
		def, exact = e.Trick, true
	}

	// Longer entries come first; stop at the first entry not longer than the sequence
	continues := false
	for el := d.entries.Front(); el != nil; el = el.Next() {
		if len(el.Value.Keys) <= len(keys) {
			break
		}
		if slices.Equal(el.Value.Keys[:len(keys)], keys) {
			continues = true
			break
		}
	}

	switch {
	case exact && continues:
		return def, MatchHeld
	case exact:
		return def, MatchExact
	case continues:
		return Definition{}, MatchPrefix
	default:
		return Definition{}, MatchNone
	}
}

func hashKeys(keys []Key) uint64 {
	buf := make([]byte, len(keys))
	for i, k := range keys {
		buf[i] = byte(k)
	}
	return xxh3.Hash(buf)
}
