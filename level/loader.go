package level

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trick-runner/component"
	"github.com/lixenwraith/trick-runner/config"
	"github.com/lixenwraith/trick-runner/parameter"
)

// fileObject is one [[object]] or [[solid]] table, x and y are the box centre
type fileObject struct {
	X          float32 `toml:"x"`
	Y          float32 `toml:"y"`
	Width      float32 `toml:"width"`
	Height     float32 `toml:"height"`
	Spawn      string  `toml:"spawn"`
	Checkpoint string  `toml:"checkpoint"`
}

type fileLevel struct {
	ID      string       `toml:"id"`
	Name    string       `toml:"name"`
	Solids  []fileObject `toml:"solid"`
	Objects []fileObject `toml:"object"`
}

// File is a Map decoded from a TOML level description
type File struct {
	id          string
	name        string
	spawns      []SpawnPoint
	checkpoints []Checkpoint
	solids      []Rect

	// Skipped counts objects with an unrecognized checkpoint type
	Skipped int
}

func (f *File) ID() string                { return f.id }
func (f *File) Name() string              { return f.name }
func (f *File) SpawnPoints() []SpawnPoint { return f.spawns }
func (f *File) Checkpoints() []Checkpoint { return f.checkpoints }
func (f *File) Solids() []Rect            { return f.solids }

// LoadFile reads and decodes the level file at path
func LoadFile(path string) (*File, error) {
	var raw fileLevel
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, &config.ParseError{Path: path, Reason: err.Error(), Err: err}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, &config.ParseError{Path: path, Reason: fmt.Sprintf("unknown key %s", undecoded[0])}
	}
	f, err := build(raw)
	if err != nil {
		return nil, &config.ParseError{Path: path, Reason: err.Error(), Err: err}
	}
	return f, nil
}

// Decode builds a level from TOML text
func Decode(data string) (*File, error) {
	var raw fileLevel
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, err
	}
	return build(raw)
}

func build(raw fileLevel) (*File, error) {
	if raw.ID == "" {
		return nil, fmt.Errorf("level id is empty")
	}
	f := &File{id: raw.ID, name: raw.Name}
	if f.name == "" {
		f.name = raw.ID
	}

	for i, s := range raw.Solids {
		if s.Width <= 0 || s.Height <= 0 {
			return nil, fmt.Errorf("solid %d: width and height must be > 0", i)
		}
		f.solids = append(f.solids, s.rect(0, 0))
	}

	for _, o := range raw.Objects {
		switch {
		case o.Spawn != "":
			w, h := float32(parameter.DefaultEnemyWidth), float32(parameter.DefaultEnemyHeight)
			if o.Spawn == SpawnPlayer {
				w, h = parameter.DefaultPlayerWidth, parameter.DefaultPlayerHeight
			}
			f.spawns = append(f.spawns, SpawnPoint{Tag: o.Spawn, Rect: o.rect(w, h)})
		case o.Checkpoint != "":
			kind := component.ParseCheckpointKind(o.Checkpoint)
			if kind == component.CheckpointUnknown {
				f.Skipped++
				continue
			}
			f.checkpoints = append(f.checkpoints, Checkpoint{Kind: kind, Rect: o.rect(parameter.DefaultCheckpointSize, parameter.DefaultCheckpointSize)})
		}
	}
	return f, nil
}

// rect converts to centre and half-extents, falling back to the default size
func (o fileObject) rect(defaultW, defaultH float32) Rect {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = defaultW
	}
	if h <= 0 {
		h = defaultH
	}
	return Rect{
		Center:      mgl32.Vec2{o.X, o.Y},
		HalfExtents: mgl32.Vec2{w / 2, h / 2},
	}
}
