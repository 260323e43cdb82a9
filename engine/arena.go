package engine

import (
	"sync"

	"github.com/lixenwraith/trick-runner/core"
)

// SceneID identifies a top-level scene
type SceneID uint8

const (
	SceneNone SceneID = iota
	SceneHome
	SceneMap
	SceneLevel
)

func (s SceneID) String() string {
	switch s {
	case SceneHome:
		return "home"
	case SceneMap:
		return "map"
	case SceneLevel:
		return "level"
	default:
		return "none"
	}
}

// Arena records which scene owns each entity so a scene can be freed wholesale on exit
type Arena struct {
	mu    sync.Mutex
	owned map[SceneID][]core.Entity
}

// NewArena creates an empty arena set
func NewArena() *Arena {
	return &Arena{owned: make(map[SceneID][]core.Entity)}
}

// Track assigns e to scene
func (a *Arena) Track(scene SceneID, e core.Entity) {
	a.mu.Lock()
	a.owned[scene] = append(a.owned[scene], e)
	a.mu.Unlock()
}

// Count returns the number of entities owned by scene
func (a *Arena) Count(scene SceneID) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.owned[scene])
}

// Release forgets and returns the entities of scene
func (a *Arena) Release(scene SceneID) []core.Entity {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := a.owned[scene]
	delete(a.owned, scene)
	return out
}

// Reset forgets every scene
func (a *Arena) Reset() {
	a.mu.Lock()
	a.owned = make(map[SceneID][]core.Entity)
	a.mu.Unlock()
}
