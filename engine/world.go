// Package engine holds the ECS world, its resources and the fixed-tick scheduler
package engine

import (
	"sync"

	"github.com/lixenwraith/trick-runner/config"
	"github.com/lixenwraith/trick-runner/core"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/physics"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources  *Resource
	Components ComponentStore
	Arena      *Arena

	allStores []AnyStore

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world reading the given constants
func NewWorld(constants *config.Constants) *World {
	if constants == nil {
		constants = config.Default()
	}
	w := &World{
		nextEntityID: 1,
		Resources:    newResource(constants),
		Arena:        NewArena(),
	}
	w.Components, w.allStores = newComponentStore()
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// CreateEntityIn reserves an entity owned by a scene arena
func (w *World) CreateEntityIn(scene SceneID) core.Entity {
	e := w.CreateEntity()
	w.Arena.Track(scene, e)
	return e
}

// DestroyEntity removes all components of an entity and its physics body
func (w *World) DestroyEntity(e core.Entity) {
	if body, ok := w.Components.Body.GetComponent(e); ok {
		w.Resources.Physics.Space.Remove(body.ID)
	}
	for _, s := range w.allStores {
		s.RemoveEntity(e)
	}
}

// ReleaseScene destroys every entity owned by the scene and returns how many were released
func (w *World) ReleaseScene(scene SceneID) int {
	entities := w.Arena.Release(scene)
	for _, e := range entities {
		w.DestroyEntity(e)
	}
	return len(entities)
}

// Clear removes all entities, components and bodies
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.mu.Unlock()

	for _, s := range w.allStores {
		s.ClearAllComponents()
	}
	w.Arena.Reset()
	w.Resources.Physics.Space.Clear()
	w.Resources.Player.Clear()
}

// AddSystem adds a system and keeps the list sorted by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Insertion sort, stable for equal priority, small N
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Lock acquires the world's update mutex
func (w *World) Lock() {
	w.updateMutex.Lock()
}

// Unlock releases the update mutex
func (w *World) Unlock() {
	w.updateMutex.Unlock()
}

// Update runs all systems sequentially
func (w *World) Update() {
	w.RunSafe(w.UpdateLocked)
}

// UpdateLocked runs all systems assuming the caller holds the update lock
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// PushEvent emits a game event tagged with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}

// PlayerBody resolves the player's physics body
func (w *World) PlayerBody() (*physics.Body, bool) {
	player := w.Resources.Player
	if !player.Present() {
		return nil, false
	}
	return w.Body(player.Entity)
}

// Body resolves the physics body of any entity
func (w *World) Body(e core.Entity) (*physics.Body, bool) {
	bc, ok := w.Components.Body.GetComponent(e)
	if !ok {
		return nil, false
	}
	return w.Resources.Physics.Space.Body(bc.ID)
}
