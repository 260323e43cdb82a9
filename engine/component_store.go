package engine

import (
	"github.com/lixenwraith/trick-runner/component"
)

// ComponentStore holds the typed stores of the world
type ComponentStore struct {
	// Physics linkage
	Body  *Store[component.BodyComponent]
	Probe *Store[component.ProbeComponent]

	// Actors and level geometry
	Player     *Store[component.PlayerComponent]
	Enemy      *Store[component.EnemyComponent]
	Solid      *Store[component.SolidComponent]
	Checkpoint *Store[component.CheckpointComponent]

	// Player state
	Trick *Store[component.TrickComponent]
	Score *Store[component.ScoreComponent]

	// Lifecycle
	Death *Store[component.DeathComponent]
}

func newComponentStore() (ComponentStore, []AnyStore) {
	cs := ComponentStore{
		Body:       NewStore[component.BodyComponent](),
		Probe:      NewStore[component.ProbeComponent](),
		Player:     NewStore[component.PlayerComponent](),
		Enemy:      NewStore[component.EnemyComponent](),
		Solid:      NewStore[component.SolidComponent](),
		Checkpoint: NewStore[component.CheckpointComponent](),
		Trick:      NewStore[component.TrickComponent](),
		Score:      NewStore[component.ScoreComponent](),
		Death:      NewStore[component.DeathComponent](),
	}
	all := []AnyStore{
		cs.Body,
		cs.Probe,
		cs.Player,
		cs.Enemy,
		cs.Solid,
		cs.Checkpoint,
		cs.Trick,
		cs.Score,
		cs.Death,
	}
	return cs, all
}
