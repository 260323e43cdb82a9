package engine

import (
	"github.com/lixenwraith/trick-runner/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World destroys entities across all stores without knowing the concrete types
type AnyStore interface {
	RemoveEntity(e core.Entity)
	HasEntity(e core.Entity) bool
	CountEntities() int
	ClearAllComponents()
}

var (
	_ AnyStore = (*Store[struct{}])(nil)
)
