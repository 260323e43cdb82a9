package engine

import "errors"

// ErrMissingEntity is returned when a required singleton entity (player, probe) is absent
// Expected while a scene is being set up or torn down
var ErrMissingEntity = errors.New("missing entity")
