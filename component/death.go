package component

// DeathComponent marks an entity for removal by the death sweep at the end of the tick
type DeathComponent struct{}
