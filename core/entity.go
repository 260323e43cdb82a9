package core

// Entity is a unique identifier for an entity
// Zero is never allocated and doubles as "absent"
type Entity uint64

// NoEntity is the absent entity handle
const NoEntity Entity = 0
