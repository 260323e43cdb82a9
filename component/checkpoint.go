package component

// CheckpointKind is the type tag of a checkpoint object
type CheckpointKind uint8

const (
	CheckpointUnknown CheckpointKind = iota
	CheckpointEnd
)

// ParseCheckpointKind maps a level file tag, only "end" is recognized
func ParseCheckpointKind(s string) CheckpointKind {
	if s == "end" {
		return CheckpointEnd
	}
	return CheckpointUnknown
}

// CheckpointComponent tags a checkpoint sensor
type CheckpointComponent struct {
	Kind CheckpointKind
}
