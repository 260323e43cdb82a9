package physics

// Layer is a collision layer bit set
type Layer uint32

const (
	LayerGround Layer = 1 << iota
	LayerPlayer
	LayerEnemy
	LayerCheckpoint

	LayerNone Layer = 0
	LayerAll  Layer = LayerGround | LayerPlayer | LayerEnemy | LayerCheckpoint
)

// Has reports whether any bit of other is set in l
func (l Layer) Has(other Layer) bool {
	return l&other != 0
}

func (l Layer) String() string {
	switch l {
	case LayerNone:
		return "none"
	case LayerGround:
		return "ground"
	case LayerPlayer:
		return "player"
	case LayerEnemy:
		return "enemy"
	case LayerCheckpoint:
		return "checkpoint"
	default:
		return "mixed"
	}
}
