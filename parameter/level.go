package parameter

// Level identifiers selectable from the map scene, indexed by key 1..5
var LevelSlots = [5]string{
	"plains_1",
	"plains_2",
	"jumping",
	"long",
	"plains_5",
}

// LevelFileExt is the extension of level description files under the assets directory
const LevelFileExt = ".toml"
