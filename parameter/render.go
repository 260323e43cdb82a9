package parameter

// World to terminal cell scale, a player body spans 2x2 cells
const (
	CellWorldWidth  = 8
	CellWorldHeight = 16
)

// HUD layout
const (
	// HUDRows are reserved at the top of the screen for score and messages
	HUDRows = 2

	// HUDMessageFrames keeps a trick or squish message on screen (~2s at 16ms ticks)
	HUDMessageFrames = 120
)
