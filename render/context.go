package render

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/parameter"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Time state
	GameTime    time.Duration
	FrameNumber int64

	// Screen dimensions (terminal size)
	Width  int
	Height int

	// Camera is the world point drawn at the screen centre
	Camera mgl32.Vec2

	Scene engine.SceneID
}

// NewRenderContext snapshots frame state from the world, caller holds the world lock
func NewRenderContext(world *engine.World, width, height int) RenderContext {
	res := world.Resources
	return RenderContext{
		GameTime:    res.Time.GameTime,
		FrameNumber: res.Time.FrameNumber,
		Width:       width,
		Height:      height,
		Camera:      res.Camera.Position,
		Scene:       res.Scene.Active,
	}
}

// WorldToScreen maps a world point to a cell, y up in the world and down on screen
func (c RenderContext) WorldToScreen(p mgl32.Vec2) (int, int) {
	dx := (p.X() - c.Camera.X()) / parameter.CellWorldWidth
	dy := (p.Y() - c.Camera.Y()) / parameter.CellWorldHeight
	return c.Width/2 + int(math32.Floor(dx)), c.Height/2 - int(math32.Floor(dy)) - 1
}

// WorldRectToScreen maps a centre/half-extents box to inclusive cell bounds
func (c RenderContext) WorldRectToScreen(center, half mgl32.Vec2) (x0, y0, x1, y1 int) {
	x0, y1 = c.WorldToScreen(center.Sub(half))
	x1, y0 = c.WorldToScreen(center.Add(half).Sub(mgl32.Vec2{0.001, 0.001}))
	return x0, y0, x1, y1
}
