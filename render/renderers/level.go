// Package renderers holds the concrete SystemRenderer implementations
package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/trick-runner/core"
	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/render"
)

// Glyphs
const (
	glyphSolid      = '█'
	glyphCheckpoint = '▒'
	glyphEnemy      = 'M'
	glyphPlayer     = '@'
)

// LevelRenderer draws level geometry and checkpoints
type LevelRenderer struct {
	world *engine.World
}

// NewLevelRenderer creates a level geometry renderer
func NewLevelRenderer(world *engine.World) *LevelRenderer {
	return &LevelRenderer{world: world}
}

// IsVisible limits drawing to the level scene
func (r *LevelRenderer) IsVisible() bool {
	return r.world.Resources.Scene.Active == engine.SceneLevel
}

func (r *LevelRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	cs := r.world.Components
	for _, e := range cs.Solid.GetAllEntities() {
		drawBody(r.world, ctx, buf, e, glyphSolid, render.StyleSolid)
	}
	for _, e := range cs.Checkpoint.GetAllEntities() {
		drawBody(r.world, ctx, buf, e, glyphCheckpoint, render.StyleCheckpoint)
	}
}

// ActorRenderer draws enemies and the player above the level
type ActorRenderer struct {
	world *engine.World
}

// NewActorRenderer creates an actor renderer
func NewActorRenderer(world *engine.World) *ActorRenderer {
	return &ActorRenderer{world: world}
}

func (r *ActorRenderer) IsVisible() bool {
	return r.world.Resources.Scene.Active == engine.SceneLevel
}

func (r *ActorRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, e := range r.world.Components.Enemy.GetAllEntities() {
		drawBody(r.world, ctx, buf, e, glyphEnemy, render.StyleEnemy)
	}
	if player := r.world.Resources.Player; player.Present() {
		drawBody(r.world, ctx, buf, player.Entity, glyphPlayer, render.StylePlayer)
	}
}

// drawBody fills the cells covered by the entity's body, skipping entities without one
func drawBody(w *engine.World, ctx render.RenderContext, buf *render.RenderBuffer, e core.Entity, glyph rune, style tcell.Style) {
	body, ok := w.Body(e)
	if !ok {
		return
	}
	x0, y0, x1, y1 := ctx.WorldRectToScreen(body.Position, body.HalfExtents)
	buf.Fill(x0, y0, x1, y1, glyph, style)
}
