package renderers

import (
	"fmt"
	"time"

	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/parameter"
	"github.com/lixenwraith/trick-runner/render"
	"github.com/lixenwraith/trick-runner/stats"
)

// RecordSource loads the persisted best results, nil shows no records
type RecordSource func() *stats.UserStats

// SceneRenderer draws the home and map screens and the level overlays
// It keeps the last load failure since level state is reset when the map is re-entered
type SceneRenderer struct {
	world   *engine.World
	records RecordSource

	best      *stats.UserStats
	lastScene engine.SceneID

	loadFailure string
}

// NewSceneRenderer creates the scene screen renderer
func NewSceneRenderer(world *engine.World, records RecordSource) *SceneRenderer {
	return &SceneRenderer{
		world:   world,
		records: records,
		best:    &stats.UserStats{},
	}
}

func (r *SceneRenderer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventLevelSelect,
		event.EventLevelLoadFailed,
	}
}

func (r *SceneRenderer) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventLevelSelect:
		r.loadFailure = ""
	case event.EventLevelLoadFailed:
		if p, ok := ev.Payload.(*event.LevelLoadFailedPayload); ok {
			r.loadFailure = fmt.Sprintf("cannot load %s: %v", p.LevelID, p.Err)
		}
	}
}

// LoadFailure returns the message shown on the map screen
func (r *SceneRenderer) LoadFailure() string {
	return r.loadFailure
}

func (r *SceneRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Scene != r.lastScene {
		r.lastScene = ctx.Scene
		if ctx.Scene == engine.SceneMap && r.records != nil {
			if u := r.records(); u != nil {
				r.best = u
			}
		}
	}

	switch ctx.Scene {
	case engine.SceneHome:
		r.renderHome(ctx, buf)
	case engine.SceneMap:
		r.renderMap(ctx, buf)
	case engine.SceneLevel:
		r.renderLevelOverlay(ctx, buf)
	}
}

func (r *SceneRenderer) renderHome(ctx render.RenderContext, buf *render.RenderBuffer) {
	mid := ctx.Height / 2
	buf.CenteredText(mid-2, "T R I C K   R U N N E R", render.StylePlayer)
	buf.CenteredText(mid, "press enter", render.StyleDefault)
	buf.CenteredText(mid+1, "q to quit", render.StyleDim)
}

func (r *SceneRenderer) renderMap(ctx render.RenderContext, buf *render.RenderBuffer) {
	top := max(ctx.Height/2-len(parameter.LevelSlots)-1, 0)
	buf.CenteredText(top, "select a level", render.StyleDefault)

	for i, id := range parameter.LevelSlots {
		line := fmt.Sprintf("%d  %-10s", i+1, id)
		if timeMs, score, ok := r.best.Best(id); ok {
			line += fmt.Sprintf("  %s  %5d pts", formatStopwatch(time.Duration(timeMs)*time.Millisecond), score)
		} else {
			line += fmt.Sprintf("  %-7s  %9s", "--", "")
		}
		buf.CenteredText(top+2+i, line, render.StyleDefault)
	}

	row := top + 3 + len(parameter.LevelSlots)
	buf.CenteredText(row, "b to go back", render.StyleDim)
	if r.loadFailure != "" {
		buf.CenteredText(row+2, r.loadFailure, render.StyleError)
	}
}

func (r *SceneRenderer) renderLevelOverlay(ctx render.RenderContext, buf *render.RenderBuffer) {
	lvl := r.world.Resources.Level
	mid := ctx.Height / 2

	switch lvl.State {
	case engine.LevelPrePlay:
		buf.CenteredText(mid, "loading "+lvl.ID, render.StyleDim)
	case engine.LevelOver:
		if !lvl.HasResult {
			return
		}
		res := lvl.Result
		buf.CenteredText(mid-2, "level complete", render.StyleMessage)
		buf.CenteredText(mid, fmt.Sprintf("time %s  score %d", formatStopwatch(time.Duration(res.TimeMs)*time.Millisecond), res.Score), render.StyleDefault)
		left := (lvl.PostLevel.Remaining() + time.Second - 1) / time.Second
		buf.CenteredText(mid+2, fmt.Sprintf("back to title in %d", left), render.StyleDim)
	}
}
