package renderers

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/parameter"
	"github.com/lixenwraith/trick-runner/render"
)

// HUDRenderer draws the level status line and short-lived gameplay messages
// It is also an event handler; dispatch and rendering both hold the world lock
type HUDRenderer struct {
	world *engine.World
	debug bool // bottom row lists the status registry

	message      string
	messageUntil int64 // frame number the message expires at
}

// NewHUDRenderer creates a HUD renderer, register it with the scheduler for messages
func NewHUDRenderer(world *engine.World, debug bool) *HUDRenderer {
	return &HUDRenderer{world: world, debug: debug}
}

func (h *HUDRenderer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventEnemySquished,
		event.EventTrickRecognized,
		event.EventTrickLanded,
		event.EventTrickCanceled,
	}
}

func (h *HUDRenderer) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		h.message = ""
		h.messageUntil = 0
	case event.EventEnemySquished:
		h.show(ev.Frame, "squish!")
	case event.EventTrickRecognized:
		if p, ok := ev.Payload.(*event.TrickPayload); ok {
			h.show(ev.Frame, p.Name+"...")
		}
	case event.EventTrickLanded:
		if p, ok := ev.Payload.(*event.TrickPayload); ok {
			h.show(ev.Frame, fmt.Sprintf("%s +%d", p.Name, p.Points))
		}
	case event.EventTrickCanceled:
		if p, ok := ev.Payload.(*event.TrickPayload); ok {
			h.show(ev.Frame, p.Name+" bailed")
		}
	}
}

func (h *HUDRenderer) show(frame int64, msg string) {
	h.message = msg
	h.messageUntil = frame + parameter.HUDMessageFrames
}

// Message returns the active message at frame, empty when expired
func (h *HUDRenderer) Message(frame int64) string {
	if frame >= h.messageUntil {
		return ""
	}
	return h.message
}

func (h *HUDRenderer) IsVisible() bool {
	return h.world.Resources.Scene.Active == engine.SceneLevel
}

func (h *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	lvl := h.world.Resources.Level

	score := 0
	if player := h.world.Resources.Player; player.Present() {
		if sc, ok := h.world.Components.Score.GetComponent(player.Entity); ok {
			score = sc.Points
		}
	}

	line := fmt.Sprintf(" %s  %s  score %d", lvl.ID, formatStopwatch(lvl.Stopwatch), score)
	buf.Fill(0, 0, ctx.Width-1, 0, ' ', render.StyleDim)
	buf.Text(0, 0, line, render.StyleDim)

	if msg := h.Message(ctx.FrameNumber); msg != "" {
		buf.CenteredText(1, msg, render.StyleMessage)
	}

	if h.debug {
		buf.Text(0, ctx.Height-1, h.DebugLine(), render.StyleDim)
	}
}

// DebugLine formats the status registry as key=value pairs
func (h *HUDRenderer) DebugLine() string {
	metrics := h.world.Resources.Status.Snapshot()
	parts := make([]string, 0, len(metrics))
	for _, m := range metrics {
		parts = append(parts, m.Key+"="+m.Value)
	}
	return strings.Join(parts, " ")
}

// formatStopwatch renders a duration as seconds with centisecond precision
func formatStopwatch(d time.Duration) string {
	return fmt.Sprintf("%d.%02ds", d/time.Second, (d%time.Second)/(10*time.Millisecond))
}
