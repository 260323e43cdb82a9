package game

import (
	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/engine/fsm"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/input"
	"github.com/lixenwraith/trick-runner/parameter"
	"github.com/lixenwraith/trick-runner/system"
)

// Scene graph states; PrePlay, Playing and Over are children of Level
const (
	StateHome fsm.StateID = iota + 2
	StateMap
	StateLevel
	StatePrePlay
	StatePlaying
	StateOver
)

// buildScenes registers the scene graph on m
func buildScenes(m *fsm.Machine[*engine.World]) {
	m.AddState(fsm.StateRoot, "root", fsm.StateNone)

	m.AddState(StateHome, "home", fsm.StateRoot).
		Enter(enterScene(engine.SceneHome)).
		Tick(pressToEvent(input.ActionConfirm, event.EventSceneConfirm))

	m.AddState(StateMap, "map", fsm.StateRoot).
		Enter(enterScene(engine.SceneMap)).
		Tick(pressToEvent(input.ActionBack, event.EventSceneBack)).
		Tick(selectLevel)

	m.AddState(StateLevel, "level", fsm.StateRoot).
		Enter(enterScene(engine.SceneLevel)).
		Tick(pressToEvent(input.ActionBack, event.EventSceneBack)).
		Exit(resetSession)

	m.AddState(StatePrePlay, "preplay", StateLevel)
	m.AddState(StatePlaying, "playing", StateLevel)
	m.AddState(StateOver, "over", StateLevel)

	m.AddTransition(StateHome, fsm.Transition[*engine.World]{TargetID: StateMap, Event: event.EventSceneConfirm})
	m.AddTransition(StateMap, fsm.Transition[*engine.World]{TargetID: StatePrePlay, Event: event.EventLevelSelect})
	m.AddTransition(StateMap, fsm.Transition[*engine.World]{TargetID: StateHome, Event: event.EventSceneBack})

	m.AddTransition(StatePrePlay, fsm.Transition[*engine.World]{TargetID: StatePlaying, Event: event.EventLevelLoaded})
	m.AddTransition(StatePrePlay, fsm.Transition[*engine.World]{TargetID: StateMap, Event: event.EventLevelLoadFailed})
	m.AddTransition(StatePlaying, fsm.Transition[*engine.World]{TargetID: StateOver, Event: event.EventLevelComplete})
	m.AddTransition(StateOver, fsm.Transition[*engine.World]{TargetID: StateHome, Event: event.EventTick, Guard: system.PostLevelDone})

	// Back leaves any level state
	m.AddTransition(StateLevel, fsm.Transition[*engine.World]{TargetID: StateHome, Event: event.EventSceneBack})
}

func enterScene(id engine.SceneID) fsm.ActionFunc[*engine.World] {
	return func(w *engine.World, _ event.GameEvent) {
		w.Resources.Scene.Active = id
		w.Resources.Log.WithField("scene", id.String()).Debug("scene entered")
	}
}

func pressToEvent(a input.Action, et event.EventType) fsm.ActionFunc[*engine.World] {
	return func(w *engine.World, _ event.GameEvent) {
		if w.Resources.Input.Snapshot.Pressed(a) {
			w.PushEvent(et, nil)
		}
	}
}

// selectLevel maps the first pressed slot key to its level id
func selectLevel(w *engine.World, _ event.GameEvent) {
	in := w.Resources.Input.Snapshot
	for _, a := range input.LevelActions {
		if !in.Pressed(a) {
			continue
		}
		slot, _ := a.LevelSlot()
		w.PushEvent(event.EventLevelSelect, &event.LevelSelectPayload{LevelID: parameter.LevelSlots[slot]})
		return
	}
}

// resetSession asks every system to drop level state when the level scene is left
func resetSession(w *engine.World, _ event.GameEvent) {
	w.PushEvent(event.EventGameReset, nil)
}
