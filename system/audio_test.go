package system

import (
	"testing"

	"github.com/lixenwraith/trick-runner/core"
	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/event"
)

type fakePlayer struct {
	running bool
	played  []core.SoundType
}

func (p *fakePlayer) Play(st core.SoundType) bool {
	p.played = append(p.played, st)
	return true
}

func (p *fakePlayer) ToggleMute() bool { return false }
func (p *fakePlayer) IsMuted() bool    { return false }
func (p *fakePlayer) IsRunning() bool  { return p.running }

func soundEvent(st core.SoundType) event.GameEvent {
	return event.GameEvent{Type: event.EventSoundRequest, Payload: &event.SoundRequestPayload{SoundType: st}}
}

func TestAudio_PlaysRequests(t *testing.T) {
	w := engine.NewTestWorld()
	player := &fakePlayer{running: true}
	w.Resources.Audio.Player = player
	s := NewAudioSystem(w).(engine.EventHandler)

	s.HandleEvent(soundEvent(core.SoundTrickLand))
	s.HandleEvent(soundEvent(core.SoundSquish))

	if len(player.played) != 2 || player.played[0] != core.SoundTrickLand || player.played[1] != core.SoundSquish {
		t.Errorf("played = %v", player.played)
	}
}

func TestAudio_SilentWhenStopped(t *testing.T) {
	w := engine.NewTestWorld()
	player := &fakePlayer{}
	w.Resources.Audio.Player = player
	s := NewAudioSystem(w).(engine.EventHandler)

	s.HandleEvent(soundEvent(core.SoundCheckpoint))
	if len(player.played) != 0 {
		t.Errorf("stopped player asked to play %v", player.played)
	}

	w.Resources.Audio.Player = nil
	s.HandleEvent(soundEvent(core.SoundCheckpoint))
}

func TestAudio_RequestsRoutedThroughScheduler(t *testing.T) {
	w := engine.NewTestWorld()
	player := &fakePlayer{running: true}
	w.Resources.Audio.Player = player
	w.AddSystem(NewAudioSystem(w))
	cs, _ := engine.NewTestScheduler(w)
	cs.RegisterSystemHandlers()

	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundTrickFail})
	cs.Tick(tick)

	if len(player.played) != 1 || player.played[0] != core.SoundTrickFail {
		t.Errorf("played = %v", player.played)
	}
}
