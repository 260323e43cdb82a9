package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is reserved for automatic FSM transitions
	EventTick EventType = iota

	// === Engine Event ===

	// EventGameReset clears session state of every system
	// Trigger: Level scene exit | Consumer: Systems | Payload: nil
	EventGameReset

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback | Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// === Scene Event ===

	// EventSceneConfirm leaves the home screen
	// Trigger: Confirm input on Home | Consumer: FSM | Payload: nil
	EventSceneConfirm

	// EventSceneBack returns to the home screen
	// Trigger: Back input on Map or Level | Consumer: FSM | Payload: nil
	EventSceneBack

	// EventLevelSelect picks a level on the map screen
	// Trigger: Level1..Level5 input on Map | Consumer: FSM, LevelSystem | Payload: *LevelSelectPayload
	EventLevelSelect

	// EventLevelLoaded signals the level was spawned into the arena
	// Trigger: LevelSystem | Consumer: FSM, CheckpointSystem | Payload: *LevelSelectPayload
	EventLevelLoaded

	// EventLevelLoadFailed signals a level could not be loaded
	// Trigger: LevelSystem | Consumer: FSM | Payload: *LevelLoadFailedPayload
	EventLevelLoadFailed

	// === Game Event ===

	// EventLevelComplete signals the player reached the end checkpoint
	// Trigger: CheckpointSystem | Consumer: FSM, LevelSystem | Payload: *LevelCompletePayload
	EventLevelComplete

	// EventEnemySquished signals an enemy was landed on
	// Trigger: CombatSystem | Consumer: HUD | Payload: *EnemySquishedPayload
	EventEnemySquished

	// EventTrickRecognized signals a sequence matched and its commit window started
	// Trigger: TrickSystem | Consumer: HUD | Payload: *TrickPayload
	EventTrickRecognized

	// EventTrickLanded signals a trick scored
	// Trigger: TrickSystem | Consumer: HUD | Payload: *TrickPayload
	EventTrickLanded

	// EventTrickCanceled signals a pending trick was dropped without score
	// Trigger: TrickSystem | Consumer: HUD | Payload: *TrickPayload
	EventTrickCanceled

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventTick:            "Tick",
	EventGameReset:       "EventGameReset",
	EventSoundRequest:    "EventSoundRequest",
	EventSceneConfirm:    "EventSceneConfirm",
	EventSceneBack:       "EventSceneBack",
	EventLevelSelect:     "EventLevelSelect",
	EventLevelLoaded:     "EventLevelLoaded",
	EventLevelLoadFailed: "EventLevelLoadFailed",
	EventLevelComplete:   "EventLevelComplete",
	EventEnemySquished:   "EventEnemySquished",
	EventTrickRecognized: "EventTrickRecognized",
	EventTrickLanded:     "EventTrickLanded",
	EventTrickCanceled:   "EventTrickCanceled",
}

func (t EventType) String() string {
	if t >= 0 && t < eventTypeCount {
		return eventNames[t]
	}
	return "EventUnknown"
}

// GameEvent is a single routed event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
