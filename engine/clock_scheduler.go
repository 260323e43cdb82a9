package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/trick-runner/core"
	"github.com/lixenwraith/trick-runner/engine/fsm"
	"github.com/lixenwraith/trick-runner/input"
	"github.com/lixenwraith/trick-runner/parameter"
	"github.com/lixenwraith/trick-runner/status"
)

// ClockScheduler runs game logic on a fixed tick
// Each tick, under the world update lock: latch input, dispatch events to FSM and handlers, update FSM, run systems
type ClockScheduler struct {
	world   *World
	timeRes *TimeResource
	eqRes   *EventQueueResource

	clock        TimeProvider
	tickInterval time.Duration
	input        *input.Buffer

	tickCount atomic.Uint64

	// Control
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Signals the renderer after each tick, never blocks
	updateDone chan struct{}

	eventRouter *EventRouter
	fsm         *fsm.Machine[*World]

	// Cached metric pointers
	statTicks   *atomic.Int64
	statDropped *atomic.Int64
	statTickMs  *status.AtomicFloat
}

// NewClockScheduler creates a scheduler ticking every tickInterval
func NewClockScheduler(world *World, clock TimeProvider, tickInterval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		world:        world,
		timeRes:      world.Resources.Time,
		eqRes:        world.Resources.Event,
		clock:        clock,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		updateDone:   make(chan struct{}, 1),
		eventRouter:  NewEventRouter(),
		fsm:          fsm.NewMachine[*World](),
		statTicks:    world.Resources.Status.Ints.Get("engine.ticks"),
		statDropped:  world.Resources.Status.Ints.Get("engine.events_dropped"),
		statTickMs:   world.Resources.Status.Floats.Get("engine.tick_ms"),
	}
}

// SetInput attaches the buffer latched at the start of every tick
func (cs *ClockScheduler) SetInput(buf *input.Buffer) {
	cs.input = buf
}

// FSM returns the scene machine for graph construction, must be built before InitFSM
func (cs *ClockScheduler) FSM() *fsm.Machine[*World] {
	return cs.fsm
}

// RegisterEventHandler adds an event handler to the router, must be called before Start
func (cs *ClockScheduler) RegisterEventHandler(handler EventHandler) {
	cs.eventRouter.Register(handler)
}

// RegisterSystemHandlers registers every world system that handles events
func (cs *ClockScheduler) RegisterSystemHandlers() {
	for _, s := range cs.world.Systems() {
		if h, ok := s.(EventHandler); ok {
			cs.eventRouter.Register(h)
		}
	}
}

// InitFSM compiles the scene graph and enters the initial state
func (cs *ClockScheduler) InitFSM(initial fsm.StateID) error {
	if err := cs.fsm.CompilePaths(); err != nil {
		return fmt.Errorf("failed to compile FSM: %w", err)
	}

	var err error
	cs.world.RunSafe(func() {
		if err = cs.fsm.Init(cs.world, initial); err != nil {
			return
		}
		cs.dispatchAndProcessEvents()
	})
	if err != nil {
		return fmt.Errorf("failed to init FSM: %w", err)
	}
	return nil
}

// Frames signals once per completed tick
func (cs *ClockScheduler) Frames() <-chan struct{} {
	return cs.updateDone
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the current tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// schedulerLoop ticks on deadlines with drift correction
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	nextDeadline := cs.clock.Now().Add(cs.tickInterval)
	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		now := cs.clock.Now()
		cs.Tick(cs.tickInterval)

		nextDeadline = nextDeadline.Add(cs.tickInterval)
		// Skip missed ticks instead of bursting after a stall
		if now.Sub(nextDeadline) > parameter.MaxTickDelta {
			nextDeadline = now.Add(cs.tickInterval)
		}

		sleep := nextDeadline.Sub(cs.clock.Now())
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// Tick executes one clock cycle of dt, capped at MaxTickDelta
func (cs *ClockScheduler) Tick(dt time.Duration) {
	if dt > parameter.MaxTickDelta {
		dt = parameter.MaxTickDelta
	}

	start := time.Now()
	cs.world.RunSafe(func() {
		now := cs.clock.Now()
		if cs.input != nil {
			cs.world.Resources.Input.Snapshot = cs.input.Latch(now)
		}
		cs.timeRes.Update(now, dt)

		// Events (input -> FSM -> systems)
		cs.dispatchAndProcessEvents()

		cs.fsm.Update(cs.world, dt)

		cs.world.UpdateLocked()
	})

	ticks := cs.tickCount.Add(1)
	cs.statTickMs.Store(float32(time.Since(start).Seconds() * 1000))
	cs.statTicks.Store(int64(ticks))
	cs.statDropped.Store(int64(cs.eqRes.Queue.Dropped()))

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}

// dispatchAndProcessEvents routes pending events through the FSM then the handlers
// Events emitted while dispatching are processed in the same pass
func (cs *ClockScheduler) dispatchAndProcessEvents() {
	for range parameter.MaxDispatchRounds {
		pending := cs.eqRes.Queue.Consume()
		if len(pending) == 0 {
			return
		}
		for _, ev := range pending {
			cs.fsm.HandleEvent(cs.world, ev)
			cs.eventRouter.Dispatch(ev)
		}
	}
	cs.world.Resources.Log.WithField("rounds", parameter.MaxDispatchRounds).Warn("event dispatch did not settle")
}

// DispatchEventsImmediately processes all pending events synchronously
func (cs *ClockScheduler) DispatchEventsImmediately() {
	cs.world.RunSafe(cs.dispatchAndProcessEvents)
}

// IsInState reports whether the scene machine has id on its active chain
func (cs *ClockScheduler) IsInState(id fsm.StateID) bool {
	var active bool
	cs.world.RunSafe(func() { active = cs.fsm.IsActive(id) })
	return active
}
