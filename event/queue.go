package event

import (
	"sync/atomic"

	"github.com/lixenwraith/trick-runner/parameter"
)

// EventQueue is a lock-free MPSC ring buffer for game events
// Push is safe from any goroutine; Consume belongs to the scheduler
// When full the oldest events are overwritten
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool // slot fully written
	head      atomic.Uint64                         // read index
	tail      atomic.Uint64                         // write index
	dropped   atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims a slot with CAS then publishes it
func (eq *EventQueue) Push(ev GameEvent) {
	for {
		tail := eq.tail.Load()
		next := tail + 1
		if !eq.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & parameter.EventBufferMask
		eq.events[idx] = ev
		eq.published[idx].Store(true)

		head := eq.head.Load()
		if next-head > parameter.EventQueueSize {
			if eq.head.CompareAndSwap(head, next-parameter.EventQueueSize) {
				eq.dropped.Add(1)
			}
		}
		return
	}
}

// Consume returns pending events in FIFO order and advances head
func (eq *EventQueue) Consume() []GameEvent {
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if tail == head {
			return nil
		}

		available := tail - head
		if available > parameter.EventQueueSize {
			available = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (head + i) & parameter.EventBufferMask
			if !eq.published[idx].Load() {
				break // writer still filling the slot
			}
			out = append(out, eq.events[idx])
			eq.published[idx].Store(false)
		}

		if eq.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Drain discards every pending event
func (eq *EventQueue) Drain() int {
	return len(eq.Consume())
}

// Len returns an approximate pending count
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	if n := tail - head; n < parameter.EventQueueSize {
		return int(n)
	}
	return parameter.EventQueueSize
}

// Dropped returns how many events were overwritten before being consumed
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
