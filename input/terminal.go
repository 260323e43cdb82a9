package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/trick-runner/core"
	"github.com/lixenwraith/trick-runner/parameter"
)

// EventSource is the part of tcell.Screen the reader polls
type EventSource interface {
	PollEvent() tcell.Event
}

// TerminalReader feeds tcell key events into a Buffer
type TerminalReader struct {
	src   EventSource
	buf   *Buffer
	table *KeyTable
	log   logrus.FieldLogger
	now   func() time.Time

	onResize func()

	quit     chan struct{}
	quitOnce sync.Once
}

// NewTerminalReader creates a reader with the default key table
func NewTerminalReader(src EventSource, buf *Buffer, log logrus.FieldLogger) *TerminalReader {
	return &TerminalReader{
		src:   src,
		buf:   buf,
		table: DefaultKeyTable(),
		log:   log,
		now:   time.Now,
		quit:  make(chan struct{}),
	}
}

// OnResize registers a callback for terminal resize events
func (r *TerminalReader) OnResize(fn func()) {
	r.onResize = fn
}

// Quit is closed once the quit action is seen or the source ends
func (r *TerminalReader) Quit() <-chan struct{} {
	return r.quit
}

// Start polls the source on its own goroutine until the source returns nil
func (r *TerminalReader) Start() {
	events := make(chan tcell.Event, parameter.InputEventBuffer)
	core.Go(func() {
		defer close(events)
		for {
			ev := r.src.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})
	core.Go(func() {
		for ev := range events {
			if !r.Handle(ev) {
				r.stop()
			}
		}
		r.stop()
	})
}

// Handle processes one event, returns false when the player asked to quit
func (r *TerminalReader) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(ev.Key(), ev.Rune(), r.now())
	case *tcell.EventResize:
		if r.onResize != nil {
			r.onResize()
		}
	}
	return true
}

func (r *TerminalReader) handleKey(key tcell.Key, ch rune, now time.Time) bool {
	action := r.table.Lookup(key, ch)
	switch action {
	case ActionNone:
		return true
	case ActionQuit:
		r.log.Debug("quit requested")
		return false
	}
	r.buf.Press(action, now)
	return true
}

func (r *TerminalReader) stop() {
	r.quitOnce.Do(func() { close(r.quit) })
}
