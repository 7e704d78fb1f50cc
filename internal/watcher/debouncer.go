package watcher

import (
	"sync"
	"time"
)

// ReloadDebouncer waits for a quiet period before triggering a reload. A
// scanner rewriting its output produces a burst of create, write and rename
// events for one file; only the final state matters to a reload, so pending
// events are coalesced per path into the newest one, with Count recording how
// many raw events it stands for.
type ReloadDebouncer struct {
	delay time.Duration
	emit  func([]Event)

	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]int // path -> index in events
	events  []Event
}

// NewReloadDebouncer creates a debouncer that calls emit with the coalesced
// events once delay has passed without a new event.
func NewReloadDebouncer(delay time.Duration, emit func([]Event)) *ReloadDebouncer {
	return &ReloadDebouncer{
		delay:   delay,
		emit:    emit,
		pending: make(map[string]int),
	}
}

// Add records an event and restarts the quiet period.
func (d *ReloadDebouncer) Add(event Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if i, ok := d.pending[event.Path]; ok {
		event.Count = d.events[i].Count + 1
		d.events[i] = event
	} else {
		event.Count = 1
		d.pending[event.Path] = len(d.events)
		d.events = append(d.events, event)
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *ReloadDebouncer) take() []Event {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	events := d.events
	d.events = nil
	d.pending = make(map[string]int)
	return events
}

func (d *ReloadDebouncer) fire() {
	if events := d.take(); len(events) > 0 && d.emit != nil {
		d.emit(events)
	}
}

// Cancel drops pending events without emitting them.
func (d *ReloadDebouncer) Cancel() {
	d.take()
}

// Flush emits pending events immediately.
func (d *ReloadDebouncer) Flush() {
	d.fire()
}

// Pending returns the number of coalesced events waiting to be emitted.
func (d *ReloadDebouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.events)
}
