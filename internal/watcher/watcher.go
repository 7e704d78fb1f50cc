// Package watcher rebuilds the graph session whenever the scanner output
// changes on disk. Each rebuild produces a fresh snapshot; the previous one
// is dropped, never patched.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"depscope/internal/session"
	"depscope/internal/slogutil"
)

// EventType represents the type of file system event
type EventType int

const (
	EventCreate EventType = iota
	EventModify
	EventDelete
	EventRename
)

// String returns a string representation of the event type
func (e EventType) String() string {
	switch e {
	case EventCreate:
		return "create"
	case EventModify:
		return "modify"
	case EventDelete:
		return "delete"
	case EventRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Event is a change to the watched file. After debouncing, Type and
// Timestamp are those of the newest raw event and Count is how many raw
// events were merged into it.
type Event struct {
	Type      EventType
	Path      string
	Timestamp time.Time
	Count     int
}

// LoadFunc builds a new session from the scanner output.
type LoadFunc func() (*session.Session, error)

// ReloadHandler is called after every successful rebuild.
type ReloadHandler func(s *session.Session, events []Event)

// Config contains watcher configuration
type Config struct {
	Path       string // Scanner output file
	DebounceMs int
}

// Watcher keeps the latest session for one scanner output file.
type Watcher struct {
	config   Config
	load     LoadFunc
	onReload ReloadHandler
	logger   *slog.Logger

	current  atomic.Pointer[session.Session]
	reloads  atomic.Int64
	failures atomic.Int64

	reloadMu sync.Mutex
}

// New creates a watcher. onReload may be nil.
func New(config Config, load LoadFunc, onReload ReloadHandler, logger *slog.Logger) *Watcher {
	if config.DebounceMs <= 0 {
		config.DebounceMs = 500
	}
	if logger == nil {
		logger = slogutil.NewDiscardLogger()
	}
	return &Watcher{
		config:   config,
		load:     load,
		onReload: onReload,
		logger:   logger,
	}
}

// Current returns the latest successfully loaded session, or nil.
func (w *Watcher) Current() *session.Session {
	return w.current.Load()
}

// Run loads the initial session and then watches the scanner output until
// ctx is cancelled. The parent directory is watched rather than the file so
// that editors and scanners replacing the file by rename are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.reload(nil); err != nil {
		w.logger.Warn("Initial load failed, waiting for scanner output", "path", w.config.Path, "error", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.config.Path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	debounce := NewReloadDebouncer(time.Duration(w.config.DebounceMs)*time.Millisecond, func(events []Event) {
		if err := w.reload(events); err != nil {
			w.logger.Warn("Reload failed, keeping previous session", "path", w.config.Path, "error", err)
		}
	})
	defer debounce.Cancel()

	w.logger.Info("Watching scanner output", "path", w.config.Path, "debounceMs", w.config.DebounceMs)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Watcher stopped", "reloads", w.reloads.Load())
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.isTarget(ev.Name) {
				continue
			}
			debounce.Add(Event{Type: convertOp(ev.Op), Path: ev.Name, Timestamp: time.Now()})
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", "error", err)
		}
	}
}

func (w *Watcher) isTarget(name string) bool {
	return filepath.Clean(name) == filepath.Clean(w.config.Path)
}

func (w *Watcher) reload(events []Event) error {
	w.reloadMu.Lock()
	defer w.reloadMu.Unlock()

	s, err := w.load()
	if err != nil {
		w.failures.Add(1)
		return err
	}

	prev := w.current.Swap(s)
	w.reloads.Add(1)

	attrs := []any{"session", s.ID, "nodes", s.Graph.Meta.NodeCount, "edges", s.Graph.Meta.EdgeCount, "events", len(events)}
	if prev != nil {
		attrs = append(attrs, "previous", prev.ID)
	}
	w.logger.Info("Graph session rebuilt", attrs...)

	if w.onReload != nil {
		w.onReload(s, events)
	}
	return nil
}

// convertOp maps an fsnotify op to an EventType. Removal wins over rename,
// which wins over create and write.
func convertOp(op fsnotify.Op) EventType {
	switch {
	case op.Has(fsnotify.Remove):
		return EventDelete
	case op.Has(fsnotify.Rename):
		return EventRename
	case op.Has(fsnotify.Create):
		return EventCreate
	default:
		return EventModify
	}
}

// Stats describes watcher activity.
type Stats struct {
	Path       string `json:"path"`
	DebounceMs int    `json:"debounceMs"`
	Reloads    int64  `json:"reloads"`
	Failures   int64  `json:"failures"`
	SessionID  string `json:"sessionId,omitempty"`
}

// Stats returns watcher statistics
func (w *Watcher) Stats() Stats {
	st := Stats{
		Path:       w.config.Path,
		DebounceMs: w.config.DebounceMs,
		Reloads:    w.reloads.Load(),
		Failures:   w.failures.Load(),
	}
	if s := w.current.Load(); s != nil {
		st.SessionID = s.ID
	}
	return st
}
