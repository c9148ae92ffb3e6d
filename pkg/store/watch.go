package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// EventType describes the nature of a preset change notification.
type EventType int

const (
	// EventPresetChanged indicates a single preset was written or removed.
	EventPresetChanged EventType = iota

	// EventPresetsInvalidated signals that callers should reload the whole
	// preset list, e.g. after a watcher error.
	EventPresetsInvalidated
)

// Event is emitted by PresetStore.Watch when underlying storage changes.
type Event struct {
	Type  EventType
	Label string
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid blocking the watcher. The channel is closed once
// ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	dir := filepath.Join(p.basePath, presetBucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "ensure presets dir")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, errors.Wrapf(err, "watch %s", dir)
	}

	events := make(chan Event, 64)

	go func() {
		var mu sync.Mutex
		closed := false
		defer func() {
			mu.Lock()
			closed = true
			close(events)
			mu.Unlock()
		}()
		defer closeWatcher()

		// The throttle timer may fire after the loop exits.
		send := func(ev Event) {
			mu.Lock()
			defer mu.Unlock()
			if closed {
				return
			}
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; the next
				// reload picks up the change anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Type: EventPresetsInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				label := p.labelForPath(evt.Name)
				if label == "" {
					throttle.Enqueue(Event{Type: EventPresetsInvalidated}, send)
					continue
				}
				throttle.Enqueue(Event{Type: EventPresetChanged, Label: label}, send)
			}
		}
	}()

	return events, nil
}

// labelForPath derives the preset label from a diskv file path. Temporary
// files diskv writes before renaming do not decode and yield "".
func (p *persistence) labelForPath(path string) string {
	rel, err := filepath.Rel(filepath.Join(p.basePath, presetBucket), path)
	if err != nil || rel == "." || filepath.Dir(rel) != "." {
		return ""
	}
	return decodeLabel(rel)
}

// eventThrottle coalesces rapid change notifications so the UI reloads once
// per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	if t.pending[ev.Type] == nil {
		t.pending[ev.Type] = make(map[string]struct{})
	}
	if ev.Label != "" {
		t.pending[ev.Type][ev.Label] = struct{}{}
	}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for eventType, labels := range pending {
		if len(labels) == 0 {
			send(Event{Type: eventType})
			continue
		}
		for label := range labels {
			send(Event{Type: eventType, Label: label})
		}
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
