package eventviewer

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/rangepick/pkg/tui/events"
)

func TestUpdateLogsDescribedMessages(t *testing.T) {
	m := NewModel(2)
	m.now = func() time.Time { return time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC) }

	m.Update(events.OpenChangeMsg{Component: "picker", Open: true})
	m.Update("not an event")
	m.Update(events.PresetAppliedMsg{Component: "picker", Label: "last week"})
	m.Update(events.OpenChangeMsg{Component: "picker", Open: false})

	entries := m.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected log capped at 2 entries, got %d", len(entries))
	}
	if entries[0].Summary != "OpenChange" || entries[0].Detail != "open:false" {
		t.Fatalf("newest entry first, got %+v", entries[0])
	}
	if entries[1].Source != "picker" || entries[1].Detail != `label:"last week"` {
		t.Fatalf("unexpected entry %+v", entries[1])
	}
}

func TestViewTruncatesLongEntries(t *testing.T) {
	m := NewModel(10)
	m.SetSize(40, 5)
	m.Append(Entry{Source: "x", Summary: strings.Repeat("long ", 30)})

	for _, line := range strings.Split(m.View(), "\n") {
		if strings.Contains(line, "long long long long long long long long long") {
			t.Fatalf("entry should be truncated to the pane width: %q", line)
		}
	}
}
