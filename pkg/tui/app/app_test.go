package teaui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/rangepick/pkg/rangepicker"
	"tableflip.dev/rangepick/pkg/rangevalue"
	"tableflip.dev/rangepick/pkg/store"
	"tableflip.dev/rangepick/pkg/tui/events"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func newModel(value rangevalue.Value) *Model {
	return New(context.Background(), Options{Picker: rangepicker.Options{
		Format:       "YYYY-MM-DD",
		DefaultValue: value,
		Now:          func() time.Time { return day(1) },
	}})
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestQuitsOnceCompleteRangeCloses(t *testing.T) {
	v := rangevalue.New(day(3), day(6))
	m := newModel(v)

	m.Update(events.ChangeMsg{Component: pickerID, Value: v})
	_, cmd := m.Update(events.OpenChangeMsg{Component: pickerID, Open: false})
	if !isQuit(cmd) {
		t.Fatalf("expected the program to quit")
	}
	res := m.Result()
	if !res.Confirmed || !res.Value.Equal(v) {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Text != [2]string{"2024-03-03", "2024-03-06"} {
		t.Fatalf("unexpected text %q", res.Text)
	}
}

func TestIncompleteRangeKeepsRunning(t *testing.T) {
	v := rangevalue.New(day(3), time.Time{})
	m := newModel(v)

	m.Update(events.ChangeMsg{Component: pickerID, Value: v})
	m.Update(events.OpenChangeMsg{Component: pickerID, Open: false})
	if m.Result().Confirmed {
		t.Fatalf("an open end must not confirm")
	}
}

func TestCtrlCCancels(t *testing.T) {
	m := newModel(rangevalue.New(day(3), day(6)))
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if !isQuit(cmd) {
		t.Fatalf("expected the program to quit")
	}
	if m.Result().Confirmed {
		t.Fatalf("ctrl+c must not confirm")
	}
}

func TestPresetsLoadedAreForwarded(t *testing.T) {
	m := newModel(rangevalue.Value{})
	_, cmd := m.Update(presetsLoadedMsg{records: []store.PresetRecord{
		{Label: "first week", Start: day(1), End: day(7)},
	}})
	if cmd == nil {
		t.Fatalf("expected a reload command")
	}
	msg, ok := cmd().(events.PresetsReloadedMsg)
	if !ok || len(msg.Presets) != 1 || msg.Presets[0].Label != "first week" {
		t.Fatalf("unexpected message %#v", msg)
	}

	m.Update(msg)
	if got := m.picker.Controller().Presets(); len(got) != 1 {
		t.Fatalf("expected the picker to offer the preset, got %d", len(got))
	}
}

func TestViewShowsTitleAndHelp(t *testing.T) {
	m := newModel(rangevalue.Value{})
	out := m.View()
	for _, want := range []string{"Pick a range", "tab switch"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	m := New(context.Background(), Options{HelpStyle: "notty"})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 80})
	question := tea.KeyPressMsg{Code: '?', Text: "?"}

	m.Update(question)
	if !m.showHelp || !strings.Contains(m.View(), "ctrl+o") {
		t.Fatalf("expected the key reference:\n%s", m.View())
	}
	if _, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"}); isQuit(cmd) {
		t.Fatalf("q should close the help, not quit")
	}
	if m.showHelp {
		t.Fatalf("expected help to be hidden")
	}
}
