package rangeinput

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/rangepick/pkg/rangepicker"
	"tableflip.dev/rangepick/pkg/rangevalue"
	"tableflip.dev/rangepick/pkg/tui/theme"
)

var now = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func at(d int) time.Time {
	return time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC)
}

func stripANSIString(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func newModel(t *testing.T, opts rangepicker.Options) *Model {
	t.Helper()
	opts.Now = func() time.Time { return now }
	return NewModel("test-picker", opts, theme.Default())
}

// send delivers msgs and drains deferred work after each one.
func send(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
		m.Update(flushMsg{id: m.id})
	}
}

func keys(codes ...rune) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(codes))
	for _, c := range codes {
		msgs = append(msgs, tea.KeyPressMsg{Code: c})
	}
	return msgs
}

func typed(text string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return msgs
}

func TestKeyboardSelectsRange(t *testing.T) {
	m := newModel(t, rangepicker.Options{})
	m.Focus()
	send(m, flushMsg{id: m.id})

	send(m, keys(tea.KeyRight, tea.KeyRight)...)
	if hover := m.ctrl.HoverRange(); !hover.Start().Equal(at(3)) {
		t.Fatalf("cursor should preview March 3, got %v", hover)
	}
	send(m, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if m.ctrl.Active() != rangevalue.End {
		t.Fatalf("expected end to be active after picking start")
	}

	send(m, keys(tea.KeyRight, tea.KeyRight, tea.KeyRight)...)
	send(m, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})

	want := rangevalue.New(at(3), at(6))
	if !m.ctrl.Value().Equal(want) {
		t.Fatalf("value = %v, want %v", m.ctrl.Value(), want)
	}
	if m.ctrl.Open() {
		t.Fatalf("completing the range closes the picker")
	}
}

func TestTypingCommitsOnEnter(t *testing.T) {
	m := newModel(t, rangepicker.Options{})
	send(m, typed("2024-03-07")...)
	if !m.ctrl.Open() {
		t.Fatalf("typing opens the picker")
	}
	if !m.ctrl.Selected().Start().Equal(time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("typed start not parsed, got %v", m.ctrl.Selected())
	}
	send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.ctrl.Active() != rangevalue.End {
		t.Fatalf("enter on start advances to end")
	}

	send(m, typed("2024-03-09")...)
	send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := m.ctrl.Value(); got.End().Day() != 9 || got.Start().Day() != 7 {
		t.Fatalf("unexpected committed value %v", got)
	}
	if m.inputs[rangevalue.End].Value() != "2024-03-09" {
		t.Fatalf("input should mirror display text, got %q", m.inputs[rangevalue.End].Value())
	}
}

func TestDisabledCellIsRejected(t *testing.T) {
	m := newModel(t, rangepicker.Options{
		DisabledDate: func(d time.Time) bool { return d.Day() == 2 },
	})
	m.Focus()
	send(m, flushMsg{id: m.id})
	send(m, keys(tea.KeyRight)...)
	send(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if !m.ctrl.Selected().IsEmpty() {
		t.Fatalf("disabled date must not be selected, got %v", m.ctrl.Selected())
	}
	if !strings.Contains(m.Status(), "not selectable") {
		t.Fatalf("expected a status message, got %q", m.Status())
	}
}

func TestDisabledHoursLeaveDaysSelectable(t *testing.T) {
	m := newModel(t, rangepicker.Options{
		ShowTime: true,
		DisabledHours: func() []int {
			return []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
		},
	})
	m.Focus()
	send(m, flushMsg{id: m.id})
	send(m, keys(tea.KeyRight)...)
	send(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if strings.Contains(m.Status(), "not selectable") {
		t.Fatalf("a day is not rejected by its clock, got %q", m.Status())
	}
	if got := m.ctrl.Selected().Start(); got.IsZero() || got.Day() != 2 {
		t.Fatalf("March 2 should be selected, got %v", m.ctrl.Selected())
	}
}

func TestConfirmModeRequiresOK(t *testing.T) {
	m := newModel(t, rangepicker.Options{ShowTime: true})
	m.Focus()
	send(m, flushMsg{id: m.id})
	send(m, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})

	if !m.ctrl.Value().IsEmpty() {
		t.Fatalf("confirm mode must not commit on pick")
	}
	send(m, tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl})
	if m.ctrl.Value().Start().IsZero() {
		t.Fatalf("ok should commit the start, got %v", m.ctrl.Value())
	}
	if m.ctrl.Active() != rangevalue.End {
		t.Fatalf("ok on start advances to end")
	}
}

func TestPresetShortcut(t *testing.T) {
	m := newModel(t, rangepicker.Options{Presets: []rangepicker.Preset{
		rangepicker.StaticPreset("first week", at(1), at(7)),
	}})
	m.Focus()
	send(m, flushMsg{id: m.id})

	view := stripANSIString(m.View())
	if !strings.Contains(view, "alt+1 first week") {
		t.Fatalf("expected preset listing in view:\n%s", view)
	}

	send(m, tea.KeyPressMsg{Code: '1', Mod: tea.ModAlt})
	if !m.ctrl.Value().Equal(rangevalue.New(at(1), at(7))) {
		t.Fatalf("preset should set the value, got %v", m.ctrl.Value())
	}
	if m.ctrl.Open() {
		t.Fatalf("preset closes the picker")
	}
}

func TestViewShowsTwoMonths(t *testing.T) {
	m := newModel(t, rangepicker.Options{})
	if strings.Contains(stripANSIString(m.View()), "March 2024") {
		t.Fatalf("closed picker renders only the inputs")
	}
	m.Focus()
	send(m, flushMsg{id: m.id})

	view := stripANSIString(m.View())
	for _, want := range []string{"March 2024", "April 2024", "Su Mo Tu We Th Fr Sa"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestEscapeClosesAndRestoresText(t *testing.T) {
	m := newModel(t, rangepicker.Options{DefaultValue: rangevalue.New(at(2), at(4))})
	m.Focus()
	send(m, flushMsg{id: m.id})
	send(m, typed("x")...)
	send(m, tea.KeyPressMsg{Code: tea.KeyEscape})

	if m.ctrl.Open() {
		t.Fatalf("escape closes the picker")
	}
	if got := m.inputs[rangevalue.Start].Value(); got != "2024-03-02" {
		t.Fatalf("escape restores display text, got %q", got)
	}
}

func TestModeCycleNavigates(t *testing.T) {
	m := newModel(t, rangepicker.Options{})
	m.Focus()
	send(m, flushMsg{id: m.id})
	send(m, tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl})

	if m.ctrl.Modes()[rangevalue.Start] != rangepicker.PanelMonth {
		t.Fatalf("expected month mode, got %v", m.ctrl.Modes())
	}
	send(m, keys(tea.KeyDown)...)
	send(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.ctrl.Modes()[rangevalue.Start] != rangepicker.PanelDate {
		t.Fatalf("choosing a month returns to the date panel")
	}
	if got := m.ctrl.ViewDate(rangevalue.Start); got.Month() != time.June {
		t.Fatalf("expected June view, got %v", got)
	}
	if !m.ctrl.Selected().IsEmpty() {
		t.Fatalf("navigation must not select")
	}
}
