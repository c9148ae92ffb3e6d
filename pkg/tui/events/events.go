package events

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/rangepick/pkg/rangepicker"
	"tableflip.dev/rangepick/pkg/rangevalue"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// Describer is implemented by every message in this package so hosts can log
// them uniformly.
type Describer interface {
	Describe() string
}

// ChangeMsg is emitted when the committed range changes.
type ChangeMsg struct {
	Component ComponentID
	Value     rangevalue.Value
	Text      [2]string
}

// Describe renders the change in a human-friendly format for logs.
func (m ChangeMsg) Describe() string {
	return fmt.Sprintf(`start:%q end:%q`, m.Text[0], m.Text[1])
}

// CalendarChangeMsg is emitted whenever the change protocol runs, including
// for half-selected ranges that do not commit.
type CalendarChangeMsg struct {
	Component ComponentID
	Value     rangevalue.Value
	Text      [2]string
	Range     rangevalue.Endpoint
}

// Describe renders the calendar change in a human-friendly format for logs.
func (m CalendarChangeMsg) Describe() string {
	return fmt.Sprintf(`start:%q end:%q range:%q`, m.Text[0], m.Text[1], m.Range)
}

// OkMsg is emitted when the user confirms a selection.
type OkMsg struct {
	Component ComponentID
	Value     rangevalue.Value
}

// Describe implements the logging helper.
func (m OkMsg) Describe() string {
	return fmt.Sprintf(`start:%q end:%q`, stamp(m.Value.Start()), stamp(m.Value.End()))
}

// OpenChangeMsg is emitted when the picker popup opens or closes.
type OpenChangeMsg struct {
	Component ComponentID
	Open      bool
}

// Describe implements the logging helper.
func (m OpenChangeMsg) Describe() string {
	return fmt.Sprintf(`open:%t`, m.Open)
}

// PanelChangeMsg is emitted when an endpoint switches panel mode.
type PanelChangeMsg struct {
	Component ComponentID
	Value     rangevalue.Value
	Modes     [2]rangepicker.PanelMode
}

// Describe implements the logging helper.
func (m PanelChangeMsg) Describe() string {
	return fmt.Sprintf(`start:%q end:%q`, m.Modes[0], m.Modes[1])
}

// PresetAppliedMsg is emitted after a preset replaced the range.
type PresetAppliedMsg struct {
	Component ComponentID
	Label     string
}

// Describe implements the logging helper.
func (m PresetAppliedMsg) Describe() string {
	return fmt.Sprintf(`label:%q`, m.Label)
}

// PresetsReloadedMsg announces that the preset store changed on disk.
type PresetsReloadedMsg struct {
	Presets []rangepicker.Preset
	Err     error
}

// Describe implements the logging helper.
func (m PresetsReloadedMsg) Describe() string {
	if m.Err != nil {
		return fmt.Sprintf(`error:%q`, m.Err.Error())
	}
	return fmt.Sprintf(`count:%d`, len(m.Presets))
}

// Handlers returns picker callbacks that queue the matching messages. The
// picker fires callbacks synchronously from inside Update, so the messages
// are buffered on the returned queue and drained by the caller.
func Handlers(component ComponentID) (rangepicker.Handlers, *Queue) {
	q := &Queue{}
	return rangepicker.Handlers{
		OnChange: func(v rangevalue.Value, text [2]string) {
			q.push(ChangeMsg{Component: component, Value: v, Text: text})
		},
		OnCalendarChange: func(v rangevalue.Value, text [2]string, info rangepicker.RangeInfo) {
			q.push(CalendarChangeMsg{Component: component, Value: v, Text: text, Range: info.Range})
		},
		OnOk: func(v rangevalue.Value) {
			q.push(OkMsg{Component: component, Value: v})
		},
		OnOpenChange: func(open bool) {
			q.push(OpenChangeMsg{Component: component, Open: open})
		},
		OnPanelChange: func(v rangevalue.Value, modes [2]rangepicker.PanelMode) {
			q.push(PanelChangeMsg{Component: component, Value: v, Modes: modes})
		},
	}, q
}

// Queue buffers messages produced by picker callbacks.
type Queue struct {
	pending []tea.Msg
}

func (q *Queue) push(msg tea.Msg) {
	q.pending = append(q.pending, msg)
}

// Len reports the number of buffered messages.
func (q *Queue) Len() int { return len(q.pending) }

// Take returns the buffered messages and empties the queue.
func (q *Queue) Take() []tea.Msg {
	msgs := q.pending
	q.pending = nil
	return msgs
}

// Drain returns a command emitting every buffered message in order and
// empties the queue. It returns nil when nothing is buffered.
func (q *Queue) Drain() tea.Cmd {
	msgs := q.Take()
	if len(msgs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(msgs))
	for _, msg := range msgs {
		msg := msg
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	return tea.Sequence(cmds...)
}

// PresetAppliedCmd wraps PresetAppliedMsg into a tea.Cmd.
func PresetAppliedCmd(component ComponentID, label string) tea.Cmd {
	return func() tea.Msg {
		return PresetAppliedMsg{Component: component, Label: label}
	}
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
