// Package rangeinput is the Bubble Tea front end of a range picker: two text
// inputs, the calendar panels of the active endpoint and an optional time
// panel, all driven by a rangepicker.Controller.
package rangeinput

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/rangepick/pkg/rangepicker"
	"tableflip.dev/rangepick/pkg/rangevalue"
	"tableflip.dev/rangepick/pkg/timeunit"
	"tableflip.dev/rangepick/pkg/tui/components/calendar"
	"tableflip.dev/rangepick/pkg/tui/components/panel"
	"tableflip.dev/rangepick/pkg/tui/events"
	"tableflip.dev/rangepick/pkg/tui/theme"
	"tableflip.dev/rangepick/pkg/tui/ui"
)

// flushMsg drains the controller's deferred work on the next loop turn.
type flushMsg struct {
	id events.ComponentID
}

// Model renders and drives a range picker.
type Model struct {
	id    events.ComponentID
	ctrl  *rangepicker.Controller
	queue *events.Queue

	inputs [2]textinput.Model
	focus  rangevalue.Endpoint

	typed      [2]bool
	cursor     time.Time
	timeCol    int
	timeCursor [3]int

	width  int
	height int

	theme  theme.Theme
	cal    calendar.Options
	status string

	cmds []tea.Cmd
}

// NewModel builds a picker component. Handlers already present on opts are
// replaced: the component reports through events messages instead.
func NewModel(id events.ComponentID, opts rangepicker.Options, th theme.Theme) *Model {
	if id == "" {
		id = events.ComponentID("rangepicker")
	}
	m := &Model{
		id:    id,
		theme: th,
		cal:   calendar.DefaultOptions(),
	}
	handlers, q := events.Handlers(id)
	handlers.OnFocus = m.onFocus
	opts.Handlers = handlers
	m.queue = q
	m.ctrl = rangepicker.New(opts)

	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholder(m.ctrl.Format())
		in.CharLimit = len(m.ctrl.Format()) + 8
		in.SetWidth(len(in.Placeholder) + 1)
		m.inputs[i] = in
	}
	m.syncInputs()
	return m
}

func placeholder(format string) string {
	if format == "" {
		return "start"
	}
	return strings.NewReplacer("[", "", "]", "").Replace(format)
}

var _ ui.Focusable = (*Model)(nil)

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Controller exposes the picker state machine.
func (m *Model) Controller() *rangepicker.Controller { return m.ctrl }

// Status returns the last user-facing message.
func (m *Model) Status() string { return m.status }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetPresets replaces the preset list, e.g. after the preset store changed.
func (m *Model) SetPresets(presets []rangepicker.Preset) {
	m.ctrl.SetPresets(presets)
}

// Focus opens the picker on the start endpoint and focuses its input.
func (m *Model) Focus() tea.Cmd {
	m.ctrl.OpenAndFocus(rangevalue.Start)
	m.resetCursor()
	return m.finish()
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case flushMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.ctrl.Flush()
		return m, m.finish()
	case events.PresetsReloadedMsg:
		if msg.Err == nil {
			m.ctrl.SetPresets(msg.Presets)
		}
		return m, nil
	case tea.KeyMsg:
		m.handleKey(msg)
		return m, m.finish()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	m.status = ""
	key := msg.String()
	active := m.ctrl.Active()

	if !m.ctrl.Open() {
		switch key {
		case "enter", "down", "space", " ":
			m.ctrl.OpenAndFocus(m.focus)
			m.resetCursor()
			return
		case "tab", "shift+tab":
			m.focus = m.focus.Other()
			m.focusInput(m.focus)
			return
		case "esc":
			return
		}
		m.ctrl.OpenAndFocus(m.focus)
		m.resetCursor()
		m.typeInto(m.focus, msg)
		return
	}

	switch key {
	case "tab", "shift+tab":
		next := active.Other()
		if m.ctrl.Disabled().Get(next) {
			m.status = fmt.Sprintf("%s is disabled", next)
			return
		}
		m.ctrl.OpenAndFocus(next)
		m.resetCursor()
		return
	case "esc":
		m.ctrl.HoverLeave()
		m.ctrl.ResetText(active)
		m.ctrl.ClickOutside()
		m.ctrl.RequestClose(active)
		return
	case "ctrl+o":
		if m.ctrl.OKDisabled() {
			m.status = "nothing to confirm"
			return
		}
		m.ctrl.OK()
		return
	case "pgup":
		m.ctrl.PageView(active, -1)
		return
	case "pgdown":
		m.ctrl.PageView(active, 1)
		return
	case "ctrl+y":
		m.cycleMode(active)
		return
	case "enter":
		if m.typed[active] {
			m.typed[active] = false
			m.ctrl.SubmitText(active)
			return
		}
		m.choose(rangepicker.OriginSubmit)
		return
	case "space", " ":
		m.choose(rangepicker.OriginPointer)
		return
	}

	if strings.HasPrefix(key, "alt+") && len(key) == 5 {
		if n := int(key[4] - '1'); n >= 0 && n < 9 {
			m.applyPreset(n)
			return
		}
	}

	if m.ctrl.Picker() == rangevalue.PickerTime {
		if m.timeKey(strings.TrimPrefix(key, "ctrl+")) {
			return
		}
	} else {
		if strings.HasPrefix(key, "ctrl+") && m.ctrl.NeedConfirm() && m.timeKey(strings.TrimPrefix(key, "ctrl+")) {
			return
		}
		if m.moveCursor(key) {
			return
		}
	}
	m.typeInto(active, msg)
}

func (m *Model) typeInto(e rangevalue.Endpoint, msg tea.KeyMsg) {
	if m.ctrl.Disabled().Get(e) {
		return
	}
	if !m.inputs[e].Focused() {
		m.focusInput(e)
	}
	prev := m.inputs[e].Value()
	var cmd tea.Cmd
	m.inputs[e], cmd = m.inputs[e].Update(msg)
	m.cmds = append(m.cmds, cmd)
	if value := m.inputs[e].Value(); value != prev {
		m.typed[e] = true
		m.ctrl.TypeText(e, value)
		if v := m.ctrl.Selected().Get(e); !v.IsZero() {
			m.cursor = v
		}
	}
}

func (m *Model) choose(origin rangepicker.Origin) {
	active := m.ctrl.Active()
	if m.cursor.IsZero() {
		return
	}
	mode := m.ctrl.Modes()[active]
	if mode != rangepicker.PanelMode(m.ctrl.Picker()) && mode != rangepicker.PanelTime {
		m.ctrl.SetViewDate(active, m.cursor)
		m.ctrl.SetPanelMode(active, rangepicker.PanelMode(m.ctrl.Picker()))
		return
	}
	candidate := m.cursor
	if m.ctrl.NeedConfirm() {
		if prev := m.ctrl.Selected().Get(active); !prev.IsZero() {
			candidate = time.Date(candidate.Year(), candidate.Month(), candidate.Day(),
				prev.Hour(), prev.Minute(), prev.Second(), 0, candidate.Location())
		}
	}
	if m.ctrl.DisabledTest(active)(candidate) {
		m.status = fmt.Sprintf("%s is not selectable", candidate.Format("2006-01-02"))
		return
	}
	m.typed[active] = false
	m.ctrl.Select(candidate, origin)
	m.resetCursor()
}

func (m *Model) applyPreset(n int) {
	presets := m.ctrl.Presets()
	if n >= len(presets) {
		return
	}
	label := presets[n].Label
	if m.ctrl.ApplyPreset(label) {
		m.cmds = append(m.cmds, events.PresetAppliedCmd(m.id, label))
	}
}

func (m *Model) cycleMode(e rangevalue.Endpoint) {
	native := rangepicker.PanelMode(m.ctrl.Picker())
	var order []rangepicker.PanelMode
	switch m.ctrl.Picker() {
	case rangevalue.PickerDate, rangevalue.PickerWeek:
		order = []rangepicker.PanelMode{native, rangepicker.PanelMonth, rangepicker.PanelYear}
	case rangevalue.PickerMonth, rangevalue.PickerQuarter:
		order = []rangepicker.PanelMode{native, rangepicker.PanelYear}
	case rangevalue.PickerYear:
		order = []rangepicker.PanelMode{native, rangepicker.PanelDecade}
	default:
		return
	}
	current := m.ctrl.Modes()[e]
	next := order[0]
	for i, mode := range order {
		if mode == current {
			next = order[(i+1)%len(order)]
			break
		}
	}
	m.ctrl.SetPanelMode(e, next)
}

// moveCursor steps the calendar cursor and previews the hovered value.
func (m *Model) moveCursor(key string) bool {
	picker := modePicker(m.ctrl.Modes()[m.ctrl.Active()])
	small, large := steps(picker)
	var delta func(time.Time) time.Time
	switch key {
	case "left", "h":
		delta = func(t time.Time) time.Time { return small(t, -1) }
	case "right", "l":
		delta = func(t time.Time) time.Time { return small(t, 1) }
	case "up", "k":
		delta = func(t time.Time) time.Time { return large(t, -1) }
	case "down", "j":
		delta = func(t time.Time) time.Time { return large(t, 1) }
	default:
		return false
	}
	if m.cursor.IsZero() {
		m.resetCursor()
	}
	m.cursor = delta(m.cursor)
	m.keepCursorVisible()
	m.ctrl.HoverEnter(m.cursor)
	return true
}

func (m *Model) keepCursorVisible() {
	active := m.ctrl.Active()
	views := m.visibleViews()
	picker := modePicker(m.ctrl.Modes()[active])
	switch {
	case before(m.cursor, views[0], picker):
		m.ctrl.SetViewDate(active, m.cursor)
	case after(m.cursor, views[len(views)-1], picker):
		m.ctrl.SetViewDate(active, rangepicker.ClosingViewDate(m.cursor, picker, 1-len(views), 10))
	}
}

// visibleViews lists the view dates of the rendered calendar panels. Panels
// zoomed out of the picker's native granularity show a single page.
func (m *Model) visibleViews() []time.Time {
	views := m.ctrl.Panels()
	if m.ctrl.Modes()[m.ctrl.Active()] != rangepicker.PanelMode(m.ctrl.Picker()) {
		views = views[:1]
	}
	return views
}

func before(t, view time.Time, p rangevalue.Picker) bool {
	switch p {
	case rangevalue.PickerDate, rangevalue.PickerWeek:
		return t.Year() < view.Year() || (t.Year() == view.Year() && t.Month() < view.Month())
	case rangevalue.PickerYear:
		return t.Year() < view.Year()-view.Year()%10
	}
	return t.Year() < view.Year()
}

func after(t, view time.Time, p rangevalue.Picker) bool {
	switch p {
	case rangevalue.PickerDate, rangevalue.PickerWeek:
		return t.Year() > view.Year() || (t.Year() == view.Year() && t.Month() > view.Month())
	case rangevalue.PickerYear:
		return t.Year() > view.Year()-view.Year()%10+9
	}
	return t.Year() > view.Year()
}

func modePicker(mode rangepicker.PanelMode) rangevalue.Picker {
	if mode == rangepicker.PanelDecade {
		return rangevalue.PickerYear
	}
	return rangevalue.Picker(mode)
}

func steps(p rangevalue.Picker) (small, large func(time.Time, int) time.Time) {
	switch p {
	case rangevalue.PickerWeek:
		return func(t time.Time, n int) time.Time { return t.AddDate(0, 0, 7*n) },
			func(t time.Time, n int) time.Time { return t.AddDate(0, 0, 7*n) }
	case rangevalue.PickerMonth:
		return func(t time.Time, n int) time.Time { return t.AddDate(0, n, 0) },
			func(t time.Time, n int) time.Time { return t.AddDate(0, 3*n, 0) }
	case rangevalue.PickerQuarter:
		return func(t time.Time, n int) time.Time { return t.AddDate(0, 3*n, 0) },
			func(t time.Time, n int) time.Time { return t.AddDate(1*n, 0, 0) }
	case rangevalue.PickerYear:
		return func(t time.Time, n int) time.Time { return t.AddDate(n, 0, 0) },
			func(t time.Time, n int) time.Time { return t.AddDate(4*n, 0, 0) }
	}
	return func(t time.Time, n int) time.Time { return t.AddDate(0, 0, n) },
		func(t time.Time, n int) time.Time { return t.AddDate(0, 0, 7*n) }
}

// timeKey moves within the time panel: left/right pick the column, up/down
// step to the next enabled unit.
func (m *Model) timeKey(key string) bool {
	panel, ok := m.ctrl.TimePanel()
	if !ok {
		return false
	}
	switch key {
	case "left":
		if m.timeCol > calendar.ColumnHour {
			m.timeCol--
		}
		return true
	case "right":
		if m.timeCol < calendar.ColumnSecond {
			m.timeCol++
		}
		return true
	case "up":
		m.stepTime(panel, -1)
		return true
	case "down":
		m.stepTime(panel, 1)
		return true
	}
	return false
}

func (m *Model) stepTime(panel rangepicker.TimePanel, delta int) {
	if panel.Disabled {
		m.status = "no selectable time"
		return
	}
	cols := [3][]timeunit.Unit{panel.Hours, panel.Minutes, panel.Seconds}
	column := cols[m.timeCol]
	idx := -1
	for i := m.timeCursor[m.timeCol] + delta; i >= 0 && i < len(column); i += delta {
		if !column[i].Disabled {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	m.timeCursor[m.timeCol] = idx

	active := m.ctrl.Active()
	base := m.ctrl.Selected().Get(active)
	if base.IsZero() {
		base = m.cursor
	}
	if base.IsZero() {
		base = m.ctrl.Now()
	}
	clock := [3]int{base.Hour(), base.Minute(), base.Second()}
	clock[m.timeCol] = column[idx].Value
	candidate := time.Date(base.Year(), base.Month(), base.Day(), clock[0], clock[1], clock[2], 0, base.Location())
	if m.ctrl.DisabledTest(active)(candidate) || m.ctrl.DisabledTimeTest()(candidate) {
		m.status = fmt.Sprintf("%s is not selectable", candidate.Format("15:04:05"))
		return
	}
	m.ctrl.Select(candidate, rangepicker.OriginKey)
}

func (m *Model) resetCursor() {
	active := m.ctrl.Active()
	m.cursor = m.ctrl.Selected().Get(active)
	if m.cursor.IsZero() {
		m.cursor = m.ctrl.Selected().Get(active.Other())
	}
	if m.cursor.IsZero() {
		m.cursor = m.ctrl.ViewDate(active)
	}
	if panel, ok := m.ctrl.TimePanel(); ok {
		chosen := [3]int{panel.Hour, panel.Minute, panel.Second}
		for i, col := range [3][]timeunit.Unit{panel.Hours, panel.Minutes, panel.Seconds} {
			m.timeCursor[i] = 0
			for j, u := range col {
				if u.Value == chosen[i] {
					m.timeCursor[i] = j
				}
			}
		}
	}
}

func (m *Model) onFocus(e rangevalue.Endpoint) {
	m.focus = e
	m.focusInput(e)
}

func (m *Model) focusInput(e rangevalue.Endpoint) {
	m.inputs[e.Other()].Blur()
	m.cmds = append(m.cmds, m.inputs[e].Focus())
}

// syncInputs mirrors the controller's display text into the text inputs.
func (m *Model) syncInputs() {
	for i := range m.inputs {
		e := rangevalue.Endpoint(i)
		if text := m.ctrl.Text(e); m.inputs[i].Value() != text {
			m.inputs[i].SetValue(text)
			m.inputs[i].CursorEnd()
		}
	}
}

// finish collects the commands produced while handling a message: focus
// changes, queued picker notifications and a flush when deferred work is
// pending.
func (m *Model) finish() tea.Cmd {
	m.syncInputs()
	cmds := m.cmds
	m.cmds = nil
	cmds = append(cmds, m.queue.Drain())
	if m.ctrl.Pending() {
		id := m.id
		cmds = append(cmds, func() tea.Msg { return flushMsg{id: id} })
	}
	return tea.Batch(cmds...)
}

// View implements ui.Component.
func (m *Model) View() string {
	inputs := lipgloss.JoinHorizontal(lipgloss.Center,
		m.renderInput(rangevalue.Start),
		m.theme.Input.Separator.Render(" → "),
		m.renderInput(rangevalue.End),
	)
	if m.ctrl.NeedConfirm() {
		ok := m.theme.Input.OK.Render("OK")
		if m.ctrl.OKDisabled() {
			ok = m.theme.Input.OKOff.Render("OK")
		}
		inputs = lipgloss.JoinHorizontal(lipgloss.Center, inputs, " ", ok)
	}
	if !m.ctrl.Open() {
		return inputs
	}

	sections := []string{inputs, m.renderPanels()}
	if presets := m.renderPresets(); presets != "" {
		sections = append(sections, presets)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderInput(e rangevalue.Endpoint) string {
	style := m.theme.Input.Inactive
	switch {
	case m.ctrl.Disabled().Get(e):
		style = m.theme.Input.Disabled
	case m.ctrl.Open() && m.ctrl.Active() == e:
		style = m.theme.Input.Active
	}
	body := m.inputs[e].View()
	if hover := m.ctrl.HoverText(e); hover != "" {
		body = m.theme.Input.Hover.Render(hover)
	}
	return m.theme.Input.Frame.Render(style.Render(body))
}

func (m *Model) renderPanels() string {
	active := m.ctrl.Active()
	mode := m.ctrl.Modes()[active]
	var panels []string
	if m.ctrl.Picker() != rangevalue.PickerTime {
		sel := calendar.Selection{
			Picker:   modePicker(mode),
			Range:    m.ctrl.Selected(),
			Hover:    m.ctrl.HoverRange(),
			Cursor:   m.cursor,
			Now:      m.ctrl.Now(),
			Disabled: m.ctrl.DisabledTest(active),
		}
		for _, view := range m.visibleViews() {
			panels = append(panels, m.theme.Panel.Frame.Render(calendar.Render(view, sel, m.cal)))
		}
	}
	if panel, ok := m.ctrl.TimePanel(); ok {
		panels = append(panels, m.theme.Panel.Frame.Render(calendar.RenderTime(panel, m.timeCursor, m.timeCol, m.cal)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

func (m *Model) renderPresets() string {
	presets := m.ctrl.Presets()
	if len(presets) == 0 {
		return ""
	}
	lines := make([]string, 0, len(presets))
	for i, p := range presets {
		if i >= 9 {
			break
		}
		lines = append(lines, fmt.Sprintf("%s %s",
			m.theme.Preset.Key.Render(fmt.Sprintf("alt+%d", i+1)),
			m.theme.Preset.Label.Render(p.Label)))
	}
	list := panel.New(m.theme.Panel)
	list.SetContent("Presets", lines)
	view, _ := list.View()
	return view
}
