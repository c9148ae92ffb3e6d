// Package teaui hosts the Bubble Tea program for the rangepick TUI.
package teaui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"tableflip.dev/rangepick/pkg/rangepicker"
	"tableflip.dev/rangepick/pkg/rangevalue"
	"tableflip.dev/rangepick/pkg/store"
	"tableflip.dev/rangepick/pkg/tui/components/eventviewer"
	"tableflip.dev/rangepick/pkg/tui/components/help"
	"tableflip.dev/rangepick/pkg/tui/components/rangeinput"
	"tableflip.dev/rangepick/pkg/tui/events"
	"tableflip.dev/rangepick/pkg/tui/theme"
)

const pickerID = events.ComponentID("range")

// Options configure the program.
type Options struct {
	Picker  rangepicker.Options
	Presets store.PresetStore
	Logger  zerolog.Logger
	// ShowEvents renders the event log pane under the picker.
	ShowEvents bool
	// HelpStyle is the Glamour style for the key reference; Run picks
	// "dark" or "light" from the terminal background when empty.
	HelpStyle string
}

// Result is what the user picked.
type Result struct {
	Value     rangevalue.Value
	Text      [2]string
	Confirmed bool
}

// Model composes the range input with an event log and live preset reload.
type Model struct {
	ctx    context.Context
	opts   Options
	picker *rangeinput.Model
	events *eventviewer.Model
	help   *help.Model
	theme  theme.Theme
	log    zerolog.Logger

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	termWidth  int
	termHeight int

	status   string
	changed  bool
	showHelp bool
	result  Result
}

// New builds the program model.
func New(ctx context.Context, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger.With().Str("component", "tui").Logger()
	opts.Picker.Logger = &logger
	th := theme.Default()
	return &Model{
		ctx:    ctx,
		opts:   opts,
		picker: rangeinput.NewModel(pickerID, opts.Picker, th),
		events: eventviewer.NewModel(200),
		help:   help.New(60, 20, opts.HelpStyle),
		theme:  th,
		log:    logger,
	}
}

// Result returns the outcome once the program has exited.
func (m *Model) Result() Result { return m.result }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.picker.Focus(), loadPresetsCmd(m.ctx, m.opts.Presets), startWatchCmd(m.ctx, m.opts.Presets))
}

type presetsLoadedMsg struct {
	records []store.PresetRecord
	err     error
}

func loadPresetsCmd(ctx context.Context, s store.PresetStore) tea.Cmd {
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		records, err := s.List(ctx)
		return presetsLoadedMsg{records: records, err: err}
	}
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, s store.PresetStore) tea.Cmd {
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := s.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
		return m, nil
	case presetsLoadedMsg:
		if msg.err != nil {
			m.status = "presets: " + msg.err.Error()
			m.log.Warn().Err(msg.err).Msg("loading presets")
			return m, nil
		}
		presets := store.Presets(msg.records, m.picker.Controller().Now)
		return m, func() tea.Msg { return events.PresetsReloadedMsg{Presets: presets} }
	case watchStartedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("watching presets")
			return m, nil
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		return m, m.waitForWatch()
	case watchEventMsg:
		m.log.Debug().Str("label", msg.event.Label).Msg("presets changed")
		return m, tea.Batch(loadPresetsCmd(m.ctx, m.opts.Presets), m.waitForWatch())
	case watchStoppedMsg:
		m.watchCh = nil
		return m, nil
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	if d, ok := msg.(events.Describer); ok {
		m.log.Debug().Str("event", d.Describe()).Msgf("%T", msg)
		m.events.Update(msg)
		if cmd := m.handleEvent(msg); cmd != nil {
			return m, cmd
		}
	}

	_, cmd := m.picker.Update(msg)
	cmds = append(cmds, cmd)
	m.status = m.picker.Status()
	return m, tea.Batch(cmds...)
}

// handleKey deals with the program-level keys. It reports false for keys
// the picker should see.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()
	if key == "ctrl+c" {
		m.finish(false)
		return tea.Quit, true
	}
	if m.showHelp {
		switch key {
		case "?", "esc", "q":
			m.showHelp = false
			return nil, true
		}
		_, cmd := m.help.Update(msg)
		return cmd, true
	}
	if m.picker.Controller().Open() {
		return nil, false
	}
	switch key {
	case "q", "esc":
		m.finish(m.changed)
		return tea.Quit, true
	case "?":
		m.showHelp = true
		return nil, true
	}
	return nil, false
}

// handleEvent reacts to picker notifications: the program exits once a
// committed range is complete and the picker has closed.
func (m *Model) handleEvent(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case events.ChangeMsg:
		m.changed = true
	case events.OpenChangeMsg:
		if !msg.Open && m.changed && complete(m.picker.Controller()) {
			m.finish(true)
			return tea.Quit
		}
	}
	return nil
}

func complete(c *rangepicker.Controller) bool {
	v := c.Value()
	allow := c.AllowEmpty()
	return (v.Has(rangevalue.Start) || allow.Get(rangevalue.Start)) &&
		(v.Has(rangevalue.End) || allow.Get(rangevalue.End))
}

func (m *Model) finish(confirmed bool) {
	m.stopWatch()
	ctrl := m.picker.Controller()
	m.result = Result{
		Value:     ctrl.Value(),
		Text:      [2]string{ctrl.Text(rangevalue.Start), ctrl.Text(rangevalue.End)},
		Confirmed: confirmed,
	}
	ctrl.Dispose()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.showHelp {
		return m.help.View()
	}
	sections := []string{m.theme.Panel.Title.Render("Pick a range"), m.picker.View()}
	sections = append(sections, m.footer())
	if m.opts.ShowEvents {
		if log := m.events.View(); strings.TrimSpace(log) != "" {
			sections = append(sections, log)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) footer() string {
	keys := "tab switch · arrows move · space pick · enter submit · pgup/pgdn page · ctrl+y zoom · esc close · q done · ? help"
	if m.picker.Controller().NeedConfirm() {
		keys = "tab switch · arrows move · ctrl+arrows time · space pick · ctrl+o ok · esc close · q done · ? help"
	}
	lines := []string{m.theme.Footer.Help.Render(keys)}
	if m.status != "" {
		lines = append(lines, m.theme.Footer.Error.Render(m.status))
	}
	return strings.Join(lines, "\n")
}

// applySizes recalculates pane sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	m.picker.SetSize(m.termWidth, m.termHeight)
	m.help.SetSize(m.termWidth, m.termHeight)
	logHeight := m.termHeight / 3
	if logHeight < 5 {
		logHeight = 5
	}
	m.events.SetSize(m.termWidth-2, logHeight)
}

// Run launches the interactive picker and returns what the user chose.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.HelpStyle == "" {
		opts.HelpStyle = "light"
		if termenv.HasDarkBackground() {
			opts.HelpStyle = "dark"
		}
	}
	m := New(ctx, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	if fm, ok := final.(*Model); ok {
		return fm.Result(), nil
	}
	return m.Result(), nil
}
