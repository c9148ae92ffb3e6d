// Package calendar renders picker panels: month grids for day and week
// pickers, month/quarter/year grids for the coarser pickers and the columns
// of a time panel.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/rangepick/pkg/rangepicker"
	"tableflip.dev/rangepick/pkg/rangevalue"
	"tableflip.dev/rangepick/pkg/timeunit"
)

// Cell describes a single selectable entry of a panel.
type Cell struct {
	Date  time.Time
	Label string

	IsStart    bool
	IsEnd      bool
	InRange    bool
	InHover    bool
	IsToday    bool
	IsCursor   bool
	IsDisabled bool
}

// Selection is everything a panel needs to know about the picker state.
type Selection struct {
	Picker   rangevalue.Picker
	Range    rangevalue.Value
	Hover    rangevalue.Value
	Cursor   time.Time
	Now      time.Time
	Disabled func(time.Time) bool
}

// Options controls calendar styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	CellStyle     lipgloss.Style
	RangeStyle    lipgloss.Style
	HoverStyle    lipgloss.Style
	EdgeStyle     lipgloss.Style
	TodayStyle    lipgloss.Style
	CursorStyle   lipgloss.Style
	DisabledStyle lipgloss.Style
	ShowHeader    bool
}

// DefaultOptions returns the styling used for calendar rendering.
const (
	edgeColor = "#5f5fff"
	baseColor = "#1c1c1c"
)

// tint mixes amount of the endpoint colour into the dark base so range and
// hover fills read as shades of the endpoints.
func tint(amount float64) string {
	base, _ := colorful.Hex(baseColor)
	edge, _ := colorful.Hex(edgeColor)
	return base.BlendLab(edge, amount).Clamped().Hex()
}

func DefaultOptions() Options {
	return Options{
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		CellStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		RangeStyle:    lipgloss.NewStyle().Background(lipgloss.Color(tint(0.25))),
		HoverStyle:    lipgloss.NewStyle().Background(lipgloss.Color(tint(0.4))).Italic(true),
		EdgeStyle:     lipgloss.NewStyle().Background(lipgloss.Color(edgeColor)).Foreground(lipgloss.Color("0")),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		CursorStyle:   lipgloss.NewStyle().Reverse(true),
		DisabledStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Strikethrough(true),
		ShowHeader:    true,
	}
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, 1, -1).Day()
}

// Title returns the heading of the panel showing view.
func Title(view time.Time, p rangevalue.Picker) string {
	switch p {
	case rangevalue.PickerMonth, rangevalue.PickerQuarter:
		return fmt.Sprintf("%d", view.Year())
	case rangevalue.PickerYear:
		first := view.Year() - view.Year()%10
		return fmt.Sprintf("%d-%d", first, first+9)
	}
	return view.Format("January 2006")
}

// Rows lays out the cells of the panel showing view. Day grids start on
// Sunday and pad with zero cells outside the month.
func Rows(view time.Time, sel Selection) [][]Cell {
	switch sel.Picker {
	case rangevalue.PickerMonth:
		return gridOf(sel, 3, 12, func(i int) (time.Time, string) {
			d := time.Date(view.Year(), time.Month(i+1), 1, 0, 0, 0, 0, view.Location())
			return d, d.Format("Jan")
		})
	case rangevalue.PickerQuarter:
		return gridOf(sel, 4, 4, func(i int) (time.Time, string) {
			d := time.Date(view.Year(), time.Month(i*3+1), 1, 0, 0, 0, 0, view.Location())
			return d, fmt.Sprintf("Q%d", i+1)
		})
	case rangevalue.PickerYear:
		first := view.Year() - view.Year()%10
		return gridOf(sel, 4, 10, func(i int) (time.Time, string) {
			d := time.Date(first+i, time.January, 1, 0, 0, 0, 0, view.Location())
			return d, fmt.Sprintf("%d", first+i)
		})
	}
	return dayRows(view, sel)
}

func gridOf(sel Selection, perRow, count int, at func(int) (time.Time, string)) [][]Cell {
	var rows [][]Cell
	var row []Cell
	for i := 0; i < count; i++ {
		d, label := at(i)
		row = append(row, describe(d, label, sel))
		if len(row) == perRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

func dayRows(view time.Time, sel Selection) [][]Cell {
	first := time.Date(view.Year(), view.Month(), 1, 0, 0, 0, 0, view.Location())
	daysInMonth := DaysIn(view)
	startOffset := int(first.Weekday())
	rowsCount := (startOffset + daysInMonth + 6) / 7

	rows := make([][]Cell, 0, rowsCount)
	for row := 0; row < rowsCount; row++ {
		cells := make([]Cell, 0, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, Cell{})
				continue
			}
			d := first.AddDate(0, 0, day-1)
			cells = append(cells, describe(d, fmt.Sprintf("%2d", day), sel))
		}
		rows = append(rows, cells)
	}
	return rows
}

func describe(d time.Time, label string, sel Selection) Cell {
	same := unitMatcher(sel.Picker)
	c := Cell{Date: d, Label: label}
	start, end := sel.Range.Start(), sel.Range.End()
	c.IsStart = !start.IsZero() && same(d, start)
	c.IsEnd = !end.IsZero() && same(d, end)
	c.InRange = between(d, sel.Range, same)
	if !sel.Hover.IsEmpty() {
		c.InHover = between(d, sel.Hover, same)
	}
	c.IsToday = !sel.Now.IsZero() && same(d, sel.Now)
	c.IsCursor = !sel.Cursor.IsZero() && same(d, sel.Cursor)
	c.IsDisabled = sel.Disabled != nil && sel.Disabled(d)
	return c
}

func between(d time.Time, v rangevalue.Value, same func(a, b time.Time) bool) bool {
	start, end := v.Start(), v.End()
	if start.IsZero() || end.IsZero() {
		return false
	}
	if start.After(end) {
		start, end = end, start
	}
	if same(d, start) || same(d, end) {
		return true
	}
	return d.After(start) && d.Before(end)
}

func unitMatcher(p rangevalue.Picker) func(a, b time.Time) bool {
	switch p {
	case rangevalue.PickerWeek:
		return rangevalue.SameWeek
	case rangevalue.PickerMonth:
		return func(a, b time.Time) bool {
			b = b.In(a.Location())
			return a.Year() == b.Year() && a.Month() == b.Month()
		}
	case rangevalue.PickerQuarter:
		return rangevalue.SameQuarter
	case rangevalue.PickerYear:
		return func(a, b time.Time) bool { return a.Year() == b.In(a.Location()).Year() }
	}
	return rangevalue.SameDay
}

// Render produces the panel showing view as a multi-line string.
func Render(view time.Time, sel Selection, opts Options) string {
	if view.IsZero() {
		return ""
	}
	var lines []string
	lines = append(lines, opts.HeaderStyle.Render(Title(view, sel.Picker)))
	if opts.ShowHeader && (sel.Picker == rangevalue.PickerDate || sel.Picker == rangevalue.PickerWeek) {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}
	for _, row := range Rows(view, sel) {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, renderCell(c, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func renderCell(c Cell, opts Options) string {
	if c.Date.IsZero() {
		return opts.EmptyStyle.Render("  ")
	}
	style := opts.CellStyle
	switch {
	case c.IsDisabled:
		style = opts.DisabledStyle
	case c.IsStart || c.IsEnd:
		style = opts.EdgeStyle
	case c.InHover:
		style = opts.HoverStyle
	case c.InRange:
		style = opts.RangeStyle
	}
	if c.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if c.IsCursor {
		style = style.Inherit(opts.CursorStyle)
	}
	return style.Render(c.Label)
}

// Column indexes of a time panel.
const (
	ColumnHour = iota
	ColumnMinute
	ColumnSecond
)

// RenderTime renders the hour, minute and second columns of a time panel as a
// window of rows around the chosen value. An exhausted panel renders inert.
func RenderTime(panel rangepicker.TimePanel, cursor [3]int, column int, opts Options) string {
	cols := [][]timeunit.Unit{panel.Hours, panel.Minutes, panel.Seconds}
	chosen := [3]int{panel.Hour, panel.Minute, panel.Second}

	const window = 5
	lines := []string{opts.HeaderStyle.Render("HH mm ss")}
	for r := -window / 2; r <= window/2; r++ {
		cells := make([]string, 0, 3)
		for i, units := range cols {
			cells = append(cells, timeCell(units, cursor[i]+r, chosen[i], panel.Disabled, i == column && r == 0, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func timeCell(units []timeunit.Unit, idx, chosen int, inert, focused bool, opts Options) string {
	if idx < 0 || idx >= len(units) {
		return opts.EmptyStyle.Render("  ")
	}
	u := units[idx]
	style := opts.CellStyle
	switch {
	case inert || u.Disabled:
		style = opts.DisabledStyle
	case u.Value == chosen:
		style = opts.EdgeStyle
	}
	if focused && !inert {
		style = style.Inherit(opts.CursorStyle)
	}
	return style.Render(u.Label)
}
