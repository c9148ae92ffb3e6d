package rangepicker

import (
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/rangepick/pkg/dateformat"
	"tableflip.dev/rangepick/pkg/rangevalue"
)

// Origin describes how a candidate date was chosen.
type Origin int

const (
	// OriginKey is keyboard navigation inside a panel.
	OriginKey Origin = iota
	// OriginPointer is a click on a panel cell.
	OriginPointer
	// OriginSubmit is an explicit confirmation (Enter on a cell, OK).
	OriginSubmit
)

func (o Origin) String() string {
	switch o {
	case OriginKey:
		return "key"
	case OriginPointer:
		return "pointer"
	default:
		return "submit"
	}
}

// PanelMode is the granularity a single calendar panel currently shows.
type PanelMode string

const (
	PanelTime    PanelMode = "time"
	PanelDate    PanelMode = "date"
	PanelWeek    PanelMode = "week"
	PanelMonth   PanelMode = "month"
	PanelQuarter PanelMode = "quarter"
	PanelYear    PanelMode = "year"
	PanelDecade  PanelMode = "decade"
)

// RangeInfo tells calendar-change listeners which endpoint produced a value.
type RangeInfo struct {
	Range rangevalue.Endpoint
}

// Handlers are the notifications a Controller emits. Every field is optional.
type Handlers struct {
	// OnChange fires when a new value is committed.
	OnChange func(v rangevalue.Value, text [2]string)
	// OnCalendarChange fires on every repaired intermediate value.
	OnCalendarChange func(v rangevalue.Value, text [2]string, info RangeInfo)
	// OnOk fires when the user confirms a value or picks a preset.
	OnOk func(v rangevalue.Value)
	// OnOpenChange fires whenever the merged open state flips.
	OnOpenChange func(open bool)
	// OnPanelChange fires when an endpoint's panel mode changes.
	OnPanelChange func(v rangevalue.Value, modes [2]PanelMode)
	// OnFocus asks the host to move input focus to an endpoint's text field.
	OnFocus func(e rangevalue.Endpoint)
}

// Options configure a Controller.
type Options struct {
	Picker     rangevalue.Picker
	ShowTime   bool
	Use12Hours bool
	// Format overrides the pattern from dateformat.Default.
	Format string

	Disabled   rangevalue.Pair
	AllowEmpty rangevalue.Pair
	// Order reorders inverted values in time-bearing modes instead of
	// leaving them as entered.
	Order bool

	DisabledDate    func(time.Time) bool
	DisabledHours   func() []int
	DisabledMinutes func(hour int) []int
	DisabledSeconds func(hour, minute int) []int

	HourStep   int
	MinuteStep int
	SecondStep int

	DefaultValue       rangevalue.Value
	DefaultPickerValue rangevalue.Value
	Presets            []Preset
	// YearItemNumber is the number of years a year panel spans.
	YearItemNumber int

	// Now is the clock used for view dates and disabled-slot filling.
	Now    func() time.Time
	Logger *zerolog.Logger

	Handlers
}

func (o Options) withDefaults() Options {
	if o.Picker == "" {
		o.Picker = rangevalue.PickerDate
	}
	if o.Format == "" {
		o.Format = dateformat.Default(o.Picker, o.ShowTime, o.Use12Hours)
	}
	if o.HourStep < 1 {
		o.HourStep = 1
	}
	if o.MinuteStep < 1 {
		o.MinuteStep = 1
	}
	if o.SecondStep < 1 {
		o.SecondStep = 1
	}
	if o.YearItemNumber < 1 {
		o.YearItemNumber = 10
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	return o
}
