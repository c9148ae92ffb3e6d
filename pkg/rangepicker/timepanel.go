package rangepicker

import "tableflip.dev/rangepick/pkg/timeunit"

// TimePanel is the time-of-day selector for the active endpoint. Hour,
// Minute and Second are -1 when the endpoint has no value yet.
type TimePanel struct {
	Hours   []timeunit.Unit
	Minutes []timeunit.Unit
	Seconds []timeunit.Unit

	Hour   int
	Minute int
	Second int

	// Disabled is set when some column has nothing left to choose; the panel
	// should render inert.
	Disabled bool
}

// TimePanel builds the time columns for the active endpoint. The second
// result is false when the picker carries no time of day.
func (c *Controller) TimePanel() (TimePanel, bool) {
	if !c.timeBearing() {
		return TimePanel{}, false
	}
	p := TimePanel{Hour: -1, Minute: -1, Second: -1}
	if v := c.selected.Get(c.active); !v.IsZero() {
		p.Hour, p.Minute, p.Second = v.Clock()
	}

	var hours, minutes, seconds []int
	if c.opts.DisabledHours != nil {
		hours = c.opts.DisabledHours()
	}
	if c.opts.DisabledMinutes != nil {
		minutes = c.opts.DisabledMinutes(p.Hour)
	}
	if c.opts.DisabledSeconds != nil {
		seconds = c.opts.DisabledSeconds(p.Hour, p.Minute)
	}
	p.Hours = timeunit.Generate(0, 23, c.opts.HourStep, hours)
	p.Minutes = timeunit.Generate(0, 59, c.opts.MinuteStep, minutes)
	p.Seconds = timeunit.Generate(0, 59, c.opts.SecondStep, seconds)
	p.Disabled = timeunit.Exhausted(p.Hours) || timeunit.Exhausted(p.Minutes) || timeunit.Exhausted(p.Seconds)
	return p, true
}
