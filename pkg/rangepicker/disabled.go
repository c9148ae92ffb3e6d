package rangepicker

import (
	"time"

	"tableflip.dev/rangepick/pkg/rangevalue"
	"tableflip.dev/rangepick/pkg/timeunit"
)

// DisabledTest returns the date-level predicate rejecting candidates for
// endpoint e under the current state: the endpoint's disabled flag, the
// caller's DisabledDate and the order against the other endpoint. The clock of
// the candidate is not consulted, see DisabledTimeTest. The predicate is a
// snapshot: fetch a new one after the controller changes.
func (c *Controller) DisabledTest(e rangevalue.Endpoint) func(time.Time) bool {
	whole := c.opts.Disabled[e]
	disabledDate := c.opts.DisabledDate
	picker := c.opts.Picker
	other := c.selected.Get(e.Other())

	return func(candidate time.Time) bool {
		if whole {
			return true
		}
		if disabledDate != nil && disabledDate(candidate) {
			return true
		}
		if picker == rangevalue.PickerTime || other.IsZero() {
			return false
		}
		if e == rangevalue.Start {
			return rangevalue.OutOfOrder(picker, candidate, other)
		}
		return rangevalue.OutOfOrder(picker, other, candidate)
	}
}

// DisabledTimeTest returns the predicate rejecting a candidate whose clock
// falls on a disabled hour, minute or second. Minutes are filtered by the
// candidate's hour and seconds by its hour and minute. It accepts everything
// when the picker carries no time.
func (c *Controller) DisabledTimeTest() func(time.Time) bool {
	if !c.timeBearing() {
		return func(time.Time) bool { return false }
	}
	hours, minutes, seconds := c.opts.DisabledHours, c.opts.DisabledMinutes, c.opts.DisabledSeconds

	return func(candidate time.Time) bool {
		h, m, s := candidate.Clock()
		if hours != nil && timeunit.Contains(hours(), h) {
			return true
		}
		if minutes != nil && timeunit.Contains(minutes(h), m) {
			return true
		}
		return seconds != nil && timeunit.Contains(seconds(h, m), s)
	}
}

// selectable reports whether candidate passes both the date-level and the
// time-level checks for endpoint e.
func (c *Controller) selectable(e rangevalue.Endpoint, candidate time.Time) bool {
	return !c.DisabledTest(e)(candidate) && !c.DisabledTimeTest()(candidate)
}
