package rangepicker

import (
	"time"

	"tableflip.dev/rangepick/pkg/dateformat"
	"tableflip.dev/rangepick/pkg/rangevalue"
)

// triggerChange runs a candidate produced by endpoint source through repair,
// notification, commit and focus advance.
func (c *Controller) triggerChange(candidate rangevalue.Value, source rangevalue.Endpoint) {
	values := c.repair(candidate, source)

	c.setSelected(values)
	text := c.formatPair(values)
	if c.opts.OnCalendarChange != nil {
		c.opts.OnCalendarChange(values, text, RangeInfo{Range: source})
	}

	if c.canCommit(values) {
		prev := c.committed
		c.committed = c.normalize(values)
		if !prev.Equal(c.committed) && c.opts.OnChange != nil {
			c.opts.OnChange(c.committed, c.formatPair(c.committed))
		}
	}

	c.advance(values, source)
}

// repair fixes an inverted candidate. Pickers compared by day, week or
// quarter clear the slot opposite source when the two dates fall in
// different units; the time picker swaps them when ordering is enabled.
func (c *Controller) repair(v rangevalue.Value, source rangevalue.Endpoint) rangevalue.Value {
	start, end := v.Start(), v.End()
	if !rangevalue.IsAfter(start, end) {
		return v
	}
	picker := c.opts.Picker
	if picker != rangevalue.PickerTime && rangevalue.OutOfOrder(picker, start, end) {
		c.log.Warn().
			Time("start", start).
			Time("end", end).
			Str("picker", string(picker)).
			Stringer("source", source).
			Msg("start date is after end date, clearing opposite endpoint")

		v = v.With(source.Other(), time.Time{})
		var opened [2]bool
		opened[source] = true
		c.record.replace(opened)
		return v
	}
	if picker == rangevalue.PickerTime && c.opts.Order {
		return rangevalue.Reorder(v)
	}
	return v
}

// canCommit reports whether every slot of v may be committed.
func (c *Controller) canCommit(v rangevalue.Value) bool {
	for _, e := range endpoints {
		if !rangevalue.CanCommitSlot(v.Get(e), e, c.opts.Disabled, c.opts.AllowEmpty) {
			return false
		}
	}
	return true
}

// advance moves the picker to the other endpoint when it still needs a value,
// otherwise closes the source endpoint.
func (c *Controller) advance(v rangevalue.Value, source rangevalue.Endpoint) {
	next := source.Other()
	if !c.opts.Disabled[next] &&
		next != c.active &&
		(!c.record.opened[next] || !v.Has(next)) &&
		v.Has(source) {
		c.OpenAndFocus(next)
		return
	}
	c.RequestClose(source)
}

func (c *Controller) formatPair(v rangevalue.Value) [2]string {
	return [2]string{
		dateformat.Format(v.Start(), c.opts.Format),
		dateformat.Format(v.End(), c.opts.Format),
	}
}
