package rangepicker

import (
	"time"

	"tableflip.dev/rangepick/pkg/rangevalue"
)

// ClosingViewDate moves d by offset panels of picker p: months for day and
// week panels, years for month and quarter panels, year pages for year
// panels. Time panels do not page.
func ClosingViewDate(d time.Time, p rangevalue.Picker, offset, yearItemNumber int) time.Time {
	switch p {
	case rangevalue.PickerDate, rangevalue.PickerWeek:
		return d.AddDate(0, offset, 0)
	case rangevalue.PickerMonth, rangevalue.PickerQuarter:
		return d.AddDate(offset, 0, 0)
	case rangevalue.PickerYear:
		return d.AddDate(offset*yearItemNumber, 0, 0)
	}
	return d
}

// ViewDate returns the date whose panel endpoint e shows.
func (c *Controller) ViewDate(e rangevalue.Endpoint) time.Time {
	if v := c.views[e]; !v.IsZero() {
		return v
	}
	if v := c.committed.Get(e); !v.IsZero() {
		return v
	}
	if v := c.opts.DefaultPickerValue.Get(e); !v.IsZero() {
		return v
	}
	if e == rangevalue.End {
		return ClosingViewDate(c.ViewDate(rangevalue.Start), c.opts.Picker, 1, c.opts.YearItemNumber)
	}
	if v := c.committed.Get(rangevalue.End); !v.IsZero() {
		return ClosingViewDate(v, c.opts.Picker, -1, c.opts.YearItemNumber)
	}
	return c.opts.Now()
}

// SetViewDate pins the panel of endpoint e to d; the zero time unpins it.
func (c *Controller) SetViewDate(e rangevalue.Endpoint, d time.Time) {
	c.views[e] = d
}

// Panels lists the view dates to render for the active endpoint: one for
// time-bearing pickers, otherwise the active view date and the next page.
func (c *Controller) Panels() []time.Time {
	left := c.ViewDate(c.active)
	if c.timeBearing() {
		return []time.Time{left}
	}
	return []time.Time{left, ClosingViewDate(left, c.opts.Picker, 1, c.opts.YearItemNumber)}
}

// PageView moves the panel of endpoint e by offset pages.
func (c *Controller) PageView(e rangevalue.Endpoint, offset int) {
	c.views[e] = ClosingViewDate(c.ViewDate(e), c.opts.Picker, offset, c.opts.YearItemNumber)
}

// Now returns the controller's notion of the current time.
func (c *Controller) Now() time.Time { return c.opts.Now() }
