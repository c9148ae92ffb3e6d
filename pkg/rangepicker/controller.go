// Package rangepicker implements the interaction core of a range date/time
// picker: two linked endpoint values, their text inputs, the calendar panels
// and the active-endpoint cursor, kept consistent under typing, selection,
// hovering and programmatic updates.
//
// A Controller is driven from a single event loop and is not safe for
// concurrent use. Work it defers (focus moves, open-record expiry) runs when
// the host calls Flush after the current event has been handled.
package rangepicker

import (
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/rangepick/pkg/rangevalue"
)

var endpoints = [2]rangevalue.Endpoint{rangevalue.Start, rangevalue.End}

// openRecord remembers which endpoints the user opened during the current
// open/close cycle. gen changes whenever the record is replaced so deferred
// expiry can tell it has been superseded.
type openRecord struct {
	opened [2]bool
	gen    uint64
}

func (r *openRecord) replace(opened [2]bool) {
	r.opened = opened
	r.gen++
}

// Controller owns the state of one range picker.
type Controller struct {
	opts Options
	log  zerolog.Logger

	committed rangevalue.Value
	selected  rangevalue.Value

	active rangevalue.Endpoint
	open   bool
	record openRecord
	modes  [2]PanelMode

	fields [2]textField
	hover  hoverState
	views  [2]time.Time

	tasks     deferredQueue
	closeTask taskID
}

// New creates a Controller in the closed state with endpoint 0 active.
func New(opts Options) *Controller {
	opts = opts.withDefaults()
	c := &Controller{
		opts:  opts,
		log:   opts.Logger.With().Str("component", "rangepicker").Logger(),
		modes: [2]PanelMode{PanelMode(opts.Picker), PanelMode(opts.Picker)},
	}
	c.committed = c.normalize(opts.DefaultValue)
	c.setSelected(c.committed)
	return c
}

// Value returns the committed value.
func (c *Controller) Value() rangevalue.Value { return c.committed }

// Selected returns the in-progress value shown in the panels.
func (c *Controller) Selected() rangevalue.Value { return c.selected }

// Active returns the endpoint receiving input.
func (c *Controller) Active() rangevalue.Endpoint { return c.active }

// Open reports whether the picker panel is shown.
func (c *Controller) Open() bool { return c.open }

// EndpointOpen reports whether endpoint e is the open endpoint.
func (c *Controller) EndpointOpen(e rangevalue.Endpoint) bool {
	return c.open && c.active == e
}

// Opened reports whether endpoint e was opened in the current cycle.
func (c *Controller) Opened(e rangevalue.Endpoint) bool {
	return c.record.opened[e]
}

// Format returns the pattern used for text inputs.
func (c *Controller) Format() string { return c.opts.Format }

// Picker returns the configured picker mode.
func (c *Controller) Picker() rangevalue.Picker { return c.opts.Picker }

// Disabled returns the per-endpoint disabled flags.
func (c *Controller) Disabled() rangevalue.Pair { return c.opts.Disabled }

// AllowEmpty reports which endpoints may stay empty on commit.
func (c *Controller) AllowEmpty() rangevalue.Pair { return c.opts.AllowEmpty }

// Modes returns the panel mode of each endpoint.
func (c *Controller) Modes() [2]PanelMode { return c.modes }

// NeedConfirm reports whether selections wait for an explicit OK.
func (c *Controller) NeedConfirm() bool {
	return c.timeBearing()
}

func (c *Controller) timeBearing() bool {
	return rangevalue.TimeBearing(c.opts.Picker, c.opts.ShowTime)
}

// RequestOpen opens the picker on endpoint e.
func (c *Controller) RequestOpen(e rangevalue.Endpoint) {
	c.tasks.Cancel(c.closeTask)
	c.closeTask = 0
	c.record.opened[e] = true

	wasOpen := c.open
	c.active = e
	c.setOpen(true)
	if !wasOpen {
		c.views[e] = time.Time{}
	}
}

// RequestClose closes the picker if e is the active endpoint. The open
// record is forgotten after the current event unless something replaced it
// in the meantime.
func (c *Controller) RequestClose(e rangevalue.Endpoint) {
	if e != c.active {
		return
	}
	c.setOpen(false)
	c.tasks.Cancel(c.closeTask)
	gen := c.record.gen
	c.closeTask = c.tasks.Defer(func() {
		c.closeTask = 0
		if c.record.gen == gen {
			c.record.replace([2]bool{})
		}
	})
}

// OpenAndFocus opens endpoint e and, once the current event is handled, asks
// the host to focus its input.
func (c *Controller) OpenAndFocus(e rangevalue.Endpoint) {
	c.RequestOpen(e)
	c.tasks.Defer(func() {
		if c.opts.OnFocus != nil {
			c.opts.OnFocus(e)
		}
	})
}

// Select chooses candidate for the active endpoint.
func (c *Controller) Select(candidate time.Time, origin Origin) {
	source := c.active
	values := c.selected.With(source, candidate)
	if origin == OriginSubmit || (origin != OriginKey && !c.NeedConfirm()) {
		c.triggerChange(values, source)
		c.hover.text[source] = ""
		return
	}
	c.setSelected(values)
}

// OKDisabled reports whether OK would be ignored.
func (c *Controller) OKDisabled() bool {
	v := c.selected.Get(c.active)
	if v.IsZero() {
		return true
	}
	return c.opts.DisabledDate != nil && c.opts.DisabledDate(v)
}

// OK confirms the selected value.
func (c *Controller) OK() {
	if !c.selected.Has(c.active) {
		return
	}
	values := c.selected
	c.triggerChange(values, c.active)
	if c.opts.OnOk != nil {
		c.opts.OnOk(values)
	}
}

// SetValue replaces the committed value from outside, as a controlled
// component would.
func (c *Controller) SetValue(v rangevalue.Value) {
	c.committed = c.normalize(v)
	c.setSelected(c.committed)
}

// SetPanelMode switches the panel of endpoint e to mode.
func (c *Controller) SetPanelMode(e rangevalue.Endpoint, mode PanelMode) {
	if c.modes[e] == mode {
		return
	}
	c.modes[e] = mode
	if c.opts.OnPanelChange != nil {
		c.opts.OnPanelChange(c.selected, c.modes)
	}
}

// Pending reports whether deferred work is waiting for Flush.
func (c *Controller) Pending() bool {
	return c.tasks.Pending()
}

// Flush runs deferred work. Hosts call it after each handled event.
func (c *Controller) Flush() int {
	return c.tasks.Flush()
}

// Dispose cancels deferred work; the controller must not be used afterwards.
func (c *Controller) Dispose() {
	c.tasks.Dispose()
	c.closeTask = 0
}

func (c *Controller) setOpen(open bool) {
	if c.opts.Disabled[c.active] {
		open = false
	}
	if open == c.open {
		return
	}
	c.open = open
	if !open {
		c.setSelected(c.committed)
		for _, e := range endpoints {
			c.fields[e].reset()
		}
	}
	if c.opts.OnOpenChange != nil {
		c.opts.OnOpenChange(open)
	}
}

// setSelected stores the in-progress value. Unless both endpoints are
// disabled, a disabled endpoint that may not be empty is filled with now.
func (c *Controller) setSelected(v rangevalue.Value) {
	d := c.opts.Disabled
	if !(d[rangevalue.Start] && d[rangevalue.End]) {
		for _, e := range endpoints {
			if d[e] && !v.Has(e) && !c.opts.AllowEmpty[e] {
				v = v.With(e, c.opts.Now())
			}
		}
	}
	c.selected = v
	c.syncTexts()
}

func (c *Controller) normalize(v rangevalue.Value) rangevalue.Value {
	out, dropped := rangevalue.Normalize(c.opts.Picker, c.opts.ShowTime, c.opts.Order, v)
	if dropped {
		c.log.Warn().
			Time("start", v.Start()).
			Time("end", v.End()).
			Str("picker", string(c.opts.Picker)).
			Msg("start date is after end date, dropping end")
	}
	return out
}
