package rangepicker

import (
	"time"

	"tableflip.dev/rangepick/pkg/dateformat"
	"tableflip.dev/rangepick/pkg/rangevalue"
)

// hoverState is the transient preview shown while the pointer rests on a
// panel cell. It never feeds back into the selected value.
type hoverState struct {
	rng  rangevalue.Value
	text [2]string
}

// HoverEnter previews candidate at the active endpoint.
func (c *Controller) HoverEnter(candidate time.Time) {
	if !c.NeedConfirm() {
		c.hover.rng = c.selected.With(c.active, candidate)
	}
	c.hover.text[c.active] = dateformat.Format(candidate, c.opts.Format)
}

// HoverLeave drops the preview.
func (c *Controller) HoverLeave() {
	c.hover.text[c.active] = ""
	c.hover.rng = rangevalue.Value{}
}

// HoverRange returns the previewed range; empty when nothing is hovered.
func (c *Controller) HoverRange() rangevalue.Value {
	return c.hover.rng
}

// HoverText returns the preview string for endpoint e's input, or "".
func (c *Controller) HoverText(e rangevalue.Endpoint) string {
	return c.hover.text[e]
}

// ClickOutside forgets panel navigation and the hover preview.
func (c *Controller) ClickOutside() {
	c.views = [2]time.Time{}
	c.hover.rng = rangevalue.Value{}
}
