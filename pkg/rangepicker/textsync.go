package rangepicker

import (
	"unicode/utf8"

	"tableflip.dev/rangepick/pkg/dateformat"
	"tableflip.dev/rangepick/pkg/rangevalue"
)

// textField mirrors one endpoint of the selected value as editable text.
// text may run ahead of valueText while the user is typing.
type textField struct {
	text      string
	valueText string
}

// setValueText records the text derived from the selected value. The display
// text follows only when the derived text actually changed, so partial input
// survives unrelated state updates.
func (f *textField) setValueText(s string) {
	if s == f.valueText {
		return
	}
	f.valueText = s
	f.text = s
}

func (f *textField) reset() {
	f.text = f.valueText
}

// Text returns the display text of endpoint e.
func (c *Controller) Text(e rangevalue.Endpoint) string {
	return c.fields[e].text
}

// TypeText replaces the display text of endpoint e, as a keystroke in its
// input would. Complete text is parsed into the selected value; partial text
// is held until it is complete or the picker closes.
func (c *Controller) TypeText(e rangevalue.Endpoint, text string) {
	if c.opts.Disabled[e] {
		return
	}
	prev := c.fields[e].text
	c.fields[e].text = text
	c.hover.text[e] = ""

	if text == "" {
		other := c.selected.Get(e.Other())
		if other.IsZero() {
			return
		}
		c.setSelected(c.selected.With(e, other))
		c.views[e] = other
		return
	}

	if utf8.RuneCountInString(text) != dateformat.Width(c.opts.Format) {
		return
	}

	ref := c.selected.Get(e)
	if ref.IsZero() {
		ref = c.opts.Now()
	}
	parsed, ok := dateformat.Parse(text, c.opts.Format, ref)
	if !ok {
		return
	}
	if !c.selectable(e, parsed) {
		c.fields[e].text = prev
		return
	}
	if c.opts.Picker == rangevalue.PickerYear {
		if _, ok := dateformat.ParseStrict(text, c.opts.Format, ref); !ok {
			return
		}
	}
	c.setSelected(c.selected.With(e, parsed))
	c.views[e] = parsed
}

// SubmitText confirms the text of endpoint e (Enter in its input). It commits
// the selected value when the endpoint holds a date.
func (c *Controller) SubmitText(e rangevalue.Endpoint) {
	if !c.selected.Has(e) {
		return
	}
	c.triggerChange(c.selected, e)
}

// ResetText restores the display text of endpoint e from the selected value.
func (c *Controller) ResetText(e rangevalue.Endpoint) {
	c.fields[e].reset()
}

func (c *Controller) syncTexts() {
	for _, e := range endpoints {
		c.fields[e].setValueText(dateformat.Format(c.selected.Get(e), c.opts.Format))
	}
}
