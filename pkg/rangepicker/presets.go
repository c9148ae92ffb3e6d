package rangepicker

import (
	"time"

	"tableflip.dev/rangepick/pkg/rangevalue"
)

// Preset is a named quick-select range. Range is evaluated each time the
// presets are listed so relative ranges ("last 7 days") stay current.
type Preset struct {
	Label string
	Range func() []time.Time
}

// StaticPreset returns a Preset that always yields start..end.
func StaticPreset(label string, start, end time.Time) Preset {
	return Preset{Label: label, Range: func() []time.Time { return []time.Time{start, end} }}
}

// ResolvedPreset is a Preset evaluated against the current clock.
type ResolvedPreset struct {
	Label string
	Value rangevalue.Value
}

// Presets returns the offered quick-select ranges. Entries that do not
// resolve to exactly two dates are left out.
func (c *Controller) Presets() []ResolvedPreset {
	out := make([]ResolvedPreset, 0, len(c.opts.Presets))
	for _, p := range c.opts.Presets {
		if p.Range == nil {
			continue
		}
		r := p.Range()
		if len(r) != 2 || r[0].IsZero() || r[1].IsZero() {
			c.log.Debug().Str("preset", p.Label).Int("dates", len(r)).Msg("skipping malformed preset")
			continue
		}
		out = append(out, ResolvedPreset{Label: p.Label, Value: rangevalue.New(r[0], r[1])})
	}
	return out
}

// SetPresets replaces the offered quick-select ranges.
func (c *Controller) SetPresets(presets []Preset) {
	c.opts.Presets = append([]Preset(nil), presets...)
}

// ApplyPreset commits the preset labelled label, confirms it and closes the
// picker. It reports false when no such preset is offered.
func (c *Controller) ApplyPreset(label string) bool {
	for _, p := range c.Presets() {
		if p.Label != label {
			continue
		}
		c.triggerChange(p.Value, rangevalue.End)
		if c.opts.OnOk != nil {
			c.opts.OnOk(p.Value)
		}
		c.RequestClose(c.Active())
		return true
	}
	return false
}
