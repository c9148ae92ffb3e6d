// Package resolve turns typed endpoint text or a preset label into a
// normalized range without opening the interactive picker.
package resolve

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"

	"tableflip.dev/rangepick/pkg/dateformat"
	"tableflip.dev/rangepick/pkg/printers"
	"tableflip.dev/rangepick/pkg/rangepicker"
	"tableflip.dev/rangepick/pkg/rangevalue"
	"tableflip.dev/rangepick/pkg/store"
)

// ErrOutOfOrder is returned when end falls before start in a mode that
// does not reorder.
var ErrOutOfOrder = errors.New("end is before start")

// Resolve parses Start and End, or looks up Preset, and prints the result.
type Resolve struct {
	Options rangepicker.Options
	Start   string
	End     string
	Preset  string

	// Presets is required when Preset is set.
	Presets store.PresetStore

	JSON     bool
	Calendar bool
	Out      io.Writer
}

// Do resolves the range and prints it.
func (r *Resolve) Do(ctx context.Context) error {
	v, text, err := r.Resolve(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Format: r.format(), Out: r.Out}
	if r.JSON {
		return pp.JSON(v, text)
	}
	pp.Range(v)
	if r.Calendar {
		pp.NewLine()
		pp.Months(v)
	}
	return nil
}

// Resolve returns the committed value and its display text.
func (r *Resolve) Resolve(ctx context.Context) (rangevalue.Value, [2]string, error) {
	var text [2]string
	opts := r.Options
	ctrl := rangepicker.New(opts)
	defer ctrl.Dispose()

	if r.Preset != "" {
		if r.Start != "" || r.End != "" {
			return rangevalue.Value{}, text, errors.New("a preset can not be combined with start or end")
		}
		if r.Presets == nil {
			return rangevalue.Value{}, text, errors.New("can not resolve preset, no preset store")
		}
		records, err := r.Presets.List(ctx)
		if err != nil {
			return rangevalue.Value{}, text, errors.Wrap(err, "listing presets")
		}
		ctrl.SetPresets(store.Presets(records, opts.Now))
		if !ctrl.ApplyPreset(r.Preset) {
			return rangevalue.Value{}, text, errors.Wrapf(store.ErrPresetNotFound, "%q", r.Preset)
		}
		ctrl.Flush()
		return ctrl.Value(), committedText(ctrl), nil
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	parse := dateformat.Parse
	if ctrl.Picker() == rangevalue.PickerDate {
		// Reject dates like 2023-02-30 instead of rolling them over.
		parse = dateformat.ParseStrict
	}
	var v rangevalue.Value
	for e, s := range [2]string{r.Start, r.End} {
		if s == "" {
			continue
		}
		t, ok := parse(s, ctrl.Format(), now())
		if !ok {
			return rangevalue.Value{}, text, errors.Errorf("%s %q does not match %q", rangevalue.Endpoint(e), s, ctrl.Format())
		}
		if opts.DisabledDate != nil && opts.DisabledDate(t) {
			return rangevalue.Value{}, text, errors.Errorf("%s %q is not selectable", rangevalue.Endpoint(e), s)
		}
		v[e] = t
	}
	for _, e := range [2]rangevalue.Endpoint{rangevalue.Start, rangevalue.End} {
		if !rangevalue.CanCommitSlot(v.Get(e), e, ctrl.Disabled(), ctrl.AllowEmpty()) {
			return rangevalue.Value{}, text, errors.Errorf("%s is required", e)
		}
	}
	if _, dropped := rangevalue.Normalize(ctrl.Picker(), opts.ShowTime, opts.Order, v); dropped {
		return rangevalue.Value{}, text, errors.Wrapf(ErrOutOfOrder, "%s > %s", r.Start, r.End)
	}

	ctrl.SetValue(v)
	return ctrl.Value(), committedText(ctrl), nil
}

// committedText formats the committed value. The display text of a disabled
// endpoint shows the placeholder date it is filled with, not what was resolved.
func committedText(ctrl *rangepicker.Controller) [2]string {
	v := ctrl.Value()
	return [2]string{
		dateformat.Format(v.Start(), ctrl.Format()),
		dateformat.Format(v.End(), ctrl.Format()),
	}
}

func (r *Resolve) format() string {
	if r.Options.Format != "" {
		return r.Options.Format
	}
	return dateformat.Default(r.Options.Picker, r.Options.ShowTime, r.Options.Use12Hours)
}
