package printers

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/rangepick/pkg/dateformat"
	"tableflip.dev/rangepick/pkg/rangevalue"
	"tableflip.dev/rangepick/pkg/store"
)

// PrettyPrint renders ranges and presets for humans.
type PrettyPrint struct {
	Format string
	Out    io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Range prints a single range as `start → end`, marking open slots.
func (pp *PrettyPrint) Range(v rangevalue.Value) {
	b := color.New(color.Bold)
	f := color.New(color.Faint, color.Italic)

	for i, e := range []rangevalue.Endpoint{rangevalue.Start, rangevalue.End} {
		if i > 0 {
			_, _ = f.Fprint(pp.out(), " → ")
		}
		if !v.Has(e) {
			_, _ = f.Fprint(pp.out(), "open")
			continue
		}
		_, _ = b.Fprint(pp.out(), dateformat.Format(v.Get(e), pp.Format))
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Presets prints stored presets as a table, resolving relative windows
// against now.
func (pp *PrettyPrint) Presets(records []store.PresetRecord, now time.Time) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Label"), bold.Sprint("Kind"), bold.Sprint("Start"), bold.Sprint("End"))
	for _, r := range records {
		kind := "fixed"
		if r.Window != "" {
			kind = faint.Sprint("last " + r.Window)
		}
		span := r.Preset(func() time.Time { return now }).Range()
		start, end := "", ""
		if len(span) == 2 {
			start = dateformat.Format(span[0], pp.Format)
			end = dateformat.Format(span[1], pp.Format)
		}
		tbl.AddRow(r.Label, kind, start, end)
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
}
