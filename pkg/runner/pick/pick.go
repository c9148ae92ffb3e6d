// Package pick runs the interactive range picker and prints what was chosen.
package pick

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"tableflip.dev/rangepick/pkg/dateformat"
	"tableflip.dev/rangepick/pkg/printers"
	"tableflip.dev/rangepick/pkg/tui/app"
)

// ErrCancelled is returned when the picker exits without a confirmed range.
var ErrCancelled = errors.New("no range picked")

// Pick opens the TUI.
type Pick struct {
	Options  teaui.Options
	JSON     bool
	Calendar bool
	Out      io.Writer

	// run is swapped in tests.
	run func(context.Context, teaui.Options) (teaui.Result, error)
}

// Do runs the picker until the user confirms a range or quits.
func (p *Pick) Do(ctx context.Context) error {
	run := p.run
	if run == nil {
		run = teaui.Run
	}
	res, err := run(ctx, p.Options)
	if err != nil {
		return errors.Wrap(err, "running picker")
	}
	if !res.Confirmed {
		return ErrCancelled
	}

	opts := p.Options.Picker
	format := opts.Format
	if format == "" {
		format = dateformat.Default(opts.Picker, opts.ShowTime, opts.Use12Hours)
	}
	pp := printers.PrettyPrint{Format: format, Out: p.Out}
	if p.JSON {
		return pp.JSON(res.Value, res.Text)
	}
	pp.Range(res.Value)
	if p.Calendar {
		pp.NewLine()
		pp.Months(res.Value)
	}
	return nil
}
