package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/rangepick/pkg/rangevalue"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Months prints a small calendar for every month the range touches, with
// the days inside the range highlighted. Open ranges print the month of
// their present endpoint only.
func (pp *PrettyPrint) Months(v rangevalue.Value) {
	start, end := v.Start(), v.End()
	switch {
	case start.IsZero() && end.IsZero():
		return
	case start.IsZero():
		start = end
	case end.IsZero():
		end = start
	}
	if start.After(end) {
		start, end = end, start
	}

	for m := FirstOfMonth(start); !m.After(end); m = NextMonth(m) {
		pp.PrintMonth(m, v)
	}
}

// PrintMonth prints the month containing then, highlighting days in v.
func (pp *PrettyPrint) PrintMonth(then time.Time, v rangevalue.Value) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.out(), "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(pp.out(), "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	edge := color.New(color.Bold, color.FgHiWhite, color.Underline)

	days := DaysIn(then)
	for i := 0; i < days; i++ {
		day := time.Date(then.Year(), then.Month(), i+1, 0, 0, 0, 0, then.Location())
		printer := l1
		switch {
		case (v.Has(rangevalue.Start) && rangevalue.SameDay(day, v.Start())) ||
			(v.Has(rangevalue.End) && rangevalue.SameDay(day, v.End())):
			printer = edge
		case within(day, v):
			printer = l2
		}
		_, _ = printer.Fprintf(pp.out(), "%2d ", i+1)

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(pp.out(), "\n")
		}
	}
	_, _ = fmt.Fprint(pp.out(), "\n\n")
}

func within(day time.Time, v rangevalue.Value) bool {
	if !v.Has(rangevalue.Start) || !v.Has(rangevalue.End) {
		return false
	}
	start, end := v.Start(), v.End()
	if start.After(end) {
		start, end = end, start
	}
	return day.After(start) && day.Before(end)
}

func FirstOfMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, then.Location())
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 0, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, then.Location()).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, then.Location()).Weekday()
}
