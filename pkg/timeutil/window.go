package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)

type unitKind int

const (
	unitYear unitKind = iota
	unitMonth
	unitWeek
	unitDay
	unitClock
)

type unit struct {
	kind  unitKind
	clock time.Duration
}

var unitMap = map[string]unit{
	"y":       {kind: unitYear},
	"yr":      {kind: unitYear},
	"yrs":     {kind: unitYear},
	"year":    {kind: unitYear},
	"years":   {kind: unitYear},
	"mo":      {kind: unitMonth},
	"mon":     {kind: unitMonth},
	"month":   {kind: unitMonth},
	"months":  {kind: unitMonth},
	"w":       {kind: unitWeek},
	"wk":      {kind: unitWeek},
	"wks":     {kind: unitWeek},
	"week":    {kind: unitWeek},
	"weeks":   {kind: unitWeek},
	"d":       {kind: unitDay},
	"day":     {kind: unitDay},
	"days":    {kind: unitDay},
	"h":       {kind: unitClock, clock: time.Hour},
	"hr":      {kind: unitClock, clock: time.Hour},
	"hrs":     {kind: unitClock, clock: time.Hour},
	"hour":    {kind: unitClock, clock: time.Hour},
	"hours":   {kind: unitClock, clock: time.Hour},
	"m":       {kind: unitClock, clock: time.Minute},
	"min":     {kind: unitClock, clock: time.Minute},
	"mins":    {kind: unitClock, clock: time.Minute},
	"minute":  {kind: unitClock, clock: time.Minute},
	"minutes": {kind: unitClock, clock: time.Minute},
	"s":       {kind: unitClock, clock: time.Second},
	"sec":     {kind: unitClock, clock: time.Second},
	"secs":    {kind: unitClock, clock: time.Second},
	"second":  {kind: unitClock, clock: time.Second},
	"seconds": {kind: unitClock, clock: time.Second},
}

// Window is a calendar-aware span such as "1mo2w". Years, months, weeks and
// days move along the calendar; the clock part is a plain duration.
type Window struct {
	Years  int
	Months int
	Weeks  int
	Days   int
	Clock  time.Duration
}

// ParseWindow parses a human-friendly window string (for example "1w", "3d",
// "1y6mo" or "1w2d6h"). Note that "m" means minutes; months are "mo".
func ParseWindow(input string) (Window, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return Window{}, fmt.Errorf("empty window")
	}

	var w Window
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return Window{}, fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return Window{}, fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		u, ok := unitMap[matches[2]]
		if !ok {
			return Window{}, fmt.Errorf("unsupported window unit %q", matches[2])
		}
		switch u.kind {
		case unitYear:
			w.Years += value
		case unitMonth:
			w.Months += value
		case unitWeek:
			w.Weeks += value
		case unitDay:
			w.Days += value
		case unitClock:
			w.Clock += time.Duration(value) * u.clock
		}
		remaining = remaining[len(matches[0]):]
	}

	if w.IsZero() {
		return Window{}, fmt.Errorf("window must be greater than zero")
	}
	return w, nil
}

// IsZero reports whether the window spans no time.
func (w Window) IsZero() bool {
	return w.Years == 0 && w.Months == 0 && w.Weeks == 0 && w.Days == 0 && w.Clock == 0
}

// Before returns t moved back by the window.
func (w Window) Before(t time.Time) time.Time {
	return t.AddDate(-w.Years, -w.Months, -(w.Weeks*7 + w.Days)).Add(-w.Clock)
}

// String renders the window in canonical compact form.
func (w Window) String() string {
	if w.IsZero() {
		return "0s"
	}
	var parts []string
	for _, p := range []struct {
		n     int
		label string
	}{{w.Years, "y"}, {w.Months, "mo"}, {w.Weeks, "w"}, {w.Days, "d"}} {
		if p.n > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", p.n, p.label))
		}
	}
	remaining := w.Clock
	for _, u := range []struct {
		label string
		value time.Duration
	}{{"h", time.Hour}, {"m", time.Minute}, {"s", time.Second}} {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	return strings.Join(parts, "")
}
