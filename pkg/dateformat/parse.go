package dateformat

import (
	"strings"
	"time"
	"unicode/utf8"
)

type fields struct {
	year, isoYear, month, day int
	hour, minute, second      int
	quarter, week             int
	pm                        int // -1 unset, 0 AM, 1 PM
	hour12                    bool
	hasDate                   bool
}

// Parse reads text laid out as pattern. Components the pattern does not
// carry come from ref: a time-only pattern keeps ref's calendar day, and
// ref's location is used for the result. Each component must be in its
// natural range, but the combination is not checked: "2023-02-30" rolls
// over into March. Use ParseStrict to reject such dates.
func Parse(text, pattern string, ref time.Time) (time.Time, bool) {
	toks := tokenize(pattern)
	if utf8.RuneCountInString(text) != widthOf(toks) {
		return time.Time{}, false
	}

	f := fields{year: -1, isoYear: -1, month: -1, day: -1, hour: -1, minute: -1, second: -1, quarter: -1, week: -1, pm: -1}
	rest := text
	for _, tok := range toks {
		w := tok.width()
		if tok.kind == tokLiteral {
			if !strings.HasPrefix(rest, tok.literal) {
				return time.Time{}, false
			}
			rest = rest[len(tok.literal):]
			continue
		}
		if len(rest) < w {
			return time.Time{}, false
		}
		chunk := rest[:w]
		rest = rest[w:]

		if tok.kind == tokMeridiem {
			switch strings.ToUpper(chunk) {
			case "AM":
				f.pm = 0
			case "PM":
				f.pm = 1
			default:
				return time.Time{}, false
			}
			continue
		}
		n, ok := digits(chunk)
		if !ok || !assign(&f, tok.kind, n) {
			return time.Time{}, false
		}
	}
	if rest != "" {
		return time.Time{}, false
	}
	return f.build(ref)
}

// ParseStrict is Parse restricted to dates that exist on the calendar: the
// result must render back to exactly text.
func ParseStrict(text, pattern string, ref time.Time) (time.Time, bool) {
	t, ok := Parse(text, pattern, ref)
	if !ok {
		return time.Time{}, false
	}
	if !strings.EqualFold(Format(t, pattern), text) {
		return time.Time{}, false
	}
	return t, true
}

func widthOf(toks []token) int {
	n := 0
	for _, t := range toks {
		n += t.width()
	}
	return n
}

func digits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func assign(f *fields, kind tokenKind, n int) bool {
	in := func(lo, hi int) bool { return n >= lo && n <= hi }
	switch kind {
	case tokYear:
		f.year, f.hasDate = n, true
		return in(1, 9999)
	case tokISOYear:
		f.isoYear, f.hasDate = n, true
		return in(1, 9999)
	case tokMonth:
		f.month, f.hasDate = n, true
		return in(1, 12)
	case tokDay:
		f.day, f.hasDate = n, true
		return in(1, 31)
	case tokQuarter:
		f.quarter, f.hasDate = n, true
		return in(1, 4)
	case tokWeek:
		f.week, f.hasDate = n, true
		return in(1, 53)
	case tokHour24:
		f.hour = n
		return in(0, 23)
	case tokHour12:
		f.hour, f.hour12 = n, true
		return in(1, 12)
	case tokMinute:
		f.minute = n
		return in(0, 59)
	case tokSecond:
		f.second = n
		return in(0, 59)
	}
	return false
}

func (f fields) build(ref time.Time) (time.Time, bool) {
	loc := time.Local
	if !ref.IsZero() {
		loc = ref.Location()
	}

	hour := orZero(f.hour)
	if f.hour12 {
		hour %= 12
		if f.pm == 1 {
			hour += 12
		}
	} else if f.pm == 1 && hour < 12 {
		hour += 12
	}
	minute, second := orZero(f.minute), orZero(f.second)

	if f.week > 0 {
		y := f.isoYear
		if y < 0 {
			y = f.year
		}
		if y < 0 {
			y = ref.Year()
		}
		monday := isoWeekStart(y, f.week, loc)
		return monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second), true
	}

	if !f.hasDate {
		if ref.IsZero() {
			return time.Time{}, false
		}
		y, m, d := ref.In(loc).Date()
		return time.Date(y, m, d, hour, minute, second, 0, loc), true
	}

	year := f.year
	if year < 0 {
		year = f.isoYear
	}
	if year < 0 {
		year = ref.Year()
	}
	month := f.month
	if month < 0 {
		month = 1
		if f.quarter > 0 {
			month = (f.quarter-1)*3 + 1
		}
	}
	d := f.day
	if d < 0 {
		d = 1
	}
	return time.Date(year, time.Month(month), d, hour, minute, second, 0, loc), true
}

func orZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// isoWeekStart returns the Monday starting ISO week w of year y.
func isoWeekStart(y, w int, loc *time.Location) time.Time {
	jan4 := time.Date(y, time.January, 4, 0, 0, 0, 0, loc)
	offset := (int(jan4.Weekday()) + 6) % 7
	return jan4.AddDate(0, 0, -offset+7*(w-1))
}
