// Package dateformat renders and parses dates with the moment-style patterns
// used by picker text inputs ("YYYY-MM-DD HH:mm:ss", "GGGG-[W]WW", ...).
//
// Supported tokens:
//
//	YYYY  four digit year          GGGG  four digit ISO week-year
//	MM    month 01-12              WW    ISO week 01-53
//	DD    day of month 01-31       Q     quarter 1-4
//	HH    hour 00-23               hh    hour 01-12
//	mm    minute 00-59             ss    second 00-59
//	A     AM/PM
//
// Text inside square brackets, and any character that does not start a
// token, is copied literally.
package dateformat

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"tableflip.dev/rangepick/pkg/rangevalue"
)

type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokYear
	tokISOYear
	tokMonth
	tokDay
	tokHour24
	tokHour12
	tokMinute
	tokSecond
	tokMeridiem
	tokQuarter
	tokWeek
)

type token struct {
	kind    tokenKind
	literal string
}

var tokenTable = []struct {
	text string
	kind tokenKind
}{
	{"YYYY", tokYear},
	{"GGGG", tokISOYear},
	{"MM", tokMonth},
	{"DD", tokDay},
	{"HH", tokHour24},
	{"hh", tokHour12},
	{"mm", tokMinute},
	{"ss", tokSecond},
	{"WW", tokWeek},
	{"A", tokMeridiem},
	{"Q", tokQuarter},
}

func (t token) width() int {
	switch t.kind {
	case tokLiteral:
		return utf8.RuneCountInString(t.literal)
	case tokYear, tokISOYear:
		return 4
	case tokQuarter:
		return 1
	default:
		return 2
	}
}

func tokenize(pattern string) []token {
	var out []token
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, token{kind: tokLiteral, literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			end := strings.IndexByte(pattern[i+1:], ']')
			if end >= 0 {
				lit.WriteString(pattern[i+1 : i+1+end])
				i += end + 2
				continue
			}
		}
		matched := false
		for _, tt := range tokenTable {
			if strings.HasPrefix(pattern[i:], tt.text) {
				flush()
				out = append(out, token{kind: tt.kind})
				i += len(tt.text)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		r, size := utf8.DecodeRuneInString(pattern[i:])
		lit.WriteRune(r)
		i += size
	}
	flush()
	return out
}

// Width returns the rune length of any date rendered with pattern. Text
// inputs use it to decide when typed text is complete enough to parse.
func Width(pattern string) int {
	n := 0
	for _, t := range tokenize(pattern) {
		n += t.width()
	}
	return n
}

// Format renders t with pattern. The zero time renders as "".
func Format(t time.Time, pattern string) string {
	if t.IsZero() {
		return ""
	}
	var b strings.Builder
	for _, tok := range tokenize(pattern) {
		switch tok.kind {
		case tokLiteral:
			b.WriteString(tok.literal)
		case tokYear:
			fmt.Fprintf(&b, "%04d", t.Year())
		case tokISOYear:
			y, _ := t.ISOWeek()
			fmt.Fprintf(&b, "%04d", y)
		case tokMonth:
			fmt.Fprintf(&b, "%02d", int(t.Month()))
		case tokDay:
			fmt.Fprintf(&b, "%02d", t.Day())
		case tokHour24:
			fmt.Fprintf(&b, "%02d", t.Hour())
		case tokHour12:
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			fmt.Fprintf(&b, "%02d", h)
		case tokMinute:
			fmt.Fprintf(&b, "%02d", t.Minute())
		case tokSecond:
			fmt.Fprintf(&b, "%02d", t.Second())
		case tokMeridiem:
			if t.Hour() < 12 {
				b.WriteString("AM")
			} else {
				b.WriteString("PM")
			}
		case tokQuarter:
			fmt.Fprintf(&b, "%d", rangevalue.Quarter(t))
		case tokWeek:
			_, w := t.ISOWeek()
			fmt.Fprintf(&b, "%02d", w)
		}
	}
	return b.String()
}

// Default returns the pattern used when the caller does not configure one.
func Default(p rangevalue.Picker, showTime, use12Hours bool) string {
	clock := "HH:mm:ss"
	if use12Hours {
		clock = "hh:mm:ss A"
	}
	switch p {
	case rangevalue.PickerTime:
		return clock
	case rangevalue.PickerWeek:
		return "GGGG-[W]WW"
	case rangevalue.PickerMonth:
		return "YYYY-MM"
	case rangevalue.PickerQuarter:
		return "YYYY-[Q]Q"
	case rangevalue.PickerYear:
		return "YYYY"
	}
	if showTime {
		return "YYYY-MM-DD " + clock
	}
	return "YYYY-MM-DD"
}
