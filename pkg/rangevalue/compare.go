package rangevalue

import "time"

// IsAfter reports whether a is strictly after b. Absent slots never compare.
func IsAfter(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return a.After(b)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// SameWeek reports whether a and b fall in the same ISO week.
func SameWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.In(a.Location()).ISOWeek()
	return ay == by && aw == bw
}

// SameQuarter reports whether a and b fall in the same quarter of a year.
func SameQuarter(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && Quarter(a) == Quarter(b)
}

// Quarter returns the 1-based quarter of t.
func Quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// OutOfOrder reports whether a is after b at the granularity of picker p.
// Week and quarter pickers only compare whole weeks and quarters, the time
// picker compares instants and every other picker compares days.
func OutOfOrder(p Picker, a, b time.Time) bool {
	if !IsAfter(a, b) {
		return false
	}
	switch p {
	case PickerWeek:
		return !SameWeek(a, b)
	case PickerQuarter:
		return !SameQuarter(a, b)
	case PickerTime:
		return true
	default:
		return !SameDay(a, b)
	}
}
