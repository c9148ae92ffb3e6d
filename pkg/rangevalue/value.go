// Package rangevalue models the two-slot value held by a range picker and the
// ordering rules applied to it.
package rangevalue

import (
	"fmt"
	"time"
)

// Picker selects the granularity a range picker works at.
type Picker string

const (
	PickerDate    Picker = "date"
	PickerWeek    Picker = "week"
	PickerMonth   Picker = "month"
	PickerQuarter Picker = "quarter"
	PickerYear    Picker = "year"
	PickerTime    Picker = "time"
)

// ParsePicker maps a config or flag string onto a Picker.
func ParsePicker(s string) (Picker, error) {
	switch p := Picker(s); p {
	case PickerDate, PickerWeek, PickerMonth, PickerQuarter, PickerYear, PickerTime:
		return p, nil
	case "":
		return PickerDate, nil
	}
	return "", fmt.Errorf("unknown picker %q", s)
}

// Endpoint identifies one slot of a range.
type Endpoint int

const (
	// Start is the first slot of a range.
	Start Endpoint = 0
	// End is the second slot of a range.
	End Endpoint = 1
)

// Other returns the opposite endpoint.
func (e Endpoint) Other() Endpoint {
	return 1 - e
}

// String implements fmt.Stringer.
func (e Endpoint) String() string {
	if e == End {
		return "end"
	}
	return "start"
}

// Pair is the normalized per-endpoint form of flags that callers may supply
// either once for both endpoints or separately.
type Pair [2]bool

// Both returns a Pair with b in each slot.
func Both(b bool) Pair {
	return Pair{b, b}
}

// Get reports the flag for endpoint e.
func (p Pair) Get(e Endpoint) bool {
	return p[e]
}

// Value is a range. The zero time.Time marks an absent slot.
type Value [2]time.Time

// New builds a Value from start and end.
func New(start, end time.Time) Value {
	return Value{start, end}
}

// Start returns the first slot.
func (v Value) Start() time.Time { return v[Start] }

// End returns the second slot.
func (v Value) End() time.Time { return v[End] }

// Get returns the slot for endpoint e.
func (v Value) Get(e Endpoint) time.Time {
	return v[e]
}

// Has reports whether endpoint e holds a date.
func (v Value) Has(e Endpoint) bool {
	return !v[e].IsZero()
}

// With returns a copy of v with endpoint e set to t.
func (v Value) With(e Endpoint, t time.Time) Value {
	v[e] = t
	return v
}

// IsEmpty reports whether neither slot holds a date.
func (v Value) IsEmpty() bool {
	return v[Start].IsZero() && v[End].IsZero()
}

// Equal compares slot-wise by instant, treating two absent slots as equal.
func (v Value) Equal(o Value) bool {
	return slotEqual(v[Start], o[Start]) && slotEqual(v[End], o[End])
}

func slotEqual(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return a.IsZero() == b.IsZero()
	}
	return a.Equal(b)
}

// Reorder swaps the slots when Start is after End.
func Reorder(v Value) Value {
	if v.Has(Start) && v.Has(End) && v[Start].After(v[End]) {
		return Value{v[End], v[Start]}
	}
	return v
}

// ValidateOrder reports whether v satisfies the ordering rule of picker p.
// It never corrects the value.
func ValidateOrder(p Picker, v Value) bool {
	if !v.Has(Start) || !v.Has(End) {
		return true
	}
	return !OutOfOrder(p, v[Start], v[End])
}

// CanCommitSlot reports whether slot index of a range may be committed: it
// holds a date, empty is allowed for it, or the other endpoint is disabled.
func CanCommitSlot(slot time.Time, index Endpoint, disabled, allowEmpty Pair) bool {
	if !slot.IsZero() {
		return true
	}
	if allowEmpty[index] {
		return true
	}
	return disabled[index.Other()]
}

// TimeBearing reports whether values carry a meaningful time of day.
func TimeBearing(p Picker, showTime bool) bool {
	return p == PickerTime || (p == PickerDate && showTime)
}

// Normalize applies the committed-value ordering policy: time-bearing modes
// reorder when order is set, every other mode drops End on a violation.
// The second result reports a violation that was corrected by dropping End.
func Normalize(p Picker, showTime, order bool, v Value) (Value, bool) {
	if TimeBearing(p, showTime) {
		if order {
			return Reorder(v), false
		}
		return v, false
	}
	if !ValidateOrder(p, v) {
		return Value{v[Start], time.Time{}}, true
	}
	return v, false
}
