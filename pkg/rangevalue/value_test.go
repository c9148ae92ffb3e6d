package rangevalue

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestReorderIdempotent(t *testing.T) {
	values := []Value{
		{},
		New(day(5), time.Time{}),
		New(time.Time{}, day(5)),
		New(day(2), day(9)),
		New(day(9), day(2)),
		New(day(4), day(4)),
	}
	for _, v := range values {
		once := Reorder(v)
		twice := Reorder(once)
		if !once.Equal(twice) {
			t.Fatalf("reorder not idempotent for %v: %v then %v", v, once, twice)
		}
		if once.Has(Start) && once.Has(End) && once.Start().After(once.End()) {
			t.Fatalf("reorder left %v inverted", once)
		}
	}
}

func TestReorderSwapsInverted(t *testing.T) {
	got := Reorder(New(day(9), day(2)))
	if !got.Equal(New(day(2), day(9))) {
		t.Fatalf("expected swapped range, got %v", got)
	}
}

func TestCanCommitSlot(t *testing.T) {
	cases := []struct {
		name       string
		slot       time.Time
		index      Endpoint
		disabled   Pair
		allowEmpty Pair
		want       bool
	}{
		{name: "has value", slot: day(1), index: Start, want: true},
		{name: "empty", index: Start, want: false},
		{name: "allow empty", index: End, allowEmpty: Pair{false, true}, want: true},
		{name: "allow empty other index", index: Start, allowEmpty: Pair{false, true}, want: false},
		{name: "other disabled", index: Start, disabled: Pair{false, true}, want: true},
		{name: "self disabled", index: Start, disabled: Pair{true, false}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanCommitSlot(tc.slot, tc.index, tc.disabled, tc.allowEmpty); got != tc.want {
				t.Fatalf("CanCommitSlot = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOutOfOrderGranularity(t *testing.T) {
	mon := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	wed := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)
	nextMon := mon.AddDate(0, 0, 7)

	if OutOfOrder(PickerWeek, wed, mon) {
		t.Fatalf("same week must not be out of order")
	}
	if !OutOfOrder(PickerWeek, nextMon, wed) {
		t.Fatalf("later week must be out of order")
	}
	if !OutOfOrder(PickerDate, wed, mon) {
		t.Fatalf("later day must be out of order for date picker")
	}

	feb := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	jan := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	apr := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	if OutOfOrder(PickerQuarter, feb, jan) {
		t.Fatalf("same quarter must not be out of order")
	}
	if !OutOfOrder(PickerQuarter, apr, jan) {
		t.Fatalf("later quarter must be out of order")
	}

	morning := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.March, 4, 18, 0, 0, 0, time.UTC)
	if OutOfOrder(PickerDate, evening, morning) {
		t.Fatalf("same day must not be out of order for date picker")
	}
	if !OutOfOrder(PickerTime, evening, morning) {
		t.Fatalf("time picker compares instants")
	}
}

func TestNormalize(t *testing.T) {
	inverted := New(day(9), day(2))

	got, dropped := Normalize(PickerDate, false, false, inverted)
	if !dropped || !got.Equal(New(day(9), time.Time{})) {
		t.Fatalf("date picker should keep start and drop end, got %v dropped=%v", got, dropped)
	}

	got, dropped = Normalize(PickerTime, false, true, inverted)
	if dropped || !got.Equal(New(day(2), day(9))) {
		t.Fatalf("ordered time picker should reorder, got %v", got)
	}

	got, _ = Normalize(PickerDate, true, false, inverted)
	if !got.Equal(inverted) {
		t.Fatalf("date+time without order keeps value, got %v", got)
	}
}

func TestValueEqualIgnoresLocation(t *testing.T) {
	a := New(day(3), time.Time{})
	b := New(day(3).In(time.FixedZone("x", 3600)), time.Time{})
	if !a.Equal(b) {
		t.Fatalf("expected instants to compare equal")
	}
	if a.Equal(New(day(3), day(4))) {
		t.Fatalf("absent and present slots must differ")
	}
}

func TestParsePicker(t *testing.T) {
	if p, err := ParsePicker(""); err != nil || p != PickerDate {
		t.Fatalf("empty picker should default to date, got %q %v", p, err)
	}
	if _, err := ParsePicker("decade"); err == nil {
		t.Fatalf("expected error for unknown picker")
	}
}
