package rangepicker

import (
	"testing"
	"time"

	"tableflip.dev/rangepick/pkg/rangevalue"
)

func TestPresetsFilterMalformed(t *testing.T) {
	c, _ := newController(t, Options{Presets: []Preset{
		StaticPreset("first week", day(1), day(7)),
		{Label: "single", Range: func() []time.Time { return []time.Time{day(1)} }},
		{Label: "open", Range: func() []time.Time { return []time.Time{day(1), {}} }},
		{Label: "nil"},
		{Label: "last 3 days", Range: func() []time.Time { return []time.Time{now.AddDate(0, 0, -3), now} }},
	}})

	got := c.Presets()
	if len(got) != 2 {
		t.Fatalf("expected 2 presets, got %d: %+v", len(got), got)
	}
	if got[0].Label != "first week" || got[1].Label != "last 3 days" {
		t.Fatalf("unexpected presets %+v", got)
	}
}

func TestApplyPreset(t *testing.T) {
	c, rec := newController(t, Options{Presets: []Preset{StaticPreset("first week", day(1), day(7))}})
	c.RequestOpen(rangevalue.Start)

	if c.ApplyPreset("missing") {
		t.Fatalf("unknown preset must report false")
	}
	if !c.ApplyPreset("first week") {
		t.Fatalf("expected preset to apply")
	}
	want := rangevalue.New(day(1), day(7))
	if !c.Value().Equal(want) {
		t.Fatalf("expected %v, got %v", want, c.Value())
	}
	if len(rec.oks) != 1 || len(rec.changes) != 1 {
		t.Fatalf("expected ok and change, got %d %d", len(rec.oks), len(rec.changes))
	}
	if rec.calendarChanges[0].info.Range != rangevalue.End {
		t.Fatalf("presets report end as source")
	}
	if c.Open() {
		t.Fatalf("preset closes the picker")
	}
	c.Flush()
	if c.Opened(rangevalue.Start) || c.Opened(rangevalue.End) {
		t.Fatalf("closing after a preset clears the open record")
	}
}

func TestViewDates(t *testing.T) {
	c, _ := newController(t, Options{})
	if !c.ViewDate(rangevalue.Start).Equal(now) {
		t.Fatalf("empty picker starts at now")
	}
	if !c.ViewDate(rangevalue.End).Equal(now.AddDate(0, 1, 0)) {
		t.Fatalf("end panel follows start by one month, got %v", c.ViewDate(rangevalue.End))
	}

	c.SetValue(rangevalue.New(day(3), day(3).AddDate(0, 5, 0)))
	panels := c.Panels()
	if len(panels) != 2 || !panels[0].Equal(day(3)) || !panels[1].Equal(day(3).AddDate(0, 1, 0)) {
		t.Fatalf("unexpected panels %v", panels)
	}

	y, _ := newController(t, Options{Picker: rangevalue.PickerYear})
	if got := ClosingViewDate(day(1), rangevalue.PickerYear, 1, 10); got.Year() != 2034 {
		t.Fatalf("year panel pages by ten years, got %d", got.Year())
	}
	if len(y.Panels()) != 2 {
		t.Fatalf("year picker shows two panels")
	}

	tp, _ := newController(t, Options{Picker: rangevalue.PickerTime})
	if len(tp.Panels()) != 1 {
		t.Fatalf("time picker shows one panel")
	}
}

func TestOpenResetsViewDateOnlyWhenClosed(t *testing.T) {
	c, _ := newController(t, Options{})
	c.SetViewDate(rangevalue.Start, day(1).AddDate(0, 6, 0))
	c.RequestOpen(rangevalue.Start)
	if !c.ViewDate(rangevalue.Start).Equal(now) {
		t.Fatalf("opening a closed picker recomputes the view date")
	}

	pinned := day(1).AddDate(0, 6, 0)
	c.SetViewDate(rangevalue.End, pinned)
	c.RequestOpen(rangevalue.End)
	if !c.ViewDate(rangevalue.End).Equal(pinned) {
		t.Fatalf("switching endpoints while open keeps navigation")
	}
}

func TestDeferredQueue(t *testing.T) {
	var q deferredQueue
	var order []int
	q.Defer(func() { order = append(order, 1) })
	id := q.Defer(func() { order = append(order, 2) })
	q.Defer(func() {
		order = append(order, 3)
		q.Defer(func() { order = append(order, 4) })
	})
	q.Cancel(id)

	if n := q.Flush(); n != 3 {
		t.Fatalf("expected 3 tasks to run, got %d", n)
	}
	want := []int{1, 3, 4}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if q.Pending() {
		t.Fatalf("queue should be drained")
	}
}

func TestPageView(t *testing.T) {
	c, _ := newController(t, Options{})
	c.PageView(rangevalue.Start, 1)
	if !c.ViewDate(rangevalue.Start).Equal(now.AddDate(0, 1, 0)) {
		t.Fatalf("page forward moves one month, got %v", c.ViewDate(rangevalue.Start))
	}
	c.PageView(rangevalue.Start, -2)
	if !c.ViewDate(rangevalue.Start).Equal(now.AddDate(0, -1, 0)) {
		t.Fatalf("page back moves two months, got %v", c.ViewDate(rangevalue.Start))
	}
}
