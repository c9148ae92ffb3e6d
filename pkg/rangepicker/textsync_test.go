package rangepicker

import (
	"testing"
	"time"

	"tableflip.dev/rangepick/pkg/rangevalue"
)

func TestTypeTextPartialIsHeld(t *testing.T) {
	c, rec := newController(t, Options{})
	c.RequestOpen(rangevalue.Start)
	c.TypeText(rangevalue.Start, "2024-03")

	if c.Text(rangevalue.Start) != "2024-03" {
		t.Fatalf("partial text should be displayed, got %q", c.Text(rangevalue.Start))
	}
	if !c.Selected().IsEmpty() || len(rec.calendarChanges) != 0 {
		t.Fatalf("partial text must not change the value")
	}
}

func TestTypeTextCompleteUpdatesSelected(t *testing.T) {
	c, rec := newController(t, Options{})
	c.RequestOpen(rangevalue.Start)
	c.TypeText(rangevalue.Start, "2024-03-07")

	if !c.Selected().Start().Equal(day(7)) {
		t.Fatalf("expected selected start %v, got %v", day(7), c.Selected())
	}
	if !c.ViewDate(rangevalue.Start).Equal(day(7)) {
		t.Fatalf("view date should follow typed date")
	}
	if len(rec.changes) != 0 {
		t.Fatalf("typing alone must not commit")
	}

	c.SubmitText(rangevalue.Start)
	if len(rec.calendarChanges) != 1 {
		t.Fatalf("submit should run the change protocol")
	}
	if c.Active() != rangevalue.End {
		t.Fatalf("submit on start should advance to end")
	}
}

func TestTypeTextInvalidIsHeld(t *testing.T) {
	c, _ := newController(t, Options{})
	c.TypeText(rangevalue.Start, "2024-13-07")
	if c.Text(rangevalue.Start) != "2024-13-07" || !c.Selected().IsEmpty() {
		t.Fatalf("unparseable text should be held without a value change")
	}
}

func TestTypeTextDisabledDateRejected(t *testing.T) {
	committed := rangevalue.New(day(1), day(10))
	c, rec := newController(t, Options{
		DefaultValue: committed,
		DisabledDate: func(d time.Time) bool { return d.Day() == 5 },
	})
	c.RequestOpen(rangevalue.Start)
	c.TypeText(rangevalue.Start, "2024-03-05")

	if c.Text(rangevalue.Start) != "2024-03-01" {
		t.Fatalf("display text should be unchanged, got %q", c.Text(rangevalue.Start))
	}
	if !c.Value().Equal(committed) || !c.Selected().Equal(committed) {
		t.Fatalf("value should be unchanged, got %v / %v", c.Value(), c.Selected())
	}
	if len(rec.calendarChanges) != 0 || len(rec.changes) != 0 {
		t.Fatalf("rejected input must not notify")
	}
}

func TestTypeTextRespectsOtherEndpoint(t *testing.T) {
	c, _ := newController(t, Options{DefaultValue: rangevalue.New(day(10), day(20))})
	c.RequestOpen(rangevalue.End)
	c.TypeText(rangevalue.End, "2024-03-05")
	if !c.Selected().End().Equal(day(20)) {
		t.Fatalf("end before start should be rejected, got %v", c.Selected())
	}
	c.TypeText(rangevalue.End, "2024-03-10")
	if !c.Selected().End().Equal(day(10)) {
		t.Fatalf("end on the start day should be accepted, got %v", c.Selected())
	}
}

func TestTypeTextEmptyMirrorsOtherEndpoint(t *testing.T) {
	c, _ := newController(t, Options{DefaultValue: rangevalue.New(day(3), day(8))})
	c.RequestOpen(rangevalue.Start)
	c.TypeText(rangevalue.Start, "")

	if !c.Selected().Start().Equal(day(8)) {
		t.Fatalf("cleared start should default to end, got %v", c.Selected())
	}
	if c.Text(rangevalue.Start) != "2024-03-08" {
		t.Fatalf("text should show mirrored date, got %q", c.Text(rangevalue.Start))
	}
}

func TestTypeTextYearRequiresCalendarValidity(t *testing.T) {
	c, _ := newController(t, Options{Picker: rangevalue.PickerYear, Format: "YYYY-MM-DD"})
	c.RequestOpen(rangevalue.Start)
	c.TypeText(rangevalue.Start, "2023-02-29")
	if !c.Selected().IsEmpty() {
		t.Fatalf("year picker must reject non-existent dates, got %v", c.Selected())
	}
	c.TypeText(rangevalue.Start, "2024-02-29")
	if c.Selected().Start().IsZero() {
		t.Fatalf("leap day should be accepted")
	}

	d, _ := newController(t, Options{Format: "YYYY-MM-DD"})
	d.TypeText(rangevalue.Start, "2023-02-29")
	if d.Selected().Start().IsZero() {
		t.Fatalf("date picker parses leniently")
	}
}

func TestTypeTextOnDisabledEndpointIgnored(t *testing.T) {
	c, _ := newController(t, Options{Disabled: rangevalue.Pair{true, false}, AllowEmpty: rangevalue.Pair{true, false}})
	c.TypeText(rangevalue.Start, "2024-03-07")
	if c.Text(rangevalue.Start) != "" {
		t.Fatalf("disabled endpoint text must not change")
	}
}

func TestTimeTextKeepsDayOfExistingValue(t *testing.T) {
	start := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	c, _ := newController(t, Options{Picker: rangevalue.PickerTime, DefaultValue: rangevalue.New(start, time.Time{})})
	c.RequestOpen(rangevalue.Start)
	c.TypeText(rangevalue.Start, "11:30:00")

	want := time.Date(2024, time.March, 4, 11, 30, 0, 0, time.UTC)
	if !c.Selected().Start().Equal(want) {
		t.Fatalf("expected %v, got %v", want, c.Selected().Start())
	}
}
