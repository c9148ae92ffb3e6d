package timeunit

import "testing"

func TestGenerateSteps(t *testing.T) {
	units := Generate(0, 59, 15, []int{30})
	if len(units) != 4 {
		t.Fatalf("expected 4 units, got %d", len(units))
	}
	want := []int{0, 15, 30, 45}
	for i, u := range units {
		if u.Value != want[i] {
			t.Fatalf("unit %d = %d, want %d", i, u.Value, want[i])
		}
		if u.Disabled != (u.Value == 30) {
			t.Fatalf("unit %d disabled = %v", u.Value, u.Disabled)
		}
	}
	if units[1].Label != "15" || units[0].Label != "00" {
		t.Fatalf("unexpected labels %q %q", units[0].Label, units[1].Label)
	}
}

func TestGenerateZeroStep(t *testing.T) {
	if n := len(Generate(0, 23, 0, nil)); n != 24 {
		t.Fatalf("expected step to default to 1, got %d units", n)
	}
}

func TestExhausted(t *testing.T) {
	all := make([]int, 24)
	for i := range all {
		all[i] = i
	}
	if !Exhausted(Generate(0, 23, 1, all)) {
		t.Fatalf("expected every hour disabled")
	}
	if Exhausted(Generate(0, 23, 1, all[:23])) {
		t.Fatalf("hour 23 is still available")
	}
}
