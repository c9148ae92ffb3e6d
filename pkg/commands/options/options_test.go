package options

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/rangepick/pkg/rangepicker"
)

func TestApplyCombinesDisabledTests(t *testing.T) {
	now := time.Date(2024, time.March, 13, 12, 0, 0, 0, time.UTC) // a Wednesday
	opts := rangepicker.Options{Now: func() time.Time { return now }}
	po := PickerOptions{DisableWeekends: true, DisablePast: true}
	po.Apply(&opts)

	day := func(d int) time.Time { return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC) }
	for _, tc := range []struct {
		day      int
		disabled bool
	}{
		{12, true},  // past
		{13, false}, // today
		{14, false},
		{16, true}, // Saturday
		{17, true}, // Sunday
		{18, false},
	} {
		if got := opts.DisabledDate(day(tc.day)); got != tc.disabled {
			t.Fatalf("day %d: disabled = %t, want %t", tc.day, got, tc.disabled)
		}
	}
}

func TestApplyWithoutFlagsKeepsNil(t *testing.T) {
	opts := rangepicker.Options{}
	(&PickerOptions{}).Apply(&opts)
	if opts.DisabledDate != nil {
		t.Fatalf("expected no disabled test")
	}
}

func TestBindOverridesConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.SetDefault("picker", "date")

	cmd := &cobra.Command{Use: "test"}
	po := &PickerOptions{}
	AddPickerArgs(cmd, po)
	if err := cmd.Flags().Parse([]string{"--picker", "month", "--minute-step", "15"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := po.Bind(cmd.Flags()); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if got := viper.GetString("picker"); got != "month" {
		t.Fatalf("picker = %q, want month", got)
	}
	if got := viper.GetInt("steps.minute"); got != 15 {
		t.Fatalf("steps.minute = %d, want 15", got)
	}
}

func TestPresetRecord(t *testing.T) {
	o := PresetOptions{Window: "30d"}
	r, err := o.Record("recent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Label != "recent" || r.Window != "30d" {
		t.Fatalf("unexpected record %+v", r)
	}

	o = PresetOptions{Start: "2024-01-01", End: "2024-03-31"}
	r, err = o.Record("Q1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Start.Month() != time.January || r.End.Day() != 31 {
		t.Fatalf("unexpected record %+v", r)
	}

	o = PresetOptions{Start: "2024-01-01"}
	if _, err := o.Record("half"); err == nil {
		t.Fatalf("expected an error for a missing end")
	}

	o = PresetOptions{Start: "yesterday", End: "2024-03-31"}
	if _, err := o.Record("bad"); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rangepick.log")
	logger, closer, err := Logger(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Warn().Str("picker", "date").Msg("dropping end")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "dropping end") || !strings.Contains(string(b), "picker=date") {
		t.Fatalf("unexpected log %q", string(b))
	}
}
