package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/store"
)

// PresetOptions
type PresetOptions struct {
	Start  string
	End    string
	Window string
}

func AddPresetArgs(cmd *cobra.Command, o *PresetOptions) {
	cmd.Flags().StringVar(&o.Start, "start", "",
		"Fixed start, as YYYY-MM-DD or RFC3339.")
	cmd.Flags().StringVar(&o.End, "end", "",
		"Fixed end, as YYYY-MM-DD or RFC3339.")
	cmd.Flags().StringVarP(&o.Window, "window", "w", "",
		"Relative window ending now, e.g. 7d, 2w, 3mo, 1y, 12h.")
}

// Record builds the stored form of the preset labelled label.
func (o *PresetOptions) Record(label string) (store.PresetRecord, error) {
	r := store.PresetRecord{Label: label, Window: o.Window}
	var err error
	if r.Start, err = parseDate(o.Start); err != nil {
		return r, err
	}
	if r.End, err = parseDate(o.End); err != nil {
		return r, err
	}
	return r, r.Validate()
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
