package options

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tableflip.dev/rangepick/pkg/rangepicker"
)

// PickerOptions carries the picker flags that have no config file key.
type PickerOptions struct {
	DisableWeekends bool
	DisablePast     bool
}

// flag name -> config key
var pickerKeys = map[string]string{
	"picker":            "picker",
	"format":            "format",
	"show-time":         "show_time",
	"use-12-hours":      "use_12_hours",
	"order":             "order",
	"allow-empty-start": "allow_empty.start",
	"allow-empty-end":   "allow_empty.end",
	"disabled-start":    "disabled.start",
	"disabled-end":      "disabled.end",
	"hour-step":         "steps.hour",
	"minute-step":       "steps.minute",
	"second-step":       "steps.second",
}

// AddPickerArgs registers the picker configuration flags. Flags override
// the config file once bound with Bind.
func AddPickerArgs(cmd *cobra.Command, o *PickerOptions) {
	f := cmd.Flags()
	f.StringP("picker", "p", "date",
		"Picker granularity. One of date, week, month, quarter, year or time.")
	f.StringP("format", "f", "",
		"Display format, e.g. YYYY-MM-DD. Defaults to the picker's format.")
	f.Bool("show-time", false,
		"Add a time of day to the date picker.")
	f.Bool("use-12-hours", false,
		"Use a 12 hour clock.")
	f.Bool("order", true,
		"Reorder inverted time-bearing ranges.")
	f.Bool("allow-empty-start", false,
		"Allow the start to stay open.")
	f.Bool("allow-empty-end", false,
		"Allow the end to stay open.")
	f.Bool("disabled-start", false,
		"Lock the start endpoint.")
	f.Bool("disabled-end", false,
		"Lock the end endpoint.")
	f.Int("hour-step", 1, "Hour column step.")
	f.Int("minute-step", 1, "Minute column step.")
	f.Int("second-step", 1, "Second column step.")

	cmd.Flags().BoolVar(&o.DisableWeekends, "disable-weekends", false,
		"Make Saturdays and Sundays unselectable.")
	cmd.Flags().BoolVar(&o.DisablePast, "disable-past", false,
		"Make days before today unselectable.")
}

// Bind points the config keys at this command's flags. It must run before
// the config is loaded, and only for the command being executed.
func (o *PickerOptions) Bind(fs *pflag.FlagSet) error {
	for name, key := range pickerKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "binding --%s", name)
		}
	}
	return nil
}

// Apply adds the flag-only settings to opts.
func (o *PickerOptions) Apply(opts *rangepicker.Options) {
	var tests []func(time.Time) bool
	if o.DisableWeekends {
		tests = append(tests, func(t time.Time) bool {
			return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
		})
	}
	if o.DisablePast {
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}
		tests = append(tests, func(t time.Time) bool {
			n := now()
			today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, t.Location())
			return t.Before(today)
		})
	}
	if len(tests) == 0 {
		return
	}
	prev := opts.DisabledDate
	opts.DisabledDate = func(t time.Time) bool {
		if prev != nil && prev(t) {
			return true
		}
		for _, test := range tests {
			if test(t) {
				return true
			}
		}
		return false
	}
}
