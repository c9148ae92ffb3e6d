package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"tableflip.dev/rangepick/pkg/rangepicker"
	"tableflip.dev/rangepick/pkg/rangevalue"
)

// Config exposes the settings the CLI needs to build a picker and find its
// preset store.
type Config interface {
	PresetsPath() string
	LogPath() string
	Options() (rangepicker.Options, error)
}

// LoadConfig reads .rangepick.yaml and RANGEPICK_* environment variables
// through viper. A missing config file is not an error.
func LoadConfig() (Config, error) {
	viper.SetDefault("picker", string(rangevalue.PickerDate))
	viper.SetDefault("format", "")
	viper.SetDefault("show_time", false)
	viper.SetDefault("use_12_hours", false)
	viper.SetDefault("order", true)
	viper.SetDefault("allow_empty.start", false)
	viper.SetDefault("allow_empty.end", false)
	viper.SetDefault("disabled.start", false)
	viper.SetDefault("disabled.end", false)
	viper.SetDefault("steps.hour", 1)
	viper.SetDefault("steps.minute", 1)
	viper.SetDefault("steps.second", 1)
	viper.SetDefault("presets_path", "~/.rangepick/presets")
	viper.SetDefault("log", "")

	viper.SetConfigName(".rangepick") // .yaml is implicit
	viper.SetEnvPrefix("RANGEPICK")
	viper.AutomaticEnv()

	if override := os.Getenv("RANGEPICK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	presets, err := homedir.Expand(viper.GetString("presets_path"))
	if err != nil {
		return nil, errors.Wrap(err, "expanding presets_path")
	}
	logPath, err := homedir.Expand(viper.GetString("log"))
	if err != nil {
		return nil, errors.Wrap(err, "expanding log path")
	}

	return &fileConfig{
		Picker:     viper.GetString("picker"),
		Format:     viper.GetString("format"),
		ShowTime:   viper.GetBool("show_time"),
		Use12Hours: viper.GetBool("use_12_hours"),
		Order:      viper.GetBool("order"),
		AllowEmpty: [2]bool{viper.GetBool("allow_empty.start"), viper.GetBool("allow_empty.end")},
		Disabled:   [2]bool{viper.GetBool("disabled.start"), viper.GetBool("disabled.end")},
		HourStep:   viper.GetInt("steps.hour"),
		MinuteStep: viper.GetInt("steps.minute"),
		SecondStep: viper.GetInt("steps.second"),
		Presets:    presets,
		Log:        logPath,
	}, nil
}

type fileConfig struct {
	Picker     string  `json:"picker"`
	Format     string  `json:"format"`
	ShowTime   bool    `json:"show_time"`
	Use12Hours bool    `json:"use_12_hours"`
	Order      bool    `json:"order"`
	AllowEmpty [2]bool `json:"allow_empty"`
	Disabled   [2]bool `json:"disabled"`
	HourStep   int     `json:"hour_step"`
	MinuteStep int     `json:"minute_step"`
	SecondStep int     `json:"second_step"`
	Presets    string  `json:"presets_path"`
	Log        string  `json:"log"`
}

func (f *fileConfig) PresetsPath() string { return f.Presets }

func (f *fileConfig) LogPath() string { return f.Log }

func (f *fileConfig) Options() (rangepicker.Options, error) {
	picker, err := rangevalue.ParsePicker(f.Picker)
	if err != nil {
		return rangepicker.Options{}, errors.Wrap(err, "config picker")
	}
	return rangepicker.Options{
		Picker:     picker,
		ShowTime:   f.ShowTime,
		Use12Hours: f.Use12Hours,
		Format:     f.Format,
		Order:      f.Order,
		AllowEmpty: rangevalue.Pair(f.AllowEmpty),
		Disabled:   rangevalue.Pair(f.Disabled),
		HourStep:   f.HourStep,
		MinuteStep: f.MinuteStep,
		SecondStep: f.SecondStep,
	}, nil
}
