package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"tableflip.dev/rangepick/pkg/rangevalue"
)

func TestLoadConfigFromFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	yaml := []byte(`picker: week
order: false
allow_empty:
  end: true
steps:
  minute: 15
presets_path: ` + filepath.Join(dir, "presets") + `
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".rangepick.yaml"), yaml, 0o644))
	t.Setenv("RANGEPICK_CONFIG_PATH", dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "presets"), cfg.PresetsPath())

	opts, err := cfg.Options()
	require.NoError(t, err)
	require.Equal(t, rangevalue.PickerWeek, opts.Picker)
	require.False(t, opts.Order)
	require.Equal(t, rangevalue.Pair{false, true}, opts.AllowEmpty)
	require.Equal(t, 15, opts.MinuteStep)
	require.Equal(t, 1, opts.HourStep)
}

func TestLoadConfigRejectsUnknownPicker(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("RANGEPICK_CONFIG_PATH", t.TempDir())
	t.Setenv("RANGEPICK_PICKER", "fortnight")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	_, err = cfg.Options()
	require.Error(t, err)
}
