package store

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"tableflip.dev/rangepick/pkg/rangepicker"
)

type testConfig struct {
	path string
}

func (t testConfig) PresetsPath() string { return t.path }

func (t testConfig) LogPath() string { return "" }

func (t testConfig) Options() (rangepicker.Options, error) { return rangepicker.Options{}, nil }

func TestPresetStoreRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	require.NoError(t, err)

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	require.NoError(t, p.Add(PresetRecord{Label: "Q1/2024", Start: start, End: end}))
	require.NoError(t, p.Add(PresetRecord{Label: "last 30 days", Window: "30d"}))

	list, err := p.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Q1/2024", list[0].Label)
	require.True(t, list[0].Start.Equal(start))
	require.Equal(t, "30d", list[1].Window)

	got, err := p.Get("Q1/2024")
	require.NoError(t, err)
	require.True(t, got.End.Equal(end))

	require.NoError(t, p.Remove("Q1/2024"))
	_, err = p.Get("Q1/2024")
	require.True(t, errors.Is(err, ErrPresetNotFound))
	require.True(t, errors.Is(p.Remove("Q1/2024"), ErrPresetNotFound))
}

func TestPresetStoreOverwritesByLabel(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	require.NoError(t, err)

	require.NoError(t, p.Add(PresetRecord{Label: "recent", Window: "1w"}))
	require.NoError(t, p.Add(PresetRecord{Label: "recent", Window: "2w"}))

	list, err := p.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "2w", list[0].Window)
}

func TestPresetValidate(t *testing.T) {
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	cases := map[string]PresetRecord{
		"no label":    {Window: "1w"},
		"bad window":  {Label: "x", Window: "soon"},
		"half static": {Label: "x", Start: day},
		"both kinds":  {Label: "x", Start: day, End: day, Window: "1d"},
	}
	for name, rec := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, rec.Validate())
		})
	}
	require.NoError(t, PresetRecord{Label: "x", Start: day, End: day}.Validate())
}

func TestPresetsConvert(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	presets := Presets([]PresetRecord{
		{Label: "fixed", Start: day, End: day.AddDate(0, 0, 6)},
		{Label: "last week", Window: "1w"},
	}, func() time.Time { return now })

	require.Len(t, presets, 2)
	fixed := presets[0].Range()
	require.True(t, fixed[1].Equal(day.AddDate(0, 0, 6)))

	rel := presets[1].Range()
	require.True(t, rel[0].Equal(now.AddDate(0, 0, -7)))
	require.True(t, rel[1].Equal(now))
}

func TestLoadRequiresPath(t *testing.T) {
	_, err := Load(testConfig{})
	require.Error(t, err)
}
