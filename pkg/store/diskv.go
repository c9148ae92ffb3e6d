package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"
	"github.com/pkg/errors"

	"tableflip.dev/rangepick/pkg/rangepicker"
	"tableflip.dev/rangepick/pkg/timeutil"
)

// ErrPresetNotFound is returned when no preset carries the requested label.
var ErrPresetNotFound = errors.New("preset not found")

const presetBucket = "presets"

// PresetRecord is the stored form of a quick-select preset. A record is
// either static (Start and End) or relative (Window ending now).
type PresetRecord struct {
	Label  string    `json:"label"`
	Start  time.Time `json:"start,omitempty"`
	End    time.Time `json:"end,omitempty"`
	Window string    `json:"window,omitempty"`
}

// Validate reports whether the record can produce a range.
func (r PresetRecord) Validate() error {
	if strings.TrimSpace(r.Label) == "" {
		return errors.New("preset label is required")
	}
	if r.Window != "" {
		if !r.Start.IsZero() || !r.End.IsZero() {
			return errors.Errorf("preset %q: window and fixed dates are exclusive", r.Label)
		}
		if _, err := timeutil.ParseWindow(r.Window); err != nil {
			return errors.Wrapf(err, "preset %q", r.Label)
		}
		return nil
	}
	if r.Start.IsZero() || r.End.IsZero() {
		return errors.Errorf("preset %q: start and end are required", r.Label)
	}
	return nil
}

// Preset converts the record into a picker preset. Relative presets are
// evaluated each time the picker lists them.
func (r PresetRecord) Preset(now func() time.Time) rangepicker.Preset {
	if r.Window == "" {
		return rangepicker.StaticPreset(r.Label, r.Start, r.End)
	}
	w, err := timeutil.ParseWindow(r.Window)
	return rangepicker.Preset{
		Label: r.Label,
		Range: func() []time.Time {
			if err != nil {
				return nil
			}
			end := now()
			return []time.Time{w.Before(end), end}
		},
	}
}

// Presets converts records into picker presets, preserving order.
func Presets(records []PresetRecord, now func() time.Time) []rangepicker.Preset {
	if now == nil {
		now = time.Now
	}
	presets := make([]rangepicker.Preset, 0, len(records))
	for _, r := range records {
		presets = append(presets, r.Preset(now))
	}
	return presets
}

// PresetStore persists presets.
type PresetStore interface {
	List(ctx context.Context) ([]PresetRecord, error)
	Get(label string) (PresetRecord, error)
	Add(r PresetRecord) error
	Remove(label string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a PresetStore backed by diskv using the provided config.
func Load(cfg Config) (PresetStore, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.PresetsPath()
	if basePath == "" {
		return nil, errors.New("presets path is empty")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (PresetRecord, error) {
	var r PresetRecord
	val, err := p.d.Read(key)
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal(val, &r); err != nil {
		return r, errors.Wrapf(err, "decoding %s", key)
	}
	return r, nil
}

// List returns every stored preset sorted by label. Unreadable records are
// reported on stderr and skipped.
func (p *persistence) List(ctx context.Context) ([]PresetRecord, error) {
	all := make([]PresetRecord, 0)
	for key := range p.d.KeysPrefix(presetBucket+"-", ctx.Done()) {
		r, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, r)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Label < all[j].Label })
	return all, nil
}

func (p *persistence) Get(label string) (PresetRecord, error) {
	key := toKey(label)
	if !p.d.Has(key) {
		return PresetRecord{}, errors.Wrapf(ErrPresetNotFound, "%q", label)
	}
	return p.read(key)
}

// Add stores r, replacing any preset with the same label.
func (p *persistence) Add(r PresetRecord) error {
	if err := r.Validate(); err != nil {
		return err
	}
	b, err := json.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "encoding preset")
	}
	return errors.Wrapf(p.d.Write(toKey(r.Label), b), "writing preset %q", r.Label)
}

func (p *persistence) Remove(label string) error {
	key := toKey(label)
	if !p.d.Has(key) {
		return errors.Wrapf(ErrPresetNotFound, "%q", label)
	}
	return errors.Wrapf(p.d.Erase(key), "removing preset %q", label)
}

// keyToPathTransform maps `presets-<label>` to presets/<label>.
func keyToPathTransform(s string) *diskv.PathKey {
	bucket, name, ok := strings.Cut(s, "-")
	if !ok {
		return &diskv.PathKey{FileName: s}
	}
	return &diskv.PathKey{
		Path:     []string{bucket},
		FileName: name,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `presets-<encoded label>`
func toKey(label string) string {
	return fmt.Sprintf("%s-%s", presetBucket, encodeLabel(label))
}

func encodeLabel(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func decodeLabel(s string) string {
	label, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return ""
	}
	return string(label)
}
