// Package presets provides CLI helpers to manage stored quick-select ranges.
package presets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"tableflip.dev/rangepick/pkg/printers"
	"tableflip.dev/rangepick/pkg/store"
)

// List prints every stored preset.
type List struct {
	Presets store.PresetStore
	Format  string
	JSON    bool
	Now     func() time.Time
	Out     io.Writer
}

// Do renders the presets as a table, or as a JSON array.
func (l *List) Do(ctx context.Context) error {
	if l.Presets == nil {
		return errors.New("can not list, no preset store")
	}
	records, err := l.Presets.List(ctx)
	if err != nil {
		return err
	}

	out := l.Out
	if out == nil {
		out = color.Output
	}
	if l.JSON {
		b, err := json.Marshal(records)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	pp := printers.PrettyPrint{Format: l.Format, Out: out}
	pp.NewLine()
	pp.Title("Presets")
	pp.Presets(records, now())
	return nil
}

// Add stores a preset, replacing one with the same label.
type Add struct {
	Presets store.PresetStore
	Record  store.PresetRecord
}

// Do validates and writes the record.
func (a *Add) Do(ctx context.Context) error {
	if a.Presets == nil {
		return errors.New("can not add, no preset store")
	}
	return a.Presets.Add(a.Record)
}

// Remove deletes the preset with Label.
type Remove struct {
	Presets store.PresetStore
	Label   string
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Presets == nil {
		return errors.New("can not remove, no preset store")
	}
	return r.Presets.Remove(r.Label)
}
