package printers

import (
	"encoding/json"
	"fmt"
	"time"

	"tableflip.dev/rangepick/pkg/rangevalue"
)

type jsonRange struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
	Text  [2]string  `json:"text"`
}

// JSON prints v and its display text as a single JSON object. Open slots
// are null.
func (pp *PrettyPrint) JSON(v rangevalue.Value, text [2]string) error {
	out := jsonRange{Text: text}
	if v.Has(rangevalue.Start) {
		s := v.Start()
		out.Start = &s
	}
	if v.Has(rangevalue.End) {
		e := v.End()
		out.End = &e
	}
	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(pp.out(), string(b))
	return nil
}
