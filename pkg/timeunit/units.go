// Package timeunit builds the hour/minute/second columns of a time panel.
package timeunit

import "fmt"

// Unit is a single selectable entry of a time column.
type Unit struct {
	Label    string
	Value    int
	Disabled bool
}

// Generate lists the values min..max stepping by step. Values contained in
// disabled are flagged rather than dropped so the column keeps its layout.
func Generate(min, max, step int, disabled []int) []Unit {
	if step < 1 {
		step = 1
	}
	off := make(map[int]bool, len(disabled))
	for _, d := range disabled {
		off[d] = true
	}
	units := make([]Unit, 0, (max-min)/step+1)
	for v := min; v <= max; v += step {
		units = append(units, Unit{
			Label:    fmt.Sprintf("%02d", v),
			Value:    v,
			Disabled: off[v],
		})
	}
	return units
}

// Exhausted reports whether no unit in the column can be chosen.
func Exhausted(units []Unit) bool {
	for _, u := range units {
		if !u.Disabled {
			return false
		}
	}
	return true
}

// Contains reports whether v is one of values.
func Contains(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
