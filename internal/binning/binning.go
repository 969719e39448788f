// Package binning maps numeric values onto ordered, labelled intervals.
//
// Intervals are right-closed: interval i holds edges[i] < v <= edges[i+1].
// A Definition with IncludeLowest also closes the first interval on the left
// so a value sitting exactly on the minimum edge is kept.
package binning

import (
	"errors"
	"fmt"
	"math"

	"github.com/KaramelBytes/carbonmap/internal/dataset"
)

// Definition is one family's edges, labels and color ramp.
type Definition struct {
	Name          string    `yaml:"name"`
	Edges         []float64 `yaml:"edges"`
	Labels        []string  `yaml:"labels"`
	Colors        []string  `yaml:"colors"`
	IncludeLowest bool      `yaml:"include_lowest"`
}

// Validate checks the shape of the definition.
func (d Definition) Validate() error {
	n := len(d.Labels)
	if n == 0 {
		return errors.New("binning: no labels")
	}
	if len(d.Edges) != n+1 {
		return fmt.Errorf("binning %s: %d edges for %d labels", d.Name, len(d.Edges), n)
	}
	if len(d.Colors) != n {
		return fmt.Errorf("binning %s: %d colors for %d labels", d.Name, len(d.Colors), n)
	}
	for i := 1; i < len(d.Edges); i++ {
		if math.IsNaN(d.Edges[i]) || !(d.Edges[i] > d.Edges[i-1]) {
			return fmt.Errorf("binning %s: edges not strictly increasing at %d", d.Name, i)
		}
	}
	seen := make(map[string]struct{}, n)
	for _, l := range d.Labels {
		if _, dup := seen[l]; dup {
			return fmt.Errorf("binning %s: duplicate label %q", d.Name, l)
		}
		seen[l] = struct{}{}
	}
	return nil
}

// Len returns the number of intervals.
func (d Definition) Len() int { return len(d.Labels) }

// Locate returns the interval index for v and whether v actually fell
// inside it. Missing values return (-1, false). A present value outside
// every interval saturates to the last one with exact == false.
func (d Definition) Locate(v dataset.Value) (idx int, exact bool) {
	if !v.Valid {
		return -1, false
	}
	x := v.Float
	for i := 0; i < len(d.Edges)-1; i++ {
		lo, hi := d.Edges[i], d.Edges[i+1]
		in := x > lo && x <= hi
		if i == 0 && d.IncludeLowest {
			in = x >= lo && x <= hi
		}
		if in {
			return i, true
		}
	}
	return len(d.Labels) - 1, false
}

// Index returns the interval index for v, or -1 when v is missing.
func (d Definition) Index(v dataset.Value) int {
	i, _ := d.Locate(v)
	return i
}

// Label returns the interval label for v, or "" when v is missing.
func (d Definition) Label(v dataset.Value) string {
	i := d.Index(v)
	if i < 0 {
		return ""
	}
	return d.Labels[i]
}

// IndexOf returns the position of label, or -1.
func (d Definition) IndexOf(label string) int {
	for i, l := range d.Labels {
		if l == label {
			return i
		}
	}
	return -1
}

// Color returns the color paired with label, or "".
func (d Definition) Color(label string) string {
	i := d.IndexOf(label)
	if i < 0 {
		return ""
	}
	return d.Colors[i]
}

// Intervals describes each interval with its bounds for display.
func (d Definition) Intervals() []Interval {
	out := make([]Interval, len(d.Labels))
	for i, l := range d.Labels {
		out[i] = Interval{
			Label:      l,
			Color:      d.Colors[i],
			Lower:      d.Edges[i],
			Upper:      d.Edges[i+1],
			LowerClose: i == 0 && d.IncludeLowest,
		}
	}
	return out
}

// Interval is one bin of a Definition.
type Interval struct {
	Label      string
	Color      string
	Lower      float64
	Upper      float64
	LowerClose bool
}

// String renders the interval in bracket notation, e.g. "(0, 1]".
func (iv Interval) String() string {
	open := "("
	if iv.LowerClose {
		open = "["
	}
	return fmt.Sprintf("%s%s, %s]", open, edge(iv.Lower), edge(iv.Upper))
}

func edge(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "∞"
	case math.IsInf(f, -1):
		return "-∞"
	}
	return fmt.Sprintf("%g", f)
}
