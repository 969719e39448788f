// Package choropleth builds Plotly-compatible figure descriptions for
// categorical world maps. It knows nothing about how figures are drawn.
package choropleth

import (
	"encoding/json"

	"github.com/KaramelBytes/carbonmap/internal/binning"
)

const (
	// MissingColor fills entities with no bin.
	MissingColor = "lightgrey"
	// LandColor fills land outside the trace.
	LandColor = "lightgrey"
	// Projection is the geo projection of every map.
	Projection = "natural earth"
	// LocationISO3 keys trace locations by ISO-3 code.
	LocationISO3 = "ISO-3"
)

// Point is one entity to color. Bin is -1 for missing values.
type Point struct {
	ISO   string
	Bin   int
	Hover string
}

// Stop is one colorscale entry, encoded as [position, color].
type Stop struct {
	Pos   float64
	Color string
}

// MarshalJSON encodes the stop as [pos, color].
func (s Stop) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{s.Pos, s.Color})
}

// Line is a marker outline.
type Line struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// Marker wraps the outline style.
type Marker struct {
	Line Line `json:"line"`
}

// Trace is a choropleth trace.
type Trace struct {
	Type          string   `json:"type"`
	LocationMode  string   `json:"locationmode"`
	Locations     []string `json:"locations"`
	Z             []*int   `json:"z"`
	Text          []string `json:"text,omitempty"`
	HoverTemplate string   `json:"hovertemplate"`
	ZMin          *int     `json:"zmin,omitempty"`
	ZMax          *int     `json:"zmax,omitempty"`
	Colorscale    []Stop   `json:"colorscale"`
	ShowScale     bool     `json:"showscale"`
	ShowLegend    *bool    `json:"showlegend,omitempty"`
	Marker        Marker   `json:"marker"`
	MissingColor  string   `json:"missingcolor,omitempty"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Geo configures the map projection.
type Geo struct {
	Projection struct {
		Type string `json:"type"`
	} `json:"projection"`
	ShowLand  bool   `json:"showland"`
	LandColor string `json:"landcolor"`
}

// Layout is the figure layout.
type Layout struct {
	Title  string `json:"title"`
	Margin Margin `json:"margin"`
	Geo    Geo    `json:"geo"`
}

// Figure is a full figure ready for Plotly.newPlot.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Colorscale spreads the definition's colors evenly over [0, 1]. A single
// color is placed at 1.
func Colorscale(def binning.Definition) []Stop {
	n := len(def.Colors)
	out := make([]Stop, n)
	for i, c := range def.Colors {
		pos := 1.0
		if n > 1 {
			pos = float64(i) / float64(n-1)
		}
		out[i] = Stop{Pos: pos, Color: c}
	}
	return out
}

// NewLayout returns the standard map layout with title.
func NewLayout(title string) Layout {
	l := Layout{Title: title, Margin: Margin{T: 60}}
	l.Geo.Projection.Type = Projection
	l.Geo.ShowLand = true
	l.Geo.LandColor = LandColor
	return l
}

// Build returns a one-trace figure coloring points by bin index.
func Build(points []Point, def binning.Definition, title string) Figure {
	return Figure{Data: []Trace{NewTrace(points, def)}, Layout: NewLayout(title)}
}

// NewTrace builds the categorical trace for points.
func NewTrace(points []Point, def binning.Definition) Trace {
	locs := make([]string, len(points))
	z := make([]*int, len(points))
	text := make([]string, len(points))
	for i, p := range points {
		locs[i] = p.ISO
		if p.Bin >= 0 {
			b := p.Bin
			z[i] = &b
		}
		text[i] = p.Hover
	}
	zmin, zmax := 0, def.Len()-1
	return Trace{
		Type:          "choropleth",
		LocationMode:  LocationISO3,
		Locations:     locs,
		Z:             z,
		Text:          text,
		HoverTemplate: "%{text}",
		ZMin:          &zmin,
		ZMax:          &zmax,
		Colorscale:    Colorscale(def),
		Marker:        Marker{Line: Line{Color: "black", Width: 0.3}},
		MissingColor:  MissingColor,
	}
}

// Outline returns a transparent trace that draws a red border around iso.
func Outline(iso, hover string) Trace {
	zero := 0
	hide := false
	return Trace{
		Type:          "choropleth",
		LocationMode:  LocationISO3,
		Locations:     []string{iso},
		Z:             []*int{&zero},
		HoverTemplate: hover,
		Colorscale:    []Stop{{0, "rgba(0,0,0,0)"}, {1, "rgba(0,0,0,0)"}},
		ShowLegend:    &hide,
		Marker:        Marker{Line: Line{Color: "red", Width: 3}},
	}
}
