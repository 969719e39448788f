// Package records joins raw dataset rows with their derived display fields.
package records

import (
	"github.com/KaramelBytes/carbonmap/internal/binning"
	"github.com/KaramelBytes/carbonmap/internal/dataset"
)

// CountryColumn holds the display name in the country-level datasets.
const CountryColumn = "Country"

// PerHectareScale converts aggregate values over hectares into the
// per-hectare rate used across the datasets.
const PerHectareScale = 1e9

// Fields names the central estimate and interval bound columns. Lower and
// Upper may be empty when a dataset has no interval.
type Fields struct {
	Value string
	Lower string
	Upper string
}

// Record is one render-ready entity.
type Record struct {
	ISO       string        `json:"iso"`
	Country   string        `json:"country"`
	Value     dataset.Value `json:"value"`
	Lower     dataset.Value `json:"lower"`
	Upper     dataset.Value `json:"upper"`
	CI        string        `json:"ci"`
	Bin       string        `json:"bin"`
	BinIndex  int           `json:"bin_index"`
	Saturated bool          `json:"saturated,omitempty"`
	// Raw is a private copy of the source row.
	Raw dataset.Row `json:"-"`
}

// Assemble builds one Record per row.
func Assemble(rows []dataset.Row, f Fields, def binning.Definition) []Record {
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, build(r, f, def, identity))
	}
	return out
}

// AssemblePerHectare builds records normalized by the denominator column
// (hectares) as (v / denom) * 1e9. Rows whose denominator is missing or not
// positive are dropped.
func AssemblePerHectare(rows []dataset.Row, f Fields, denominator string, def binning.Definition) []Record {
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		ha, ok := dataset.ParseNumber(r[denominator])
		if !ok || ha <= 0 {
			continue
		}
		out = append(out, build(r, f, def, func(v dataset.Value) dataset.Value {
			return PerHectare(v, ha)
		}))
	}
	return out
}

// PerHectare normalizes v by hectares; missing stays missing.
func PerHectare(v dataset.Value, hectares float64) dataset.Value {
	if !v.Valid || hectares <= 0 {
		return dataset.Missing()
	}
	return dataset.Of((v.Float / hectares) * PerHectareScale)
}

func identity(v dataset.Value) dataset.Value { return v }

func build(r dataset.Row, f Fields, def binning.Definition, norm func(dataset.Value) dataset.Value) Record {
	rec := Record{
		ISO:     r[dataset.ISOColumn],
		Country: DisplayName(r),
		Value:   norm(dataset.Parse(r[f.Value])),
		Raw:     r.Clone(),
	}
	if f.Lower != "" {
		rec.Lower = norm(dataset.Parse(r[f.Lower]))
	}
	if f.Upper != "" {
		rec.Upper = norm(dataset.Parse(r[f.Upper]))
	}
	rec.CI = FormatCI(rec.Lower, rec.Upper)
	idx, exact := def.Locate(rec.Value)
	rec.BinIndex = idx
	if idx >= 0 {
		rec.Bin = def.Labels[idx]
		rec.Saturated = !exact
	}
	return rec
}

// DisplayName returns the Country column, falling back to the ISO code.
func DisplayName(r dataset.Row) string {
	if c, ok := r[CountryColumn]; ok && c != "" {
		return c
	}
	return r[dataset.ISOColumn]
}

// Saturated returns the records that fell outside every interval.
func Saturated(recs []Record) []Record {
	var out []Record
	for _, r := range recs {
		if r.Saturated {
			out = append(out, r)
		}
	}
	return out
}
