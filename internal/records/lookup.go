package records

import (
	"sort"

	"github.com/KaramelBytes/carbonmap/internal/binning"
	"github.com/KaramelBytes/carbonmap/internal/dataset"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Interval is a central estimate with its bounds.
type Interval struct {
	Value dataset.Value
	Lower dataset.Value
	Upper dataset.Value
	CI    string
}

// PerHectareMetrics holds the normalized metrics for one entity, one
// Interval per requested Fields, in request order.
type PerHectareMetrics struct {
	ISO      string
	Country  string
	ForestHa float64
	Metrics  []Interval
}

// BuildPerHectareLookup normalizes each metric family by the shared
// denominator column and joins the results per ISO code. Only country rows
// with a positive denominator appear in the lookup.
func BuildPerHectareLookup(rows []dataset.Row, denominator string, families []Fields, def binning.Definition) map[string]PerHectareMetrics {
	countries := dataset.CountryRows(rows)
	out := make(map[string]PerHectareMetrics, len(countries))
	for fi, f := range families {
		for _, rec := range AssemblePerHectare(countries, f, denominator, def) {
			m, ok := out[rec.ISO]
			if !ok {
				ha, _ := dataset.ParseNumber(rec.Raw[denominator])
				m = PerHectareMetrics{
					ISO:      rec.ISO,
					Country:  rec.Country,
					ForestHa: ha,
					Metrics:  make([]Interval, len(families)),
				}
			}
			m.Metrics[fi] = Interval{Value: rec.Value, Lower: rec.Lower, Upper: rec.Upper, CI: rec.CI}
			out[rec.ISO] = m
		}
	}
	return out
}

// Sink columns in the bilateral-flow dataset.
const (
	SinkISOColumn  = "sink_iso"
	SinkNameColumn = "sink_country"
)

// Option is one selectable sink entity.
type Option struct {
	ISO  string `json:"iso"`
	Name string `json:"name"`
}

// SinkOptions returns the distinct sink entities of the bilateral dataset,
// keeping the first name seen per code, sorted by name with a
// locale-aware collator. Equal names are ordered by code. Codes are kept
// verbatim so they match the bilateral rows they select.
func SinkOptions(rows []dataset.Row) []Option {
	seen := make(map[string]struct{})
	var opts []Option
	for _, r := range rows {
		iso, name := r[SinkISOColumn], r[SinkNameColumn]
		if iso == "" || name == "" {
			continue
		}
		if _, ok := seen[iso]; ok {
			continue
		}
		seen[iso] = struct{}{}
		opts = append(opts, Option{ISO: iso, Name: name})
	}
	col := collate.New(language.English)
	sort.SliceStable(opts, func(i, j int) bool {
		if c := col.CompareString(opts[i].Name, opts[j].Name); c != 0 {
			return c < 0
		}
		return opts[i].ISO < opts[j].ISO
	})
	return opts
}
