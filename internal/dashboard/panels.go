package dashboard

import (
	"fmt"

	"github.com/KaramelBytes/carbonmap/internal/binning"
	"github.com/KaramelBytes/carbonmap/internal/choropleth"
	"github.com/KaramelBytes/carbonmap/internal/dataset"
	"github.com/KaramelBytes/carbonmap/internal/records"
)

// Panel names.
const (
	PanelCSCC      = "cscc"
	PanelFlux      = "flux"
	PanelCCI       = "cci"
	PanelBilateral = "bilateral"
)

// Panels lists every panel in navigation order.
var Panels = []string{PanelCSCC, PanelFlux, PanelCCI, PanelBilateral}

// Placeholder is shown for every per-hectare metric when the sink is unknown.
const Placeholder = "—"

// NoSinkMessage replaces the CI table when the sink is unknown.
const NoSinkMessage = "Select a sink country to populate this table."

// Summary is the global CSCC readout taken from the Total row.
type Summary struct {
	Found  bool          `json:"found"`
	Median dataset.Value `json:"median"`
	Lower  dataset.Value `json:"lower"`
	Upper  dataset.Value `json:"upper"`
	Text   string        `json:"text"`
}

func summarize(rows []dataset.Row) Summary {
	total, ok := dataset.TotalRow(rows)
	if !ok {
		return Summary{Text: "Global CSCC summary not found (missing iso == 'Total')."}
	}
	s := Summary{
		Found:  true,
		Median: dataset.Parse(total[CSCCFields.Value]),
		Lower:  dataset.Parse(total[CSCCFields.Lower]),
		Upper:  dataset.Parse(total[CSCCFields.Upper]),
	}
	s.Text = fmt.Sprintf("Median SCC: USD %s / tCO₂ (66%% CI: [%s, %s])",
		records.Format(s.Median, 2), records.Format(s.Lower, 2), records.Format(s.Upper, 2))
	return s
}

// CSCCPanel is the country-level social cost of carbon map.
type CSCCPanel struct {
	Scenario Scenario          `json:"-"`
	Label    string            `json:"scenario"`
	Summary  Summary           `json:"summary"`
	Records  []records.Record  `json:"records"`
	Figure   choropleth.Figure `json:"figure"`
}

// CSCC renders the SCC panel for a scenario key.
func (d *Dashboard) CSCC(scenario string) (*CSCCPanel, error) {
	sc, err := LookupScenario(scenario)
	if err != nil {
		return nil, err
	}
	rows := d.data.Rows(sc.Dataset)
	recs := records.Assemble(dataset.CountryRows(rows), CSCCFields, binning.SCC)
	d.warnSaturated(PanelCSCC, binning.SCC, recs)

	points := make([]choropleth.Point, len(recs))
	for i, r := range recs {
		points[i] = choropleth.Point{
			ISO: r.ISO,
			Bin: r.BinIndex,
			Hover: choropleth.Hover(r.Country, "CSCC: "+records.Format(r.Value, 2),
				choropleth.Extra{Label: "66% CI", Text: r.CI}),
		}
	}
	title := fmt.Sprintf("CSCC median (US$/tCO₂) — %s Discounting", sc.Label)
	return &CSCCPanel{
		Scenario: sc,
		Label:    sc.Label,
		Summary:  summarize(rows),
		Records:  recs,
		Figure:   choropleth.Build(points, binning.SCC, title),
	}, nil
}

// FluxPanel is the carbon flux map.
type FluxPanel struct {
	Flux    Flux              `json:"-"`
	Label   string            `json:"flux"`
	Records []records.Record  `json:"records"`
	Figure  choropleth.Figure `json:"figure"`
}

// Flux renders the flux panel for a flux key, from the baseline dataset.
func (d *Dashboard) Flux(flux string) (*FluxPanel, error) {
	f, err := LookupFlux(flux)
	if err != nil {
		return nil, err
	}
	rows := dataset.CountryRows(d.data.Rows(dataset.Baseline))
	recs := records.Assemble(rows, records.Fields{Value: f.Mean}, binning.Flux)
	d.warnSaturated(PanelFlux, binning.Flux, recs)

	points := make([]choropleth.Point, len(recs))
	for i, r := range recs {
		std := dataset.Parse(r.Raw[f.Std])
		points[i] = choropleth.Point{
			ISO: r.ISO,
			Bin: r.BinIndex,
			Hover: choropleth.Hover(r.Country,
				fmt.Sprintf("%s: %s GtC/yr", f.Label, records.Format(r.Value, 3)),
				choropleth.Extra{Label: "Std Dev (GtC/yr)", Text: records.Format(std, 3)}),
		}
	}
	return &FluxPanel{
		Flux:    f,
		Label:   f.Label,
		Records: recs,
		Figure:  choropleth.Build(points, binning.Flux, fmt.Sprintf("%s (GtC/yr)", f.Label)),
	}, nil
}

// CCIPanel is the carbon-cost-index map.
type CCIPanel struct {
	Flux    Flux              `json:"-"`
	Measure Measure           `json:"-"`
	Title   string            `json:"title"`
	Hint    bool              `json:"hint"`
	Records []records.Record  `json:"records"`
	Figure  choropleth.Figure `json:"figure"`
}

// CCI renders the CCI panel for a (flux, measure) pair.
func (d *Dashboard) CCI(flux, measure string) (*CCIPanel, error) {
	f, err := LookupFlux(flux)
	if err != nil {
		return nil, err
	}
	m, err := LookupMeasure(measure)
	if err != nil {
		return nil, err
	}
	rows := dataset.CountryRows(d.data.Rows(dataset.Baseline))
	recs := records.Assemble(rows, CCIFields(f, m), binning.CCI)
	d.warnSaturated(PanelCCI, binning.CCI, recs)

	points := make([]choropleth.Point, len(recs))
	for i, r := range recs {
		points[i] = choropleth.Point{
			ISO: r.ISO,
			Bin: r.BinIndex,
			Hover: choropleth.Hover(r.Country,
				fmt.Sprintf("%s: %s US$ bn/yr", m.Label, records.Format(r.Value, 2)),
				choropleth.Extra{Label: "66% CI", Text: r.CI}),
		}
	}
	title := fmt.Sprintf("%s — %s (US$ billion/yr)", f.Label, m.Label)
	return &CCIPanel{
		Flux:    f,
		Measure: m,
		Title:   title,
		Hint:    m.Key == BalanceMeasure,
		Records: recs,
		Figure:  choropleth.Build(points, binning.CCI, title),
	}, nil
}

// MetricCell is one per-hectare readout.
type MetricCell struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

// CIRow is one row of the per-hectare confidence-interval table.
type CIRow struct {
	Label  string `json:"label"`
	Median string `json:"median"`
	CI     string `json:"ci"`
}

// BilateralPanel shows flows per hectare into one sink's natural land sink.
type BilateralPanel struct {
	Sink         string            `json:"sink"`
	SinkName     string            `json:"sink_name"`
	ForestMha    dataset.Value     `json:"forest_mha"`
	Found        bool              `json:"found"`
	Metrics      []MetricCell      `json:"metrics"`
	Table        []CIRow           `json:"table,omitempty"`
	TableMessage string            `json:"table_message,omitempty"`
	Flows        []records.Record  `json:"flows"`
	Figure       choropleth.Figure `json:"figure"`
}

// Bilateral renders the per-hectare panel for a sink ISO code. An empty
// sink is unconfigured; an unknown sink renders placeholders.
func (d *Dashboard) Bilateral(sink string) (*BilateralPanel, error) {
	if sink == "" {
		return nil, unconfigured("sink", sink)
	}
	p := &BilateralPanel{Sink: sink}
	p.Metrics, p.Table, p.Found = d.perHectareWidgets(sink)
	if !p.Found {
		p.TableMessage = NoSinkMessage
	}

	var sub []dataset.Row
	for _, r := range d.data.Rows(dataset.Bilateral) {
		if r[records.SinkISOColumn] == sink {
			sub = append(sub, r)
		}
	}
	p.SinkName = sink
	if len(sub) > 0 {
		if n := sub[0][records.SinkNameColumn]; n != "" {
			p.SinkName = n
		}
		if ha, ok := dataset.ParseNumber(sub[0][SinkForestColumn]); ok && ha > 0 {
			p.ForestMha = dataset.Of(ha / 1e6)
		}
	}

	byTarget := make(map[string]dataset.Row, len(sub))
	for _, r := range sub {
		byTarget[r[TargetISOColumn]] = r
	}
	countries := dataset.CountryRows(d.data.Rows(dataset.Baseline))
	joined := make([]dataset.Row, len(countries))
	for i, c := range countries {
		j := dataset.Row{
			dataset.ISOColumn:     c[dataset.ISOColumn],
			records.CountryColumn: records.DisplayName(c),
		}
		if f, ok := byTarget[c[dataset.ISOColumn]]; ok {
			j[FlowMeanColumn] = f[FlowMeanColumn]
			j[FlowLowerColumn] = f[FlowLowerColumn]
			j[FlowUpperColumn] = f[FlowUpperColumn]
		}
		joined[i] = j
	}
	fields := records.Fields{Value: FlowMeanColumn, Lower: FlowLowerColumn, Upper: FlowUpperColumn}
	p.Flows = records.Assemble(joined, fields, binning.FlowPerHa)
	d.warnSaturated(PanelBilateral, binning.FlowPerHa, p.Flows)

	points := make([]choropleth.Point, len(p.Flows))
	for i, r := range p.Flows {
		points[i] = choropleth.Point{
			ISO: r.ISO,
			Bin: r.BinIndex,
			Hover: choropleth.Hover(r.Country, "US$/ha/yr: "+records.Format(r.Value, 2),
				choropleth.Extra{Label: "66% CI", Text: r.CI}),
		}
	}
	title := fmt.Sprintf("Bilateral CCI flows per hectare to %s's Natural Land Sink (US$/ha/yr)", p.SinkName)
	p.Figure = choropleth.Build(points, binning.FlowPerHa, title)
	outline := choropleth.Hover(p.SinkName, "Forest area: "+records.Format(p.ForestMha, 2)+" Mha")
	p.Figure.Data = append(p.Figure.Data, choropleth.Outline(sink, outline))
	return p, nil
}

func (d *Dashboard) perHectareWidgets(sink string) ([]MetricCell, []CIRow, bool) {
	m, ok := d.perHa[sink]
	cells := make([]MetricCell, len(Measures))
	for i, ms := range Measures {
		cells[i] = MetricCell{Key: ms.Key, Label: ms.Label, Text: Placeholder}
		if ok {
			cells[i].Text = records.Format(m.Metrics[i].Value, 2)
		}
	}
	if !ok {
		return cells, nil, false
	}
	rows := make([]CIRow, len(Measures))
	for i, ms := range Measures {
		rows[i] = CIRow{
			Label:  ms.TableLabel,
			Median: records.Format(m.Metrics[i].Value, 2),
			CI:     m.Metrics[i].CI,
		}
	}
	return cells, rows, true
}
