package dashboard

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/KaramelBytes/carbonmap/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(rows ...dataset.Row) *dataset.Table {
	seen := map[string]bool{}
	t := &dataset.Table{Rows: rows}
	for _, r := range rows {
		for k := range r {
			if !seen[k] {
				seen[k] = true
				t.Header = append(t.Header, k)
			}
		}
	}
	return t
}

func fixture(t *testing.T) *dataset.Context {
	t.Helper()
	baseline := table(
		dataset.Row{"iso": "Total", "Country": "World", "CSCC_median": "185.555", "CSCC_q17": "", "CSCC_q83": "300.1"},
		dataset.Row{"iso": "USA", "Country": "United States", "CSCC_median": "0", "CSCC_q17": "-1.005", "CSCC_q83": "2.3",
			"Fa_tf_mean": "-0.2", "Fa_tf_std": "0.0123", "Forest_ha": "3e8",
			"Fa_tf_Wglob_median": "3", "Fa_tf_Wglob_q17": "1.5", "Fa_tf_Wglob_q83": "6",
			"Fa_tf_Wnet_median": "-30", "Fa_tf_Wnet_q17": "-60", "Fa_tf_Wnet_q83": ""},
		dataset.Row{"iso": "BRA", "Country": "Brazil", "CSCC_median": "25", "CSCC_q17": "10", "CSCC_q83": "40",
			"Fa_tf_mean": "", "Forest_ha": "0", "Fa_tf_Wglob_median": "500"},
		dataset.Row{"iso": "ATA", "Country": "Antarctica", "CSCC_median": "1"},
		dataset.Row{"iso": "GRL", "Country": "Greenland", "CSCC_median": "1"},
	)
	dr3 := table(
		dataset.Row{"iso": "USA", "Country": "United States", "CSCC_median": "0.5", "CSCC_q17": "0.1", "CSCC_q83": "0.9"},
	)
	bilat := table(
		dataset.Row{"sink_iso": "USA", "sink_country": "United States", "target_iso": "BRA", "flow_per_ha_mean": "0", "flow_per_ha_q17": "0", "flow_per_ha_q83": "0.25", "forest_ha": "3e8"},
		dataset.Row{"sink_iso": "USA", "sink_country": "United States", "target_iso": "USA", "flow_per_ha_mean": "350", "flow_per_ha_q17": "", "flow_per_ha_q83": "400", "forest_ha": "3e8"},
		dataset.Row{"sink_iso": "BRA", "sink_country": "Brazil", "target_iso": "USA", "flow_per_ha_mean": "-2", "forest_ha": ""},
	)
	c, err := dataset.NewContext(map[dataset.Kind]*dataset.Table{
		dataset.Baseline:  baseline,
		dataset.DR3:       dr3,
		dataset.DR5:       table(),
		dataset.Endo:      table(),
		dataset.Bilateral: bilat,
	})
	require.NoError(t, err)
	return c
}

func TestCSCC(t *testing.T) {
	d := New(fixture(t), nil)
	p, err := d.CSCC("baseline")
	require.NoError(t, err)
	require.Len(t, p.Records, 2)
	assert.Equal(t, "USA", p.Records[0].ISO)
	assert.Equal(t, "-1 to 0", p.Records[0].Bin)
	assert.Equal(t, "[-1.01, 2.30]", p.Records[0].CI)
	assert.Equal(t, "> 20", p.Records[1].Bin)

	assert.True(t, p.Summary.Found)
	assert.Equal(t, "Median SCC: USD 185.56 / tCO₂ (66% CI: [NA, 300.10])", p.Summary.Text)
	assert.Equal(t, "CSCC median (US$/tCO₂) — 2.5% (baseline) Discounting", p.Figure.Layout.Title)
	tr := p.Figure.Data[0]
	assert.Equal(t, []string{"USA", "BRA"}, tr.Locations)
	assert.Equal(t, "<b>United States</b><br>CSCC: 0.00<br>66% CI: [-1.01, 2.30]<extra></extra>", tr.Text[0])

	p, err = d.CSCC("dr3")
	require.NoError(t, err)
	assert.False(t, p.Summary.Found)
	assert.Contains(t, p.Summary.Text, "not found")
	assert.Equal(t, "0 to 1", p.Records[0].Bin)

	_, err = d.CSCC("dr7")
	assert.True(t, errors.Is(err, ErrUnconfigured))
}

func TestFlux(t *testing.T) {
	d := New(fixture(t), nil)
	p, err := d.Flux("Fa_tf")
	require.NoError(t, err)
	assert.Equal(t, "Natural land sink (GtC/yr)", p.Figure.Layout.Title)
	require.Len(t, p.Records, 2)
	assert.Equal(t, "< -0.1", p.Records[0].Bin)
	assert.Equal(t, -1, p.Records[1].BinIndex)
	tr := p.Figure.Data[0]
	assert.Nil(t, tr.Z[1])
	assert.Equal(t, "<b>United States</b><br>Natural land sink: -0.200 GtC/yr<br>Std Dev (GtC/yr): 0.012<extra></extra>", tr.Text[0])
	assert.Equal(t, "<b>Brazil</b><br>Natural land sink: NA GtC/yr<br>Std Dev (GtC/yr): NA<extra></extra>", tr.Text[1])

	_, err = d.Flux("Fz")
	assert.ErrorIs(t, err, ErrUnconfigured)
}

func TestCCI(t *testing.T) {
	d := New(fixture(t), nil)
	p, err := d.CCI("Fa_tf", "Wglob")
	require.NoError(t, err)
	assert.False(t, p.Hint)
	assert.Equal(t, "Natural land sink — Global CCI (US$ billion/yr)", p.Title)
	assert.Equal(t, "1 to 10", p.Records[0].Bin)
	assert.Equal(t, "> 100", p.Records[1].Bin)

	p, err = d.CCI("Fa_tf", "Wnet")
	require.NoError(t, err)
	assert.True(t, p.Hint)
	assert.Equal(t, "-50 to -20", p.Records[0].Bin)
	assert.Equal(t, "", p.Records[0].CI)

	_, err = d.CCI("Fa_tf", "Wbad")
	assert.ErrorIs(t, err, ErrUnconfigured)
	_, err = d.CCI("bad", "Wglob")
	assert.ErrorIs(t, err, ErrUnconfigured)
}

func TestSinks(t *testing.T) {
	d := New(fixture(t), nil)
	sinks := d.Sinks()
	require.Len(t, sinks, 2)
	assert.Equal(t, "BRA", sinks[0].ISO)
	def, ok := d.DefaultSink()
	assert.True(t, ok)
	assert.Equal(t, "BRA", def)
}

func TestBilateral(t *testing.T) {
	d := New(fixture(t), nil)
	p, err := d.Bilateral("USA")
	require.NoError(t, err)
	assert.True(t, p.Found)
	assert.Equal(t, "United States", p.SinkName)
	assert.InDelta(t, 300.0, p.ForestMha.Float, 1e-9)

	require.Len(t, p.Metrics, 5)
	assert.Equal(t, "10.00", p.Metrics[0].Text)
	assert.Equal(t, "NA", p.Metrics[1].Text)
	assert.Equal(t, "-100.00", p.Metrics[4].Text)

	require.Len(t, p.Table, 5)
	assert.Equal(t, "Balance (Outbound − Inbound)", p.Table[4].Label)
	assert.Equal(t, "[5.00, 20.00]", p.Table[0].CI)
	assert.Equal(t, "", p.Table[4].CI)

	require.Len(t, p.Flows, 2)
	assert.Equal(t, ">300", p.Flows[0].Bin)
	assert.Equal(t, "", p.Flows[0].CI)
	assert.Equal(t, "0–0.1", p.Flows[1].Bin)
	assert.Equal(t, "[0.00, 0.25]", p.Flows[1].CI)

	require.Len(t, p.Figure.Data, 2)
	assert.Equal(t, "Bilateral CCI flows per hectare to United States's Natural Land Sink (US$/ha/yr)", p.Figure.Layout.Title)
	assert.Equal(t, "<b>United States</b><br>Forest area: 300.00 Mha<extra></extra>", p.Figure.Data[1].HoverTemplate)
	assert.Equal(t, []string{"USA"}, p.Figure.Data[1].Locations)
}

func TestBilateralPaddedSinkCode(t *testing.T) {
	bilat := table(
		dataset.Row{"sink_iso": "USA ", "sink_country": "United States", "target_iso": "BRA", "flow_per_ha_mean": "2", "forest_ha": "3e8"},
	)
	c, err := dataset.NewContext(map[dataset.Kind]*dataset.Table{
		dataset.Baseline:  table(dataset.Row{"iso": "BRA", "Country": "Brazil"}),
		dataset.DR3:       table(),
		dataset.DR5:       table(),
		dataset.Endo:      table(),
		dataset.Bilateral: bilat,
	})
	require.NoError(t, err)
	d := New(c, nil)
	def, ok := d.DefaultSink()
	require.True(t, ok)
	assert.Equal(t, "USA ", def)

	p, err := d.Bilateral(def)
	require.NoError(t, err)
	assert.Equal(t, "United States", p.SinkName)
	assert.InDelta(t, 300.0, p.ForestMha.Float, 1e-9)
	require.Len(t, p.Flows, 1)
	assert.InDelta(t, 2.0, p.Flows[0].Value.Float, 1e-12)
}

func TestBilateralUnknownSink(t *testing.T) {
	d := New(fixture(t), nil)
	p, err := d.Bilateral("BRA")
	require.NoError(t, err)
	assert.False(t, p.Found)
	for _, m := range p.Metrics {
		assert.Equal(t, Placeholder, m.Text)
	}
	assert.Nil(t, p.Table)
	assert.Equal(t, NoSinkMessage, p.TableMessage)
	assert.Equal(t, "Brazil", p.SinkName)
	assert.False(t, p.ForestMha.Valid)
	assert.Equal(t, "<b>Brazil</b><br>Forest area: NA Mha<extra></extra>", p.Figure.Data[1].HoverTemplate)
	assert.True(t, p.Flows[0].Saturated)

	p, err = d.Bilateral("XYZ")
	require.NoError(t, err)
	assert.Equal(t, "XYZ", p.SinkName)
	for _, f := range p.Flows {
		assert.Equal(t, -1, f.BinIndex)
	}

	_, err = d.Bilateral("")
	assert.ErrorIs(t, err, ErrUnconfigured)
}

func TestPanelJSON(t *testing.T) {
	d := New(fixture(t), nil)
	p, err := d.Bilateral("USA")
	require.NoError(t, err)
	b, err := json.Marshal(p)
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, `"sink_name":"United States"`)
	assert.Contains(t, s, `"figure":{"data":[`)
	assert.NotContains(t, s, "Raw")
}

func TestMarkdown(t *testing.T) {
	d := New(fixture(t), nil)
	cscc, err := d.CSCC("baseline")
	require.NoError(t, err)
	md := cscc.Markdown()
	assert.True(t, strings.HasPrefix(md, "[CSCC]\n"))
	assert.Contains(t, md, "- > 20: 1\n")
	assert.Contains(t, md, "| USA | United States | 0.00 | [-1.01, 2.30] | -1 to 0 |")

	flux, err := d.Flux("Fa_tf")
	require.NoError(t, err)
	assert.Contains(t, flux.Markdown(), "- missing: 1\n")

	cci, err := d.CCI("Fa_tf", "Wnet")
	require.NoError(t, err)
	assert.Contains(t, cci.Markdown(), "Positive balance")

	bil, err := d.Bilateral("BRA")
	require.NoError(t, err)
	assert.Contains(t, bil.Markdown(), NoSinkMessage)
}

func TestSchemaCoversConfig(t *testing.T) {
	s := Schema()
	base := strings.Join(s[dataset.Baseline], ",")
	for _, f := range Fluxes {
		assert.Contains(t, base, f.Mean)
		for _, m := range Measures {
			assert.Contains(t, base, CCIFields(f, m).Upper)
		}
	}
	assert.Len(t, s[dataset.Bilateral], 7)
	assert.Len(t, PerHectareFields(), 5)
	assert.Equal(t, "Fa_tf_Wnet_q83", PerHectareFields()[4].Upper)
}
