package dashboard

import (
	"errors"
	"fmt"

	"github.com/KaramelBytes/carbonmap/internal/dataset"
	"github.com/KaramelBytes/carbonmap/internal/records"
)

// ErrUnconfigured is returned for a selector value with no configuration.
// Callers skip the render.
var ErrUnconfigured = errors.New("unconfigured selection")

func unconfigured(kind, key string) error {
	return fmt.Errorf("%w: %s %q", ErrUnconfigured, kind, key)
}

// Scenario is a discounting scenario backed by one dataset.
type Scenario struct {
	Key     string
	Label   string
	Dataset dataset.Kind
}

// Scenarios in selector order.
var Scenarios = []Scenario{
	{Key: "baseline", Label: "2.5% (baseline)", Dataset: dataset.Baseline},
	{Key: "dr3", Label: "3%", Dataset: dataset.DR3},
	{Key: "dr5", Label: "5%", Dataset: dataset.DR5},
	{Key: "endo", Label: "Endogenous", Dataset: dataset.Endo},
}

// DefaultScenario is selected on first render.
const DefaultScenario = "baseline"

// CSCCFields are the country-level SCC columns shared by every scenario.
var CSCCFields = records.Fields{Value: "CSCC_median", Lower: "CSCC_q17", Upper: "CSCC_q83"}

// LookupScenario resolves a scenario key.
func LookupScenario(key string) (Scenario, error) {
	for _, s := range Scenarios {
		if s.Key == key {
			return s, nil
		}
	}
	return Scenario{}, unconfigured("scenario", key)
}

// Flux is a carbon flux type.
type Flux struct {
	Key   string
	Label string
	Mean  string
	Std   string
}

// Fluxes in selector order.
var Fluxes = []Flux{
	{Key: "Fa_tf", Label: "Natural land sink", Mean: "Fa_tf_mean", Std: "Fa_tf_std"},
	{Key: "Fb", Label: "Land-use change emissions", Mean: "Fb_mean", Std: "Fb_std"},
	{Key: "Fc", Label: "Fossil fuel emissions", Mean: "Fc_mean", Std: "Fc_std"},
	{Key: "Fab_tf", Label: "Net land flux", Mean: "Fab_tf_mean", Std: "Fab_tf_std"},
	{Key: "Fabc_tf", Label: "Net total flux", Mean: "Fabc_tf_mean", Std: "Fabc_tf_std"},
}

// DefaultFlux is selected on first render.
const DefaultFlux = "Fa_tf"

// LookupFlux resolves a flux key.
func LookupFlux(key string) (Flux, error) {
	for _, f := range Fluxes {
		if f.Key == key {
			return f, nil
		}
	}
	return Flux{}, unconfigured("flux", key)
}

// Measure is a CCI decomposition.
type Measure struct {
	Key   string
	Label string
	// TableLabel names the measure in the per-hectare CI table.
	TableLabel string
}

// Measures in selector order. The last one is the transboundary balance.
var Measures = []Measure{
	{Key: "Wglob", Label: "Global CCI", TableLabel: "Global CCI"},
	{Key: "Wdom", Label: "Domestic CCI", TableLabel: "Domestic CCI"},
	{Key: "Wout", Label: "Outbound CCI", TableLabel: "Outbound CCI"},
	{Key: "Win", Label: "Inbound CCI", TableLabel: "Inbound CCI"},
	{Key: "Wnet", Label: "Balance of Transboundary CCI", TableLabel: "Balance (Outbound − Inbound)"},
}

// DefaultMeasure is selected on first render.
const DefaultMeasure = "Wglob"

// BalanceMeasure shows the interpretation hint.
const BalanceMeasure = "Wnet"

// LookupMeasure resolves a measure key.
func LookupMeasure(key string) (Measure, error) {
	for _, m := range Measures {
		if m.Key == key {
			return m, nil
		}
	}
	return Measure{}, unconfigured("measure", key)
}

// CCIFields returns the typed column triple for a (flux, measure) pair.
func CCIFields(f Flux, m Measure) records.Fields {
	prefix := f.Key + "_" + m.Key
	return records.Fields{Value: prefix + "_median", Lower: prefix + "_q17", Upper: prefix + "_q83"}
}

// Per-hectare metrics are computed for the natural land sink only.
const (
	PerHectareFlux = "Fa_tf"
	ForestColumn   = "Forest_ha"
)

// PerHectareFields lists the CCI columns normalized per hectare of forest,
// one per measure in Measures order.
func PerHectareFields() []records.Fields {
	f, _ := LookupFlux(PerHectareFlux)
	out := make([]records.Fields, len(Measures))
	for i, m := range Measures {
		out[i] = CCIFields(f, m)
	}
	return out
}

// Bilateral-flow columns.
const (
	TargetISOColumn  = "target_iso"
	FlowMeanColumn   = "flow_per_ha_mean"
	FlowLowerColumn  = "flow_per_ha_q17"
	FlowUpperColumn  = "flow_per_ha_q83"
	SinkForestColumn = "forest_ha"
)

// Schema lists every column the panels read, per dataset. It is checked
// once when the datasets are loaded.
func Schema() dataset.Schema {
	base := []string{dataset.ISOColumn, records.CountryColumn, ForestColumn}
	base = append(base, fieldColumns(CSCCFields)...)
	for _, f := range Fluxes {
		base = append(base, f.Mean, f.Std)
		for _, m := range Measures {
			base = append(base, fieldColumns(CCIFields(f, m))...)
		}
	}
	scenario := append([]string{dataset.ISOColumn}, fieldColumns(CSCCFields)...)
	return dataset.Schema{
		dataset.Baseline: base,
		dataset.DR3:      scenario,
		dataset.DR5:      scenario,
		dataset.Endo:     scenario,
		dataset.Bilateral: {
			records.SinkISOColumn, records.SinkNameColumn, TargetISOColumn,
			FlowMeanColumn, FlowLowerColumn, FlowUpperColumn, SinkForestColumn,
		},
	}
}

func fieldColumns(f records.Fields) []string {
	return []string{f.Value, f.Lower, f.Upper}
}
