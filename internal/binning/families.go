package binning

import "math"

var inf = math.Inf(1)

// SCC bins country-level social cost of carbon (US$/tCO₂).
var SCC = Definition{
	Name:   "scc",
	Edges:  []float64{-inf, -3, -1, 0, 1, 3, 5, 10, 20, inf},
	Labels: []string{"< -3", "-3 to -1", "-1 to 0", "0 to 1", "1 to 3", "3 to 5", "5 to 10", "10 to 20", "> 20"},
	Colors: []string{"#214d8d", "#3d7cbd", "#97b9d6", "#fbd7c6", "#f38863", "#f26a44", "#e8452b", "#ce211a", "#a3241d"},
}

// Flux bins carbon fluxes (GtC/yr).
var Flux = Definition{
	Name:   "flux",
	Edges:  []float64{-inf, -0.1, -0.01, 0, 0.01, 0.1, 0.3, 0.5, 1, inf},
	Labels: []string{"< -0.1", "-0.1 to -0.01", "-0.01 to 0", "0 to 0.01", "0.01 to 0.1", "0.1 to 0.3", "0.3 to 0.5", "0.5 to 1", "> 1"},
	Colors: []string{"#116535", "#66bd63", "#a6d96a", "#ffe8a8", "#ffd27a", "#fdae61", "#f46d43", "#d73027", "#a3241d"},
}

// CCI bins carbon-cost-index values (US$ billion/yr).
var CCI = Definition{
	Name:  "cci",
	Edges: []float64{-inf, -100, -50, -20, -10, -1, 0, 1, 10, 20, 50, 100, inf},
	Labels: []string{"< -100", "-100 to -50", "-50 to -20", "-20 to -10", "-10 to -1", "-1 to 0",
		"0 to 1", "1 to 10", "10 to 20", "20 to 50", "50 to 100", "> 100"},
	Colors: []string{"#a3241d", "#ce211a", "#e8452b", "#f26a44", "#f38863", "#fbd7c6",
		"#c5d8e8", "#72aad6", "#4681c0", "#255596", "#163e75", "#10306d"},
}

// FlowPerHa bins bilateral flows per hectare of sink forest (US$/ha/yr).
// Zero-valued flows land in the first bin.
var FlowPerHa = Definition{
	Name:          "flow_per_ha",
	Edges:         []float64{0, 0.1, 0.5, 1, 3, 10, 30, 100, 300, inf},
	Labels:        []string{"0–0.1", "0.1–0.5", "0.5–1", "1–3", "3–10", "10–30", "30–100", "100–300", ">300"},
	Colors:        []string{"#eef4fb", "#d6e6f6", "#bcd7ee", "#9ecae1", "#72aad6", "#4681c0", "#255596", "#163e75", "#10306d"},
	IncludeLowest: true,
}

// Families lists every built-in definition.
func Families() []Definition {
	return []Definition{SCC, Flux, CCI, FlowPerHa}
}

// ByName returns the built-in definition called name.
func ByName(name string) (Definition, bool) {
	for _, d := range Families() {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}
