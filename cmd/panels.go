package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/carbonmap/internal/choropleth"
	"github.com/KaramelBytes/carbonmap/internal/dashboard"
	"github.com/spf13/cobra"
)

// Selector flags shared by render, summary and export.
var (
	selScenario string
	selFlux     string
	selMeasure  string
	selSink     string
)

func addSelectorFlags(c *cobra.Command) {
	c.Flags().StringVar(&selScenario, "scenario", dashboard.DefaultScenario, "discounting scenario (baseline, dr3, dr5, endo)")
	c.Flags().StringVar(&selFlux, "flux", dashboard.DefaultFlux, "carbon flux type")
	c.Flags().StringVar(&selMeasure, "measure", dashboard.DefaultMeasure, "CCI measure (Wglob, Wdom, Wout, Win, Wnet)")
	c.Flags().StringVar(&selSink, "sink", "", "sink country ISO code (default: first sink by name)")
}

// panel is a rendered dashboard panel.
type panel interface {
	Markdown() string
}

func sinkOrDefault(d *dashboard.Dashboard) string {
	if selSink != "" {
		return selSink
	}
	s, _ := d.DefaultSink()
	return s
}

// buildPanel renders one named panel with the current selector flags.
func buildPanel(d *dashboard.Dashboard, name string) (panel, choropleth.Figure, error) {
	switch strings.ToLower(name) {
	case dashboard.PanelCSCC:
		p, err := d.CSCC(selScenario)
		if err != nil {
			return nil, choropleth.Figure{}, err
		}
		return p, p.Figure, nil
	case dashboard.PanelFlux:
		p, err := d.Flux(selFlux)
		if err != nil {
			return nil, choropleth.Figure{}, err
		}
		return p, p.Figure, nil
	case dashboard.PanelCCI:
		p, err := d.CCI(selFlux, selMeasure)
		if err != nil {
			return nil, choropleth.Figure{}, err
		}
		return p, p.Figure, nil
	case dashboard.PanelBilateral:
		p, err := d.Bilateral(sinkOrDefault(d))
		if err != nil {
			return nil, choropleth.Figure{}, err
		}
		return p, p.Figure, nil
	}
	return nil, choropleth.Figure{}, fmt.Errorf("unknown panel: %s (use %s)", name, strings.Join(dashboard.Panels, ", "))
}
