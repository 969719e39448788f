package dashboard

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/carbonmap/internal/binning"
	"github.com/KaramelBytes/carbonmap/internal/records"
)

// Markdown renders the panel as a compact text summary.
func (p *CSCCPanel) Markdown() string {
	var b strings.Builder
	b.WriteString("[CSCC]\n")
	b.WriteString(fmt.Sprintf("Scenario: %s\n", p.Label))
	b.WriteString(p.Summary.Text + "\n\n")
	writeRecords(&b, "CSCC (US$/tCO₂)", p.Records, binning.SCC, 2, true)
	return b.String()
}

// Markdown renders the panel as a compact text summary.
func (p *FluxPanel) Markdown() string {
	var b strings.Builder
	b.WriteString("[FLUX]\n")
	b.WriteString(fmt.Sprintf("Flux: %s (GtC/yr)\n\n", p.Label))
	writeRecords(&b, "Mean (GtC/yr)", p.Records, binning.Flux, 3, false)
	return b.String()
}

// Markdown renders the panel as a compact text summary.
func (p *CCIPanel) Markdown() string {
	var b strings.Builder
	b.WriteString("[CCI]\n")
	b.WriteString(p.Title + "\n")
	if p.Hint {
		b.WriteString("Positive balance: outbound CCI exceeds inbound CCI.\n")
	}
	b.WriteString("\n")
	writeRecords(&b, "Median (US$ bn/yr)", p.Records, binning.CCI, 2, true)
	return b.String()
}

// Markdown renders the panel as a compact text summary.
func (p *BilateralPanel) Markdown() string {
	var b strings.Builder
	b.WriteString("[BILATERAL FLOWS]\n")
	b.WriteString(fmt.Sprintf("Sink: %s (%s)\n", p.SinkName, p.Sink))
	b.WriteString(fmt.Sprintf("Forest area: %s Mha\n\n", records.Format(p.ForestMha, 2)))

	b.WriteString("[PER HECTARE]\n")
	for _, m := range p.Metrics {
		b.WriteString(fmt.Sprintf("- %s: %s\n", m.Label, m.Text))
	}
	b.WriteString("\n")
	if p.Found {
		b.WriteString("| Measure | Median (US$/ha/yr) | 66% CI |\n|---|---|---|\n")
		for _, r := range p.Table {
			b.WriteString(fmt.Sprintf("| %s | %s | %s |\n", r.Label, r.Median, r.CI))
		}
	} else {
		b.WriteString(p.TableMessage + "\n")
	}
	b.WriteString("\n")
	writeRecords(&b, "US$/ha/yr", p.Flows, binning.FlowPerHa, 2, true)
	return b.String()
}

func writeRecords(b *strings.Builder, valueHeader string, recs []records.Record, def binning.Definition, decimals int, withCI bool) {
	counts := make([]int, def.Len())
	missing := 0
	for _, r := range recs {
		if r.BinIndex < 0 {
			missing++
			continue
		}
		counts[r.BinIndex]++
	}
	b.WriteString("[BINS]\n")
	for i, l := range def.Labels {
		b.WriteString(fmt.Sprintf("- %s: %d\n", l, counts[i]))
	}
	b.WriteString(fmt.Sprintf("- missing: %d\n\n", missing))

	b.WriteString("[COUNTRIES]\n")
	if withCI {
		b.WriteString(fmt.Sprintf("| ISO | Country | %s | 66%% CI | Bin |\n|---|---|---|---|---|\n", valueHeader))
	} else {
		b.WriteString(fmt.Sprintf("| ISO | Country | %s | Bin |\n|---|---|---|---|\n", valueHeader))
	}
	for _, r := range recs {
		bin := r.Bin
		if bin == "" {
			bin = records.NA
		}
		if withCI {
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n", r.ISO, safeCell(r.Country), records.Format(r.Value, decimals), r.CI, bin))
		} else {
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", r.ISO, safeCell(r.Country), records.Format(r.Value, decimals), bin))
		}
	}
}

func safeCell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}
