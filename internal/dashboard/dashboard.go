// Package dashboard assembles the four map panels from the loaded datasets.
//
// A Dashboard is built once per load and is read-only afterwards; every
// panel call recomputes its records from the shared tables.
package dashboard

import (
	"github.com/KaramelBytes/carbonmap/internal/binning"
	"github.com/KaramelBytes/carbonmap/internal/dataset"
	"github.com/KaramelBytes/carbonmap/internal/records"
	"go.uber.org/zap"
)

// Dashboard serves panels from one immutable dataset context.
type Dashboard struct {
	data  *dataset.Context
	perHa map[string]records.PerHectareMetrics
	sinks []records.Option
	log   *zap.Logger
}

// New builds the per-hectare lookup and the sink options for data.
func New(data *dataset.Context, log *zap.Logger) *Dashboard {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Dashboard{
		data:  data,
		perHa: records.BuildPerHectareLookup(data.Rows(dataset.Baseline), ForestColumn, PerHectareFields(), binning.CCI),
		sinks: records.SinkOptions(data.Rows(dataset.Bilateral)),
		log:   log.Named("dashboard"),
	}
	d.log.Info("dashboard ready",
		zap.String("load_id", data.ID),
		zap.Int("per_ha_entities", len(d.perHa)),
		zap.Int("sinks", len(d.sinks)))
	return d
}

// Data returns the underlying dataset context.
func (d *Dashboard) Data() *dataset.Context { return d.data }

// Sinks returns the sink selector options, sorted by name.
func (d *Dashboard) Sinks() []records.Option {
	out := make([]records.Option, len(d.sinks))
	copy(out, d.sinks)
	return out
}

// DefaultSink returns the first sink option.
func (d *Dashboard) DefaultSink() (string, bool) {
	if len(d.sinks) == 0 {
		return "", false
	}
	return d.sinks[0].ISO, true
}

// PerHectare returns the per-hectare metrics of iso.
func (d *Dashboard) PerHectare(iso string) (records.PerHectareMetrics, bool) {
	m, ok := d.perHa[iso]
	return m, ok
}

func (d *Dashboard) warnSaturated(panel string, def binning.Definition, recs []records.Record) {
	for _, r := range records.Saturated(recs) {
		d.log.Warn("value outside bin range",
			zap.String("panel", panel),
			zap.String("bins", def.Name),
			zap.String("iso", r.ISO),
			zap.Float64("value", r.Value.Float))
	}
}
