package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/KaramelBytes/carbonmap/internal/dashboard"
	"github.com/KaramelBytes/carbonmap/internal/records"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

type selectors struct {
	Scenarios []records.Option  `json:"scenarios"`
	Fluxes    []records.Option  `json:"fluxes"`
	Measures  []records.Option  `json:"measures"`
	Sinks     []records.Option  `json:"sinks"`
	Defaults  map[string]string `json:"defaults"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	b, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "index not available", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(b)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"load_id": s.dash.Data().ID,
	})
}

func (s *Server) handleSinks(w http.ResponseWriter, r *http.Request) {
	sel := selectors{
		Sinks:    s.dash.Sinks(),
		Defaults: map[string]string{"scenario": dashboard.DefaultScenario, "flux": dashboard.DefaultFlux, "measure": dashboard.DefaultMeasure},
	}
	for _, sc := range dashboard.Scenarios {
		sel.Scenarios = append(sel.Scenarios, records.Option{ISO: sc.Key, Name: sc.Label})
	}
	for _, f := range dashboard.Fluxes {
		sel.Fluxes = append(sel.Fluxes, records.Option{ISO: f.Key, Name: f.Label})
	}
	for _, m := range dashboard.Measures {
		sel.Measures = append(sel.Measures, records.Option{ISO: m.Key, Name: m.Label})
	}
	if sink, ok := s.dash.DefaultSink(); ok {
		sel.Defaults["sink"] = sink
	}
	writeJSON(w, http.StatusOK, sel)
}

func (s *Server) handleCSCC(w http.ResponseWriter, r *http.Request) {
	scenario := param(r, "scenario", dashboard.DefaultScenario)
	s.render(w, dashboard.PanelCSCC, func() (any, error) { return s.dash.CSCC(scenario) })
}

func (s *Server) handleFlux(w http.ResponseWriter, r *http.Request) {
	flux := param(r, "flux", dashboard.DefaultFlux)
	s.render(w, dashboard.PanelFlux, func() (any, error) { return s.dash.Flux(flux) })
}

func (s *Server) handleCCI(w http.ResponseWriter, r *http.Request) {
	flux := param(r, "flux", dashboard.DefaultFlux)
	measure := param(r, "measure", dashboard.DefaultMeasure)
	s.render(w, dashboard.PanelCCI, func() (any, error) { return s.dash.CCI(flux, measure) })
}

func (s *Server) handleBilateral(w http.ResponseWriter, r *http.Request) {
	def, _ := s.dash.DefaultSink()
	sink := param(r, "sink", def)
	s.render(w, dashboard.PanelBilateral, func() (any, error) { return s.dash.Bilateral(sink) })
}

// render runs one panel build, records its metrics and writes the result.
// Unconfigured selections answer 404 and leave the client's view untouched.
func (s *Server) render(w http.ResponseWriter, panel string, build func() (any, error)) {
	start := time.Now()
	p, err := build()
	switch {
	case errors.Is(err, dashboard.ErrUnconfigured):
		s.metrics.Observe(panel, "unconfigured", time.Since(start))
		s.log.Debug("render skipped", zap.String("panel", panel), zap.Error(err))
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case err != nil:
		s.metrics.Observe(panel, "error", time.Since(start))
		s.log.Error("render failed", zap.String("panel", panel), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "render failed"})
	default:
		s.metrics.Observe(panel, "ok", time.Since(start))
		writeJSON(w, http.StatusOK, p)
	}
}

func param(r *http.Request, key, def string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return def
}
