// Package http exposes the pipeline over a web form and a JSON API.
package http

import (
	"net/http"
	"sync/atomic"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/receptro-ai/receptro/internal/metrics"
	"github.com/receptro-ai/receptro/internal/pipeline"
)

// Orchestrators holds the live orchestrator; config reloads swap it atomically.
type Orchestrators = atomic.Pointer[pipeline.Orchestrator]

// New constructs the HTTP handler for the server.
func New(orc *Orchestrators, m *metrics.Metrics) http.Handler {
	router := chi.NewMux()

	api := humachi.New(router, huma.DefaultConfig("Receptro Pipeline API", "1.0.0"))

	NewPipelineHandler(api, orc)
	NewResultsHandler(api, orc)

	router.Get("/", handleIndex)
	router.Get("/healthz", handleHealthz)
	router.Get("/v1/audio/{filename}", handleAudio(orc))
	router.Handle("/metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))

	return router
}

// handleHealthz reports process liveness.
func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleAudio serves generated audio replies from the audio output directory.
func handleAudio(orc *Orchestrators) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path, err := orc.Load().Store().AudioPath(chi.URLParam(r, "filename"))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, path)
	}
}
