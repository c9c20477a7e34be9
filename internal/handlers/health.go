package handlers

import (
	"net/http"
	"time"
)

// ReadinessChecker reports whether the service finished its startup work.
type ReadinessChecker func() bool

// HealthHandlers serves the liveness and readiness probes.
type HealthHandlers struct {
	started time.Time
	ready   ReadinessChecker
}

// NewHealthHandlers constructs health handlers. A nil checker means the
// service is ready as soon as it is serving.
func NewHealthHandlers(ready ReadinessChecker) *HealthHandlers {
	return &HealthHandlers{
		started: time.Now(),
		ready:   ready,
	}
}

// Healthz reports process liveness.
func (h *HealthHandlers) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"uptime":    time.Since(h.started).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Readyz reports whether the catalog load has completed.
func (h *HealthHandlers) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil && !h.ready() {
		writeJSONResponse(w, http.StatusServiceUnavailable, map[string]any{"status": "loading"})
		return
	}
	writeJSONResponse(w, http.StatusOK, map[string]any{"status": "ready"})
}
