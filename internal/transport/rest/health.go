package rest

import (
	"context"
	"net/http"
	"time"
)

const healthProbeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	version string
	now     func() time.Time
}

func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, now: time.Now}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

type ComponentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live handles GET /live. It never touches the database.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready handles GET /ready: 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.probeDB(r.Context())
	writeJSON(w, statusFor(db), HealthResponse{Status: db.Status, Timestamp: h.now()})
}

// Health handles GET /health: readiness plus version and per-component
// latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.probeDB(r.Context())
	writeJSON(w, statusFor(db), HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Components: map[string]ComponentStatus{"database": db},
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) probeDB(ctx context.Context) ComponentStatus {
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return ComponentStatus{Status: "down"}
	}
	return ComponentStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusFor(c ComponentStatus) int {
	if c.Status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
