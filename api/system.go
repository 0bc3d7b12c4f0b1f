package api

import (
	"net/http"

	"log/slog"

	"github.com/fieldsolutions/backend/internal/config"
	"github.com/fieldsolutions/backend/internal/db"
)

// SystemHandler serves the liveness and readiness probes plus the static
// application identity endpoints.
type SystemHandler struct {
	cfg *config.Config
	db  *db.DB
}

func NewSystemHandler(cfg *config.Config, d *db.DB) *SystemHandler {
	return &SystemHandler{cfg: cfg, db: d}
}

type healthResponse struct {
	Status  string `json:"status"`
	AppName string `json:"app_name"`
	Version string `json:"version"`
}

type readinessResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	AppName  string `json:"app_name"`
}

func (h *SystemHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, healthResponse{
		Status:  "healthy",
		AppName: h.cfg.AppName,
		Version: config.Version,
	}, http.StatusOK)
}

// ReadinessHandler reports store connectivity. A failed round trip is
// downgraded to a "not_ready" status, never an error response.
func (h *SystemHandler) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	resp := readinessResponse{
		Status:   "ready",
		Database: "connected",
		AppName:  h.cfg.AppName,
	}
	if err := h.db.Ping(r.Context()); err != nil {
		logger.Warn("readiness probe failed", slog.Any("err", err))
		resp.Status = "not_ready"
		resp.Database = "disconnected"
	}
	writeJSON(w, resp, http.StatusOK)
}

func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"version": version, "buildTime": buildTime}, http.StatusOK)
	}
}

func (h *SystemHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"app_name": h.cfg.AppName,
		"version":  config.Version,
	}, http.StatusOK)
}
