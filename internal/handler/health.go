package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rlwai/shop-api/internal/config"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// GET /health
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), config.DBPingTimeout)
	defer cancel()

	status, code := "ok", http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("health check: database ping failed")
		status, code = "degraded", http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status":    status,
		"timestamp": time.Now().UnixMilli(),
	})
}
