package api

import (
	"net/http"

	"go.uber.org/zap"

	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// Health godoc
// @Summary      Health check
// @Description  Pings the database and, when configured, Redis.
// @Tags         health
// @Produce      json
// @Success      200 {object} models.HealthResponse
// @Failure      503 {object} models.HealthResponse
// @Router       /healthz [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Health.Ping(r.Context()); err != nil {
		h.Log.Warn("health check failed", zap.Error(err))
		WriteJSON(w, http.StatusServiceUnavailable, sm.HealthResponse{Status: "unavailable"})
		return
	}
	WriteJSON(w, http.StatusOK, sm.HealthResponse{Status: "ok"})
}
