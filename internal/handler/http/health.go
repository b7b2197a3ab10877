package http

import (
	"net/http"

	"github.com/avoronov/go-library-api/internal/logger"
	"github.com/avoronov/go-library-api/internal/utils"
	"github.com/avoronov/go-library-api/models"
)

// Health handles GET /health: answers 200 while the storage backend is
// reachable, 503 otherwise.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.storages.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("storage ping failed")

		if _, werr := utils.WriteJSON(w, models.HealthResponse{Status: "unavailable"}, http.StatusServiceUnavailable); werr != nil {
			logger.FromRequest(r).Error().Err(werr).Msg("failed to write health response")
		}
		return
	}

	if _, err := utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("failed to write health response")
	}
}
