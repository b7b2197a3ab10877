package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avoronov/go-library-api/internal/logger"
	"github.com/avoronov/go-library-api/internal/utils"
	"github.com/avoronov/go-library-api/models"
)

// Login handles POST /login: verifies the credentials and returns a signed
// bearer token together with the authenticated email and role.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	token, err := h.services.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.LoginResponse{
		Token: token.SignedString,
		Email: token.Email(),
		Role:  token.Role,
	}
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("failed to write login response")
	}
}
