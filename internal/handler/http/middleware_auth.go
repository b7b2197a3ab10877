package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avoronov/go-library-api/internal/logger"
	"github.com/avoronov/go-library-api/internal/service"
	"github.com/avoronov/go-library-api/internal/utils"
)

// auth verifies the bearer token and stores its claims in the request
// context. Every failure mode answers 401 with the same body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, r, ErrMissingAuthHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(header)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrTokenInvalid, err))
			return
		}

		claims, err := h.services.Auth.ValidateToken(r.Context(), tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log := logger.FromRequest(r).With().
			Str("email", claims.Email()).
			Str("role", string(claims.Role)).
			Logger()
		ctx := log.WithContext(r.Context())
		ctx = context.WithValue(ctx, utils.ClaimsCtxKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
