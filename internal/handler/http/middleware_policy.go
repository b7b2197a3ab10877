package http

import (
	"fmt"
	"net/http"

	"github.com/avoronov/go-library-api/internal/utils"
)

// requirePolicy gates a route behind a named authorization policy. It runs
// after auth, so missing claims indicate a wiring mistake and answer 401.
//
// The policy name is checked at registration time: referencing an
// unregistered policy panics during route setup, failing startup instead of
// silently denying every request.
func (h *Handler) requirePolicy(policy string) func(http.Handler) http.Handler {
	if !h.services.Authz.KnownPolicy(policy) {
		panic(fmt.Sprintf("route registered with unknown authorization policy %q", policy))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := utils.GetClaimsFromContext(r.Context())
			if !ok {
				writeError(w, r, ErrMissingAuthHeader)
				return
			}

			if err := h.services.Authz.Evaluate(policy, claims.Role); err != nil {
				writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
