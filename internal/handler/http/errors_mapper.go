package http

import (
	"errors"
	"net/http"

	"github.com/avoronov/go-library-api/internal/logger"
	"github.com/avoronov/go-library-api/internal/service"
	"github.com/avoronov/go-library-api/internal/store"
	"github.com/avoronov/go-library-api/internal/utils"
)

// unauthenticatedBody is the single 401 body for every token failure.
// Expired and otherwise-invalid tokens are deliberately indistinguishable to
// the caller; the distinction is logged only.
const unauthenticatedBody = "invalid or expired token"

// errorStatus maps service and store sentinels to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequestBody),
		errors.Is(err, service.ErrInvalidBookData),
		errors.Is(err, service.ErrBookAlreadyCheckedOut),
		errors.Is(err, service.ErrBookAlreadyAvailable):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrTokenInvalid),
		errors.Is(err, ErrMissingAuthHeader):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrAccessDenied):
		return http.StatusForbidden

	case errors.Is(err, store.ErrBookNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// errorMessage picks the public message for err. Internal failures and token
// details never reach the response body.
func errorMessage(err error, status int) string {
	switch status {
	case http.StatusUnauthorized:
		if errors.Is(err, service.ErrInvalidCredentials) {
			return service.ErrInvalidCredentials.Error()
		}
		return unauthenticatedBody

	case http.StatusInternalServerError:
		return "internal server error"

	default:
		return err.Error()
	}
}

// writeError logs err and answers with its mapped status and public message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)

	log := logger.FromRequest(r)
	event := log.Info()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	if _, werr := utils.WriteJSON(w, errorResponse{Error: errorMessage(err, status)}, status); werr != nil {
		log.Error().Err(werr).Msg("failed to write error response")
	}
}
