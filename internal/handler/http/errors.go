package http

import "errors"

var (
	// ErrInvalidRequestBody is answered with 400 when a request body cannot
	// be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrMissingAuthHeader is answered with 401 when a protected endpoint is
	// called without an Authorization header.
	ErrMissingAuthHeader = errors.New("authorization required")
)

// errorResponse is the JSON body of every error answer.
type errorResponse struct {
	Error string `json:"error"`
}
