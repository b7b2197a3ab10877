package models

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// CreateBookRequest is the body of POST /books. Availability is not accepted
// from the caller; new books always start out available.
type CreateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// MessageResponse wraps a human-readable confirmation message, as returned by
// the checkout and checkin endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
