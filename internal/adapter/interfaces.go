// Package adapter provides the client-side view of the library API.
//
// The primary abstraction is [LibraryClient], which decouples the CLI from
// the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPLibraryClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/avoronov/go-library-api/models"
)

// LibraryClient defines transport-agnostic communication with the library
// API server. Implementations are responsible for serialization,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type LibraryClient interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Call it after a successful Login.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string if no token
	// has been set yet.
	Token() string

	// Login authenticates with the server. On success it stores the returned
	// bearer token via SetToken and returns the login response.
	Login(ctx context.Context, email, password string) (models.LoginResponse, error)

	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id int64) (models.Book, error)
	CreateBook(ctx context.Context, title, author string) (models.Book, error)
	DeleteBook(ctx context.Context, id int64) error

	// CheckoutBook checks the book out and returns the server's confirmation
	// message.
	CheckoutBook(ctx context.Context, id int64) (string, error)

	// CheckinBook returns the book and returns the server's confirmation
	// message.
	CheckinBook(ctx context.Context, id int64) (string, error)
}
