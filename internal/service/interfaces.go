package service

import (
	"context"

	"github.com/avoronov/go-library-api/models"
)

// AuthService issues and validates bearer tokens.
type AuthService interface {
	// Login verifies the credentials and returns a signed token carrying the
	// user's email and role. Unknown emails and wrong passwords both fail
	// with ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (models.Token, error)

	// ValidateToken verifies a compact token string and returns its claims.
	// Expired tokens fail with ErrTokenExpired, everything else with
	// ErrTokenInvalid.
	ValidateToken(ctx context.Context, tokenString string) (models.Claims, error)
}

// AuthzService decides whether a role satisfies a named policy.
type AuthzService interface {
	// Evaluate returns nil when role satisfies the policy, ErrAccessDenied
	// when it does not, and ErrUnknownPolicy for unregistered policy names.
	Evaluate(policy string, role models.Role) error

	// KnownPolicy reports whether the policy name is registered. Route setup
	// uses it to fail fast on typos instead of denying every request.
	KnownPolicy(policy string) bool
}

// LibraryService is the catalog and circulation core.
type LibraryService interface {
	GetBook(ctx context.Context, id int64) (models.Book, error)
	ListBooks(ctx context.Context) ([]models.Book, error)

	// CreateBook validates and persists a new book. New books are always
	// available regardless of caller input.
	CreateBook(ctx context.Context, title, author string) (models.Book, error)

	// UpdateBook applies a partial update; nil fields keep their stored
	// values.
	UpdateBook(ctx context.Context, id int64, update models.BookUpdate) (models.Book, error)

	DeleteBook(ctx context.Context, id int64) error

	// CheckoutBook atomically transitions the book from available to checked
	// out and returns the updated record.
	CheckoutBook(ctx context.Context, id int64) (models.Book, error)

	// CheckinBook atomically transitions the book from checked out back to
	// available and returns the updated record.
	CheckinBook(ctx context.Context, id int64) (models.Book, error)
}
