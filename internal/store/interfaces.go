package store

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

import (
	"context"

	"github.com/avoronov/go-library-api/models"
)

// UserRepository is the credential store. The core reads user records to
// authenticate logins; writes happen only at seed time.
type UserRepository interface {
	// CreateUser persists a new account and returns it with the
	// server-assigned UserID. Duplicate emails fail with
	// ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up an account by exact, case-sensitive email
	// match. Returns ErrNoUserWasFound when absent.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// CountUsers reports the number of stored accounts. Used to keep
	// startup seeding idempotent.
	CountUsers(ctx context.Context) (int64, error)
}

// BookRepository is the catalog store. SetAvailability is the only way the
// availability flag changes outside a full field update; it performs an
// atomic compare-and-set so concurrent checkouts of the same book cannot
// both succeed.
type BookRepository interface {
	// CreateBook persists a new catalog record and returns it with the
	// server-assigned ID.
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)

	// GetBook returns the book with the given id, or ErrBookNotFound.
	GetBook(ctx context.Context, id int64) (models.Book, error)

	// ListBooks returns all catalog records ordered by id.
	ListBooks(ctx context.Context) ([]models.Book, error)

	// UpdateBookFields applies a partial update; nil fields are left
	// unchanged. Returns the updated record or ErrBookNotFound.
	UpdateBookFields(ctx context.Context, id int64, update models.BookUpdate) (models.Book, error)

	// DeleteBook removes the record, or returns ErrBookNotFound.
	DeleteBook(ctx context.Context, id int64) error

	// SetAvailability flips the availability flag from expected to next in a
	// single conditional update. When the book exists but its current flag
	// differs from expected, it returns ErrAvailabilityConflict; when the
	// book does not exist, ErrBookNotFound.
	SetAvailability(ctx context.Context, id int64, expected, next bool) error

	// CountBooks reports the number of catalog records. Used to keep
	// startup seeding idempotent.
	CountBooks(ctx context.Context) (int64, error)
}
