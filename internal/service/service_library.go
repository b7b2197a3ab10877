package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/avoronov/go-library-api/internal/logger"
	"github.com/avoronov/go-library-api/internal/store"
	"github.com/avoronov/go-library-api/models"
)

// maxBookFieldLength bounds the title and author fields, in runes.
const maxBookFieldLength = 200

// libraryService implements the catalog operations and the checkout state
// machine on top of a BookRepository.
type libraryService struct {
	books  store.BookRepository
	logger *logger.Logger
}

// NewLibraryService returns a LibraryService backed by the given repository.
func NewLibraryService(books store.BookRepository, log *logger.Logger) LibraryService {
	return &libraryService{books: books, logger: log}
}

func (s *libraryService) GetBook(ctx context.Context, id int64) (models.Book, error) {
	return s.books.GetBook(ctx, id)
}

func (s *libraryService) ListBooks(ctx context.Context) ([]models.Book, error) {
	return s.books.ListBooks(ctx)
}

// CreateBook validates the fields and persists a new, always-available book.
func (s *libraryService) CreateBook(ctx context.Context, title, author string) (models.Book, error) {
	if err := validateBookField("title", title); err != nil {
		return models.Book{}, err
	}
	if err := validateBookField("author", author); err != nil {
		return models.Book{}, err
	}

	book, err := s.books.CreateBook(ctx, models.Book{
		Title:       strings.TrimSpace(title),
		Author:      strings.TrimSpace(author),
		IsAvailable: true,
	})
	if err != nil {
		return models.Book{}, err
	}

	s.logger.Info().Int64("book_id", book.ID).Str("title", book.Title).Msg("book created")
	return book, nil
}

// UpdateBook applies a partial update. Nil fields keep their stored values,
// and so do blank text fields: an empty title or author in the request means
// "leave unchanged", not "set to empty". A present availability flag always
// overwrites, including an explicit false.
func (s *libraryService) UpdateBook(ctx context.Context, id int64, update models.BookUpdate) (models.Book, error) {
	var err error
	if update.Title, err = normalizeUpdateField("title", update.Title); err != nil {
		return models.Book{}, err
	}
	if update.Author, err = normalizeUpdateField("author", update.Author); err != nil {
		return models.Book{}, err
	}

	book, err := s.books.UpdateBookFields(ctx, id, update)
	if err != nil {
		return models.Book{}, err
	}

	s.logger.Info().Int64("book_id", book.ID).Msg("book updated")
	return book, nil
}

func (s *libraryService) DeleteBook(ctx context.Context, id int64) error {
	if err := s.books.DeleteBook(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("book_id", id).Msg("book deleted")
	return nil
}

// CheckoutBook transitions the book from available to checked out. The
// transition is a single compare-and-set in the repository, so among any
// number of concurrent checkouts of the same book exactly one succeeds.
func (s *libraryService) CheckoutBook(ctx context.Context, id int64) (models.Book, error) {
	if err := s.books.SetAvailability(ctx, id, true, false); err != nil {
		if errors.Is(err, store.ErrAvailabilityConflict) {
			return models.Book{}, fmt.Errorf("%w: book %d", ErrBookAlreadyCheckedOut, id)
		}
		return models.Book{}, err
	}

	book, err := s.books.GetBook(ctx, id)
	if err != nil {
		return models.Book{}, err
	}

	s.logger.Info().Int64("book_id", id).Str("title", book.Title).Msg("book checked out")
	return book, nil
}

// CheckinBook transitions the book from checked out back to available.
func (s *libraryService) CheckinBook(ctx context.Context, id int64) (models.Book, error) {
	if err := s.books.SetAvailability(ctx, id, false, true); err != nil {
		if errors.Is(err, store.ErrAvailabilityConflict) {
			return models.Book{}, fmt.Errorf("%w: book %d", ErrBookAlreadyAvailable, id)
		}
		return models.Book{}, err
	}

	book, err := s.books.GetBook(ctx, id)
	if err != nil {
		return models.Book{}, err
	}

	s.logger.Info().Int64("book_id", id).Str("title", book.Title).Msg("book checked in")
	return book, nil
}

// validateBookField rejects blank or over-long text fields.
func validateBookField(name, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidBookData, name)
	}
	if utf8.RuneCountInString(trimmed) > maxBookFieldLength {
		return fmt.Errorf("%w: %s must not exceed %d characters", ErrInvalidBookData, name, maxBookFieldLength)
	}
	return nil
}

// normalizeUpdateField trims a partial-update text field. Blank values are
// demoted to absent; over-long values are rejected.
func normalizeUpdateField(name string, value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > maxBookFieldLength {
		return nil, fmt.Errorf("%w: %s must not exceed %d characters", ErrInvalidBookData, name, maxBookFieldLength)
	}
	return &trimmed, nil
}
