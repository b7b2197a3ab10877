package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/go-library-api/internal/logger"
	"github.com/avoronov/go-library-api/internal/store"
	"github.com/avoronov/go-library-api/models"
)

func newTestLibrary(t *testing.T) LibraryService {
	t.Helper()
	return NewLibraryService(store.NewMemoryStorages().Books, logger.Nop())
}

func createTestBook(t *testing.T, lib LibraryService) models.Book {
	t.Helper()

	book, err := lib.CreateBook(context.Background(), "The Great Gatsby", "F. Scott Fitzgerald")
	require.NoError(t, err)
	return book
}

// TestLibraryService_CreateBook verifies validation and that new books are
// always available.
func TestLibraryService_CreateBook(t *testing.T) {
	ctx := context.Background()
	lib := newTestLibrary(t)

	book, err := lib.CreateBook(ctx, "  Clean Code  ", "Robert Martin")
	require.NoError(t, err)
	assert.NotZero(t, book.ID)
	assert.Equal(t, "Clean Code", book.Title, "surrounding whitespace is trimmed")
	assert.True(t, book.IsAvailable)

	tests := []struct {
		name   string
		title  string
		author string
	}{
		{"empty title", "", "Robert Martin"},
		{"blank title", "   ", "Robert Martin"},
		{"empty author", "Clean Code", ""},
		{"title too long", strings.Repeat("x", 201), "Robert Martin"},
		{"author too long", "Clean Code", strings.Repeat("x", 201)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lib.CreateBook(ctx, tt.title, tt.author)
			assert.True(t, errors.Is(err, ErrInvalidBookData))
		})
	}
}

// TestLibraryService_UpdateBook verifies partial-update semantics and field
// validation on present fields.
func TestLibraryService_UpdateBook(t *testing.T) {
	ctx := context.Background()
	lib := newTestLibrary(t)
	book := createTestBook(t, lib)

	newAuthor := "Francis Scott Fitzgerald"
	updated, err := lib.UpdateBook(ctx, book.ID, models.BookUpdate{Author: &newAuthor})
	require.NoError(t, err)
	assert.Equal(t, book.Title, updated.Title, "absent fields stay unchanged")
	assert.Equal(t, newAuthor, updated.Author)

	// blank text fields mean "leave unchanged", not "set to empty"
	empty := ""
	updated, err = lib.UpdateBook(ctx, book.ID, models.BookUpdate{Title: &empty})
	require.NoError(t, err)
	assert.Equal(t, book.Title, updated.Title)

	long := strings.Repeat("x", 201)
	_, err = lib.UpdateBook(ctx, book.ID, models.BookUpdate{Author: &long})
	assert.True(t, errors.Is(err, ErrInvalidBookData))

	_, err = lib.UpdateBook(ctx, 404, models.BookUpdate{Author: &newAuthor})
	assert.True(t, errors.Is(err, store.ErrBookNotFound))
}

// TestLibraryService_DeleteBook verifies removal and the missing-book error.
func TestLibraryService_DeleteBook(t *testing.T) {
	ctx := context.Background()
	lib := newTestLibrary(t)
	book := createTestBook(t, lib)

	require.NoError(t, lib.DeleteBook(ctx, book.ID))

	_, err := lib.GetBook(ctx, book.ID)
	assert.True(t, errors.Is(err, store.ErrBookNotFound))

	assert.True(t, errors.Is(lib.DeleteBook(ctx, book.ID), store.ErrBookNotFound))
}

// TestLibraryService_CheckoutCheckin covers the full state machine: checkout,
// double checkout, checkin, double checkin, and missing books.
func TestLibraryService_CheckoutCheckin(t *testing.T) {
	ctx := context.Background()
	lib := newTestLibrary(t)
	book := createTestBook(t, lib)

	checked, err := lib.CheckoutBook(ctx, book.ID)
	require.NoError(t, err)
	assert.False(t, checked.IsAvailable)
	assert.Equal(t, "The Great Gatsby", checked.Title)

	_, err = lib.CheckoutBook(ctx, book.ID)
	assert.True(t, errors.Is(err, ErrBookAlreadyCheckedOut))

	returned, err := lib.CheckinBook(ctx, book.ID)
	require.NoError(t, err)
	assert.True(t, returned.IsAvailable)

	_, err = lib.CheckinBook(ctx, book.ID)
	assert.True(t, errors.Is(err, ErrBookAlreadyAvailable))

	_, err = lib.CheckoutBook(ctx, 404)
	assert.True(t, errors.Is(err, store.ErrBookNotFound))

	_, err = lib.CheckinBook(ctx, 404)
	assert.True(t, errors.Is(err, store.ErrBookNotFound))
}

// TestLibraryService_ConcurrentCheckout verifies the exactly-one-winner
// guarantee end to end through the service layer.
func TestLibraryService_ConcurrentCheckout(t *testing.T) {
	const workers = 50

	ctx := context.Background()
	lib := newTestLibrary(t)
	book := createTestBook(t, lib)

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = lib.CheckoutBook(ctx, book.ID)
		}(i)
	}
	wg.Wait()

	var successes int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrBookAlreadyCheckedOut):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes, "exactly one checkout must win")

	final, err := lib.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.False(t, final.IsAvailable)
}
