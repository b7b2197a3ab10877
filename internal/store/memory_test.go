package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/avoronov/go-library-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryStore(t *testing.T) *memoryStore {
	t.Helper()
	return newMemoryStore()
}

// TestMemoryStore_UserLifecycle covers creation, duplicate rejection and
// case-sensitive lookup.
func TestMemoryStore_UserLifecycle(t *testing.T) {
	ctx := context.Background()
	m := newTestMemoryStore(t)

	created, err := m.CreateUser(ctx, models.User{Email: "admin@library.com", PasswordHash: "hash", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.NotZero(t, created.UserID)

	_, err = m.CreateUser(ctx, models.User{Email: "admin@library.com", PasswordHash: "other", Role: models.RoleMember})
	assert.True(t, errors.Is(err, ErrEmailAlreadyExists))

	found, err := m.FindUserByEmail(ctx, "admin@library.com")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)
	assert.Equal(t, models.RoleAdmin, found.Role)

	// lookups are exact and case-sensitive
	_, err = m.FindUserByEmail(ctx, "Admin@library.com")
	assert.True(t, errors.Is(err, ErrNoUserWasFound))

	count, err := m.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// TestMemoryStore_BookCRUD covers the basic catalog operations.
func TestMemoryStore_BookCRUD(t *testing.T) {
	ctx := context.Background()
	m := newTestMemoryStore(t)

	first, err := m.CreateBook(ctx, models.Book{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", IsAvailable: true})
	require.NoError(t, err)
	second, err := m.CreateBook(ctx, models.Book{Title: "Clean Code", Author: "Robert Martin", IsAvailable: true})
	require.NoError(t, err)
	assert.Less(t, first.ID, second.ID)

	got, err := m.GetBook(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Great Gatsby", got.Title)

	books, err := m.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, first.ID, books[0].ID, "list is ordered by id")

	require.NoError(t, m.DeleteBook(ctx, second.ID))
	assert.True(t, errors.Is(m.DeleteBook(ctx, second.ID), ErrBookNotFound))

	_, err = m.GetBook(ctx, second.ID)
	assert.True(t, errors.Is(err, ErrBookNotFound))
}

// TestMemoryStore_UpdateBookFields verifies partial-update semantics: nil
// fields leave stored values untouched and a non-nil false flag overwrites.
func TestMemoryStore_UpdateBookFields(t *testing.T) {
	ctx := context.Background()
	m := newTestMemoryStore(t)

	book, err := m.CreateBook(ctx, models.Book{Title: "Old Title", Author: "Old Author", IsAvailable: true})
	require.NoError(t, err)

	newTitle := "New Title"
	updated, err := m.UpdateBookFields(ctx, book.ID, models.BookUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "Old Author", updated.Author)
	assert.True(t, updated.IsAvailable)

	unavailable := false
	updated, err = m.UpdateBookFields(ctx, book.ID, models.BookUpdate{IsAvailable: &unavailable})
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable, "explicit false must overwrite")

	_, err = m.UpdateBookFields(ctx, 404, models.BookUpdate{Title: &newTitle})
	assert.True(t, errors.Is(err, ErrBookNotFound))
}

// TestMemoryStore_SetAvailability covers the compare-and-set contract.
func TestMemoryStore_SetAvailability(t *testing.T) {
	ctx := context.Background()
	m := newTestMemoryStore(t)

	book, err := m.CreateBook(ctx, models.Book{Title: "Gatsby", Author: "Fitzgerald", IsAvailable: true})
	require.NoError(t, err)

	require.NoError(t, m.SetAvailability(ctx, book.ID, true, false))

	err = m.SetAvailability(ctx, book.ID, true, false)
	assert.True(t, errors.Is(err, ErrAvailabilityConflict))

	require.NoError(t, m.SetAvailability(ctx, book.ID, false, true))

	err = m.SetAvailability(ctx, 404, true, false)
	assert.True(t, errors.Is(err, ErrBookNotFound))
}

// TestMemoryStore_ConcurrentCheckout launches N concurrent availability
// transitions against one book; exactly one must win and all others must be
// rejected with ErrAvailabilityConflict.
func TestMemoryStore_ConcurrentCheckout(t *testing.T) {
	const workers = 50

	ctx := context.Background()
	m := newTestMemoryStore(t)

	book, err := m.CreateBook(ctx, models.Book{Title: "Gatsby", Author: "Fitzgerald", IsAvailable: true})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = m.SetAvailability(ctx, book.ID, true, false)
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrAvailabilityConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes, "exactly one checkout must win")
	assert.Equal(t, workers-1, conflicts)

	final, err := m.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.False(t, final.IsAvailable)
}
