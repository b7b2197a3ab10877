package store

import (
	"context"
	"sort"
	"sync"

	"github.com/avoronov/go-library-api/models"
)

// memoryStore is an in-process implementation of [UserRepository] and
// [BookRepository] guarded by a single RWMutex. It backs the "memory"
// storage driver used for local development and tests.
//
// The mutex makes every availability transition a per-process critical
// section, so the compare-and-set contract of SetAvailability holds here the
// same way the conditional UPDATE enforces it in SQL.
type memoryStore struct {
	mu sync.RWMutex

	users        map[int64]models.User
	usersByEmail map[string]int64
	nextUserID   int64

	books      map[int64]models.Book
	nextBookID int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:        make(map[int64]models.User),
		usersByEmail: make(map[string]int64),
		nextUserID:   1,
		books:        make(map[int64]models.Book),
		nextBookID:   1,
	}
}

func (m *memoryStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.usersByEmail[user.Email]; exists {
		return models.User{}, ErrEmailAlreadyExists
	}

	user.UserID = m.nextUserID
	m.nextUserID++
	m.users[user.UserID] = user
	m.usersByEmail[user.Email] = user.UserID

	return user, nil
}

func (m *memoryStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.usersByEmail[email]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return m.users[id], nil
}

func (m *memoryStore) CountUsers(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.users)), nil
}

func (m *memoryStore) CreateBook(_ context.Context, book models.Book) (models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	book.ID = m.nextBookID
	m.nextBookID++
	m.books[book.ID] = book

	return book, nil
}

func (m *memoryStore) GetBook(_ context.Context, id int64) (models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	book, ok := m.books[id]
	if !ok {
		return models.Book{}, ErrBookNotFound
	}

	return book, nil
}

func (m *memoryStore) ListBooks(_ context.Context) ([]models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	books := make([]models.Book, 0, len(m.books))
	for _, book := range m.books {
		books = append(books, book)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })

	return books, nil
}

func (m *memoryStore) UpdateBookFields(_ context.Context, id int64, update models.BookUpdate) (models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	book, ok := m.books[id]
	if !ok {
		return models.Book{}, ErrBookNotFound
	}

	if update.Title != nil {
		book.Title = *update.Title
	}
	if update.Author != nil {
		book.Author = *update.Author
	}
	if update.IsAvailable != nil {
		book.IsAvailable = *update.IsAvailable
	}

	m.books[id] = book
	return book, nil
}

func (m *memoryStore) DeleteBook(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.books[id]; !ok {
		return ErrBookNotFound
	}

	delete(m.books, id)
	return nil
}

func (m *memoryStore) SetAvailability(_ context.Context, id int64, expected, next bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	book, ok := m.books[id]
	if !ok {
		return ErrBookNotFound
	}
	if book.IsAvailable != expected {
		return ErrAvailabilityConflict
	}

	book.IsAvailable = next
	m.books[id] = book
	return nil
}

func (m *memoryStore) CountBooks(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.books)), nil
}
