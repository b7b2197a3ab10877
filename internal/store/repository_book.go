package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronov/go-library-api/internal/logger"
	"github.com/avoronov/go-library-api/models"
)

// bookRepository is the SQL-backed implementation of [BookRepository].
//
// Availability transitions go through SetAvailability, which issues a single
// conditional UPDATE keyed by id and the expected prior flag. The database
// applies the check-then-set atomically, so two concurrent checkouts of the
// same book can never both succeed.
type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBook persists a new catalog record and returns it with the
// server-assigned ID.
func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(book.TableName()).
		Columns("title", "author", "is_available").
		Values(book.Title, book.Author, book.IsAvailable).
		Suffix("RETURNING id, title, author, is_available").
		ToSql()
	if err != nil {
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Book
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.ID, &created.Title, &created.Author, &created.IsAvailable); err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("error creating book")
		return models.Book{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetBook returns the book with the given id, or [ErrBookNotFound].
func (r *bookRepository) GetBook(ctx context.Context, id int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("id", "title", "author", "is_available").
		From(models.Book{}.TableName()).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var book models.Book
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.IsAvailable); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}
		log.Err(err).Str("func", "*bookRepository.GetBook").Msg("error scanning book row")
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return book, nil
}

// ListBooks returns all catalog records ordered by id.
func (r *bookRepository) ListBooks(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("id", "title", "author", "is_available").
		From(models.Book{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("error listing books")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.IsAvailable); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return books, nil
}

// UpdateBookFields applies a partial update built dynamically from the
// non-nil fields of update. When the update carries no fields at all, the
// current record is returned unchanged (still reporting [ErrBookNotFound]
// for a missing id).
func (r *bookRepository) UpdateBookFields(ctx context.Context, id int64, update models.BookUpdate) (models.Book, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return r.GetBook(ctx, id)
	}

	builder := r.db.builder().Update(models.Book{}.TableName())
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Author != nil {
		builder = builder.Set("author", *update.Author)
	}
	if update.IsAvailable != nil {
		builder = builder.Set("is_available", *update.IsAvailable)
	}

	query, args, err := builder.
		Where("id = ?", id).
		Suffix("RETURNING id, title, author, is_available").
		ToSql()
	if err != nil {
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var book models.Book
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.IsAvailable); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}
		log.Err(err).Str("func", "*bookRepository.UpdateBookFields").Msg("error updating book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return book, nil
}

// DeleteBook removes the record with the given id, or returns
// [ErrBookNotFound] when it does not exist.
func (r *bookRepository) DeleteBook(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Delete(models.Book{}.TableName()).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Msg("error deleting book")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}

// SetAvailability flips the availability flag from expected to next with a
// single conditional UPDATE. The WHERE clause carries both the id and the
// expected prior flag, so the transition is atomic: of two concurrent calls
// only one can match the row.
//
// When no row is affected, a follow-up read distinguishes the two causes:
// a missing book ([ErrBookNotFound]) versus a book whose flag already moved
// ([ErrAvailabilityConflict]).
func (r *bookRepository) SetAvailability(ctx context.Context, id int64, expected, next bool) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Update(models.Book{}.TableName()).
		Set("is_available", next).
		Where("id = ?", id).
		Where("is_available = ?", expected).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.SetAvailability").Msg("error updating availability")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected > 0 {
		return nil
	}

	if _, err := r.GetBook(ctx, id); err != nil {
		return err
	}

	return ErrAvailabilityConflict
}

// CountBooks reports how many catalog records exist.
func (r *bookRepository) CountBooks(ctx context.Context) (int64, error) {
	query, args, err := r.db.builder().
		Select("COUNT(*)").
		From(models.Book{}.TableName()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
