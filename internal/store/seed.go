package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronov/go-library-api/internal/config"
	"github.com/avoronov/go-library-api/internal/logger"
	"github.com/avoronov/go-library-api/internal/utils"
	"github.com/avoronov/go-library-api/models"
)

// Seed populates empty user and book tables with the initial data set:
// one account per role and two catalog records. It runs at startup, after
// migrations.
//
// Seeding is idempotent: a table that already contains rows is left alone.
// Passwords are hashed with bcrypt before they reach the repository, so the
// plaintext values from cfg are never persisted.
func Seed(ctx context.Context, storages *Storages, cfg config.Seed, log *logger.Logger) error {
	if cfg.Disabled {
		log.Debug().Msg("startup seeding disabled")
		return nil
	}

	if err := seedUsers(ctx, storages.Users, cfg, log); err != nil {
		return err
	}

	return seedBooks(ctx, storages.Books, log)
}

func seedUsers(ctx context.Context, users UserRepository, cfg config.Seed, log *logger.Logger) error {
	count, err := users.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("error counting users before seeding: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Info().Msg("seeding initial user accounts")

	seeds := []struct {
		email    string
		password string
		role     models.Role
	}{
		{"admin@library.com", cfg.AdminPassword, models.RoleAdmin},
		{"librarian@library.com", cfg.LibrarianPassword, models.RoleLibrarian},
		{"member@library.com", cfg.MemberPassword, models.RoleMember},
	}

	for _, seed := range seeds {
		hash, err := utils.HashPassword(seed.password)
		if err != nil {
			return fmt.Errorf("error hashing seed password for %s: %w", seed.email, err)
		}

		_, err = users.CreateUser(ctx, models.User{
			Email:        seed.email,
			PasswordHash: hash,
			Role:         seed.role,
		})
		if err != nil && !errors.Is(err, ErrEmailAlreadyExists) {
			return fmt.Errorf("error seeding user %s: %w", seed.email, err)
		}
	}

	return nil
}

func seedBooks(ctx context.Context, books BookRepository, log *logger.Logger) error {
	count, err := books.CountBooks(ctx)
	if err != nil {
		return fmt.Errorf("error counting books before seeding: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Info().Msg("seeding initial catalog records")

	seeds := []models.Book{
		{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", IsAvailable: true},
		{Title: "Clean Code", Author: "Robert Martin", IsAvailable: true},
	}

	for _, book := range seeds {
		if _, err := books.CreateBook(ctx, book); err != nil {
			return fmt.Errorf("error seeding book %q: %w", book.Title, err)
		}
	}

	return nil
}
