package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avoronov/go-library-api/internal/config"
	"github.com/avoronov/go-library-api/internal/logger"
	"github.com/avoronov/go-library-api/internal/store"
	"github.com/avoronov/go-library-api/internal/utils"
	"github.com/avoronov/go-library-api/models"
)

// authService verifies credentials against the user store and manages the
// JWT token lifecycle.
type authService struct {
	cfg    config.App
	users  store.UserRepository
	logger *logger.Logger
}

// NewAuthService returns an AuthService backed by the given user repository.
func NewAuthService(cfg config.App, users store.UserRepository, log *logger.Logger) AuthService {
	return &authService{cfg: cfg, users: users, logger: log}
}

// Login verifies the email/password pair and issues a signed token. Unknown
// email and wrong password both fail with ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (models.Token, error) {
	log := s.logger.With().Str("email", email).Logger()

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Msg("login attempt for unknown email")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Error().Err(err).Msg("user lookup failed")
		return models.Token{}, fmt.Errorf("login: %w", err)
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		log.Info().Msg("login attempt with wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(
		s.cfg.TokenIssuer,
		s.cfg.TokenAudience,
		user.Email,
		user.Role,
		s.cfg.TokenDuration,
		s.cfg.TokenSignKey,
	)
	if err != nil {
		log.Error().Err(err).Msg("token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("role", string(user.Role)).Msg("user logged in")
	return token, nil
}

// ValidateToken verifies the compact token string and returns its claims.
func (s *authService) ValidateToken(_ context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(
		tokenString,
		s.cfg.TokenSignKey,
		s.cfg.TokenIssuer,
		s.cfg.TokenAudience,
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if !claims.Role.Valid() {
		return models.Claims{}, fmt.Errorf("%w: unknown role %q", ErrTokenInvalid, claims.Role)
	}

	return claims, nil
}
