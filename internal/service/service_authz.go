package service

import (
	"fmt"

	"github.com/avoronov/go-library-api/internal/logger"
	"github.com/avoronov/go-library-api/models"
)

// Policy names accepted by the authorization layer. Routes reference these
// constants; referencing any other name fails route registration.
const (
	// PolicyAdminOnly allows only the Admin role.
	PolicyAdminOnly = "AdminOnly"

	// PolicyLibrarianOrAdmin allows the Librarian and Admin roles.
	PolicyLibrarianOrAdmin = "LibrarianOrAdmin"
)

// authzService maps policy names to the role sets that satisfy them.
type authzService struct {
	policies map[string]map[models.Role]struct{}
	logger   *logger.Logger
}

// NewAuthzService returns an AuthzService with the built-in policy table.
func NewAuthzService(log *logger.Logger) AuthzService {
	return &authzService{
		policies: map[string]map[models.Role]struct{}{
			PolicyAdminOnly: {
				models.RoleAdmin: {},
			},
			PolicyLibrarianOrAdmin: {
				models.RoleLibrarian: {},
				models.RoleAdmin:     {},
			},
		},
		logger: log,
	}
}

// Evaluate checks role against the named policy.
func (s *authzService) Evaluate(policy string, role models.Role) error {
	allowed, ok := s.policies[policy]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}

	if _, ok := allowed[role]; !ok {
		s.logger.Info().
			Str("policy", policy).
			Str("role", string(role)).
			Msg("authorization denied")
		return fmt.Errorf("%w: role %q does not satisfy policy %q", ErrAccessDenied, role, policy)
	}

	return nil
}

// KnownPolicy reports whether the policy name is registered.
func (s *authzService) KnownPolicy(policy string) bool {
	_, ok := s.policies[policy]
	return ok
}
