package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/go-library-api/internal/logger"
	"github.com/avoronov/go-library-api/internal/service"
	"github.com/avoronov/go-library-api/internal/store"
	"github.com/avoronov/go-library-api/models"
)

// Function-field mocks for the service interfaces. Tests set only the fields
// they exercise; calling an unset field panics, which surfaces unexpected
// handler behavior immediately.

type mockAuthService struct {
	loginFn    func(ctx context.Context, email, password string) (models.Token, error)
	validateFn func(ctx context.Context, tokenString string) (models.Claims, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.Token, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) ValidateToken(ctx context.Context, tokenString string) (models.Claims, error) {
	return m.validateFn(ctx, tokenString)
}

type mockAuthzService struct {
	evaluateFn func(policy string, role models.Role) error
	knownFn    func(policy string) bool
}

func (m *mockAuthzService) Evaluate(policy string, role models.Role) error {
	return m.evaluateFn(policy, role)
}

func (m *mockAuthzService) KnownPolicy(policy string) bool {
	if m.knownFn == nil {
		return true
	}
	return m.knownFn(policy)
}

type mockLibraryService struct {
	getFn      func(ctx context.Context, id int64) (models.Book, error)
	listFn     func(ctx context.Context) ([]models.Book, error)
	createFn   func(ctx context.Context, title, author string) (models.Book, error)
	updateFn   func(ctx context.Context, id int64, update models.BookUpdate) (models.Book, error)
	deleteFn   func(ctx context.Context, id int64) error
	checkoutFn func(ctx context.Context, id int64) (models.Book, error)
	checkinFn  func(ctx context.Context, id int64) (models.Book, error)
}

func (m *mockLibraryService) GetBook(ctx context.Context, id int64) (models.Book, error) {
	return m.getFn(ctx, id)
}

func (m *mockLibraryService) ListBooks(ctx context.Context) ([]models.Book, error) {
	return m.listFn(ctx)
}

func (m *mockLibraryService) CreateBook(ctx context.Context, title, author string) (models.Book, error) {
	return m.createFn(ctx, title, author)
}

func (m *mockLibraryService) UpdateBook(ctx context.Context, id int64, update models.BookUpdate) (models.Book, error) {
	return m.updateFn(ctx, id, update)
}

func (m *mockLibraryService) DeleteBook(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockLibraryService) CheckoutBook(ctx context.Context, id int64) (models.Book, error) {
	return m.checkoutFn(ctx, id)
}

func (m *mockLibraryService) CheckinBook(ctx context.Context, id int64) (models.Book, error) {
	return m.checkinFn(ctx, id)
}

// allowAll returns an authz mock that accepts every policy and role.
func allowAll() *mockAuthzService {
	return &mockAuthzService{
		evaluateFn: func(string, models.Role) error { return nil },
	}
}

// validateAs returns an auth mock whose ValidateToken accepts any token and
// asserts the given role.
func validateAs(role models.Role) *mockAuthService {
	return &mockAuthService{
		validateFn: func(_ context.Context, _ string) (models.Claims, error) {
			return models.Claims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: "test@library.com"},
				Role:             role,
			}, nil
		},
	}
}

// newTestRouter builds the full route tree over mocked services and a memory
// store. Services the test does not exercise may be left nil; route
// registration still needs an authz service, so a permissive one is filled
// in.
func newTestRouter(t *testing.T, services *service.Services) chi.Router {
	t.Helper()

	if services.Authz == nil {
		services.Authz = allowAll()
	}

	h := NewHandler(services, store.NewMemoryStorages(), logger.Nop())
	return h.InitRoutes()
}

// doRequest runs req against the router and returns the recorded response.
func doRequest(router chi.Router, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// newRequest builds a request with an optional JSON body.
func newRequest(t *testing.T, method, path, body string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}
