package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/go-library-api/internal/service"
	"github.com/avoronov/go-library-api/models"
)

// TestLogin covers the login endpoint: success, rejected credentials and an
// undecodable body.
func TestLogin(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (models.Token, error) {
			if email == "member@library.com" && password == "SecureMem123!" {
				return models.Token{
					Claims: models.Claims{
						RegisteredClaims: jwt.RegisteredClaims{Subject: email},
						Role:             models.RoleMember,
					},
					SignedString: "signed.jwt.token",
				}, nil
			}
			return models.Token{}, service.ErrInvalidCredentials
		},
	}
	router := newTestRouter(t, &service.Services{Auth: auth})

	t.Run("success", func(t *testing.T) {
		req := newRequest(t, http.MethodPost, "/login", `{"email":"member@library.com","password":"SecureMem123!"}`)

		rec := doRequest(router, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "signed.jwt.token", resp.Token)
		assert.Equal(t, "member@library.com", resp.Email)
		assert.Equal(t, models.RoleMember, resp.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		req := newRequest(t, http.MethodPost, "/login", `{"email":"member@library.com","password":"nope"}`)

		rec := doRequest(router, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid email or password", resp.Error)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := newRequest(t, http.MethodPost, "/login", `{broken`)

		rec := doRequest(router, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
