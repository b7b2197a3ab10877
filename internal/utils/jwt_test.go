package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/avoronov/go-library-api/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "library-api"
	testAudience = "library-api-clients"
	testSignKey  = "test-sign-key"
)

// TestGenerateJWTToken_Success verifies that a freshly issued token carries
// the expected subject, issuer, audience and role claims.
func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testAudience, "admin@library.com", models.RoleAdmin, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	assert.Equal(t, "admin@library.com", token.Subject)
	assert.Equal(t, testIssuer, token.Issuer)
	assert.Equal(t, models.RoleAdmin, token.Role)
}

// TestGenerateJWTToken_InvalidParams verifies that empty parameters are
// rejected before signing.
func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		audience string
		email    string
		duration time.Duration
		signKey  string
	}{
		{"empty issuer", "", testAudience, "a@b.c", time.Hour, testSignKey},
		{"empty audience", testIssuer, "", "a@b.c", time.Hour, testSignKey},
		{"empty email", testIssuer, testAudience, "", time.Hour, testSignKey},
		{"zero duration", testIssuer, testAudience, "a@b.c", 0, testSignKey},
		{"empty sign key", testIssuer, testAudience, "a@b.c", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.audience, tt.email, models.RoleMember, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

// TestValidateAndParseJWTToken_RoundTrip verifies that a token issued by
// GenerateJWTToken validates and decodes to the original claims.
func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testAudience, "member@library.com", models.RoleMember, time.Hour, testSignKey)
	require.NoError(t, err)

	claims, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, testAudience)
	require.NoError(t, err)

	assert.Equal(t, "member@library.com", claims.Email())
	assert.Equal(t, models.RoleMember, claims.Role)
}

// TestValidateAndParseJWTToken_WrongKey verifies that a token signed with a
// different secret is rejected.
func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testAudience, "member@library.com", models.RoleMember, time.Hour, "other-key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, testAudience)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, jwt.ErrTokenExpired))
}

// TestValidateAndParseJWTToken_WrongIssuer verifies the issuer claim check.
func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("some-other-service", testAudience, "member@library.com", models.RoleMember, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, testAudience)
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_WrongAudience verifies the audience claim check.
func TestValidateAndParseJWTToken_WrongAudience(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "another-audience", "member@library.com", models.RoleMember, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, testAudience)
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_Expired verifies that an expired token fails
// with an error matching jwt.ErrTokenExpired.
func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testAudience, "member@library.com", models.RoleMember, -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, testAudience)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

// TestValidateAndParseJWTToken_Malformed verifies that garbage input is
// rejected.
func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer, testAudience)
	assert.Error(t, err)
}

// TestParseBearerToken covers header parsing edge cases.
func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ParseBearerToken("Bearer")
	assert.Error(t, err)

	_, err = ParseBearerToken("")
	assert.Error(t, err)
}
