package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified claim set carried by a session token.
//
// It embeds [jwt.RegisteredClaims] for the standard claim fields
// (sub, iss, aud, iat, exp) and adds the role claim used by the
// authorization layer. The subject claim holds the user's email.
type Claims struct {
	jwt.RegisteredClaims

	// Role is the access level asserted by the token. It is copied from
	// the user record at issuance time and trusted after signature
	// verification.
	Role Role `json:"role"`
}

// Email returns the token subject, which holds the user's email address.
func (c *Claims) Email() string {
	return c.Subject
}

// Token pairs a verified claim set with its compact signed form.
//
// SignedString holds the serialized token (header.payload.signature) ready to
// be transmitted in HTTP headers. It is excluded from JSON serialization;
// responses carry the token in an explicit field instead.
type Token struct {
	Claims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
