package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown email or a
	// wrong password. The two cases are deliberately indistinguishable so the
	// endpoint cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenCreationFailed is returned when a credential check succeeded but
	// the token could not be signed.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenExpired is returned by ValidateToken for a well-formed token
	// whose expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid is returned by ValidateToken for any other verification
	// failure: bad signature, wrong issuer or audience, malformed input.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrUnknownPolicy is returned when an authorization check references a
	// policy name that was never registered.
	ErrUnknownPolicy = errors.New("unknown authorization policy")

	// ErrAccessDenied is returned when the caller's role does not satisfy the
	// required policy.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidBookData is returned when book input fails validation.
	ErrInvalidBookData = errors.New("invalid book data")

	// ErrBookAlreadyCheckedOut is returned by CheckoutBook when the book
	// exists but is not available.
	ErrBookAlreadyCheckedOut = errors.New("book is already checked out")

	// ErrBookAlreadyAvailable is returned by CheckinBook when the book exists
	// but is not checked out.
	ErrBookAlreadyAvailable = errors.New("book is not checked out")
)
