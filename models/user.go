package models

// Role is the access level assigned to a user account.
// The set of roles is closed; authorization policies are defined
// in terms of these values.
type Role string

const (
	// RoleAdmin can manage the full catalog, including deletes.
	RoleAdmin Role = "Admin"

	// RoleLibrarian can create and update catalog records.
	RoleLibrarian Role = "Librarian"

	// RoleMember can only borrow and return books.
	RoleMember Role = "Member"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLibrarian, RoleMember:
		return true
	}
	return false
}

// User represents an account entity used for authentication and authorization.
// The core treats user records as read-only; accounts are created at seed time.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique login identifier. Lookups are exact and
	// case-sensitive; no normalization is applied.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and must
	// never be exposed outside trusted boundaries.
	PasswordHash string `json:"-"`

	// Role determines which authorization policies the user satisfies.
	Role Role `json:"role"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
