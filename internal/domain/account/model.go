package account

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Max length constants for user-editable fields.
const (
	MaxEmailLength = 254
	MaxNameLength  = 100
)

// Role identifies what an account can see and which dashboard is home.
// It is a closed set; anything else fails validation.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// ValidRoles contains all valid role values.
var ValidRoles = []Role{RoleOwner, RoleAdmin, RoleMember}

// DefaultGymID is the gym assigned to non-owner signups. Owners are not tied
// to a single gym, so their GymID stays empty.
const DefaultGymID = "gym1"

// Domain errors
var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrInvalidEmail  = errors.New("email must contain '@'")
	ErrInvalidRole   = errors.New("role must be one of: owner, admin, member")
	ErrEmptyPassword = errors.New("password cannot be empty")
)

// Account holds state for an authenticated actor's profile.
type Account struct {
	ID    string
	Name  string
	Email string
	Role  Role
	GymID string // set for admin and member, empty for owner
	// PasswordHash is stored at signup but never checked at login: the demo
	// credential directory carries no secrets, and login accepts any password
	// for a matching (email, role) pair.
	PasswordHash string
	CreatedAt    time.Time
}

// ParseRole maps a free-form string onto the closed Role set.
// POST: Returns the Role, or ErrInvalidRole for anything outside the set
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleOwner:
		return RoleOwner, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleMember:
		return RoleMember, nil
	}
	return "", ErrInvalidRole
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// HomePath returns the role's dashboard route.
// PRE: Role is valid
func (r Role) HomePath() string {
	return "/" + string(r) + "-dashboard"
}

// Validate checks if the Account has valid data.
// PRE: Account struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if len(a.Name) > MaxNameLength {
		return errors.New("name cannot exceed 100 characters")
	}
	if strings.TrimSpace(a.Email) == "" {
		return ErrEmptyEmail
	}
	if len(a.Email) > MaxEmailLength {
		return errors.New("email cannot exceed 254 characters")
	}
	if !strings.Contains(a.Email, "@") {
		return ErrInvalidEmail
	}
	if !a.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}

// SetPassword hashes and stores a password using bcrypt.
// The hash is kept for a future credential check; nothing reads it today.
// PRE: plaintext is non-empty
// POST: PasswordHash is set to bcrypt hash
func (a *Account) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// IsOwner returns true if the account has the owner role.
// INVARIANT: Account fields are not mutated
func (a *Account) IsOwner() bool {
	return a.Role == RoleOwner
}

// IsAdmin returns true if the account has the admin role.
// INVARIANT: Account fields are not mutated
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
