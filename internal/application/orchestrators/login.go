package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"gymdash/internal/domain/account"
)

// AccountStoreForLogin defines the store interface needed by Login.
type AccountStoreForLogin interface {
	GetByEmailAndRole(ctx context.Context, email string, role account.Role) (account.Account, error)
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Email    string
	Password string
	Role     string
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	AccountID string
	Name      string
	Email     string
	Role      account.Role
	GymID     string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	AccountStore AccountStoreForLogin
}

var ErrInvalidCredentials = errors.New("invalid email or role")

// ExecuteLogin resolves an account by (email, role) and returns its profile
// for session creation.
//
// The password is accepted but NOT verified: the demo credential directory
// carries no usable secrets, and any password is treated as correct for a
// matching pair. A failed lookup leaves the caller's session untouched.
// PRE: Email and role provided
// POST: Returns account info on success, ErrInvalidCredentials otherwise
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if input.Email == "" || input.Role == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	role, err := account.ParseRole(input.Role)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "bad_role")
		return LoginResult{}, ErrInvalidCredentials
	}

	acct, err := deps.AccountStore.GetByEmailAndRole(ctx, input.Email, role)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "role", role, "reason", "not_found")
		return LoginResult{}, ErrInvalidCredentials
	}

	slog.Info("auth_event", "event", "login_success", "email", input.Email, "role", acct.Role)

	return LoginResult{
		AccountID: acct.ID,
		Name:      acct.Name,
		Email:     acct.Email,
		Role:      acct.Role,
		GymID:     acct.GymID,
	}, nil
}
