package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gymdash/internal/adapters/email"
	"gymdash/internal/domain/account"

	"github.com/google/uuid"
)

// AccountStoreForSignup defines the store interface needed by Signup.
type AccountStoreForSignup interface {
	Save(ctx context.Context, a account.Account) error
}

// SignupInput carries input for the signup orchestrator.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// SignupDeps holds dependencies for Signup.
type SignupDeps struct {
	AccountStore AccountStoreForSignup
	EmailSender  email.Sender // optional; welcome email skipped when nil
	EmailFrom    string
}

// ExecuteSignup creates a new account and returns its profile for session
// creation. Signup always succeeds for valid input: a fresh unique id is
// generated, and non-owner roles are attached to the default gym.
//
// No duplicate-email check is performed: two signups with the same address
// both get their own account.
// PRE: Non-empty name, email and a valid role
// POST: Account persisted with hashed password; welcome email queued if a
// sender is configured
func ExecuteSignup(ctx context.Context, input SignupInput, deps SignupDeps) (LoginResult, error) {
	role, err := account.ParseRole(input.Role)
	if err != nil {
		return LoginResult{}, err
	}

	acct := account.Account{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if role != account.RoleOwner {
		acct.GymID = account.DefaultGymID
	}

	// Validate domain rules
	if err := acct.Validate(); err != nil {
		return LoginResult{}, err
	}

	// Hash the password for storage. It is never checked at login.
	if err := acct.SetPassword(input.Password); err != nil {
		return LoginResult{}, err
	}

	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return LoginResult{}, err
	}

	slog.Info("auth_event", "event", "signup", "email", acct.Email, "role", acct.Role)

	if deps.EmailSender != nil {
		_, err := deps.EmailSender.Send(ctx, email.SendRequest{
			To:      []string{acct.Email},
			From:    deps.EmailFrom,
			Subject: "Welcome to the gym",
			HTML:    fmt.Sprintf("<p>Hi %s, your %s account is ready.</p>", acct.Name, acct.Role),
		})
		if err != nil {
			// Delivery failure never blocks signup.
			slog.Warn("signup_welcome_email_failed", "email", acct.Email, "error", err)
		}
	}

	return LoginResult{
		AccountID: acct.ID,
		Name:      acct.Name,
		Email:     acct.Email,
		Role:      acct.Role,
		GymID:     acct.GymID,
	}, nil
}
