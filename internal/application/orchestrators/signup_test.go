package orchestrators

import (
	"context"
	"testing"

	"gymdash/internal/domain/account"

	"golang.org/x/crypto/bcrypt"
)

// TestExecuteSignup_Member tests that a member signup lands in the default gym.
func TestExecuteSignup_Member(t *testing.T) {
	store := newMockAccountStore()
	result, err := ExecuteSignup(context.Background(), SignupInput{
		Name:     "New Member",
		Email:    "new@gym.com",
		Password: "secret",
		Role:     "member",
	}, SignupDeps{AccountStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AccountID == "" {
		t.Error("expected a generated account id")
	}
	if result.GymID != account.DefaultGymID {
		t.Errorf("expected GymID=%s, got %s", account.DefaultGymID, result.GymID)
	}
	if len(store.accounts) != 1 {
		t.Fatalf("expected 1 persisted account, got %d", len(store.accounts))
	}
}

// TestExecuteSignup_Owner tests that an owner signup has no gym attachment.
func TestExecuteSignup_Owner(t *testing.T) {
	store := newMockAccountStore()
	result, err := ExecuteSignup(context.Background(), SignupInput{
		Name:     "New Owner",
		Email:    "boss@gym.com",
		Password: "secret",
		Role:     "owner",
	}, SignupDeps{AccountStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.GymID != "" {
		t.Errorf("expected empty GymID for owner, got %s", result.GymID)
	}
}

// TestExecuteSignup_PasswordHashed tests that the stored hash matches the
// submitted password. The hash is write-only: nothing reads it back at login.
func TestExecuteSignup_PasswordHashed(t *testing.T) {
	store := newMockAccountStore()
	_, err := ExecuteSignup(context.Background(), SignupInput{
		Name:     "New Member",
		Email:    "new@gym.com",
		Password: "secret",
		Role:     "member",
	}, SignupDeps{AccountStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hash := store.accounts[0].PasswordHash
	if hash == "secret" {
		t.Error("password must not be stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

// TestExecuteSignup_DuplicateEmail tests that a second signup with the same
// email succeeds and keeps its own account row. There is no uniqueness check.
func TestExecuteSignup_DuplicateEmail(t *testing.T) {
	store := newMockAccountStore()
	first, err := ExecuteSignup(context.Background(), SignupInput{
		Name: "First", Email: "dup@gym.com", Password: "a", Role: "member",
	}, SignupDeps{AccountStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ExecuteSignup(context.Background(), SignupInput{
		Name: "Second", Email: "dup@gym.com", Password: "b", Role: "member",
	}, SignupDeps{AccountStore: store})
	if err != nil {
		t.Fatalf("unexpected error on duplicate email: %v", err)
	}
	if first.AccountID == second.AccountID {
		t.Error("expected distinct account ids for duplicate signups")
	}
	if len(store.accounts) != 2 {
		t.Errorf("expected 2 persisted accounts, got %d", len(store.accounts))
	}
}

// TestExecuteSignup_InvalidRole tests that an unknown role is rejected.
func TestExecuteSignup_InvalidRole(t *testing.T) {
	store := newMockAccountStore()
	_, err := ExecuteSignup(context.Background(), SignupInput{
		Name: "Someone", Email: "x@gym.com", Password: "a", Role: "superuser",
	}, SignupDeps{AccountStore: store})
	if err == nil {
		t.Error("expected error for unknown role")
	}
	if len(store.accounts) != 0 {
		t.Error("expected nothing persisted on invalid input")
	}
}

// TestExecuteSignup_MissingName tests that an empty name is rejected.
func TestExecuteSignup_MissingName(t *testing.T) {
	store := newMockAccountStore()
	_, err := ExecuteSignup(context.Background(), SignupInput{
		Email: "x@gym.com", Password: "a", Role: "member",
	}, SignupDeps{AccountStore: store})
	if err == nil {
		t.Error("expected error for missing name")
	}
}
