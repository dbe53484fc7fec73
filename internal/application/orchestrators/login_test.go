package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"gymdash/internal/domain/account"
)

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

func fixedID() string { return "test-id-001" }

// mockAccountStore implements the account store interfaces for testing.
// Lookup is keyed on (email, role), matching the login contract.
type mockAccountStore struct {
	accounts []account.Account
}

// GetByEmailAndRole implements AccountStoreForLogin and AccountStoreForSeed.
// POST: returns the account matching both email and role, or an error
func (m *mockAccountStore) GetByEmailAndRole(_ context.Context, email string, role account.Role) (account.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email && a.Role == role {
			return a, nil
		}
	}
	return account.Account{}, errors.New("not found")
}

// Save implements AccountStoreForSignup and AccountStoreForSeed.
// POST: account is persisted; duplicate emails are allowed
func (m *mockAccountStore) Save(_ context.Context, a account.Account) error {
	m.accounts = append(m.accounts, a)
	return nil
}

func newMockAccountStore() *mockAccountStore {
	return &mockAccountStore{}
}

func demoDirectory() *mockAccountStore {
	store := newMockAccountStore()
	store.accounts = []account.Account{
		{ID: "1", Name: "John Owner", Email: "owner@gym.com", Role: account.RoleOwner},
		{ID: "2", Name: "Sarah Admin", Email: "admin@gym.com", Role: account.RoleAdmin, GymID: account.DefaultGymID},
		{ID: "3", Name: "Mike Member", Email: "member@gym.com", Role: account.RoleMember, GymID: account.DefaultGymID},
	}
	return store
}

// TestExecuteLogin_Valid tests logging in with a matching email and role.
func TestExecuteLogin_Valid(t *testing.T) {
	store := demoDirectory()
	result, err := ExecuteLogin(context.Background(), LoginInput{
		Email:    "admin@gym.com",
		Password: "whatever",
		Role:     "admin",
	}, LoginDeps{AccountStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AccountID != "2" {
		t.Errorf("expected AccountID=2, got %s", result.AccountID)
	}
	if result.Role != account.RoleAdmin {
		t.Errorf("expected role admin, got %s", result.Role)
	}
	if result.GymID != account.DefaultGymID {
		t.Errorf("expected GymID=%s, got %s", account.DefaultGymID, result.GymID)
	}
}

// TestExecuteLogin_PasswordNotChecked tests that any password succeeds for a
// matching (email, role) pair. The credential directory carries no usable
// secrets, so the password field is accepted without verification.
func TestExecuteLogin_PasswordNotChecked(t *testing.T) {
	store := demoDirectory()
	for _, password := range []string{"password", "wrong-password", ""} {
		_, err := ExecuteLogin(context.Background(), LoginInput{
			Email:    "owner@gym.com",
			Password: password,
			Role:     "owner",
		}, LoginDeps{AccountStore: store})
		if err != nil {
			t.Errorf("password %q: unexpected error: %v", password, err)
		}
	}
}

// TestExecuteLogin_WrongRole tests that a known email with the wrong role is
// rejected. Matching is on the (email, role) pair, not email alone.
func TestExecuteLogin_WrongRole(t *testing.T) {
	store := demoDirectory()
	_, err := ExecuteLogin(context.Background(), LoginInput{
		Email:    "member@gym.com",
		Password: "password",
		Role:     "owner",
	}, LoginDeps{AccountStore: store})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// TestExecuteLogin_UnknownEmail tests that an unknown email is rejected.
func TestExecuteLogin_UnknownEmail(t *testing.T) {
	store := demoDirectory()
	_, err := ExecuteLogin(context.Background(), LoginInput{
		Email:    "nobody@gym.com",
		Password: "password",
		Role:     "admin",
	}, LoginDeps{AccountStore: store})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// TestExecuteLogin_MissingFields tests that empty email or role fails without
// hitting the store.
func TestExecuteLogin_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		email string
		role  string
	}{
		{"empty email", "", "admin"},
		{"empty role", "admin@gym.com", ""},
		{"both empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExecuteLogin(context.Background(), LoginInput{
				Email: tt.email,
				Role:  tt.role,
			}, LoginDeps{AccountStore: newMockAccountStore()})
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

// TestExecuteLogin_UnknownRole tests that a role outside the closed enum is
// rejected as invalid credentials, not as a server error.
func TestExecuteLogin_UnknownRole(t *testing.T) {
	store := demoDirectory()
	_, err := ExecuteLogin(context.Background(), LoginInput{
		Email: "owner@gym.com",
		Role:  "superuser",
	}, LoginDeps{AccountStore: store})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
