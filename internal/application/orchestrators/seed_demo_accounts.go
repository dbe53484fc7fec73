package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymdash/internal/domain/account"
)

// AccountStoreForSeed defines the store interface needed by the account seed.
type AccountStoreForSeed interface {
	GetByEmailAndRole(ctx context.Context, email string, role account.Role) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
}

// SeedAccountsDeps holds dependencies for the demo account seed.
type SeedAccountsDeps struct {
	AccountStore AccountStoreForSeed
}

// demoAccountDef defines a single demo account to seed.
type demoAccountDef struct {
	ID    string
	Name  string
	Email string
	Role  account.Role
	GymID string
}

// demoAccounts returns the fixed demo identity directory. Login matches on
// (email, role) against these rows; they are static configuration, not
// user-editable.
func demoAccounts() []demoAccountDef {
	return []demoAccountDef{
		{ID: "1", Name: "John Owner", Email: "owner@gym.com", Role: account.RoleOwner},
		{ID: "2", Name: "Sarah Admin", Email: "admin@gym.com", Role: account.RoleAdmin, GymID: account.DefaultGymID},
		{ID: "3", Name: "Mike Member", Email: "member@gym.com", Role: account.RoleMember, GymID: account.DefaultGymID},
	}
}

// ExecuteSeedDemoAccounts creates the three demo accounts if they don't
// already exist. It is idempotent; existing (email, role) pairs are skipped.
// PRE: Database is migrated
// POST: One account per role exists with the fixed demo emails
func ExecuteSeedDemoAccounts(ctx context.Context, deps SeedAccountsDeps) error {
	created := 0
	for _, def := range demoAccounts() {
		if _, err := deps.AccountStore.GetByEmailAndRole(ctx, def.Email, def.Role); err == nil {
			continue // already exists
		}

		acct := account.Account{
			ID:        def.ID,
			Name:      def.Name,
			Email:     def.Email,
			Role:      def.Role,
			GymID:     def.GymID,
			CreatedAt: time.Now(),
		}
		if err := acct.Validate(); err != nil {
			return err
		}
		if err := deps.AccountStore.Save(ctx, acct); err != nil {
			return err
		}
		created++
	}

	if created > 0 {
		slog.Info("auth_event", "event", "demo_accounts_seeded", "created", created)
	}
	return nil
}
