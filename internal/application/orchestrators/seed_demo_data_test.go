package orchestrators

import (
	"context"
	"testing"
)

// TestExecuteSeedDemoData_FreshStore tests seeding into an empty database.
func TestExecuteSeedDemoData_FreshStore(t *testing.T) {
	members := newMockMemberStore()
	visits := newMockAttendanceStore()
	expenses := newMockExpenseStore()

	err := ExecuteSeedDemoData(context.Background(), SeedDataDeps{
		MemberStore:     members,
		AttendanceStore: visits,
		ExpenseStore:    expenses,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members.members) != 7 {
		t.Errorf("expected 7 seeded members, got %d", len(members.members))
	}
	if len(visits.visits) != 5 {
		t.Errorf("expected 5 seeded visits, got %d", len(visits.visits))
	}
	if len(expenses.expenses) != 6 {
		t.Errorf("expected 6 seeded expenses, got %d", len(expenses.expenses))
	}
	for _, m := range members.members {
		if m.Amount == 0 || m.ExpiryDate.IsZero() {
			t.Errorf("member %s: expected package-derived amount and expiry", m.Code)
		}
	}
}

// TestExecuteSeedDemoData_SkipsWhenPopulated tests that an existing member
// table suppresses the seed.
func TestExecuteSeedDemoData_SkipsWhenPopulated(t *testing.T) {
	members := newMockMemberStore()
	visits := newMockAttendanceStore()
	expenses := newMockExpenseStore()

	deps := SeedDataDeps{MemberStore: members, AttendanceStore: visits, ExpenseStore: expenses}
	if err := ExecuteSeedDemoData(context.Background(), deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ExecuteSeedDemoData(context.Background(), deps); err != nil {
		t.Fatalf("unexpected error on second run: %v", err)
	}
	if len(members.members) != 7 {
		t.Errorf("expected seed to be skipped, got %d members", len(members.members))
	}
	if len(expenses.expenses) != 6 {
		t.Errorf("expected seed to be skipped, got %d expenses", len(expenses.expenses))
	}
}
