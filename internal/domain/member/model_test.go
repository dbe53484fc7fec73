package member_test

import (
	"testing"
	"time"

	"gymdash/internal/domain/member"
)

// TestMemberValidation tests validation of Member.
func TestMemberValidation(t *testing.T) {
	tests := []struct {
		name    string
		member  member.Member
		wantErr bool
	}{
		{
			name: "valid member",
			member: member.Member{
				ID:        "123",
				Name:      "John Smith",
				Phone:     "+1234567890",
				Package:   "Premium",
				FeeStatus: member.FeePaid,
			},
			wantErr: false,
		},
		{
			name: "empty name",
			member: member.Member{
				ID:        "123",
				Phone:     "+1234567890",
				Package:   "Premium",
				FeeStatus: member.FeePaid,
			},
			wantErr: true,
		},
		{
			name: "empty phone",
			member: member.Member{
				ID:        "123",
				Name:      "John Smith",
				Package:   "Premium",
				FeeStatus: member.FeePaid,
			},
			wantErr: true,
		},
		{
			name: "unknown package",
			member: member.Member{
				ID:        "123",
				Name:      "John Smith",
				Phone:     "+1234567890",
				Package:   "Platinum",
				FeeStatus: member.FeePaid,
			},
			wantErr: true,
		},
		{
			name: "invalid fee status",
			member: member.Member{
				ID:        "123",
				Name:      "John Smith",
				Phone:     "+1234567890",
				Package:   "Basic",
				FeeStatus: "Unpaid",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.member.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestApplyPackage tests fee and expiry derivation from the plan catalogue.
func TestApplyPackage(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	m := member.Member{
		Name:      "John Smith",
		Phone:     "+1234567890",
		Package:   "Basic",
		StartDate: start,
	}
	if err := m.ApplyPackage(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Amount != 49 {
		t.Errorf("expected Amount=49, got %d", m.Amount)
	}
	want := start.AddDate(0, 0, 30)
	if !m.ExpiryDate.Equal(want) {
		t.Errorf("expected ExpiryDate=%v, got %v", want, m.ExpiryDate)
	}

	m.Package = "Nonexistent"
	if err := m.ApplyPackage(); err == nil {
		t.Error("expected error for unknown package")
	}
}

// TestIsExpired tests expiry checks against a reference time.
func TestIsExpired(t *testing.T) {
	m := member.Member{ExpiryDate: time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)}
	if m.IsExpired(time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("membership should not be expired before the expiry date")
	}
	if !m.IsExpired(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("membership should be expired after the expiry date")
	}
}
