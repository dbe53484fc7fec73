package projections

import (
	"context"
	"testing"
	"time"

	"gymdash/internal/domain/account"
	"gymdash/internal/domain/attendance"
	"gymdash/internal/domain/expense"
	"gymdash/internal/domain/measurement"
	"gymdash/internal/domain/member"
)

func dashboardDeps() GetDashboardDeps {
	jan := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	return GetDashboardDeps{
		MemberStore: &mockMemberStore{members: []member.Member{
			{ID: "m1", AccountID: "3", Package: "Premium", Amount: 99, StartDate: jan,
				ExpiryDate: jan.AddDate(0, 0, 90), FeeStatus: member.FeePaid},
			{ID: "m2", Package: "Basic", Amount: 49, StartDate: jan,
				ExpiryDate: jan.AddDate(0, 0, 30), FeeStatus: member.FeePending},
			{ID: "m3", Package: "Standard", Amount: 69, StartDate: mar,
				ExpiryDate: mar.AddDate(0, 0, 2), FeeStatus: member.FeePaid},
		}},
		AttendanceStore: &mockAttendanceStore{visits: []attendance.Attendance{
			{ID: "v1", MemberID: "m1", VisitDate: "2026-03-01", CheckInTime: checkIn},
			{ID: "v2", MemberID: "m3", VisitDate: "2026-03-01", CheckInTime: checkIn,
				CheckOutTime: checkIn.Add(time.Hour)},
		}},
		ExpenseStore: &mockExpenseStore{expenses: []expense.Expense{
			{ID: "e1", Date: "2026-01-10", Category: "Rent", Amount: 100},
			{ID: "e2", Date: "2026-03-01", Category: "Utilities", Amount: 50},
		}},
		MeasurementStore: &mockMeasurementStore{entries: []measurement.Measurement{
			{ID: "b1", MemberID: "3", Date: "2026-02-01", Weight: 78, Waist: 33, Arm: 14, Chest: 40},
		}},
	}
}

var dashNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// TestQueryGetDashboard_Owner tests the owner figures.
func TestQueryGetDashboard_Owner(t *testing.T) {
	result, err := QueryGetDashboard(context.Background(),
		GetDashboardQuery{Role: account.RoleOwner}, dashboardDeps(), dashNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Owner == nil || result.Admin != nil || result.Member != nil {
		t.Fatal("expected only the owner block populated")
	}
	s := result.Owner
	if s.TotalMembers != 3 {
		t.Errorf("expected 3 members, got %d", s.TotalMembers)
	}
	if s.ActiveMembers != 2 {
		t.Errorf("expected 2 active members, got %d", s.ActiveMembers)
	}
	if s.TotalRevenue != 217 || s.TotalExpenses != 150 || s.Profit != 67 {
		t.Errorf("unexpected money figures: %+v", s)
	}
	if s.MonthlyRevenue != 69 {
		t.Errorf("expected March revenue 69, got %d", s.MonthlyRevenue)
	}
}

// TestQueryGetDashboard_Admin tests the admin figures.
func TestQueryGetDashboard_Admin(t *testing.T) {
	result, err := QueryGetDashboard(context.Background(),
		GetDashboardQuery{Role: account.RoleAdmin}, dashboardDeps(), dashNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Admin == nil {
		t.Fatal("expected the admin block populated")
	}
	s := result.Admin
	if s.TotalMembers != 3 || s.VisitsToday != 2 || s.ActiveToday != 1 {
		t.Errorf("unexpected headcounts: %+v", s)
	}
	if s.PendingFees != 1 {
		t.Errorf("expected 1 pending fee, got %d", s.PendingFees)
	}
	if s.MonthExpenses != 50 {
		t.Errorf("expected March expenses 50, got %d", s.MonthExpenses)
	}
	if len(s.ExpiringSoon) != 1 || s.ExpiringSoon[0].ID != "m3" {
		t.Errorf("expected m3 expiring soon, got %+v", s.ExpiringSoon)
	}
}

// TestQueryGetDashboard_Member tests the member figures. Visits are resolved
// through the account link to the floor-member record, not the account id.
func TestQueryGetDashboard_Member(t *testing.T) {
	result, err := QueryGetDashboard(context.Background(),
		GetDashboardQuery{Role: account.RoleMember, AccountID: "3"}, dashboardDeps(), dashNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Member == nil {
		t.Fatal("expected the member block populated")
	}
	if result.Member.Entries != 1 || result.Member.Latest == nil {
		t.Errorf("expected one measurement entry, got %+v", result.Member)
	}
	if len(result.Member.RecentVisits) != 1 || result.Member.RecentVisits[0].MemberID != "m1" {
		t.Errorf("expected the linked member's visit, got %+v", result.Member.RecentVisits)
	}
}

// TestQueryGetDashboard_MemberWithoutLink tests an account no admin has linked
// to a floor-member record yet.
func TestQueryGetDashboard_MemberWithoutLink(t *testing.T) {
	result, err := QueryGetDashboard(context.Background(),
		GetDashboardQuery{Role: account.RoleMember, AccountID: "unlinked"}, dashboardDeps(), dashNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Member.RecentVisits) != 0 {
		t.Errorf("expected no visits without a member link, got %+v", result.Member.RecentVisits)
	}
}
