package projections

import (
	"context"
	"testing"
	"time"

	"gymdash/internal/domain/attendance"
	"gymdash/internal/domain/member"
)

var listNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func seedMembers() *mockMemberStore {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &mockMemberStore{members: []member.Member{
		{ID: "m1", Code: "GYM001", Name: "John Smith", Phone: "+100", Package: "Premium",
			Amount: 99, StartDate: start, ExpiryDate: start.AddDate(0, 0, 90), FeeStatus: member.FeePaid},
		{ID: "m2", Code: "GYM002", Name: "Sarah Johnson", Phone: "+101", Package: "Basic",
			Amount: 49, StartDate: start, ExpiryDate: start.AddDate(0, 0, 30), FeeStatus: member.FeePending},
		{ID: "m3", Code: "GYM003", Name: "Mike Wilson", Phone: "+102", Package: "Standard",
			Amount: 69, StartDate: start, ExpiryDate: start.AddDate(0, 0, 60), FeeStatus: member.FeeOverdue},
	}}
}

// TestQueryGetMemberList_All tests the unfiltered list with expiry flags.
func TestQueryGetMemberList_All(t *testing.T) {
	deps := GetMemberListDeps{MemberStore: seedMembers(), AttendanceStore: &mockAttendanceStore{}}
	result, err := QueryGetMemberList(context.Background(), GetMemberListQuery{}, deps, listNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(result.Members))
	}
	// m2's Basic plan lapsed Jan 31; m3's Standard runs to Mar 2.
	expired := map[string]bool{}
	for _, row := range result.Members {
		expired[row.Member.ID] = row.Expired
	}
	if expired["m1"] {
		t.Error("expected m1 active until April")
	}
	if !expired["m2"] {
		t.Error("expected m2 expired at end of January")
	}
	if expired["m3"] {
		t.Error("expected m3 still active on March 1")
	}
}

// TestQueryGetMemberList_AttendancePercent tests the visits-over-elapsed-days
// percentage on the returned rows.
func TestQueryGetMemberList_AttendancePercent(t *testing.T) {
	// m1 runs Jan 1 to April 1; on March 1 that is 60 elapsed days.
	visits := make([]attendance.Attendance, 0, 6)
	for day := 1; day <= 6; day++ {
		visits = append(visits, attendance.Attendance{
			ID:        string(rune('a' + day)),
			MemberID:  "m1",
			VisitDate: time.Date(2026, 2, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
		})
	}
	deps := GetMemberListDeps{
		MemberStore:     seedMembers(),
		AttendanceStore: &mockAttendanceStore{visits: visits},
	}

	result, err := QueryGetMemberList(context.Background(), GetMemberListQuery{}, deps, listNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pct := map[string]int{}
	for _, row := range result.Members {
		pct[row.Member.ID] = row.Member.Attendance
	}
	if pct["m1"] != 10 {
		t.Errorf("expected 6 visits over 60 days to score 10, got %d", pct["m1"])
	}
	if pct["m2"] != 0 {
		t.Errorf("expected m2 with no visits to score 0, got %d", pct["m2"])
	}
}

// TestQueryGetMemberList_FeeFilter tests filtering by fee status.
func TestQueryGetMemberList_FeeFilter(t *testing.T) {
	deps := GetMemberListDeps{MemberStore: seedMembers(), AttendanceStore: &mockAttendanceStore{}}
	result, err := QueryGetMemberList(context.Background(), GetMemberListQuery{FeeStatus: member.FeeOverdue}, deps, listNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Members) != 1 || result.Members[0].Member.ID != "m3" {
		t.Errorf("expected only m3, got %d rows", len(result.Members))
	}
	if result.PageInfo.Total != 1 {
		t.Errorf("expected filtered total 1, got %d", result.PageInfo.Total)
	}
}

// TestQueryGetMemberList_Search tests the name search.
func TestQueryGetMemberList_Search(t *testing.T) {
	deps := GetMemberListDeps{MemberStore: seedMembers(), AttendanceStore: &mockAttendanceStore{}}
	result, err := QueryGetMemberList(context.Background(), GetMemberListQuery{Search: "sarah"}, deps, listNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Members) != 1 || result.Members[0].Member.Name != "Sarah Johnson" {
		t.Errorf("expected Sarah Johnson only, got %d rows", len(result.Members))
	}
}

// TestQueryGetMemberList_Pagination tests page slicing and metadata.
func TestQueryGetMemberList_Pagination(t *testing.T) {
	store := seedMembers()
	deps := GetMemberListDeps{MemberStore: store, AttendanceStore: &mockAttendanceStore{}}
	result, err := QueryGetMemberList(context.Background(), GetMemberListQuery{Page: 2, PerPage: 10}, deps, listNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Only 3 members exist, so page 2 clamps back to page 1.
	if result.PageInfo.Page != 1 {
		t.Errorf("expected page clamped to 1, got %d", result.PageInfo.Page)
	}
	if result.PageInfo.TotalPages != 1 {
		t.Errorf("expected 1 total page, got %d", result.PageInfo.TotalPages)
	}
	if len(result.Members) != 3 {
		t.Errorf("expected all 3 members on the page, got %d", len(result.Members))
	}
}
