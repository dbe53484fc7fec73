package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"gymdash/internal/domain/attendance"
	"gymdash/internal/domain/member"
)

// mockAttendanceStore implements AttendanceStoreForCheckIn for testing.
type mockAttendanceStore struct {
	visits map[string]attendance.Attendance
}

// Save implements AttendanceStoreForCheckIn.
func (m *mockAttendanceStore) Save(_ context.Context, a attendance.Attendance) error {
	m.visits[a.ID] = a
	return nil
}

// GetOpenVisit implements AttendanceStoreForCheckIn.
// POST: returns the member's visit on the date with no check-out, or an error
func (m *mockAttendanceStore) GetOpenVisit(_ context.Context, memberID, date string) (attendance.Attendance, error) {
	for _, a := range m.visits {
		if a.MemberID == memberID && a.VisitDate == date && !a.IsCheckedOut() {
			return a, nil
		}
	}
	return attendance.Attendance{}, errors.New("no open visit")
}

func newMockAttendanceStore() *mockAttendanceStore {
	return &mockAttendanceStore{visits: make(map[string]attendance.Attendance)}
}

func checkInDeps(members *mockMemberStore, visits *mockAttendanceStore) CheckInMemberDeps {
	return CheckInMemberDeps{
		MemberStore:     members,
		AttendanceStore: visits,
		GenerateID:      fixedID,
		Now:             fixedNow,
	}
}

// TestExecuteCheckInMember_Valid tests a first check-in of the day.
func TestExecuteCheckInMember_Valid(t *testing.T) {
	members := newMockMemberStore()
	members.members["m-1"] = member.Member{ID: "m-1", Code: "GYM001", Name: "John"}
	visits := newMockAttendanceStore()

	a, err := ExecuteCheckInMember(context.Background(), CheckInMemberInput{
		MemberID: "m-1",
	}, checkInDeps(members, visits))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.VisitDate != fixedTime.Format("2006-01-02") {
		t.Errorf("expected visit date %s, got %s", fixedTime.Format("2006-01-02"), a.VisitDate)
	}
	if a.Status() != attendance.StatusActive {
		t.Errorf("expected active visit, got %s", a.Status())
	}
	if _, ok := visits.visits["test-id-001"]; !ok {
		t.Error("expected visit to be persisted")
	}
}

// TestExecuteCheckInMember_AlreadyCheckedIn tests that a second check-in on
// the same date is rejected while the first visit is still open.
func TestExecuteCheckInMember_AlreadyCheckedIn(t *testing.T) {
	members := newMockMemberStore()
	members.members["m-1"] = member.Member{ID: "m-1", Code: "GYM001", Name: "John"}
	visits := newMockAttendanceStore()

	if _, err := ExecuteCheckInMember(context.Background(), CheckInMemberInput{MemberID: "m-1"}, checkInDeps(members, visits)); err != nil {
		t.Fatalf("first check-in failed: %v", err)
	}
	_, err := ExecuteCheckInMember(context.Background(), CheckInMemberInput{MemberID: "m-1"}, checkInDeps(members, visits))
	if !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Errorf("expected ErrAlreadyCheckedIn, got %v", err)
	}
}

// TestExecuteCheckInMember_UnknownMember tests check-in for a missing member.
func TestExecuteCheckInMember_UnknownMember(t *testing.T) {
	members := newMockMemberStore()
	visits := newMockAttendanceStore()
	_, err := ExecuteCheckInMember(context.Background(), CheckInMemberInput{MemberID: "ghost"}, checkInDeps(members, visits))
	if !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("expected ErrMemberNotFound, got %v", err)
	}
}

// TestExecuteCheckOutMember_Valid tests closing an open visit.
func TestExecuteCheckOutMember_Valid(t *testing.T) {
	members := newMockMemberStore()
	members.members["m-1"] = member.Member{ID: "m-1", Code: "GYM001", Name: "John"}
	visits := newMockAttendanceStore()
	visits.visits["v-1"] = attendance.Attendance{
		ID: "v-1", MemberID: "m-1",
		VisitDate:   fixedTime.Format("2006-01-02"),
		CheckInTime: fixedTime.Add(-90 * time.Minute),
	}

	a, err := ExecuteCheckOutMember(context.Background(), CheckInMemberInput{MemberID: "m-1"}, checkInDeps(members, visits))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status() != attendance.StatusCompleted {
		t.Errorf("expected completed visit, got %s", a.Status())
	}
	if a.Duration() != 90*time.Minute {
		t.Errorf("expected 90m duration, got %s", a.Duration())
	}
}

// TestExecuteCheckOutMember_NotCheckedIn tests check-out with no open visit.
func TestExecuteCheckOutMember_NotCheckedIn(t *testing.T) {
	members := newMockMemberStore()
	visits := newMockAttendanceStore()
	_, err := ExecuteCheckOutMember(context.Background(), CheckInMemberInput{MemberID: "m-1"}, checkInDeps(members, visits))
	if !errors.Is(err, ErrNotCheckedIn) {
		t.Errorf("expected ErrNotCheckedIn, got %v", err)
	}
}
