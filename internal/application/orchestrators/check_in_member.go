package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gymdash/internal/domain/attendance"
	"gymdash/internal/domain/member"
)

// AttendanceStoreForCheckIn defines the store interface needed by check-in/out.
type AttendanceStoreForCheckIn interface {
	Save(ctx context.Context, a attendance.Attendance) error
	GetOpenVisit(ctx context.Context, memberID, date string) (attendance.Attendance, error)
}

// MemberStoreForCheckIn defines the member lookup needed by check-in.
type MemberStoreForCheckIn interface {
	GetByID(ctx context.Context, id string) (member.Member, error)
}

// CheckInMemberInput carries input for the check-in orchestrator.
type CheckInMemberInput struct {
	MemberID string
	Date     string // YYYY-MM-DD; defaults to today
}

// CheckInMemberDeps holds dependencies for CheckInMember.
type CheckInMemberDeps struct {
	MemberStore     MemberStoreForCheckIn
	AttendanceStore AttendanceStoreForCheckIn
	GenerateID      func() string
	Now             func() time.Time
}

var (
	ErrAlreadyCheckedIn = errors.New("member is already checked in")
	ErrNotCheckedIn     = errors.New("member has no open visit today")
)

// ExecuteCheckInMember records a manual check-in for a member.
// PRE: MemberID names an existing member
// POST: An open visit exists for the member on the date
// INVARIANT: At most one open visit per member per date
func ExecuteCheckInMember(ctx context.Context, input CheckInMemberInput, deps CheckInMemberDeps) (attendance.Attendance, error) {
	now := deps.Now()
	date := input.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return attendance.Attendance{}, ErrMemberNotFound
	}

	if _, err := deps.AttendanceStore.GetOpenVisit(ctx, m.ID, date); err == nil {
		return attendance.Attendance{}, ErrAlreadyCheckedIn
	}

	a := attendance.Attendance{
		ID:          deps.GenerateID(),
		MemberID:    m.ID,
		VisitDate:   date,
		CheckInTime: now,
	}
	if err := a.Validate(); err != nil {
		return attendance.Attendance{}, err
	}
	if err := deps.AttendanceStore.Save(ctx, a); err != nil {
		return attendance.Attendance{}, err
	}

	slog.Info("attendance_event", "event", "check_in", "member", m.Code, "date", date)
	return a, nil
}

// ExecuteCheckOutMember closes the member's open visit for the date.
// PRE: The member has an open visit on the date
// POST: The visit has a check-out time and reads as completed
func ExecuteCheckOutMember(ctx context.Context, input CheckInMemberInput, deps CheckInMemberDeps) (attendance.Attendance, error) {
	now := deps.Now()
	date := input.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	a, err := deps.AttendanceStore.GetOpenVisit(ctx, input.MemberID, date)
	if err != nil {
		return attendance.Attendance{}, ErrNotCheckedIn
	}

	a.CheckOutTime = now
	if err := a.Validate(); err != nil {
		return attendance.Attendance{}, err
	}
	if err := deps.AttendanceStore.Save(ctx, a); err != nil {
		return attendance.Attendance{}, err
	}

	slog.Info("attendance_event", "event", "check_out", "member_id", a.MemberID, "date", date)
	return a, nil
}
