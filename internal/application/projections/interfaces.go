package projections

import (
	"context"

	storageexpense "gymdash/internal/adapters/storage/expense"
	storagemember "gymdash/internal/adapters/storage/member"
	"gymdash/internal/domain/attendance"
	"gymdash/internal/domain/expense"
	"gymdash/internal/domain/measurement"
	"gymdash/internal/domain/member"
)

// MemberStore defines the member store surface shared by projections.
type MemberStore interface {
	GetByID(ctx context.Context, id string) (member.Member, error)
	GetByAccountID(ctx context.Context, accountID string) (member.Member, error)
	List(ctx context.Context, filter storagemember.ListFilter) ([]member.Member, error)
	Count(ctx context.Context) (int, error)
}

// AttendanceStore defines the attendance store surface shared by projections.
type AttendanceStore interface {
	ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error)
	ListByMember(ctx context.Context, memberID string, limit int) ([]attendance.Attendance, error)
	CountByWeekday(ctx context.Context) (map[string]int, error)
}

// ExpenseStore defines the expense store surface shared by projections.
type ExpenseStore interface {
	List(ctx context.Context, filter storageexpense.ListFilter) ([]expense.Expense, error)
	TotalByCategory(ctx context.Context) (map[string]int, error)
	TotalByMonth(ctx context.Context) (map[string]int, error)
}

// MeasurementStore defines the measurement store surface shared by projections.
type MeasurementStore interface {
	ListByMember(ctx context.Context, memberID string, limit int) ([]measurement.Measurement, error)
	Series(ctx context.Context, memberID string) ([]measurement.Measurement, error)
}
