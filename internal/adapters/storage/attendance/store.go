package attendance

import (
	"context"

	domain "gymdash/internal/domain/attendance"
)

// Store persists Attendance state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Attendance, error)
	Save(ctx context.Context, value domain.Attendance) error
	Delete(ctx context.Context, id string) error
	// ListByDate returns all visits for a YYYY-MM-DD date, oldest first.
	ListByDate(ctx context.Context, date string) ([]domain.Attendance, error)
	// GetOpenVisit returns the member's visit without a check-out on the date.
	GetOpenVisit(ctx context.Context, memberID, date string) (domain.Attendance, error)
	// ListByMember returns the member's most recent visits, newest first.
	ListByMember(ctx context.Context, memberID string, limit int) ([]domain.Attendance, error)
	// CountByWeekday returns visit counts keyed by weekday name (Mon..Sun).
	CountByWeekday(ctx context.Context) (map[string]int, error)
}
