package measurement

import (
	"context"

	domain "gymdash/internal/domain/measurement"
)

// Store persists Measurement state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Measurement, error)
	Save(ctx context.Context, value domain.Measurement) error
	Delete(ctx context.Context, id string) error
	// ListByMember returns the member's entries newest first.
	ListByMember(ctx context.Context, memberID string, limit int) ([]domain.Measurement, error)
	// Series returns the member's entries oldest first, for charting.
	Series(ctx context.Context, memberID string) ([]domain.Measurement, error)
}
