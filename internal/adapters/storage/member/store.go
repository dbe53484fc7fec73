package member

import (
	"context"

	domain "gymdash/internal/domain/member"
)

// Store persists Member state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Member, error)
	// GetByAccountID resolves the member record linked to a signed-up account.
	GetByAccountID(ctx context.Context, accountID string) (domain.Member, error)
	Save(ctx context.Context, value domain.Member) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Member, error)
	Count(ctx context.Context) (int, error)
	// NextCode returns the next free floor code, e.g. GYM008.
	NextCode(ctx context.Context) (string, error)
}

// ListFilter carries filtering parameters for List operations.
type ListFilter struct {
	Limit     int
	Offset    int
	FeeStatus string
	Search    string // case-insensitive substring over name and phone
}
