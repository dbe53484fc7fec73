package expense

import (
	"context"

	domain "gymdash/internal/domain/expense"
)

// Store persists Expense state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Expense, error)
	Save(ctx context.Context, value domain.Expense) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Expense, error)
	// TotalByCategory returns the summed amount per category over all rows.
	TotalByCategory(ctx context.Context) (map[string]int, error)
	// TotalByMonth returns the summed amount per YYYY-MM month.
	TotalByMonth(ctx context.Context) (map[string]int, error)
}

// ListFilter carries filtering parameters for List operations.
type ListFilter struct {
	Limit    int
	Offset   int
	Category string
	Search   string // case-insensitive substring over description and category
}
