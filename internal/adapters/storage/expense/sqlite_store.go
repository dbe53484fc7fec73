package expense

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	domain "gymdash/internal/domain/expense"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new ExpenseStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const expenseColumns = "id, gym_id, date, category, amount, description, notes"

// GetByID retrieves an Expense by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Expense, error) {
	query := "SELECT " + expenseColumns + " FROM expense WHERE id = ?"
	row := s.db.QueryRowContext(ctx, query, id)

	entity, err := scanExpense(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Expense{}, fmt.Errorf("expense not found: %w", err)
	}
	return entity, err
}

// Save persists an Expense to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Expense) error {
	query := `INSERT INTO expense (id, gym_id, date, category, amount, description, notes)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		date=excluded.date,
		category=excluded.category,
		amount=excluded.amount,
		description=excluded.description,
		notes=excluded.notes`

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.GymID,
		entity.Date,
		entity.Category,
		entity.Amount,
		entity.Description,
		entity.Notes,
	)
	return err
}

// Delete removes an Expense from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM expense WHERE id = ?", id)
	return err
}

// List retrieves Expenses based on the filter.
// PRE: filter has valid parameters
// POST: Returns matching entities newest first
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Expense, error) {
	var queryBuilder strings.Builder
	var args []interface{}
	var conds []string

	queryBuilder.WriteString("SELECT " + expenseColumns + " FROM expense")

	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Search != "" {
		conds = append(conds, "(LOWER(description) LIKE ? OR LOWER(category) LIKE ?)")
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, pattern, pattern)
	}
	if len(conds) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	queryBuilder.WriteString(" ORDER BY date DESC LIMIT ? OFFSET ?")
	args = append(args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Expense
	for rows.Next() {
		entity, err := scanExpense(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// TotalByCategory returns the summed amount per category.
// PRE: none
// POST: Map holds category -> summed amount over all rows
func (s *SQLiteStore) TotalByCategory(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT category, COALESCE(SUM(amount), 0) FROM expense GROUP BY category")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var category string
		var total int
		if err := rows.Scan(&category, &total); err != nil {
			return nil, err
		}
		totals[category] = total
	}
	return totals, rows.Err()
}

// TotalByMonth returns the summed amount per YYYY-MM month.
// PRE: date column holds YYYY-MM-DD strings
// POST: Map holds month -> summed amount
func (s *SQLiteStore) TotalByMonth(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT substr(date, 1, 7), COALESCE(SUM(amount), 0) FROM expense GROUP BY substr(date, 1, 7)")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var month string
		var total int
		if err := rows.Scan(&month, &total); err != nil {
			return nil, err
		}
		totals[month] = total
	}
	return totals, rows.Err()
}

// scanExpense extracts an Expense from a row scanner function.
func scanExpense(scan func(dest ...interface{}) error) (domain.Expense, error) {
	var entity domain.Expense
	err := scan(
		&entity.ID,
		&entity.GymID,
		&entity.Date,
		&entity.Category,
		&entity.Amount,
		&entity.Description,
		&entity.Notes,
	)
	return entity, err
}
