package member

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	domain "gymdash/internal/domain/member"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new MemberStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const memberColumns = "id, gym_id, account_id, code, name, phone, age, gender, address, blood_group, health_notes, package, amount, start_date, expiry_date, fee_status, attendance"

// GetByID retrieves a Member by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Member, error) {
	query := "SELECT " + memberColumns + " FROM member WHERE id = ?"
	row := s.db.QueryRowContext(ctx, query, id)

	entity, err := scanMember(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Member{}, fmt.Errorf("member not found: %w", err)
	}
	return entity, err
}

// GetByAccountID retrieves the member record linked to a signed-up account.
// PRE: accountID is non-empty
// POST: Returns the linked entity or an error if none exists
func (s *SQLiteStore) GetByAccountID(ctx context.Context, accountID string) (domain.Member, error) {
	if accountID == "" {
		return domain.Member{}, fmt.Errorf("member not found: %w", sql.ErrNoRows)
	}
	query := "SELECT " + memberColumns + " FROM member WHERE account_id = ?"
	row := s.db.QueryRowContext(ctx, query, accountID)

	entity, err := scanMember(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Member{}, fmt.Errorf("member not found: %w", err)
	}
	return entity, err
}

// Save persists a Member to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Member) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	fields := []string{
		"id", "gym_id", "account_id", "code", "name", "phone", "age", "gender", "address",
		"blood_group", "health_notes", "package", "amount", "start_date",
		"expiry_date", "fee_status", "attendance",
	}
	placeholders := make([]string, len(fields))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	updates := []string{
		"account_id=excluded.account_id",
		"name=excluded.name",
		"phone=excluded.phone",
		"age=excluded.age",
		"gender=excluded.gender",
		"address=excluded.address",
		"blood_group=excluded.blood_group",
		"health_notes=excluded.health_notes",
		"package=excluded.package",
		"amount=excluded.amount",
		"start_date=excluded.start_date",
		"expiry_date=excluded.expiry_date",
		"fee_status=excluded.fee_status",
		"attendance=excluded.attendance",
	}

	query := fmt.Sprintf(
		"INSERT INTO member (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s",
		strings.Join(fields, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	_, err = tx.ExecContext(ctx, query,
		entity.ID,
		entity.GymID,
		entity.AccountID,
		entity.Code,
		entity.Name,
		entity.Phone,
		entity.Age,
		entity.Gender,
		entity.Address,
		entity.BloodGroup,
		entity.HealthNotes,
		entity.Package,
		entity.Amount,
		entity.StartDate.Format("2006-01-02"),
		entity.ExpiryDate.Format("2006-01-02"),
		entity.FeeStatus,
		entity.Attendance,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes a Member from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM member WHERE id = ?", id)
	return err
}

// List retrieves Members based on the filter.
// PRE: filter has valid parameters
// POST: Returns matching entities ordered by code
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Member, error) {
	var queryBuilder strings.Builder
	var args []interface{}
	var conds []string

	queryBuilder.WriteString("SELECT " + memberColumns + " FROM member")

	if filter.FeeStatus != "" {
		conds = append(conds, "fee_status = ?")
		args = append(args, filter.FeeStatus)
	}
	if filter.Search != "" {
		conds = append(conds, "(LOWER(name) LIKE ? OR phone LIKE ?)")
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, pattern, pattern)
	}
	if len(conds) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	queryBuilder.WriteString(" ORDER BY code LIMIT ? OFFSET ?")
	args = append(args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Member
	for rows.Next() {
		entity, err := scanMember(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Count returns the total number of members.
// PRE: none
// POST: Returns total member count
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM member").Scan(&count)
	return count, err
}

// NextCode returns the next free member floor code.
// PRE: existing codes follow the GYM%03d pattern
// POST: Returns a code one past the current maximum, starting at GYM001
func (s *SQLiteStore) NextCode(ctx context.Context) (string, error) {
	// Compare numerically, not lexically: "GYM999" > "GYM1000" as text.
	query := "SELECT MAX(CAST(substr(code, 4) AS INTEGER)) FROM member WHERE code LIKE 'GYM%'"
	var max sql.NullInt64
	if err := s.db.QueryRowContext(ctx, query).Scan(&max); err != nil {
		return "", err
	}
	n := 0
	if max.Valid {
		n = int(max.Int64)
	}
	return fmt.Sprintf("GYM%03d", n+1), nil
}

// scanMember extracts a Member from a row scanner function.
func scanMember(scan func(dest ...interface{}) error) (domain.Member, error) {
	var entity domain.Member
	var startDate, expiryDate string
	err := scan(
		&entity.ID,
		&entity.GymID,
		&entity.AccountID,
		&entity.Code,
		&entity.Name,
		&entity.Phone,
		&entity.Age,
		&entity.Gender,
		&entity.Address,
		&entity.BloodGroup,
		&entity.HealthNotes,
		&entity.Package,
		&entity.Amount,
		&startDate,
		&expiryDate,
		&entity.FeeStatus,
		&entity.Attendance,
	)
	if err != nil {
		return domain.Member{}, err
	}
	entity.StartDate, _ = time.Parse("2006-01-02", startDate)
	entity.ExpiryDate, _ = time.Parse("2006-01-02", expiryDate)
	return entity, nil
}
