package attendance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	domain "gymdash/internal/domain/attendance"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new AttendanceStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const attendanceColumns = "id, member_id, visit_date, check_in_time, check_out_time"

// GetByID retrieves an Attendance by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Attendance, error) {
	query := "SELECT " + attendanceColumns + " FROM attendance WHERE id = ?"
	row := s.db.QueryRowContext(ctx, query, id)

	entity, err := scanAttendance(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Attendance{}, fmt.Errorf("attendance not found: %w", err)
	}
	return entity, err
}

// Save persists an Attendance to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Attendance) error {
	var checkOut interface{}
	if !entity.CheckOutTime.IsZero() {
		checkOut = entity.CheckOutTime.Format(time.RFC3339Nano)
	}

	query := `INSERT INTO attendance (id, member_id, visit_date, check_in_time, check_out_time)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET check_out_time=excluded.check_out_time`

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.MemberID,
		entity.VisitDate,
		entity.CheckInTime.Format(time.RFC3339Nano),
		checkOut,
	)
	return err
}

// Delete removes an Attendance from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM attendance WHERE id = ?", id)
	return err
}

// ListByDate retrieves all visits for a date.
// PRE: date is YYYY-MM-DD
// POST: Returns matching entities ordered by check-in time
func (s *SQLiteStore) ListByDate(ctx context.Context, date string) ([]domain.Attendance, error) {
	query := "SELECT " + attendanceColumns + " FROM attendance WHERE visit_date = ? ORDER BY check_in_time"
	rows, err := s.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// GetOpenVisit retrieves the member's visit without a check-out on the date.
// PRE: memberID is non-empty, date is YYYY-MM-DD
// POST: Returns the open visit or sql.ErrNoRows wrapped
func (s *SQLiteStore) GetOpenVisit(ctx context.Context, memberID, date string) (domain.Attendance, error) {
	query := "SELECT " + attendanceColumns + " FROM attendance WHERE member_id = ? AND visit_date = ? AND check_out_time IS NULL"
	row := s.db.QueryRowContext(ctx, query, memberID, date)

	entity, err := scanAttendance(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Attendance{}, fmt.Errorf("no open visit: %w", err)
	}
	return entity, err
}

// ListByMember retrieves the member's most recent visits.
// PRE: memberID is non-empty, limit > 0
// POST: Returns entities newest first
func (s *SQLiteStore) ListByMember(ctx context.Context, memberID string, limit int) ([]domain.Attendance, error) {
	query := "SELECT " + attendanceColumns + " FROM attendance WHERE member_id = ? ORDER BY check_in_time DESC LIMIT ?"
	rows, err := s.db.QueryContext(ctx, query, memberID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// CountByWeekday returns visit counts keyed by weekday name.
// PRE: none
// POST: Map holds short weekday names (Mon..Sun) with visit counts
func (s *SQLiteStore) CountByWeekday(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT visit_date, COUNT(*) FROM attendance GROUP BY visit_date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date string
		var n int
		if err := rows.Scan(&date, &n); err != nil {
			return nil, err
		}
		d, err := time.Parse("2006-01-02", date)
		if err != nil {
			continue
		}
		counts[d.Weekday().String()[:3]] += n
	}
	return counts, rows.Err()
}

// scanAttendance extracts an Attendance from a row scanner function.
func scanAttendance(scan func(dest ...interface{}) error) (domain.Attendance, error) {
	var entity domain.Attendance
	var checkIn string
	var checkOut sql.NullString
	err := scan(
		&entity.ID,
		&entity.MemberID,
		&entity.VisitDate,
		&checkIn,
		&checkOut,
	)
	if err != nil {
		return domain.Attendance{}, err
	}
	entity.CheckInTime, _ = time.Parse(time.RFC3339Nano, checkIn)
	if checkOut.Valid && checkOut.String != "" {
		entity.CheckOutTime, _ = time.Parse(time.RFC3339Nano, checkOut.String)
	}
	return entity, nil
}

func collectAttendance(rows *sql.Rows) ([]domain.Attendance, error) {
	var results []domain.Attendance
	for rows.Next() {
		entity, err := scanAttendance(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
