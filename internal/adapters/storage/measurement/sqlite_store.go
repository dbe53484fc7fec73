package measurement

import (
	"context"
	"database/sql"
	"fmt"

	domain "gymdash/internal/domain/measurement"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new MeasurementStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const measurementColumns = "id, member_id, date, weight, waist, arm, chest"

// GetByID retrieves a Measurement by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Measurement, error) {
	query := "SELECT " + measurementColumns + " FROM measurement WHERE id = ?"
	row := s.db.QueryRowContext(ctx, query, id)

	entity, err := scanMeasurement(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Measurement{}, fmt.Errorf("measurement not found: %w", err)
	}
	return entity, err
}

// Save persists a Measurement to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Measurement) error {
	query := `INSERT INTO measurement (id, member_id, date, weight, waist, arm, chest)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		date=excluded.date,
		weight=excluded.weight,
		waist=excluded.waist,
		arm=excluded.arm,
		chest=excluded.chest`

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.MemberID,
		entity.Date,
		entity.Weight,
		entity.Waist,
		entity.Arm,
		entity.Chest,
	)
	return err
}

// Delete removes a Measurement from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM measurement WHERE id = ?", id)
	return err
}

// ListByMember retrieves the member's entries newest first.
// PRE: memberID is non-empty, limit > 0
// POST: Returns up to limit entities
func (s *SQLiteStore) ListByMember(ctx context.Context, memberID string, limit int) ([]domain.Measurement, error) {
	query := "SELECT " + measurementColumns + " FROM measurement WHERE member_id = ? ORDER BY date DESC LIMIT ?"
	rows, err := s.db.QueryContext(ctx, query, memberID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMeasurements(rows)
}

// Series retrieves the member's entries oldest first.
// PRE: memberID is non-empty
// POST: Returns all entities in chart order
func (s *SQLiteStore) Series(ctx context.Context, memberID string) ([]domain.Measurement, error) {
	query := "SELECT " + measurementColumns + " FROM measurement WHERE member_id = ? ORDER BY date"
	rows, err := s.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMeasurements(rows)
}

// scanMeasurement extracts a Measurement from a row scanner function.
func scanMeasurement(scan func(dest ...interface{}) error) (domain.Measurement, error) {
	var entity domain.Measurement
	err := scan(
		&entity.ID,
		&entity.MemberID,
		&entity.Date,
		&entity.Weight,
		&entity.Waist,
		&entity.Arm,
		&entity.Chest,
	)
	return entity, err
}

func collectMeasurements(rows *sql.Rows) ([]domain.Measurement, error) {
	var results []domain.Measurement
	for rows.Next() {
		entity, err := scanMeasurement(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
