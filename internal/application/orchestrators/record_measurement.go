package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"gymdash/internal/domain/measurement"

	"github.com/google/uuid"
)

// MeasurementStoreForRecord defines the store interface needed by the recorder.
type MeasurementStoreForRecord interface {
	Save(ctx context.Context, m measurement.Measurement) error
}

// RecordMeasurementInput carries input for the body-tracker orchestrator.
// Numeric fields arrive as form values and are parsed here.
type RecordMeasurementInput struct {
	MemberID string
	Date     string // YYYY-MM-DD; defaults to today
	Weight   string
	Waist    string
	Arm      string
	Chest    string
}

// RecordMeasurementDeps holds dependencies for RecordMeasurement.
type RecordMeasurementDeps struct {
	MeasurementStore MeasurementStoreForRecord
}

// ExecuteRecordMeasurement stores one body-tracking entry.
// PRE: All four measurements parse as positive numbers
// POST: Measurement persisted; returns the new entry
func ExecuteRecordMeasurement(ctx context.Context, input RecordMeasurementInput, deps RecordMeasurementDeps) (measurement.Measurement, error) {
	date := input.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	m := measurement.Measurement{
		ID:       uuid.New().String(),
		MemberID: input.MemberID,
		Date:     date,
	}

	var err error
	if m.Weight, err = parsePositive(input.Weight); err != nil {
		return measurement.Measurement{}, errors.New("weight must be a positive number")
	}
	if m.Waist, err = parsePositive(input.Waist); err != nil {
		return measurement.Measurement{}, errors.New("waist must be a positive number")
	}
	if m.Arm, err = parsePositive(input.Arm); err != nil {
		return measurement.Measurement{}, errors.New("arm must be a positive number")
	}
	if m.Chest, err = parsePositive(input.Chest); err != nil {
		return measurement.Measurement{}, errors.New("chest must be a positive number")
	}

	if err := m.Validate(); err != nil {
		return measurement.Measurement{}, err
	}
	if err := deps.MeasurementStore.Save(ctx, m); err != nil {
		return measurement.Measurement{}, err
	}

	slog.Info("body_event", "event", "measurement_recorded", "member_id", m.MemberID, "date", m.Date)
	return m, nil
}

func parsePositive(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, errors.New("not a positive number")
	}
	return v, nil
}
