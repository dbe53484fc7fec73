package measurement_test

import (
	"testing"

	"gymdash/internal/domain/measurement"
)

// TestMeasurementValidation tests validation of Measurement.
func TestMeasurementValidation(t *testing.T) {
	valid := measurement.Measurement{
		ID:       "b1",
		MemberID: "m1",
		Date:     "2024-11-25",
		Weight:   69.5,
		Waist:    27,
		Arm:      16.8,
		Chest:    44,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := valid
	missing.MemberID = ""
	if err := missing.Validate(); err == nil {
		t.Error("expected error for missing member")
	}

	incomplete := valid
	incomplete.Chest = 0
	if err := incomplete.Validate(); err == nil {
		t.Error("expected error when a measurement is missing")
	}

	noDate := valid
	noDate.Date = ""
	if err := noDate.Validate(); err == nil {
		t.Error("expected error for missing date")
	}
}

// TestMeasurementDelta tests field-by-field progress deltas.
func TestMeasurementDelta(t *testing.T) {
	first := measurement.Measurement{Weight: 75, Waist: 32, Arm: 14, Chest: 40}
	latest := measurement.Measurement{Weight: 69, Waist: 27, Arm: 16.5, Chest: 43.5}

	d := latest.Delta(first)
	if d.Weight != -6 {
		t.Errorf("expected weight delta -6, got %v", d.Weight)
	}
	if d.Waist != -5 {
		t.Errorf("expected waist delta -5, got %v", d.Waist)
	}
	if d.Arm != 2.5 {
		t.Errorf("expected arm delta 2.5, got %v", d.Arm)
	}
	if d.Chest != 3.5 {
		t.Errorf("expected chest delta 3.5, got %v", d.Chest)
	}
}
