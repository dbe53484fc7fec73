package measurement

import (
	"errors"
)

// Domain errors
var (
	ErrMissingMember = errors.New("measurement must be associated with a member")
	ErrMissingDate   = errors.New("measurement date must be set")
	ErrIncomplete    = errors.New("all measurements are required: weight, waist, arm, chest")
)

// Measurement holds one body-tracking entry for a member.
type Measurement struct {
	ID       string
	MemberID string
	Date     string  // YYYY-MM-DD format
	Weight   float64 // kg
	Waist    float64 // inches
	Arm      float64 // inches
	Chest    float64 // inches
}

// Validate checks if the Measurement has valid data.
// PRE: Measurement struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: All four body measurements must be positive
func (m *Measurement) Validate() error {
	if m.MemberID == "" {
		return ErrMissingMember
	}
	if m.Date == "" {
		return ErrMissingDate
	}
	if m.Weight <= 0 || m.Waist <= 0 || m.Arm <= 0 || m.Chest <= 0 {
		return ErrIncomplete
	}
	return nil
}

// Delta returns the change from an earlier entry, field by field.
// PRE: earlier is a valid Measurement
// POST: Returns later minus earlier for each field
// INVARIANT: Neither measurement is mutated
func (m *Measurement) Delta(earlier Measurement) Measurement {
	return Measurement{
		Weight: m.Weight - earlier.Weight,
		Waist:  m.Waist - earlier.Waist,
		Arm:    m.Arm - earlier.Arm,
		Chest:  m.Chest - earlier.Chest,
	}
}
