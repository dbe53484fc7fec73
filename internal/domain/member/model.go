package member

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// Fee status constants
const (
	FeePaid    = "Paid"
	FeePending = "Pending"
	FeeOverdue = "Overdue"
)

// ValidFeeStatuses contains all valid fee status values.
var ValidFeeStatuses = []string{FeePaid, FeePending, FeeOverdue}

// Package describes a membership plan.
type Package struct {
	Name         string
	Amount       int // monthly fee in whole currency units
	DurationDays int
}

// Packages is the fixed plan catalogue.
var Packages = []Package{
	{Name: "Basic", Amount: 49, DurationDays: 30},
	{Name: "Standard", Amount: 69, DurationDays: 60},
	{Name: "Premium", Amount: 99, DurationDays: 90},
	{Name: "Annual", Amount: 799, DurationDays: 365},
}

// BloodGroups lists the accepted blood group values for the profile form.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// Domain errors
var (
	ErrEmptyName      = errors.New("member name cannot be empty")
	ErrEmptyPhone     = errors.New("member phone cannot be empty")
	ErrUnknownPackage = errors.New("unknown membership package")
)

// Member holds state for a gym member record.
type Member struct {
	ID          string
	GymID       string
	AccountID   string // optional link to a signed-up account
	Code        string // public member code shown on the floor, e.g. GYM001
	Name        string
	Phone       string
	Age         int
	Gender      string
	Address     string
	BloodGroup  string
	HealthNotes string
	Package     string
	Amount      int
	StartDate   time.Time
	ExpiryDate  time.Time
	FeeStatus   string
	Attendance  int // attendance percentage over the current period
}

// PackageByName looks up a plan in the catalogue.
// POST: Returns the package, or ErrUnknownPackage
func PackageByName(name string) (Package, error) {
	for _, p := range Packages {
		if p.Name == name {
			return p, nil
		}
	}
	return Package{}, ErrUnknownPackage
}

// Validate checks if the Member has valid data.
// PRE: Member struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (m *Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if len(m.Name) > MaxNameLength {
		return errors.New("member name cannot exceed 100 characters")
	}
	if strings.TrimSpace(m.Phone) == "" {
		return ErrEmptyPhone
	}
	if _, err := PackageByName(m.Package); err != nil {
		return err
	}
	if !validFeeStatus(m.FeeStatus) {
		return errors.New("fee status must be 'Paid', 'Pending', or 'Overdue'")
	}
	return nil
}

// ApplyPackage sets Amount and ExpiryDate from the plan and start date.
// PRE: Package and StartDate are set
// POST: Amount and ExpiryDate reflect the plan
func (m *Member) ApplyPackage() error {
	p, err := PackageByName(m.Package)
	if err != nil {
		return err
	}
	m.Amount = p.Amount
	m.ExpiryDate = m.StartDate.AddDate(0, 0, p.DurationDays)
	return nil
}

// IsExpired returns true if the membership has lapsed at the given time.
// INVARIANT: Member fields are not mutated
func (m *Member) IsExpired(now time.Time) bool {
	return now.After(m.ExpiryDate)
}

func validFeeStatus(s string) bool {
	for _, v := range ValidFeeStatuses {
		if v == s {
			return true
		}
	}
	return false
}
