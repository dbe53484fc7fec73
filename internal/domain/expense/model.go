package expense

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxDescriptionLength = 200
)

// Categories is the fixed expense category list.
var Categories = []string{
	"Equipment",
	"Maintenance",
	"Utilities",
	"Staff Salary",
	"Rent",
	"Marketing",
	"Supplies",
	"Insurance",
	"Other",
}

// Domain errors
var (
	ErrEmptyDescription = errors.New("expense description cannot be empty")
	ErrInvalidCategory  = errors.New("unknown expense category")
	ErrInvalidAmount    = errors.New("expense amount must be positive")
)

// Expense holds state for a single gym expense row.
type Expense struct {
	ID          string
	GymID       string
	Date        string // YYYY-MM-DD format
	Category    string
	Amount      int // whole currency units
	Description string
	Notes       string
}

// Validate checks if the Expense has valid data.
// PRE: Expense struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (e *Expense) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	if len(e.Description) > MaxDescriptionLength {
		return errors.New("expense description cannot exceed 200 characters")
	}
	if !ValidCategory(e.Category) {
		return ErrInvalidCategory
	}
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ValidCategory reports whether the category is in the fixed list.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Matches reports whether the expense matches a case-insensitive substring
// search over description and category.
// INVARIANT: Expense fields are not mutated
func (e *Expense) Matches(search string) bool {
	if search == "" {
		return true
	}
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(e.Description), s) ||
		strings.Contains(strings.ToLower(e.Category), s)
}
