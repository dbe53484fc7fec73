package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"gymdash/internal/domain/expense"

	"github.com/google/uuid"
)

// ExpenseStoreForAdd defines the store interface needed by expense writes.
type ExpenseStoreForAdd interface {
	Save(ctx context.Context, e expense.Expense) error
	Delete(ctx context.Context, id string) error
}

// AddExpenseInput carries input for the add-expense orchestrator.
type AddExpenseInput struct {
	GymID       string
	Date        string // YYYY-MM-DD; defaults to today
	Category    string
	Amount      string // form value, parsed here
	Description string
	Notes       string
}

// AddExpenseDeps holds dependencies for AddExpense.
type AddExpenseDeps struct {
	ExpenseStore ExpenseStoreForAdd
}

// ExecuteAddExpense records a new expense row.
// PRE: Category is from the fixed list, amount parses as a positive number
// POST: Expense persisted; returns the new row
func ExecuteAddExpense(ctx context.Context, input AddExpenseInput, deps AddExpenseDeps) (expense.Expense, error) {
	amount, err := strconv.Atoi(input.Amount)
	if err != nil {
		return expense.Expense{}, errors.New("amount must be a whole number")
	}

	date := input.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	e := expense.Expense{
		ID:          uuid.New().String(),
		GymID:       input.GymID,
		Date:        date,
		Category:    input.Category,
		Amount:      amount,
		Description: input.Description,
		Notes:       input.Notes,
	}
	if err := e.Validate(); err != nil {
		return expense.Expense{}, err
	}
	if err := deps.ExpenseStore.Save(ctx, e); err != nil {
		return expense.Expense{}, err
	}

	slog.Info("expense_event", "event", "expense_added", "category", e.Category, "amount", e.Amount)
	return e, nil
}

// ExecuteDeleteExpense removes an expense row. Deleting an unknown id is a
// no-op.
// PRE: id is non-empty
// POST: No row with the id remains
func ExecuteDeleteExpense(ctx context.Context, id string, deps AddExpenseDeps) error {
	if id == "" {
		return errors.New("expense id cannot be empty")
	}
	if err := deps.ExpenseStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("expense_event", "event", "expense_deleted", "id", id)
	return nil
}
