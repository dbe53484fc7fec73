package projections

import (
	"context"

	storageexpense "gymdash/internal/adapters/storage/expense"
	"gymdash/internal/application/listutil"
	"gymdash/internal/domain/expense"
)

// GetExpenseSummaryQuery carries query parameters for the expenses screen.
type GetExpenseSummaryQuery struct {
	Category string // one of the fixed categories, or empty for all
	Search   string // matches description and category
	Page     int
	PerPage  int
}

// GetExpenseSummaryResult carries the expenses screen data.
type GetExpenseSummaryResult struct {
	Expenses       []expense.Expense
	FilteredTotal  int // sum over the filtered set, not just the page
	OverallTotal   int // sum over all expenses
	CategoryTotals map[string]int
	PageInfo       listutil.PageInfo
}

// GetExpenseSummaryDeps holds dependencies for GetExpenseSummary.
type GetExpenseSummaryDeps struct {
	ExpenseStore ExpenseStore
}

// QueryGetExpenseSummary returns a filtered, paginated expense list with the
// filtered and overall totals shown in the summary cards.
// PRE: Valid query parameters
// POST: FilteredTotal covers every matching row, OverallTotal every row
func QueryGetExpenseSummary(ctx context.Context, query GetExpenseSummaryQuery, deps GetExpenseSummaryDeps) (GetExpenseSummaryResult, error) {
	matching, err := deps.ExpenseStore.List(ctx, storageexpense.ListFilter{
		Limit:    10000,
		Category: query.Category,
		Search:   query.Search,
	})
	if err != nil {
		return GetExpenseSummaryResult{}, err
	}

	categoryTotals, err := deps.ExpenseStore.TotalByCategory(ctx)
	if err != nil {
		return GetExpenseSummaryResult{}, err
	}

	result := GetExpenseSummaryResult{CategoryTotals: categoryTotals}
	for _, total := range categoryTotals {
		result.OverallTotal += total
	}
	for _, e := range matching {
		result.FilteredTotal += e.Amount
	}

	result.PageInfo = listutil.NewPageInfo(query.Page, query.PerPage, len(matching))
	start := result.PageInfo.Offset()
	end := start + result.PageInfo.PerPage
	if start > len(matching) {
		start = len(matching)
	}
	if end > len(matching) {
		end = len(matching)
	}
	result.Expenses = matching[start:end]

	return result, nil
}
