package projections

import (
	"context"
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"time"

	storagemember "gymdash/internal/adapters/storage/member"
)

// MonthlyPoint is one month of the revenue-versus-expense series.
type MonthlyPoint struct {
	Month    string // YYYY-MM
	Revenue  int
	Expenses int
	Profit   int
}

// GrowthPoint is one month of the member growth series. Lapsed counts the
// memberships whose expiry fell in that month.
type GrowthPoint struct {
	Month         string // YYYY-MM
	NewMembers    int
	LapsedMembers int
}

// GetReportsResult carries every aggregation shown on the reports screen.
type GetReportsResult struct {
	Monthly             []MonthlyPoint
	Growth              []GrowthPoint
	ActiveMembers       int
	ExpiredMembers      int
	PackageDistribution map[string]int
	AttendanceByWeekday map[string]int
	TotalRevenue        int
	TotalExpenses       int
}

// GetReportsDeps holds dependencies for GetReports.
type GetReportsDeps struct {
	MemberStore     MemberStore
	ExpenseStore    ExpenseStore
	AttendanceStore AttendanceStore
}

// QueryGetReports aggregates the reports screen: revenue versus expenses per
// month, member growth, membership status, package distribution and visit
// counts by weekday. Revenue is attributed to the month the membership
// started.
// PRE: Stores are reachable
// POST: Monthly and Growth are sorted by month ascending
func QueryGetReports(ctx context.Context, deps GetReportsDeps, now time.Time) (GetReportsResult, error) {
	members, err := deps.MemberStore.List(ctx, storagemember.ListFilter{Limit: 10000})
	if err != nil {
		return GetReportsResult{}, err
	}

	expensesByMonth, err := deps.ExpenseStore.TotalByMonth(ctx)
	if err != nil {
		return GetReportsResult{}, err
	}

	weekdays, err := deps.AttendanceStore.CountByWeekday(ctx)
	if err != nil {
		return GetReportsResult{}, err
	}

	result := GetReportsResult{
		PackageDistribution: make(map[string]int),
		AttendanceByWeekday: weekdays,
	}

	revenueByMonth := make(map[string]int)
	growthByMonth := make(map[string]int)
	lapsedByMonth := make(map[string]int)
	for _, m := range members {
		month := m.StartDate.Format("2006-01")
		revenueByMonth[month] += m.Amount
		growthByMonth[month]++
		result.TotalRevenue += m.Amount
		result.PackageDistribution[m.Package]++
		if m.IsExpired(now) {
			result.ExpiredMembers++
			lapsedByMonth[m.ExpiryDate.Format("2006-01")]++
		} else {
			result.ActiveMembers++
		}
	}

	for _, total := range expensesByMonth {
		result.TotalExpenses += total
	}

	// Union of months seen on either side of the ledger.
	monthSet := make(map[string]bool)
	for month := range revenueByMonth {
		monthSet[month] = true
	}
	for month := range expensesByMonth {
		monthSet[month] = true
	}
	months := make([]string, 0, len(monthSet))
	for month := range monthSet {
		months = append(months, month)
	}
	sort.Strings(months)

	for _, month := range months {
		result.Monthly = append(result.Monthly, MonthlyPoint{
			Month:    month,
			Revenue:  revenueByMonth[month],
			Expenses: expensesByMonth[month],
			Profit:   revenueByMonth[month] - expensesByMonth[month],
		})
	}

	growthSet := make(map[string]bool, len(growthByMonth))
	for month := range growthByMonth {
		growthSet[month] = true
	}
	for month := range lapsedByMonth {
		growthSet[month] = true
	}
	growthMonths := make([]string, 0, len(growthSet))
	for month := range growthSet {
		growthMonths = append(growthMonths, month)
	}
	sort.Strings(growthMonths)
	for _, month := range growthMonths {
		result.Growth = append(result.Growth, GrowthPoint{
			Month:         month,
			NewMembers:    growthByMonth[month],
			LapsedMembers: lapsedByMonth[month],
		})
	}

	return result, nil
}

// WriteReportCSV writes the monthly revenue-versus-expense series as CSV.
// POST: One header row plus one row per month
func WriteReportCSV(w io.Writer, result GetReportsResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"month", "revenue", "expenses", "profit"}); err != nil {
		return err
	}
	for _, p := range result.Monthly {
		row := []string{p.Month, strconv.Itoa(p.Revenue), strconv.Itoa(p.Expenses), strconv.Itoa(p.Profit)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
