package projections

import (
	"context"
	"database/sql"
	"errors"
	"time"

	storagemember "gymdash/internal/adapters/storage/member"
	"gymdash/internal/domain/account"
	"gymdash/internal/domain/attendance"
	"gymdash/internal/domain/measurement"
	"gymdash/internal/domain/member"
)

// GetDashboardQuery carries input for the dashboard projection.
type GetDashboardQuery struct {
	Role      account.Role
	AccountID string // used for the member dashboard
}

// OwnerStats are the figures on the owner dashboard.
type OwnerStats struct {
	TotalMembers   int
	ActiveMembers  int
	TotalRevenue   int
	TotalExpenses  int
	Profit         int
	MonthlyRevenue int // memberships started this month
}

// AdminStats are the figures on the admin dashboard.
type AdminStats struct {
	TotalMembers  int
	ActiveToday   int // open visits right now
	VisitsToday   int
	PendingFees   int // members with Pending or Overdue status
	MonthExpenses int
	ExpiringSoon  []member.Member // memberships lapsing within 7 days
}

// MemberStats are the figures on the member dashboard.
type MemberStats struct {
	RecentVisits []attendance.Attendance
	Latest       *measurement.Measurement
	Entries      int
}

// GetDashboardResult carries the output of the dashboard projection. Only the
// block matching the queried role is populated.
type GetDashboardResult struct {
	Role   account.Role
	Owner  *OwnerStats
	Admin  *AdminStats
	Member *MemberStats
}

// GetDashboardDeps holds dependencies for the dashboard projection.
type GetDashboardDeps struct {
	MemberStore      MemberStore
	AttendanceStore  AttendanceStore
	ExpenseStore     ExpenseStore
	MeasurementStore MeasurementStore
}

// QueryGetDashboard aggregates dashboard figures based on the user's role.
// PRE: Role is valid
// POST: Exactly one of Owner, Admin, Member is non-nil
func QueryGetDashboard(ctx context.Context, query GetDashboardQuery, deps GetDashboardDeps, now time.Time) (GetDashboardResult, error) {
	result := GetDashboardResult{Role: query.Role}

	switch query.Role {
	case account.RoleOwner:
		stats, err := ownerStats(ctx, deps, now)
		if err != nil {
			return GetDashboardResult{}, err
		}
		result.Owner = &stats

	case account.RoleAdmin:
		stats, err := adminStats(ctx, deps, now)
		if err != nil {
			return GetDashboardResult{}, err
		}
		result.Admin = &stats

	case account.RoleMember:
		stats, err := memberStats(ctx, deps, query.AccountID)
		if err != nil {
			return GetDashboardResult{}, err
		}
		result.Member = &stats
	}

	return result, nil
}

func ownerStats(ctx context.Context, deps GetDashboardDeps, now time.Time) (OwnerStats, error) {
	members, err := deps.MemberStore.List(ctx, storagemember.ListFilter{Limit: 10000})
	if err != nil {
		return OwnerStats{}, err
	}

	expensesByMonth, err := deps.ExpenseStore.TotalByMonth(ctx)
	if err != nil {
		return OwnerStats{}, err
	}

	stats := OwnerStats{TotalMembers: len(members)}
	thisMonth := now.Format("2006-01")
	for _, m := range members {
		stats.TotalRevenue += m.Amount
		if !m.IsExpired(now) {
			stats.ActiveMembers++
		}
		if m.StartDate.Format("2006-01") == thisMonth {
			stats.MonthlyRevenue += m.Amount
		}
	}
	for _, total := range expensesByMonth {
		stats.TotalExpenses += total
	}
	stats.Profit = stats.TotalRevenue - stats.TotalExpenses
	return stats, nil
}

func adminStats(ctx context.Context, deps GetDashboardDeps, now time.Time) (AdminStats, error) {
	members, err := deps.MemberStore.List(ctx, storagemember.ListFilter{Limit: 10000})
	if err != nil {
		return AdminStats{}, err
	}

	visits, err := deps.AttendanceStore.ListByDate(ctx, now.Format("2006-01-02"))
	if err != nil {
		return AdminStats{}, err
	}

	expensesByMonth, err := deps.ExpenseStore.TotalByMonth(ctx)
	if err != nil {
		return AdminStats{}, err
	}

	stats := AdminStats{
		TotalMembers:  len(members),
		VisitsToday:   len(visits),
		MonthExpenses: expensesByMonth[now.Format("2006-01")],
	}
	for _, v := range visits {
		if !v.IsCheckedOut() {
			stats.ActiveToday++
		}
	}
	soon := now.AddDate(0, 0, 7)
	for _, m := range members {
		if m.FeeStatus != member.FeePaid {
			stats.PendingFees++
		}
		if !m.IsExpired(now) && m.ExpiryDate.Before(soon) {
			stats.ExpiringSoon = append(stats.ExpiringSoon, m)
		}
	}
	return stats, nil
}

func memberStats(ctx context.Context, deps GetDashboardDeps, accountID string) (MemberStats, error) {
	stats := MemberStats{}

	// Visits are keyed by the floor-member record, not the account. An
	// account without a linked member record has no attendance to show.
	linked, err := deps.MemberStore.GetByAccountID(ctx, accountID)
	switch {
	case err == nil:
		visits, err := deps.AttendanceStore.ListByMember(ctx, linked.ID, 5)
		if err != nil {
			return MemberStats{}, err
		}
		stats.RecentVisits = visits
	case errors.Is(err, sql.ErrNoRows):
	default:
		return MemberStats{}, err
	}

	series, err := deps.MeasurementStore.Series(ctx, accountID)
	if err != nil {
		return MemberStats{}, err
	}

	stats.Entries = len(series)
	if len(series) > 0 {
		latest := series[len(series)-1]
		stats.Latest = &latest
	}
	return stats, nil
}
