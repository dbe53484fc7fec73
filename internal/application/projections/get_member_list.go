package projections

import (
	"context"
	"time"

	storagemember "gymdash/internal/adapters/storage/member"
	"gymdash/internal/application/listutil"
	"gymdash/internal/domain/member"
)

// GetMemberListQuery carries query parameters for the member list screen.
type GetMemberListQuery struct {
	FeeStatus string // Paid, Pending, Overdue, or empty for all
	Search    string // matches name and phone
	Page      int
	PerPage   int
}

// MemberRow is a member with its derived display state.
type MemberRow struct {
	Member  member.Member
	Expired bool
}

// GetMemberListResult carries the member list query result.
type GetMemberListResult struct {
	Members  []MemberRow
	PageInfo listutil.PageInfo
}

// GetMemberListDeps holds dependencies for GetMemberList.
type GetMemberListDeps struct {
	MemberStore     MemberStore
	AttendanceStore AttendanceStore
}

// QueryGetMemberList retrieves a filtered, paginated page of members with an
// expiry flag and attendance percentage computed against the given time.
// PRE: Valid query parameters
// POST: Returns at most PerPage members matching the filters
func QueryGetMemberList(ctx context.Context, query GetMemberListQuery, deps GetMemberListDeps, now time.Time) (GetMemberListResult, error) {
	// Fetch all matching rows, then page in memory. Member counts are gym
	// sized, not internet sized.
	matching, err := deps.MemberStore.List(ctx, storagemember.ListFilter{
		Limit:     10000,
		FeeStatus: query.FeeStatus,
		Search:    query.Search,
	})
	if err != nil {
		return GetMemberListResult{}, err
	}

	pageInfo := listutil.NewPageInfo(query.Page, query.PerPage, len(matching))
	start := pageInfo.Offset()
	end := start + pageInfo.PerPage
	if start > len(matching) {
		start = len(matching)
	}
	if end > len(matching) {
		end = len(matching)
	}

	rows := make([]MemberRow, 0, end-start)
	for _, m := range matching[start:end] {
		// Only the visible page pays for an attendance lookup.
		pct, err := attendancePercent(ctx, deps.AttendanceStore, m, now)
		if err != nil {
			return GetMemberListResult{}, err
		}
		m.Attendance = pct
		rows = append(rows, MemberRow{Member: m, Expired: m.IsExpired(now)})
	}

	return GetMemberListResult{Members: rows, PageInfo: pageInfo}, nil
}

// attendancePercent computes visits over elapsed membership days, capped at
// 100. A membership that starts in the future scores zero.
func attendancePercent(ctx context.Context, store AttendanceStore, m member.Member, now time.Time) (int, error) {
	periodEnd := now
	if m.ExpiryDate.Before(periodEnd) {
		periodEnd = m.ExpiryDate
	}
	days := int(periodEnd.Sub(m.StartDate).Hours()/24) + 1
	if days < 1 {
		return 0, nil
	}

	visits, err := store.ListByMember(ctx, m.ID, 10000)
	if err != nil {
		return 0, err
	}
	startDay := m.StartDate.Format("2006-01-02")
	count := 0
	for _, v := range visits {
		if v.VisitDate >= startDay {
			count++
		}
	}

	pct := count * 100 / days
	if pct > 100 {
		pct = 100
	}
	return pct, nil
}
