package projections

import (
	"context"
	"strings"

	storagemember "gymdash/internal/adapters/storage/member"
	"gymdash/internal/domain/attendance"
	"gymdash/internal/domain/member"
)

// GetAttendanceDayQuery carries query parameters for the attendance screen.
type GetAttendanceDayQuery struct {
	Date   string // YYYY-MM-DD
	Search string // substring match on member name or code
}

// VisitWithMember pairs a visit with the member it belongs to.
type VisitWithMember struct {
	Visit      attendance.Attendance
	MemberName string
	MemberCode string
}

// AttendanceDayStats aggregates the day's visit counts.
type AttendanceDayStats struct {
	Total     int
	Active    int
	Completed int
}

// GetAttendanceDayResult carries the attendance screen data.
type GetAttendanceDayResult struct {
	Visits       []VisitWithMember
	NotCheckedIn []member.Member // members without a visit on the date
	Stats        AttendanceDayStats
}

// GetAttendanceDayDeps holds dependencies for GetAttendanceDay.
type GetAttendanceDayDeps struct {
	AttendanceStore AttendanceStore
	MemberStore     MemberStore
}

// QueryGetAttendanceDay returns the day's visits with member names, plus the
// members who have not visited yet so the front desk can check them in.
// A non-empty Search narrows both lists by member name or code, but the
// stats always cover the whole day.
// PRE: Date is YYYY-MM-DD
// POST: Every visit on the date appears exactly once; stats add up
func QueryGetAttendanceDay(ctx context.Context, query GetAttendanceDayQuery, deps GetAttendanceDayDeps) (GetAttendanceDayResult, error) {
	visits, err := deps.AttendanceStore.ListByDate(ctx, query.Date)
	if err != nil {
		return GetAttendanceDayResult{}, err
	}

	members, err := deps.MemberStore.List(ctx, storagemember.ListFilter{Limit: 10000})
	if err != nil {
		return GetAttendanceDayResult{}, err
	}
	byID := make(map[string]member.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	result := GetAttendanceDayResult{}
	visited := make(map[string]bool, len(visits))
	for _, v := range visits {
		visited[v.MemberID] = true
		row := VisitWithMember{Visit: v}
		if m, ok := byID[v.MemberID]; ok {
			row.MemberName = m.Name
			row.MemberCode = m.Code
		}

		result.Stats.Total++
		if v.IsCheckedOut() {
			result.Stats.Completed++
		} else {
			result.Stats.Active++
		}

		if matchesMemberSearch(query.Search, row.MemberName, row.MemberCode) {
			result.Visits = append(result.Visits, row)
		}
	}

	for _, m := range members {
		if !visited[m.ID] && matchesMemberSearch(query.Search, m.Name, m.Code) {
			result.NotCheckedIn = append(result.NotCheckedIn, m)
		}
	}

	return result, nil
}

func matchesMemberSearch(search, name, code string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(name), needle) ||
		strings.Contains(strings.ToLower(code), needle)
}
