package projections

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	storageexpense "gymdash/internal/adapters/storage/expense"
	storagemember "gymdash/internal/adapters/storage/member"
	"gymdash/internal/domain/attendance"
	"gymdash/internal/domain/expense"
	"gymdash/internal/domain/measurement"
	"gymdash/internal/domain/member"
)

// mockMemberStore implements MemberStore with the same filter semantics as
// the sqlite store.
type mockMemberStore struct {
	members []member.Member
}

func (m *mockMemberStore) GetByID(_ context.Context, id string) (member.Member, error) {
	for _, mem := range m.members {
		if mem.ID == id {
			return mem, nil
		}
	}
	return member.Member{}, errors.New("not found")
}

func (m *mockMemberStore) GetByAccountID(_ context.Context, accountID string) (member.Member, error) {
	for _, mem := range m.members {
		if accountID != "" && mem.AccountID == accountID {
			return mem, nil
		}
	}
	return member.Member{}, sql.ErrNoRows
}

func (m *mockMemberStore) List(_ context.Context, filter storagemember.ListFilter) ([]member.Member, error) {
	var out []member.Member
	for _, mem := range m.members {
		if filter.FeeStatus != "" && mem.FeeStatus != filter.FeeStatus {
			continue
		}
		if filter.Search != "" {
			s := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(mem.Name), s) && !strings.Contains(mem.Phone, s) {
				continue
			}
		}
		out = append(out, mem)
	}
	if filter.Offset > len(out) {
		return nil, nil
	}
	out = out[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *mockMemberStore) Count(_ context.Context) (int, error) {
	return len(m.members), nil
}

// mockAttendanceStore implements AttendanceStore over a slice of visits.
type mockAttendanceStore struct {
	visits []attendance.Attendance
}

func (m *mockAttendanceStore) ListByDate(_ context.Context, date string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, v := range m.visits {
		if v.VisitDate == date {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockAttendanceStore) ListByMember(_ context.Context, memberID string, limit int) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for i := len(m.visits) - 1; i >= 0; i-- {
		if m.visits[i].MemberID == memberID {
			out = append(out, m.visits[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockAttendanceStore) CountByWeekday(_ context.Context) (map[string]int, error) {
	out := make(map[string]int)
	for _, v := range m.visits {
		out[v.CheckInTime.Weekday().String()[:3]]++
	}
	return out, nil
}

// mockExpenseStore implements ExpenseStore over a slice of rows.
type mockExpenseStore struct {
	expenses []expense.Expense
}

func (m *mockExpenseStore) List(_ context.Context, filter storageexpense.ListFilter) ([]expense.Expense, error) {
	var out []expense.Expense
	for _, e := range m.expenses {
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if !e.Matches(filter.Search) {
			continue
		}
		out = append(out, e)
	}
	if filter.Offset > len(out) {
		return nil, nil
	}
	out = out[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *mockExpenseStore) TotalByCategory(_ context.Context) (map[string]int, error) {
	out := make(map[string]int)
	for _, e := range m.expenses {
		out[e.Category] += e.Amount
	}
	return out, nil
}

func (m *mockExpenseStore) TotalByMonth(_ context.Context) (map[string]int, error) {
	out := make(map[string]int)
	for _, e := range m.expenses {
		if len(e.Date) >= 7 {
			out[e.Date[:7]] += e.Amount
		}
	}
	return out, nil
}

// mockMeasurementStore implements MeasurementStore; entries are kept oldest
// first, matching the Series ordering.
type mockMeasurementStore struct {
	entries []measurement.Measurement
}

func (m *mockMeasurementStore) ListByMember(_ context.Context, memberID string, limit int) ([]measurement.Measurement, error) {
	var out []measurement.Measurement
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].MemberID == memberID {
			out = append(out, m.entries[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockMeasurementStore) Series(_ context.Context, memberID string) ([]measurement.Measurement, error) {
	var out []measurement.Measurement
	for _, e := range m.entries {
		if e.MemberID == memberID {
			out = append(out, e)
		}
	}
	return out, nil
}
