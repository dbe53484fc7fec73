package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gymdash/internal/domain/account"
	"gymdash/internal/domain/attendance"
	"gymdash/internal/domain/expense"
	"gymdash/internal/domain/member"

	"github.com/google/uuid"
)

// MemberStoreForSeedData defines the member store surface the data seed uses.
type MemberStoreForSeedData interface {
	Save(ctx context.Context, m member.Member) error
	Count(ctx context.Context) (int, error)
}

// SeedDataDeps holds dependencies for the demo data seed.
type SeedDataDeps struct {
	MemberStore     MemberStoreForSeedData
	AttendanceStore AttendanceStoreForCheckIn
	ExpenseStore    ExpenseStoreForAdd
}

// ExecuteSeedDemoData populates members, today's attendance and recent
// expenses when the member table is empty, so the dashboards and reports have
// something to show in development. Production deployments start empty.
// PRE: Database is migrated
// POST: Demo rows exist unless members were already present
func ExecuteSeedDemoData(ctx context.Context, deps SeedDataDeps) error {
	count, err := deps.MemberStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // already populated, skip seeding
	}

	type seedMember struct {
		name      string
		phone     string
		pkg       string
		start     string
		feeStatus string
		pct       int
		accountID string
	}
	// Mike Wilson is linked to the demo member login so their dashboard
	// shows real attendance.
	seedMembers := []seedMember{
		{"John Smith", "+1234567890", "Premium", "2024-01-15", member.FeePaid, 85, ""},
		{"Sarah Johnson", "+1234567891", "Basic", "2024-02-01", member.FeePending, 72, ""},
		{"Mike Wilson", "+1234567892", "Standard", "2024-01-01", member.FeeOverdue, 45, "3"},
		{"Emily Davis", "+1234567893", "Premium", "2024-03-01", member.FeePaid, 92, ""},
		{"Chris Brown", "+1234567894", "Basic", "2024-02-15", member.FeePending, 68, ""},
		{"Lisa White", "+1234567895", "Standard", "2024-04-01", member.FeePaid, 78, ""},
		{"David Miller", "+1234567896", "Annual", "2024-01-10", member.FeePaid, 88, ""},
	}

	memberIDs := make([]string, 0, len(seedMembers))
	for i, sm := range seedMembers {
		start, _ := time.Parse("2006-01-02", sm.start)
		m := member.Member{
			ID:         uuid.New().String(),
			GymID:      account.DefaultGymID,
			AccountID:  sm.accountID,
			Code:       fmt.Sprintf("GYM%03d", i+1),
			Name:       sm.name,
			Phone:      sm.phone,
			Package:    sm.pkg,
			StartDate:  start,
			FeeStatus:  sm.feeStatus,
			Attendance: sm.pct,
		}
		if err := m.ApplyPackage(); err != nil {
			return err
		}
		if err := deps.MemberStore.Save(ctx, m); err != nil {
			return err
		}
		memberIDs = append(memberIDs, m.ID)
	}

	// A few visits today: some completed, some still in the gym.
	today := time.Now().Format("2006-01-02")
	morning := time.Now().Truncate(24 * time.Hour).Add(8 * time.Hour)
	for i, id := range memberIDs[:5] {
		a := attendance.Attendance{
			ID:          uuid.New().String(),
			MemberID:    id,
			VisitDate:   today,
			CheckInTime: morning.Add(time.Duration(i*30) * time.Minute),
		}
		if i%2 == 0 {
			a.CheckOutTime = a.CheckInTime.Add(105 * time.Minute)
		}
		if err := deps.AttendanceStore.Save(ctx, a); err != nil {
			return err
		}
	}

	seedExpenses := []expense.Expense{
		{Date: "2024-11-25", Category: "Equipment", Amount: 1200, Description: "New treadmill purchase", Notes: "Brand: NordicTrack"},
		{Date: "2024-11-24", Category: "Utilities", Amount: 350, Description: "Monthly electricity bill"},
		{Date: "2024-11-23", Category: "Staff Salary", Amount: 2500, Description: "Trainer salary - November", Notes: "John Doe"},
		{Date: "2024-11-22", Category: "Maintenance", Amount: 150, Description: "AC repair service", Notes: "Emergency repair"},
		{Date: "2024-11-21", Category: "Supplies", Amount: 75, Description: "Cleaning supplies", Notes: "Monthly stock"},
		{Date: "2024-11-20", Category: "Marketing", Amount: 300, Description: "Social media ads", Notes: "Facebook & Instagram"},
	}
	for _, e := range seedExpenses {
		e.ID = uuid.New().String()
		e.GymID = account.DefaultGymID
		if err := deps.ExpenseStore.Save(ctx, e); err != nil {
			return err
		}
	}

	slog.Info("seed_event", "event", "demo_data_seeded",
		"members", len(seedMembers), "expenses", len(seedExpenses))
	return nil
}
