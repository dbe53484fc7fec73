package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	emailPkg "gymdash/internal/adapters/email"
	web "gymdash/internal/adapters/http"
	"gymdash/internal/adapters/storage"
	accountStore "gymdash/internal/adapters/storage/account"
	attendanceStore "gymdash/internal/adapters/storage/attendance"
	expenseStore "gymdash/internal/adapters/storage/expense"
	measurementStore "gymdash/internal/adapters/storage/measurement"
	memberStore "gymdash/internal/adapters/storage/member"
	"gymdash/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("GYMDASH_DB", "gymdash.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	log.Println("Database initialized")

	acctStore := accountStore.NewSQLiteStore(db)
	stores := &web.Stores{
		AccountStore:     acctStore,
		MemberStore:      memberStore.NewSQLiteStore(db),
		AttendanceStore:  attendanceStore.NewSQLiteStore(db),
		ExpenseStore:     expenseStore.NewSQLiteStore(db),
		MeasurementStore: measurementStore.NewSQLiteStore(db),
	}

	// Seed demo accounts for each role (all environments, idempotent)
	seedAcctDeps := orchestrators.SeedAccountsDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedDemoAccounts(context.Background(), seedAcctDeps); err != nil {
		log.Fatalf("failed to seed demo accounts: %v", err)
	}

	// Seed members, attendance and expenses for development only
	if os.Getenv("GYMDASH_ENV") != "production" {
		seedDataDeps := orchestrators.SeedDataDeps{
			MemberStore:     stores.MemberStore,
			AttendanceStore: stores.AttendanceStore,
			ExpenseStore:    stores.ExpenseStore,
		}
		if err := orchestrators.ExecuteSeedDemoData(context.Background(), seedDataDeps); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
		log.Println("Demo seed data loaded (dev mode)")
	}

	// Configure email sender
	resendKey := os.Getenv("GYMDASH_RESEND_KEY")
	emailFrom := envOrDefault("GYMDASH_RESEND_FROM", "GymDash <noreply@gymdash.app>")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom)
		if os.Getenv("GYMDASH_ENV") == "production" {
			log.Println("WARNING: GYMDASH_RESEND_KEY is not set, email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop, set GYMDASH_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux("static", stores)

	addr := envOrDefault("GYMDASH_ADDR", ":8080")
	log.Printf("GymDash %s starting on %s (env=%s)", version, addr, envOrDefault("GYMDASH_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
