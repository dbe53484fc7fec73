package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables.
	// Note: account.email is deliberately NOT unique: signup performs no
	// duplicate-email check, and two signups with the same address both keep
	// their own account row.
	schema := `
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		role TEXT NOT NULL,
		gym_id TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS member (
		id TEXT PRIMARY KEY,
		gym_id TEXT NOT NULL DEFAULT '',
		account_id TEXT NOT NULL DEFAULT '',
		code TEXT NOT NULL,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		age INTEGER NOT NULL DEFAULT 0,
		gender TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		blood_group TEXT NOT NULL DEFAULT '',
		health_notes TEXT NOT NULL DEFAULT '',
		package TEXT NOT NULL,
		amount INTEGER NOT NULL DEFAULT 0,
		start_date TEXT NOT NULL,
		expiry_date TEXT NOT NULL,
		fee_status TEXT NOT NULL,
		attendance INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS attendance (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		visit_date TEXT NOT NULL,
		check_in_time TEXT NOT NULL,
		check_out_time TEXT,
		FOREIGN KEY (member_id) REFERENCES member(id)
	);

	CREATE TABLE IF NOT EXISTS expense (
		id TEXT PRIMARY KEY,
		gym_id TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		category TEXT NOT NULL,
		amount INTEGER NOT NULL,
		description TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS measurement (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		date TEXT NOT NULL,
		weight REAL NOT NULL,
		waist REAL NOT NULL,
		arm REAL NOT NULL,
		chest REAL NOT NULL,
		FOREIGN KEY (member_id) REFERENCES account(id)
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
