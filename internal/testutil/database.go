package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the embedded goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- User profile table
		CREATE TABLE IF NOT EXISTS user_profile (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL DEFAULT '',
			monthly_income FLOAT NOT NULL DEFAULT 0,
			savings_balance FLOAT,
			monthly_budget FLOAT NOT NULL DEFAULT 0,
			phone_encrypted TEXT,
			updated_at DATETIME
		);

		-- Transaction table (quoted because transaction is a reserved keyword)
		CREATE TABLE IF NOT EXISTS "transaction" (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			amount FLOAT NOT NULL,
			merchant VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			date DATE NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Alert history table
		CREATE TABLE IF NOT EXISTS alert_history (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			month VARCHAR(7) NOT NULL,
			threshold_name VARCHAR(50) NOT NULL,
			sent_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT unique_alert UNIQUE (month, threshold_name)
		);
	`

	_, err := db.Exec(schema)
	return err
}
