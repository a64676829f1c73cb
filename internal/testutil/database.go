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

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the goose migrations in internal/database.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Account table
		CREATE TABLE IF NOT EXISTS account (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			type VARCHAR(20) NOT NULL,
			currency VARCHAR(3) NOT NULL DEFAULT 'GBP',
			starting_value REAL NOT NULL DEFAULT 0
		);

		-- Debt table
		CREATE TABLE IF NOT EXISTS debt (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			debt_limit REAL NOT NULL DEFAULT 0,
			apr REAL NOT NULL DEFAULT 0,
			min_payment_type VARCHAR(10) NOT NULL DEFAULT 'fixed',
			min_payment_value REAL NOT NULL DEFAULT 0,
			starting_value REAL NOT NULL DEFAULT 0,
			promo_apr REAL,
			promo_end_date DATE
		);

		-- Transaction table (quoted because transaction is a reserved keyword)
		CREATE TABLE IF NOT EXISTS "transaction" (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			date DATE NOT NULL,
			description TEXT,
			amount REAL NOT NULL,
			type VARCHAR(20) NOT NULL,
			category VARCHAR(50),
			account_id VARCHAR(36) NOT NULL,
			account_to_id VARCHAR(36),
			symbol VARCHAR(20),
			quantity REAL,
			price REAL,
			currency VARCHAR(3),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_transaction_date ON "transaction"(date);
		CREATE INDEX IF NOT EXISTS idx_transaction_account ON "transaction"(account_id);

		-- Symbol price table
		CREATE TABLE IF NOT EXISTS symbol_price (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(20) NOT NULL,
			date DATE NOT NULL,
			open REAL,
			close REAL NOT NULL,
			synthetic BOOLEAN NOT NULL DEFAULT FALSE,
			UNIQUE(symbol, date)
		);

		-- Settings table (single row)
		CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			base_currency VARCHAR(3) NOT NULL DEFAULT 'GBP',
			fx_rate REAL NOT NULL DEFAULT 0,
			price_api_key TEXT
		);

		INSERT INTO settings (id, base_currency, fx_rate)
		VALUES (1, 'GBP', 0)
		ON CONFLICT (id) DO NOTHING;
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables and resets the settings row.
// Useful for reusing the same database across multiple tests.
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	tables := []string{
		"transaction",
		"symbol_price",
		"debt",
		"account",
	}

	for _, table := range tables {
		query := `DELETE FROM "` + table + `"`
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}

	if _, err := db.Exec("UPDATE settings SET base_currency = 'GBP', fx_rate = 0, price_api_key = NULL WHERE id = 1"); err != nil {
		t.Fatalf("Failed to reset settings: %v", err)
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := `SELECT COUNT(*) FROM "` + table + `"`
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
