package postgresql_test

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"testing"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/database"
)

const testSchema = "timesheet_test"

// Minimal slice of the HRIS schema the timesheet repositories read from.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS positions (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS employees (
	id UUID PRIMARY KEY,
	user_id UUID,
	company_id UUID NOT NULL,
	position_id UUID REFERENCES positions(id),
	employee_code TEXT NOT NULL,
	full_name TEXT NOT NULL,
	phone_number TEXT NOT NULL DEFAULT '',
	employment_status TEXT NOT NULL,
	hire_date DATE NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	deleted_at TIMESTAMPTZ
);
CREATE TABLE IF NOT EXISTS attendances (
	id UUID PRIMARY KEY,
	employee_id UUID NOT NULL REFERENCES employees(id),
	company_id UUID NOT NULL,
	date DATE NOT NULL,
	clock_in TIMESTAMPTZ,
	clock_out TIMESTAMPTZ,
	status TEXT NOT NULL DEFAULT 'on_time',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	deleted_at TIMESTAMPTZ
);
CREATE TABLE IF NOT EXISTS leave_types (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS leave_requests (
	id UUID PRIMARY KEY,
	employee_id UUID NOT NULL REFERENCES employees(id),
	leave_type_id UUID NOT NULL REFERENCES leave_types(id),
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// TestDatabaseSetup holds a pool pinned to the isolated test schema
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and prepares the test schema.
// The test is skipped when no database is configured.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	admin, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 2, MinConns: 1})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	_, err = admin.Exec(ctx, fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", testSchema))
	admin.Close()
	if err != nil {
		t.Fatalf("failed to create test schema: %v", err)
	}

	scoped, err := withSearchPath(dsn, testSchema)
	if err != nil {
		t.Fatalf("invalid TEST_DATABASE_URL: %v", err)
	}

	db, err := database.NewPostgreSQLDB(ctx, scoped, database.PoolOptions{MaxConns: 4, MinConns: 1})
	if err != nil {
		t.Fatalf("failed to connect to test schema: %v", err)
	}

	setup := &TestDatabaseSetup{DB: db}
	if _, err := db.Exec(ctx, schemaDDL); err != nil {
		db.Close()
		t.Fatalf("failed to create tables: %v", err)
	}
	if err := setup.TruncateAllTables(ctx); err != nil {
		db.Close()
		t.Fatalf("failed to truncate tables: %v", err)
	}

	t.Cleanup(setup.Close)
	return setup
}

func withSearchPath(dsn, schema string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("search_path", schema)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// TruncateAllTables removes every row the timesheet tests insert
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	_, err := t.DB.Exec(ctx, "TRUNCATE TABLE leave_requests, leave_types, attendances, employees, positions CASCADE")
	return err
}

// Close closes the database connection
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
