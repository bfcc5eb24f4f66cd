package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/timesheet"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	companyID  string
	positionID string
	alice      string
	bob        string
	carol      string
	leaveType  string
}

func seed(t *testing.T, db *database.DB) fixture {
	t.Helper()
	ctx := context.Background()

	f := fixture{
		companyID:  uuid.NewString(),
		positionID: uuid.NewString(),
		alice:      uuid.NewString(),
		bob:        uuid.NewString(),
		carol:      uuid.NewString(),
		leaveType:  uuid.NewString(),
	}

	exec := func(sql string, args ...interface{}) {
		_, err := db.Exec(ctx, sql, args...)
		require.NoError(t, err)
	}

	exec(`INSERT INTO positions (id, name) VALUES ($1, 'Engineer')`, f.positionID)
	exec(`INSERT INTO employees (id, company_id, position_id, employee_code, full_name, phone_number, employment_status, hire_date)
		VALUES ($1, $4, $5, 'EMP-001', 'Alice Smith', '0811', 'active', '2023-01-01'),
		       ($2, $4, $5, 'EMP-002', 'Bob Jones', '', 'active', '2023-01-01'),
		       ($3, $4, NULL, 'EMP-003', 'Carol White', '', 'active', '2023-01-01')`,
		f.alice, f.bob, f.carol, f.companyID, f.positionID)
	exec(`INSERT INTO attendances (id, employee_id, company_id, date, clock_in, clock_out)
		VALUES ($1, $3, $4, '2024-01-15', '2024-01-15 13:00:00+00', '2024-01-15 17:30:00+00'),
		       ($2, $3, $4, '2024-01-15', '2024-01-15 09:00:00+00', '2024-01-15 12:00:00+00')`,
		uuid.NewString(), uuid.NewString(), f.alice, f.companyID)
	exec(`INSERT INTO leave_types (id, name) VALUES ($1, 'Annual Leave')`, f.leaveType)
	exec(`INSERT INTO leave_requests (id, employee_id, leave_type_id, start_date, end_date, status)
		VALUES ($1, $3, $4, '2024-01-14', '2024-01-16', 'waiting_approval'),
		       ($2, $3, $4, '2024-01-15', '2024-01-15', 'approved')`,
		uuid.NewString(), uuid.NewString(), f.carol, f.leaveType)

	return f
}

func TestAttendanceRepository_ListByDate(t *testing.T) {
	setup := NewTestDatabase(t)
	f := seed(t, setup.DB)
	repo := postgresql.NewAttendanceRepository(setup.DB)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	punches, err := repo.ListByDate(context.Background(), f.companyID, date)
	require.NoError(t, err)
	require.Len(t, punches, 2)

	// ordered by clock in
	assert.Equal(t, 9, punches[0].ClockIn.UTC().Hour())
	require.NotNil(t, punches[0].EmployeeName)
	assert.Equal(t, "Alice Smith", *punches[0].EmployeeName)
	require.NotNil(t, punches[0].EmployeePosition)
	assert.Equal(t, "Engineer", *punches[0].EmployeePosition)

	rows := timesheet.ProcessAttendanceData(attendance.ToRawPunches(punches, time.UTC), false)
	require.Len(t, rows, 1)
	assert.Equal(t, 450.0, rows[0].TotalWorkMinutes)

	other, err := repo.ListByDate(context.Background(), uuid.NewString(), date)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAttendanceRepository_ListByEmployee(t *testing.T) {
	setup := NewTestDatabase(t)
	f := seed(t, setup.DB)
	repo := postgresql.NewAttendanceRepository(setup.DB)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	punches, err := repo.ListByEmployee(context.Background(), f.companyID, f.alice, start, end)
	require.NoError(t, err)
	assert.Len(t, punches, 2)

	punches, err = repo.ListByEmployee(context.Background(), f.companyID, f.bob, start, end)
	require.NoError(t, err)
	assert.Empty(t, punches)
}

func TestEmployeeRepository_ListAbsentOnDate(t *testing.T) {
	setup := NewTestDatabase(t)
	f := seed(t, setup.DB)
	repo := postgresql.NewEmployeeRepository(setup.DB)

	absent, err := repo.ListAbsentOnDate(context.Background(), f.companyID, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, absent, 2)
	assert.Equal(t, "Bob Jones", absent[0].FullName)
	assert.Equal(t, "Carol White", absent[1].FullName)
	assert.Nil(t, absent[1].PositionName)

	// nobody was hired yet
	absent, err = repo.ListAbsentOnDate(context.Background(), f.companyID, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, absent)
}

func TestLeaveRequestRepository_ListCovering(t *testing.T) {
	setup := NewTestDatabase(t)
	f := seed(t, setup.DB)
	repo := postgresql.NewLeaveRequestRepository(setup.DB)

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	requests, err := repo.ListCovering(context.Background(), f.companyID, day, day)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, leave.LeaveRequestStatusApproved, requests[0].Status)

	lookup := leave.NewLeaveLookup(requests)
	record := lookup(f.carol)
	require.NotNil(t, record)
	assert.Equal(t, "Annual Leave", record.LeaveType)
	assert.Equal(t, "approved", record.Status)
	assert.Equal(t, "2024-01-15", record.FromDate)
}

func TestSnapshotReader_SharesTransaction(t *testing.T) {
	setup := NewTestDatabase(t)
	f := seed(t, setup.DB)
	reader := postgresql.NewSnapshotReader(setup.DB)
	repo := postgresql.NewAttendanceRepository(setup.DB)

	var count int
	err := reader.ReadSnapshot(context.Background(), func(ctx context.Context) error {
		punches, err := repo.ListByDate(ctx, f.companyID, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
		count = len(punches)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	err = reader.ReadSnapshot(context.Background(), func(ctx context.Context) error {
		_, err := postgresql.GetQuerier(ctx, setup.DB).Exec(ctx, "DELETE FROM attendances")
		return err
	})
	assert.Error(t, err, "snapshot transactions are read-only")
}
