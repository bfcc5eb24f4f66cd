package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const punchColumns = `
	a.id, a.employee_id, a.company_id, a.date,
	a.clock_in, a.clock_out, a.status,
	a.created_at, a.updated_at,
	e.full_name AS employee_name,
	e.employee_code,
	p.name AS employee_position,
	e.phone_number
`

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, companyID string, date time.Time) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + punchColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE a.company_id = $1
		  AND a.date = $2
		  AND a.deleted_at IS NULL
		ORDER BY a.clock_in ASC NULLS LAST, a.created_at ASC
	`

	rows, err := q.Query(ctx, query, companyID, date.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances by date: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, companyID string, employeeID string, start, end time.Time) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + punchColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE a.company_id = $1
		  AND a.employee_id = $2
		  AND a.date >= $3
		  AND a.date <= $4
		  AND a.deleted_at IS NULL
		ORDER BY a.date DESC, a.clock_in ASC NULLS LAST
	`

	rows, err := q.Query(ctx, query, companyID, employeeID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances by employee: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

func scanPunches(rows pgx.Rows) ([]attendance.Punch, error) {
	var punches []attendance.Punch
	for rows.Next() {
		var p attendance.Punch
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.CompanyID, &p.Date,
			&p.ClockIn, &p.ClockOut, &p.Status,
			&p.CreatedAt, &p.UpdatedAt,
			&p.EmployeeName, &p.EmployeeCode, &p.EmployeePosition, &p.EmployeePhone,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		punches = append(punches, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return punches, nil
}
