package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// ListAbsentOnDate implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListAbsentOnDate(ctx context.Context, companyID string, date time.Time) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.user_id, e.company_id, e.employee_code, e.full_name, e.phone_number,
			e.employment_status, e.hire_date, e.created_at, e.updated_at, e.deleted_at,
			p.name AS position_name
		FROM employees e
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE e.company_id = $1
		  AND e.employment_status = $2
		  AND e.deleted_at IS NULL
		  AND e.hire_date <= $3
		  AND NOT EXISTS (
			SELECT 1
			FROM attendances a
			WHERE a.employee_id = e.id
			  AND a.company_id = e.company_id
			  AND a.date = $3
			  AND a.deleted_at IS NULL
		  )
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, companyID, employee.EmploymentStatusActive, date.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query absent employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.UserID, &emp.CompanyID, &emp.EmployeeCode, &emp.FullName, &emp.PhoneNumber,
			&emp.EmploymentStatus, &emp.HireDate, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
			&emp.PositionName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}
