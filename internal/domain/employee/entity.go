package employee

import (
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/timesheet"
)

type Employee struct {
	ID               string
	UserID           *string
	CompanyID        string
	EmployeeCode     string
	FullName         string
	PhoneNumber      string
	EmploymentStatus EmploymentStatus
	HireDate         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time

	// DTO
	PositionName *string
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// ToTimesheetUser maps the employee onto the identity a timesheet row carries.
func (e Employee) ToTimesheetUser() timesheet.User {
	u := timesheet.User{
		ID:         timesheet.ID(e.ID),
		Name:       e.FullName,
		EmployeeID: e.EmployeeCode,
		Phone:      e.PhoneNumber,
	}
	if e.PositionName != nil {
		u.DesignationName = *e.PositionName
	}
	return u
}

func ToTimesheetUsers(employees []Employee) []timesheet.User {
	users := make([]timesheet.User, 0, len(employees))
	for _, e := range employees {
		users = append(users, e.ToTimesheetUser())
	}
	return users
}
