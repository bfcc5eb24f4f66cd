package attendance

import (
	"context"
	"time"
)

// AttendanceRepository reads punches for timesheets.
// All methods take companyID to prevent cross-company data access.
type AttendanceRepository interface {
	// ListByDate returns every punch of the company on one calendar date
	ListByDate(ctx context.Context, companyID string, date time.Time) ([]Punch, error)

	// ListByEmployee returns the punches of one employee between start and end, inclusive
	ListByEmployee(ctx context.Context, companyID string, employeeID string, start, end time.Time) ([]Punch, error)
}
