package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/timesheet"
)

// Punch is one stored clock event of an employee.
type Punch struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined from employees and positions
	EmployeeName     *string
	EmployeeCode     *string
	EmployeePosition *string
	EmployeePhone    *string
}

const clockLayout = "15:04:05"

// ToRawPunch renders the punch the way the timesheet aggregator consumes it:
// a calendar date plus bare clock strings in the given location.
func (p Punch) ToRawPunch(loc *time.Location) timesheet.RawPunch {
	if loc == nil {
		loc = time.UTC
	}

	raw := timesheet.RawPunch{
		ID:   timesheet.ID(p.ID),
		Date: p.Date.Format("2006-01-02"),
		User: &timesheet.User{
			ID:              timesheet.ID(p.EmployeeID),
			Name:            deref(p.EmployeeName),
			EmployeeID:      deref(p.EmployeeCode),
			DesignationName: deref(p.EmployeePosition),
			Phone:           deref(p.EmployeePhone),
		},
	}
	if p.ClockIn != nil {
		in := p.ClockIn.In(loc).Format(clockLayout)
		raw.PunchInTime = &in
	}
	if p.ClockOut != nil {
		out := p.ClockOut.In(loc).Format(clockLayout)
		raw.PunchOutTime = &out
	}
	return raw
}

// ToRawPunches converts a page of punches in one go.
func ToRawPunches(punches []Punch, loc *time.Location) []timesheet.RawPunch {
	raw := make([]timesheet.RawPunch, 0, len(punches))
	for _, p := range punches {
		raw = append(raw, p.ToRawPunch(loc))
	}
	return raw
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
