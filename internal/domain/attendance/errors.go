package attendance

import "errors"

// Timesheet domain errors
var (
	ErrEmployeeProfileRequired = errors.New("an employee profile is required to view your timesheet")
	ErrInvalidView             = errors.New("view must be one of: admin, employee")
)
