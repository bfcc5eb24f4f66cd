package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	// ListAbsentOnDate returns active employees hired on or before date with no punch on it
	ListAbsentOnDate(ctx context.Context, companyID string, date time.Time) ([]Employee, error)
}
