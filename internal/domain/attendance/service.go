package attendance

import (
	"context"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/timesheet"
)

// TimesheetService builds aggregated timesheets on top of stored punches
type TimesheetService interface {
	// GetDailyTimesheet aggregates every employee's punches for one date (manager view)
	GetDailyTimesheet(ctx context.Context, filter DailyTimesheetFilter) (TimesheetResponse, error)

	// GetMyTimesheet aggregates the authenticated employee's punches per date for a month
	GetMyTimesheet(ctx context.Context, filter MyTimesheetFilter) (TimesheetResponse, error)

	// ExportDailyTimesheet renders the daily timesheet, absentees included, as CSV
	ExportDailyTimesheet(ctx context.Context, filter DailyTimesheetFilter) (ExportResult, error)

	// ExportMyTimesheet renders the authenticated employee's month as CSV
	ExportMyTimesheet(ctx context.Context, filter MyTimesheetFilter) (ExportResult, error)

	// GetColumns returns the table columns for a view and screen size
	GetColumns(ctx context.Context, filter ColumnsFilter) ([]timesheet.Column, error)
}
