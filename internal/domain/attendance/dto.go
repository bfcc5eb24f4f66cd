package attendance

import (
	"strings"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/timesheet"
)

// ========================================
// TIMESHEET DTOs
// ========================================

var (
	validSortFields = []string{
		"employee", "date",
		"punchin_time", "punchout_time",
		"clockin_time", "clockout_time",
		"total_work_minutes", "production_time",
		"punch_count", "complete_punches", "status",
	}
	validSortOrders = []string{timesheet.SortAsc, timesheet.SortDesc}
)

type DailyTimesheetFilter struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Search string `json:"search,omitempty"`

	// Sorting
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *DailyTimesheetFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.Date) {
		errs.Add("date", "date is required")
	} else if _, valid := validator.IsValidDate(f.Date); !valid {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}

	validateSort(&errs, &f.SortBy, &f.SortOrder)

	return errs.Err()
}

type MyTimesheetFilter struct {
	Month string `json:"month"` // YYYY-MM

	// Sorting
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *MyTimesheetFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(f.Month) {
		if _, valid := validator.IsValidMonth(f.Month); !valid {
			errs.Add("month", "month must be in YYYY-MM format")
		}
	}

	validateSort(&errs, &f.SortBy, &f.SortOrder)

	return errs.Err()
}

const (
	ViewAdmin    = "admin"
	ViewEmployee = "employee"

	ScreenLarge  = "lg"
	ScreenMedium = "md"
	ScreenSmall  = "sm"
)

type ColumnsFilter struct {
	View   string `json:"view"`   // admin, employee
	Screen string `json:"screen"` // lg, md, sm
}

func (f *ColumnsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.View == "" {
		f.View = ViewAdmin
	}
	if _, ok := validator.OneOf(f.View, []string{ViewAdmin, ViewEmployee}); !ok {
		errs.Add("view", ErrInvalidView.Error())
	}

	if f.Screen == "" {
		f.Screen = ScreenLarge
	}
	if msg, ok := validator.OneOf(f.Screen, []string{ScreenLarge, ScreenMedium, ScreenSmall}); !ok {
		errs.Add("screen", "screen "+msg)
	}

	return errs.Err()
}

func validateSort(errs *validator.ValidationErrors, sortBy, sortOrder *string) {
	if *sortBy != "" {
		if msg, ok := validator.OneOf(*sortBy, validSortFields); !ok {
			errs.Add("sort_by", "sort_by "+msg)
		}
	}

	*sortOrder = strings.ToLower(*sortOrder)
	if *sortOrder == "" {
		*sortOrder = timesheet.SortAsc
	}
	if msg, ok := validator.OneOf(*sortOrder, validSortOrders); !ok {
		errs.Add("sort_order", "sort_order "+msg)
	}
}

// TimesheetRow is an aggregated row with its display fields resolved.
type TimesheetRow struct {
	timesheet.AggregatedRow
	ClockInDisplay  string                    `json:"clock_in_display"`
	ClockOutDisplay string                    `json:"clock_out_display"`
	WorkDuration    string                    `json:"work_duration"`
	WorkStatus      timesheet.WorkStatus      `json:"work_status"`
	PunchStatistics timesheet.PunchStatistics `json:"punch_statistics"`
}

func NewTimesheetRows(rows []timesheet.AggregatedRow) []TimesheetRow {
	out := make([]TimesheetRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, TimesheetRow{
			AggregatedRow:   row,
			ClockInDisplay:  timesheet.FormatTime(deref(row.PunchInTime)),
			ClockOutDisplay: timesheet.FormatTime(deref(row.PunchOutTime)),
			WorkDuration:    timesheet.FormatWorkDuration(row.TotalWorkMinutes),
			WorkStatus:      timesheet.GetWorkStatus(row),
			PunchStatistics: timesheet.GetPunchStatistics(row),
		})
	}
	return out
}

type TimesheetResponse struct {
	View    string                    `json:"view"`
	Period  string                    `json:"period"` // YYYY-MM-DD or YYYY-MM
	Rows    []TimesheetRow            `json:"rows"`
	Absent  []timesheet.User          `json:"absent"`
	Stats   timesheet.AttendanceStats `json:"stats"`
	Columns []timesheet.Column        `json:"columns"`
}

// ExportResult is a rendered CSV file ready to be served as a download.
type ExportResult struct {
	ExportID string
	FileName string
	Content  []byte
	Rows     int
}
