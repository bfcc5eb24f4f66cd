package timesheet

import (
	"fmt"
	"strings"
)

// LeaveRecord is the leave covering an absent user's period.
type LeaveRecord struct {
	LeaveType string `json:"leave_type"`
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
	Status    string `json:"status"`
}

// LeaveLookup returns the leave of a user, or nil when there is none.
type LeaveLookup func(userID string) *LeaveRecord

var csvHeader = []string{
	"No.",
	"Date",
	"Employee Name",
	"Employee ID",
	"Designation",
	"Phone",
	"Clock In",
	"Clock Out",
	"Work Hours",
	"Punches",
	"Complete Punches",
	"Status",
	"Remarks",
}

// ExportAttendanceToCSV renders present rows followed by absent users as CSV.
// Every field is quoted. Absent users are numbered from the running record
// count, which continues the present numbering.
func ExportAttendanceToCSV(rows []AggregatedRow, absent []User, lookup LeaveLookup, selectedDate string, employeeView bool) string {
	records := [][]string{csvHeader}

	for i, row := range rows {
		date := selectedDate
		if employeeView {
			date = row.Date
		}
		status := GetWorkStatus(row)

		var u User
		if row.User != nil {
			u = *row.User
		}
		records = append(records, []string{
			itoa(i + 1),
			orNA(date),
			orNA(u.Name),
			orNA(u.EmployeeID),
			orNA(u.DesignationName),
			orNA(u.Phone),
			formatTimePtr(row.PunchInTime),
			formatTimePtr(row.PunchOutTime),
			FormatWorkDuration(row.TotalWorkMinutes),
			itoa(row.PunchCount),
			itoa(row.CompletePunches),
			status.Status,
			status.Description,
		})
	}

	for _, u := range absent {
		status, remarks := "Absent", "Absent without leave"
		if lookup != nil {
			if leave := lookup(u.ID.String()); leave != nil {
				status = "On Leave"
				remarks = fmt.Sprintf("%s (%s to %s) - %s", leave.LeaveType, leave.FromDate, leave.ToDate, leave.Status)
			}
		}

		records = append(records, []string{
			itoa(len(records)),
			orNA(selectedDate),
			orNA(u.Name),
			orNA(u.EmployeeID),
			orNA(u.DesignationName),
			orNA(u.Phone),
			"N/A",
			"N/A",
			FormatWorkDuration(0),
			"0",
			"0",
			status,
			remarks,
		})
	}

	lines := make([]string, len(records))
	for i, record := range records {
		fields := make([]string, len(record))
		for j, field := range record {
			fields[j] = quoteField(field)
		}
		lines[i] = strings.Join(fields, ",")
	}
	return strings.Join(lines, "\n")
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
