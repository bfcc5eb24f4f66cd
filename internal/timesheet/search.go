package timesheet

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

func fold(s string) string {
	return cases.Fold().String(s)
}

// FilterAttendanceBySearch keeps rows whose user name, employee ID or
// designation contains term, ignoring case. An empty term returns rows as is.
func FilterAttendanceBySearch(rows []AggregatedRow, term string) []AggregatedRow {
	if term == "" {
		return rows
	}

	needle := fold(term)
	out := make([]AggregatedRow, 0, len(rows))
	for _, row := range rows {
		if row.User == nil {
			continue
		}
		if strings.Contains(fold(row.User.Name), needle) ||
			strings.Contains(fold(row.User.EmployeeID), needle) ||
			strings.Contains(fold(row.User.DesignationName), needle) {
			out = append(out, row)
		}
	}
	return out
}

// SortAttendanceData returns a sorted copy of rows. The employee field sorts
// by user name, fields naming a time compare as clock times on the same day,
// fields naming a date compare as calendar dates. A missing value always goes
// after a present one, whatever the direction.
func SortAttendanceData(rows []AggregatedRow, field, direction string) []AggregatedRow {
	sorted := make([]AggregatedRow, len(rows))
	copy(sorted, rows)

	desc := strings.EqualFold(direction, SortDesc)
	compare := comparatorFor(field)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, aOK := fieldValue(sorted[i], field)
		b, bOK := fieldValue(sorted[j], field)
		switch {
		case !aOK && !bOK:
			return false
		case !aOK:
			return false
		case !bOK:
			return true
		}
		c := compare(a, b)
		if desc {
			return c > 0
		}
		return c < 0
	})
	return sorted
}

type sortValue struct {
	text   string
	number float64
}

func fieldValue(row AggregatedRow, field string) (sortValue, bool) {
	switch field {
	case ColumnEmployee:
		if row.User == nil || row.User.Name == "" {
			return sortValue{}, false
		}
		return sortValue{text: row.User.Name}, true
	case ColumnDate:
		return textValue(row.Date)
	case "punchin_time", ColumnClockIn:
		return ptrValue(row.PunchInTime)
	case "punchout_time", ColumnClockOut:
		return ptrValue(row.PunchOutTime)
	case "total_work_minutes", ColumnWorkHours:
		return sortValue{number: row.TotalWorkMinutes}, true
	case "punch_count":
		return sortValue{number: float64(row.PunchCount)}, true
	case "complete_punches":
		return sortValue{number: float64(row.CompletePunches)}, true
	case "user_id":
		return textValue(row.UserID.String())
	case ColumnStatus:
		return sortValue{text: GetWorkStatus(row).Status}, true
	}
	return sortValue{}, false
}

func textValue(s string) (sortValue, bool) {
	if s == "" {
		return sortValue{}, false
	}
	return sortValue{text: s}, true
}

func ptrValue(s *string) (sortValue, bool) {
	if !present(s) {
		return sortValue{}, false
	}
	return sortValue{text: *s}, true
}

func comparatorFor(field string) func(a, b sortValue) int {
	switch {
	case field == ColumnEmployee:
		return func(a, b sortValue) int {
			return strings.Compare(fold(a.text), fold(b.text))
		}
	case numericFields[field]:
		return compareNumbers
	case strings.Contains(field, "time"):
		return func(a, b sortValue) int {
			return compareClocks(a.text, b.text)
		}
	case strings.Contains(field, "date"):
		return func(a, b sortValue) int {
			return compareDates(a.text, b.text)
		}
	}
	return func(a, b sortValue) int {
		return strings.Compare(a.text, b.text)
	}
}

var numericFields = map[string]bool{
	"total_work_minutes": true,
	ColumnWorkHours:      true,
	"punch_count":        true,
	"complete_punches":   true,
}

func compareNumbers(a, b sortValue) int {
	switch {
	case a.number < b.number:
		return -1
	case a.number > b.number:
		return 1
	}
	return 0
}

func compareClocks(a, b string) int {
	ta, okA := ParseClock(a)
	tb, okB := ParseClock(b)
	if !okA || !okB {
		return strings.Compare(a, b)
	}
	switch {
	case ta < tb:
		return -1
	case ta > tb:
		return 1
	}
	return 0
}

func compareDates(a, b string) int {
	ta, okA := parseDate(a)
	tb, okB := parseDate(b)
	if !okA || !okB {
		return strings.Compare(a, b)
	}
	return ta.Compare(tb)
}
