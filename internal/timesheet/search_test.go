package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []AggregatedRow {
	return []AggregatedRow{
		{UserID: "u-2", User: bob(), Date: "2024-01-15", PunchInTime: ptr("10:00"), PunchOutTime: ptr("18:00"), TotalWorkMinutes: 480, PunchCount: 1, CompletePunches: 1},
		{UserID: "u-1", User: alice(), Date: "2024-01-14", PunchInTime: ptr("8:30"), PunchOutTime: nil, TotalWorkMinutes: 0, PunchCount: 1, HasIncompletePunch: true},
		{UserID: "u-3", User: &User{ID: "u-3", Name: "carol white", EmployeeID: "2023-0100", DesignationName: "HR Officer"}, Date: "2024-01-16", PunchInTime: ptr("09:15:00"), PunchOutTime: ptr("12:00"), TotalWorkMinutes: 165, PunchCount: 1, CompletePunches: 1},
	}
}

func userIDs(rows []AggregatedRow) []ID {
	ids := []ID{}
	for _, r := range rows {
		ids = append(ids, r.UserID)
	}
	return ids
}

func TestFilterAttendanceBySearch(t *testing.T) {
	rows := sampleRows()

	assert.Equal(t, []ID{"u-1"}, userIDs(FilterAttendanceBySearch(rows, "ALICE")))
	assert.Equal(t, []ID{"u-3"}, userIDs(FilterAttendanceBySearch(rows, "2023-01")))
	assert.Equal(t, []ID{"u-2"}, userIDs(FilterAttendanceBySearch(rows, "design")))
	assert.Equal(t, []ID{"u-2", "u-1", "u-3"}, userIDs(FilterAttendanceBySearch(rows, "e")))
	assert.Empty(t, FilterAttendanceBySearch(rows, "nobody"))
}

func TestFilterAttendanceBySearch_EmptyTermReturnsInput(t *testing.T) {
	rows := sampleRows()
	got := FilterAttendanceBySearch(rows, "")

	require.Len(t, got, len(rows))
	assert.Same(t, &rows[0], &got[0])
}

func TestFilterAttendanceBySearch_SkipsRowsWithoutUser(t *testing.T) {
	rows := []AggregatedRow{{Date: "2024-01-15"}}
	assert.Empty(t, FilterAttendanceBySearch(rows, "2024"))
}

func TestSortAttendanceData_ByEmployee(t *testing.T) {
	rows := sampleRows()

	assert.Equal(t, []ID{"u-1", "u-2", "u-3"}, userIDs(SortAttendanceData(rows, "employee", "asc")))
	assert.Equal(t, []ID{"u-3", "u-2", "u-1"}, userIDs(SortAttendanceData(rows, "employee", "desc")))
	assert.Equal(t, []ID{"u-2", "u-1", "u-3"}, userIDs(rows), "input must not be reordered")
}

func TestSortAttendanceData_ByClockTime(t *testing.T) {
	rows := sampleRows()

	// 8:30 sorts before 09:15:00 as a clock time even though it does not as text.
	assert.Equal(t, []ID{"u-1", "u-3", "u-2"}, userIDs(SortAttendanceData(rows, "punchin_time", "asc")))
	assert.Equal(t, []ID{"u-2", "u-3", "u-1"}, userIDs(SortAttendanceData(rows, "punchin_time", "desc")))
}

func TestSortAttendanceData_ByDate(t *testing.T) {
	rows := sampleRows()

	assert.Equal(t, []ID{"u-1", "u-2", "u-3"}, userIDs(SortAttendanceData(rows, "date", "asc")))
	assert.Equal(t, []ID{"u-3", "u-2", "u-1"}, userIDs(SortAttendanceData(rows, "date", "desc")))
}

func TestSortAttendanceData_ByNumber(t *testing.T) {
	rows := sampleRows()

	assert.Equal(t, []ID{"u-1", "u-3", "u-2"}, userIDs(SortAttendanceData(rows, "total_work_minutes", "asc")))
	assert.Equal(t, []ID{"u-2", "u-3", "u-1"}, userIDs(SortAttendanceData(rows, "production_time", "desc")))
}

func TestSortAttendanceData_MissingValuesLastInBothDirections(t *testing.T) {
	rows := sampleRows()

	asc := SortAttendanceData(rows, "punchout_time", "asc")
	assert.Equal(t, []ID{"u-3", "u-2", "u-1"}, userIDs(asc))

	desc := SortAttendanceData(rows, "punchout_time", "desc")
	assert.Equal(t, []ID{"u-2", "u-3", "u-1"}, userIDs(desc))
}

func TestSortAttendanceData_UnknownFieldKeepsOrder(t *testing.T) {
	rows := sampleRows()
	assert.Equal(t, userIDs(rows), userIDs(SortAttendanceData(rows, "shoe_size", "asc")))
}
