package attendance

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyTimesheetFilter_Validate(t *testing.T) {
	f := DailyTimesheetFilter{Date: "2024-01-15", SortBy: "employee", SortOrder: "DESC"}
	require.NoError(t, f.Validate())
	assert.Equal(t, "desc", f.SortOrder)

	f = DailyTimesheetFilter{Date: "2024-01-15"}
	require.NoError(t, f.Validate())
	assert.Equal(t, "asc", f.SortOrder)

	f = DailyTimesheetFilter{SortOrder: "sideways"}
	err := f.Validate()
	require.Error(t, err)
	fields := err.(validator.ValidationErrors).ToMap()
	assert.Equal(t, "date is required", fields["date"])
	assert.Contains(t, fields["sort_order"], "asc, desc")
}

func TestMyTimesheetFilter_Validate(t *testing.T) {
	f := MyTimesheetFilter{}
	assert.NoError(t, f.Validate(), "month is optional")

	f = MyTimesheetFilter{Month: "2024-1"}
	assert.Error(t, f.Validate())
}

func TestColumnsFilter_Defaults(t *testing.T) {
	f := ColumnsFilter{}
	require.NoError(t, f.Validate())
	assert.Equal(t, ViewAdmin, f.View)
	assert.Equal(t, ScreenLarge, f.Screen)

	f = ColumnsFilter{View: "boss"}
	err := f.Validate()
	require.Error(t, err)
	assert.Equal(t, ErrInvalidView.Error(), err.(validator.ValidationErrors).ToMap()["view"])
}

func TestPunch_ToRawPunch(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	in := time.Date(2024, 1, 15, 2, 0, 0, 0, time.UTC)
	name := "Alice Smith"

	raw := Punch{
		ID:           "p-1",
		EmployeeID:   "e-1",
		Date:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		ClockIn:      &in,
		EmployeeName: &name,
	}.ToRawPunch(jakarta)

	assert.Equal(t, "2024-01-15", raw.Date)
	require.NotNil(t, raw.PunchInTime)
	assert.Equal(t, "09:00:00", *raw.PunchInTime)
	assert.Nil(t, raw.PunchOutTime)
	assert.Equal(t, "Alice Smith", raw.User.Name)
	assert.Equal(t, "", raw.User.Phone)
}

func TestNewTimesheetRows(t *testing.T) {
	assert.NotNil(t, NewTimesheetRows(nil))
}
