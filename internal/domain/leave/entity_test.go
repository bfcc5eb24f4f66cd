package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestNewLeaveLookup_FirstRequestWins(t *testing.T) {
	annual := "Annual Leave"
	lookup := NewLeaveLookup([]LeaveRequest{
		{EmployeeID: "e-1", StartDate: day(15), EndDate: day(15), Status: LeaveRequestStatusApproved, LeaveTypeName: &annual},
		{EmployeeID: "e-1", StartDate: day(14), EndDate: day(16), Status: LeaveRequestStatusWaitingApproval},
		{EmployeeID: "e-2", StartDate: day(15), EndDate: day(16), Status: LeaveRequestStatusWaitingApproval},
	})

	first := lookup("e-1")
	require.NotNil(t, first)
	assert.Equal(t, "Annual Leave", first.LeaveType)
	assert.Equal(t, "approved", first.Status)

	second := lookup("e-2")
	require.NotNil(t, second)
	assert.Equal(t, "Leave", second.LeaveType)
	assert.Equal(t, "2024-01-16", second.ToDate)

	assert.Nil(t, lookup("e-3"))
}
