package leave

import (
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/timesheet"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusWaitingApproval LeaveRequestStatus = "waiting_approval"
	LeaveRequestStatusApproved        LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected        LeaveRequestStatus = "rejected"
	LeaveRequestStatusCancelled       LeaveRequestStatus = "cancelled"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string

	StartDate time.Time
	EndDate   time.Time

	Status LeaveRequestStatus

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	LeaveTypeName *string
}

func (r LeaveRequest) ToLeaveRecord() *timesheet.LeaveRecord {
	leaveType := "Leave"
	if r.LeaveTypeName != nil && *r.LeaveTypeName != "" {
		leaveType = *r.LeaveTypeName
	}
	return &timesheet.LeaveRecord{
		LeaveType: leaveType,
		FromDate:  r.StartDate.Format("2006-01-02"),
		ToDate:    r.EndDate.Format("2006-01-02"),
		Status:    string(r.Status),
	}
}

// NewLeaveLookup indexes requests by employee. When an employee has several,
// the first one wins, so callers should pass them ordered by preference.
func NewLeaveLookup(requests []LeaveRequest) timesheet.LeaveLookup {
	byEmployee := make(map[string]*timesheet.LeaveRecord, len(requests))
	for _, r := range requests {
		if _, exists := byEmployee[r.EmployeeID]; exists {
			continue
		}
		byEmployee[r.EmployeeID] = r.ToLeaveRecord()
	}
	return func(employeeID string) *timesheet.LeaveRecord {
		return byEmployee[employeeID]
	}
}
