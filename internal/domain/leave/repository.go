package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	// ListCovering returns approved and pending requests overlapping [start, end],
	// approved first, with the leave type name joined in
	ListCovering(ctx context.Context, companyID string, start, end time.Time) ([]LeaveRequest, error)
}
