package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// ListCovering implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListCovering(ctx context.Context, companyID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date,
			lr.status, lr.created_at, lr.updated_at,
			lt.name AS leave_type_name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		LEFT JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE e.company_id = $1
		  AND lr.status IN ($2, $3)
		  AND lr.start_date <= $5
		  AND lr.end_date >= $4
		ORDER BY
			CASE lr.status WHEN $2 THEN 0 ELSE 1 END,
			lr.start_date ASC
	`

	rows, err := q.Query(ctx, query,
		companyID,
		leave.LeaveRequestStatusApproved,
		leave.LeaveRequestStatusWaitingApproval,
		start.Format("2006-01-02"),
		end.Format("2006-01-02"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query covering leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveTypeID, &req.StartDate, &req.EndDate,
			&req.Status, &req.CreatedAt, &req.UpdatedAt,
			&req.LeaveTypeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}
