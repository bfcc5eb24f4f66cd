package timesheet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/timesheet"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

// Config holds timesheet service configuration
type Config struct {
	Location *time.Location // default: UTC
	Metrics  *Metrics       // optional
	Now      func() time.Time
}

type TimesheetServiceImpl struct {
	snapshot database.SnapshotReader
	attendance.AttendanceRepository
	employee.EmployeeRepository
	leave.LeaveRequestRepository

	loc     *time.Location
	metrics *Metrics
	now     func() time.Time
}

func NewTimesheetService(
	snapshot database.SnapshotReader,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
	cfg Config,
) attendance.TimesheetService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &TimesheetServiceImpl{
		snapshot:               snapshot,
		AttendanceRepository:   attendanceRepo,
		EmployeeRepository:     employeeRepo,
		LeaveRequestRepository: leaveRepo,
		loc:                    cfg.Location,
		metrics:                cfg.Metrics,
		now:                    cfg.Now,
	}
}

type identity struct {
	companyID  string
	employeeID string
	role       user.Role
}

func identityFromContext(ctx context.Context) (identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return identity{}, user.ErrCompanyIDRequired
	}

	id := identity{companyID: companyID}
	id.employeeID, _ = claims["employee_id"].(string)
	if role, ok := claims["role"].(string); ok {
		id.role = user.Role(role)
	}
	return id, nil
}

// dailySnapshot is everything one date of the company timesheet is built from
type dailySnapshot struct {
	date    time.Time
	rows    []timesheet.AggregatedRow
	absent  []timesheet.User
	onLeave timesheet.LeaveLookup
}

func (s *TimesheetServiceImpl) loadDaily(ctx context.Context, filter attendance.DailyTimesheetFilter, withLeave bool) (dailySnapshot, error) {
	if err := filter.Validate(); err != nil {
		return dailySnapshot{}, err
	}

	id, err := identityFromContext(ctx)
	if err != nil {
		return dailySnapshot{}, err
	}
	if !id.role.CanViewCompanyTimesheet() {
		return dailySnapshot{}, user.ErrManagerAccessRequired
	}

	date, _ := time.ParseInLocation("2006-01-02", filter.Date, s.loc)

	var (
		punches   []attendance.Punch
		employees []employee.Employee
		requests  []leave.LeaveRequest
	)
	err = s.snapshot.ReadSnapshot(ctx, func(ctx context.Context) error {
		var err error
		punches, err = s.AttendanceRepository.ListByDate(ctx, id.companyID, date)
		if err != nil {
			return fmt.Errorf("failed to list attendances: %w", err)
		}
		employees, err = s.EmployeeRepository.ListAbsentOnDate(ctx, id.companyID, date)
		if err != nil {
			return fmt.Errorf("failed to list absent employees: %w", err)
		}
		if withLeave && len(employees) > 0 {
			requests, err = s.LeaveRequestRepository.ListCovering(ctx, id.companyID, date, date)
			if err != nil {
				return fmt.Errorf("failed to list leave requests: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return dailySnapshot{}, err
	}

	rows := timesheet.ProcessAttendanceData(attendance.ToRawPunches(punches, s.loc), false)
	s.metrics.observeRows(attendance.ViewAdmin, len(rows))

	return dailySnapshot{
		date:    date,
		rows:    rows,
		absent:  employee.ToTimesheetUsers(employees),
		onLeave: leave.NewLeaveLookup(requests),
	}, nil
}

// GetDailyTimesheet implements attendance.TimesheetService.
func (s *TimesheetServiceImpl) GetDailyTimesheet(ctx context.Context, filter attendance.DailyTimesheetFilter) (attendance.TimesheetResponse, error) {
	defer s.metrics.observeDuration("daily", time.Now())

	snap, err := s.loadDaily(ctx, filter, false)
	if err != nil {
		return attendance.TimesheetResponse{}, err
	}

	// Stats describe the whole day, independent of the search box
	stats := timesheet.CalculateAttendanceStats(snap.rows, snap.absent)
	rows := refine(snap.rows, filter.Search, filter.SortBy, filter.SortOrder)

	return attendance.TimesheetResponse{
		View:    attendance.ViewAdmin,
		Period:  filter.Date,
		Rows:    attendance.NewTimesheetRows(rows),
		Absent:  snap.absent,
		Stats:   stats,
		Columns: timesheet.GetTimeSheetColumns(false),
	}, nil
}

// ExportDailyTimesheet implements attendance.TimesheetService.
func (s *TimesheetServiceImpl) ExportDailyTimesheet(ctx context.Context, filter attendance.DailyTimesheetFilter) (attendance.ExportResult, error) {
	defer s.metrics.observeDuration("daily_export", time.Now())

	snap, err := s.loadDaily(ctx, filter, true)
	if err != nil {
		return attendance.ExportResult{}, err
	}

	rows := refine(snap.rows, filter.Search, filter.SortBy, filter.SortOrder)
	csv := timesheet.ExportAttendanceToCSV(rows, snap.absent, snap.onLeave, filter.Date, false)
	s.metrics.observeExport(attendance.ViewAdmin)

	result := attendance.ExportResult{
		ExportID: uuid.NewString(),
		FileName: fmt.Sprintf("timesheet-%s.csv", filter.Date),
		Content:  []byte(csv),
		Rows:     len(rows) + len(snap.absent),
	}
	slog.Info("timesheet exported", "export_id", result.ExportID, "view", attendance.ViewAdmin, "period", filter.Date, "rows", result.Rows)
	return result, nil
}

func (s *TimesheetServiceImpl) loadMonth(ctx context.Context, filter *attendance.MyTimesheetFilter) ([]timesheet.AggregatedRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	id, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if id.employeeID == "" {
		return nil, attendance.ErrEmployeeProfileRequired
	}

	if filter.Month == "" {
		filter.Month = s.now().In(s.loc).Format("2006-01")
	}
	start, _ := time.ParseInLocation("2006-01", filter.Month, s.loc)
	end := start.AddDate(0, 1, -1)

	var punches []attendance.Punch
	err = s.snapshot.ReadSnapshot(ctx, func(ctx context.Context) error {
		var err error
		punches, err = s.AttendanceRepository.ListByEmployee(ctx, id.companyID, id.employeeID, start, end)
		if err != nil {
			return fmt.Errorf("failed to list attendances: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rows := timesheet.ProcessAttendanceData(attendance.ToRawPunches(punches, s.loc), true)
	s.metrics.observeRows(attendance.ViewEmployee, len(rows))
	return rows, nil
}

// GetMyTimesheet implements attendance.TimesheetService.
func (s *TimesheetServiceImpl) GetMyTimesheet(ctx context.Context, filter attendance.MyTimesheetFilter) (attendance.TimesheetResponse, error) {
	defer s.metrics.observeDuration("my", time.Now())

	rows, err := s.loadMonth(ctx, &filter)
	if err != nil {
		return attendance.TimesheetResponse{}, err
	}

	rows = refine(rows, "", filter.SortBy, filter.SortOrder)

	return attendance.TimesheetResponse{
		View:    attendance.ViewEmployee,
		Period:  filter.Month,
		Rows:    attendance.NewTimesheetRows(rows),
		Absent:  []timesheet.User{},
		Stats:   timesheet.CalculateAttendanceStats(rows, nil),
		Columns: timesheet.GetTimeSheetColumns(true),
	}, nil
}

// ExportMyTimesheet implements attendance.TimesheetService.
func (s *TimesheetServiceImpl) ExportMyTimesheet(ctx context.Context, filter attendance.MyTimesheetFilter) (attendance.ExportResult, error) {
	defer s.metrics.observeDuration("my_export", time.Now())

	rows, err := s.loadMonth(ctx, &filter)
	if err != nil {
		return attendance.ExportResult{}, err
	}

	rows = refine(rows, "", filter.SortBy, filter.SortOrder)
	csv := timesheet.ExportAttendanceToCSV(rows, nil, nil, filter.Month, true)
	s.metrics.observeExport(attendance.ViewEmployee)

	result := attendance.ExportResult{
		ExportID: uuid.NewString(),
		FileName: fmt.Sprintf("timesheet-%s.csv", filter.Month),
		Content:  []byte(csv),
		Rows:     len(rows),
	}
	slog.Info("timesheet exported", "export_id", result.ExportID, "view", attendance.ViewEmployee, "period", filter.Month, "rows", result.Rows)
	return result, nil
}

// GetColumns implements attendance.TimesheetService.
func (s *TimesheetServiceImpl) GetColumns(ctx context.Context, filter attendance.ColumnsFilter) ([]timesheet.Column, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	large := filter.Screen == attendance.ScreenLarge
	medium := filter.Screen == attendance.ScreenMedium
	return timesheet.GetResponsiveColumns(large, medium, filter.View == attendance.ViewEmployee), nil
}

func refine(rows []timesheet.AggregatedRow, search, sortBy, sortOrder string) []timesheet.AggregatedRow {
	rows = timesheet.FilterAttendanceBySearch(rows, search)
	if sortBy != "" {
		rows = timesheet.SortAttendanceData(rows, sortBy, sortOrder)
	}
	return rows
}
