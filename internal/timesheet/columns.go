package timesheet

// Column describes one table column of the timesheet.
type Column struct {
	Name string `json:"name"`
	UID  string `json:"uid"`
	Icon string `json:"icon"`
}

const (
	ColumnEmployee     = "employee"
	ColumnDate         = "date"
	ColumnClockIn      = "clockin_time"
	ColumnClockOut     = "clockout_time"
	ColumnWorkHours    = "production_time"
	ColumnPunchDetails = "punch_details"
	ColumnStatus       = "status"
)

// GetTimeSheetColumns returns the full column set. The employee view shows a
// Date column where the daily view shows the Employee.
func GetTimeSheetColumns(employeeView bool) []Column {
	identity := Column{Name: "Employee", UID: ColumnEmployee, Icon: "user"}
	if employeeView {
		identity = Column{Name: "Date", UID: ColumnDate, Icon: "calendar"}
	}

	return []Column{
		identity,
		{Name: "Clock In", UID: ColumnClockIn, Icon: "clock"},
		{Name: "Clock Out", UID: ColumnClockOut, Icon: "clock"},
		{Name: "Work Hours", UID: ColumnWorkHours, Icon: "chart-bar"},
		{Name: "Punch Details", UID: ColumnPunchDetails, Icon: "list-bullet"},
		{Name: "Status", UID: ColumnStatus, Icon: "check-circle"},
	}
}

// GetResponsiveColumns narrows the column set by screen size: everything on
// large screens, no punch details on medium, three essentials otherwise.
func GetResponsiveColumns(large, medium, employeeView bool) []Column {
	columns := GetTimeSheetColumns(employeeView)

	switch {
	case large:
		return columns
	case medium:
		return keepColumns(columns, func(c Column) bool {
			return c.UID != ColumnPunchDetails
		})
	default:
		return keepColumns(columns, func(c Column) bool {
			switch c.UID {
			case ColumnEmployee, ColumnDate, ColumnClockIn, ColumnWorkHours:
				return true
			}
			return false
		})
	}
}

func keepColumns(columns []Column, keep func(Column) bool) []Column {
	out := make([]Column, 0, len(columns))
	for _, c := range columns {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
