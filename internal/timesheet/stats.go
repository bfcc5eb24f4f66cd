package timesheet

import "math"

// StatusBreakdown tallies rows by work status. Partial rows count as incomplete.
type StatusBreakdown struct {
	Complete   int `json:"complete"`
	InProgress int `json:"in_progress"`
	Incomplete int `json:"incomplete"`
}

// AttendanceStats is the headline summary shown above a timesheet.
type AttendanceStats struct {
	TotalEmployees   int             `json:"total_employees"`
	Present          int             `json:"present"`
	Absent           int             `json:"absent"`
	AttendanceRate   int             `json:"attendance_rate"`
	TotalWorkHours   float64         `json:"total_work_hours"`
	AverageWorkHours float64         `json:"average_work_hours"`
	StatusBreakdown  StatusBreakdown `json:"status_breakdown"`
}

func CalculateAttendanceStats(rows []AggregatedRow, absent []User) AttendanceStats {
	stats := AttendanceStats{
		Present: len(rows),
		Absent:  len(absent),
	}
	stats.TotalEmployees = stats.Present + stats.Absent

	if stats.TotalEmployees > 0 {
		stats.AttendanceRate = int(math.Round(float64(stats.Present) / float64(stats.TotalEmployees) * 100))
	}

	var minutes float64
	for _, row := range rows {
		minutes += row.TotalWorkMinutes

		switch GetWorkStatus(row).Status {
		case StatusComplete:
			stats.StatusBreakdown.Complete++
		case StatusInProgress:
			stats.StatusBreakdown.InProgress++
		default:
			stats.StatusBreakdown.Incomplete++
		}
	}

	hours := minutes / 60
	stats.TotalWorkHours = round2(hours)
	if stats.Present > 0 {
		stats.AverageWorkHours = round2(hours / float64(stats.Present))
	}
	return stats
}
