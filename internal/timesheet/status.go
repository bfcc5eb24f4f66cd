package timesheet

const (
	StatusComplete   = "Complete"
	StatusInProgress = "In Progress"
	StatusPartial    = "Partial"
	StatusIncomplete = "Incomplete"
)

// WorkStatus is the classification of a row with its display color.
type WorkStatus struct {
	Status      string `json:"status"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var workStatuses = map[string]WorkStatus{
	StatusComplete:   {Status: StatusComplete, Color: "success", Description: "All punches completed"},
	StatusInProgress: {Status: StatusInProgress, Color: "warning", Description: "Currently clocked in"},
	StatusPartial:    {Status: StatusPartial, Color: "primary", Description: "Some work time recorded"},
	StatusIncomplete: {Status: StatusIncomplete, Color: "danger", Description: "No work time recorded"},
}

// GetWorkStatus classifies a row. Checks run in order: Complete, In Progress,
// Partial, and Incomplete as the fallback.
func GetWorkStatus(row AggregatedRow) WorkStatus {
	switch {
	case row.PunchCount > 0 && row.CompletePunches == row.PunchCount && row.TotalWorkMinutes > 0:
		return workStatuses[StatusComplete]
	case row.HasIncompletePunch || (present(row.PunchInTime) && !present(row.PunchOutTime)):
		return workStatuses[StatusInProgress]
	case row.TotalWorkMinutes > 0:
		return workStatuses[StatusPartial]
	default:
		return workStatuses[StatusIncomplete]
	}
}

// PunchStatistics counts complete and incomplete punches of a row.
type PunchStatistics struct {
	Total         int  `json:"total"`
	Complete      int  `json:"complete"`
	Incomplete    int  `json:"incomplete"`
	HasIncomplete bool `json:"has_incomplete"`
	AllComplete   bool `json:"all_complete"`
}

func GetPunchStatistics(row AggregatedRow) PunchStatistics {
	incomplete := row.PunchCount - row.CompletePunches
	return PunchStatistics{
		Total:         row.PunchCount,
		Complete:      row.CompletePunches,
		Incomplete:    incomplete,
		HasIncomplete: incomplete > 0,
		AllComplete:   row.CompletePunches == row.PunchCount && row.PunchCount > 0,
	}
}
