package timesheet

import (
	"sort"
	"time"
)

// ProcessAttendanceData groups raw punches into one row per user (daily view)
// or one row per calendar date (employee view).
//
// Daily view rows keep the order in which each user was first seen; punches
// without a user are dropped. Employee view rows are returned most recent
// date first.
func ProcessAttendanceData(punches []RawPunch, employeeView bool) []AggregatedRow {
	if len(punches) == 0 {
		return []AggregatedRow{}
	}

	groups := make(map[string][]RawPunch)
	var order []string

	for _, p := range punches {
		var key string
		if employeeView {
			key = datePortion(p.Date)
		} else {
			if p.User == nil || p.User.ID == "" {
				continue
			}
			key = p.User.ID.String()
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], p)
	}

	rows := make([]AggregatedRow, 0, len(order))
	for _, key := range order {
		row := summarize(groups[key])
		if employeeView {
			row.Date = key
		}
		rows = append(rows, row)
	}

	if employeeView {
		sort.SliceStable(rows, func(i, j int) bool {
			return compareDates(rows[i].Date, rows[j].Date) > 0
		})
	}
	return rows
}

// ProcessAttendanceJSON is ProcessAttendanceData over an undecoded payload.
func ProcessAttendanceJSON(data []byte, employeeView bool) []AggregatedRow {
	return ProcessAttendanceData(DecodePunches(data), employeeView)
}

type timedPunch struct {
	RawPunch
	in    time.Time
	hasIn bool
}

// summarize reduces one group. An empty group yields a zeroed row.
func summarize(group []RawPunch) AggregatedRow {
	row := AggregatedRow{Punches: []PunchDetail{}}
	if len(group) == 0 {
		return row
	}

	first := group[0]
	row.User = first.User
	if first.User != nil {
		row.UserID = first.User.ID
	}
	row.Date = datePortion(first.Date)
	row.PunchCount = len(group)

	timed := make([]timedPunch, len(group))
	for i, p := range group {
		in, ok := punchTimestamp(p.Date, p.PunchInTime)
		timed[i] = timedPunch{RawPunch: p, in: in, hasIn: ok}
	}
	sort.SliceStable(timed, func(i, j int) bool {
		a, b := timed[i], timed[j]
		if a.hasIn != b.hasIn {
			return a.hasIn
		}
		return a.hasIn && a.in.Before(b.in)
	})

	for _, p := range timed {
		row.Punches = append(row.Punches, PunchDetail{
			ID:       p.ID,
			Date:     p.Date,
			PunchIn:  p.PunchInTime,
			PunchOut: p.PunchOutTime,
		})
	}
	row.PunchInTime = timed[0].PunchInTime
	row.PunchOutTime = latestPunchOut(timed)

	var total time.Duration
	for _, p := range group {
		switch {
		case present(p.PunchInTime) && present(p.PunchOutTime):
			in, okIn := punchTimestamp(p.Date, p.PunchInTime)
			out, okOut := punchTimestamp(p.Date, p.PunchOutTime)
			if !okIn || !okOut {
				continue
			}
			row.CompletePunches++
			if diff := out.Sub(in); diff > 0 {
				total += diff
			}
		case present(p.PunchInTime):
			row.HasIncompletePunch = true
		}
	}
	row.TotalWorkMinutes = round2(total.Minutes())

	return row
}

// latestPunchOut picks the punch-out with the latest timestamp. Values that do
// not parse only win when nothing else in the group parses.
func latestPunchOut(punches []timedPunch) *string {
	var (
		best     *string
		bestTime time.Time
		bestOK   bool
	)
	for _, p := range punches {
		if !present(p.PunchOutTime) {
			continue
		}
		out, ok := punchTimestamp(p.Date, p.PunchOutTime)
		switch {
		case best == nil:
			best, bestTime, bestOK = p.PunchOutTime, out, ok
		case ok && (!bestOK || out.After(bestTime)):
			best, bestTime, bestOK = p.PunchOutTime, out, true
		}
	}
	return best
}
