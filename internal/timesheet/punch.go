package timesheet

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ID is an opaque identifier. Upstream payloads carry either JSON strings or
// numbers, both decode into the same textual form.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// User is the employee identity attached to a punch. It is owned by the user
// directory, the aggregator only reads it.
type User struct {
	ID              ID     `json:"id"`
	Name            string `json:"name"`
	EmployeeID      string `json:"employee_id"`
	DesignationName string `json:"designation_name"`
	Phone           string `json:"phone"`
}

// RawPunch is one clock event as delivered by the attendance API.
type RawPunch struct {
	ID           ID      `json:"id"`
	User         *User   `json:"user"`
	Date         string  `json:"date"`
	PunchInTime  *string `json:"punchin_time"`
	PunchOutTime *string `json:"punchout_time"`
}

// PunchDetail is a punch as it appears inside an aggregated row.
type PunchDetail struct {
	ID       ID      `json:"id"`
	Date     string  `json:"date"`
	PunchIn  *string `json:"punch_in"`
	PunchOut *string `json:"punch_out"`
}

// AggregatedRow summarises one group of punches: a user in the daily view or
// a calendar date in the employee view.
type AggregatedRow struct {
	UserID             ID            `json:"user_id"`
	User               *User         `json:"user"`
	Date               string        `json:"date"`
	Punches            []PunchDetail `json:"punches"`
	PunchInTime        *string       `json:"punchin_time"`
	PunchOutTime       *string       `json:"punchout_time"`
	TotalWorkMinutes   float64       `json:"total_work_minutes"`
	PunchCount         int           `json:"punch_count"`
	CompletePunches    int           `json:"complete_punches"`
	HasIncompletePunch bool          `json:"has_incomplete_punch"`
}

// DecodePunches decodes a JSON document into punches. Anything other than a
// JSON array yields an empty slice; elements that do not decode are skipped.
func DecodePunches(data []byte) []RawPunch {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return []RawPunch{}
	}

	punches := make([]RawPunch, 0, len(items))
	for _, item := range items {
		var p RawPunch
		if err := json.Unmarshal(item, &p); err != nil {
			continue
		}
		punches = append(punches, p)
	}
	return punches
}

// DecodeUsers decodes a JSON array of users with the same leniency as DecodePunches.
func DecodeUsers(data []byte) []User {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return []User{}
	}

	users := make([]User, 0, len(items))
	for _, item := range items {
		var u User
		if err := json.Unmarshal(item, &u); err != nil {
			continue
		}
		users = append(users, u)
	}
	return users
}

func present(s *string) bool {
	return s != nil && *s != ""
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
