package timesheet

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// referenceDate anchors bare clock strings when they have to be rendered or
// compared without a calendar date of their own.
var referenceDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

const dateLayout = "2006-01-02"

var clockLayouts = []string{"15:04:05", "15:04"}

// ParseClock parses HH:MM or HH:MM:SS into an offset from midnight.
func ParseClock(s string) (time.Duration, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, true
		}
	}
	return 0, false
}

// datePortion returns the YYYY-MM-DD prefix of an ISO date or date-time.
func datePortion(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= len(dateLayout) {
		return s[:len(dateLayout)]
	}
	return s
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, datePortion(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// punchTimestamp combines the punch's own date with a clock string.
func punchTimestamp(date string, clock *string) (time.Time, bool) {
	if !present(clock) {
		return time.Time{}, false
	}
	day, ok := parseDate(date)
	if !ok {
		return time.Time{}, false
	}
	offset, ok := ParseClock(*clock)
	if !ok {
		return time.Time{}, false
	}
	return day.Add(offset), true
}

// FormatTime renders a bare clock string in 12-hour form ("9:30 AM").
// Empty input renders as N/A; input that does not parse is echoed back.
func FormatTime(s string) string {
	if s == "" {
		return "N/A"
	}
	offset, ok := ParseClock(s)
	if !ok {
		return s
	}
	return referenceDate.Add(offset).Format("3:04 PM")
}

func formatTimePtr(s *string) string {
	if s == nil {
		return FormatTime("")
	}
	return FormatTime(*s)
}

// FormatWorkDuration renders minutes as "{H}h {M}m".
func FormatWorkDuration(minutes float64) string {
	if minutes == 0 || math.IsNaN(minutes) {
		return "0h 0m"
	}
	hours := math.Floor(minutes / 60)
	mins := math.Floor(math.Mod(minutes, 60))
	return fmt.Sprintf("%dh %dm", int(hours), int(mins))
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
