package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/timesheet"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "timesheet",
		Short: "Aggregate attendance punches into timesheets",
		Long: `timesheet works on exported punch data without a database.

Input files are JSON arrays of punches:

  [{"id": 1, "user": {"id": 7, "name": "Alice"}, "date": "2024-01-15",
    "punchin_time": "09:00:00", "punchout_time": "17:30:00"}]

Use "-" as the file name to read from stdin.`,
		SilenceUsage: true,
	}

	root.AddCommand(newAggregateCmd(), newExportCmd(), newStatsCmd(), newTokenCmd())
	return root
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// loadRows aggregates the punches file named by path.
func loadRows(cmd *cobra.Command, path string, employeeView bool) ([]timesheet.AggregatedRow, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	return timesheet.ProcessAttendanceJSON(data, employeeView), nil
}

func loadAbsent(cmd *cobra.Command, path string) ([]timesheet.User, error) {
	if path == "" {
		return []timesheet.User{}, nil
	}
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	return timesheet.DecodeUsers(data), nil
}

type leaveEntry struct {
	UserID timesheet.ID `json:"user_id"`
	timesheet.LeaveRecord
}

func loadLeaves(cmd *cobra.Command, path string) (timesheet.LeaveLookup, error) {
	if path == "" {
		return nil, nil
	}
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}

	var entries []leaveEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode leaves: %w", err)
	}

	byUser := make(map[string]*timesheet.LeaveRecord, len(entries))
	for i := range entries {
		if _, ok := byUser[entries[i].UserID.String()]; !ok {
			byUser[entries[i].UserID.String()] = &entries[i].LeaveRecord
		}
	}
	return func(userID string) *timesheet.LeaveRecord {
		return byUser[userID]
	}, nil
}
