package main

import (
	"fmt"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/timesheet"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var absentPath string

	cmd := &cobra.Command{
		Use:   "stats <punches.json>",
		Short: "Show attendance statistics for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := loadRows(cmd, args[0], false)
			if err != nil {
				return err
			}
			absent, err := loadAbsent(cmd, absentPath)
			if err != nil {
				return err
			}

			stats := timesheet.CalculateAttendanceStats(rows, absent)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Employees:       %d\n", stats.TotalEmployees)
			fmt.Fprintf(out, "Present:         %d\n", stats.Present)
			fmt.Fprintf(out, "Absent:          %d\n", stats.Absent)
			fmt.Fprintf(out, "Attendance rate: %d%%\n", stats.AttendanceRate)
			fmt.Fprintf(out, "Total hours:     %.2f\n", stats.TotalWorkHours)
			fmt.Fprintf(out, "Average hours:   %.2f\n", stats.AverageWorkHours)
			fmt.Fprintf(out, "Complete:        %d\n", stats.StatusBreakdown.Complete)
			fmt.Fprintf(out, "In progress:     %d\n", stats.StatusBreakdown.InProgress)
			fmt.Fprintf(out, "Incomplete:      %d\n", stats.StatusBreakdown.Incomplete)
			return nil
		},
	}

	cmd.Flags().StringVar(&absentPath, "absent", "", "JSON array of absent users")
	return cmd
}
