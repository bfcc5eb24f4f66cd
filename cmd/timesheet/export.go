package main

import (
	"fmt"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/timesheet"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		employeeView bool
		absentPath   string
		leavesPath   string
		period       string
	)

	cmd := &cobra.Command{
		Use:   "export <punches.json>",
		Short: "Print the timesheet as CSV",
		Long: `Render aggregated rows, followed by absent employees, as CSV.

The leaves file is a JSON array of
  {"user_id": 9, "leave_type": "Annual Leave", "from_date": "2024-01-15",
   "to_date": "2024-01-17", "status": "approved"}

Examples:
  timesheet export punches.json --date 2024-01-15 --absent absent.json --leaves leaves.json > day.csv
  timesheet export my-month.json --date 2024-01 --employee-view`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := loadRows(cmd, args[0], employeeView)
			if err != nil {
				return err
			}
			absent, err := loadAbsent(cmd, absentPath)
			if err != nil {
				return err
			}
			lookup, err := loadLeaves(cmd, leavesPath)
			if err != nil {
				return err
			}

			csv := timesheet.ExportAttendanceToCSV(rows, absent, lookup, period, employeeView)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), csv)
			return err
		},
	}

	cmd.Flags().BoolVar(&employeeView, "employee-view", false, "Group punches by date instead of by employee")
	cmd.Flags().StringVar(&absentPath, "absent", "", "JSON array of absent users")
	cmd.Flags().StringVar(&leavesPath, "leaves", "", "JSON array of leave records for absent users")
	cmd.Flags().StringVar(&period, "date", "", "Date printed on daily rows (YYYY-MM-DD)")
	return cmd
}
