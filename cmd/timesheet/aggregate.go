package main

import (
	"encoding/json"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/timesheet"
	"github.com/spf13/cobra"
)

func newAggregateCmd() *cobra.Command {
	var (
		employeeView bool
		search       string
		sortBy       string
		sortOrder    string
	)

	cmd := &cobra.Command{
		Use:   "aggregate <punches.json>",
		Short: "Print aggregated timesheet rows as JSON",
		Long: `Group punches into one row per employee (or per date with --employee-view)
and print the rows as JSON.

Examples:
  timesheet aggregate punches.json
  timesheet aggregate punches.json --search alice --sort-by production_time --sort-order desc
  timesheet aggregate my-month.json --employee-view`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := loadRows(cmd, args[0], employeeView)
			if err != nil {
				return err
			}

			rows = timesheet.FilterAttendanceBySearch(rows, search)
			if sortBy != "" {
				rows = timesheet.SortAttendanceData(rows, sortBy, sortOrder)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		},
	}

	cmd.Flags().BoolVar(&employeeView, "employee-view", false, "Group punches by date instead of by employee")
	cmd.Flags().StringVar(&search, "search", "", "Keep rows whose name, employee ID or designation matches")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "Field to sort by (employee, date, clockin_time, production_time, ...)")
	cmd.Flags().StringVar(&sortOrder, "sort-order", timesheet.SortAsc, "Sort direction: asc or desc")
	return cmd
}
