package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCommand(deps *Deps) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show streak statistics and the monthly calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := deps.requireUser()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			view, err := deps.Checkin.Refresh(ctx, user.ID)
			if err != nil {
				return err
			}
			total, err := deps.Checkin.TotalCheckins(ctx, user.ID)
			if err != nil {
				return err
			}

			year, month = defaultYearMonth(year, month)
			if month < 1 || month > 12 {
				return fmt.Errorf("invalid month: %d", month)
			}
			cells, err := deps.Checkin.RefreshMonth(ctx, user.ID, year, month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderStats(out, view.Stats, total)
			fmt.Fprintln(out)
			renderMonth(out, year, month, cells)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "calendar year (defaults to current)")
	cmd.Flags().IntVar(&month, "month", 0, "calendar month 1-12 (defaults to current)")
	return cmd
}

// defaultYearMonth 未指定的部分各自落到当前年月，只给月份不会覆盖年份
func defaultYearMonth(year, month int) (int, int) {
	nowYear, nowMonth := currentYearMonth()
	if year == 0 {
		year = nowYear
	}
	if month == 0 {
		month = nowMonth
	}
	return year, month
}
