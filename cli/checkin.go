package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"FitBuddyGo/services"
)

func newCheckinCommand(deps *Deps) *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record today's check-in and show this week",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := deps.requireUser()
			if err != nil {
				return err
			}

			var view *services.DailyView
			if show {
				// 只看不打卡
				view, err = deps.Checkin.Refresh(cmd.Context(), user.ID)
			} else {
				view, err = deps.Checkin.CheckInToday(cmd.Context(), user.ID)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			lang := deps.Store.Settings().Language
			if view.TodayChecked {
				fmt.Fprintln(out, localized(lang, "Checked In ✔", "今日已打卡 ✔"))
			} else {
				fmt.Fprintln(out, localized(lang, "Not checked in yet", "今日尚未打卡"))
			}
			fmt.Fprintf(out, localized(lang, "Streak: %d days\n", "连续打卡：%d 天\n"), view.Stats.CurrentStreak)
			renderWeek(out, view.Week)
			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "show this week without checking in")
	return cmd
}

func currentYearMonth() (int, int) {
	now := time.Now()
	return now.Year(), int(now.Month())
}
