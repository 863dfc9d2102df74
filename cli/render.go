package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"FitBuddyGo/models"
	"FitBuddyGo/utils"
)

var (
	checkedStyle = color.New(color.FgGreen, color.Bold)
	padStyle     = color.New(color.Faint)
)

// renderWeek 输出一行周视图，已打卡的日子高亮打勾
func renderWeek(w io.Writer, week []models.WeekCell) {
	labels := make([]string, 0, len(week))
	marks := make([]string, 0, len(week))
	for _, cell := range week {
		labels = append(labels, fmt.Sprintf("%4s", cell.Label))
		if cell.Checked {
			marks = append(marks, checkedStyle.Sprintf("%4s", "✔"))
		} else {
			marks = append(marks, padStyle.Sprintf("%4s", "·"))
		}
	}
	fmt.Fprintln(w, strings.Join(labels, ""))
	fmt.Fprintln(w, strings.Join(marks, ""))
}

// renderMonth 输出月视图网格，每行 7 格
func renderMonth(w io.Writer, year, month int, cells []models.MonthCell) {
	fmt.Fprintf(w, "%d-%02d\n", year, month)
	var header strings.Builder
	for _, label := range utils.WeekLabels() {
		header.WriteString(fmt.Sprintf("%4s", label))
	}
	fmt.Fprintln(w, padStyle.Sprint(header.String()))
	var line strings.Builder
	for i, cell := range cells {
		switch {
		case cell.Day == nil:
			line.WriteString("    ")
		case cell.Checked:
			line.WriteString(checkedStyle.Sprintf("%4d", *cell.Day))
		default:
			line.WriteString(fmt.Sprintf("%4d", *cell.Day))
		}
		if (i+1)%7 == 0 {
			fmt.Fprintln(w, line.String())
			line.Reset()
		}
	}
}

// renderStats 输出统计表格
func renderStats(w io.Writer, stats models.StreakStats, total int) {
	table := uitable.New()
	table.AddRow("Total Check-ins", total)
	table.AddRow("Current Streak", stats.CurrentStreak)
	table.AddRow("Best Streak", stats.LongestStreak)
	fmt.Fprintln(w, table)
}

// renderProfile 输出资料表格，缺失的可选字段显示为 -
func renderProfile(w io.Writer, profile models.PersonalizationProfile) {
	opt := func(v string) string {
		if v == "" {
			return "-"
		}
		return v
	}
	age := "-"
	if profile.Age != nil {
		age = fmt.Sprintf("%d", *profile.Age)
	}
	tw := "-"
	if profile.TargetWeight != nil {
		tw = fmt.Sprintf("%g", *profile.TargetWeight)
	}

	table := uitable.New()
	table.AddRow("Username", opt(profile.Username))
	table.AddRow("Age", age)
	table.AddRow("Gender", opt(profile.Gender))
	table.AddRow("Primary Goal", string(profile.PrimaryGoal))
	table.AddRow("Target Weight", tw)
	fmt.Fprintln(w, table)
}
