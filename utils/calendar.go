package utils

import (
	"time"

	"FitBuddyGo/models"
)

// LayoutISO 打卡日期的规范格式
const LayoutISO = "2006-01-02"

var weekLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekLabels 返回周视图表头 Sun..Sat
func WeekLabels() []string {
	return weekLabels[:]
}

// WeekStart 返回 anchor 当天或之前最近的周日（零点，保留时区）
func WeekStart(anchor time.Time) time.Time {
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// BuildWeek 以 anchor 所在周（周日到周六）构建周视图，
// checkedSet 的键为 YYYY-MM-DD
func BuildWeek(anchor time.Time, checkedSet map[string]bool) []models.WeekCell {
	sunday := WeekStart(anchor)
	cells := make([]models.WeekCell, 0, 7)
	for i := 0; i < 7; i++ {
		d := sunday.AddDate(0, 0, i)
		iso := d.Format(LayoutISO)
		cells = append(cells, models.WeekCell{
			Label:   weekLabels[i],
			Date:    iso,
			Checked: checkedSet[iso],
		})
	}
	return cells
}

// BuildMonth 构建月视图网格：先补 firstWeekday 个空格，再逐日填充，
// 最后补齐到 7 的倍数。补位格永远不会标记为已打卡。
func BuildMonth(year, month int, checkedSet map[string]bool) []models.MonthCell {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	totalDays := DaysInMonth(year, month)
	firstWeekday := int(first.Weekday()) // 0..6 (Sun..Sat)

	cells := make([]models.MonthCell, 0, firstWeekday+totalDays+6)
	for i := 0; i < firstWeekday; i++ {
		cells = append(cells, models.MonthCell{})
	}
	for d := 1; d <= totalDays; d++ {
		day := d
		iso := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.Local).Format(LayoutISO)
		cells = append(cells, models.MonthCell{Day: &day, Checked: checkedSet[iso]})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, models.MonthCell{})
	}
	return cells
}

// DaysInMonth 当月天数
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CheckedSet 将打卡记录列表转成日期集合
func CheckedSet(records []models.CheckinRecord) map[string]bool {
	set := make(map[string]bool, len(records))
	for _, r := range records {
		set[r.CheckinDate] = true
	}
	return set
}
