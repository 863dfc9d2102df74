package models

// CheckinRecord 一条打卡记录，日期为 YYYY-MM-DD（无时间部分）
type CheckinRecord struct {
	CheckinDate string `json:"checkinDate"`
}

// StreakStats 连续打卡统计，整体拉取、整体替换，从不原地修改
type StreakStats struct {
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
}

// WeekCell 周视图中的一天
type WeekCell struct {
	Label   string `json:"label"` // Sun..Sat
	Date    string `json:"date"`  // YYYY-MM-DD
	Checked bool   `json:"checked"`
}

// MonthCell 月视图中的一格，Day 为 nil 表示首尾补位格
type MonthCell struct {
	Day     *int `json:"day"`
	Checked bool `json:"checked"`
}
