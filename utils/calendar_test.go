package utils

import (
	"testing"
	"time"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
}

func TestBuildMonthShape(t *testing.T) {
	cases := []struct {
		year, month int
		days        int
	}{
		{2024, 1, 31},
		{2024, 2, 29}, // 闰年
		{2023, 2, 28},
		{2024, 9, 30}, // 9月1日是周日，无前导补位
		{2024, 12, 31},
	}

	for _, tc := range cases {
		cells := BuildMonth(tc.year, tc.month, nil)
		if len(cells)%7 != 0 {
			t.Fatalf("BuildMonth(%d,%d) length %d, want multiple of 7", tc.year, tc.month, len(cells))
		}
		count := 0
		for _, c := range cells {
			if c.Day != nil {
				count++
			}
			if c.Day == nil && c.Checked {
				t.Fatalf("BuildMonth(%d,%d): padding cell marked checked", tc.year, tc.month)
			}
		}
		if count != tc.days {
			t.Fatalf("BuildMonth(%d,%d) day cells %d, want %d", tc.year, tc.month, count, tc.days)
		}
	}
}

func TestBuildMonthLeadingPadding(t *testing.T) {
	// 2024-09-01 是周日：首格就是 1 号
	cells := BuildMonth(2024, 9, nil)
	if cells[0].Day == nil || *cells[0].Day != 1 {
		t.Fatalf("expected no leading padding for 2024-09, first cell = %+v", cells[0])
	}

	// 2024-03-01 是周五：前导 5 个补位格
	cells = BuildMonth(2024, 3, nil)
	for i := 0; i < 5; i++ {
		if cells[i].Day != nil {
			t.Fatalf("expected padding at index %d for 2024-03, got day %d", i, *cells[i].Day)
		}
	}
	if cells[5].Day == nil || *cells[5].Day != 1 {
		t.Fatalf("expected day 1 at index 5 for 2024-03, got %+v", cells[5])
	}
}

func TestBuildMonthChecked(t *testing.T) {
	checked := map[string]bool{"2024-03-03": true, "2024-03-10": true}
	cells := BuildMonth(2024, 3, checked)

	got := 0
	for _, c := range cells {
		if c.Checked {
			got++
			if c.Day == nil {
				t.Fatal("checked padding cell")
			}
			if *c.Day != 3 && *c.Day != 10 {
				t.Fatalf("unexpected checked day %d", *c.Day)
			}
		}
	}
	if got != 2 {
		t.Fatalf("checked cells = %d, want 2", got)
	}
}

func TestBuildWeekSpansSundayToSaturday(t *testing.T) {
	// 同一周内任意一天作锚点，结果都是同一个周日..周六
	for d := 3; d <= 9; d++ {
		cells := BuildWeek(date(2024, 3, d), nil)
		if len(cells) != 7 {
			t.Fatalf("BuildWeek length %d, want 7", len(cells))
		}
		if cells[0].Date != "2024-03-03" || cells[0].Label != "Sun" {
			t.Fatalf("anchor 2024-03-%02d: first cell %+v, want Sun 2024-03-03", d, cells[0])
		}
		if cells[6].Date != "2024-03-09" || cells[6].Label != "Sat" {
			t.Fatalf("anchor 2024-03-%02d: last cell %+v, want Sat 2024-03-09", d, cells[6])
		}
	}
}

func TestBuildWeekCheckedScenario(t *testing.T) {
	checked := map[string]bool{"2024-03-03": true, "2024-03-10": true}
	cells := BuildWeek(date(2024, 3, 5), checked) // 周二作锚点

	for i, c := range cells {
		want := i == 0 // 只有周日 2024-03-03 在本周内
		if c.Checked != want {
			t.Fatalf("cell %d (%s) checked=%v, want %v", i, c.Date, c.Checked, want)
		}
	}
}

func TestBuildWeekEmptySet(t *testing.T) {
	for _, c := range BuildWeek(date(2024, 3, 5), nil) {
		if c.Checked {
			t.Fatalf("cell %s checked with empty set", c.Date)
		}
	}
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		anchor time.Time
		want   string
	}{
		{date(2024, 3, 3), "2024-03-03"},  // 本身是周日
		{date(2024, 3, 9), "2024-03-03"},  // 周六
		{date(2024, 3, 10), "2024-03-10"}, // 下一个周日
	}
	for _, tc := range cases {
		if got := WeekStart(tc.anchor).Format(LayoutISO); got != tc.want {
			t.Fatalf("WeekStart(%s) = %s, want %s", tc.anchor.Format(LayoutISO), got, tc.want)
		}
	}
}
