package services

import (
	"context"
	"time"

	"FitBuddyGo/api"
	"FitBuddyGo/config"
	"FitBuddyGo/models"
	"FitBuddyGo/utils"
)

// DailyView 打卡首页的一次完整视图：今日状态、连续统计与本周网格。
// 三者总是由同一次刷新共同产出，避免新旧数据混排。
type DailyView struct {
	TodayChecked bool
	Stats        models.StreakStats
	Week         []models.WeekCell
}

// CheckinService 打卡与统计聚合。每次调用都从后端重新拉取并整体
// 重建视图，任何一步失败都不产出部分结果，由调用方保留旧视图。
type CheckinService struct {
	api *api.Client
	now func() time.Time
}

// NewCheckinService 创建打卡聚合服务
func NewCheckinService(client *api.Client) *CheckinService {
	return &CheckinService{
		api: client,
		now: time.Now,
	}
}

// Refresh 重新拉取今日状态、连续统计与本周打卡并构建视图
func (s *CheckinService) Refresh(ctx context.Context, userID int64) (*DailyView, error) {
	today, err := s.api.CheckedInToday(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.api.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sunday := utils.WeekStart(now)
	saturday := sunday.AddDate(0, 0, 6)
	records, err := s.api.Calendar(ctx, userID,
		sunday.Format(utils.LayoutISO), saturday.Format(utils.LayoutISO))
	if err != nil {
		return nil, err
	}

	return &DailyView{
		TodayChecked: today,
		Stats:        *stats,
		Week:         utils.BuildWeek(now, utils.CheckedSet(records)),
	}, nil
}

// RefreshMonth 重新拉取指定月份的打卡并构建月视图网格
func (s *CheckinService) RefreshMonth(ctx context.Context, userID int64, year, month int) ([]models.MonthCell, error) {
	records, err := s.api.Month(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}
	return utils.BuildMonth(year, month, utils.CheckedSet(records)), nil
}

// CheckInToday 记录今天的打卡并返回刷新后的完整视图。
// 今天已打卡时跳过提交（静默无操作），仍返回最新状态；
// 重复提交的最终裁决在后端。
func (s *CheckinService) CheckInToday(ctx context.Context, userID int64) (*DailyView, error) {
	checked, err := s.api.CheckedInToday(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !checked {
		if err := s.api.CheckinToday(ctx, userID); err != nil {
			return nil, err
		}
		config.Logger.Infow("打卡成功", "userID", userID)
	}
	return s.Refresh(ctx, userID)
}

// TotalCheckins 历史累计打卡次数（从 1970-01-01 到今天）
func (s *CheckinService) TotalCheckins(ctx context.Context, userID int64) (int, error) {
	records, err := s.api.Calendar(ctx, userID, "1970-01-01", s.now().Format(utils.LayoutISO))
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
