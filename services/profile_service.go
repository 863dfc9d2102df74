package services

import (
	"context"
	"errors"

	"FitBuddyGo/api"
	"FitBuddyGo/config"
	"FitBuddyGo/models"
)

// ProfileService 用户资料的读取与保存
type ProfileService struct {
	api *api.Client
}

// NewProfileService 创建资料服务
func NewProfileService(client *api.Client) *ProfileService {
	return &ProfileService{api: client}
}

// Load 拉取用户资料的只读快照。资料尚未创建（404）时返回默认资料，
// 不视为错误；其余失败原样返回。
func (s *ProfileService) Load(ctx context.Context, user *models.UserIdentity) (models.PersonalizationProfile, error) {
	profile, err := s.api.GetProfile(ctx, user.ID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			config.Logger.Debugw("资料尚未创建，使用默认值", "userID", user.ID)
			return models.DefaultProfile(user.Username), nil
		}
		return models.PersonalizationProfile{}, err
	}
	if profile.Username == "" {
		profile.Username = user.Username
	}
	if profile.PrimaryGoal == "" {
		profile.PrimaryGoal = models.GoalMaintainHealth
	}
	return *profile, nil
}

// Save 保存资料并返回后端回显的结果
func (s *ProfileService) Save(ctx context.Context, userID int64, profile models.PersonalizationProfile) (*models.PersonalizationProfile, error) {
	if profile.PrimaryGoal == "" {
		profile.PrimaryGoal = models.GoalMaintainHealth
	}
	return s.api.SaveProfile(ctx, userID, profile)
}
