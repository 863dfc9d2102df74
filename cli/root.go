package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"FitBuddyGo/api"
	"FitBuddyGo/models"
	"FitBuddyGo/services"
	"FitBuddyGo/store"
)

// Deps 各命令共享的依赖，由 main 装配
type Deps struct {
	Store   *store.Store
	API     *api.Client
	Gemini  *services.GeminiClient // 未配置 API Key 时为 nil
	Checkin *services.CheckinService
	Profile *services.ProfileService
}

// requireUser 返回持久化的登录身份，未登录时报错提示
func (d *Deps) requireUser() (*models.UserIdentity, error) {
	user, ok := d.Store.Identity()
	if !ok {
		return nil, errors.New(localized(d.Store.Settings().Language,
			"not signed in, run `fitbuddy login` first",
			"尚未登录，请先执行 fitbuddy login"))
	}
	if d.API.TokenExpired() {
		return nil, errors.New(localized(d.Store.Settings().Language,
			"session expired, please log in again",
			"登录已过期，请重新登录"))
	}
	return user, nil
}

func localized(lang models.Language, en, zh string) string {
	if lang == models.LanguageZH {
		return zh
	}
	return en
}

// NewRootCommand 装配根命令
func NewRootCommand(deps *Deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "fitbuddy",
		Short:         "FitBuddy fitness tracking client",
		Long:          "Command-line client for FitBuddy: daily check-ins, streak statistics, profile and an AI fitness assistant.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCommand(deps),
		newRegisterCommand(deps),
		newLogoutCommand(deps),
		newCheckinCommand(deps),
		newStatsCommand(deps),
		newProfileCommand(deps),
		newSettingsCommand(deps),
		newChatCommand(deps),
	)
	return root
}
