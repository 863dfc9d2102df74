package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"

	"FitBuddyGo/models"
)

// 本地持久化使用的固定键
const (
	keySettings = "app_settings"
	keyIdentity = "auth_user"
)

// Store 持久化本地状态：偏好设置与最近一次登录的用户身份。
// 两者缺失都按默认值/未登录处理，不视为错误。
type Store struct {
	d        *diskv.Diskv
	basePath string
}

// DefaultBasePath 默认数据目录 ~/.fitbuddy
func DefaultBasePath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("定位用户目录失败: %w", err)
	}
	return filepath.Join(home, ".fitbuddy"), nil
}

// Open 打开（必要时创建）basePath 下的本地存储
func Open(basePath string) (*Store, error) {
	if basePath == "" {
		var err error
		basePath, err = DefaultBasePath()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("创建数据目录失败: %w", err)
	}
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 64,
		}),
		basePath: basePath,
	}, nil
}

// BasePath 数据目录
func (s *Store) BasePath() string {
	return s.basePath
}

// Settings 读取持久化的偏好设置，缺失或损坏时返回默认值
func (s *Store) Settings() models.Settings {
	settings := models.DefaultSettings()
	data, err := s.d.Read(keySettings)
	if err != nil {
		return settings
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return models.DefaultSettings()
	}
	// 容忍旧版本写入的非法值
	if !settings.Language.IsValid() {
		settings.Language = models.LanguageEN
	}
	if !settings.Theme.IsValid() {
		settings.Theme = models.ThemeSystem
	}
	if !settings.Unit.IsValid() {
		settings.Unit = models.UnitMetric
	}
	return settings
}

// SaveSettings 持久化偏好设置
func (s *Store) SaveSettings(settings models.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.d.Write(keySettings, data)
}

// Identity 读取最近登录的用户身份，第二个返回值表示是否存在
func (s *Store) Identity() (*models.UserIdentity, bool) {
	data, err := s.d.Read(keyIdentity)
	if err != nil {
		return nil, false
	}
	var user models.UserIdentity
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, false
	}
	return &user, true
}

// SaveIdentity 持久化用户身份（登录/注册成功后）
func (s *Store) SaveIdentity(user *models.UserIdentity) error {
	if user == nil {
		return errors.New("store: identity required")
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.d.Write(keyIdentity, data)
}

// ClearIdentity 退出登录时清除持久化的身份
func (s *Store) ClearIdentity() error {
	err := s.d.Erase(keyIdentity)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
