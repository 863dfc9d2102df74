package models

// Language 界面与 AI 回复语言
type Language string

// Theme 主题偏好
type Theme string

// Unit 单位制偏好
type Unit string

const (
	LanguageEN Language = "en"
	LanguageZH Language = "zh"

	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"

	UnitMetric   Unit = "metric"
	UnitImperial Unit = "imperial"
)

// Settings 本地持久化的偏好设置，仅通过用户操作修改
type Settings struct {
	Language Language `json:"language"`
	Theme    Theme    `json:"theme"`
	Unit     Unit     `json:"unit"`
}

// DefaultSettings 首次运行或本地状态缺失时的默认值
func DefaultSettings() Settings {
	return Settings{
		Language: LanguageEN,
		Theme:    ThemeSystem,
		Unit:     UnitMetric,
	}
}

func (l Language) IsValid() bool {
	return l == LanguageEN || l == LanguageZH
}

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

func (u Unit) IsValid() bool {
	return u == UnitMetric || u == UnitImperial
}
