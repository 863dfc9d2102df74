package config

import (
	"github.com/spf13/viper"
)

// Config 存储所有配置信息
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`

	// 后端服务配置
	BackendBaseURL string `mapstructure:"BACKEND_BASE_URL"`

	// Gemini API配置（OpenAI 兼容端点）
	GeminiAPIKey      string `mapstructure:"GEMINI_API_KEY"`
	GeminiAPIEndpoint string `mapstructure:"GEMINI_API_ENDPOINT"`
	GeminiModel       string `mapstructure:"GEMINI_MODEL"`

	// 本地数据目录，为空时使用 ~/.fitbuddy
	DataDir string `mapstructure:"DATA_DIR"`
}

// LoadConfig 从环境变量或配置文件加载配置
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:8080")
	viper.SetDefault("GEMINI_API_ENDPOINT", "https://generativelanguage.googleapis.com/v1beta/openai")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		// 允许配置文件不存在，此时会从环境变量中读取
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
