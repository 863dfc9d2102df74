package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"FitBuddyGo/api"
	"FitBuddyGo/cli"
	"FitBuddyGo/config"
	"FitBuddyGo/services"
	"FitBuddyGo/store"
)

func main() {
	// 加载配置
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}

	// 打开本地存储
	st, err := store.Open(conf.DataDir)
	if err != nil {
		log.Fatalf("无法打开本地存储: %v", err)
	}

	// 初始化日志，写入数据目录
	if err := config.InitLogger(filepath.Join(st.BasePath(), "logs")); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	defer config.Logger.Sync()

	// 后端客户端，启动时恢复上次登录的令牌
	token := ""
	if user, ok := st.Identity(); ok {
		token = user.Token
	}
	apiClient := api.NewClient(conf.BackendBaseURL, token)

	// Gemini 客户端是可选能力：启动时解析一次，
	// 未配置 API Key 时保持为 nil，聊天命令会给出本地化提示
	gemini, err := services.NewGeminiClient(conf.GeminiAPIKey, conf.GeminiAPIEndpoint, conf.GeminiModel)
	if err != nil && !errors.Is(err, services.ErrMissingAPIKey) {
		log.Fatalf("无法初始化Gemini客户端: %v", err)
	}

	deps := &cli.Deps{
		Store:   st,
		API:     apiClient,
		Gemini:  gemini,
		Checkin: services.NewCheckinService(apiClient),
		Profile: services.NewProfileService(apiClient),
	}

	// Ctrl+C 取消在途请求即可，无需更多收尾
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(deps)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
