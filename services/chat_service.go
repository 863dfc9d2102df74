package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/tmc/langchaingo/llms"

	"FitBuddyGo/config"
	"FitBuddyGo/models"
	"FitBuddyGo/utils"
)

// SessionState 会话状态机：Idle → Sending → Streaming → Idle，
// 失败时短暂进入 Errored 后回到 Idle
type SessionState int

const (
	StateIdle SessionState = iota
	StateSending
	StateStreaming
	StateErrored
)

// ChatSession 驱动 AI 助手的会话控制器。
// 持有完整对话记录，同一时刻只允许一个在途请求，流式响应逐块
// 累积写入末尾的占位助手轮。
type ChatSession struct {
	ID string

	client       *GeminiClient
	lang         models.Language
	systemPrompt string

	// OnChunk 每收到一块流式文本后调用（已写入对话记录之后），
	// 供终端增量输出，可为 nil
	OnChunk func(chunk string)

	mu    sync.Mutex
	turns []models.ConversationTurn
	busy  bool
	state SessionState

	wg sync.WaitGroup
}

// NewChatSession 创建会话。client 为 nil 表示未配置 API Key，
// 此时提交会得到本地化的错误提示而不是崩溃。
func NewChatSession(client *GeminiClient, systemPrompt string, lang models.Language) *ChatSession {
	return &ChatSession{
		ID:           utils.GenerateID(),
		client:       client,
		lang:         lang,
		systemPrompt: systemPrompt,
		state:        StateIdle,
	}
}

// SeedGreeting 在对话开头插入一条助手问候。
// 问候只用于展示，发给模型的历史会从第一条用户轮开始。
func (s *ChatSession) SeedGreeting() {
	greeting := "Hello! I'm your AI fitness assistant. I can create workout plans, answer nutrition questions, or just chat with you!"
	if s.lang == models.LanguageZH {
		greeting = "你好！我是你的 AI 健身助手。我可以为你制定训练计划、解答营养问题，或陪你聊天。今天想做什么？"
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, models.ConversationTurn{Speaker: models.SpeakerAssistant, Text: greeting})
}

// UpdateSystemPrompt 资料或设置变化后更新系统提示词
func (s *ChatSession) UpdateSystemPrompt(prompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.systemPrompt = prompt
}

// Turns 返回对话记录的快照
func (s *ChatSession) Turns() []models.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ConversationTurn, len(s.turns))
	copy(out, s.turns)
	return out
}

// State 当前状态
func (s *ChatSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Busy 是否有在途请求
func (s *ChatSession) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Send 提交一条用户消息并流式接收回复，返回时本轮已结束。
// 空输入是静默的无操作；已有在途请求时本次提交被直接丢弃
// （刻意的背压策略，不排队）。失败时保留已收到的部分文本，
// 返回本地化的错误信息，会话仍可继续使用。
func (s *ChatSession) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	// busy 标记在任何阻塞点之前同步检查并置位，
	// 保证流式期间的二次提交不会被接受
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		config.Logger.Debugw("会话繁忙，丢弃提交", "sessionID", s.ID)
		return nil
	}
	s.busy = true
	s.state = StateSending
	s.turns = append(s.turns,
		models.ConversationTurn{Speaker: models.SpeakerUser, Text: text},
		models.ConversationTurn{Speaker: models.SpeakerAssistant, Text: ""}, // 占位
	)
	history := s.providerHistoryLocked()
	prompt := s.systemPrompt
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.state = StateIdle
		s.mu.Unlock()
	}()

	if s.client == nil {
		s.setErrored()
		return fmt.Errorf("%s", s.localized(
			"Missing API key. Set GEMINI_API_KEY in .env.",
			"缺少 API Key，请在 .env 中设置 GEMINI_API_KEY。",
		))
	}

	messages := make([]llms.MessageContent, 0, len(history)+1)
	messages = append(messages, llms.MessageContent{
		Role:  llms.ChatMessageTypeSystem,
		Parts: []llms.ContentPart{llms.TextPart(prompt)},
	})
	messages = append(messages, history...)

	// 生成协程只负责把文本块推进通道，累积由本方法独自完成
	out := make(chan string)
	var genErr error
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(out)

		options := []llms.CallOption{
			llms.WithTemperature(0.7),
			llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
				out <- string(chunk)
				return nil
			}),
		}
		_, genErr = s.client.Chat.GenerateContent(ctx, messages, options...)
	}()

	var assembled strings.Builder
	for chunk := range out {
		assembled.WriteString(chunk)
		// 占位轮整体替换为累积串，而不是在旧文本上追加
		s.mu.Lock()
		s.state = StateStreaming
		s.turns[len(s.turns)-1].Text = assembled.String()
		s.mu.Unlock()
		if s.OnChunk != nil {
			s.OnChunk(chunk)
		}
	}

	if genErr != nil {
		config.Logger.Errorw("生成内容失败", "error", genErr, "sessionID", s.ID)
		s.setErrored()
		// 占位轮保留已累积的部分文本
		return fmt.Errorf("%s: %v", s.localized(
			"Failed to send message",
			"发送消息失败",
		), genErr)
	}
	return nil
}

// providerHistoryLocked 构造发给模型的历史：从第一条用户轮开始
// （跳过开头的问候等助手轮），并排除末尾的空占位轮。调用方需持锁。
func (s *ChatSession) providerHistoryLocked() []llms.MessageContent {
	firstUser := -1
	for i, turn := range s.turns {
		if turn.Speaker == models.SpeakerUser {
			firstUser = i
			break
		}
	}
	if firstUser == -1 {
		return nil
	}

	history := make([]llms.MessageContent, 0, len(s.turns)-firstUser)
	for _, turn := range s.turns[firstUser:] {
		if turn.Speaker == models.SpeakerAssistant && turn.Text == "" {
			continue
		}
		role := llms.ChatMessageTypeHuman
		if turn.Speaker == models.SpeakerAssistant {
			role = llms.ChatMessageTypeAI
		}
		history = append(history, llms.MessageContent{
			Role:  role,
			Parts: []llms.ContentPart{llms.TextPart(turn.Text)},
		})
	}
	return history
}

func (s *ChatSession) setErrored() {
	s.mu.Lock()
	s.state = StateErrored
	s.mu.Unlock()
}

func (s *ChatSession) localized(en, zh string) string {
	if s.lang == models.LanguageZH {
		return zh
	}
	return en
}

// Wait 等待后台流式协程结束，用于退出前的收尾
func (s *ChatSession) Wait() {
	s.wg.Wait()
}
