package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"FitBuddyGo/config"
	"FitBuddyGo/models"
)

// fakeModel 按预设的文本块回放流式响应，并记录收到的消息
type fakeModel struct {
	chunks []string
	err    error

	gate    chan struct{} // 非 nil 时，先等放行再发块
	started chan struct{} // 每次调用开始时发信号

	mu       sync.Mutex
	messages [][]llms.MessageContent
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.mu.Lock()
	f.messages = append(f.messages, messages)
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}

	opts := llms.CallOptions{}
	for _, opt := range options {
		opt(&opts)
	}

	var full strings.Builder
	for _, chunk := range f.chunks {
		if opts.StreamingFunc != nil {
			if err := opts.StreamingFunc(ctx, []byte(chunk)); err != nil {
				return nil, err
			}
		}
		full.WriteString(chunk)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: full.String()}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func newTestSession(t *testing.T, model llms.Model) *ChatSession {
	t.Helper()
	if config.Logger == nil {
		require.NoError(t, config.InitLogger(t.TempDir()))
	}
	var client *GeminiClient
	if model != nil {
		client = &GeminiClient{Chat: model}
	}
	return NewChatSession(client, "test system prompt", models.LanguageEN)
}

func TestSendStreamingMonotonic(t *testing.T) {
	fake := &fakeModel{chunks: []string{"Hi", " there", "!"}}
	session := newTestSession(t, fake)

	var seen []string
	session.OnChunk = func(string) {
		turns := session.Turns()
		seen = append(seen, turns[len(turns)-1].Text)
	}

	require.NoError(t, session.Send(context.Background(), "hello"))

	// 占位轮的文本只会单调增长，不跳块、不乱序
	assert.Equal(t, []string{"Hi", "Hi there", "Hi there!"}, seen)

	turns := session.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, models.SpeakerUser, turns[0].Speaker)
	assert.Equal(t, "hello", turns[0].Text)
	assert.Equal(t, models.SpeakerAssistant, turns[1].Speaker)
	assert.Equal(t, "Hi there!", turns[1].Text)
	assert.Equal(t, StateIdle, session.State())
}

func TestSendEmptyInputIsNoop(t *testing.T) {
	fake := &fakeModel{chunks: []string{"x"}}
	session := newTestSession(t, fake)

	require.NoError(t, session.Send(context.Background(), "   "))
	assert.Empty(t, session.Turns())
	assert.Empty(t, fake.messages)
}

func TestSendWhileBusyIsDropped(t *testing.T) {
	fake := &fakeModel{
		chunks:  []string{"slow answer"},
		gate:    make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	session := newTestSession(t, fake)

	done := make(chan error, 1)
	go func() {
		done <- session.Send(context.Background(), "first")
	}()

	// 等第一个请求进入流式阶段
	select {
	case <-fake.started:
	case <-time.After(5 * time.Second):
		t.Fatal("first request never started")
	}

	// 在途期间的第二次提交被静默丢弃，对话记录不变
	require.NoError(t, session.Send(context.Background(), "second"))
	turns := session.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, "first", turns[0].Text)

	close(fake.gate)
	require.NoError(t, <-done)

	// 结束后仍然只有第一轮
	turns = session.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, "first", turns[0].Text)
	assert.Equal(t, "slow answer", turns[1].Text)
	assert.False(t, session.Busy())

	// 回到 Idle 后可以继续提交
	require.NoError(t, session.Send(context.Background(), "third"))
	assert.Len(t, session.Turns(), 4)
}

func TestProviderHistoryStartsWithUserTurn(t *testing.T) {
	fake := &fakeModel{chunks: []string{"ok"}}
	session := newTestSession(t, fake)
	session.SeedGreeting()

	require.NoError(t, session.Send(context.Background(), "hello"))

	require.Len(t, fake.messages, 1)
	sent := fake.messages[0]
	// 第一条是系统提示词，其后的历史必须以用户轮开头：
	// 展示用的问候不发给模型
	require.GreaterOrEqual(t, len(sent), 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, sent[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, sent[1].Role)
	for _, m := range sent[1:] {
		assert.NotEqual(t, llms.ChatMessageTypeSystem, m.Role)
	}
	assert.Len(t, sent, 2) // 问候与空占位轮都不在历史里
}

func TestProviderHistoryCarriesPriorTurns(t *testing.T) {
	fake := &fakeModel{chunks: []string{"answer"}}
	session := newTestSession(t, fake)

	require.NoError(t, session.Send(context.Background(), "one"))
	require.NoError(t, session.Send(context.Background(), "two"))

	require.Len(t, fake.messages, 2)
	second := fake.messages[1]
	// system + user(one) + assistant(answer) + user(two)
	require.Len(t, second, 4)
	assert.Equal(t, llms.ChatMessageTypeHuman, second[1].Role)
	assert.Equal(t, llms.ChatMessageTypeAI, second[2].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, second[3].Role)
}

func TestUpdateSystemPromptAppliesToNextSend(t *testing.T) {
	fake := &fakeModel{chunks: []string{"ok"}}
	session := newTestSession(t, fake)

	require.NoError(t, session.Send(context.Background(), "one"))
	session.UpdateSystemPrompt("updated prompt")
	require.NoError(t, session.Send(context.Background(), "two"))

	require.Len(t, fake.messages, 2)
	first, second := fake.messages[0], fake.messages[1]
	assert.Equal(t, llms.ChatMessageTypeSystem, second[0].Role)
	assert.Equal(t, []llms.ContentPart{llms.TextPart("test system prompt")}, first[0].Parts)
	assert.Equal(t, []llms.ContentPart{llms.TextPart("updated prompt")}, second[0].Parts)
}

func TestSendFailureRetainsPartialText(t *testing.T) {
	fake := &fakeModel{
		chunks: []string{"partial "},
		err:    errors.New("connection reset"),
	}
	session := newTestSession(t, fake)

	err := session.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to send message")

	// 已收到的部分文本保留在占位轮中，会话回到可用状态
	turns := session.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, "partial ", turns[1].Text)
	assert.False(t, session.Busy())
	assert.Equal(t, StateIdle, session.State())
}

func TestSendWithoutClientLocalizedError(t *testing.T) {
	en := newTestSession(t, nil)
	err := en.Send(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing API key")

	zh := NewChatSession(nil, "prompt", models.LanguageZH)
	err = zh.Send(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "缺少 API Key")
	assert.False(t, zh.Busy())
}
