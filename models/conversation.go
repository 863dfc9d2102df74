package models

// Speaker 对话中的说话方
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// ConversationTurn 对话中的一轮。除正在流式写入的末尾助手轮外，
// 创建后不再修改。
type ConversationTurn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}
