package tutor

import "fmt"

// Role tags the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry.
type Message struct {
	Role    Role   `json:"role"`
	Text    string `json:"text"`
	IsError bool   `json:"isError,omitempty"`
}

// State is the session's position in a turn.
type State int

const (
	StateIdle State = iota
	StateSending
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "idle":
		*s = StateIdle
	case "sending":
		*s = StateSending
	default:
		return fmt.Errorf("tutor: unknown state %q", b)
	}
	return nil
}

// Fixed user-facing strings.
const (
	Greeting      = "指挥官你好！我是你的星际领航员 AI。关于当前的轨道参数（知识点）有什么不清楚的吗？我可以帮你生成习题或解释概念！"
	FallbackReply = "通信受到干扰，请重试。"
	ErrorReply    = "⚠ 连接星际网络失败 (Check API Key)"
	LoadingText   = "计算轨道参数中..."
	Placeholder   = "输入你的问题，或者输入“出题”..."
	PaneTitle     = "AI 领航员"
)
