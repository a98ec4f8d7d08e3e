package domain

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ChatMessage is one entry in a conversation. Ordering is positional and
// append-only for the lifetime of a chat session; nothing is persisted.
type ChatMessage struct {
	ID      string
	Role    Role
	Content string

	// ToolCalls is set on assistant messages that request tool invocations.
	ToolCalls []ToolCall
	// ToolResults is set on system messages carrying tool output back to
	// the model. System messages never reach the visible transcript.
	ToolResults []ToolResult
}

// ToolCall is a model-issued request to invoke a named tool.
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]any
}

// ToolResult carries a tool's output, or its contained error, back into
// the conversation loop.
type ToolResult struct {
	ToolCallID string
	Content    any
}

// VisibleMessages filters out system-role entries. The seed prompt and
// tool plumbing stay out of what the user sees.
func VisibleMessages(messages []ChatMessage) []ChatMessage {
	visible := make([]ChatMessage, 0, len(messages))
	for _, message := range messages {
		if message.Role == RoleSystem {
			continue
		}
		visible = append(visible, message)
	}
	return visible
}
