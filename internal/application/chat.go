package application

import (
	"context"
	"fmt"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
	"github.com/MuzzammilShah/pa-agent-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const systemPrompt = "You are a helpful AI work assistant called PA Agent. You can help with emails, calendar management, documentation, and code review. Be concise, professional, and helpful."

const welcomeMessage = "Hello! I'm PA Agent, your AI work assistant. I can help you with emails, calendar management, documentation, and code review. What would you like me to help you with today?"

const errorMessage = "I apologize, but I encountered an error. Please try again or check your connection."

// maxToolSteps caps the tool-calling loop for a single user turn. Once
// reached, the turn ends with a fixed assistant message even if the model
// keeps asking for tools.
const maxToolSteps = 10

// Conversation is an ordered transcript. The system prompt is seeded as
// the first message but hidden from display.
type Conversation struct {
	messages []domain.ChatMessage
}

func NewConversation() *Conversation {
	c := &Conversation{}
	c.append(domain.RoleSystem, systemPrompt)
	c.append(domain.RoleAssistant, welcomeMessage)
	return c
}

func (c *Conversation) append(role domain.Role, content string) domain.ChatMessage {
	msg := domain.ChatMessage{
		ID:      uuid.NewString(),
		Role:    role,
		Content: content,
	}
	c.messages = append(c.messages, msg)
	return msg
}

func (c *Conversation) appendMessage(msg domain.ChatMessage) domain.ChatMessage {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	c.messages = append(c.messages, msg)
	return msg
}

// Messages returns the full transcript including the system seed.
func (c *Conversation) Messages() []domain.ChatMessage {
	out := make([]domain.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Visible returns the transcript without system messages.
func (c *Conversation) Visible() []domain.ChatMessage {
	return domain.VisibleMessages(c.messages)
}

// SimpleChat is the plain request/response controller. Each user turn
// appends exactly one assistant message, a synthesized apology when the
// backend call fails.
type SimpleChat struct {
	chat   ports.ChatService
	conv   *Conversation
	logger *zap.Logger
}

func NewSimpleChat(chat ports.ChatService, logger *zap.Logger) *SimpleChat {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimpleChat{
		chat:   chat,
		conv:   NewConversation(),
		logger: logger,
	}
}

func (s *SimpleChat) Conversation() *Conversation { return s.conv }

// Send appends the user message, asks the backend for a completion, and
// appends the assistant reply. On failure the appended reply carries the
// fixed apology text and the error is returned alongside it.
func (s *SimpleChat) Send(ctx context.Context, text string) (domain.ChatMessage, error) {
	s.conv.append(domain.RoleUser, text)

	content, err := s.chat.Complete(ctx, s.conv.Messages())
	if err != nil {
		s.logger.Debug("chat completion failed", zap.Error(err))
		return s.conv.append(domain.RoleAssistant, errorMessage), err
	}

	return s.conv.append(domain.RoleAssistant, content), nil
}

// ToolDispatcher executes named tools and describes them to the backend.
type ToolDispatcher interface {
	Dispatch(ctx context.Context, name string, params map[string]any) any
	Specs() []ports.ToolSpec
}

// ChatAgent is the tool-calling controller. A single user turn may run
// several completion rounds: each round either yields plain content,
// which ends the turn, or tool calls, which are executed and fed back.
type ChatAgent struct {
	chat   ports.ChatService
	tools  ToolDispatcher
	conv   *Conversation
	logger *zap.Logger
}

func NewChatAgent(chat ports.ChatService, tools ToolDispatcher, logger *zap.Logger) *ChatAgent {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatAgent{
		chat:   chat,
		tools:  tools,
		conv:   NewConversation(),
		logger: logger,
	}
}

func (a *ChatAgent) Conversation() *Conversation { return a.conv }

// Send runs one user turn through the tool loop and returns every message
// appended during the turn, in order.
func (a *ChatAgent) Send(ctx context.Context, text string) ([]domain.ChatMessage, error) {
	var appended []domain.ChatMessage
	record := func(msg domain.ChatMessage) {
		appended = append(appended, msg)
	}

	record(a.conv.append(domain.RoleUser, text))

	for step := 0; step < maxToolSteps; step++ {
		turn, err := a.chat.CompleteWithTools(ctx, a.conv.Messages(), a.tools.Specs())
		if err != nil {
			a.logger.Debug("tool completion failed", zap.Error(err))
			record(a.conv.append(domain.RoleAssistant, errorMessage))
			return appended, err
		}

		if len(turn.ToolCalls) == 0 {
			record(a.conv.append(domain.RoleAssistant, turn.Content))
			return appended, nil
		}

		record(a.conv.appendMessage(domain.ChatMessage{
			Role:      domain.RoleAssistant,
			Content:   turn.Content,
			ToolCalls: turn.ToolCalls,
		}))

		results := make([]domain.ToolResult, 0, len(turn.ToolCalls))
		for _, call := range turn.ToolCalls {
			a.logger.Debug("executing tool",
				zap.String("tool", call.Name),
				zap.String("call_id", call.ID))
			results = append(results, domain.ToolResult{
				ToolCallID: call.ID,
				Content:    a.tools.Dispatch(ctx, call.Name, call.Arguments),
			})
		}

		record(a.conv.appendMessage(domain.ChatMessage{
			Role:        domain.RoleSystem,
			ToolResults: results,
		}))
	}

	a.logger.Debug("tool step limit reached", zap.Int("max_steps", maxToolSteps))
	record(a.conv.append(domain.RoleAssistant,
		fmt.Sprintf("I stopped after %d tool steps without reaching a final answer. Please try rephrasing your request.", maxToolSteps)))
	return appended, nil
}
