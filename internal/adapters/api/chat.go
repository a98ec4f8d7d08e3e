package api

import (
	"context"
	"fmt"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
	"github.com/MuzzammilShah/pa-agent-cli/internal/ports"
)

type ChatAPI struct {
	client *Client
}

var _ ports.ChatService = (*ChatAPI)(nil)

type messagePayload struct {
	ID          string              `json:"id"`
	Role        string              `json:"role"`
	Content     string              `json:"content"`
	ToolCalls   []toolCallPayload   `json:"tool_calls,omitempty"`
	ToolResults []toolResultPayload `json:"tool_results,omitempty"`
}

type toolCallPayload struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

type toolResultPayload struct {
	ToolCallID string `json:"tool_call_id"`
	Content    any    `json:"content"`
}

func encodeMessages(messages []domain.ChatMessage) []messagePayload {
	encoded := make([]messagePayload, 0, len(messages))
	for _, message := range messages {
		entry := messagePayload{
			ID:      message.ID,
			Role:    string(message.Role),
			Content: message.Content,
		}
		for _, call := range message.ToolCalls {
			entry.ToolCalls = append(entry.ToolCalls, toolCallPayload{
				ID:        call.ID,
				Name:      call.Name,
				Arguments: call.Arguments,
			})
		}
		for _, result := range message.ToolResults {
			entry.ToolResults = append(entry.ToolResults, toolResultPayload{
				ToolCallID: result.ToolCallID,
				Content:    result.Content,
			})
		}
		encoded = append(encoded, entry)
	}

	return encoded
}

func (c *ChatAPI) Complete(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	request := map[string]any{"messages": encodeMessages(messages)}

	var payload struct {
		Response string `json:"response"`
		Message  string `json:"message"`
	}
	if err := c.client.post(ctx, "/api/chat-simple", request, &payload); err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if payload.Response != "" {
		return payload.Response, nil
	}
	return payload.Message, nil
}

func (c *ChatAPI) CompleteWithTools(ctx context.Context, messages []domain.ChatMessage, tools []ports.ToolSpec) (ports.AssistantTurn, error) {
	request := map[string]any{
		"messages": encodeMessages(messages),
		"tools":    tools,
	}

	var payload struct {
		Content   string            `json:"content"`
		ToolCalls []toolCallPayload `json:"tool_calls"`
	}
	if err := c.client.post(ctx, "/api/chat", request, &payload); err != nil {
		return ports.AssistantTurn{}, fmt.Errorf("chat completion with tools: %w", err)
	}

	turn := ports.AssistantTurn{Content: payload.Content}
	for _, call := range payload.ToolCalls {
		turn.ToolCalls = append(turn.ToolCalls, domain.ToolCall{
			ID:        call.ID,
			Name:      call.Name,
			Arguments: call.Arguments,
		})
	}

	return turn, nil
}
