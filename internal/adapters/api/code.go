package api

import (
	"context"
	"fmt"

	"github.com/MuzzammilShah/pa-agent-cli/internal/ports"
)

type CodeAPI struct {
	client *Client
}

var _ ports.CodeService = (*CodeAPI)(nil)

func (c *CodeAPI) Review(ctx context.Context, code, language, focus string) (string, error) {
	request := map[string]any{
		"code":         code,
		"language":     language,
		"review_focus": focus,
	}

	var payload contentPayload
	if err := c.client.post(ctx, "/code/review", request, &payload); err != nil {
		return "", fmt.Errorf("review code: %w", err)
	}

	return payload.Content, nil
}

func (c *CodeAPI) SuggestRefactoring(ctx context.Context, code, language, goal string) (string, error) {
	request := map[string]any{
		"code":             code,
		"language":         language,
		"refactoring_goal": goal,
	}

	var payload contentPayload
	if err := c.client.post(ctx, "/code/suggest-refactoring", request, &payload); err != nil {
		return "", fmt.Errorf("suggest refactoring: %w", err)
	}

	return payload.Content, nil
}

func (c *CodeAPI) Explain(ctx context.Context, code, language, detailLevel string) (string, error) {
	request := map[string]any{
		"code":         code,
		"language":     language,
		"detail_level": detailLevel,
	}

	var payload contentPayload
	if err := c.client.post(ctx, "/code/explain", request, &payload); err != nil {
		return "", fmt.Errorf("explain code: %w", err)
	}

	return payload.Content, nil
}
