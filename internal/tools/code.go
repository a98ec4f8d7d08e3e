package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/MuzzammilShah/pa-agent-cli/internal/ports"
)

func CodeTools(service ports.CodeService) []Descriptor {
	return []Descriptor{
		{
			Name:        "review_code",
			Description: "Review code and provide feedback",
			Schema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"code":     {Type: "string", Description: "Code to review"},
					"language": {Type: "string", Description: "Programming language of the code"},
					"focus": {
						Type:        "string",
						Description: "Focus area for the review",
						Enum:        []string{"general", "security", "performance", "readability"},
						Default:     "general",
					},
				},
				Required: []string{"code", "language"},
			},
			Execute: func(ctx context.Context, params map[string]any) (any, error) {
				code := stringParam(params, "code", "")
				language := stringParam(params, "language", "")
				if code == "" || language == "" {
					return nil, errors.New("code and language are required")
				}
				focus := stringParam(params, "focus", "general")

				content, err := service.Review(ctx, code, language, focus)
				if err != nil {
					return nil, fmt.Errorf("review code: %w", err)
				}
				return map[string]any{"content": content}, nil
			},
		},
		{
			Name:        "suggest_refactoring",
			Description: "Suggest refactoring for given code based on a specific goal",
			Schema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"code":     {Type: "string", Description: "Code to refactor"},
					"language": {Type: "string", Description: "Programming language of the code"},
					"goal": {
						Type:        "string",
						Description: "Refactoring goal (e.g., improve performance, readability, maintainability)",
					},
				},
				Required: []string{"code", "language", "goal"},
			},
			Execute: func(ctx context.Context, params map[string]any) (any, error) {
				code := stringParam(params, "code", "")
				language := stringParam(params, "language", "")
				goal := stringParam(params, "goal", "")
				if code == "" || language == "" || goal == "" {
					return nil, errors.New("code, language and goal are required")
				}

				content, err := service.SuggestRefactoring(ctx, code, language, goal)
				if err != nil {
					return nil, fmt.Errorf("suggest refactoring: %w", err)
				}
				return map[string]any{"content": content}, nil
			},
		},
		{
			Name:        "explain_code",
			Description: "Explain what a piece of code does",
			Schema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"code":     {Type: "string", Description: "Code to explain"},
					"language": {Type: "string", Description: "Programming language of the code"},
					"detailLevel": {
						Type:        "string",
						Description: "Level of detail for the explanation",
						Enum:        []string{"low", "medium", "high"},
						Default:     "medium",
					},
				},
				Required: []string{"code", "language"},
			},
			Execute: func(ctx context.Context, params map[string]any) (any, error) {
				code := stringParam(params, "code", "")
				language := stringParam(params, "language", "")
				if code == "" || language == "" {
					return nil, errors.New("code and language are required")
				}
				detailLevel := stringParam(params, "detailLevel", "medium")

				content, err := service.Explain(ctx, code, language, detailLevel)
				if err != nil {
					return nil, fmt.Errorf("explain code: %w", err)
				}
				return map[string]any{"content": content}, nil
			},
		},
	}
}
