package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/MuzzammilShah/pa-agent-cli/internal/ports"
)

func DocsTools(service ports.DocsService) []Descriptor {
	return []Descriptor{
		{
			Name:        "generate_project_plan",
			Description: "Generate a project plan from a brief description",
			Schema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"title":       {Type: "string", Description: "Project title"},
					"description": {Type: "string", Description: "Brief project description"},
					"timelineWeeks": {
						Type:        "number",
						Description: "Project timeline in weeks",
						Default:     4,
					},
					"teamSize": {
						Type:        "number",
						Description: "Team size (number of people)",
						Default:     3,
					},
				},
				Required: []string{"title", "description"},
			},
			Execute: func(ctx context.Context, params map[string]any) (any, error) {
				req := ports.ProjectPlanRequest{
					Title:         stringParam(params, "title", ""),
					Description:   stringParam(params, "description", ""),
					TimelineWeeks: intParam(params, "timelineWeeks", 4),
					TeamSize:      intParam(params, "teamSize", 3),
				}
				if req.Title == "" || req.Description == "" {
					return nil, errors.New("title and description are required")
				}

				content, err := service.ProjectPlan(ctx, req)
				if err != nil {
					return nil, fmt.Errorf("generate project plan: %w", err)
				}
				return map[string]any{"content": content}, nil
			},
		},
		{
			Name:        "generate_report_template",
			Description: "Generate a report template with structure and placeholders",
			Schema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"reportType": {
						Type:        "string",
						Description: "Type of report (e.g., technical, business, research)",
					},
					"topic": {Type: "string", Description: "Report topic or subject"},
					"sections": {
						Type:        "array",
						Items:       &Property{Type: "string"},
						Description: "Custom sections to include in the report (optional)",
					},
				},
				Required: []string{"reportType", "topic"},
			},
			Execute: func(ctx context.Context, params map[string]any) (any, error) {
				req := ports.ReportTemplateRequest{
					ReportType: stringParam(params, "reportType", ""),
					Topic:      stringParam(params, "topic", ""),
					Sections:   stringSliceParam(params, "sections"),
				}
				if req.ReportType == "" || req.Topic == "" {
					return nil, errors.New("reportType and topic are required")
				}

				content, err := service.ReportTemplate(ctx, req)
				if err != nil {
					return nil, fmt.Errorf("generate report template: %w", err)
				}
				return map[string]any{"content": content}, nil
			},
		},
		{
			Name:        "generate_presentation_outline",
			Description: "Generate a presentation outline with slide suggestions",
			Schema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"title": {Type: "string", Description: "Presentation title"},
					"audience": {
						Type:        "string",
						Description: "Target audience (e.g., executives, technical team, customers)",
					},
					"durationMinutes": {
						Type:        "number",
						Description: "Presentation duration in minutes",
						Default:     15,
					},
				},
				Required: []string{"title", "audience"},
			},
			Execute: func(ctx context.Context, params map[string]any) (any, error) {
				req := ports.PresentationOutlineRequest{
					Title:           stringParam(params, "title", ""),
					Audience:        stringParam(params, "audience", ""),
					DurationMinutes: intParam(params, "durationMinutes", 15),
				}
				if req.Title == "" || req.Audience == "" {
					return nil, errors.New("title and audience are required")
				}

				content, err := service.PresentationOutline(ctx, req)
				if err != nil {
					return nil, fmt.Errorf("generate presentation outline: %w", err)
				}
				return map[string]any{"content": content}, nil
			},
		},
	}
}
