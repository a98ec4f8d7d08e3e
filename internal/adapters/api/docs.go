package api

import (
	"context"
	"fmt"

	"github.com/MuzzammilShah/pa-agent-cli/internal/ports"
)

type DocsAPI struct {
	client *Client
}

var _ ports.DocsService = (*DocsAPI)(nil)

type contentPayload struct {
	Content string `json:"content"`
}

func (d *DocsAPI) ProjectPlan(ctx context.Context, req ports.ProjectPlanRequest) (string, error) {
	request := map[string]any{
		"project_title":       req.Title,
		"project_description": req.Description,
		"timeline_weeks":      req.TimelineWeeks,
		"team_size":           req.TeamSize,
	}

	var payload contentPayload
	if err := d.client.post(ctx, "/docs/project-plan", request, &payload); err != nil {
		return "", fmt.Errorf("generate project plan: %w", err)
	}

	return payload.Content, nil
}

func (d *DocsAPI) ReportTemplate(ctx context.Context, req ports.ReportTemplateRequest) (string, error) {
	request := map[string]any{
		"report_type":  req.ReportType,
		"report_topic": req.Topic,
	}
	if len(req.Sections) > 0 {
		request["sections"] = req.Sections
	}

	var payload contentPayload
	if err := d.client.post(ctx, "/docs/report-template", request, &payload); err != nil {
		return "", fmt.Errorf("generate report template: %w", err)
	}

	return payload.Content, nil
}

func (d *DocsAPI) PresentationOutline(ctx context.Context, req ports.PresentationOutlineRequest) (string, error) {
	request := map[string]any{
		"presentation_title": req.Title,
		"audience":           req.Audience,
		"duration_minutes":   req.DurationMinutes,
	}

	var payload contentPayload
	if err := d.client.post(ctx, "/docs/presentation-outline", request, &payload); err != nil {
		return "", fmt.Errorf("generate presentation outline: %w", err)
	}

	return payload.Content, nil
}
