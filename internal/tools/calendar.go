package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/MuzzammilShah/pa-agent-cli/internal/ports"
)

func CalendarTools(service ports.CalendarService) []Descriptor {
	return []Descriptor{
		{
			Name:        "fetch_calendar_events",
			Description: "Fetch upcoming calendar events from Google Calendar",
			Schema: Schema{
				Type:       "object",
				Properties: map[string]Property{},
				Required:   []string{},
			},
			Execute: func(ctx context.Context, _ map[string]any) (any, error) {
				events, err := service.Events(ctx)
				if err != nil {
					return nil, fmt.Errorf("fetch calendar events: %w", err)
				}
				return map[string]any{"events": events}, nil
			},
		},
		{
			Name:        "create_calendar_event",
			Description: "Create a calendar event from natural language description",
			Schema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"description": {
						Type:        "string",
						Description: `Natural language description of the event (e.g., "Meeting with John about project tomorrow at 3pm")`,
					},
				},
				Required: []string{"description"},
			},
			Execute: func(ctx context.Context, params map[string]any) (any, error) {
				description := stringParam(params, "description", "")
				if description == "" {
					return nil, errors.New("description is required")
				}

				event, message, err := service.CreateEvent(ctx, description)
				if err != nil {
					return nil, fmt.Errorf("create calendar event: %w", err)
				}

				result := map[string]any{}
				if event != nil {
					result["event"] = *event
				}
				if message != "" {
					result["message"] = message
				}
				return result, nil
			},
		},
	}
}
