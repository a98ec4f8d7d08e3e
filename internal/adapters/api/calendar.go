package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
	"github.com/MuzzammilShah/pa-agent-cli/internal/ports"
)

type CalendarAPI struct {
	client *Client
}

var _ ports.CalendarService = (*CalendarAPI)(nil)

type eventPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (e *eventPayload) toDomain() *domain.Event {
	if e == nil {
		return nil
	}
	return &domain.Event{
		ID:          e.ID,
		Title:       e.Title,
		Start:       e.Start,
		End:         e.End,
		Location:    e.Location,
		Description: e.Description,
	}
}

func (c *CalendarAPI) Events(ctx context.Context) ([]domain.Event, error) {
	var payload struct {
		Events []eventPayload `json:"events"`
	}
	if err := c.client.get(ctx, "/calendar/events", &payload); err != nil {
		return nil, fmt.Errorf("fetch calendar events: %w", err)
	}

	events := make([]domain.Event, 0, len(payload.Events))
	for i := range payload.Events {
		events = append(events, *payload.Events[i].toDomain())
	}

	return events, nil
}

func (c *CalendarAPI) CreateEvent(ctx context.Context, description string) (*domain.Event, string, error) {
	if description == "" {
		return nil, "", errors.New("event description is required")
	}

	request := map[string]any{"description": description}
	var payload struct {
		Event   *eventPayload `json:"event"`
		Message string        `json:"message"`
	}
	if err := c.client.post(ctx, "/calendar/create-event", request, &payload); err != nil {
		return nil, "", fmt.Errorf("create calendar event: %w", err)
	}

	return payload.Event.toDomain(), payload.Message, nil
}
