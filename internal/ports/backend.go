package ports

import (
	"context"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
)

// Backend service groups, one per API domain. Every call is a single fresh
// request against the remote assistant backend.

type AuthService interface {
	LoginURL(ctx context.Context) (string, error)
	ExchangeCode(ctx context.Context, code string) (domain.Session, error)
	Verify(ctx context.Context) (domain.UserInfo, error)
	Logout(ctx context.Context) error
}

type EmailService interface {
	Unread(ctx context.Context) ([]domain.Email, error)
	DraftReply(ctx context.Context, messageID string, tone domain.Tone) (domain.DraftReply, error)
	Send(ctx context.Context, email domain.OutgoingEmail) error
}

type CalendarService interface {
	Events(ctx context.Context) ([]domain.Event, error)
	// CreateEvent turns one natural-language description into an event. The
	// backend may return the created event, a plain confirmation message, or
	// both.
	CreateEvent(ctx context.Context, description string) (*domain.Event, string, error)
}

type ProjectPlanRequest struct {
	Title         string
	Description   string
	TimelineWeeks int
	TeamSize      int
}

type ReportTemplateRequest struct {
	ReportType string
	Topic      string
	Sections   []string
}

type PresentationOutlineRequest struct {
	Title           string
	Audience        string
	DurationMinutes int
}

type DocsService interface {
	ProjectPlan(ctx context.Context, req ProjectPlanRequest) (string, error)
	ReportTemplate(ctx context.Context, req ReportTemplateRequest) (string, error)
	PresentationOutline(ctx context.Context, req PresentationOutlineRequest) (string, error)
}

type CodeService interface {
	Review(ctx context.Context, code, language, focus string) (string, error)
	SuggestRefactoring(ctx context.Context, code, language, goal string) (string, error)
	Explain(ctx context.Context, code, language, detailLevel string) (string, error)
}

// AssistantTurn is one model response in the tool-calling variant: either
// final text, or a batch of requested tool invocations, or both.
type AssistantTurn struct {
	Content   string
	ToolCalls []domain.ToolCall
}

type ChatService interface {
	// Complete sends the full history to the plain chat endpoint and
	// returns exactly one assistant reply.
	Complete(ctx context.Context, messages []domain.ChatMessage) (string, error)
	// CompleteWithTools sends the history plus tool specs to the
	// tool-call-capable endpoint.
	CompleteWithTools(ctx context.Context, messages []domain.ChatMessage, tools []ToolSpec) (AssistantTurn, error)
}

// ToolSpec is the wire description of a callable tool as advertised to the
// model. Parameters holds a JSON Schema object.
type ToolSpec struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  any    `json:"parameters"`
}
