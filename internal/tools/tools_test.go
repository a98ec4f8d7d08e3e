package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
	"github.com/MuzzammilShah/pa-agent-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmailService struct {
	unread       []domain.Email
	unreadErr    error
	draft        domain.DraftReply
	draftErr     error
	gotMessageID string
	gotTone      domain.Tone
	sent         []domain.OutgoingEmail
}

func (f *fakeEmailService) Unread(context.Context) ([]domain.Email, error) {
	return f.unread, f.unreadErr
}

func (f *fakeEmailService) DraftReply(_ context.Context, messageID string, tone domain.Tone) (domain.DraftReply, error) {
	f.gotMessageID = messageID
	f.gotTone = tone
	return f.draft, f.draftErr
}

func (f *fakeEmailService) Send(_ context.Context, email domain.OutgoingEmail) error {
	f.sent = append(f.sent, email)
	return nil
}

type fakeCalendarService struct {
	events         []domain.Event
	created        *domain.Event
	message        string
	gotDescription string
}

func (f *fakeCalendarService) Events(context.Context) ([]domain.Event, error) {
	return f.events, nil
}

func (f *fakeCalendarService) CreateEvent(_ context.Context, description string) (*domain.Event, string, error) {
	f.gotDescription = description
	return f.created, f.message, nil
}

type fakeDocsService struct {
	content    string
	err        error
	gotPlan    ports.ProjectPlanRequest
	gotReport  ports.ReportTemplateRequest
	gotOutline ports.PresentationOutlineRequest
}

func (f *fakeDocsService) ProjectPlan(_ context.Context, req ports.ProjectPlanRequest) (string, error) {
	f.gotPlan = req
	return f.content, f.err
}

func (f *fakeDocsService) ReportTemplate(_ context.Context, req ports.ReportTemplateRequest) (string, error) {
	f.gotReport = req
	return f.content, f.err
}

func (f *fakeDocsService) PresentationOutline(_ context.Context, req ports.PresentationOutlineRequest) (string, error) {
	f.gotOutline = req
	return f.content, f.err
}

type fakeCodeService struct {
	content  string
	gotCode  string
	gotLang  string
	gotExtra string
}

func (f *fakeCodeService) Review(_ context.Context, code, language, focus string) (string, error) {
	f.gotCode, f.gotLang, f.gotExtra = code, language, focus
	return f.content, nil
}

func (f *fakeCodeService) SuggestRefactoring(_ context.Context, code, language, goal string) (string, error) {
	f.gotCode, f.gotLang, f.gotExtra = code, language, goal
	return f.content, nil
}

func (f *fakeCodeService) Explain(_ context.Context, code, language, detailLevel string) (string, error) {
	f.gotCode, f.gotLang, f.gotExtra = code, language, detailLevel
	return f.content, nil
}

func dispatchOn(t *testing.T, group []Descriptor, name string, params map[string]any) any {
	t.Helper()

	registry, err := NewRegistry(group)
	require.NoError(t, err)

	return registry.Dispatch(context.Background(), name, params)
}

func TestDefaultRegistryHasUniqueNames(t *testing.T) {
	registry, err := DefaultRegistry(&fakeEmailService{}, &fakeCalendarService{}, &fakeDocsService{}, &fakeCodeService{})
	require.NoError(t, err)

	names := registry.Names()
	assert.Len(t, names, 11)

	seen := make(map[string]struct{})
	for _, name := range names {
		_, dup := seen[name]
		assert.False(t, dup, "duplicate tool name %q", name)
		seen[name] = struct{}{}
	}
}

func TestDraftEmailReplyDefaultsToProfessionalTone(t *testing.T) {
	service := &fakeEmailService{draft: domain.DraftReply{Body: "ok"}}

	result := dispatchOn(t, EmailTools(service), "draft_email_reply", map[string]any{
		"messageId": "msg-1",
	})

	assert.Equal(t, domain.DraftReply{Body: "ok"}, result)
	assert.Equal(t, "msg-1", service.gotMessageID)
	assert.Equal(t, domain.ToneProfessional, service.gotTone)
}

func TestDraftEmailReplyWithoutMessageIDReturnsErrorPayload(t *testing.T) {
	result := dispatchOn(t, EmailTools(&fakeEmailService{}), "draft_email_reply", map[string]any{})

	payload, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, payload["error"], "messageId is required")
}

func TestFetchUnreadEmailsContainsServiceFailure(t *testing.T) {
	service := &fakeEmailService{unreadErr: errors.New("gmail unavailable")}

	result := dispatchOn(t, EmailTools(service), "fetch_unread_emails", nil)

	payload, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, payload["error"], "gmail unavailable")
}

func TestCreateCalendarEventReturnsEventAndMessage(t *testing.T) {
	service := &fakeCalendarService{
		created: &domain.Event{ID: "ev-1", Title: "Standup"},
		message: "Event created",
	}

	result := dispatchOn(t, CalendarTools(service), "create_calendar_event", map[string]any{
		"description": "standup tomorrow at 9am",
	})

	payload, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, domain.Event{ID: "ev-1", Title: "Standup"}, payload["event"])
	assert.Equal(t, "Event created", payload["message"])
	assert.Equal(t, "standup tomorrow at 9am", service.gotDescription)
}

func TestGenerateProjectPlanAppliesNumericDefaults(t *testing.T) {
	service := &fakeDocsService{content: "# Plan"}

	result := dispatchOn(t, DocsTools(service), "generate_project_plan", map[string]any{
		"title":       "Migration",
		"description": "Move the monolith",
	})

	assert.Equal(t, map[string]any{"content": "# Plan"}, result)
	assert.Equal(t, ports.ProjectPlanRequest{
		Title:         "Migration",
		Description:   "Move the monolith",
		TimelineWeeks: 4,
		TeamSize:      3,
	}, service.gotPlan)
}

func TestGenerateProjectPlanReadsJSONNumbers(t *testing.T) {
	service := &fakeDocsService{content: "# Plan"}

	dispatchOn(t, DocsTools(service), "generate_project_plan", map[string]any{
		"title":         "Migration",
		"description":   "Move the monolith",
		"timelineWeeks": float64(8),
		"teamSize":      float64(5),
	})

	assert.Equal(t, 8, service.gotPlan.TimelineWeeks)
	assert.Equal(t, 5, service.gotPlan.TeamSize)
}

func TestGenerateReportTemplateForwardsSections(t *testing.T) {
	service := &fakeDocsService{content: "# Report"}

	dispatchOn(t, DocsTools(service), "generate_report_template", map[string]any{
		"reportType": "technical",
		"topic":      "incident",
		"sections":   []any{"summary", "timeline"},
	})

	assert.Equal(t, []string{"summary", "timeline"}, service.gotReport.Sections)
}

func TestReviewCodeDefaultsFocusToGeneral(t *testing.T) {
	service := &fakeCodeService{content: "looks fine"}

	result := dispatchOn(t, CodeTools(service), "review_code", map[string]any{
		"code":     "package main",
		"language": "go",
	})

	assert.Equal(t, map[string]any{"content": "looks fine"}, result)
	assert.Equal(t, "general", service.gotExtra)
}

func TestSuggestRefactoringRequiresGoal(t *testing.T) {
	result := dispatchOn(t, CodeTools(&fakeCodeService{}), "suggest_refactoring", map[string]any{
		"code":     "package main",
		"language": "go",
	})

	payload, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, payload["error"], "goal")
}
