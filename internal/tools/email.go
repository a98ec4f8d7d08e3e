package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
	"github.com/MuzzammilShah/pa-agent-cli/internal/ports"
)

func EmailTools(service ports.EmailService) []Descriptor {
	return []Descriptor{
		{
			Name:        "fetch_unread_emails",
			Description: "Fetch unread emails from the user's Gmail account",
			Schema: Schema{
				Type:       "object",
				Properties: map[string]Property{},
				Required:   []string{},
			},
			Execute: func(ctx context.Context, _ map[string]any) (any, error) {
				emails, err := service.Unread(ctx)
				if err != nil {
					return nil, fmt.Errorf("fetch unread emails: %w", err)
				}
				return map[string]any{"emails": emails}, nil
			},
		},
		{
			Name:        "draft_email_reply",
			Description: "Draft a reply to an email using AI",
			Schema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"messageId": {
						Type:        "string",
						Description: "The ID of the email to reply to",
					},
					"tone": {
						Type:        "string",
						Description: "The tone of the reply (professional, friendly, formal, etc.)",
						Enum:        []string{"professional", "friendly", "formal", "casual", "urgent"},
						Default:     "professional",
					},
				},
				Required: []string{"messageId"},
			},
			Execute: func(ctx context.Context, params map[string]any) (any, error) {
				messageID := stringParam(params, "messageId", "")
				if messageID == "" {
					return nil, errors.New("messageId is required")
				}
				tone := domain.Tone(stringParam(params, "tone", string(domain.ToneProfessional)))

				draft, err := service.DraftReply(ctx, messageID, tone)
				if err != nil {
					return nil, fmt.Errorf("draft email reply: %w", err)
				}
				return draft, nil
			},
		},
		{
			Name:        "send_email",
			Description: "Send an email via Gmail",
			Schema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"to":      {Type: "string", Description: "Recipient email address"},
					"subject": {Type: "string", Description: "Email subject"},
					"body":    {Type: "string", Description: "Email body content"},
				},
				Required: []string{"to", "subject", "body"},
			},
			Execute: func(ctx context.Context, params map[string]any) (any, error) {
				email := domain.OutgoingEmail{
					To:      stringParam(params, "to", ""),
					Subject: stringParam(params, "subject", ""),
					Body:    stringParam(params, "body", ""),
				}
				if email.To == "" || email.Subject == "" || email.Body == "" {
					return nil, errors.New("to, subject and body are required")
				}

				if err := service.Send(ctx, email); err != nil {
					return nil, fmt.Errorf("send email: %w", err)
				}
				return map[string]any{"sent": true}, nil
			},
		},
	}
}
