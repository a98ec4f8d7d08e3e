package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
	"github.com/MuzzammilShah/pa-agent-cli/internal/ports"
)

type EmailAPI struct {
	client *Client
}

var _ ports.EmailService = (*EmailAPI)(nil)

func (e *EmailAPI) Unread(ctx context.Context) ([]domain.Email, error) {
	var payload struct {
		Emails []struct {
			ID      string `json:"id"`
			Sender  string `json:"sender"`
			Subject string `json:"subject"`
			Summary string `json:"summary"`
		} `json:"emails"`
	}
	if err := e.client.get(ctx, "/email/unread", &payload); err != nil {
		return nil, fmt.Errorf("fetch unread emails: %w", err)
	}

	emails := make([]domain.Email, 0, len(payload.Emails))
	for _, entry := range payload.Emails {
		emails = append(emails, domain.Email{
			ID:      entry.ID,
			Sender:  entry.Sender,
			Subject: entry.Subject,
			Summary: entry.Summary,
		})
	}

	return emails, nil
}

func (e *EmailAPI) DraftReply(ctx context.Context, messageID string, tone domain.Tone) (domain.DraftReply, error) {
	if messageID == "" {
		return domain.DraftReply{}, errors.New("message id is required")
	}
	if tone == "" {
		tone = domain.ToneProfessional
	}

	request := map[string]any{
		"message_id": messageID,
		"tone":       string(tone),
	}
	// Older backend generations return the draft body under "reply", newer
	// ones under "draft_reply". Accept either.
	var payload struct {
		Reply      string `json:"reply"`
		DraftReply string `json:"draft_reply"`
		To         string `json:"to"`
		Subject    string `json:"subject"`
		InReplyTo  string `json:"in_reply_to"`
		References string `json:"references"`
	}
	if err := e.client.post(ctx, "/email/draft-reply", request, &payload); err != nil {
		return domain.DraftReply{}, fmt.Errorf("draft reply: %w", err)
	}

	body := payload.Reply
	if body == "" {
		body = payload.DraftReply
	}
	if body == "" {
		return domain.DraftReply{}, domain.ErrNoReplyGenerated
	}

	return domain.DraftReply{
		Body:       body,
		To:         payload.To,
		Subject:    payload.Subject,
		InReplyTo:  payload.InReplyTo,
		References: payload.References,
	}, nil
}

func (e *EmailAPI) Send(ctx context.Context, email domain.OutgoingEmail) error {
	request := map[string]any{
		"to":      email.To,
		"subject": email.Subject,
		"body":    email.Body,
	}
	if email.InReplyTo != "" {
		request["in_reply_to"] = email.InReplyTo
	}
	if email.References != "" {
		request["references"] = email.References
	}

	if err := e.client.post(ctx, "/email/send", request, nil); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}
