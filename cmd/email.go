package cmd

import (
	"context"
	"fmt"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newEmailCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Triage unread email with AI-drafted replies",
	}

	cmd.AddCommand(newEmailListCmd(app), newEmailReplyCmd(app), newEmailSendCmd(app))

	return cmd
}

func newEmailListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List unread emails",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var emails []domain.Email
			err := runWithSpinner(cmd.Context(), cmd.OutOrStdout(), "Fetching unread emails...", func(ctx context.Context) error {
				var fetchErr error
				emails, fetchErr = app.client.Email().Unread(ctx)
				return fetchErr
			})
			if err != nil {
				return err
			}

			printEmails(cmd, emails)
			return nil
		},
	}
}

func newEmailReplyCmd(app *app) *cobra.Command {
	var (
		messageID string
		tone      string
		send      bool
	)

	cmd := &cobra.Command{
		Use:   "reply",
		Short: "Draft an AI reply to an unread email",
		RunE: func(cmd *cobra.Command, _ []string) error {
			selectedTone := domain.Tone(tone)
			if !selectedTone.Valid() {
				return fmt.Errorf("unknown tone %q (professional, friendly, formal, casual, urgent)", tone)
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			var draft domain.DraftReply
			err := runWithSpinner(ctx, out, "Drafting reply...", func(ctx context.Context) error {
				var draftErr error
				draft, draftErr = app.client.Email().DraftReply(ctx, messageID, selectedTone)
				return draftErr
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, "To: %s\nSubject: %s\n\n%s\n", draft.To, draft.Subject, draft.Body)

			if !send {
				_, _ = fmt.Fprintln(out, "\nRe-run with --send to send this reply.")
				return nil
			}

			// Threading headers from the draft ride along unchanged so the
			// reply lands in the recipient's existing thread.
			outgoing := domain.OutgoingEmail{
				To:         draft.To,
				Subject:    draft.Subject,
				Body:       draft.Body,
				InReplyTo:  draft.InReplyTo,
				References: draft.References,
			}
			if err := app.client.Email().Send(ctx, outgoing); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, "\nReply sent.")

			return refreshUnread(cmd, app)
		},
	}

	cmd.Flags().StringVar(&messageID, "message", "", "ID of the unread message to reply to")
	cmd.Flags().StringVar(&tone, "tone", string(domain.ToneProfessional), "Reply tone (professional, friendly, formal, casual, urgent)")
	cmd.Flags().BoolVar(&send, "send", false, "Send the drafted reply immediately")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func newEmailSendCmd(app *app) *cobra.Command {
	var email domain.OutgoingEmail

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send an email",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.client.Email().Send(cmd.Context(), email); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Email sent.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email.To, "to", "", "Recipient address")
	cmd.Flags().StringVar(&email.Subject, "subject", "", "Subject line")
	cmd.Flags().StringVar(&email.Body, "body", "", "Message body")
	cmd.Flags().StringVar(&email.InReplyTo, "in-reply-to", "", "Message-ID this email replies to")
	cmd.Flags().StringVar(&email.References, "references", "", "References header for threading")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("body")

	return cmd
}

func refreshUnread(cmd *cobra.Command, app *app) error {
	emails, err := app.client.Email().Unread(cmd.Context())
	if err != nil {
		return err
	}
	printEmails(cmd, emails)
	return nil
}

func printEmails(cmd *cobra.Command, emails []domain.Email) {
	out := cmd.OutOrStdout()
	if len(emails) == 0 {
		_, _ = fmt.Fprintln(out, "No unread emails.")
		return
	}

	_, _ = fmt.Fprintf(out, "%d unread:\n", len(emails))
	for _, email := range emails {
		_, _ = fmt.Fprintf(out, "  [%s] %s - %s\n", email.ID, email.Sender, email.Subject)
		if email.Summary != "" {
			_, _ = fmt.Fprintf(out, "      %s\n", email.Summary)
		}
	}
}
