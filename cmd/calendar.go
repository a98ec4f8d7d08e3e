package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "View events and create them from natural language",
	}

	cmd.AddCommand(newCalendarListCmd(app), newCalendarCreateCmd(app))

	return cmd
}

func newCalendarListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List upcoming events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var events []domain.Event
			err := runWithSpinner(cmd.Context(), cmd.OutOrStdout(), "Fetching events...", func(ctx context.Context) error {
				var fetchErr error
				events, fetchErr = app.client.Calendar().Events(ctx)
				return fetchErr
			})
			if err != nil {
				return err
			}

			printEvents(cmd, events)
			return nil
		},
	}
}

func newCalendarCreateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create <description>",
		Short: "Create an event from a natural-language description",
		Long:  "Create an event from plain English, for example: pa calendar create \"lunch with Sam next Tuesday at noon\".",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			event, message, err := app.client.Calendar().CreateEvent(ctx, description)
			if err != nil {
				return err
			}

			switch {
			case event != nil:
				_, _ = fmt.Fprintf(out, "Created: %s\n", formatEvent(*event))
			case message != "":
				_, _ = fmt.Fprintln(out, message)
			default:
				_, _ = fmt.Fprintln(out, "Event created.")
			}

			// Refetch so the listing reflects what the backend actually
			// stored, not what we think it stored.
			events, err := app.client.Calendar().Events(ctx)
			if err != nil {
				return err
			}
			printEvents(cmd, events)
			return nil
		},
	}
}

func printEvents(cmd *cobra.Command, events []domain.Event) {
	out := cmd.OutOrStdout()
	if len(events) == 0 {
		_, _ = fmt.Fprintln(out, "No upcoming events.")
		return
	}

	_, _ = fmt.Fprintf(out, "%d upcoming:\n", len(events))
	for _, event := range events {
		_, _ = fmt.Fprintf(out, "  %s\n", formatEvent(event))
	}
}

func formatEvent(event domain.Event) string {
	var b strings.Builder
	b.WriteString(event.Title)
	if event.Start != "" {
		b.WriteString(" at ")
		b.WriteString(event.Start)
	}
	if event.Location != "" {
		b.WriteString(" (")
		b.WriteString(event.Location)
		b.WriteString(")")
	}
	return b.String()
}
