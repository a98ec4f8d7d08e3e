package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/MuzzammilShah/pa-agent-cli/internal/ports"
	"github.com/spf13/cobra"
)

func newDocsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Generate project plans, report templates, and presentation outlines",
	}

	cmd.AddCommand(newDocsPlanCmd(app), newDocsReportCmd(app), newDocsSlidesCmd(app))

	return cmd
}

func newDocsPlanCmd(app *app) *cobra.Command {
	req := ports.ProjectPlanRequest{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a project plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generateDocument(cmd, app, "Generating project plan...", func(ctx context.Context) (string, error) {
				return app.client.Docs().ProjectPlan(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "Project title")
	cmd.Flags().StringVar(&req.Description, "description", "", "What the project is about")
	cmd.Flags().IntVar(&req.TimelineWeeks, "weeks", 4, "Timeline length in weeks")
	cmd.Flags().IntVar(&req.TeamSize, "team", 3, "Number of people on the team")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func newDocsReportCmd(app *app) *cobra.Command {
	var (
		req      ports.ReportTemplateRequest
		sections string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a report template",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sections != "" {
				req.Sections = splitSections(sections)
			}
			return generateDocument(cmd, app, "Generating report template...", func(ctx context.Context) (string, error) {
				return app.client.Docs().ReportTemplate(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&req.ReportType, "type", "", "Report type (technical, business, research, ...)")
	cmd.Flags().StringVar(&req.Topic, "topic", "", "What the report covers")
	cmd.Flags().StringVar(&sections, "sections", "", "Comma-separated section names")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("topic")

	return cmd
}

func newDocsSlidesCmd(app *app) *cobra.Command {
	req := ports.PresentationOutlineRequest{}

	cmd := &cobra.Command{
		Use:   "slides",
		Short: "Generate a presentation outline",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generateDocument(cmd, app, "Generating presentation outline...", func(ctx context.Context) (string, error) {
				return app.client.Docs().PresentationOutline(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "Presentation title")
	cmd.Flags().StringVar(&req.Audience, "audience", "", "Who the presentation is for")
	cmd.Flags().IntVar(&req.DurationMinutes, "minutes", 15, "Presentation length in minutes")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("audience")

	return cmd
}

func generateDocument(cmd *cobra.Command, app *app, label string, generate func(context.Context) (string, error)) error {
	var content string
	err := runWithSpinner(cmd.Context(), cmd.OutOrStdout(), label, func(ctx context.Context) error {
		var genErr error
		content, genErr = generate(ctx)
		return genErr
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), content)
	return nil
}

func splitSections(raw string) []string {
	parts := strings.Split(raw, ",")
	sections := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sections = append(sections, trimmed)
		}
	}
	return sections
}
