package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var errNoCode = errors.New("no code provided: pass --file or pipe code on stdin")

func newCodeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "code",
		Short: "AI code review, refactoring suggestions, and explanations",
	}

	cmd.AddCommand(newCodeReviewCmd(app), newCodeRefactorCmd(app), newCodeExplainCmd(app))

	return cmd
}

func newCodeReviewCmd(app *app) *cobra.Command {
	var (
		file     string
		language string
		focus    string
	)

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review code for issues",
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, err := readCode(cmd, file)
			if err != nil {
				return err
			}
			return runCodeRequest(cmd, app, "Reviewing code...", func(ctx context.Context) (string, error) {
				return app.client.Code().Review(ctx, code, language, focus)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the source file (omit to read stdin)")
	cmd.Flags().StringVar(&language, "language", "", "Source language")
	cmd.Flags().StringVar(&focus, "focus", "general", "Review focus (general, security, performance, readability)")
	_ = cmd.MarkFlagRequired("language")

	return cmd
}

func newCodeRefactorCmd(app *app) *cobra.Command {
	var (
		file     string
		language string
		goal     string
	)

	cmd := &cobra.Command{
		Use:   "refactor",
		Short: "Suggest refactorings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, err := readCode(cmd, file)
			if err != nil {
				return err
			}
			return runCodeRequest(cmd, app, "Analyzing code...", func(ctx context.Context) (string, error) {
				return app.client.Code().SuggestRefactoring(ctx, code, language, goal)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the source file (omit to read stdin)")
	cmd.Flags().StringVar(&language, "language", "", "Source language")
	cmd.Flags().StringVar(&goal, "goal", "", "What the refactoring should achieve")
	_ = cmd.MarkFlagRequired("language")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func newCodeExplainCmd(app *app) *cobra.Command {
	var (
		file        string
		language    string
		detailLevel string
	)

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Explain what code does",
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, err := readCode(cmd, file)
			if err != nil {
				return err
			}
			return runCodeRequest(cmd, app, "Explaining code...", func(ctx context.Context) (string, error) {
				return app.client.Code().Explain(ctx, code, language, detailLevel)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the source file (omit to read stdin)")
	cmd.Flags().StringVar(&language, "language", "", "Source language")
	cmd.Flags().StringVar(&detailLevel, "detail", "medium", "Explanation detail (low, medium, high)")
	_ = cmd.MarkFlagRequired("language")

	return cmd
}

// readCode loads the snippet from --file or stdin and rejects empty input
// locally, before any request goes out.
func readCode(cmd *cobra.Command, file string) (string, error) {
	var (
		raw []byte
		err error
	)

	if file != "" {
		raw, err = os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read source file: %w", err)
		}
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
	}

	code := string(raw)
	if strings.TrimSpace(code) == "" {
		return "", errNoCode
	}

	return code, nil
}

func runCodeRequest(cmd *cobra.Command, app *app, label string, request func(context.Context) (string, error)) error {
	var content string
	err := runWithSpinner(cmd.Context(), cmd.OutOrStdout(), label, func(ctx context.Context) error {
		var reqErr error
		content, reqErr = request(ctx)
		return reqErr
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), content)
	return nil
}
