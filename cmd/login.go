package cmd

import (
	"fmt"
	"net/url"

	"github.com/MuzzammilShah/pa-agent-cli/internal/adapters/callback"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in with your work account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLogin(cmd, app)
		},
	}
}

func runLogin(cmd *cobra.Command, app *app) error {
	ctx := cmd.Context()

	authURL, err := app.client.Auth().LoginURL(ctx)
	if err != nil {
		return err
	}

	server, err := callback.Start(app.callbackListen)
	if err != nil {
		return fmt.Errorf("start callback server: %w", err)
	}

	// The backend's auth_url targets its own web redirect; point the
	// provider at the local listener instead.
	authURL = rewriteRedirectURI(authURL, server.RedirectURI())

	app.flow.Begin()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Open this URL to sign in:\n%s\n\n", authURL)
	_, _ = fmt.Fprintln(out, "Waiting for the browser redirect...")

	result, err := server.Wait(app.loginTimeout)
	if err != nil {
		return fmt.Errorf("wait for oauth callback: %w", err)
	}

	if result.ProviderError != "" {
		app.flow.HandleProviderError(result.ProviderError)
		return fmt.Errorf("provider rejected the login: %s", result.ProviderError)
	}

	if err := app.flow.SubmitCode(ctx, result.Code); err != nil {
		return err
	}

	user, err := app.flow.VerifySession(ctx)
	if err != nil {
		return fmt.Errorf("verify new session: %w", err)
	}

	name := user.Name
	if name == "" {
		name = user.Email
	}
	_, _ = fmt.Fprintf(out, "Signed in as %s.\n\n", name)
	_, _ = fmt.Fprintln(out, "PA Agent can help you with:")
	_, _ = fmt.Fprintln(out, "  - Email triage and AI-drafted replies (pa email)")
	_, _ = fmt.Fprintln(out, "  - Calendar events from natural language (pa calendar)")
	_, _ = fmt.Fprintln(out, "  - Project plans, reports, and slides (pa docs)")
	_, _ = fmt.Fprintln(out, "  - Code review, refactoring, and explanations (pa code)")
	_, _ = fmt.Fprintln(out, "  - Free-form chat with tools (pa chat)")
	return nil
}

func rewriteRedirectURI(authURL, redirectURI string) string {
	parsed, err := url.Parse(authURL)
	if err != nil {
		return authURL
	}

	query := parsed.Query()
	query.Set("redirect_uri", redirectURI)
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
