package cmd

import (
	"errors"
	"fmt"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.flow.VerifySession(cmd.Context())
			if errors.Is(err, domain.ErrNoSession) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Not signed in. Run 'pa login' to get started.")
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if user.Name != "" {
				_, _ = fmt.Fprintf(out, "Signed in as %s (%s)\n", user.Name, user.Email)
			} else {
				_, _ = fmt.Fprintf(out, "Signed in as %s\n", user.Email)
			}
			return nil
		},
	}
}
