package cmd

import (
	"errors"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// guardAuth wraps every handler under cmd with the shared mapping for
// authenticated calls: a 401 clears the stale session and asks the user
// to sign in again; a 403 gets the permission message, kept distinct from
// the 401 one.
func guardAuth(app *app, cmd *cobra.Command) *cobra.Command {
	if cmd.RunE != nil {
		inner := cmd.RunE
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return mapAuthError(app, cmd, inner(cmd, args))
		}
	}
	for _, sub := range cmd.Commands() {
		guardAuth(app, sub)
	}

	return cmd
}

func mapAuthError(app *app, cmd *cobra.Command, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrUnauthorized):
		if clearErr := app.store.Clear(cmd.Context()); clearErr != nil {
			app.logger.Debug("clear stale session", zap.Error(clearErr))
		}
		return errors.New("your session has expired, run 'pa login' to sign in again")
	case errors.Is(err, domain.ErrForbidden):
		return errors.New("the connected account lacks permission for this action; check its access and try again")
	default:
		return err
	}
}
