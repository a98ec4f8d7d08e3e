package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pa",
		Short:         "PA Agent (pa): your AI work assistant in the terminal",
		Long:          "pa (PA Agent - Work Buddy) talks to the PA Agent backend: triage email, manage your calendar, generate documents, review code, or just chat with the assistant.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newStatusCmd(app),
		guardAuth(app, newChatCmd(app)),
		guardAuth(app, newEmailCmd(app)),
		guardAuth(app, newCalendarCmd(app)),
		guardAuth(app, newDocsCmd(app)),
		guardAuth(app, newCodeCmd(app)),
	)

	return rootCmd
}
