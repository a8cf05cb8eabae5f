package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "pdiflow" command. Without a
// subcommand it starts the guided session when attached to a terminal.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "pdiflow",
		Short:         "Guided individual development plan sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return cmd.Help()
			}
			return RunSession(app)
		},
	}

	root.AddCommand(
		newRunCmd(app),
		newAnswersCmd(app),
		newPersonCmd(app),
	)

	return root
}

func newRunCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start a development plan session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errors.New("a session needs an interactive terminal")
			}
			return RunSession(app)
		},
	}
}
