package cli

import (
	"errors"
	"fmt"

	"github.com/rcamargo/pdiflow/internal/domain"
	"github.com/spf13/cobra"
)

func newPersonCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Manage the active-people registry",
	}
	cmd.AddCommand(newPersonAddCmd(app))
	return cmd
}

// newPersonAddCmd registers or updates a person so they can log in.
func newPersonAddCmd(app *App) *cobra.Command {
	var (
		email   string
		id      string
		summary string
		role    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register or update a person",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || id == "" {
				return errors.New("--email and --id are required")
			}
			p := domain.Person{Email: email, Secret: id, Summary: summary, Role: role}
			if err := app.Persons.Upsert(cmd.Context(), &p); err != nil {
				return fmt.Errorf("saving person: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pessoa %s registrada.\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "person e-mail (login)")
	cmd.Flags().StringVar(&id, "id", "", "person identifier, used as the access code")
	cmd.Flags().StringVar(&summary, "summary", "", "short profile summary used in prompts")
	cmd.Flags().StringVar(&role, "role", "", "current role")

	return cmd
}
