package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rcamargo/pdiflow/internal/cli/formatter"
	"github.com/rcamargo/pdiflow/internal/domain"
	"github.com/spf13/cobra"
)

const answerPreviewWidth = 60

func newAnswersCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "answers",
		Short: "Show the latest stored answers for a person",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return errors.New("--email is required")
			}
			latest, err := app.Answers.Latest(cmd.Context(), email)
			if err != nil {
				return fmt.Errorf("loading answers: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderAnswers(email, latest, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "person e-mail")
	return cmd
}

// renderAnswers lists every canonical information type with the latest
// stored value, its date, and how fresh it is.
func renderAnswers(email string, latest map[domain.InfoType]domain.Answer, today time.Time) string {
	rows := make([][]string, 0, len(domain.CanonicalInfoTypes))
	for _, info := range domain.CanonicalInfoTypes {
		a := latest[info]
		when := "—"
		if a.RecordedAt != nil {
			when = a.RecordedAt.Format("02/01/2006")
		}
		rows = append(rows, []string{
			string(info),
			formatter.Truncate(a.Text, answerPreviewWidth),
			when,
			formatter.FreshnessLabel(domain.Classify(a.Text, a.RecordedAt, today), domain.AgeDays(a.RecordedAt, today)),
		})
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Respostas de " + email))
	b.WriteString("\n")
	b.WriteString(formatter.RenderTable(
		[]string{"Informação", "Resposta", "Data", "Situação"},
		rows,
	))
	return b.String()
}
