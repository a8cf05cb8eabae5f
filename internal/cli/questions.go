package cli

import (
	"fmt"

	"github.com/rcamargo/pdiflow/internal/domain"
)

// questionLabels maps each gating info type to the wording shown to the
// person, as the form has always asked them.
var questionLabels = map[domain.InfoType]string{
	domain.InfoStrengths:         "Aponte resumidamente seus principais pontos fortes:",
	domain.InfoDevelopmentPoints: "Resumidamente, em quais pontos você precisa se desenvolver?",
	domain.InfoCareerObjectives:  "Resuma seus principais objetivos de carreira (6–12 meses):",
	domain.InfoRoleTasks:         "Descreva suas tarefas mais importantes, destacando as que tem mais facilidade e as que tem mais dificuldade:",
}

// staleQuestionTitle frames a previously answered question whose answer
// aged past the refresh threshold.
func staleQuestionTitle(label string, ageDays *int) string {
	if ageDays == nil {
		return fmt.Sprintf("%s\n(Dado anterior sem data conhecida.) Digite 'sim' se continua válido ou atualize abaixo:", label)
	}
	return fmt.Sprintf("%s\n(Dado anterior tem %d dias.) Digite 'sim' se continua válido ou atualize abaixo:", label, *ageDays)
}

const (
	loginFailedNotice = "E-mail ou ID não conferem. Verifique seu código de acesso ou contate o time de desenvolvimento."
	emptyGenNotice    = "A geração não retornou conteúdo. Tente novamente."
)
