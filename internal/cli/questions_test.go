package cli

import (
	"testing"

	"github.com/rcamargo/pdiflow/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestQuestionLabels_CoverEveryGatingInfoType(t *testing.T) {
	for _, info := range []domain.InfoType{
		domain.InfoStrengths,
		domain.InfoDevelopmentPoints,
		domain.InfoCareerObjectives,
		domain.InfoRoleTasks,
	} {
		assert.NotEmpty(t, questionLabels[info], string(info))
	}
}

func TestStaleQuestionTitle(t *testing.T) {
	age := 200
	title := staleQuestionTitle("Pergunta:", &age)
	assert.Contains(t, title, "Pergunta:")
	assert.Contains(t, title, "tem 200 dias")
	assert.Contains(t, title, "'sim'")

	title = staleQuestionTitle("Pergunta:", nil)
	assert.Contains(t, title, "sem data conhecida")
}
