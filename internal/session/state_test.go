package session

import (
	"testing"
	"time"

	"github.com/rcamargo/pdiflow/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCurrentStage_ProgressesForwardOnly(t *testing.T) {
	s := State{}
	assert.Equal(t, StageLogin, CurrentStage(s))

	s = NewState("ana@example.com", "id-ana", nil)
	assert.Equal(t, StageQuestions, CurrentStage(s))

	for _, info := range GatingInfo {
		s = s.WithAnswer(info, domain.Answer{Text: "valor"})
	}
	assert.Equal(t, StageDiagnostic, CurrentStage(s))

	s = s.WithDiagnosticDraft("rascunho")
	assert.Equal(t, StageDiagnostic, CurrentStage(s), "a draft alone does not advance the stage")

	s = s.WithDiagnosticSaved("diagnostico final")
	assert.Equal(t, StageCompetencies, CurrentStage(s))

	s = s.WithCompetencies("Comunicação", "")
	assert.Equal(t, StagePlan, CurrentStage(s))

	s = s.WithPlanDraft("plano")
	assert.Equal(t, StagePlan, CurrentStage(s))

	s = s.WithPlanAccepted()
	assert.Equal(t, StageFinalize, CurrentStage(s))

	s = s.WithFinalized("plano formatado", true)
	assert.Equal(t, StageDone, CurrentStage(s))
}

func TestCurrentStage_QuestionsUntilEveryGatingAnswerResolved(t *testing.T) {
	s := NewState("ana@example.com", "id-ana", nil)

	// Resolving three of four is not enough.
	for _, info := range GatingInfo[:3] {
		s = s.WithResolved(info)
	}
	assert.Equal(t, StageQuestions, CurrentStage(s))

	next, ok := s.NextQuestion()
	assert.True(t, ok)
	assert.Equal(t, GatingInfo[3], next)

	s = s.WithResolved(GatingInfo[3])
	assert.Equal(t, StageDiagnostic, CurrentStage(s))

	_, ok = s.NextQuestion()
	assert.False(t, ok)
}

func TestNextQuestion_FollowsGatingOrder(t *testing.T) {
	s := NewState("ana@example.com", "id-ana", nil)

	next, ok := s.NextQuestion()
	assert.True(t, ok)
	assert.Equal(t, domain.InfoStrengths, next)

	s = s.WithResolved(domain.InfoStrengths)
	next, _ = s.NextQuestion()
	assert.Equal(t, domain.InfoDevelopmentPoints, next)
}

func TestState_MutatorsDoNotAliasMaps(t *testing.T) {
	now := time.Now()
	base := NewState("ana@example.com", "id-ana", map[domain.InfoType]domain.Answer{
		domain.InfoStrengths: {Text: "original", RecordedAt: &now},
	})

	changed := base.WithAnswer(domain.InfoStrengths, domain.Answer{Text: "editado"})

	assert.Equal(t, "original", base.Answers[domain.InfoStrengths].Text)
	assert.Equal(t, "editado", changed.Answers[domain.InfoStrengths].Text)
	assert.False(t, base.Resolved[domain.InfoStrengths])
	assert.True(t, changed.Resolved[domain.InfoStrengths])
}

func TestState_RegenerationOverwritesOnlyDrafts(t *testing.T) {
	s := NewState("ana@example.com", "id-ana", nil)
	s = s.WithDiagnosticSaved("salvo")

	regenerated := s.WithDiagnosticDraft("nova tentativa")
	assert.Equal(t, "nova tentativa", regenerated.DiagnosticDraft)
	assert.True(t, regenerated.DiagnosticSaved)
}

func TestState_Competencies(t *testing.T) {
	s := NewState("ana@example.com", "id-ana", nil).WithCompetencies("Comunicação", "")
	assert.Equal(t, []string{"Comunicação"}, s.Competencies())

	s = s.WithCompetencies("Comunicação", "Liderança")
	assert.Equal(t, []string{"Comunicação", "Liderança"}, s.Competencies())
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "login", StageLogin.String())
	assert.Equal(t, "done", StageDone.String())
	assert.Equal(t, "unknown", Stage(42).String())
}
