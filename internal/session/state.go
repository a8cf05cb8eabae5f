package session

import (
	"github.com/rcamargo/pdiflow/internal/domain"
)

// Stage identifies where in the development-plan flow a session is.
// Stages are forward-only: each is entered once its predecessors have
// been completed, and the current one is recomputed from the snapshot
// on every render rather than tracked as mutable state.
type Stage int

const (
	StageLogin Stage = iota
	StageQuestions
	StageDiagnostic
	StageCompetencies
	StagePlan
	StageFinalize
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageLogin:
		return "login"
	case StageQuestions:
		return "questions"
	case StageDiagnostic:
		return "diagnostic"
	case StageCompetencies:
		return "competencies"
	case StagePlan:
		return "plan"
	case StageFinalize:
		return "finalize"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// GatingInfo lists the info types that must be resolved, in order,
// before a diagnostic can be generated.
var GatingInfo = []domain.InfoType{
	domain.InfoStrengths,
	domain.InfoDevelopmentPoints,
	domain.InfoCareerObjectives,
	domain.InfoRoleTasks,
}

// State is an immutable snapshot of one person's session. Mutating
// methods return a copy; callers replace their snapshot wholesale.
type State struct {
	Email    string
	PersonID string

	// Latest answer per info type, stored values overlaid with
	// anything entered during this session.
	Answers map[domain.InfoType]domain.Answer

	// Gating info types the person has dealt with this session,
	// whether by entering a value, confirming a stale one, or
	// adopting a fresh one.
	Resolved map[domain.InfoType]bool

	DiagnosticDraft string
	DiagnosticSaved bool

	Competency1       string
	Competency2       string
	CompetenciesSaved bool

	PlanDraft    string
	PlanAccepted bool

	Finalized     bool
	FormattedPlan string
	MailSent      bool
}

// NewState builds the initial snapshot from the stored answers.
func NewState(email, personID string, stored map[domain.InfoType]domain.Answer) State {
	s := State{Email: email, PersonID: personID}
	s.Answers = make(map[domain.InfoType]domain.Answer, len(stored))
	for k, v := range stored {
		s.Answers[k] = v
	}
	s.Resolved = make(map[domain.InfoType]bool)
	return s
}

func (s State) clone() State {
	answers := make(map[domain.InfoType]domain.Answer, len(s.Answers))
	for k, v := range s.Answers {
		answers[k] = v
	}
	resolved := make(map[domain.InfoType]bool, len(s.Resolved))
	for k, v := range s.Resolved {
		resolved[k] = v
	}
	s.Answers = answers
	s.Resolved = resolved
	return s
}

// WithAnswer records a value entered this session for info and marks
// it resolved.
func (s State) WithAnswer(info domain.InfoType, a domain.Answer) State {
	c := s.clone()
	c.Answers[info] = a
	c.Resolved[info] = true
	return c
}

// WithResolved marks info as dealt with without changing its value,
// as when a fresh answer is adopted or a stale one confirmed.
func (s State) WithResolved(info domain.InfoType) State {
	c := s.clone()
	c.Resolved[info] = true
	return c
}

// WithDiagnosticDraft overwrites only the unsaved diagnostic text, so
// regeneration never clobbers a saved diagnostic.
func (s State) WithDiagnosticDraft(text string) State {
	c := s.clone()
	c.DiagnosticDraft = text
	return c
}

func (s State) WithDiagnosticSaved(text string) State {
	c := s.clone()
	c.DiagnosticDraft = text
	c.DiagnosticSaved = true
	return c
}

func (s State) WithCompetencies(first, second string) State {
	c := s.clone()
	c.Competency1 = first
	c.Competency2 = second
	c.CompetenciesSaved = true
	return c
}

func (s State) WithPlanDraft(text string) State {
	c := s.clone()
	c.PlanDraft = text
	return c
}

func (s State) WithPlanAccepted() State {
	c := s.clone()
	c.PlanAccepted = true
	return c
}

func (s State) WithFinalized(formatted string, mailSent bool) State {
	c := s.clone()
	c.Finalized = true
	c.FormattedPlan = formatted
	c.MailSent = mailSent
	return c
}

// NextQuestion returns the first gating info type not yet resolved.
func (s State) NextQuestion() (domain.InfoType, bool) {
	for _, info := range GatingInfo {
		if !s.Resolved[info] {
			return info, true
		}
	}
	return "", false
}

// Competencies returns the selected competencies, dropping the blank
// optional slot.
func (s State) Competencies() []string {
	out := []string{s.Competency1}
	if s.Competency2 != "" {
		out = append(out, s.Competency2)
	}
	return out
}

// CurrentStage derives the active stage from the snapshot alone.
func CurrentStage(s State) Stage {
	switch {
	case s.Email == "" || s.PersonID == "":
		return StageLogin
	case !allResolved(s):
		return StageQuestions
	case !s.DiagnosticSaved:
		return StageDiagnostic
	case !s.CompetenciesSaved:
		return StageCompetencies
	case !s.PlanAccepted:
		return StagePlan
	case !s.Finalized:
		return StageFinalize
	default:
		return StageDone
	}
}

func allResolved(s State) bool {
	for _, info := range GatingInfo {
		if !s.Resolved[info] {
			return false
		}
	}
	return true
}
