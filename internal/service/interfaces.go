package service

import (
	"context"
	"errors"

	"github.com/rcamargo/pdiflow/internal/domain"
	"github.com/rcamargo/pdiflow/internal/prompt"
)

// ErrEmptyGeneration indicates the external service answered without
// usable text. Callers warn and keep the previous state.
var ErrEmptyGeneration = errors.New("generation returned no content")

// AuthService authorizes a session.
type AuthService interface {
	// Authenticate succeeds iff a person exists for email and the
	// trimmed stored identifier equals the trimmed submitted secret.
	// An unknown email is (false, nil); lookup failures are
	// (false, err) for inline display.
	Authenticate(ctx context.Context, email, secret string) (bool, error)
}

// AnswerService persists and reads self-assessment answers.
type AnswerService interface {
	// Save appends a new record. Whitespace-only text is a silent
	// no-op; the returned bool reports whether a record was written.
	Save(ctx context.Context, email string, info domain.InfoType, text string) (bool, error)

	// Latest returns the current answer per canonical information-type.
	Latest(ctx context.Context, email string) (map[domain.InfoType]domain.Answer, error)
}

// ContextService gathers the auxiliary context embedded in prompts.
// Every method is tolerant of failure: it returns a usable zero value
// together with the error, and callers surface the error inline without
// aborting the session.
type ContextService interface {
	// PersonContext loads the person's summary, role, and identifier.
	PersonContext(ctx context.Context, email string) (domain.Person, error)

	// InteractionHistory formats the recent assistant interactions, or
	// a fixed fallback sentence when there are none.
	InteractionHistory(ctx context.Context, email string) (string, error)

	// WeeklySummaries formats the recent weekly summaries oldest first,
	// one per line. Entries without a parsable timestamp are excluded.
	WeeklySummaries(ctx context.Context, email string) (string, error)
}

// FinalizeResult reports what happened during plan finalization. Mail
// problems are recorded, not returned, because they are non-fatal.
type FinalizeResult struct {
	Formatted      string
	FormattedEmpty bool
	MailSent       bool
	MailSkipped    bool
	MailErr        error
}

// PlanService runs the generation steps of the session.
type PlanService interface {
	// GenerateDiagnostic produces the diagnostic text. An empty answer
	// is returned as ErrEmptyGeneration.
	GenerateDiagnostic(ctx context.Context, personID string, in prompt.DiagnosticInput) (string, error)

	// GeneratePlan produces the PDI draft from the saved diagnostic and
	// the chosen competencies.
	GeneratePlan(ctx context.Context, personID string, in prompt.PlanInput) (string, error)

	// Finalize persists the edited plan, requests and persists the
	// reformatted version, and attempts the notification e-mail.
	Finalize(ctx context.Context, email, personID, planText string) (*FinalizeResult, error)
}

// Mailer is the slice of the mail client the plan service needs.
type Mailer interface {
	Enabled() bool
	Send(ctx context.Context, to, subject, body string) error
}
