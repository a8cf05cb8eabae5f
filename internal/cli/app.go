package cli

import (
	"time"

	"github.com/rcamargo/pdiflow/internal/repository"
	"github.com/rcamargo/pdiflow/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Auth     service.AuthService
	Answers  service.AnswerService
	Contexts service.ContextService
	Plans    service.PlanService
	Persons  repository.PersonRepo

	// TrackerURL is the external follow-up system shown on the final
	// screen; empty hides the reminder.
	TrackerURL string

	// IsInteractive reports whether stdin is a terminal; the wizard
	// only starts on interactive sessions.
	IsInteractive func() bool

	// Now is the clock used for freshness checks; tests override it.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
