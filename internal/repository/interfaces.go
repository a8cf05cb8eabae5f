package repository

import (
	"context"
	"time"

	"github.com/rcamargo/pdiflow/internal/domain"
)

// AnswerRepo is the append-only log of self-assessment answers.
type AnswerRepo interface {
	// Append inserts a new record with the given timestamp. It never
	// updates rows in place.
	Append(ctx context.Context, rec *domain.AnswerRecord) error

	// LatestByEmail returns, for every canonical information-type, the
	// newest record belonging to email. Stored labels are normalized
	// (trim + lowercase) before matching; rows outside the canonical set
	// are dropped. Types with no record map to an empty Answer.
	LatestByEmail(ctx context.Context, email string) (map[domain.InfoType]domain.Answer, error)
}

// PersonRepo reads the externally provisioned people table.
type PersonRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.Person, error)
	// Upsert exists for the operator ingest command only; the session
	// flow never writes people.
	Upsert(ctx context.Context, p *domain.Person) error
}

// InteractionRepo reads the assistant interaction log.
type InteractionRepo interface {
	// ListRecent returns at most limit entries at or after since,
	// newest first.
	ListRecent(ctx context.Context, email string, since time.Time, limit int) ([]domain.InteractionEntry, error)
}

// SummaryRepo reads the weekly-summary store.
type SummaryRepo interface {
	// ListSince returns all entries at or after since in ascending
	// chronological order. Entries whose stored timestamp cannot be
	// parsed are returned with a nil At.
	ListSince(ctx context.Context, email string, since time.Time) ([]domain.WeeklySummary, error)
}
