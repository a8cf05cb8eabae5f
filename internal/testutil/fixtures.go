package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/rcamargo/pdiflow/internal/domain"
)

// SeedPerson inserts a row into pessoas_ativos.
func SeedPerson(t *testing.T, db *sql.DB, p domain.Person) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO pessoas_ativos (email, id, resumo_pessoa, posicao) VALUES (?, ?, ?, ?)`,
		p.Email, p.Secret, p.Summary, p.Role,
	)
	if err != nil {
		t.Fatalf("seeding person: %v", err)
	}
}

// SeedAnswer inserts a raw row into the answer log. info is taken as-is
// so tests can exercise label normalization.
func SeedAnswer(t *testing.T, db *sql.DB, email, info, desc string, at *time.Time) {
	t.Helper()
	var data any
	if at != nil {
		data = at.UTC().Format(time.RFC3339)
	}
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO dados_avd_pessoas (id, email, informacao, descricao, data) VALUES (?, ?, ?, ?, ?)`,
		randomID(), email, info, desc, data,
	)
	if err != nil {
		t.Fatalf("seeding answer: %v", err)
	}
}

// SeedInteraction inserts a row into the interaction log.
func SeedInteraction(t *testing.T, db *sql.DB, email string, at time.Time, summary string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO outputs_bot_pessoas (email, data, output_pessoa_bot) VALUES (?, ?, ?)`,
		email, at.UTC().Format(time.RFC3339), summary,
	)
	if err != nil {
		t.Fatalf("seeding interaction: %v", err)
	}
}

// SeedSummary inserts a row into the weekly-summary store. rawTimestamp
// is stored verbatim so tests can exercise unparsable values.
func SeedSummary(t *testing.T, db *sql.DB, email, rawTimestamp, summary string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO resumos (employee_email, summary, timestamp) VALUES (?, ?, ?)`,
		email, summary, rawTimestamp,
	)
	if err != nil {
		t.Fatalf("seeding weekly summary: %v", err)
	}
}
