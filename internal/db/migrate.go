package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs safely on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Table names mirror the schema of the original shared store, so a dump
// of production rows loads unchanged.
var migrations = []string{
	// Append-only answer log. Rows are inserted, never updated or
	// deleted; the newest row per (email, normalized informacao) wins.
	`CREATE TABLE IF NOT EXISTS dados_avd_pessoas (
		id         TEXT PRIMARY KEY,
		email      TEXT NOT NULL,
		informacao TEXT NOT NULL,
		descricao  TEXT NOT NULL,
		data       TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_dados_avd_pessoas_email ON dados_avd_pessoas(email)`,

	// Active people, provisioned by the upstream people system. The id
	// column doubles as the login shared secret.
	`CREATE TABLE IF NOT EXISTS pessoas_ativos (
		email         TEXT PRIMARY KEY,
		id            TEXT NOT NULL,
		resumo_pessoa TEXT NOT NULL DEFAULT '',
		posicao       TEXT NOT NULL DEFAULT ''
	)`,

	// Assistant interaction log, read-only here.
	`CREATE TABLE IF NOT EXISTS outputs_bot_pessoas (
		email             TEXT NOT NULL,
		data              TEXT NOT NULL,
		output_pessoa_bot TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_outputs_bot_pessoas_email ON outputs_bot_pessoas(email)`,

	// Weekly summaries. May live in a separately configured store; the
	// statement is harmless when both stores share one file.
	`CREATE TABLE IF NOT EXISTS resumos (
		employee_email TEXT NOT NULL,
		summary        TEXT NOT NULL DEFAULT '',
		timestamp      TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_resumos_email ON resumos(employee_email)`,
}
