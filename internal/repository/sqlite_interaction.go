package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rcamargo/pdiflow/internal/db"
	"github.com/rcamargo/pdiflow/internal/domain"
)

// SQLiteInteractionRepo implements InteractionRepo over the
// outputs_bot_pessoas table.
type SQLiteInteractionRepo struct {
	db db.DBTX
}

// NewSQLiteInteractionRepo creates a new SQLiteInteractionRepo.
func NewSQLiteInteractionRepo(conn db.DBTX) *SQLiteInteractionRepo {
	return &SQLiteInteractionRepo{db: conn}
}

func (r *SQLiteInteractionRepo) ListRecent(ctx context.Context, email string, since time.Time, limit int) ([]domain.InteractionEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data, output_pessoa_bot
		 FROM outputs_bot_pessoas
		 WHERE email = ? AND data >= ?
		 ORDER BY data DESC
		 LIMIT ?`,
		email, since.UTC().Format(timeLayout), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("loading interaction log: %w", err)
	}
	defer rows.Close()

	var entries []domain.InteractionEntry
	for rows.Next() {
		var data, summary string
		if err := rows.Scan(&data, &summary); err != nil {
			return nil, fmt.Errorf("scanning interaction entry: %w", err)
		}
		at, err := time.Parse(timeLayout, data)
		if err != nil {
			continue
		}
		entries = append(entries, domain.InteractionEntry{At: at, Summary: summary})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating interaction log: %w", err)
	}
	return entries, nil
}
