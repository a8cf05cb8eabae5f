package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rcamargo/pdiflow/internal/db"
	"github.com/rcamargo/pdiflow/internal/domain"
)

// SQLiteSummaryRepo implements SummaryRepo over the resumos table, which
// may live in a separately configured store.
type SQLiteSummaryRepo struct {
	db db.DBTX
}

// NewSQLiteSummaryRepo creates a new SQLiteSummaryRepo.
func NewSQLiteSummaryRepo(conn db.DBTX) *SQLiteSummaryRepo {
	return &SQLiteSummaryRepo{db: conn}
}

func (r *SQLiteSummaryRepo) ListSince(ctx context.Context, email string, since time.Time) ([]domain.WeeklySummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT summary, timestamp
		 FROM resumos
		 WHERE employee_email = ? AND timestamp >= ?
		 ORDER BY timestamp ASC`,
		email, since.UTC().Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("loading weekly summaries: %w", err)
	}
	defer rows.Close()

	var entries []domain.WeeklySummary
	for rows.Next() {
		var summary string
		var ts sql.NullString
		if err := rows.Scan(&summary, &ts); err != nil {
			return nil, fmt.Errorf("scanning weekly summary: %w", err)
		}
		entries = append(entries, domain.WeeklySummary{
			At:      parseNullableTime(ts),
			Summary: summary,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating weekly summaries: %w", err)
	}
	return entries, nil
}
