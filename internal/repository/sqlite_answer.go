package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rcamargo/pdiflow/internal/db"
	"github.com/rcamargo/pdiflow/internal/domain"
)

// SQLiteAnswerRepo implements AnswerRepo over the dados_avd_pessoas table.
type SQLiteAnswerRepo struct {
	db db.DBTX
}

// NewSQLiteAnswerRepo creates a new SQLiteAnswerRepo.
func NewSQLiteAnswerRepo(conn db.DBTX) *SQLiteAnswerRepo {
	return &SQLiteAnswerRepo{db: conn}
}

func (r *SQLiteAnswerRepo) Append(ctx context.Context, rec *domain.AnswerRecord) error {
	var data any
	if rec.RecordedAt != nil {
		data = rec.RecordedAt.UTC().Format(timeLayout)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO dados_avd_pessoas (id, email, informacao, descricao, data)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Email, string(rec.Info), rec.Description, data,
	)
	if err != nil {
		return fmt.Errorf("appending answer record: %w", err)
	}
	return nil
}

func (r *SQLiteAnswerRepo) LatestByEmail(ctx context.Context, email string) (map[domain.InfoType]domain.Answer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT informacao, descricao, data FROM dados_avd_pessoas WHERE email = ?`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("loading answer records: %w", err)
	}
	defer rows.Close()

	latest := make(map[domain.InfoType]domain.Answer, len(domain.CanonicalInfoTypes))
	for _, t := range domain.CanonicalInfoTypes {
		latest[t] = domain.Answer{}
	}

	for rows.Next() {
		var info, desc string
		var data sql.NullString
		if err := rows.Scan(&info, &desc, &data); err != nil {
			return nil, fmt.Errorf("scanning answer record: %w", err)
		}

		canon, ok := domain.CanonicalInfo(info)
		if !ok {
			continue
		}

		candidate := domain.Answer{Text: desc, RecordedAt: parseNullableTime(data)}
		if newerThan(candidate, latest[canon]) {
			latest[canon] = candidate
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating answer records: %w", err)
	}

	return latest, nil
}

// newerThan orders answers by timestamp with nil timestamps sorting
// last. An existing zero-value entry always loses to a real record.
// Equal timestamps keep the earlier-scanned row; the tie-break is
// deliberately unspecified.
func newerThan(candidate, current domain.Answer) bool {
	if current.Text == "" && current.RecordedAt == nil {
		return true
	}
	if candidate.RecordedAt == nil {
		return false
	}
	if current.RecordedAt == nil {
		return true
	}
	return candidate.RecordedAt.After(*current.RecordedAt)
}
