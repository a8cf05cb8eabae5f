package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rcamargo/pdiflow/internal/db"
	"github.com/rcamargo/pdiflow/internal/domain"
)

// SQLitePersonRepo implements PersonRepo over the pessoas_ativos table.
type SQLitePersonRepo struct {
	db db.DBTX
}

// NewSQLitePersonRepo creates a new SQLitePersonRepo.
func NewSQLitePersonRepo(conn db.DBTX) *SQLitePersonRepo {
	return &SQLitePersonRepo{db: conn}
}

func (r *SQLitePersonRepo) GetByEmail(ctx context.Context, email string) (*domain.Person, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT email, id, resumo_pessoa, posicao FROM pessoas_ativos WHERE email = ? LIMIT 1`,
		email,
	)

	var p domain.Person
	err := row.Scan(&p.Email, &p.Secret, &p.Summary, &p.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("person %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning person: %w", err)
	}
	return &p, nil
}

func (r *SQLitePersonRepo) Upsert(ctx context.Context, p *domain.Person) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pessoas_ativos (email, id, resumo_pessoa, posicao)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(email) DO UPDATE SET
		   id = excluded.id,
		   resumo_pessoa = excluded.resumo_pessoa,
		   posicao = excluded.posicao`,
		p.Email, p.Secret, p.Summary, p.Role,
	)
	if err != nil {
		return fmt.Errorf("upserting person: %w", err)
	}
	return nil
}
