package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rcamargo/pdiflow/internal/domain"
	"github.com/rcamargo/pdiflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmail = "ana@example.com"

func TestAnswerRepo_AppendThenLatestWins(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAnswerRepo(db)
	ctx := context.Background()

	first := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	require.NoError(t, repo.Append(ctx, &domain.AnswerRecord{
		ID: uuid.New().String(), Email: testEmail,
		Info: domain.InfoStrengths, Description: "x", RecordedAt: &first,
	}))
	require.NoError(t, repo.Append(ctx, &domain.AnswerRecord{
		ID: uuid.New().String(), Email: testEmail,
		Info: domain.InfoStrengths, Description: "y", RecordedAt: &second,
	}))

	latest, err := repo.LatestByEmail(ctx, testEmail)
	require.NoError(t, err)

	got := latest[domain.InfoStrengths]
	assert.Equal(t, "y", got.Text)
	require.NotNil(t, got.RecordedAt)
	assert.True(t, got.RecordedAt.Equal(second))
}

func TestAnswerRepo_AppendKeepsHistory(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAnswerRepo(db)
	ctx := context.Background()

	at := time.Now().UTC()
	for _, desc := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Append(ctx, &domain.AnswerRecord{
			ID: uuid.New().String(), Email: testEmail,
			Info: domain.InfoDiagnostic, Description: desc, RecordedAt: &at,
		}))
	}

	var count int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM dados_avd_pessoas WHERE email = ?`, testEmail,
	).Scan(&count))
	assert.Equal(t, 3, count, "every save appends; nothing is updated in place")
}

func TestAnswerRepo_LatestNormalizesLabels(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAnswerRepo(db)
	ctx := context.Background()

	older := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	newer := older.AddDate(0, 0, 3)
	testutil.SeedAnswer(t, db, testEmail, "  Tags Pontos Fortes ", "velho", &older)
	testutil.SeedAnswer(t, db, testEmail, "TAGS PONTOS FORTES", "novo", &newer)

	latest, err := repo.LatestByEmail(ctx, testEmail)
	require.NoError(t, err)
	assert.Equal(t, "novo", latest[domain.InfoStrengths].Text)
}

func TestAnswerRepo_LatestDropsNonCanonicalRows(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAnswerRepo(db)
	ctx := context.Background()

	at := time.Now().UTC()
	testutil.SeedAnswer(t, db, testEmail, string(domain.InfoCompetency1), "Comunicação", &at)
	testutil.SeedAnswer(t, db, testEmail, string(domain.InfoPDIFormatted), "formatted", &at)
	testutil.SeedAnswer(t, db, testEmail, "informacao desconhecida", "x", &at)

	latest, err := repo.LatestByEmail(ctx, testEmail)
	require.NoError(t, err)

	assert.Len(t, latest, len(domain.CanonicalInfoTypes))
	for _, a := range latest {
		assert.Empty(t, a.Text)
	}
}

func TestAnswerRepo_NullTimestampSortsLast(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAnswerRepo(db)
	ctx := context.Background()

	dated := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	testutil.SeedAnswer(t, db, testEmail, string(domain.InfoCareerObjectives), "sem data", nil)
	testutil.SeedAnswer(t, db, testEmail, string(domain.InfoCareerObjectives), "com data", &dated)

	latest, err := repo.LatestByEmail(ctx, testEmail)
	require.NoError(t, err)
	assert.Equal(t, "com data", latest[domain.InfoCareerObjectives].Text)
}

func TestAnswerRepo_LatestScopedToEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAnswerRepo(db)
	ctx := context.Background()

	at := time.Now().UTC()
	testutil.SeedAnswer(t, db, "outra@example.com", string(domain.InfoStrengths), "dela", &at)

	latest, err := repo.LatestByEmail(ctx, testEmail)
	require.NoError(t, err)
	assert.Empty(t, latest[domain.InfoStrengths].Text)
}
