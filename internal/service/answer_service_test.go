package service

import (
	"context"
	"testing"

	"github.com/rcamargo/pdiflow/internal/domain"
	"github.com/rcamargo/pdiflow/internal/repository"
	"github.com/rcamargo/pdiflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerService_SaveSkipsBlankText(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewAnswerService(repository.NewSQLiteAnswerRepo(db))
	ctx := context.Background()

	for _, text := range []string{"", "   ", "\n\t"} {
		saved, err := svc.Save(ctx, "ana@example.com", domain.InfoStrengths, text)
		require.NoError(t, err)
		assert.False(t, saved, "text %q", text)
	}

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM dados_avd_pessoas`).Scan(&count))
	assert.Zero(t, count)
}

func TestAnswerService_SaveTrimsAndLatestWins(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewAnswerService(repository.NewSQLiteAnswerRepo(db))
	ctx := context.Background()

	saved, err := svc.Save(ctx, "ana@example.com", domain.InfoStrengths, "  x  ")
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = svc.Save(ctx, "ana@example.com", domain.InfoStrengths, "y")
	require.NoError(t, err)
	assert.True(t, saved)

	latest, err := svc.Latest(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "y", latest[domain.InfoStrengths].Text)
	require.NotNil(t, latest[domain.InfoStrengths].RecordedAt)
}
