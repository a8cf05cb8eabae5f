package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rcamargo/pdiflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryRepo_ListSince_AscendingWithinWindow(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSummaryRepo(db)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	since := now.AddDate(0, 0, -90)

	testutil.SeedSummary(t, db, testEmail, since.AddDate(0, 0, 20).Format(time.RFC3339), "semana 2")
	testutil.SeedSummary(t, db, testEmail, since.AddDate(0, 0, 5).Format(time.RFC3339), "semana 1")
	testutil.SeedSummary(t, db, testEmail, since.AddDate(0, 0, -3).Format(time.RFC3339), "fora da janela")

	entries, err := repo.ListSince(ctx, testEmail, since)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "semana 1", entries[0].Summary)
	assert.Equal(t, "semana 2", entries[1].Summary)
}

func TestSummaryRepo_ListSince_SurfacesUnparsableTimestampsAsNil(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSummaryRepo(db)
	ctx := context.Background()

	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	testutil.SeedSummary(t, db, testEmail, "sem data valida", "quebrada")
	testutil.SeedSummary(t, db, testEmail, since.AddDate(0, 0, 10).Format(time.RFC3339), "ok")

	entries, err := repo.ListSince(ctx, testEmail, since)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var nilCount int
	for _, e := range entries {
		if e.At == nil {
			nilCount++
			assert.Equal(t, "quebrada", e.Summary)
		}
	}
	assert.Equal(t, 1, nilCount)
}
