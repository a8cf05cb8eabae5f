package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rcamargo/pdiflow/internal/domain"
	"github.com/rcamargo/pdiflow/internal/repository"
	"github.com/rcamargo/pdiflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ctxEmail = "ana@example.com"

func newTestContextService(t *testing.T, now time.Time) (ContextService, *sql.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	svc := &contextService{
		persons:      repository.NewSQLitePersonRepo(db),
		interactions: repository.NewSQLiteInteractionRepo(db),
		summaries:    repository.NewSQLiteSummaryRepo(db),
		now:          fixedNow(now),
	}
	return svc, db
}

func TestPersonContext(t *testing.T) {
	svc, db := newTestContextService(t, time.Now())
	testutil.SeedPerson(t, db, domain.Person{
		Email: ctxEmail, Secret: "42", Summary: "resumo da ana", Role: "Analista",
	})

	p, err := svc.PersonContext(context.Background(), ctxEmail)
	require.NoError(t, err)
	assert.Equal(t, "resumo da ana", p.Summary)
	assert.Equal(t, "Analista", p.Role)
	assert.Equal(t, "42", p.Secret)
}

func TestPersonContext_MissingYieldsZeroValueAndError(t *testing.T) {
	svc, _ := newTestContextService(t, time.Now())

	p, err := svc.PersonContext(context.Background(), ctxEmail)
	require.Error(t, err)
	assert.Zero(t, p)
}

func TestInteractionHistory_FormatsNewestFirstJoined(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, db := newTestContextService(t, now)

	testutil.SeedInteraction(t, db, ctxEmail, now.AddDate(0, 0, -10), "conversa antiga")
	testutil.SeedInteraction(t, db, ctxEmail, now.AddDate(0, 0, -2), "conversa recente")

	got, err := svc.InteractionHistory(context.Background(), ctxEmail)
	require.NoError(t, err)
	assert.Equal(t,
		"data: 2026-02-27 - resumo: conversa recente; data: 2026-02-19 - resumo: conversa antiga",
		got,
	)
}

func TestInteractionHistory_CapsAtFiveWithinWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, db := newTestContextService(t, now)

	testutil.SeedInteraction(t, db, ctxEmail, now.AddDate(0, 0, -50), "fora da janela")
	for i := 0; i < 7; i++ {
		testutil.SeedInteraction(t, db, ctxEmail, now.AddDate(0, 0, -i-1), fmt.Sprintf("resumo %d", i))
	}

	got, err := svc.InteractionHistory(context.Background(), ctxEmail)
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(got, "data: "))
	assert.NotContains(t, got, "fora da janela")
}

func TestInteractionHistory_FallbackWhenEmpty(t *testing.T) {
	svc, _ := newTestContextService(t, time.Now())

	got, err := svc.InteractionHistory(context.Background(), ctxEmail)
	require.NoError(t, err)
	assert.Equal(t, "Não há nenhuma interação até o momento", got)
}

func TestWeeklySummaries_AscendingBrazilianDatesOnePerLine(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, db := newTestContextService(t, now)

	testutil.SeedSummary(t, db, ctxEmail, now.AddDate(0, 0, -7).Format(time.RFC3339), " semana mais recente ")
	testutil.SeedSummary(t, db, ctxEmail, now.AddDate(0, 0, -21).Format(time.RFC3339), "semana mais antiga")
	testutil.SeedSummary(t, db, ctxEmail, now.AddDate(0, 0, -100).Format(time.RFC3339), "fora da janela")

	got, err := svc.WeeklySummaries(context.Background(), ctxEmail)
	require.NoError(t, err)

	want := "resumo da semana 08/02/2026 - semana mais antiga\n" +
		"resumo da semana 22/02/2026 - semana mais recente"
	assert.Equal(t, want, got)
}

func TestWeeklySummaries_ExcludesUnparsableTimestamps(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, db := newTestContextService(t, now)

	testutil.SeedSummary(t, db, ctxEmail, "data quebrada", "linha ignorada")
	testutil.SeedSummary(t, db, ctxEmail, now.AddDate(0, 0, -3).Format(time.RFC3339), "linha valida")

	got, err := svc.WeeklySummaries(context.Background(), ctxEmail)
	require.NoError(t, err)
	assert.Equal(t, "resumo da semana 26/02/2026 - linha valida", got)
}

func TestWeeklySummaries_EmptyWindow(t *testing.T) {
	svc, _ := newTestContextService(t, time.Now())

	got, err := svc.WeeklySummaries(context.Background(), ctxEmail)
	require.NoError(t, err)
	assert.Empty(t, got)
}
