package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayPtr(t time.Time) *time.Time { return &t }

func TestClassify_Boundaries(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		at   *time.Time
		want Freshness
	}{
		{"no record", "", nil, FreshnessMissing},
		{"whitespace only", "   \n", dayPtr(today), FreshnessMissing},
		{"same day", "x", dayPtr(today), FreshnessFresh},
		{"exactly at threshold", "x", dayPtr(today.AddDate(0, 0, -FreshnessThresholdDays)), FreshnessFresh},
		{"one day past threshold", "x", dayPtr(today.AddDate(0, 0, -(FreshnessThresholdDays + 1))), FreshnessStale},
		{"text without date", "x", nil, FreshnessStale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text, tt.at, today))
		})
	}
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	// A record from late evening 181 days ago is stale even if fewer than
	// 181*24 hours have elapsed: ages compare dates, not instants.
	today := time.Date(2026, 3, 10, 0, 5, 0, 0, time.UTC)
	at := time.Date(2025, 9, 10, 23, 55, 0, 0, time.UTC).AddDate(0, 0, -0)
	age := AgeDays(&at, today)
	require.NotNil(t, age)
	assert.Equal(t, 181, *age)
	assert.Equal(t, FreshnessStale, Classify("x", &at, today))
}

func TestAgeDays_NilDate(t *testing.T) {
	assert.Nil(t, AgeDays(nil, time.Now()))
}

func TestIsStillValidReply(t *testing.T) {
	for _, s := range []string{"sim", "SIM", "Sim", "  sim  ", "\tSiM\n"} {
		assert.True(t, IsStillValidReply(s), "reply %q", s)
	}
	for _, s := range []string{"", "não", "sim!", "yes", "s im"} {
		assert.False(t, IsStillValidReply(s), "reply %q", s)
	}
}
