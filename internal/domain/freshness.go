package domain

import (
	"strings"
	"time"
)

// FreshnessThresholdDays is the inclusive age limit beyond which an
// existing answer must be reconfirmed or replaced.
const FreshnessThresholdDays = 180

// Freshness classifies an existing answer for presentation purposes.
type Freshness int

const (
	// FreshnessMissing means no text exists; ask for a first-time entry.
	FreshnessMissing Freshness = iota
	// FreshnessFresh means the text is recent enough to use as-is.
	FreshnessFresh
	// FreshnessStale means the text exists but is old or undated; ask
	// the user to confirm or replace it.
	FreshnessStale
)

func (f Freshness) String() string {
	switch f {
	case FreshnessMissing:
		return "missing"
	case FreshnessFresh:
		return "fresh"
	case FreshnessStale:
		return "stale"
	default:
		return "unknown"
	}
}

// AgeDays returns the whole-day age of recordedAt relative to today,
// comparing dates only. Returns nil when recordedAt is nil.
func AgeDays(recordedAt *time.Time, today time.Time) *int {
	if recordedAt == nil {
		return nil
	}
	y1, m1, d1 := recordedAt.Date()
	y2, m2, d2 := today.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	days := int(b.Sub(a).Hours() / 24)
	return &days
}

// Classify applies the staleness policy to an existing answer.
// An empty text is Missing. A present text with an unknown date, or one
// older than the threshold, is Stale. The threshold is inclusive: an
// answer aged exactly FreshnessThresholdDays is still Fresh.
func Classify(text string, recordedAt *time.Time, today time.Time) Freshness {
	if isBlank(text) {
		return FreshnessMissing
	}
	age := AgeDays(recordedAt, today)
	if age == nil || *age > FreshnessThresholdDays {
		return FreshnessStale
	}
	return FreshnessFresh
}

// IsStillValidReply reports whether a reply to a stale-answer prompt is
// the confirmation token meaning "still valid, do not resave".
func IsStillValidReply(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "sim")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
