package domain

import "time"

// Answer is the current value of one information-type for a person:
// the text of the newest record and when it was written. RecordedAt is
// nil when the stored row carried no usable timestamp.
type Answer struct {
	Text       string
	RecordedAt *time.Time
}

// Empty reports whether the answer carries no text.
func (a Answer) Empty() bool {
	return isBlank(a.Text)
}

// AnswerRecord is one appended row in the answer log. Rows are never
// updated or deleted; the newest row per (email, normalized type) wins.
type AnswerRecord struct {
	ID          string
	Email       string
	Info        InfoType
	Description string
	RecordedAt  *time.Time
}

// Person is an active employee as provisioned by the upstream people
// system. Secret doubles as the login shared secret; that is a known
// weakness of the product, inherited deliberately.
type Person struct {
	Email   string
	Secret  string
	Summary string
	Role    string
}

// InteractionEntry is one row of the assistant interaction log, read-only
// from this system's perspective.
type InteractionEntry struct {
	At      time.Time
	Summary string
}

// WeeklySummary is one row of the weekly-summary store. At is nil when
// the stored timestamp could not be parsed; such rows are excluded from
// prompt aggregation.
type WeeklySummary struct {
	At      *time.Time
	Summary string
}
