package repository

import (
	"database/sql"
	"time"
)

// timeLayout is the storage format for timestamps. RFC3339 keeps
// lexicographic and chronological order aligned for the day-granularity
// range filters, and the nanosecond variant preserves ordering between
// saves landing inside the same second. Parsing with the nanosecond
// layout accepts both.
const timeLayout = time.RFC3339Nano

// parseNullableTime parses a sql.NullString into a *time.Time.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(timeLayout, s.String)
	if err != nil {
		return nil
	}
	return &t
}
