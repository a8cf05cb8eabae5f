package genai

import (
	"fmt"
	"time"
)

// SessionID builds the conversational session identifier attached to
// every generation call, scoping the remote conversation to one person
// per calendar day.
func SessionID(personID string, day time.Time) string {
	return fmt.Sprintf("%s:%s", personID, day.Format("2006-01-02"))
}
