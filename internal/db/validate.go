package db

import (
	"database/sql"
	"fmt"
)

// ExpectedTables are resolved once at startup. Earlier versions of the
// product re-discovered the answer table case-insensitively on every
// call; here the lookup happens a single time and a missing table fails
// fast instead of degrading into silent no-ops.
var ExpectedTables = []string{
	"dados_avd_pessoas",
	"pessoas_ativos",
	"outputs_bot_pessoas",
	"resumos",
}

// ValidateSchema verifies that every expected table exists, matching
// names case-insensitively as the original store lookup did.
func ValidateSchema(db *sql.DB) error {
	for _, name := range ExpectedTables {
		var found string
		err := db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND lower(name) = lower(?) LIMIT 1`,
			name,
		).Scan(&found)
		if err == sql.ErrNoRows {
			return fmt.Errorf("table not found: %s", name)
		}
		if err != nil {
			return fmt.Errorf("validating table %s: %w", name, err)
		}
	}
	return nil
}
