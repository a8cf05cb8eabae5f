package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesExpectedTables(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, ValidateSchema(database))
}

func TestValidateSchema_MatchesCaseInsensitively(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Recreate the answer table under a different casing; validation
	// must still resolve it.
	_, err = database.Exec(`DROP TABLE dados_avd_pessoas`)
	require.NoError(t, err)
	_, err = database.Exec(`CREATE TABLE "Dados_AVD_Pessoas" (
		id TEXT PRIMARY KEY, email TEXT, informacao TEXT, descricao TEXT, data TEXT)`)
	require.NoError(t, err)

	assert.NoError(t, ValidateSchema(database))
}

func TestValidateSchema_FailsFastWhenTableMissing(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`DROP TABLE resumos`)
	require.NoError(t, err)

	err = ValidateSchema(database)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table not found: resumos")
}
