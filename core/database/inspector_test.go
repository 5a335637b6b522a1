package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_events (id INTEGER PRIMARY KEY, user_id TEXT NOT NULL, difference NUMERIC)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_events")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	byName := make(map[string]ColumnInfo)
	for _, col := range columns {
		byName[col.Field] = col
	}

	assert.Equal(t, "integer", byName["id"].Type)
	assert.Equal(t, "PRI", byName["id"].Key)
	assert.Equal(t, "NO", byName["user_id"].Null)
	assert.Equal(t, "numeric", byName["difference"].Type)

	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE test_suspense (id INTEGER PRIMARY KEY, status TEXT)").Error)

	missing, err := MissingColumns(db, "test_suspense", []string{"id", "STATUS", "priority"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"priority"}, missing)

	missing, err = MissingColumns(db, "absent", []string{"id"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"id"}, missing)
}
