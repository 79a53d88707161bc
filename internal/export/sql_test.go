package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSQL(t *testing.T) {
	dir := t.TempDir()
	ds := fixtureDataset()
	require.NoError(t, WriteSQL(dir, ds, 500))

	raw, err := os.ReadFile(filepath.Join(dir, "seed.sql"))
	require.NoError(t, err)
	script := string(raw)

	assert.Contains(t, script, "INSERT INTO workspaces (id,name,website_url,timezone,currency,created_at) VALUES")
	assert.Contains(t, script, "'ws-1'")
	assert.Contains(t, script, "INSERT INTO orders ")
	assert.Contains(t, script, "INSERT INTO demand_forecasts ")

	// Nil references render as SQL NULL, never as empty strings.
	assert.Contains(t, script, "NULL")
	assert.NotContains(t, script, "''',")

	// Parent tables appear before their dependents.
	assert.Less(t,
		strings.Index(script, "INSERT INTO workspaces "),
		strings.Index(script, "INSERT INTO orders "))

	// Empty collections emit no statement at all.
	assert.NotContains(t, script, "INSERT INTO posts ")
}

func TestWriteSQLEscapesQuotes(t *testing.T) {
	dir := t.TempDir()
	ds := fixtureDataset()
	ds.Workspaces[0].Name = "Marlowe's Closet"
	require.NoError(t, WriteSQL(dir, ds, 500))

	raw, err := os.ReadFile(filepath.Join(dir, "seed.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "'Marlowe''s Closet'")
}

func TestWriteSQLBatchesRows(t *testing.T) {
	dir := t.TempDir()
	ds := fixtureDataset()
	ws := *ds.Workspaces[0]
	ws.ID = "ws-2"
	ds.Workspaces = append(ds.Workspaces, &ws)
	require.NoError(t, WriteSQL(dir, ds, 1))

	raw, err := os.ReadFile(filepath.Join(dir, "seed.sql"))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(raw), "INSERT INTO workspaces "),
		"batch size 1 must split the two workspaces into two statements")
}

func TestWriteSQLRejectsBadBatchSize(t *testing.T) {
	err := WriteSQL(t.TempDir(), fixtureDataset(), 0)
	require.Error(t, err)
}
