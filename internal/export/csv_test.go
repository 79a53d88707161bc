package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	ds := fixtureDataset()
	require.NoError(t, WriteCSV(dir, ds))

	// Every collection gets a file, empty ones header-only.
	for _, table := range Tables() {
		rows := readCSV(t, filepath.Join(dir, table.Name+".csv"))
		require.NotEmpty(t, rows, "table %s", table.Name)
		assert.Equal(t, table.Columns, rows[0], "table %s header", table.Name)
		for _, row := range rows[1:] {
			assert.Len(t, row, len(table.Columns), "table %s row width", table.Name)
		}
	}

	workspaces := readCSV(t, filepath.Join(dir, "workspaces.csv"))
	require.Len(t, workspaces, 2)
	assert.Equal(t, "ws-1", workspaces[1][0])
	assert.Equal(t, "Marlowe & Vine", workspaces[1][1])
	assert.Equal(t, "2026-02-10T09:00:00Z", workspaces[1][5])

	// Nil optional references render as empty cells.
	orders := readCSV(t, filepath.Join(dir, "orders.csv"))
	require.Len(t, orders, 2)
	assert.Equal(t, "", orders[1][4], "conversation_id")
	assert.Equal(t, "", orders[1][5], "binding_id")
	assert.Equal(t, "17564", orders[1][11], "total_price_cents")
}
