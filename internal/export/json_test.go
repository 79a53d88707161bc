package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestWriteNDJSON(t *testing.T) {
	dir := t.TempDir()
	ds := fixtureDataset()
	require.NoError(t, WriteNDJSON(dir, ds))

	raw, err := os.ReadFile(filepath.Join(dir, "workspaces.ndjson"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	line := lines[0]
	require.True(t, gjson.Valid(line))
	assert.Equal(t, "ws-1", gjson.Get(line, "id").String())
	assert.Equal(t, "Marlowe & Vine", gjson.Get(line, "name").String())
	assert.Equal(t, "USD", gjson.Get(line, "currency").String())

	raw, err = os.ReadFile(filepath.Join(dir, "orders.ndjson"))
	require.NoError(t, err)
	line = strings.TrimSpace(string(raw))
	require.True(t, gjson.Valid(line))
	assert.Equal(t, int64(17564), gjson.Get(line, "total_price_cents").Int())
	// Nil references serialize as explicit JSON null, not absent keys.
	conversationID := gjson.Get(line, "conversation_id")
	assert.True(t, conversationID.Exists())
	assert.Equal(t, gjson.Null, conversationID.Type)

	raw, err = os.ReadFile(filepath.Join(dir, "demand_forecasts.ndjson"))
	require.NoError(t, err)
	line = strings.TrimSpace(string(raw))
	assert.Equal(t, gjson.Null, gjson.Get(line, "actual_demand").Type)
	assert.Equal(t, gjson.Null, gjson.Get(line, "forecast_error").Type)

	// Empty collections still produce their file.
	info, err := os.Stat(filepath.Join(dir, "posts.ndjson"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}
