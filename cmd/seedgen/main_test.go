package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garmio/seedgen/config"
	"github.com/garmio/seedgen/pkg/logger"
)

func testConfig(t *testing.T, formats ...string) *config.Config {
	t.Helper()
	return &config.Config{
		Profile: "small",
		Seed:    42,
		Output: config.OutputConfig{
			Dir:             t.TempDir(),
			Formats:         formats,
			NullProbability: 0.1,
		},
		Database: config.DatabaseConfig{BatchSize: 500},
		LogLevel: "error",
	}
}

func TestRunWritesEveryFormat(t *testing.T) {
	cfg := testConfig(t, "csv", "ndjson", "sql")
	require.NoError(t, run(cfg, logger.NewTestLogger(t)))

	for _, name := range []string{"workspaces.csv", "workspaces.ndjson", "seed.sql"} {
		_, err := os.Stat(filepath.Join(cfg.Output.Dir, name))
		assert.NoError(t, err, "expected output file %s", name)
	}
}

func TestRunRejectsUnknownProfile(t *testing.T) {
	cfg := testConfig(t, "csv")
	cfg.Profile = "galactic"
	require.Error(t, run(cfg, logger.NewTestLogger(t)))
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	cfg := testConfig(t, "parquet")
	err := run(cfg, logger.NewTestLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parquet")
}
