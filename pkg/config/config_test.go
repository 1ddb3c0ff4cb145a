package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AgnesBressan/AirRouteAM/pkg/engine/heuristics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "database.json", cfg.Dataset.Path)
	assert.Equal(t, "airrouteDB", cfg.Store.Path)
	assert.Equal(t, "auto", cfg.Search.Heuristic)
	assert.Equal(t, heuristics.StrategyAuto, cfg.Search.Strategy())
	assert.Equal(t, 5, cfg.Search.SnapCandidates)
	assert.Equal(t, ":5000", cfg.Server.ListenAddr)
	assert.Equal(t, 4, cfg.Server.BatchWorkers)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
dataset:
  path: /data/amazonas.json
search:
  heuristic: hopcount
server:
  listen_addr: ":8080"
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/amazonas.json", cfg.Dataset.Path)
	assert.Equal(t, heuristics.StrategyHopCount, cfg.Search.Strategy())
	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, "console", cfg.Log.Format)
	// Defaults still apply for unset values
	assert.Equal(t, 4, cfg.Server.BatchWorkers)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
search:
  heuristic: zero
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("AIRROUTE_SEARCH_HEURISTIC", "geographic")
	t.Setenv("AIRROUTE_SERVER_BATCH_WORKERS", "8")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, heuristics.StrategyGeographic, cfg.Search.Strategy())
	assert.Equal(t, 8, cfg.Server.BatchWorkers)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("heuristic", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("AIRROUTE_SEARCH_HEURISTIC", "dijkstra")
		_, err := Load()
		assert.ErrorContains(t, err, "unknown heuristic strategy")
	})

	t.Run("batch workers", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("AIRROUTE_SERVER_BATCH_WORKERS", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}
