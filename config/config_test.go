package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
leveling:
  workday_hours: 6
  buffer_days: 5
  max_schedule_days: 90
  prefer_single_resource: true
metrics:
  prometheus_enabled: true
logging:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6.0, cfg.Leveling.WorkdayHours)
	assert.Equal(t, 5, cfg.Leveling.BufferDays)
	assert.True(t, cfg.Leveling.PreferSingleResource)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "9402", cfg.Metrics.PrometheusPort)
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json",
		`{"leveling":{"workday_hours":8,"max_schedule_days":120},"logging":{"level":"info"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Leveling.MaxScheduleDays)
}

func TestLoadDefaultsApplied(t *testing.T) {
	path := writeConfig(t, "config.yaml", "leveling: {}\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8.0, cfg.Leveling.WorkdayHours)
	assert.Equal(t, 180, cfg.Leveling.MaxScheduleDays)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "config.yaml", "leveling:\n  buffer_days: 1\n")
	t.Setenv("LVL_LEVELING__BUFFER_DAYS", "7")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Leveling.BufferDays)
}

func TestLoadRejectsInvalidParams(t *testing.T) {
	path := writeConfig(t, "config.yaml", "leveling:\n  workday_hours: 20\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "config.toml", "x = 1\n")
	_, err := Load(path)
	assert.Error(t, err)
}
