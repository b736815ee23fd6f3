package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: develop
  serviceName: pawtrack
  log:
    level: debug
http:
  port: 8080
ingest:
  apiKey: from-yaml
alerting:
  cooldown: 1h
  laneBuffer: 8
realtime:
  provider: local
`

func TestLoadWithEnv_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unit.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("INGEST_APIKEY", "from-env")
	t.Setenv("ALERTING_COOLDOWN", "30m")

	cfg, err := LoadWithEnv[Config]("unit")
	require.NoError(t, err)

	assert.Equal(t, "pawtrack", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	require.NotNil(t, cfg.Ingest)
	assert.Equal(t, "from-env", cfg.Ingest.APIKey)
	require.NotNil(t, cfg.Alerting)
	assert.Equal(t, 30*time.Minute, cfg.Alerting.Cooldown)
	assert.Equal(t, 8, cfg.Alerting.LaneBuffer)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{Alerting: &AlertingConfig{LowBatteryPercent: 25}}
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultCooldown, cfg.Alerting.Cooldown)
	assert.Equal(t, DefaultOfflineAfter, cfg.Alerting.OfflineAfter)
	assert.Equal(t, 25, cfg.Alerting.LowBatteryPercent)
	assert.Equal(t, DefaultCriticalBatteryPercent, cfg.Alerting.CriticalBatteryPercent)
	assert.Equal(t, DefaultInactivityMinutes, cfg.Alerting.DefaultInactivityMinutes)
	assert.Equal(t, DefaultLaneBuffer, cfg.Alerting.LaneBuffer)
	assert.Equal(t, DefaultSweepInterval, cfg.Sweeper.Interval)
	assert.False(t, cfg.Sweeper.Enabled)
	assert.Equal(t, DefaultRealtimeSendBuffer, cfg.Realtime.SendBuffer)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, DefaultSlowQueryThreshold, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, DefaultWorkerPort, cfg.Worker.Port)
	require.NotNil(t, cfg.HTTP)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
}

func TestLoadWithEnv_ConfigDirWins(t *testing.T) {
	work, override := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(work, "unit.yaml"), []byte("http:\n  port: 1\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(override, "unit.yaml"), []byte("http:\n  port: 2\n"), 0o600))
	t.Chdir(work)
	t.Setenv(EnvConfigDir, override)

	cfg, err := LoadWithEnv[Config]("unit")
	require.NoError(t, err)

	require.NotNil(t, cfg.HTTP)
	assert.Equal(t, 2, cfg.HTTP.Port)
}
