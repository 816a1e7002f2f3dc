package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"warranty/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
env:
  serviceName: warranty-test
  log:
    level: debug
http:
  port: 9090
store:
  url: mem://
share:
  dispatchDelay: 2s
`

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(minimalConfig), 0o600))
	t.Chdir(dir)
	t.Setenv("SHARE_DISPATCHDELAY", "250ms")
	t.Setenv("HTTP_PORT", "7070")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "warranty-test", cfg.Env.ServiceName)
	assert.Equal(t, 7070, cfg.HTTP.Port)
	require.NotNil(t, cfg.Share)
	assert.Equal(t, 250*time.Millisecond, cfg.Share.DispatchDelay)
	require.NotNil(t, cfg.Store)
	assert.Equal(t, "mem://", cfg.Store.URL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "info", cfg.Env.Log.Level)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.DefaultStoreURL, cfg.Store.URL)
	assert.Equal(t, constants.DefaultStoreKey, cfg.Store.Key)
	assert.Equal(t, constants.OpenerLog, cfg.Share.Opener)
	assert.Equal(t, time.Second, cfg.Share.DispatchDelay)
	assert.False(t, cfg.Reminder.Enabled)
	assert.Equal(t, defaultReminderSchedule, cfg.Reminder.Schedule)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
	assert.Nil(t, cfg.PubSub)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Store: &StoreConfig{URL: "file:///srv/warranty", Key: "records.json"},
		Share: &ShareConfig{Opener: constants.OpenerSystem, DispatchDelay: 3 * time.Second},
	}
	applyDefaults(cfg)

	assert.Equal(t, "file:///srv/warranty", cfg.Store.URL)
	assert.Equal(t, "records.json", cfg.Store.Key)
	assert.Equal(t, constants.OpenerSystem, cfg.Share.Opener)
	assert.Equal(t, 3*time.Second, cfg.Share.DispatchDelay)
}
