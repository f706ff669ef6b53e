package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFileDefaults(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "9090", cfg.App.MetricsPort)
	assert.Equal(t, 10*time.Second, cfg.App.RequestTimeout)
	assert.False(t, cfg.App.TrustProxy)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.True(t, cfg.Store.SeedDemo)
	assert.Equal(t, LockDriverLocal, cfg.Lock.Driver)
	assert.Equal(t, "09:00-12:00,14:00-16:00", cfg.Slot.Template)
	assert.Equal(t, 30*time.Minute, cfg.Slot.Duration)
	assert.True(t, cfg.Booking.MarkPaid)
	assert.Equal(t, 24*time.Hour, cfg.Idempotency.TTL)
	assert.False(t, cfg.NeedsRedis())
}

func TestLoadConfigFileReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9000\nAPP_TRUST_PROXY=true\nSTORE_DRIVER=Postgres\nLOCK_DRIVER=redis\nSLOT_DURATION=15m\nBOOKING_MARK_PAID=false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.True(t, cfg.App.TrustProxy)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, LockDriverRedis, cfg.Lock.Driver)
	assert.Equal(t, 15*time.Minute, cfg.Slot.Duration)
	assert.False(t, cfg.Booking.MarkPaid)
	assert.True(t, cfg.NeedsRedis())
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=9000\n"), 0o600))
	t.Setenv("APP_PORT", "7000")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.App.Port)
}

func TestValidateRejectsUnknownDrivers(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	cfg := &Config{Store: StoreConfig{Driver: StoreDriverMemory}, Lock: LockConfig{Driver: "etcd"}}
	assert.Error(t, cfg.Validate())
}

func TestDurationOr(t *testing.T) {
	assert.Equal(t, 5*time.Second, durationOr("5s", time.Minute))
	assert.Equal(t, time.Minute, durationOr("", time.Minute))
	assert.Equal(t, time.Minute, durationOr("-5s", time.Minute))
	assert.Equal(t, time.Minute, durationOr("soon", time.Minute))
}
