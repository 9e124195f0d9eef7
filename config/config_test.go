package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 21.0, cfg.Booking.DefaultVATPercent)
	assert.Equal(t, 3, cfg.Booking.MinNights)
	assert.Equal(t, time.Hour, cfg.Scheduler.TokenPurgeInterval)
	assert.Equal(t, 10*time.Minute, cfg.Scheduler.RateLimitPurgeInterval)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  driver: sqlite
  url: "file:rentaldesk.db"
booking:
  default_vat_percent: 10
  max_periods: 4
email:
  poll_interval: 30s
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("AVAILABILITY_MAX_PERIODS", "7")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file:rentaldesk.db", cfg.Database.URL)
	assert.Equal(t, 10.0, cfg.Booking.DefaultVATPercent)
	assert.Equal(t, 7, cfg.Booking.MaxPeriods)
	assert.Equal(t, 30*time.Second, cfg.Email.PollInterval)
	// untouched keys keep their defaults
	assert.Equal(t, 366, cfg.Booking.MaxWindowDays)
}

func TestLoad_BadFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
