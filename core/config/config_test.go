package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
	assert.Equal(t, "inline", cfg.Timesheet.NotificationAck)
	assert.Equal(t, "timecard-submitted", cfg.Timesheet.SubmissionTopic)
	assert.False(t, cfg.Storage.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "DATABASE_DRIVER=sqlite\nDATABASE_NAME=:memory:\nTIMESHEET_NOTIFICATION_ACK=event\nCACHE_DRIVER=redis\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"DATABASE_DRIVER", "DATABASE_NAME", "TIMESHEET_NOTIFICATION_ACK", "CACHE_DRIVER"} {
			_ = os.Unsetenv(k)
		}
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.Name)
	assert.Equal(t, "event", cfg.Timesheet.NotificationAck)
	assert.Equal(t, "redis", cfg.Cache.Driver)
}

func TestValidate(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	cfg.Timesheet.NotificationAck = "later"
	assert.EqualError(t, cfg.Validate(), `invalid notification_ack "later": must be inline or event`)

	cfg.Timesheet.NotificationAck = "inline"
	cfg.Cache.Driver = "memcached"
	assert.EqualError(t, cfg.Validate(), "unsupported cache driver: memcached")

	cfg.Server.Port = ""
	assert.EqualError(t, cfg.Validate(), "server port is required")
}
