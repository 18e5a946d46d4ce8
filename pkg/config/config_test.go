package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
bot:
  default_language: id
  timezone: Asia/Jakarta
  max_file_size_mb: 20
  items_per_page: 3
  languages:
    id:
      start: "Kirim URL profil Instagram"
      invalid_url: "URL tidak valid"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "id", cfg.Bot.DefaultLanguage)
	assert.Equal(t, 3, cfg.Bot.ItemsPerPage)
	assert.Equal(t, int64(20*1024*1024), cfg.MaxFileSizeBytes())
	assert.Equal(t, "Asia/Jakarta", cfg.Location().String())
	assert.Equal(t, "URL tidak valid", cfg.Bot.Languages["id"]["invalid_url"])

	// defaults still apply to keys the file leaves out
	assert.Equal(t, 60*time.Second, cfg.Telegram.SendTimeout)
	assert.Equal(t, "instagram.com", cfg.Instagram.Host)
	assert.False(t, cfg.PostgresEnabled())
}

func TestLoadMissingFileUsesEnv(t *testing.T) {
	t.Setenv("BOT_ITEMS_PER_PAGE", "7")
	t.Setenv("INSTAGRAM_USER", "collector")
	t.Setenv("INSTAGRAM_SESSION_DIR", "/var/lib/bot")
	t.Setenv("TELEGRAM_ADMIN_CHAT_ID", "-1001")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Bot.ItemsPerPage)
	assert.Equal(t, "UTC", cfg.Bot.Timezone)
	assert.Equal(t, "/var/lib/bot/session_collector.json", cfg.SessionFile())
	assert.Equal(t, int64(-1001), cfg.Telegram.AdminChatID)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "non positive size",
			mutate:  func(c *Config) { c.Bot.MaxFileSizeMB = 0 },
			wantErr: "max_file_size_mb",
		},
		{
			name:    "non positive page size",
			mutate:  func(c *Config) { c.Bot.ItemsPerPage = -1 },
			wantErr: "items_per_page",
		},
		{
			name:    "unknown timezone",
			mutate:  func(c *Config) { c.Bot.Timezone = "Mars/Olympus" },
			wantErr: "timezone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.NoError(t, validConfig().Validate())
}

func TestGetDSN(t *testing.T) {
	c := validConfig()
	c.Postgres.User = "bot"
	c.Postgres.Pass = "secret"
	c.Postgres.Host = "db"
	c.Postgres.Port = 5432
	c.Postgres.Name = "profiles"
	c.Postgres.SslMode = "disable"

	assert.True(t, c.PostgresEnabled())
	assert.Equal(t, "postgres://bot:secret@db:5432/profiles?sslmode=disable", c.GetDSN())
}

func validConfig() *Config {
	c := &Config{}
	c.Bot.MaxFileSizeMB = 50
	c.Bot.ItemsPerPage = 5
	c.Bot.Timezone = "UTC"
	c.Telegram.Workers = 4
	return c
}
