package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `yaml:"env" env:"APP_ENV" env-default:"development"`
		Port      int    `yaml:"port" env:"APP_PORT" env-default:"8080"`
		LogLevel  string `yaml:"log_level" env:"APP_LOG_LEVEL" env-default:"info"`
		SentryUrl string `yaml:"sentry_url" env:"SENTRY_URL"`
	} `yaml:"app"`
	Postgres struct {
		Port    int    `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `yaml:"host" env:"POSTGRES_HOST"`
		User    string `yaml:"user" env:"POSTGRES_USER"`
		Pass    string `yaml:"pass" env:"POSTGRES_PASS"`
		Name    string `yaml:"name" env:"POSTGRES_NAME"`
		SslMode string `yaml:"ssl_mode" env:"POSTGRES_SSL_MODE" env-default:"disable"`
	} `yaml:"postgres"`
	Telegram struct {
		BotToken    string        `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN"`
		SendTimeout time.Duration `yaml:"send_timeout" env:"TELEGRAM_SEND_TIMEOUT" env-default:"60s"`
		Workers     int           `yaml:"workers" env:"TELEGRAM_WORKERS" env-default:"16"`

		// AdminChatID receives startup failures. Zero disables the notice.
		AdminChatID int64 `yaml:"admin_chat_id" env:"TELEGRAM_ADMIN_CHAT_ID"`
	} `yaml:"telegram"`
	Instagram struct {
		User           string        `yaml:"user" env:"INSTAGRAM_USER"`
		Pass           string        `yaml:"pass" env:"INSTAGRAM_PASS"`
		SessionDir     string        `yaml:"session_dir" env:"INSTAGRAM_SESSION_DIR" env-default:"./sessions"`
		Host           string        `yaml:"host" env:"INSTAGRAM_HOST" env-default:"instagram.com"`
		RequestTimeout time.Duration `yaml:"request_timeout" env:"INSTAGRAM_REQUEST_TIMEOUT" env-default:"30s"`
		Pacing         bool          `yaml:"pacing" env:"INSTAGRAM_PACING" env-default:"true"`
		UserAgents     []string      `yaml:"user_agents" env:"INSTAGRAM_USER_AGENTS" env-separator:"|"`
	} `yaml:"instagram"`
	Bot struct {
		DefaultLanguage string                       `yaml:"default_language" env:"BOT_DEFAULT_LANGUAGE" env-default:"en"`
		Timezone        string                       `yaml:"timezone" env:"BOT_TIMEZONE" env-default:"UTC"`
		MaxFileSizeMB   float64                      `yaml:"max_file_size_mb" env:"BOT_MAX_FILE_SIZE_MB" env-default:"50"`
		ItemsPerPage    int                          `yaml:"items_per_page" env:"BOT_ITEMS_PER_PAGE" env-default:"5"`
		StagingDir      string                       `yaml:"staging_dir" env:"BOT_STAGING_DIR"`
		SelectionTTL    time.Duration                `yaml:"selection_ttl" env:"BOT_SELECTION_TTL" env-default:"24h"`
		SweepInterval   time.Duration                `yaml:"sweep_interval" env:"BOT_SWEEP_INTERVAL" env-default:"30m"`
		RateLimit       int                          `yaml:"rate_limit" env:"BOT_RATE_LIMIT" env-default:"6"`
		RatePeriod      time.Duration                `yaml:"rate_period" env:"BOT_RATE_PERIOD" env-default:"1m"`
		RateBurst       int                          `yaml:"rate_burst" env:"BOT_RATE_BURST" env-default:"3"`
		Languages       map[string]map[string]string `yaml:"languages"`
	} `yaml:"bot"`
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// New loads the process configuration once. Environment variables always win
// over the optional YAML file at CONFIG_PATH.
func New() (*Config, error) {
	once.Do(func() {
		path := os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "config/config.yaml"
		}
		cfg, loadErr = Load(path)
		if loadErr != nil {
			help, _ := cleanenv.GetDescription(&Config{}, nil)
			log.Printf("Failed to read configuration: %v\n%v", loadErr, help)
		}
	})
	return cfg, loadErr
}

// Load reads path when it exists and falls back to the environment only.
func Load(path string) (*Config, error) {
	c := &Config{}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, c)
	} else {
		err = cleanenv.ReadEnv(c)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Bot.MaxFileSizeMB <= 0 {
		errs = append(errs, fmt.Errorf("max_file_size_mb must be positive, got %v", c.Bot.MaxFileSizeMB))
	}
	if c.Bot.ItemsPerPage <= 0 {
		errs = append(errs, fmt.Errorf("items_per_page must be positive, got %d", c.Bot.ItemsPerPage))
	}
	if _, err := time.LoadLocation(c.Bot.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone %q: %w", c.Bot.Timezone, err))
	}
	if c.Telegram.Workers <= 0 {
		errs = append(errs, fmt.Errorf("telegram workers must be positive, got %d", c.Telegram.Workers))
	}
	return errors.Join(errs...)
}

// Location returns the display timezone. Validate has already proven it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Bot.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// MaxFileSizeBytes converts the configured ceiling to bytes.
func (c *Config) MaxFileSizeBytes() int64 {
	return int64(c.Bot.MaxFileSizeMB * 1024 * 1024)
}

// PostgresEnabled reports whether a database is configured. Without one the
// selection store stays in memory.
func (c *Config) PostgresEnabled() bool {
	return c.Postgres.Host != ""
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}

// SessionFile is the persisted Instagram session for the configured account.
func (c *Config) SessionFile() string {
	return fmt.Sprintf("%s/session_%s.json", c.Instagram.SessionDir, c.Instagram.User)
}
