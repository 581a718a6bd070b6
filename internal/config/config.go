package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"localeaudit/internal/domain"
	"localeaudit/pkg/keyglob"
)

type Config struct {
	LocaleRoot       string
	LocalesAvailable []string
	PathAnchor       string
	PreviewLocale    string
	PreviewLength    int
	IgnoreKeys       []string
	DatabaseURL      string
	MigrationsPath   string
	DiscordToken     string
	ReportChannelID  string
	LogLevel         logrus.Level
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment (CI, Docker, etc.).
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from getenv and validates it.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		LocaleRoot:       getenv("LOCALE_ROOT"),
		LocalesAvailable: splitList(getenv("LOCALES_AVAILABLE")),
		PathAnchor:       getenv("PATH_ANCHOR"),
		PreviewLocale:    getenv("PREVIEW_LOCALE"),
		IgnoreKeys:       splitList(getenv("IGNORE_KEYS")),
		DatabaseURL:      getenv("DATABASE_URL"),
		MigrationsPath:   getenv("MIGRATIONS_PATH"),
		DiscordToken:     getenv("DISCORD_TOKEN"),
		ReportChannelID:  getenv("REPORT_CHANNEL_ID"),
	}

	if err := cfg.parse(getenv); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) parse(getenv func(string) string) error {
	c.PreviewLength = 255
	if raw := strings.TrimSpace(getenv("PREVIEW_LENGTH")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: PREVIEW_LENGTH must be an integer (%q)", domain.ErrInvalidConfig, raw)
		}
		c.PreviewLength = n
	}

	c.LogLevel = logrus.WarnLevel
	if raw := strings.TrimSpace(getenv("LOG_LEVEL")); raw != "" {
		level, err := logrus.ParseLevel(raw)
		if err != nil {
			return fmt.Errorf("%w: LOG_LEVEL: %v", domain.ErrInvalidConfig, err)
		}
		c.LogLevel = level
	}
	return nil
}

// validate applies the rules and defaults on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.LocaleRoot) == "" {
		c.LocaleRoot = "./locale"
	}
	if c.PathAnchor == "" {
		c.PathAnchor = "locale"
	}
	if strings.TrimSpace(c.PreviewLocale) == "" {
		c.PreviewLocale = "en_US"
	}
	if c.MigrationsPath == "" {
		c.MigrationsPath = "migrations"
	}

	if c.PreviewLength <= 0 {
		return fmt.Errorf("%w: PREVIEW_LENGTH must be positive (%d)", domain.ErrInvalidConfig, c.PreviewLength)
	}

	if _, err := keyglob.Compile(c.IgnoreKeys); err != nil {
		return fmt.Errorf("%w: IGNORE_KEYS: %v", domain.ErrInvalidConfig, err)
	}

	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("%w: DATABASE_URL (%q): %v", domain.ErrInvalidConfig, c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%w: DATABASE_URL (%q): missing scheme or host", domain.ErrInvalidConfig, c.DatabaseURL)
		}
	}

	for _, r := range c.ReportChannelID {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: REPORT_CHANNEL_ID must be a Discord channel ID (digits only)", domain.ErrInvalidConfig)
		}
	}
	if c.ReportChannelID != "" && strings.TrimSpace(c.DiscordToken) == "" {
		return fmt.Errorf("%w: DISCORD_TOKEN is required when REPORT_CHANNEL_ID is set", domain.ErrInvalidConfig)
	}

	return nil
}

// HistoryEnabled reports whether an audit history database is configured.
func (c *Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}

// DiscordEnabled reports whether Discord notifications are configured.
func (c *Config) DiscordEnabled() bool {
	return c.ReportChannelID != ""
}

func splitList(value string) []string {
	var out []string
	for _, s := range strings.Split(value, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
