package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config contains runtime configuration values.
type Config struct {
	GitHubAPIURL string `env:"LEETLINK_GITHUB_API_URL" envDefault:"https://api.github.com"`
	GitHubWebURL string `env:"LEETLINK_GITHUB_WEB_URL" envDefault:"https://github.com"`
	LeetCodeURL  string `env:"LEETLINK_LEETCODE_URL" envDefault:"https://leetcode.com"`

	// Zero disables the client-side timeout.
	RequestTimeout time.Duration `env:"LEETLINK_REQUEST_TIMEOUT" envDefault:"0s"`

	// SettingsPath selects the settings backend by extension. Empty means
	// ~/.leetlink/settings.db.
	SettingsPath string `env:"LEETLINK_SETTINGS"`

	LogLevel    string `env:"LEETLINK_LOG_LEVEL" envDefault:"info"`
	Environment string `env:"LEETLINK_ENV" envDefault:"development"`

	// Optional. Push outcomes are only logged when empty.
	DiscordWebhookURL string `env:"DISCORD_WEBHOOK_URL"`

	BrowserURL      string `env:"LEETLINK_BROWSER_URL"`
	BrowserHeadless bool   `env:"LEETLINK_BROWSER_HEADLESS" envDefault:"false"`
	// ProblemURL is opened when the browser has no problem page open.
	ProblemURL string `env:"LEETLINK_PROBLEM_URL"`

	WatchSchedule string `env:"LEETLINK_WATCH_SCHEDULE" envDefault:"@every 5s"`
	WatchDir      string `env:"LEETLINK_WATCH_DIR"`

	ListenAddr    string `env:"LEETLINK_LISTEN_ADDR" envDefault:"127.0.0.1:8787"`
	AllowedOrigin string `env:"LEETLINK_ALLOWED_ORIGIN" envDefault:"https://leetcode.com"`
}

// Load builds a Config from a .env file, if present, and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks the values that would otherwise fail late.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.GitHubAPIURL, validation.Required, is.URL),
		validation.Field(&c.GitHubWebURL, validation.Required, is.URL),
		validation.Field(&c.LeetCodeURL, validation.Required, is.URL),
		validation.Field(&c.RequestTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.DiscordWebhookURL, is.URL),
		validation.Field(&c.WatchSchedule, validation.Required, validation.By(validSchedule)),
		validation.Field(&c.ListenAddr, validation.Required),
	)
}

// IsProduction returns true when the environment is set to production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func validSchedule(value any) error {
	spec, _ := value.(string)
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid schedule: %w", err)
	}
	return nil
}
