// Package config loads the server settings from the environment, after an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	Env         string `env:"ENV" envDefault:"development"`
	ExternalURL string `env:"EXTERNAL_URL" envDefault:"localhost:8080"`
	FrontendURL string `env:"FRONTEND_URL"`

	DB          DBConfig
	Testimonial TestimonialConfig
	RateLimiter RateLimiterConfig
	Mail        MailConfig
	Push        PushConfig
	Auth        AuthConfig

	TrustProxyHeaders bool `env:"TRUSTED_PROXY_HEADERS" envDefault:"true"`
}

type DBConfig struct {
	Addr        string        `env:"DB_ADDR,required"`
	MaxConns    int32         `env:"DB_MAX_CONNS" envDefault:"30"`
	MaxIdleTime time.Duration `env:"DB_MAX_IDLE_TIME" envDefault:"15m"`
}

type TestimonialConfig struct {
	RateLimitEnabled bool          `env:"TESTIMONIAL_RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitMax     int           `env:"TESTIMONIAL_RATE_LIMIT_MAX" envDefault:"5"`
	RateLimitWindow  time.Duration `env:"TESTIMONIAL_RATE_LIMIT_WINDOW" envDefault:"1h"`
	DefaultLimit     int           `env:"TESTIMONIAL_DEFAULT_LIMIT" envDefault:"10"`
	MaxLimit         int           `env:"TESTIMONIAL_MAX_LIMIT" envDefault:"50"`
	SpamWords        []string      `env:"TESTIMONIAL_SPAM_WORDS" envSeparator:","`
}

type RateLimiterConfig struct {
	Enabled              bool          `env:"RATELIMITER_ENABLED" envDefault:"false"`
	RequestsPerTimeFrame int           `env:"RATELIMITER_REQUESTS_COUNT" envDefault:"200"`
	TimeFrame            time.Duration `env:"RATELIMITER_TIMEFRAME" envDefault:"5s"`
}

type MailConfig struct {
	Host              string `env:"SMTP_HOST"`
	Port              int    `env:"SMTP_PORT" envDefault:"587"`
	Username          string `env:"SMTP_USERNAME"`
	Password          string `env:"SMTP_PASSWORD"`
	FromEmail         string `env:"MAIL_FROM_EMAIL" envDefault:"noreply@localhost"`
	FromName          string `env:"MAIL_FROM_NAME" envDefault:"Mahadev Tent House"`
	NotificationEmail string `env:"NOTIFICATION_EMAIL"`
}

type PushConfig struct {
	AccessToken string   `env:"EXPO_ACCESS_TOKEN"`
	AdminTokens []string `env:"ADMIN_EXPO_TOKENS" envSeparator:","`
}

type AuthConfig struct {
	BasicUser       string        `env:"AUTH_BASIC_USER" envDefault:"admin"`
	BasicPassHash   string        `env:"AUTH_BASIC_PASS_HASH"`
	TokenSecret     string        `env:"AUTH_TOKEN_SECRET"`
	RefreshSecret   string        `env:"AUTH_TOKEN_REFRESH_SECRET"`
	Issuer          string        `env:"AUTH_TOKEN_ISS" envDefault:"tenthouse"`
	AccessTokenExp  time.Duration `env:"AUTH_ACCESS_TOKEN_EXP" envDefault:"12h"`
	RefreshTokenExp time.Duration `env:"AUTH_REFRESH_TOKEN_EXP" envDefault:"168h"`
}

// MailEnabled reports whether SMTP notifications can be sent.
func (m MailConfig) MailEnabled() bool {
	return m.Host != "" && m.NotificationEmail != ""
}

// Load reads .env files (missing files are ignored) and parses the
// environment into a Config.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var problems []string
	if c.Testimonial.RateLimitMax < 0 {
		problems = append(problems, "TESTIMONIAL_RATE_LIMIT_MAX must not be negative")
	}
	if c.Testimonial.MaxLimit < 1 {
		problems = append(problems, "TESTIMONIAL_MAX_LIMIT must be at least 1")
	}
	if c.Testimonial.DefaultLimit < 1 || c.Testimonial.DefaultLimit > c.Testimonial.MaxLimit {
		problems = append(problems, "TESTIMONIAL_DEFAULT_LIMIT must be between 1 and TESTIMONIAL_MAX_LIMIT")
	}
	if c.Auth.TokenSecret == "" || c.Auth.RefreshSecret == "" {
		problems = append(problems, "AUTH_TOKEN_SECRET and AUTH_TOKEN_REFRESH_SECRET are required")
	}
	if c.Auth.BasicPassHash == "" {
		problems = append(problems, "AUTH_BASIC_PASS_HASH is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
