package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/config"
)

// Config holds session configuration
type Config struct {
	// Name is the session name applied to the store when the Manager is created (default: "SESSID")
	Name string `env:"SESSION_NAME" envDefault:"SESSID"`

	CookieLifetime time.Duration `env:"SESSION_COOKIE_LIFETIME" envDefault:"0s"`
	CookiePath     string        `env:"SESSION_COOKIE_PATH" envDefault:"/"`
	CookieDomain   string        `env:"SESSION_COOKIE_DOMAIN" envDefault:""`
	CookieSecure   bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	CookieHTTPOnly bool          `env:"SESSION_COOKIE_HTTP_ONLY" envDefault:"true"`
	CookieSameSite http.SameSite `env:"SESSION_COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode

	// GCMaxLifetime for suspended sessions (0 to keep them forever)
	GCMaxLifetime time.Duration `env:"SESSION_GC_MAX_LIFETIME" envDefault:"24m"`

	// UseStrictMode rejects session identifiers the store has not issued
	UseStrictMode bool `env:"SESSION_USE_STRICT_MODE" envDefault:"true"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		Name:           "SESSID",
		CookieLifetime: 0,
		CookiePath:     "/",
		CookieDomain:   "",
		CookieSecure:   false,
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteLaxMode,
		GCMaxLifetime:  24 * time.Minute,
		UseStrictMode:  true,
	}
}

// StartOptions returns the start options the configuration describes
func (c Config) StartOptions() StartOptions {
	return StartOptions{
		CookieLifetime: c.CookieLifetime,
		CookiePath:     c.CookiePath,
		CookieDomain:   c.CookieDomain,
		CookieSecure:   c.CookieSecure,
		CookieHTTPOnly: c.CookieHTTPOnly,
		CookieSameSite: c.CookieSameSite,
		GCMaxLifetime:  c.GCMaxLifetime,
		UseStrictMode:  c.UseStrictMode,
	}
}

// LoadConfig reads Config from the environment (and a .env file, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig creates a new Manager from the provided Config.
// Options are applied after the configuration, so they win.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := []Option{
		WithConfig(cfg),
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
