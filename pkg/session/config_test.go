package session_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/config"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestDefaultConfig(t *testing.T) {
	cfg := session.DefaultConfig()

	assert.Equal(t, "SESSID", cfg.Name)
	assert.Equal(t, time.Duration(0), cfg.CookieLifetime)
	assert.Equal(t, "/", cfg.CookiePath)
	assert.Empty(t, cfg.CookieDomain)
	assert.False(t, cfg.CookieSecure)
	assert.True(t, cfg.CookieHTTPOnly)
	assert.Equal(t, http.SameSiteLaxMode, cfg.CookieSameSite)
	assert.Equal(t, 24*time.Minute, cfg.GCMaxLifetime)
	assert.True(t, cfg.UseStrictMode)
}

func TestNewFromConfig(t *testing.T) {
	store := session.NewMemoryStore()
	cfg := session.Config{
		Name:           "APPSESSID",
		CookieLifetime: time.Hour,
		CookiePath:     "/app",
		CookieSecure:   true,
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteStrictMode,
		GCMaxLifetime:  time.Hour,
	}

	manager := session.NewFromConfig(cfg, session.WithStore(store))
	require.NoError(t, manager.Start(context.Background()))

	assert.Equal(t, "APPSESSID", store.Name())
	opts := store.Options()
	assert.Equal(t, time.Hour, opts.CookieLifetime)
	assert.Equal(t, "/app", opts.CookiePath)
	assert.True(t, opts.CookieSecure)
	assert.Equal(t, http.SameSiteStrictMode, opts.CookieSameSite)
	assert.False(t, opts.UseStrictMode)
}

func TestLoadConfig(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	t.Setenv("SESSION_NAME", "ENVSESSID")
	t.Setenv("SESSION_COOKIE_LIFETIME", "2h")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("SESSION_COOKIE_SAME_SITE", "3")
	t.Setenv("SESSION_USE_STRICT_MODE", "false")

	cfg, err := session.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "ENVSESSID", cfg.Name)
	assert.Equal(t, 2*time.Hour, cfg.CookieLifetime)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, http.SameSiteStrictMode, cfg.CookieSameSite)
	assert.False(t, cfg.UseStrictMode)
	assert.Equal(t, "/", cfg.CookiePath, "unset variables fall back to defaults")
	assert.Equal(t, 24*time.Minute, cfg.GCMaxLifetime)
}
