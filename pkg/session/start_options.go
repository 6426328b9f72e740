package session

import (
	"net/http"
	"time"
)

// StartOptions configures how the store starts or resumes a session.
// The Manager resolves them from Config and per-call StartOption values and
// passes them to the store untouched.
type StartOptions struct {
	CookieLifetime time.Duration
	CookiePath     string
	CookieDomain   string
	CookieSecure   bool
	CookieHTTPOnly bool
	CookieSameSite http.SameSite

	// GCMaxLifetime is how long a suspended session survives without being resumed (0 keeps it forever)
	GCMaxLifetime time.Duration

	// UseStrictMode refuses preset identifiers the store does not know
	UseStrictMode bool

	// ReadAndClose loads the session data and suspends the session right away
	ReadAndClose bool
}

// StartOption is a functional option for a single Start call
type StartOption func(*StartOptions)

// WithCookieLifetime sets the session cookie lifetime (0 means until the browser closes)
func WithCookieLifetime(d time.Duration) StartOption {
	return func(o *StartOptions) {
		o.CookieLifetime = d
	}
}

// WithCookiePath sets the session cookie path
func WithCookiePath(path string) StartOption {
	return func(o *StartOptions) {
		o.CookiePath = path
	}
}

// WithCookieDomain sets the session cookie domain
func WithCookieDomain(domain string) StartOption {
	return func(o *StartOptions) {
		o.CookieDomain = domain
	}
}

// WithCookieSecure sets the Secure flag of the session cookie
func WithCookieSecure(secure bool) StartOption {
	return func(o *StartOptions) {
		o.CookieSecure = secure
	}
}

// WithCookieHTTPOnly sets the HttpOnly flag of the session cookie
func WithCookieHTTPOnly(httpOnly bool) StartOption {
	return func(o *StartOptions) {
		o.CookieHTTPOnly = httpOnly
	}
}

// WithCookieSameSite sets the SameSite mode of the session cookie
func WithCookieSameSite(sameSite http.SameSite) StartOption {
	return func(o *StartOptions) {
		o.CookieSameSite = sameSite
	}
}

// WithGCMaxLifetime sets how long suspended sessions are kept
func WithGCMaxLifetime(d time.Duration) StartOption {
	return func(o *StartOptions) {
		o.GCMaxLifetime = d
	}
}

// WithStrictMode toggles rejection of unknown preset identifiers
func WithStrictMode(strict bool) StartOption {
	return func(o *StartOptions) {
		o.UseStrictMode = strict
	}
}

// WithReadAndClose makes Start load the data without keeping the session open
func WithReadAndClose(readAndClose bool) StartOption {
	return func(o *StartOptions) {
		o.ReadAndClose = readAndClose
	}
}

// applyStartOptions copies base and applies opts on top; base is not modified.
func applyStartOptions(base StartOptions, opts []StartOption) StartOptions {
	result := base
	for _, opt := range opts {
		if opt != nil {
			opt(&result)
		}
	}
	return result
}
