package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type cacheKey struct {
	typ    reflect.Type
	prefix string
}

var (
	mu    sync.Mutex
	cache = make(map[cacheKey]any)

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v based on its `env` struct tags.
//
// The first call loads a .env file from the working directory if one exists.
// Each configuration type is parsed once; later calls for the same type get
// the cached value, so environment changes after the first Load are not seen
// until ResetCache is called.
//
// Example:
//
//	type SessionConfig struct {
//		Name          string        `env:"SESSION_NAME" envDefault:"SESSID"`
//		GCMaxLifetime time.Duration `env:"SESSION_GC_MAX_LIFETIME" envDefault:"24m"`
//	}
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	return LoadWithPrefix(v, "")
}

// LoadWithPrefix works like Load but prepends prefix to every variable name,
// e.g. prefix "ADMIN_" reads ADMIN_SESSION_NAME for a SESSION_NAME tag.
// Values are cached per type and prefix.
func LoadWithPrefix[T any](v *T, prefix string) error {
	defaultEnvLoaded.Do(func() {
		// A missing .env file is fine
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := cacheKey{typ: reflect.TypeOf((*T)(nil)).Elem(), prefix: prefix}

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[key]; ok {
		typed, ok := cached.(T)
		if !ok {
			return ErrInvalidConfigType
		}
		*v = typed
		return nil
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, env.Options{Prefix: prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	cache[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads the given .env files (default: ./.env) into the process
// environment. Variables already set are not overridden, and earlier files
// win over later ones.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// ResetCache drops every cached configuration so the next Load parses the
// environment again.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}
