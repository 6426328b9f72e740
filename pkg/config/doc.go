// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv (.env files) with
// github.com/caarlos0/env/v11 (struct tag parsing):
//
//   - Load / MustLoad parse the environment into any struct with `env` tags.
//   - LoadWithPrefix reads the same struct from prefixed variable names.
//   - LoadEnv / MustLoadEnv pull extra .env files into the environment.
//   - Parsed values are cached per type and prefix; ResetCache clears them.
//
// # Usage
//
//	import "github.com/dmitrymomot/sessionkit/pkg/config"
//
//	var cfg session.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors, comparable with errors.Is:
//
//   - ErrParsingConfig     – env vars could not be parsed into the struct
//   - ErrInvalidConfigType – a cached value has an unexpected type
//   - ErrNilPointer        – nil pointer passed to Load
//   - ErrLoadingEnvFile    – a file given to LoadEnv could not be read
package config
