package session

import "log/slog"

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithStore sets the ambient store the Manager delegates to
func WithStore(store Store) Option {
	return func(m *Manager) {
		if store == nil {
			// Fail fast: a Manager without a store cannot answer a single call
			panic("session: store must not be nil")
		}
		m.store = store
	}
}

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithName sets the session name applied to the store on construction
func WithName(name string) Option {
	return func(m *Manager) {
		m.config.Name = name
	}
}

// WithDefaultStartOptions appends start options applied to every Start call
// before the per-call ones.
func WithDefaultStartOptions(opts ...StartOption) Option {
	return func(m *Manager) {
		m.startOptions = append(m.startOptions, opts...)
	}
}

// WithLogger sets the logger used for life-cycle events and precondition violations
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}
