package session

import (
	"context"
	"log/slog"
)

type managerContextKey struct{}

// WithManager adds a session manager to the context
func WithManager(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, managerContextKey{}, m)
}

// FromContext retrieves a session manager from the context
func FromContext(ctx context.Context) (*Manager, bool) {
	m, ok := ctx.Value(managerContextKey{}).(*Manager)
	return m, ok && m != nil
}

// MustFromContext retrieves a session manager from the context or panics
func MustFromContext(ctx context.Context) *Manager {
	m, ok := FromContext(ctx)
	if !ok {
		panic("session: manager not found in context")
	}
	return m
}

// LoggerExtractor returns a logger.ContextExtractor that adds the id of the
// active session held by the context's Manager.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		m, ok := FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		id, ok := m.activeID()
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("session_id", id), true
	}
}
