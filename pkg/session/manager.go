package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

// Manager is a stateless facade over a Store. Every call checks the session
// status first and either delegates to the store or returns a *StateError.
type Manager struct {
	store        Store
	config       Config
	startOptions []StartOption
	logger       *slog.Logger
}

// New creates a new session manager with the given options.
// Without WithStore the Manager runs on a fresh MemoryStore.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore()
	}

	if m.config.Name != "" && m.store.Status() != StatusActive {
		m.store.SetName(m.config.Name)
	}

	m.logger = m.logger.With(logger.Component("session"))

	return m
}

// IsActive reports whether a session is currently active.
func (m *Manager) IsActive() bool {
	return m.store.Status() == StatusActive
}

// SetName sets the session name. The session must not be active.
func (m *Manager) SetName(name string) error {
	if m.IsActive() {
		return m.alreadyActive("set_name", "Cannot set session name, session already started.")
	}
	m.store.SetName(name)
	return nil
}

// Name returns the session name. It never fails.
func (m *Manager) Name() string {
	return m.store.Name()
}

// Start starts a new session or resumes the existing one.
// Per-call options are applied on top of the configured defaults.
func (m *Manager) Start(ctx context.Context, opts ...StartOption) error {
	if m.IsActive() {
		return m.alreadyActive("start", "Cannot start session, session already started.")
	}

	options := applyStartOptions(m.config.StartOptions(), m.startOptions)
	options = applyStartOptions(options, opts)

	if err := m.store.Start(ctx, options); err != nil {
		m.logger.ErrorContext(ctx, "failed to start session",
			logger.Operation("start"),
			logger.SessionName(m.store.Name()),
			logger.Error(err),
		)
		return errors.Join(ErrStartFailed, err)
	}

	m.logger.InfoContext(ctx, "session started",
		logger.SessionName(m.store.Name()),
		logger.SessionID(m.store.ID()),
		logger.Status(m.store.Status().String()),
	)
	return nil
}

// Set writes a session value.
func (m *Manager) Set(key string, value any) error {
	if !m.IsActive() {
		return m.notActive("set", "Cannot set session variable, session not started.")
	}
	m.store.Put(key, value)
	return nil
}

// Get returns a session value, or nil if the key is absent.
func (m *Manager) Get(key string) (any, error) {
	if !m.IsActive() {
		return nil, m.notActive("get", "Cannot get session variable, session not started.")
	}
	value, ok := m.store.Lookup(key)
	if !ok {
		return nil, nil
	}
	return value, nil
}

// All returns a copy of every session value.
func (m *Manager) All() (map[string]any, error) {
	if !m.IsActive() {
		return nil, m.notActive("all", "Cannot get session variables, session not started.")
	}
	snapshot := m.store.Snapshot()
	if snapshot == nil {
		return map[string]any{}, nil
	}
	return maps.Clone(snapshot), nil
}

// Has reports whether a session value is set. A key holding nil counts as unset.
func (m *Manager) Has(key string) (bool, error) {
	if !m.IsActive() {
		return false, m.notActive("has", "Cannot check session variable, session not started.")
	}
	value, ok := m.store.Lookup(key)
	return ok && value != nil, nil
}

// Remove deletes a session value. Removing a missing key is a no-op.
func (m *Manager) Remove(key string) error {
	if !m.IsActive() {
		return m.notActive("remove", "Cannot remove session variable, session not started.")
	}
	m.store.Delete(key)
	return nil
}

// Regenerate replaces the session identifier, keeping the data.
// When deleteOld is true the record stored under the old identifier is discarded.
func (m *Manager) Regenerate(ctx context.Context, deleteOld bool) error {
	if !m.IsActive() {
		return m.notActive("regenerate", "Cannot regenerate session ID, session not started.")
	}

	oldID := m.store.ID()
	if err := m.store.Regenerate(ctx, deleteOld); err != nil {
		m.logger.ErrorContext(ctx, "failed to regenerate session id",
			logger.Operation("regenerate"),
			logger.SessionID(oldID),
			logger.Error(err),
		)
		return errors.Join(ErrRegenerateFailed, err)
	}

	m.logger.InfoContext(ctx, "session id regenerated",
		logger.SessionID(m.store.ID()),
		slog.Bool("delete_old", deleteOld),
	)
	return nil
}

// Destroy clears the session data and terminates the session.
func (m *Manager) Destroy(ctx context.Context) error {
	if !m.IsActive() {
		return m.notActive("destroy", "Cannot destroy session, session not started.")
	}

	id := m.store.ID()
	m.store.Clear()
	if err := m.store.Destroy(ctx); err != nil {
		m.logger.ErrorContext(ctx, "failed to destroy session",
			logger.Operation("destroy"),
			logger.SessionID(id),
			logger.Error(err),
		)
		return errors.Join(ErrDestroyFailed, err)
	}

	m.logger.InfoContext(ctx, "session destroyed", logger.SessionID(id))
	return nil
}

// Close writes the session data and suspends the session.
func (m *Manager) Close(ctx context.Context) error {
	if !m.IsActive() {
		return m.notActive("close", "Cannot close session, session not started.")
	}

	id := m.store.ID()
	if err := m.store.WriteClose(ctx); err != nil {
		m.logger.ErrorContext(ctx, "failed to close session",
			logger.Operation("close"),
			logger.SessionID(id),
			logger.Error(err),
		)
		return errors.Join(ErrCloseFailed, err)
	}

	m.logger.InfoContext(ctx, "session closed", logger.SessionID(id))
	return nil
}

// ID returns the current session identifier.
// An active session without an identifier is reported as not started.
func (m *Manager) ID() (string, error) {
	if !m.IsActive() {
		return "", m.notActive("get_id", "Cannot get session ID, session not started.")
	}
	id := m.store.ID()
	if id == "" {
		return "", m.notActive("get_id", "Cannot get session ID, session not started.")
	}
	return id, nil
}

// activeID reads the identifier of the active session without logging.
func (m *Manager) activeID() (string, bool) {
	if !m.IsActive() {
		return "", false
	}
	id := m.store.ID()
	return id, id != ""
}

// SetID sets the identifier the next Start resumes. The session must not be active.
func (m *Manager) SetID(id string) error {
	if m.IsActive() {
		return m.alreadyActive("set_id", "Cannot set session ID, session already started.")
	}
	m.store.SetID(id)
	return nil
}

func (m *Manager) alreadyActive(op, message string) error {
	err := NewAlreadyActiveError(op, message)
	m.logger.Debug("session precondition failed",
		logger.Operation(op),
		logger.Status(StatusActive.String()),
		logger.Error(err),
	)
	return err
}

func (m *Manager) notActive(op, message string) error {
	err := NewNotActiveError(op, message)
	m.logger.Debug("session precondition failed",
		logger.Operation(op),
		logger.Status(m.store.Status().String()),
		logger.Error(err),
	)
	return err
}
