package session

import "context"

// Status reports whether a session is open for reading and writing.
type Status int

const (
	// StatusInactive means no session is open
	StatusInactive Status = iota
	// StatusActive means a session is open
	StatusActive
)

// String returns a human-readable status name.
func (s Status) String() string {
	if s == StatusActive {
		return "active"
	}
	return "inactive"
}

// Store defines the ambient session primitives the Manager delegates to.
// The Store owns the session data, identifier and name; the Manager only
// guards access to them.
type Store interface {
	// Status reports the current session status
	Status() Status

	// Name returns the session name
	Name() string

	// SetName sets the name used by the next Start
	SetName(name string)

	// ID returns the current session identifier, empty if none
	ID() string

	// SetID sets the identifier used by the next Start
	SetID(id string)

	// Start starts a new session or resumes the one named by the preset identifier
	Start(ctx context.Context, opts StartOptions) error

	// Lookup reads a single value
	Lookup(key string) (any, bool)

	// Put writes a single value
	Put(key string, value any)

	// Delete removes a single value
	Delete(key string)

	// Snapshot returns a copy of the whole mapping
	Snapshot() map[string]any

	// Clear removes every value from the mapping
	Clear()

	// Regenerate replaces the identifier, optionally dropping the old record
	Regenerate(ctx context.Context, deleteOld bool) error

	// Destroy terminates the session and discards its record
	Destroy(ctx context.Context) error

	// WriteClose flushes the mapping and suspends the session
	WriteClose(ctx context.Context) error
}
