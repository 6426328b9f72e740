// Package session provides a small, state-guarding facade over an ambient
// session subsystem. The facade exposes start/stop, key-value access,
// identifier management and regeneration, and refuses every call whose
// active/inactive precondition does not hold with a typed *StateError.
//
// The facade owns no session state. Data, identifier and name all live in a
// Store, the capability the Manager is built on. An in-memory MemoryStore
// ships out of the box so the Manager works, and can be tested, without a
// host session runtime.
//
// # Architecture
//
//	┌────────┐  status check  ┌───────────┐
//	│ Caller │ ─────────────► │  Manager  │ ──► *StateError (800 / 801)
//	└────────┘                └───────────┘
//	                                │ delegate
//	                                ▼
//	                          ┌───────────┐
//	                          │   Store   │ (MemoryStore, host adapter, …)
//	                          └───────────┘
//
// # Usage
//
//	import "github.com/dmitrymomot/sessionkit/pkg/session"
//
//	manager := session.New(session.WithName("APPSESSID"))
//
//	if err := manager.Start(ctx, session.WithCookieSecure(true)); err != nil {
//	    return err
//	}
//	_ = manager.Set("user", "alice")
//	user, ok, _ := session.String(manager, "user")
//
//	// Rotate the identifier after a privilege change
//	_ = manager.Regenerate(ctx, true)
//
//	// Persist the data and suspend the session
//	_ = manager.Close(ctx)
//
// # Operations and preconditions
//
// SetName, Start and SetID require an inactive session. Set, Get, All, Has,
// Remove, Regenerate, Destroy, Close and ID require an active one; ID
// additionally requires a non-empty identifier. IsActive never fails.
//
// # Configuration
//
// Start options (cookie lifetime and flags, GC max lifetime, strict mode,
// read-and-close) are resolved from Config, then WithDefaultStartOptions,
// then the per-call StartOption values, and handed to the store as is.
// LoadConfig reads Config from SESSION_* environment variables.
//
// # Error Handling
//
// Precondition violations return *StateError, which unwraps to one of:
//
//   - ErrSessionAlreadyActive – code 800, the session is active
//   - ErrSessionNotActive     – code 801, no session is active
//
// Store failures during Start, Regenerate, Destroy and Close are joined with
// ErrStartFailed, ErrRegenerateFailed, ErrDestroyFailed and ErrCloseFailed.
package session
