package session

import (
	"context"
	"maps"
	"time"
)

// MemoryStore implements Store in process memory. It stands in for a host
// session subsystem: it tracks the status, name and identifier of the current
// session and keeps suspended sessions in a table keyed by identifier, so
// WriteClose followed by Start with the same identifier resumes the data.
//
// A MemoryStore is not safe for concurrent use.
type MemoryStore struct {
	status  Status
	name    string
	id      string
	data    map[string]any
	options StartOptions
	records map[string]*record

	generateID IDGenerator
	now        func() time.Time
}

type record struct {
	data    map[string]any
	savedAt time.Time
}

// MemoryStoreOption is a functional option for MemoryStore
type MemoryStoreOption func(*MemoryStore)

// WithIDGenerator sets the identifier generator (default: RandomID)
func WithIDGenerator(gen IDGenerator) MemoryStoreOption {
	return func(s *MemoryStore) {
		if gen != nil {
			s.generateID = gen
		}
	}
}

// WithTimeFunc sets the clock used for garbage collection of suspended sessions
func WithTimeFunc(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		records:    make(map[string]*record),
		generateID: RandomID,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Status reports the current session status
func (s *MemoryStore) Status() Status {
	return s.status
}

// Name returns the session name
func (s *MemoryStore) Name() string {
	return s.name
}

// SetName sets the session name
func (s *MemoryStore) SetName(name string) {
	s.name = name
}

// ID returns the current session identifier
func (s *MemoryStore) ID() string {
	return s.id
}

// SetID sets the identifier resumed by the next Start
func (s *MemoryStore) SetID(id string) {
	s.id = id
}

// Start starts a new session or resumes a suspended one.
func (s *MemoryStore) Start(ctx context.Context, opts StartOptions) error {
	if s.status == StatusActive {
		return ErrSessionAlreadyActive
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	id := s.id
	if id != "" {
		if err := ValidateID(id); err != nil {
			return err
		}
	}

	s.options = opts
	s.GC(ctx)

	var data map[string]any
	if id != "" {
		if rec, ok := s.records[id]; ok {
			data = maps.Clone(rec.data)
		} else if opts.UseStrictMode {
			// Unknown identifiers are never adopted in strict mode
			id = ""
		}
	}

	if id == "" {
		newID, err := s.generateID()
		if err != nil {
			return err
		}
		id = newID
	}

	if data == nil {
		data = make(map[string]any)
	}

	s.id = id
	s.data = data
	s.status = StatusActive

	if opts.ReadAndClose {
		s.status = StatusInactive
	}

	return nil
}

// Lookup reads a single value
func (s *MemoryStore) Lookup(key string) (any, bool) {
	val, ok := s.data[key]
	return val, ok
}

// Put writes a single value
func (s *MemoryStore) Put(key string, value any) {
	if s.data == nil {
		s.data = make(map[string]any)
	}
	s.data[key] = value
}

// Delete removes a single value
func (s *MemoryStore) Delete(key string) {
	delete(s.data, key)
}

// Snapshot returns a copy of the session data
func (s *MemoryStore) Snapshot() map[string]any {
	if s.data == nil {
		return map[string]any{}
	}
	return maps.Clone(s.data)
}

// Clear removes all data from the session
func (s *MemoryStore) Clear() {
	s.data = make(map[string]any)
}

// Regenerate moves the session to a new identifier. The data is carried over;
// the old record is dropped when deleteOld is true and otherwise keeps the
// current data.
func (s *MemoryStore) Regenerate(ctx context.Context, deleteOld bool) error {
	if s.status != StatusActive {
		return ErrSessionNotActive
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	newID, err := s.generateID()
	if err != nil {
		return err
	}

	if deleteOld {
		delete(s.records, s.id)
	} else if s.id != "" {
		s.save(s.id)
	}

	s.id = newID
	return nil
}

// Destroy discards the stored record and ends the session. The in-memory
// data is left as is; callers clear it first when they need to.
func (s *MemoryStore) Destroy(ctx context.Context) error {
	if s.status != StatusActive {
		return ErrSessionNotActive
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	delete(s.records, s.id)
	s.id = ""
	s.status = StatusInactive
	return nil
}

// WriteClose stores the session data under the current identifier and
// suspends the session. The identifier is kept so Start can resume it.
func (s *MemoryStore) WriteClose(ctx context.Context) error {
	if s.status != StatusActive {
		return ErrSessionNotActive
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.save(s.id)
	s.status = StatusInactive
	return nil
}

// GC removes suspended sessions older than the configured GCMaxLifetime and
// returns how many were removed. The active session is never collected.
func (s *MemoryStore) GC(ctx context.Context) int {
	if s.options.GCMaxLifetime <= 0 {
		return 0
	}

	now := s.now()
	removed := 0
	for id, rec := range s.records {
		if ctx.Err() != nil {
			break
		}
		if s.status == StatusActive && id == s.id {
			continue
		}
		if now.Sub(rec.savedAt) > s.options.GCMaxLifetime {
			delete(s.records, id)
			removed++
		}
	}
	return removed
}

// Options returns the options the last Start was called with
func (s *MemoryStore) Options() StartOptions {
	return s.options
}

// Len returns the number of stored session records
func (s *MemoryStore) Len() int {
	return len(s.records)
}

func (s *MemoryStore) save(id string) {
	s.records[id] = &record{
		data:    maps.Clone(s.data),
		savedAt: s.now(),
	}
}
