package session

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"roasdash/adapters/sample"
	"roasdash/domain/campaign"
	"roasdash/domain/core"
	"roasdash/domain/ingestion"
)

// Session owns one user's four tables for the lifetime of a dashboard
// session. There is a single logical writer (the upload flow); readers only
// ever see copies, so concurrent dashboard requests cannot observe partial
// mutation.
type Session struct {
	ID        core.SessionID
	CreatedAt time.Time

	mu      sync.RWMutex
	data    campaign.Dataset
	loaded  map[campaign.DatasetKind]bool
	reports map[campaign.DatasetKind]ingestion.CoercionReport
}

// Loaded reports whether any dataset has been uploaded into the session
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.loaded) > 0
}

// KindLoaded reports whether a specific dataset kind has been uploaded
func (s *Session) KindLoaded(kind campaign.DatasetKind) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded[kind]
}

// SetTable stores a validated, cleaned table in the session, replacing any
// previous upload of the same kind.
func (s *Session) SetTable(kind campaign.DatasetKind, t ingestion.Table, report ingestion.CoercionReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ingestion.Decode(&s.data, t, kind)
	s.loaded[kind] = true
	s.reports[kind] = report
}

// Report returns the coercion report for an uploaded kind
func (s *Session) Report(kind campaign.DatasetKind) (ingestion.CoercionReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reports[kind]
	return r, ok
}

// dataset returns an isolated copy of the uploaded tables
func (s *Session) dataset() campaign.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Copy()
}

// Store holds all live sessions and the shared, memoized sample dataset.
// Sample generation is input-independent for a fixed config, so one
// generation is shared by every session that needs the demo fallback.
type Store struct {
	mu       sync.RWMutex
	sessions map[core.SessionID]*Session

	sampleCfg   sample.GeneratorConfig
	sampleGroup singleflight.Group
	sampleOnce  bool
	sampleData  campaign.Dataset
}

// NewStore creates a session store with the given sample-data configuration
func NewStore(sampleCfg sample.GeneratorConfig) *Store {
	return &Store{
		sessions:  make(map[core.SessionID]*Session),
		sampleCfg: sampleCfg,
	}
}

// Create starts a new empty session
func (st *Store) Create() *Session {
	s := &Session{
		ID:        core.SessionID(core.NewID()),
		CreatedAt: time.Now(),
		loaded:    make(map[campaign.DatasetKind]bool),
		reports:   make(map[campaign.DatasetKind]ingestion.CoercionReport),
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns a session by ID
func (st *Store) Get(id core.SessionID) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, core.ErrSessionNotFound
	}
	return s, nil
}

// GetOrCreate resolves a session ID, creating a fresh session when the ID is
// empty or unknown.
func (st *Store) GetOrCreate(id core.SessionID) *Session {
	if id != "" {
		if s, err := st.Get(id); err == nil {
			return s
		}
	}
	return st.Create()
}

// Drop discards a session and its tables
func (st *Store) Drop(id core.SessionID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Dataset returns the tables the pipeline should run on: the session's
// uploads when any exist, otherwise the full synthetic sample dataset.
// Either way the caller gets an isolated copy.
func (st *Store) Dataset(s *Session) campaign.Dataset {
	if s.Loaded() {
		return s.dataset()
	}
	return st.SampleData()
}

// SampleData returns the memoized synthetic dataset. Generation runs at most
// once per store regardless of how many sessions request it concurrently.
func (st *Store) SampleData() campaign.Dataset {
	st.mu.RLock()
	if st.sampleOnce {
		d := st.sampleData.Copy()
		st.mu.RUnlock()
		return d
	}
	st.mu.RUnlock()

	v, _, _ := st.sampleGroup.Do("sample", func() (interface{}, error) {
		d := sample.NewGenerator(st.sampleCfg).Generate()
		st.mu.Lock()
		st.sampleData = d
		st.sampleOnce = true
		st.mu.Unlock()
		return d, nil
	})
	return v.(campaign.Dataset).Copy()
}
