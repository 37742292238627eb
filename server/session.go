package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	sim "github.com/rajvardhan161/os-lab/sim"
)

// Session retains one completed simulation so the front end can re-render
// it without re-running. The engine itself keeps no state between calls;
// whatever "current simulation" a user sees lives here, owned by the
// serving layer.
type Session struct {
	ID        string                  `json:"id"`
	CreatedAt time.Time               `json:"created_at"`
	Kind      string                  `json:"kind"` // "paging" or "frag"
	Paging    *PagingResult           `json:"paging,omitempty"`
	Snapshots []sim.MemoryMap         `json:"snapshots,omitempty"`
	FragStats *sim.FragStats          `json:"frag_stats,omitempty"`
	Summary   *sim.ReplacementSummary `json:"summary,omitempty"`
}

// PagingResult bundles a replacement run's inputs and timeline.
type PagingResult struct {
	Refs     []sim.PageID  `json:"refs"`
	Frames   int           `json:"frames"`
	Timeline sim.Timeline  `json:"timeline"`
	Algo     sim.Algorithm `json:"algorithm"`
}

// SessionStore is a concurrency-safe in-memory session map keyed by UUID.
// Sessions never touch disk; restarting the server forgets them all.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Put stores the session under a fresh UUID and returns the id.
func (st *SessionStore) Put(s *Session) string {
	st.mu.Lock()
	defer st.mu.Unlock()
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now()
	st.sessions[s.ID] = s
	SessionsLive.Set(float64(len(st.sessions)))
	return s.ID
}

// Get returns the session for id, or nil when unknown.
func (st *SessionStore) Get(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// Delete removes the session for id, reporting whether it existed.
func (st *SessionStore) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	_, ok := st.sessions[id]
	delete(st.sessions, id)
	SessionsLive.Set(float64(len(st.sessions)))
	return ok
}

// Len returns the number of retained sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
