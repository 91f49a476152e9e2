// Package memory holds per-session conversation history in process memory.
// Sessions live until explicitly cleared; nothing is persisted.
package memory

import (
	"sync"
	"time"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one recorded message. Immutable once appended.
type Turn struct {
	Role      string `json:"role"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Store maps session ids to their ordered turn history. A single mutex
// serializes every operation; fetches return copies, never live slices.
type Store struct {
	mu       sync.Mutex
	sessions map[string][]Turn
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string][]Turn),
		now:      time.Now,
	}
}

// AddMessage appends a turn with the current UTC timestamp, creating the
// session if it does not exist yet.
func (s *Store) AddMessage(sessionID, role, text string) {
	ts := s.now().UTC().Format(time.RFC3339Nano)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], Turn{
		Role:      role,
		Text:      text,
		Timestamp: ts,
	})
}

// GetRecent returns the last limit turns in chronological order. A limit
// of zero or less, or a history shorter than limit, yields the full
// history. The limit counts every turn, system turns included.
func (s *Store) GetRecent(sessionID string, limit int) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := s.sessions[sessionID]
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	return copyTurns(turns)
}

// GetAll returns the full history for a session, empty for unknown ids.
func (s *Store) GetAll(sessionID string) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyTurns(s.sessions[sessionID])
}

// Clear removes the session entirely. No-op when absent.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Sessions returns the known session ids in no particular order.
func (s *Store) Sessions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids
}

func copyTurns(turns []Turn) []Turn {
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out
}
