// Package conversation keeps each session's ordered turn history in memory.
//
// The store is bounded: at most MaxSessions sessions are kept, the least
// recently used one being evicted to make room, and sessions idle for
// longer than IdleTTL are dropped. Sessions currently held through Acquire
// are never evicted.
package conversation

import (
	"container/list"
	"sync"
	"time"

	"github.com/chriscow/charla/pkg/ai/llm"
)

const (
	// DefaultMaxSessions bounds the number of live sessions.
	DefaultMaxSessions = 10000
	// DefaultIdleTTL is how long an untouched session survives.
	DefaultIdleTTL = 2 * time.Hour
)

// Turn is one utterance in a conversation.
type Turn struct {
	Role    llm.MessageRole `json:"role"`
	Content string          `json:"content"`
}

// UserTurn returns a user turn with content.
func UserTurn(content string) Turn {
	return Turn{Role: llm.RoleUser, Content: content}
}

// AssistantTurn returns an assistant turn with content.
func AssistantTurn(content string) Turn {
	return Turn{Role: llm.RoleAssistant, Content: content}
}

// Options configures a Store. Zero values select the defaults; a negative
// IdleTTL disables idle expiry.
type Options struct {
	MaxSessions int
	IdleTTL     time.Duration
	// Now overrides the clock, for tests.
	Now func() time.Time
}

type session struct {
	key string
	mu  sync.Mutex // serializes whole exchanges

	// guarded by Store.mu
	turns        []Turn
	lastActivity time.Time
	holders      int
}

// Stats reports store counters.
type Stats struct {
	Sessions int
	Turns    int
	Evicted  int
	Expired  int
}

// Store maps session keys to turn histories.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*list.Element // value is *session
	lru      *list.List               // front is most recently used
	max      int
	ttl      time.Duration
	now      func() time.Time
	evicted  int
	expired  int
}

// NewStore creates an empty store.
func NewStore(opts Options) *Store {
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	if opts.IdleTTL == 0 {
		opts.IdleTTL = DefaultIdleTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		sessions: make(map[string]*list.Element),
		lru:      list.New(),
		max:      opts.MaxSessions,
		ttl:      opts.IdleTTL,
		now:      opts.Now,
	}
}

// GetOrCreate returns a copy of the session's history, registering an
// empty session when the key is unseen.
func (s *Store) GetOrCreate(key string) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.touchLocked(key)
	return cloneTurns(sess.turns)
}

// Append adds turns to the end of the session, creating it if absent.
// It waits for any exchange currently holding the session.
func (s *Store) Append(key string, turns ...Turn) {
	h := s.Acquire(key)
	defer h.Release()
	h.Append(turns...)
}

// Reset empties the session's history. Unknown keys are ignored.
func (s *Store) Reset(key string) {
	s.mu.Lock()
	el, ok := s.sessions[key]
	if !ok {
		s.mu.Unlock()
		return
	}
	sess := el.Value.(*session)
	sess.holders++
	s.mu.Unlock()

	h := s.lock(sess)
	defer h.Release()
	h.Reset()
}

// HistoryWindow returns the last maxTurns turns of the session, or all of
// them when fewer exist. It does not create sessions.
func (s *Store) HistoryWindow(key string, maxTurns int) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.sessions[key]
	if !ok || maxTurns <= 0 {
		return []Turn{}
	}
	return lastTurns(el.Value.(*session).turns, maxTurns)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Stats returns a snapshot of the store counters.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{Sessions: len(s.sessions), Evicted: s.evicted, Expired: s.expired}
	for _, el := range s.sessions {
		st.Turns += len(el.Value.(*session).turns)
	}
	return st
}

// CleanupExpired drops sessions idle for longer than the TTL and returns
// how many were removed.
func (s *Store) CleanupExpired() int {
	if s.ttl < 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	// held sessions can sit out of activity order, so check every entry
	for el := s.lru.Back(); el != nil; {
		prev := el.Prev()
		sess := el.Value.(*session)
		if !sess.lastActivity.After(cutoff) && sess.holders == 0 {
			s.removeLocked(el)
			removed++
		}
		el = prev
	}
	s.expired += removed
	return removed
}

// touchLocked returns the live session for key, creating it (and evicting
// to make room) when needed. Expired sessions are replaced by fresh ones.
func (s *Store) touchLocked(key string) *session {
	now := s.now()

	if el, ok := s.sessions[key]; ok {
		sess := el.Value.(*session)
		if s.ttl < 0 || sess.holders > 0 || now.Sub(sess.lastActivity) <= s.ttl {
			sess.lastActivity = now
			s.lru.MoveToFront(el)
			return sess
		}
		s.removeLocked(el)
		s.expired++
	}

	for len(s.sessions) >= s.max {
		if !s.evictOneLocked() {
			break
		}
	}

	sess := &session{key: key, lastActivity: now}
	s.sessions[key] = s.lru.PushFront(sess)
	return sess
}

// evictOneLocked removes the least recently used session not currently held.
func (s *Store) evictOneLocked() bool {
	for el := s.lru.Back(); el != nil; el = el.Prev() {
		if el.Value.(*session).holders == 0 {
			s.removeLocked(el)
			s.evicted++
			return true
		}
	}
	return false
}

func (s *Store) removeLocked(el *list.Element) {
	sess := el.Value.(*session)
	s.lru.Remove(el)
	delete(s.sessions, sess.key)
}

func lastTurns(turns []Turn, n int) []Turn {
	if n > len(turns) {
		n = len(turns)
	}
	return cloneTurns(turns[len(turns)-n:])
}

func cloneTurns(turns []Turn) []Turn {
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out
}
