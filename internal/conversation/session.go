package conversation

// Handle is exclusive access to one session. While a handle is held no
// other exchange can read or append to the session and it cannot be
// evicted. Release must be called exactly once.
type Handle struct {
	store    *Store
	sess     *session
	released bool
}

// Acquire locks the session for key, creating it if absent, and blocks
// until any other holder releases it.
func (s *Store) Acquire(key string) *Handle {
	s.mu.Lock()
	sess := s.touchLocked(key)
	sess.holders++
	s.mu.Unlock()

	return s.lock(sess)
}

// lock takes the session mutex. The caller has already counted itself in
// sess.holders.
func (s *Store) lock(sess *session) *Handle {
	sess.mu.Lock()
	return &Handle{store: s, sess: sess}
}

// History returns the last maxTurns turns; maxTurns < 0 returns all.
func (h *Handle) History(maxTurns int) []Turn {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	if maxTurns < 0 {
		return cloneTurns(h.sess.turns)
	}
	return lastTurns(h.sess.turns, maxTurns)
}

// Append adds turns to the session.
func (h *Handle) Append(turns ...Turn) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	h.sess.turns = append(h.sess.turns, turns...)
	h.sess.lastActivity = h.store.now()
}

// Reset empties the session.
func (h *Handle) Reset() {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	h.sess.turns = nil
	h.sess.lastActivity = h.store.now()
}

// Release unlocks the session and marks it as just used. Extra calls
// are no-ops.
func (h *Handle) Release() {
	if h.released {
		return
	}
	h.released = true

	h.store.mu.Lock()
	h.sess.holders--
	h.sess.lastActivity = h.store.now()
	if el, ok := h.store.sessions[h.sess.key]; ok && el.Value == h.sess {
		h.store.lru.MoveToFront(el)
	}
	h.store.mu.Unlock()

	h.sess.mu.Unlock()
}
