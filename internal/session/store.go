package session

import (
	"sync"
	"time"

	"FundPicker/internal/model"
	"FundPicker/internal/strategy"

	"github.com/rs/zerolog"
)

// Store keeps one Session per conversation. A Session is only touched
// inside Do, so it never sees two writers at once.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	catalog  []model.Fund
	engine   *strategy.Engine
	ttl      time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// NewStore creates a Store. Sessions idle for longer than ttl are removed by Sweep;
// a ttl of zero or less keeps them until Drop.
func NewStore(catalog []model.Fund, engine *strategy.Engine, ttl time.Duration, log zerolog.Logger) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		catalog:  catalog,
		engine:   engine,
		ttl:      ttl,
		now:      time.Now,
		log:      log.With().Str("component", "session_store").Logger(),
	}
}

// Do runs fn against the session for id, creating it on first use.
func (st *Store) Do(id string, fn func(*Session)) {
	st.mu.Lock()
	defer st.mu.Unlock()

	e, ok := st.sessions[id]
	if !ok {
		e = &entry{session: New(id, st.catalog, st.engine)}
		st.sessions[id] = e
		st.log.Debug().Str("session", id).Msg("session created")
	}
	e.lastSeen = st.now()
	fn(e.session)
}

// Drop ends the session for id.
func (st *Store) Drop(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep removes sessions idle for longer than the store's TTL and returns
// how many were removed.
func (st *Store) Sweep() int {
	if st.ttl <= 0 {
		return 0
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	cutoff := st.now().Add(-st.ttl)
	removed := 0
	for id, e := range st.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		st.log.Info().Int("removed", removed).Int("remaining", len(st.sessions)).Msg("idle sessions swept")
	}
	return removed
}
