package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ericogr/gridstrike/internal/game"

	"github.com/google/uuid"
)

// Registry owns the lifecycle of live matches: create, lookup, dispose.
// It replaces any ambient global match map; callers receive it by
// injection. Matches live only in memory.
type Registry struct {
	mu      sync.Mutex
	matches map[string]*MatchSession

	rules    *game.Ruleset
	newID    IDGenerator
	newRand  func() *rand.Rand
	onFinish FinishHook
}

// NewRegistry builds a registry. newID and newRand may be nil, in which
// case UUIDs and a time-seeded source are used; tests inject fixed
// sequences and seeds instead.
func NewRegistry(rules *game.Ruleset, newID IDGenerator, newRand func() *rand.Rand, onFinish FinishHook) *Registry {
	if newID == nil {
		newID = uuid.NewString
	}
	if newRand == nil {
		newRand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	return &Registry{
		matches:  make(map[string]*MatchSession),
		rules:    rules,
		newID:    newID,
		newRand:  newRand,
		onFinish: onFinish,
	}
}

// Create registers a new match session in the waiting phase.
func (r *Registry) Create() *MatchSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.newID()
	s := NewMatchSession(id, r.rules, r.newRand(), r.newID, r.onFinish)
	r.matches[id] = s
	return s
}

// Lookup returns the live session for id, or (nil, false).
func (r *Registry) Lookup(id string) (*MatchSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.matches[id]
	return s, ok
}

// Dispose removes a match and stops its timers and subscribers. Disposing
// an unknown id is a no-op.
func (r *Registry) Dispose(id string) {
	r.mu.Lock()
	s, ok := r.matches[id]
	delete(r.matches, id)
	r.mu.Unlock()
	if ok {
		s.Close()
	}
}

// Count returns the number of live matches.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.matches)
}
