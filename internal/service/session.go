package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ericogr/gridstrike/internal/game"
)

// IDGenerator supplies ids for matches and units. Injected so the core
// stays deterministic under test (a fixed sequence replaces UUIDs).
type IDGenerator func() string

// FinishHook is invoked once when a match reaches game over, under the
// session lock. Implementations persist stats and must not call back into
// the session.
type FinishHook func(matchID, winnerID, loserID string, shotsFired int, duration time.Duration)

// MatchSession owns the full state of one match: phase, both players,
// turn ownership and the two timers. Every mutation happens under a single
// mutex; timer callbacks take the same mutex and are invalidated by
// generation counters, so a player action observed first always wins the
// race against a timeout.
type MatchSession struct {
	mu      sync.Mutex
	id      string
	rules   *game.Ruleset
	phase   game.Phase
	players []*game.PlayerState

	currentTurn string
	winner      string
	shotsFired  int
	startedAt   time.Time

	rng      *rand.Rand
	newID    IDGenerator
	onFinish FinishHook

	buildTimer    *time.Timer
	buildTimerGen uint64
	turnTimer     *time.Timer
	turnTimerGen  uint64

	subMu   sync.Mutex
	subs    map[int]chan Event
	nextSub int
}

// NewMatchSession creates a match in the waiting phase. rng seeds the
// interception rolls; newID supplies unit ids.
func NewMatchSession(id string, rules *game.Ruleset, rng *rand.Rand, newID IDGenerator, onFinish FinishHook) *MatchSession {
	return &MatchSession{
		id:       id,
		rules:    rules,
		phase:    game.PhaseWaiting,
		rng:      rng,
		newID:    newID,
		onFinish: onFinish,
		subs:     make(map[int]chan Event),
	}
}

func (s *MatchSession) ID() string { return s.id }

// Phase returns the current phase.
func (s *MatchSession) Phase() game.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// AddPlayer joins a player into the match. Re-joining an existing player is
// idempotent and returns the current state snapshot, so a reconnecting
// client can resync. The second join ends the waiting phase and starts the
// build phase (and its timer).
func (s *MatchSession) AddPlayer(playerID, name string) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.playerByID(playerID); p != nil {
		return s.snapshotLocked(), nil
	}
	if s.phase != game.PhaseWaiting {
		return nil, ErrWrongPhase
	}
	if len(s.players) >= 2 {
		return nil, ErrMatchFull
	}

	s.players = append(s.players, &game.PlayerState{
		ID:              playerID,
		Name:            name,
		ShotsByLauncher: make(map[string]int),
	})

	evs := []Event{s.rosterEventLocked()}
	if len(s.players) == 2 {
		s.phase = game.PhaseBuild
		s.armBuildTimerLocked()
		evs = append(evs, s.buildStateEventLocked())
	}
	s.publish(evs)
	return evs, nil
}

// Snapshot returns the phase-appropriate state events for a late or
// reconnecting subscriber.
func (s *MatchSession) Snapshot() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *MatchSession) snapshotLocked() []Event {
	switch s.phase {
	case game.PhaseWaiting:
		return []Event{s.rosterEventLocked()}
	case game.PhaseBuild:
		return []Event{s.buildStateEventLocked()}
	case game.PhaseBattle:
		return []Event{s.battleStateEventLocked()}
	default:
		return []Event{s.battleStateEventLocked(), {Type: EventGameOver, Data: GameOverPayload{Winner: s.winner}}}
	}
}

// Subscribe registers an event feed. Slow subscribers never block the
// match: events are dropped when the buffer is full. The returned cancel
// func must be called when the subscriber goes away.
func (s *MatchSession) Subscribe() (<-chan Event, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan Event, 32)
	s.subs[id] = ch
	return ch, func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
}

func (s *MatchSession) publish(evs []Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ev := range evs {
		for _, ch := range s.subs {
			select {
			case ch <- ev:
			default:
			}
		}
	}
}

// Close stops both timers and drops all subscribers. Used by the registry
// on dispose.
func (s *MatchSession) Close() {
	s.mu.Lock()
	s.buildTimerGen++
	s.turnTimerGen++
	if s.buildTimer != nil {
		s.buildTimer.Stop()
		s.buildTimer = nil
	}
	if s.turnTimer != nil {
		s.turnTimer.Stop()
		s.turnTimer = nil
	}
	s.mu.Unlock()

	s.subMu.Lock()
	defer s.subMu.Unlock()
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

func (s *MatchSession) playerByID(id string) *game.PlayerState {
	for _, p := range s.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *MatchSession) opponentOf(p *game.PlayerState) *game.PlayerState {
	for _, o := range s.players {
		if o.ID != p.ID {
			return o
		}
	}
	return nil
}

func (s *MatchSession) rosterEventLocked() Event {
	infos := make([]PlayerInfo, 0, len(s.players))
	for _, p := range s.players {
		infos = append(infos, PlayerInfo{ID: p.ID, Name: p.Name})
	}
	return Event{Type: EventRoster, Data: RosterPayload{MatchID: s.id, Phase: s.phase, Players: infos}}
}

func (s *MatchSession) buildStateEventLocked() Event {
	infos := make([]BuildPlayerInfo, 0, len(s.players))
	for _, p := range s.players {
		infos = append(infos, BuildPlayerInfo{
			ID:              p.ID,
			Name:            p.Name,
			BudgetRemaining: s.rules.BuildBudget - p.BudgetSpent,
			Ready:           p.Ready,
			Units:           p.Units,
		})
	}
	return Event{Type: EventBuildState, Data: BuildStatePayload{
		MatchID:     s.id,
		GridSize:    s.rules.GridSize,
		BuildBudget: s.rules.BuildBudget,
		Players:     infos,
	}}
}

func (s *MatchSession) battleStateEventLocked() Event {
	infos := make([]BattlePlayerInfo, 0, len(s.players))
	for _, p := range s.players {
		infos = append(infos, BattlePlayerInfo{ID: p.ID, Name: p.Name, Mana: p.Mana, Units: p.Units})
	}
	return Event{Type: EventBattleState, Data: BattleStatePayload{
		MatchID:     s.id,
		GridSize:    s.rules.GridSize,
		CurrentTurn: s.currentTurn,
		Players:     infos,
	}}
}
