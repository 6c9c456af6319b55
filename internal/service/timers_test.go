package service

import (
	"testing"
	"time"

	"github.com/ericogr/gridstrike/internal/game"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not reached within %v", timeout)
}

func TestBuildTimeout_AutoReadiesAndPlacesDefaultLauncher(t *testing.T) {
	rules := testRules()
	rules.BuildDuration = 20 * time.Millisecond
	s := newTestSession(rules, nil)
	joinBoth(t, s)
	// p1 placed a launcher, p2 placed nothing
	mustOp(t)(s.PlaceUnits("p1", []game.UnitPlacement{{Type: "launcher", X: 0, Y: 0}}))

	waitFor(t, time.Second, func() bool { return s.Phase() == game.PhaseBattle })
	p2 := playerState(s, "p2")
	if p2.LiveLaunchers() != 1 {
		t.Fatalf("expected default launcher placed for p2, got %d", p2.LiveLaunchers())
	}
	if p2.Units[0].Type != rules.DefaultLauncher {
		t.Fatalf("expected default launcher type %q, got %q", rules.DefaultLauncher, p2.Units[0].Type)
	}
}

func TestTurnTimeout_AutoEndsTurn(t *testing.T) {
	rules := testRules()
	rules.TurnDuration = 20 * time.Millisecond
	s := newTestSession(rules, nil)
	startBattle(t, s)

	waitFor(t, time.Second, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.currentTurn == "p2"
	})
}

func TestPlayerActionBeatsTurnTimer(t *testing.T) {
	rules := testRules()
	rules.TurnDuration = 30 * time.Millisecond
	s := newTestSession(rules, nil)
	startBattle(t, s)

	// EndTurn re-arms the timer; the original callback must be a no-op
	mustOp(t)(s.EndTurn("p1"))
	s.mu.Lock()
	if s.currentTurn != "p2" {
		s.mu.Unlock()
		t.Fatalf("expected p2's turn after manual end")
	}
	s.mu.Unlock()

	// the stale p1 timer firing must not immediately bounce the turn back
	time.Sleep(10 * time.Millisecond)
	s.mu.Lock()
	turn := s.currentTurn
	s.mu.Unlock()
	if turn != "p2" {
		t.Fatalf("stale timer switched the turn, got %s", turn)
	}
}

func TestRegistry_Lifecycle(t *testing.T) {
	reg := NewRegistry(testRules(), nil, nil, nil)
	s := reg.Create()
	if s.ID() == "" {
		t.Fatalf("expected generated match id")
	}
	got, ok := reg.Lookup(s.ID())
	if !ok || got != s {
		t.Fatalf("lookup failed for live match")
	}
	if reg.Count() != 1 {
		t.Fatalf("expected one live match, got %d", reg.Count())
	}

	reg.Dispose(s.ID())
	if _, ok := reg.Lookup(s.ID()); ok {
		t.Fatalf("disposed match still resolvable")
	}
	// disposing twice is a no-op
	reg.Dispose(s.ID())
}

func TestSubscribe_ReceivesBroadcasts(t *testing.T) {
	s := newTestSession(testRules(), nil)
	ch, cancel := s.Subscribe()
	defer cancel()

	mustOp(t)(s.AddPlayer("p1", "Alice"))
	select {
	case ev := <-ch:
		if ev.Type != EventRoster {
			t.Fatalf("expected roster event, got %s", ev.Type)
		}
	case <-time.After(time.Second):
		t.Fatalf("no event received")
	}
}
