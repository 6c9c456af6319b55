package service

import (
	"time"

	"github.com/ericogr/gridstrike/internal/game"
	"github.com/ericogr/gridstrike/internal/logging"
)

// SetReady marks a player ready during the build phase. When both players
// are ready the battle start is attempted; the attempt may roll back (see
// tryStartBattleLocked).
func (s *MatchSession) SetReady(playerID string) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.playerByID(playerID)
	if p == nil {
		return nil, ErrUnknownPlayer
	}
	if s.phase != game.PhaseBuild {
		return nil, ErrWrongPhase
	}

	p.Ready = true
	if len(s.players) == 2 && s.players[0].Ready && s.players[1].Ready {
		evs := s.tryStartBattleLocked()
		s.publish(evs)
		return evs, nil
	}
	evs := []Event{s.buildStateEventLocked()}
	s.publish(evs)
	return evs, nil
}

// ForceStartBattle attempts the build-to-battle transition directly (the
// ready-timeout path). The launcher precondition is re-validated the same
// way as the both-ready path.
func (s *MatchSession) ForceStartBattle(playerID string) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.playerByID(playerID) == nil {
		return nil, ErrUnknownPlayer
	}
	if s.phase != game.PhaseBuild {
		return nil, ErrWrongPhase
	}
	evs := s.tryStartBattleLocked()
	s.publish(evs)
	return evs, nil
}

// EndTurn hands the turn to the opponent.
func (s *MatchSession) EndTurn(playerID string) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.playerByID(playerID)
	if p == nil {
		return nil, ErrUnknownPlayer
	}
	if s.phase != game.PhaseBattle {
		return nil, ErrWrongPhase
	}
	if s.currentTurn != playerID {
		return nil, ErrNotYourTurn
	}
	evs := s.switchTurnLocked()
	s.publish(evs)
	return evs, nil
}

// tryStartBattleLocked transitions build -> battle. If any player has zero
// surviving launchers the transition is rejected and rolled back: both
// ready flags reset, the build timer re-arms and the build state is
// rebroadcast instead of an error being returned to a specific caller.
func (s *MatchSession) tryStartBattleLocked() []Event {
	for _, p := range s.players {
		if p.LiveLaunchers() == 0 {
			for _, q := range s.players {
				q.Ready = false
			}
			s.armBuildTimerLocked()
			logging.Info("battle start rejected: player has no launchers", logging.Fields{"match_id": s.id, "player_id": p.ID})
			return []Event{s.buildStateEventLocked()}
		}
	}

	s.phase = game.PhaseBattle
	s.startedAt = time.Now()
	s.buildTimerGen++
	if s.buildTimer != nil {
		s.buildTimer.Stop()
		s.buildTimer = nil
	}

	first, second := s.players[0], s.players[1]
	s.currentTurn = first.ID
	// The opening player starts already regenerated for their first turn.
	first.Mana = clampMana(s.rules.Mana.Start+s.rules.Mana.PerTurn, s.rules.Mana.Max)
	second.Mana = clampMana(s.rules.Mana.Start, s.rules.Mana.Max)
	s.resetShotCountersLocked()
	s.armTurnTimerLocked()

	return []Event{s.battleStateEventLocked()}
}

// switchTurnLocked resets shot counters for both players, regenerates the
// incoming player's mana (clamped to the cap) and re-arms the turn timer.
func (s *MatchSession) switchTurnLocked() []Event {
	s.resetShotCountersLocked()

	current := s.playerByID(s.currentTurn)
	next := s.opponentOf(current)
	s.currentTurn = next.ID
	next.Mana = clampMana(next.Mana+s.rules.Mana.PerTurn, s.rules.Mana.Max)
	s.armTurnTimerLocked()

	mana := make(map[string]int, 2)
	for _, p := range s.players {
		mana[p.ID] = p.Mana
	}
	return []Event{{Type: EventTurnChange, Data: TurnChangePayload{CurrentTurn: s.currentTurn, Mana: mana}}}
}

func (s *MatchSession) resetShotCountersLocked() {
	for _, p := range s.players {
		p.ShotsThisTurn = 0
		p.ShotsByLauncher = make(map[string]int)
	}
}

func clampMana(v, max int) int {
	if v > max {
		return max
	}
	if v < 0 {
		return 0
	}
	return v
}

// armBuildTimerLocked schedules the build-phase deadline. Arming bumps the
// generation so a previously scheduled callback becomes a no-op.
func (s *MatchSession) armBuildTimerLocked() {
	s.buildTimerGen++
	gen := s.buildTimerGen
	if s.buildTimer != nil {
		s.buildTimer.Stop()
	}
	if s.rules.BuildDuration <= 0 {
		s.buildTimer = nil
		return
	}
	s.buildTimer = time.AfterFunc(s.rules.BuildDuration, func() { s.buildPhaseExpired(gen) })
}

// buildPhaseExpired auto-readies both players when the build deadline
// passes, placing a default launcher first for anyone who has none.
func (s *MatchSession) buildPhaseExpired(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.buildTimerGen || s.phase != game.PhaseBuild {
		return
	}
	for _, p := range s.players {
		// A player who placed nothing gets the default launcher so the
		// battle precondition can hold. A player who spent their budget on
		// defenses keeps their set; the start attempt below rolls back and
		// re-arms until they add a launcher.
		if len(p.Units) == 0 {
			if !s.placeDefaultLauncherLocked(p) {
				logging.Error("could not place default launcher on build timeout", nil, logging.Fields{"match_id": s.id, "player_id": p.ID})
			}
		}
		p.Ready = true
	}
	evs := s.tryStartBattleLocked()
	s.publish(evs)
}

func (s *MatchSession) armTurnTimerLocked() {
	s.turnTimerGen++
	gen := s.turnTimerGen
	if s.turnTimer != nil {
		s.turnTimer.Stop()
	}
	if s.rules.TurnDuration <= 0 {
		s.turnTimer = nil
		return
	}
	s.turnTimer = time.AfterFunc(s.rules.TurnDuration, func() { s.turnExpired(gen) })
}

// turnExpired auto-ends the turn when its deadline passes with no action.
// A player action that won the race bumps the generation first, making
// this callback a no-op.
func (s *MatchSession) turnExpired(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.turnTimerGen || s.phase != game.PhaseBattle {
		return
	}
	logging.Info("turn timed out", logging.Fields{"match_id": s.id, "player_id": s.currentTurn})
	evs := s.switchTurnLocked()
	s.publish(evs)
}
