package service

import (
	"time"

	"github.com/ericogr/gridstrike/internal/engine"
	"github.com/ericogr/gridstrike/internal/game"
)

// RequestShot validates and resolves a single shot. The guard order is:
// phase, turn, launcher identity/liveness, mana, per-turn cap, per-launcher
// cap, then path legality. A rejection at any guard returns an error and
// leaves all state untouched. Once the path is accepted the shot is legal
// and mana is debited regardless of whether a defense intercepts it.
func (s *MatchSession) RequestShot(playerID, launcherID string, path []game.Tile) ([]Event, error) {
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
	launcher := p.UnitByID(launcherID)
	if launcher == nil {
		return nil, ErrUnknownLauncher
	}
	if launcher.Kind != game.KindLauncher {
		return nil, ErrNotALauncher
	}
	if !launcher.Alive() {
		return nil, ErrLauncherDestroyed
	}
	if p.Mana < launcher.ManaCost {
		return nil, ErrInsufficientMana
	}
	if p.ShotsThisTurn >= s.rules.Mana.MaxShotsPerTurn {
		return nil, ErrShotCapReached
	}
	if p.ShotsByLauncher[launcherID] >= s.rules.Mana.MaxShotsPerLauncher {
		return nil, ErrLauncherShotCapReached
	}
	if err := engine.ValidatePath(path, launcher.Range, s.rules.GridSize); err != nil {
		return nil, err
	}

	// Shot accepted: all accounting happens in this single mutation.
	p.Mana = clampMana(p.Mana-launcher.ManaCost, s.rules.Mana.Max)
	p.ShotsThisTurn++
	p.ShotsByLauncher[launcherID]++
	s.shotsFired++

	opponent := s.opponentOf(p)
	interception := engine.ResolveInterception(path, opponent, s.rng)

	var report engine.DamageReport
	if !interception.Intercepted {
		impact := path[len(path)-1]
		if impact.Enemy {
			report = engine.ResolveAreaDamage(game.Cell{X: impact.X, Y: impact.Y}, launcher.AreaX, launcher.AreaY, opponent, s.rules.GridSize)
		}
	}

	evs := []Event{
		{Type: EventDamage, Data: DamagePayload{
			Attacker:           playerID,
			LauncherID:         launcherID,
			Path:               path,
			Interception:       interception,
			DestroyedLaunchers: report.DestroyedLaunchers,
			DestroyedDefenses:  report.DestroyedDefenses,
			TargetCells:        report.TargetCells,
		}},
		{Type: EventManaUpdate, Data: ManaPayload{PlayerID: playerID, Mana: p.Mana}},
	}

	if winnerID, over := engine.EvaluateWinner(s.players); over {
		evs = append(evs, s.finishLocked(winnerID)...)
	} else if p.ShotsThisTurn >= s.rules.Mana.MaxShotsPerTurn {
		// Exhausting the per-turn shot cap hands the turn over.
		evs = append(evs, s.switchTurnLocked()...)
	}

	s.publish(evs)
	return evs, nil
}

// finishLocked moves the match to game over, cancels both timers and runs
// the finish hook. No transition leaves game over.
func (s *MatchSession) finishLocked(winnerID string) []Event {
	s.phase = game.PhaseGameOver
	s.winner = winnerID
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

	if s.onFinish != nil {
		loser := s.opponentOf(s.playerByID(winnerID))
		duration := time.Duration(0)
		if !s.startedAt.IsZero() {
			duration = time.Since(s.startedAt)
		}
		s.onFinish(s.id, winnerID, loser.ID, s.shotsFired, duration)
	}
	return []Event{{Type: EventGameOver, Data: GameOverPayload{Winner: winnerID}}}
}
